package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avc/linecoffee/internal/domain"
	"github.com/shopspring/decimal"
)

var maxPercentage = decimal.NewFromInt(100)

// CouponService реализует domain.CouponService
type CouponService struct {
	couponRepo domain.CouponRepository
}

// NewCouponService создает новый CouponService
func NewCouponService(couponRepo domain.CouponRepository) *CouponService {
	return &CouponService{
		couponRepo: couponRepo,
	}
}

// Validate рассчитывает скидку купона для суммы без его погашения
func (s *CouponService) Validate(ctx context.Context, code string, total decimal.Decimal) (*domain.CouponQuote, error) {
	code = strings.TrimSpace(code)
	if code == "" || total.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	coupon, err := s.couponRepo.GetCouponByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrCouponNotFound) {
			return nil, domain.ErrInvalidCoupon
		}
		return nil, fmt.Errorf("coupon service: failed to get coupon %q: %w", code, err)
	}

	if !coupon.Applicable() {
		return nil, domain.ErrInvalidCoupon
	}

	return &domain.CouponQuote{
		Coupon:   coupon,
		Discount: coupon.DiscountFor(total.Round(2)),
	}, nil
}

// CreateCoupon создает активный купон
func (s *CouponService) CreateCoupon(ctx context.Context, code string, kind domain.DiscountKind, value decimal.Decimal) (*domain.Coupon, error) {
	code = strings.TrimSpace(code)
	if code == "" || !value.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	switch kind {
	case domain.DiscountPercentage:
		if value.GreaterThan(maxPercentage) {
			return nil, domain.ErrInvalidInput
		}
	case domain.DiscountFixed:
	default:
		return nil, domain.ErrInvalidInput
	}

	coupon := &domain.Coupon{
		Code:     code,
		Kind:     kind,
		Value:    value.Round(2),
		IsActive: true,
	}

	if err := s.couponRepo.CreateCoupon(ctx, coupon); err != nil {
		return nil, wrap(err, "coupon service: failed to create coupon %q", code)
	}

	return coupon, nil
}

// ListCoupons получает все купоны
func (s *CouponService) ListCoupons(ctx context.Context) ([]*domain.Coupon, error) {
	coupons, err := s.couponRepo.ListCoupons(ctx)
	if err != nil {
		return nil, fmt.Errorf("coupon service: failed to list coupons: %w", err)
	}
	if coupons == nil {
		coupons = []*domain.Coupon{}
	}

	return coupons, nil
}
