package handlers

import (
	"net/http"

	"github.com/avc/linecoffee/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CouponsHandler обслуживает реестр купонов
type CouponsHandler struct {
	couponService domain.CouponService
	logger        *zap.Logger
}

// NewCouponsHandler создает новый CouponsHandler
func NewCouponsHandler(couponService domain.CouponService, logger *zap.Logger) *CouponsHandler {
	return &CouponsHandler{
		couponService: couponService,
		logger:        logger,
	}
}

type validateCouponRequest struct {
	CouponCode  string          `json:"couponCode"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

type createCouponRequest struct {
	CouponCode    string              `json:"couponCode"`
	DiscountKind  domain.DiscountKind `json:"discountKind"`
	DiscountValue decimal.Decimal     `json:"discountValue"`
}

// Validate рассчитывает скидку по купону без его погашения
func (h *CouponsHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req validateCouponRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	quote, err := h.couponService.Validate(r.Context(), req.CouponCode, req.TotalAmount)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, quote)
}

// CreateCoupon создает купон
func (h *CouponsHandler) CreateCoupon(w http.ResponseWriter, r *http.Request) {
	var req createCouponRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	coupon, err := h.couponService.CreateCoupon(r.Context(), req.CouponCode, req.DiscountKind, req.DiscountValue)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, coupon)
}

// ListCoupons возвращает все купоны
func (h *CouponsHandler) ListCoupons(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.couponService.ListCoupons(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, coupons)
}
