package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/linecoffee/internal/domain"
	"github.com/jackc/pgx/v5"
)

const couponColumns = `id, code, discount_kind, discount_value, is_active, is_used, created_at`

// CouponRepository реализует domain.CouponRepository
type CouponRepository struct {
	db DBTX
}

// NewCouponRepository создает новый CouponRepository
func NewCouponRepository(db DBTX) *CouponRepository {
	return &CouponRepository{db: db}
}

func scanCoupon(row pgx.Row) (*domain.Coupon, error) {
	c := &domain.Coupon{}
	err := row.Scan(&c.ID, &c.Code, &c.Kind, &c.Value, &c.IsActive, &c.IsUsed, &c.CreatedAt)
	return c, err
}

// CreateCoupon создает новый купон
func (r *CouponRepository) CreateCoupon(ctx context.Context, coupon *domain.Coupon) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO coupons (code, discount_kind, discount_value, is_active, is_used)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		coupon.Code, coupon.Kind, coupon.Value, coupon.IsActive, coupon.IsUsed,
	).Scan(&coupon.ID, &coupon.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCouponExists
		}
		return fmt.Errorf("repository: failed to create coupon %q: %w", coupon.Code, err)
	}

	return nil
}

// GetCouponByCode получает купон по коду независимо от его состояния
func (r *CouponRepository) GetCouponByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	c, err := scanCoupon(r.db.QueryRow(ctx,
		`SELECT `+couponColumns+` FROM coupons WHERE code = $1`, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCouponNotFound
		}
		return nil, fmt.Errorf("repository: failed to get coupon %q: %w", code, err)
	}

	return c, nil
}

// GetCouponByID получает купон по ID
func (r *CouponRepository) GetCouponByID(ctx context.Context, id int64) (*domain.Coupon, error) {
	c, err := scanCoupon(r.db.QueryRow(ctx,
		`SELECT `+couponColumns+` FROM coupons WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCouponNotFound
		}
		return nil, fmt.Errorf("repository: failed to get coupon %d: %w", id, err)
	}

	return c, nil
}

// ListCoupons получает все купоны
func (r *CouponRepository) ListCoupons(ctx context.Context) ([]*domain.Coupon, error) {
	rows, err := r.db.Query(ctx, `SELECT `+couponColumns+` FROM coupons ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list coupons: %w", err)
	}
	defer rows.Close()

	var coupons []*domain.Coupon
	for rows.Next() {
		c, err := scanCoupon(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan coupon: %w", err)
		}
		coupons = append(coupons, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating coupons: %w", err)
	}

	return coupons, nil
}

// ClaimCoupon атомарно помечает активный неиспользованный купон как использованный.
// Если купон уже использован или неактивен, возвращается ErrInvalidCoupon.
func (r *CouponRepository) ClaimCoupon(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx,
		`UPDATE coupons SET is_used = TRUE WHERE id = $1 AND is_active AND NOT is_used`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to claim coupon %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrInvalidCoupon
	}

	return nil
}

// ReleaseCoupon возвращает купон в состояние, пригодное для повторного использования
func (r *CouponRepository) ReleaseCoupon(ctx context.Context, id int64) error {
	return r.setFlags(ctx, id, true, false)
}

// FinalizeCoupon окончательно погашает купон после доставки заказа
func (r *CouponRepository) FinalizeCoupon(ctx context.Context, id int64) error {
	return r.setFlags(ctx, id, false, true)
}

func (r *CouponRepository) setFlags(ctx context.Context, id int64, active, used bool) error {
	result, err := r.db.Exec(ctx,
		`UPDATE coupons SET is_active = $2, is_used = $3 WHERE id = $1`, id, active, used)
	if err != nil {
		return fmt.Errorf("repository: failed to update coupon %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrCouponNotFound
	}

	return nil
}
