package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/linecoffee/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const paymentColumns = `id, order_id, user_id, method, amount, status, created_at, updated_at`

// PaymentRepository реализует domain.PaymentRepository
type PaymentRepository struct {
	db DBTX
}

// NewPaymentRepository создает новый PaymentRepository
func NewPaymentRepository(db DBTX) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	p := &domain.Payment{}
	err := row.Scan(&p.ID, &p.OrderID, &p.UserID, &p.Method, &p.Amount, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// UpsertPayment создает платеж заказа или обновляет существующий
func (r *PaymentRepository) UpsertPayment(ctx context.Context, payment *domain.Payment) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO payments (order_id, user_id, method, amount, status)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (order_id) DO UPDATE
		 SET method = EXCLUDED.method, amount = EXCLUDED.amount, status = EXCLUDED.status, updated_at = NOW()
		 RETURNING id, created_at, updated_at`,
		payment.OrderID, payment.UserID, payment.Method, payment.Amount, payment.Status,
	).Scan(&payment.ID, &payment.CreatedAt, &payment.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrOrderNotFound
		}
		return fmt.Errorf("repository: failed to upsert payment for order %d: %w", payment.OrderID, err)
	}

	return nil
}

// SyncPayment обновляет сумму и способ оплаты существующего платежа.
// Если платежа еще нет, ничего не делает.
func (r *PaymentRepository) SyncPayment(ctx context.Context, orderID int64, amount decimal.Decimal, method domain.PaymentMethod) error {
	_, err := r.db.Exec(ctx,
		`UPDATE payments
		 SET amount = $2, method = COALESCE(NULLIF($3, ''), method), updated_at = NOW()
		 WHERE order_id = $1`,
		orderID, amount, string(method),
	)
	if err != nil {
		return fmt.Errorf("repository: failed to sync payment for order %d: %w", orderID, err)
	}

	return nil
}

// GetPaymentByOrderID получает платеж заказа
func (r *PaymentRepository) GetPaymentByOrderID(ctx context.Context, orderID int64) (*domain.Payment, error) {
	p, err := scanPayment(r.db.QueryRow(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE order_id = $1`, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("repository: failed to get payment for order %d: %w", orderID, err)
	}

	return p, nil
}

// ListPayments получает все платежи, новые первыми
func (r *PaymentRepository) ListPayments(ctx context.Context) ([]*domain.Payment, error) {
	rows, err := r.db.Query(ctx, `SELECT `+paymentColumns+` FROM payments ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []*domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating payments: %w", err)
	}

	return payments, nil
}
