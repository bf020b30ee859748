package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/linecoffee/internal/domain"
	"github.com/jackc/pgx/v5"
)

const orderSelect = `SELECT o.id, o.user_id, o.total_amount, o.discount, o.wallet_amount, o.wallet_requested, o.final_amount,
		o.coupon_id, COALESCE(c.code, ''), o.coins_earned, COALESCE(o.payment_method, ''), o.status, o.notes,
		o.created_at, o.updated_at, u.name, u.phone, u.email
	 FROM orders o
	 JOIN users u ON u.id = o.user_id
	 LEFT JOIN coupons c ON c.id = o.coupon_id`

// OrderRepository реализует domain.OrderRepository
type OrderRepository struct {
	db DBTX
}

// NewOrderRepository создает новый OrderRepository
func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateOrder сохраняет новый заказ вместе с позициями
func (r *OrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to begin transaction for user %d: %w", order.UserID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	if order.Status == "" {
		order.Status = domain.OrderStatusPending
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO orders (user_id, total_amount, discount, wallet_amount, wallet_requested, final_amount,
		                     coupon_id, status, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at, updated_at`,
		order.UserID, order.TotalAmount, order.Discount, order.WalletAmount, order.WalletRequested, order.FinalAmount,
		order.CouponID, order.Status, order.Notes,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("repository: failed to create order for user %d: %w", order.UserID, err)
	}

	if err := insertItems(ctx, tx, order.ID, order.Items); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: failed to commit order %d: %w", order.ID, err)
	}

	return nil
}

func insertItems(ctx context.Context, tx pgx.Tx, orderID int64, items []domain.OrderItem) error {
	for i, item := range items {
		_, err := tx.Exec(ctx,
			`INSERT INTO order_items (order_id, position, product_id, quantity, unit_price)
			 VALUES ($1, $2, $3, $4, $5)`,
			orderID, i, item.ProductID, item.Quantity, item.UnitPrice,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return &domain.ProductNotFoundError{ProductID: item.ProductID}
			}
			return fmt.Errorf("repository: failed to insert item %d of order %d: %w", item.ProductID, orderID, err)
		}
	}
	return nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	o := &domain.Order{Customer: &domain.User{}}
	err := row.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Discount, &o.WalletAmount, &o.WalletRequested, &o.FinalAmount,
		&o.CouponID, &o.CouponCode, &o.CoinsEarned, &o.PaymentMethod, &o.Status, &o.Notes,
		&o.CreatedAt, &o.UpdatedAt, &o.Customer.Name, &o.Customer.Phone, &o.Customer.Email)
	if err != nil {
		return nil, err
	}
	o.Customer.ID = o.UserID
	return o, nil
}

// GetOrderByID получает заказ с позициями по ID
func (r *OrderRepository) GetOrderByID(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := scanOrder(r.db.QueryRow(ctx, orderSelect+` WHERE o.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("repository: failed to get order %d: %w", id, err)
	}

	if err := r.loadItems(ctx, []*domain.Order{order}); err != nil {
		return nil, err
	}

	return order, nil
}

// GetOrdersByUserID получает все заказы пользователя, новые первыми
func (r *OrderRepository) GetOrdersByUserID(ctx context.Context, userID int64) ([]*domain.Order, error) {
	return r.queryOrders(ctx, orderSelect+` WHERE o.user_id = $1 ORDER BY o.created_at DESC`, userID)
}

// ListOrders получает все заказы, новые первыми
func (r *OrderRepository) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return r.queryOrders(ctx, orderSelect+` ORDER BY o.created_at DESC`)
}

func (r *OrderRepository) queryOrders(ctx context.Context, query string, args ...any) ([]*domain.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating orders: %w", err)
	}

	if err := r.loadItems(ctx, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// loadItems загружает позиции для набора заказов одним запросом
func (r *OrderRepository) loadItems(ctx context.Context, orders []*domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(orders))
	byID := make(map[int64]*domain.Order, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
		byID[o.ID] = o
		o.Items = []domain.OrderItem{}
	}

	rows, err := r.db.Query(ctx,
		`SELECT oi.order_id, oi.product_id, p.name, oi.unit_price, oi.quantity
		 FROM order_items oi
		 JOIN products p ON p.id = oi.product_id
		 WHERE oi.order_id = ANY($1)
		 ORDER BY oi.order_id, oi.position`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to load order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID int64
			item    domain.OrderItem
		)
		if err := rows.Scan(&orderID, &item.ProductID, &item.ProductName, &item.UnitPrice, &item.Quantity); err != nil {
			return fmt.Errorf("repository: failed to scan order item: %w", err)
		}
		if o, ok := byID[orderID]; ok {
			o.Items = append(o.Items, item)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("repository: error iterating order items: %w", err)
	}

	return nil
}

// UpdateOrder сохраняет цены, купон, способ оплаты, заметки и позиции заказа.
// Статус изменяется только через TransitionStatus.
func (r *OrderRepository) UpdateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to begin transaction for order %d: %w", order.ID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	err = tx.QueryRow(ctx,
		`UPDATE orders
		 SET total_amount = $2, discount = $3, wallet_amount = $4, wallet_requested = $5, final_amount = $6,
		     coupon_id = $7, payment_method = NULLIF($8, ''), notes = $9, updated_at = NOW()
		 WHERE id = $1
		 RETURNING updated_at`,
		order.ID, order.TotalAmount, order.Discount, order.WalletAmount, order.WalletRequested, order.FinalAmount,
		order.CouponID, string(order.PaymentMethod), order.Notes,
	).Scan(&order.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrOrderNotFound
		}
		return fmt.Errorf("repository: failed to update order %d: %w", order.ID, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, order.ID); err != nil {
		return fmt.Errorf("repository: failed to clear items of order %d: %w", order.ID, err)
	}

	if err := insertItems(ctx, tx, order.ID, order.Items); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: failed to commit order %d: %w", order.ID, err)
	}

	return nil
}

// TransitionStatus переводит заказ из статуса from в статус to одним условным UPDATE.
// Если заказ уже не в статусе from, возвращается ErrInvalidState.
func (r *OrderRepository) TransitionStatus(ctx context.Context, id int64, from, to domain.OrderStatus) error {
	result, err := r.db.Exec(ctx,
		`UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1 AND status = $3`,
		id, to, from,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to move order %d to %s: %w", id, to, err)
	}

	if result.RowsAffected() > 0 {
		return nil
	}

	return transitionError(ctx, r.db, id)
}

// DeliverOrder переводит заказ pending -> delivered и начисляет монеты в одной транзакции.
// Запись earned с нулевой суммой не попадает в журнал.
func (r *OrderRepository) DeliverOrder(ctx context.Context, id int64, earned *domain.CoinEntry) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to begin transaction for order %d: %w", id, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	result, err := tx.Exec(ctx,
		`UPDATE orders
		 SET status = $2, coins_earned = coins_earned + $4, updated_at = NOW()
		 WHERE id = $1 AND status = $3`,
		id, domain.OrderStatusDelivered, domain.OrderStatusPending, earned.Amount,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to deliver order %d: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return transitionError(ctx, tx, id)
	}

	if earned.Amount > 0 {
		if err := applyCoinEntry(ctx, tx, earned); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: failed to commit delivery of order %d: %w", id, err)
	}

	return nil
}

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// transitionError различает отсутствующий заказ и заказ в другом статусе
func transitionError(ctx context.Context, q rowQuerier, id int64) error {
	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("repository: failed to check order %d: %w", id, err)
	}
	if !exists {
		return domain.ErrOrderNotFound
	}

	return domain.ErrInvalidState
}

// DeleteOrder удаляет заказ; позиции и платеж удаляются каскадно
func (r *OrderRepository) DeleteOrder(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete order %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}

	return nil
}

// HasPurchased проверяет, есть ли у пользователя заказ с товаром
func (r *OrderRepository) HasPurchased(ctx context.Context, userID, productID int64) (bool, error) {
	var purchased bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM order_items oi
			JOIN orders o ON o.id = oi.order_id
			WHERE o.user_id = $1 AND oi.product_id = $2
		 )`,
		userID, productID,
	).Scan(&purchased)
	if err != nil {
		return false, fmt.Errorf("repository: failed to check purchase of product %d by user %d: %w", productID, userID, err)
	}

	return purchased, nil
}
