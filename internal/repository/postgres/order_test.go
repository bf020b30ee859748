package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/linecoffee/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder() *domain.Order {
	return &domain.Order{
		UserID: 1,
		Items: []domain.OrderItem{
			{ProductID: 10, UnitPrice: decimal.NewFromInt(50), Quantity: 2},
			{ProductID: 20, UnitPrice: decimal.NewFromInt(30), Quantity: 1},
		},
		TotalAmount:  decimal.NewFromInt(130),
		Discount:     decimal.NewFromInt(13),
		WalletAmount: decimal.NewFromInt(17),
		FinalAmount:  decimal.NewFromInt(100),
	}
}

func TestOrderRepository_CreateOrder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		order := testOrder()
		now := time.Now()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO orders`).
			WithArgs(int64(1), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), domain.OrderStatusPending, "").
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(7), now, now))
		mock.ExpectExec(`INSERT INTO order_items`).
			WithArgs(int64(7), 0, int64(10), 2, pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(`INSERT INTO order_items`).
			WithArgs(int64(7), 1, int64(20), 1, pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		err := repo.CreateOrder(ctx, order)
		require.NoError(t, err)
		assert.Equal(t, int64(7), order.ID)
		assert.Equal(t, domain.OrderStatusPending, order.Status)
		assert.Equal(t, now, order.CreatedAt)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown product rolls back", func(t *testing.T) {
		order := testOrder()
		now := time.Now()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO orders`).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(8), now, now))
		mock.ExpectExec(`INSERT INTO order_items`).
			WithArgs(int64(8), 0, int64(10), 2, pgxmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		mock.ExpectRollback()

		err := repo.CreateOrder(ctx, order)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)

		var notFound *domain.ProductNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, int64(10), notFound.ProductID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Begin error", func(t *testing.T) {
		mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

		err := repo.CreateOrder(ctx, testOrder())
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_TransitionStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders SET status`).
			WithArgs(int64(1), domain.OrderStatusCanceled, domain.OrderStatusPending).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.TransitionStatus(ctx, 1, domain.OrderStatusPending, domain.OrderStatusCanceled)
		require.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Already canceled", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders SET status`).
			WithArgs(int64(1), domain.OrderStatusCanceled, domain.OrderStatusPending).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

		err := repo.TransitionStatus(ctx, 1, domain.OrderStatusPending, domain.OrderStatusCanceled)
		assert.ErrorIs(t, err, domain.ErrInvalidState)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Order not found", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders SET status`).
			WithArgs(int64(99), domain.OrderStatusCanceled, domain.OrderStatusPending).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs(int64(99)).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

		err := repo.TransitionStatus(ctx, 99, domain.OrderStatusPending, domain.OrderStatusCanceled)
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_DeliverOrder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()

	earned := func(amount int64) *domain.CoinEntry {
		orderID := int64(7)
		return &domain.CoinEntry{UserID: 1, Action: domain.CoinActionEarn, Amount: amount, Description: "Earned for order #7", OrderID: &orderID}
	}

	t.Run("Status and coins in one transaction", func(t *testing.T) {
		entry := earned(10)
		now := time.Now()

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE orders SET status`).
			WithArgs(int64(7), domain.OrderStatusDelivered, domain.OrderStatusPending, int64(10)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectQuery(`INSERT INTO coin_balances`).
			WithArgs(int64(1), int64(10)).
			WillReturnRows(pgxmock.NewRows([]string{"coins"}).AddRow(int64(10)))
		mock.ExpectQuery(`INSERT INTO coin_log`).
			WithArgs(int64(1), domain.CoinActionEarn, int64(10), "Earned for order #7", entry.OrderID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(3), now))
		mock.ExpectCommit()

		require.NoError(t, repo.DeliverOrder(ctx, 7, entry))
		assert.Equal(t, int64(3), entry.ID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Coin failure rolls back delivery", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE orders SET status`).
			WithArgs(int64(7), domain.OrderStatusDelivered, domain.OrderStatusPending, int64(10)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectQuery(`INSERT INTO coin_balances`).
			WithArgs(int64(1), int64(10)).
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		err := repo.DeliverOrder(ctx, 7, earned(10))
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No coins skips ledger", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE orders SET status`).
			WithArgs(int64(7), domain.OrderStatusDelivered, domain.OrderStatusPending, int64(0)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		require.NoError(t, repo.DeliverOrder(ctx, 7, earned(0)))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Already delivered", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE orders SET status`).
			WithArgs(int64(7), domain.OrderStatusDelivered, domain.OrderStatusPending, int64(10)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs(int64(7)).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.DeliverOrder(ctx, 7, earned(10)), domain.ErrInvalidState)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_DeleteOrder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM orders WHERE id`).
			WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		require.NoError(t, repo.DeleteOrder(ctx, 1))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM orders WHERE id`).
			WithArgs(int64(2)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.ErrorIs(t, repo.DeleteOrder(ctx, 2), domain.ErrOrderNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_HasPurchased(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(int64(1), int64(10)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	purchased, err := repo.HasPurchased(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.True(t, purchased)

	assert.NoError(t, mock.ExpectationsWereMet())
}
