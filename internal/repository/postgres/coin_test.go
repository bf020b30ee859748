package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/avc/linecoffee/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoinRepository_Append(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCoinRepository(mock)
	ctx := context.Background()

	t.Run("Earn", func(t *testing.T) {
		orderID := int64(5)
		entry := &domain.CoinEntry{UserID: 1, Action: domain.CoinActionEarn, Amount: 10, Description: "order delivered", OrderID: &orderID}
		now := time.Now()

		mock.ExpectBegin()
		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectQuery(`INSERT INTO coin_balances`).
			WithArgs(int64(1), int64(10)).
			WillReturnRows(pgxmock.NewRows([]string{"coins"}).AddRow(int64(10)))
		mock.ExpectQuery(`INSERT INTO coin_log`).
			WithArgs(int64(1), domain.CoinActionEarn, int64(10), "order delivered", &orderID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(11), now))
		mock.ExpectCommit()

		require.NoError(t, repo.Append(ctx, entry))
		assert.Equal(t, int64(11), entry.ID)
		assert.Equal(t, now, entry.CreatedAt)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Redeem over balance", func(t *testing.T) {
		entry := &domain.CoinEntry{UserID: 1, Action: domain.CoinActionRedeem, Amount: -50, Description: "drink"}

		mock.ExpectBegin()
		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectQuery(`INSERT INTO coin_balances`).
			WithArgs(int64(1), int64(-50)).
			WillReturnRows(pgxmock.NewRows([]string{"coins"}).AddRow(int64(-40)))
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.Append(ctx, entry), domain.ErrInsufficientCoins)
		assert.Zero(t, entry.ID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Reverse may go negative", func(t *testing.T) {
		entry := &domain.CoinEntry{UserID: 1, Action: domain.CoinActionReverse, Amount: -10, Description: "order canceled"}
		now := time.Now()

		mock.ExpectBegin()
		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectQuery(`INSERT INTO coin_balances`).
			WithArgs(int64(1), int64(-10)).
			WillReturnRows(pgxmock.NewRows([]string{"coins"}).AddRow(int64(-4)))
		mock.ExpectQuery(`INSERT INTO coin_log`).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(12), now))
		mock.ExpectCommit()

		require.NoError(t, repo.Append(ctx, entry))
		assert.Equal(t, int64(12), entry.ID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCoinRepository_GetLedger(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCoinRepository(mock)

	t.Run("No activity", func(t *testing.T) {
		mock.ExpectQuery(`SELECT coins FROM coin_balances`).
			WithArgs(int64(3)).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectQuery(`FROM coin_log`).
			WithArgs(int64(3)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "action", "amount", "description", "order_id", "created_at"}))

		ledger, err := repo.GetLedger(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, int64(3), ledger.UserID)
		assert.Zero(t, ledger.Coins)
		assert.Empty(t, ledger.Log)
		assert.NotNil(t, ledger.Log)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
