package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/linecoffee/internal/domain"
	"github.com/jackc/pgx/v5"
)

// CoinRepository реализует domain.CoinRepository.
// Баланс хранится в coin_balances, каждое изменение дублируется записью в coin_log.
type CoinRepository struct {
	db DBTX
}

// NewCoinRepository создает новый CoinRepository
func NewCoinRepository(db DBTX) *CoinRepository {
	return &CoinRepository{db: db}
}

// GetLedger получает баланс монет и журнал операций пользователя.
// Для пользователя без операций возвращается пустой журнал с нулевым балансом.
func (r *CoinRepository) GetLedger(ctx context.Context, userID int64) (*domain.CoinLedger, error) {
	ledger := &domain.CoinLedger{UserID: userID, Log: []*domain.CoinEntry{}}

	err := r.db.QueryRow(ctx,
		`SELECT coins FROM coin_balances WHERE user_id = $1`, userID,
	).Scan(&ledger.Coins)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("repository: failed to get coins for user %d: %w", userID, err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, action, amount, description, order_id, created_at
		 FROM coin_log
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get coin log for user %d: %w", userID, err)
	}
	defer rows.Close()

	for rows.Next() {
		entry := &domain.CoinEntry{}
		err := rows.Scan(&entry.ID, &entry.UserID, &entry.Action, &entry.Amount, &entry.Description, &entry.OrderID, &entry.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan coin entry: %w", err)
		}
		ledger.Log = append(ledger.Log, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating coin log: %w", err)
	}

	return ledger, nil
}

// Append применяет запись со знаковой суммой к балансу и добавляет ее в журнал
// в одной транзакции. Списание (redeem) отклоняется, если баланс уходит в минус.
func (r *CoinRepository) Append(ctx context.Context, entry *domain.CoinEntry) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to begin transaction for user %d: %w", entry.UserID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	if err := applyCoinEntry(ctx, tx, entry); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: failed to commit coin entry: %w", err)
	}

	return nil
}

// applyCoinEntry изменяет баланс монет и пишет журнал внутри транзакции вызывающего
func applyCoinEntry(ctx context.Context, tx pgx.Tx, entry *domain.CoinEntry) error {
	// Advisory lock по user_id сериализует изменения баланса одного пользователя
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, entry.UserID); err != nil {
		return fmt.Errorf("repository: failed to acquire lock for user %d: %w", entry.UserID, err)
	}

	var coins int64
	err := tx.QueryRow(ctx,
		`INSERT INTO coin_balances (user_id, coins)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE
		 SET coins = coin_balances.coins + EXCLUDED.coins, updated_at = NOW()
		 RETURNING coins`,
		entry.UserID, entry.Amount,
	).Scan(&coins)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("repository: failed to update coins for user %d: %w", entry.UserID, err)
	}

	if entry.Action == domain.CoinActionRedeem && coins < 0 {
		return domain.ErrInsufficientCoins
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO coin_log (user_id, action, amount, description, order_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		entry.UserID, entry.Action, entry.Amount, entry.Description, entry.OrderID,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("repository: failed to insert coin entry for user %d: %w", entry.UserID, err)
	}

	return nil
}
