package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/linecoffee/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// WalletRepository реализует domain.WalletRepository
type WalletRepository struct {
	db DBTX
}

// NewWalletRepository создает новый WalletRepository
func NewWalletRepository(db DBTX) *WalletRepository {
	return &WalletRepository{db: db}
}

// GetWallet получает кошелек пользователя
func (r *WalletRepository) GetWallet(ctx context.Context, userID int64) (*domain.Wallet, error) {
	wallet := &domain.Wallet{}

	err := r.db.QueryRow(ctx,
		`SELECT user_id, balance, updated_at
		 FROM wallets
		 WHERE user_id = $1`,
		userID,
	).Scan(&wallet.UserID, &wallet.Balance, &wallet.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrWalletNotFound
		}
		return nil, fmt.Errorf("repository: failed to get wallet for user %d: %w", userID, err)
	}

	return wallet, nil
}

// Debit списывает средства одним условным UPDATE, поэтому параллельные
// списания не могут увести баланс в минус
func (r *WalletRepository) Debit(ctx context.Context, userID int64, amount decimal.Decimal) error {
	result, err := r.db.Exec(ctx,
		`UPDATE wallets
		 SET balance = balance - $2, updated_at = NOW()
		 WHERE user_id = $1 AND balance >= $2`,
		userID, amount,
	)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInsufficientFunds
		}
		return fmt.Errorf("repository: failed to debit wallet of user %d: %w", userID, err)
	}

	if result.RowsAffected() == 0 {
		// Кошелек отсутствует или средств недостаточно
		if _, err := r.GetWallet(ctx, userID); err != nil {
			return err
		}
		return domain.ErrInsufficientFunds
	}

	return nil
}

// Credit пополняет кошелек, создавая его при отсутствии
func (r *WalletRepository) Credit(ctx context.Context, userID int64, amount decimal.Decimal) (*domain.Wallet, error) {
	wallet := &domain.Wallet{}

	err := r.db.QueryRow(ctx,
		`INSERT INTO wallets (user_id, balance)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE
		 SET balance = wallets.balance + EXCLUDED.balance, updated_at = NOW()
		 RETURNING user_id, balance, updated_at`,
		userID, amount,
	).Scan(&wallet.UserID, &wallet.Balance, &wallet.UpdatedAt)

	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: failed to credit wallet of user %d: %w", userID, err)
	}

	return wallet, nil
}
