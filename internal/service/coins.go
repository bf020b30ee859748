package service

import (
	"context"
	"strings"

	"github.com/avc/linecoffee/internal/domain"
)

// CoinService реализует domain.CoinService
type CoinService struct {
	coinRepo domain.CoinRepository
}

// NewCoinService создает новый CoinService
func NewCoinService(coinRepo domain.CoinRepository) *CoinService {
	return &CoinService{
		coinRepo: coinRepo,
	}
}

// GetLedger получает баланс и журнал монет пользователя
func (s *CoinService) GetLedger(ctx context.Context, userID int64) (*domain.CoinLedger, error) {
	ledger, err := s.coinRepo.GetLedger(ctx, userID)
	if err != nil {
		return nil, wrap(err, "coin service: failed to get ledger for user %d", userID)
	}

	return ledger, nil
}

// Redeem списывает монеты, если их достаточно, и возвращает обновленный журнал
func (s *CoinService) Redeem(ctx context.Context, userID int64, amount int64, description string) (*domain.CoinLedger, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidInput
	}

	description = strings.TrimSpace(description)
	if description == "" {
		description = "Coins redeemed"
	}

	entry := &domain.CoinEntry{
		UserID:      userID,
		Action:      domain.CoinActionRedeem,
		Amount:      -amount,
		Description: description,
	}
	if err := s.coinRepo.Append(ctx, entry); err != nil {
		return nil, wrap(err, "coin service: failed to redeem %d coins for user %d", amount, userID)
	}

	return s.GetLedger(ctx, userID)
}
