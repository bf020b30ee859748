package service

import (
	"context"

	"github.com/avc/linecoffee/internal/domain"
	"github.com/shopspring/decimal"
)

// WalletService реализует domain.WalletService
type WalletService struct {
	walletRepo domain.WalletRepository
}

// NewWalletService создает новый WalletService
func NewWalletService(walletRepo domain.WalletRepository) *WalletService {
	return &WalletService{
		walletRepo: walletRepo,
	}
}

// GetWallet получает кошелек пользователя
func (s *WalletService) GetWallet(ctx context.Context, userID int64) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetWallet(ctx, userID)
	if err != nil {
		return nil, wrap(err, "wallet service: failed to get wallet for user %d", userID)
	}

	return wallet, nil
}

// TopUp пополняет кошелек пользователя вручную
func (s *WalletService) TopUp(ctx context.Context, userID int64, amount decimal.Decimal) (*domain.Wallet, error) {
	if !amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	wallet, err := s.walletRepo.Credit(ctx, userID, amount.Round(2))
	if err != nil {
		return nil, wrap(err, "wallet service: failed to top up wallet for user %d", userID)
	}

	return wallet, nil
}
