package handlers

import (
	"net/http"

	"github.com/avc/linecoffee/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// WalletHandler обслуживает кошельки и монеты
type WalletHandler struct {
	walletService domain.WalletService
	coinService   domain.CoinService
	logger        *zap.Logger
}

// NewWalletHandler создает новый WalletHandler
func NewWalletHandler(walletService domain.WalletService, coinService domain.CoinService, logger *zap.Logger) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
		coinService:   coinService,
		logger:        logger,
	}
}

type topUpRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type redeemRequest struct {
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
}

// GetWallet возвращает кошелек текущего пользователя
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	identity, ok := GetIdentity(r.Context())
	if !ok {
		writeError(w, r, h.logger, domain.ErrUnauthorized)
		return
	}

	wallet, err := h.walletService.GetWallet(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, wallet)
}

// TopUp пополняет кошелек пользователя вручную
func (h *WalletHandler) TopUp(w http.ResponseWriter, r *http.Request) {
	userID, err := idParam(r, "userId")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	var req topUpRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	wallet, err := h.walletService.TopUp(r.Context(), userID, req.Amount)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, wallet)
}

// GetCoins возвращает баланс и журнал монет текущего пользователя
func (h *WalletHandler) GetCoins(w http.ResponseWriter, r *http.Request) {
	identity, ok := GetIdentity(r.Context())
	if !ok {
		writeError(w, r, h.logger, domain.ErrUnauthorized)
		return
	}

	ledger, err := h.coinService.GetLedger(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, ledger)
}

// RedeemCoins списывает монеты текущего пользователя
func (h *WalletHandler) RedeemCoins(w http.ResponseWriter, r *http.Request) {
	identity, ok := GetIdentity(r.Context())
	if !ok {
		writeError(w, r, h.logger, domain.ErrUnauthorized)
		return
	}

	var req redeemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	ledger, err := h.coinService.Redeem(r.Context(), identity.UserID, req.Amount, req.Description)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, ledger)
}
