package handlers

import (
	"net/http"

	"github.com/avc/linecoffee/internal/domain"
	"go.uber.org/zap"
)

// AccountHandler обслуживает список желаний, уведомления и платежи
type AccountHandler struct {
	wishlistService     domain.WishlistService
	notificationService domain.NotificationService
	paymentService      domain.PaymentService
	logger              *zap.Logger
}

// NewAccountHandler создает новый AccountHandler
func NewAccountHandler(
	wishlistService domain.WishlistService,
	notificationService domain.NotificationService,
	paymentService domain.PaymentService,
	logger *zap.Logger,
) *AccountHandler {
	return &AccountHandler{
		wishlistService:     wishlistService,
		notificationService: notificationService,
		paymentService:      paymentService,
		logger:              logger,
	}
}

type toggleWishlistRequest struct {
	ProductID int64 `json:"productId"`
}

type toggleWishlistResponse struct {
	Added    bool              `json:"added"`
	Wishlist []*domain.Product `json:"wishlist"`
}

// GetWishlist возвращает список желаний текущего пользователя
func (h *AccountHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	identity, ok := GetIdentity(r.Context())
	if !ok {
		writeError(w, r, h.logger, domain.ErrUnauthorized)
		return
	}

	products, err := h.wishlistService.GetWishlist(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, products)
}

// ToggleWishlist добавляет товар в список желаний или удаляет его
func (h *AccountHandler) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	identity, ok := GetIdentity(r.Context())
	if !ok {
		writeError(w, r, h.logger, domain.ErrUnauthorized)
		return
	}

	var req toggleWishlistRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	added, products, err := h.wishlistService.Toggle(r.Context(), identity.UserID, req.ProductID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, toggleWishlistResponse{Added: added, Wishlist: products})
}

// GetNotifications возвращает уведомления текущего пользователя
func (h *AccountHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	identity, ok := GetIdentity(r.Context())
	if !ok {
		writeError(w, r, h.logger, domain.ErrUnauthorized)
		return
	}

	notifications, err := h.notificationService.GetNotifications(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, notifications)
}

// MarkNotificationRead помечает уведомление прочитанным
func (h *AccountHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	identity, ok := GetIdentity(r.Context())
	if !ok {
		writeError(w, r, h.logger, domain.ErrUnauthorized)
		return
	}

	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if err := h.notificationService.MarkRead(r.Context(), identity.UserID, id); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, messageResponse{Message: "Notification marked as read"})
}

// ListPayments возвращает все платежи
func (h *AccountHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.paymentService.ListPayments(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, payments)
}
