package handlers

import (
	"net/http"
	"strings"

	"github.com/avc/linecoffee/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// OrdersHandler обслуживает конвейер заказов
type OrdersHandler struct {
	orderService domain.OrderService
	logger       *zap.Logger
}

// NewOrdersHandler создает новый OrdersHandler
func NewOrdersHandler(orderService domain.OrderService, logger *zap.Logger) *OrdersHandler {
	return &OrdersHandler{
		orderService: orderService,
		logger:       logger,
	}
}

type createOrderRequest struct {
	Items        []domain.ItemInput `json:"items"`
	CouponCode   string             `json:"couponCode"`
	WalletAmount decimal.Decimal    `json:"walletAmount"`
}

type completeOrderRequest struct {
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
	WalletAmount  *decimal.Decimal     `json:"walletAmount"`
}

type completeOrderResponse struct {
	Message   string        `json:"message"`
	OrderInfo *domain.Order `json:"orderInfo"`
}

type updateOrderRequest struct {
	Items        []domain.ItemInput `json:"items"`
	RemovedItems []int64            `json:"removedItems"`
	CouponCode   string             `json:"couponCode"`
	RemoveCoupon bool               `json:"removeCoupon"`
	WalletAmount *decimal.Decimal   `json:"walletAmount"`
	Notes        *string            `json:"notes"`
}

type updateStatusRequest struct {
	Status domain.OrderStatus `json:"status"`
}

type adminUpdateOrderRequest struct {
	Items        []domain.ItemInput `json:"items"`
	CouponCode   string             `json:"couponCode"`
	RemoveCoupon bool               `json:"removeCoupon"`
	WalletAmount *decimal.Decimal   `json:"walletAmount"`
	Status       domain.OrderStatus `json:"status"`
	Notes        *string            `json:"notes"`
}

// CreateOrder создает заказ в статусе pending
func (h *OrdersHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	identity, ok := GetIdentity(r.Context())
	if !ok {
		writeError(w, r, h.logger, domain.ErrUnauthorized)
		return
	}

	var req createOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), identity, domain.CreateOrderInput{
		Items:        req.Items,
		CouponCode:   strings.TrimSpace(req.CouponCode),
		WalletAmount: req.WalletAmount,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, order)
}

// CompleteOrder фиксирует способ оплаты и списывает средства кошелька
func (h *OrdersHandler) CompleteOrder(w http.ResponseWriter, r *http.Request) {
	identity, ok := GetIdentity(r.Context())
	if !ok {
		writeError(w, r, h.logger, domain.ErrUnauthorized)
		return
	}

	orderID, err := idParam(r, "orderId")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	var req completeOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if req.PaymentMethod == "" || req.WalletAmount == nil {
		writeError(w, r, h.logger, domain.ErrInvalidInput)
		return
	}

	order, err := h.orderService.CompleteOrder(r.Context(), identity, orderID, domain.CompleteOrderInput{
		PaymentMethod: req.PaymentMethod,
		WalletAmount:  *req.WalletAmount,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, completeOrderResponse{
		Message:   "Order completed successfully",
		OrderInfo: order,
	})
}

// GetMyOrders возвращает заказы текущего пользователя
func (h *OrdersHandler) GetMyOrders(w http.ResponseWriter, r *http.Request) {
	identity, ok := GetIdentity(r.Context())
	if !ok {
		writeError(w, r, h.logger, domain.ErrUnauthorized)
		return
	}

	orders, err := h.orderService.GetUserOrders(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, orders)
}

// GetAllOrders возвращает все заказы администратору и собственные заказы пользователю
func (h *OrdersHandler) GetAllOrders(w http.ResponseWriter, r *http.Request) {
	identity, ok := GetIdentity(r.Context())
	if !ok {
		writeError(w, r, h.logger, domain.ErrUnauthorized)
		return
	}

	orders, err := h.orderService.GetAllOrders(r.Context(), identity)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, orders)
}

// GetOrder возвращает заказ владельцу или администратору
func (h *OrdersHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	identity, ok := GetIdentity(r.Context())
	if !ok {
		writeError(w, r, h.logger, domain.ErrUnauthorized)
		return
	}

	orderID, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	order, err := h.orderService.GetOrder(r.Context(), identity, orderID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, order)
}

// UpdateOrder изменяет незавершенный заказ
func (h *OrdersHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	identity, ok := GetIdentity(r.Context())
	if !ok {
		writeError(w, r, h.logger, domain.ErrUnauthorized)
		return
	}

	orderID, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	var req updateOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	order, err := h.orderService.UpdateOrder(r.Context(), identity, orderID, domain.UpdateOrderInput{
		Items:        req.Items,
		RemovedItems: req.RemovedItems,
		CouponCode:   strings.TrimSpace(req.CouponCode),
		RemoveCoupon: req.RemoveCoupon,
		WalletAmount: req.WalletAmount,
		Notes:        req.Notes,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, order)
}

// UpdateStatus переводит заказ в новый статус
func (h *OrdersHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	order, err := h.orderService.UpdateStatus(r.Context(), orderID, req.Status)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, order)
}

// AdminUpdateOrder изменяет заказ от имени администратора
func (h *OrdersHandler) AdminUpdateOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	var req adminUpdateOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	order, err := h.orderService.AdminUpdateOrder(r.Context(), orderID, domain.AdminUpdateOrderInput{
		Items:        req.Items,
		CouponCode:   strings.TrimSpace(req.CouponCode),
		RemoveCoupon: req.RemoveCoupon,
		WalletAmount: req.WalletAmount,
		Status:       req.Status,
		Notes:        req.Notes,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, order)
}

// CancelOrder отменяет и удаляет заказ
func (h *OrdersHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	identity, ok := GetIdentity(r.Context())
	if !ok {
		writeError(w, r, h.logger, domain.ErrUnauthorized)
		return
	}

	orderID, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if err := h.orderService.CancelOrder(r.Context(), identity, orderID); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, messageResponse{Message: "Order canceled successfully"})
}
