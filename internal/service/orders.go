package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/linecoffee/internal/domain"
	"go.uber.org/zap"
)

const notificationKindOrder = "order"

// OrderDeps содержит зависимости OrderService
type OrderDeps struct {
	Orders   domain.OrderRepository
	Users    domain.UserRepository
	Products domain.ProductRepository
	Coupons  domain.CouponRepository
	Wallets  domain.WalletRepository
	Coins    domain.CoinRepository
	Payments domain.PaymentRepository
	Notifier domain.Notifier
	Alerts   domain.AlertDispatcher
	Logger   *zap.Logger

	// CoinsPerAmount задает, сколько единиц валюты дают одну монету
	CoinsPerAmount int64
}

// OrderService реализует domain.OrderService
type OrderService struct {
	orders   domain.OrderRepository
	users    domain.UserRepository
	products domain.ProductRepository
	coupons  domain.CouponRepository
	wallets  domain.WalletRepository
	coins    domain.CoinRepository
	payments domain.PaymentRepository
	notifier domain.Notifier
	alerts   domain.AlertDispatcher
	logger   *zap.Logger

	coinsPerAmount int64
}

// NewOrderService создает новый OrderService
func NewOrderService(deps OrderDeps) *OrderService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &OrderService{
		orders:         deps.Orders,
		users:          deps.Users,
		products:       deps.Products,
		coupons:        deps.Coupons,
		wallets:        deps.Wallets,
		coins:          deps.Coins,
		payments:       deps.Payments,
		notifier:       deps.Notifier,
		alerts:         deps.Alerts,
		logger:         logger,
		coinsPerAmount: deps.CoinsPerAmount,
	}
}

// CreateOrder создает заказ в статусе pending по текущим ценам.
// Кошелек не списывается и купон не погашается до завершения заказа.
func (s *OrderService) CreateOrder(ctx context.Context, actor domain.Identity, in domain.CreateOrderInput) (order *domain.Order, err error) {
	defer func() { observe("create", err) }()

	if err := validateItems(in.Items); err != nil {
		return nil, err
	}
	if in.WalletAmount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	user, err := s.users.GetUserByID(ctx, actor.UserID)
	if err != nil {
		return nil, wrap(err, "order service: failed to get user %d", actor.UserID)
	}

	wallet, err := s.wallets.GetWallet(ctx, actor.UserID)
	if err != nil {
		return nil, wrap(err, "order service: failed to get wallet for user %d", actor.UserID)
	}

	items, err := s.priceItems(ctx, in.Items)
	if err != nil {
		return nil, err
	}

	coupon, err := s.resolveCoupon(ctx, in.CouponCode)
	if err != nil {
		return nil, err
	}

	if in.WalletAmount.GreaterThan(wallet.Balance) {
		return nil, domain.ErrInsufficientFunds
	}

	order = &domain.Order{
		UserID:   actor.UserID,
		Customer: user,
		Items:    items,
		Status:   domain.OrderStatusPending,
	}
	setCoupon(order, coupon)
	order.Reprice(coupon, in.WalletAmount)

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, wrap(err, "order service: failed to create order for user %d", actor.UserID)
	}

	s.logger.Info("order created",
		zap.Int64("order_id", order.ID),
		zap.Int64("user_id", order.UserID),
		zap.String("final_amount", order.FinalAmount.String()),
	)

	return order, nil
}

// CompleteOrder фиксирует способ оплаты: списывает кошелек, погашает купон,
// создает платеж и уведомляет пользователя и оператора
func (s *OrderService) CompleteOrder(ctx context.Context, actor domain.Identity, orderID int64, in domain.CompleteOrderInput) (order *domain.Order, err error) {
	defer func() { observe("complete", err) }()

	order, err = s.ownedOrder(ctx, actor, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.OrderStatusPending || order.Completed() {
		return nil, domain.ErrInvalidState
	}
	if !in.PaymentMethod.Valid() {
		return nil, domain.ErrInvalidPaymentMethod
	}
	if in.WalletAmount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	coupon, err := s.linkedCoupon(ctx, order)
	if err != nil {
		return nil, err
	}
	if coupon != nil && !coupon.Applicable() {
		return nil, domain.ErrInvalidCoupon
	}

	pricing := domain.Price(order.TotalAmount, coupon, in.WalletAmount)

	wallet, err := s.wallets.GetWallet(ctx, order.UserID)
	if err != nil {
		return nil, wrap(err, "order service: failed to get wallet for user %d", order.UserID)
	}
	if in.WalletAmount.GreaterThan(wallet.Balance) {
		return nil, domain.ErrInsufficientFunds
	}

	if coupon != nil {
		if err := s.coupons.ClaimCoupon(ctx, coupon.ID); err != nil {
			return nil, wrap(err, "order service: failed to claim coupon %d", coupon.ID)
		}
	}

	if pricing.Wallet.IsPositive() {
		if err := s.wallets.Debit(ctx, order.UserID, pricing.Wallet); err != nil {
			if coupon != nil {
				s.releaseCoupon(ctx, coupon.ID)
			}
			return nil, wrap(err, "order service: failed to debit wallet of user %d", order.UserID)
		}
	}

	order.ApplyPricing(pricing)
	order.WalletRequested = in.WalletAmount
	order.PaymentMethod = in.PaymentMethod

	if err := s.orders.UpdateOrder(ctx, order); err != nil {
		return nil, wrap(err, "order service: failed to complete order %d", order.ID)
	}

	payment := &domain.Payment{
		OrderID: order.ID,
		UserID:  order.UserID,
		Method:  in.PaymentMethod,
		Amount:  order.FinalAmount,
		Status:  domain.PaymentStatusPending,
	}
	if err := s.payments.UpsertPayment(ctx, payment); err != nil {
		return nil, wrap(err, "order service: failed to record payment for order %d", order.ID)
	}

	s.notify(ctx, order.UserID, "Order Placed Successfully",
		fmt.Sprintf("Your order #%d has been placed. Amount due: %s (%s).", order.ID, order.FinalAmount.StringFixed(2), order.PaymentMethod))

	order = s.reload(ctx, order)
	s.dispatch(domain.AlertOrderPlaced, order)

	return order, nil
}

// GetOrder получает заказ, доступный пользователю
func (s *OrderService) GetOrder(ctx context.Context, actor domain.Identity, orderID int64) (*domain.Order, error) {
	return s.ownedOrder(ctx, actor, orderID)
}

// GetUserOrders получает все заказы пользователя
func (s *OrderService) GetUserOrders(ctx context.Context, userID int64) ([]*domain.Order, error) {
	orders, err := s.orders.GetOrdersByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("order service: failed to get orders for user %d: %w", userID, err)
	}
	if orders == nil {
		orders = []*domain.Order{}
	}

	return orders, nil
}

// GetAllOrders возвращает все заказы администратору и собственные заказы пользователю
func (s *OrderService) GetAllOrders(ctx context.Context, actor domain.Identity) ([]*domain.Order, error) {
	if !actor.IsAdmin() {
		return s.GetUserOrders(ctx, actor.UserID)
	}

	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("order service: failed to list orders: %w", err)
	}
	if orders == nil {
		orders = []*domain.Order{}
	}

	return orders, nil
}

// UpdateOrder изменяет позиции, купон, сумму из кошелька и заметки заказа
// до выбора способа оплаты
func (s *OrderService) UpdateOrder(ctx context.Context, actor domain.Identity, orderID int64, in domain.UpdateOrderInput) (order *domain.Order, err error) {
	defer func() { observe("update", err) }()

	order, err = s.ownedOrder(ctx, actor, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.OrderStatusPending || order.Completed() {
		return nil, domain.ErrInvalidState
	}

	merged := mergeItems(order.Items, in.RemovedItems, in.Items)
	if err := validateItems(merged); err != nil {
		return nil, err
	}

	items, err := s.priceItems(ctx, merged)
	if err != nil {
		return nil, err
	}

	// Купон до завершения заказа не погашен, поэтому прежний просто заменяется
	var coupon *domain.Coupon
	switch {
	case in.RemoveCoupon:
	case in.CouponCode != "":
		if coupon, err = s.resolveCoupon(ctx, in.CouponCode); err != nil {
			return nil, err
		}
	default:
		if coupon, err = s.applicableLinkedCoupon(ctx, order); err != nil {
			return nil, err
		}
	}

	walletAmount := order.WalletRequested
	if in.WalletAmount != nil {
		if in.WalletAmount.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		wallet, err := s.wallets.GetWallet(ctx, order.UserID)
		if err != nil {
			return nil, wrap(err, "order service: failed to get wallet for user %d", order.UserID)
		}
		if in.WalletAmount.GreaterThan(wallet.Balance) {
			return nil, domain.ErrInsufficientFunds
		}
		walletAmount = *in.WalletAmount
	}

	if in.Notes != nil {
		order.Notes = *in.Notes
	}

	order.Items = items
	setCoupon(order, coupon)
	order.Reprice(coupon, walletAmount)

	if err := s.save(ctx, order); err != nil {
		return nil, err
	}

	return s.reload(ctx, order), nil
}

// UpdateStatus переводит заказ по машине состояний pending -> delivered | canceled.
// Доставка начисляет монеты и окончательно погашает купон ровно один раз.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID int64, status domain.OrderStatus) (order *domain.Order, err error) {
	defer func() { observe("update_status", err) }()

	if !status.Valid() {
		return nil, domain.ErrInvalidInput
	}

	order, err = s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, wrap(err, "order service: failed to get order %d", orderID)
	}

	switch status {
	case domain.OrderStatusPending:
		if order.Status != domain.OrderStatusPending {
			return nil, domain.ErrInvalidState
		}
		return order, nil

	case domain.OrderStatusCanceled:
		err := s.orders.TransitionStatus(ctx, order.ID, domain.OrderStatusPending, domain.OrderStatusCanceled)
		if err != nil {
			return nil, wrap(err, "order service: failed to cancel order %d", order.ID)
		}

	case domain.OrderStatusDelivered:
		if err := s.deliver(ctx, order); err != nil {
			return nil, err
		}
	}

	s.logger.Info("order status changed",
		zap.Int64("order_id", order.ID),
		zap.String("from", string(order.Status)),
		zap.String("to", string(status)),
	)

	return s.reload(ctx, order), nil
}

func (s *OrderService) deliver(ctx context.Context, order *domain.Order) error {
	coins := domain.CoinsFor(order.FinalAmount, s.coinsPerAmount)

	orderID := order.ID
	earned := &domain.CoinEntry{
		UserID:      order.UserID,
		Action:      domain.CoinActionEarn,
		Amount:      coins,
		Description: fmt.Sprintf("Earned for order #%d", order.ID),
		OrderID:     &orderID,
	}

	// Условный переход и начисление монет выполняются одной транзакцией
	if err := s.orders.DeliverOrder(ctx, order.ID, earned); err != nil {
		return wrap(err, "order service: failed to deliver order %d", order.ID)
	}
	order.CoinsEarned += coins

	if order.CouponID != nil {
		err := s.coupons.FinalizeCoupon(ctx, *order.CouponID)
		if err != nil && !errors.Is(err, domain.ErrCouponNotFound) {
			return wrap(err, "order service: failed to finalize coupon %d", *order.CouponID)
		}
	}

	s.notify(ctx, order.UserID, "Order Delivered",
		fmt.Sprintf("Your order #%d has been delivered. You earned %d coins.", order.ID, coins))

	return nil
}

// AdminUpdateOrder изменяет заказ от имени администратора.
// Недопустимый переход статуса отклоняется до любых изменений, сам переход
// выполняется через UpdateStatus после сохранения остальных полей.
func (s *OrderService) AdminUpdateOrder(ctx context.Context, orderID int64, in domain.AdminUpdateOrderInput) (order *domain.Order, err error) {
	defer func() { observe("admin_update", err) }()

	if in.Status != "" && !in.Status.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if in.WalletAmount != nil && in.WalletAmount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	order, err = s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, wrap(err, "order service: failed to get order %d", orderID)
	}

	changeStatus := in.Status != "" && in.Status != order.Status
	if changeStatus && !order.Status.CanMoveTo(in.Status) {
		return nil, domain.ErrInvalidState
	}

	if in.Items != nil {
		if err := validateItems(in.Items); err != nil {
			return nil, err
		}
		items, err := s.priceItems(ctx, in.Items)
		if err != nil {
			return nil, err
		}
		order.Items = items
	}

	var coupon *domain.Coupon
	if order.Completed() {
		// Завершенный заказ сам погасил свой купон
		coupon, err = s.linkedCoupon(ctx, order)
	} else {
		coupon, err = s.applicableLinkedCoupon(ctx, order)
	}
	if err != nil {
		return nil, err
	}

	switch {
	case in.RemoveCoupon:
		if coupon != nil && order.Completed() {
			s.releaseCoupon(ctx, coupon.ID)
		}
		coupon = nil

	case in.CouponCode != "" && in.CouponCode != order.CouponCode:
		next, err := s.resolveCoupon(ctx, in.CouponCode)
		if err != nil {
			return nil, err
		}
		// Завершенный заказ удерживает купон, поэтому новый погашается, а прежний освобождается
		if order.Completed() {
			if err := s.coupons.ClaimCoupon(ctx, next.ID); err != nil {
				return nil, wrap(err, "order service: failed to claim coupon %d", next.ID)
			}
			if coupon != nil {
				s.releaseCoupon(ctx, coupon.ID)
			}
		}
		coupon = next
	}

	walletAmount := order.WalletRequested
	if in.WalletAmount != nil {
		walletAmount = *in.WalletAmount
	}

	if in.Notes != nil {
		order.Notes = *in.Notes
	}

	setCoupon(order, coupon)
	order.Reprice(coupon, walletAmount)

	if err := s.save(ctx, order); err != nil {
		return nil, err
	}

	if changeStatus {
		return s.UpdateStatus(ctx, order.ID, in.Status)
	}

	return s.reload(ctx, order), nil
}

// CancelOrder удаляет заказ: освобождает купон, списывает начисленные монеты
// и уведомляет оператора. Средства кошелька не возвращаются.
func (s *OrderService) CancelOrder(ctx context.Context, actor domain.Identity, orderID int64) (err error) {
	defer func() { observe("cancel", err) }()

	order, err := s.ownedOrder(ctx, actor, orderID)
	if err != nil {
		return err
	}

	if order.CouponID != nil && order.Completed() {
		s.releaseCoupon(ctx, *order.CouponID)
	}

	if order.CoinsEarned > 0 {
		id := order.ID
		entry := &domain.CoinEntry{
			UserID:      order.UserID,
			Action:      domain.CoinActionReverse,
			Amount:      -order.CoinsEarned,
			Description: fmt.Sprintf("Reversed for canceled order #%d", order.ID),
			OrderID:     &id,
		}
		if err := s.coins.Append(ctx, entry); err != nil {
			return wrap(err, "order service: failed to reverse coins for order %d", order.ID)
		}
	}

	if err := s.orders.DeleteOrder(ctx, order.ID); err != nil {
		return wrap(err, "order service: failed to delete order %d", order.ID)
	}

	s.logger.Info("order canceled",
		zap.Int64("order_id", order.ID),
		zap.Int64("actor_id", actor.UserID),
		zap.Int64("coins_reversed", order.CoinsEarned),
	)

	s.dispatch(domain.AlertOrderCanceled, order)

	return nil
}

// ownedOrder получает заказ и проверяет, что он принадлежит пользователю или пользователь администратор
func (s *OrderService) ownedOrder(ctx context.Context, actor domain.Identity, orderID int64) (*domain.Order, error) {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, wrap(err, "order service: failed to get order %d", orderID)
	}

	if !actor.CanAccess(order.UserID) {
		return nil, domain.ErrForbidden
	}

	return order, nil
}

// priceItems фиксирует текущие цены товаров в позициях заказа
func (s *OrderService) priceItems(ctx context.Context, in []domain.ItemInput) ([]domain.OrderItem, error) {
	items := make([]domain.OrderItem, 0, len(in))
	for _, item := range in {
		product, err := s.products.GetProductByID(ctx, item.ProductID)
		if err != nil {
			return nil, wrap(err, "order service: failed to get product %d", item.ProductID)
		}
		items = append(items, domain.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			UnitPrice:   product.Price,
			Quantity:    item.Quantity,
		})
	}
	return items, nil
}

// resolveCoupon находит применимый купон по коду. Пустой код означает отсутствие купона.
func (s *OrderService) resolveCoupon(ctx context.Context, code string) (*domain.Coupon, error) {
	if code == "" {
		return nil, nil
	}

	coupon, err := s.coupons.GetCouponByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrCouponNotFound) {
			return nil, domain.ErrInvalidCoupon
		}
		return nil, fmt.Errorf("order service: failed to get coupon %q: %w", code, err)
	}

	if !coupon.Applicable() {
		return nil, domain.ErrInvalidCoupon
	}

	return coupon, nil
}

// linkedCoupon получает купон, привязанный к заказу, если он есть
func (s *OrderService) linkedCoupon(ctx context.Context, order *domain.Order) (*domain.Coupon, error) {
	if order.CouponID == nil {
		return nil, nil
	}

	coupon, err := s.coupons.GetCouponByID(ctx, *order.CouponID)
	if err != nil {
		if errors.Is(err, domain.ErrCouponNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("order service: failed to get coupon %d: %w", *order.CouponID, err)
	}

	return coupon, nil
}

// applicableLinkedCoupon получает купон незавершенного заказа. Купон, который
// тем временем погасил другой заказ или отключил администратор, отвязывается.
func (s *OrderService) applicableLinkedCoupon(ctx context.Context, order *domain.Order) (*domain.Coupon, error) {
	coupon, err := s.linkedCoupon(ctx, order)
	if err != nil || coupon == nil {
		return nil, err
	}

	if !coupon.Applicable() {
		s.logger.Info("dropping coupon that is no longer applicable",
			zap.Int64("order_id", order.ID),
			zap.String("coupon", coupon.Code),
		)
		return nil, nil
	}

	return coupon, nil
}

func (s *OrderService) releaseCoupon(ctx context.Context, couponID int64) {
	if err := s.coupons.ReleaseCoupon(ctx, couponID); err != nil && !errors.Is(err, domain.ErrCouponNotFound) {
		s.logger.Error("failed to release coupon", zap.Int64("coupon_id", couponID), zap.Error(err))
	}
}

// save сохраняет заказ и синхронизирует сумму платежа, если он уже создан
func (s *OrderService) save(ctx context.Context, order *domain.Order) error {
	if err := s.orders.UpdateOrder(ctx, order); err != nil {
		return wrap(err, "order service: failed to update order %d", order.ID)
	}

	if err := s.payments.SyncPayment(ctx, order.ID, order.FinalAmount, order.PaymentMethod); err != nil {
		return fmt.Errorf("order service: failed to sync payment for order %d: %w", order.ID, err)
	}

	return nil
}

// reload перечитывает заказ после изменения; при ошибке возвращает локальную копию
func (s *OrderService) reload(ctx context.Context, order *domain.Order) *domain.Order {
	fresh, err := s.orders.GetOrderByID(ctx, order.ID)
	if err != nil {
		s.logger.Warn("failed to reload order", zap.Int64("order_id", order.ID), zap.Error(err))
		return order
	}
	return fresh
}

func (s *OrderService) notify(ctx context.Context, userID int64, title, message string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, userID, title, message, notificationKindOrder); err != nil {
		s.logger.Warn("failed to create notification", zap.Int64("user_id", userID), zap.Error(err))
	}
}

func (s *OrderService) dispatch(kind domain.AlertKind, order *domain.Order) {
	if s.alerts == nil {
		return
	}

	if !s.alerts.Dispatch(&domain.OperatorAlert{Kind: kind, Order: order}) {
		alertsDispatched.WithLabelValues(string(kind), "dropped").Inc()
		s.logger.Warn("operator alert dropped", zap.String("kind", string(kind)), zap.Int64("order_id", order.ID))
		return
	}
	alertsDispatched.WithLabelValues(string(kind), "queued").Inc()
}

func setCoupon(order *domain.Order, coupon *domain.Coupon) {
	if coupon == nil {
		order.CouponID = nil
		order.CouponCode = ""
		return
	}
	id := coupon.ID
	order.CouponID = &id
	order.CouponCode = coupon.Code
}

// validateItems проверяет, что заказ не пуст и количества положительны
func validateItems(items []domain.ItemInput) error {
	if len(items) == 0 {
		return domain.ErrEmptyOrder
	}
	for _, item := range items {
		if item.Quantity < 1 || item.ProductID <= 0 {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

// mergeItems удаляет позиции removed и применяет updates к текущим позициям:
// количество существующего товара заменяется, новый товар добавляется в конец
func mergeItems(current []domain.OrderItem, removed []int64, updates []domain.ItemInput) []domain.ItemInput {
	skip := make(map[int64]struct{}, len(removed))
	for _, id := range removed {
		skip[id] = struct{}{}
	}

	merged := make([]domain.ItemInput, 0, len(current)+len(updates))
	index := make(map[int64]int, len(current))
	for _, item := range current {
		if _, ok := skip[item.ProductID]; ok {
			continue
		}
		index[item.ProductID] = len(merged)
		merged = append(merged, domain.ItemInput{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	for _, upd := range updates {
		if i, ok := index[upd.ProductID]; ok {
			merged[i].Quantity = upd.Quantity
			continue
		}
		index[upd.ProductID] = len(merged)
		merged = append(merged, upd)
	}

	return merged
}

var _ domain.OrderService = (*OrderService)(nil)

