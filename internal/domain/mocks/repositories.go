package mocks

import (
	"context"

	"github.com/avc/linecoffee/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// UserRepositoryMock мок domain.UserRepository
type UserRepositoryMock struct{ mock.Mock }

// NewUserRepositoryMock создает мок и проверяет ожидания по завершении теста
func NewUserRepositoryMock(t testingT) *UserRepositoryMock {
	m := &UserRepositoryMock{}
	setup(&m.Mock, t)
	return m
}

type UserRepositoryExpecter struct{ m *mock.Mock }

func (m *UserRepositoryMock) EXPECT() *UserRepositoryExpecter { return &UserRepositoryExpecter{&m.Mock} }

func (e *UserRepositoryExpecter) GetUserByID(ctx, id any) *mock.Call {
	return e.m.On("GetUserByID", ctx, id)
}

func (m *UserRepositoryMock) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	return get[*domain.User](args, 0), args.Error(1)
}

// ProductRepositoryMock мок domain.ProductRepository
type ProductRepositoryMock struct{ mock.Mock }

func NewProductRepositoryMock(t testingT) *ProductRepositoryMock {
	m := &ProductRepositoryMock{}
	setup(&m.Mock, t)
	return m
}

type ProductRepositoryExpecter struct{ m *mock.Mock }

func (m *ProductRepositoryMock) EXPECT() *ProductRepositoryExpecter {
	return &ProductRepositoryExpecter{&m.Mock}
}

func (e *ProductRepositoryExpecter) GetProductByID(ctx, id any) *mock.Call {
	return e.m.On("GetProductByID", ctx, id)
}

func (e *ProductRepositoryExpecter) ListProducts(ctx, filter any) *mock.Call {
	return e.m.On("ListProducts", ctx, filter)
}

func (e *ProductRepositoryExpecter) RecalculateRating(ctx, productID any) *mock.Call {
	return e.m.On("RecalculateRating", ctx, productID)
}

func (m *ProductRepositoryMock) GetProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	return get[*domain.Product](args, 0), args.Error(1)
}

func (m *ProductRepositoryMock) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	args := m.Called(ctx, filter)
	return get[[]*domain.Product](args, 0), args.Error(1)
}

func (m *ProductRepositoryMock) RecalculateRating(ctx context.Context, productID int64) error {
	return m.Called(ctx, productID).Error(0)
}

// OrderRepositoryMock мок domain.OrderRepository
type OrderRepositoryMock struct{ mock.Mock }

func NewOrderRepositoryMock(t testingT) *OrderRepositoryMock {
	m := &OrderRepositoryMock{}
	setup(&m.Mock, t)
	return m
}

type OrderRepositoryExpecter struct{ m *mock.Mock }

func (m *OrderRepositoryMock) EXPECT() *OrderRepositoryExpecter { return &OrderRepositoryExpecter{&m.Mock} }

func (e *OrderRepositoryExpecter) CreateOrder(ctx, order any) *mock.Call {
	return e.m.On("CreateOrder", ctx, order)
}

func (e *OrderRepositoryExpecter) GetOrderByID(ctx, id any) *mock.Call {
	return e.m.On("GetOrderByID", ctx, id)
}

func (e *OrderRepositoryExpecter) GetOrdersByUserID(ctx, userID any) *mock.Call {
	return e.m.On("GetOrdersByUserID", ctx, userID)
}

func (e *OrderRepositoryExpecter) ListOrders(ctx any) *mock.Call {
	return e.m.On("ListOrders", ctx)
}

func (e *OrderRepositoryExpecter) UpdateOrder(ctx, order any) *mock.Call {
	return e.m.On("UpdateOrder", ctx, order)
}

func (e *OrderRepositoryExpecter) TransitionStatus(ctx, id, from, to any) *mock.Call {
	return e.m.On("TransitionStatus", ctx, id, from, to)
}

func (e *OrderRepositoryExpecter) DeliverOrder(ctx, id, earned any) *mock.Call {
	return e.m.On("DeliverOrder", ctx, id, earned)
}

func (e *OrderRepositoryExpecter) DeleteOrder(ctx, id any) *mock.Call {
	return e.m.On("DeleteOrder", ctx, id)
}

func (e *OrderRepositoryExpecter) HasPurchased(ctx, userID, productID any) *mock.Call {
	return e.m.On("HasPurchased", ctx, userID, productID)
}

func (m *OrderRepositoryMock) CreateOrder(ctx context.Context, order *domain.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *OrderRepositoryMock) GetOrderByID(ctx context.Context, id int64) (*domain.Order, error) {
	args := m.Called(ctx, id)
	return get[*domain.Order](args, 0), args.Error(1)
}

func (m *OrderRepositoryMock) GetOrdersByUserID(ctx context.Context, userID int64) ([]*domain.Order, error) {
	args := m.Called(ctx, userID)
	return get[[]*domain.Order](args, 0), args.Error(1)
}

func (m *OrderRepositoryMock) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	args := m.Called(ctx)
	return get[[]*domain.Order](args, 0), args.Error(1)
}

func (m *OrderRepositoryMock) UpdateOrder(ctx context.Context, order *domain.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *OrderRepositoryMock) TransitionStatus(ctx context.Context, id int64, from, to domain.OrderStatus) error {
	return m.Called(ctx, id, from, to).Error(0)
}

func (m *OrderRepositoryMock) DeliverOrder(ctx context.Context, id int64, earned *domain.CoinEntry) error {
	return m.Called(ctx, id, earned).Error(0)
}

func (m *OrderRepositoryMock) DeleteOrder(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *OrderRepositoryMock) HasPurchased(ctx context.Context, userID, productID int64) (bool, error) {
	args := m.Called(ctx, userID, productID)
	return args.Bool(0), args.Error(1)
}

// CouponRepositoryMock мок domain.CouponRepository
type CouponRepositoryMock struct{ mock.Mock }

func NewCouponRepositoryMock(t testingT) *CouponRepositoryMock {
	m := &CouponRepositoryMock{}
	setup(&m.Mock, t)
	return m
}

type CouponRepositoryExpecter struct{ m *mock.Mock }

func (m *CouponRepositoryMock) EXPECT() *CouponRepositoryExpecter { return &CouponRepositoryExpecter{&m.Mock} }

func (e *CouponRepositoryExpecter) CreateCoupon(ctx, coupon any) *mock.Call {
	return e.m.On("CreateCoupon", ctx, coupon)
}

func (e *CouponRepositoryExpecter) GetCouponByCode(ctx, code any) *mock.Call {
	return e.m.On("GetCouponByCode", ctx, code)
}

func (e *CouponRepositoryExpecter) GetCouponByID(ctx, id any) *mock.Call {
	return e.m.On("GetCouponByID", ctx, id)
}

func (e *CouponRepositoryExpecter) ListCoupons(ctx any) *mock.Call {
	return e.m.On("ListCoupons", ctx)
}

func (e *CouponRepositoryExpecter) ClaimCoupon(ctx, id any) *mock.Call {
	return e.m.On("ClaimCoupon", ctx, id)
}

func (e *CouponRepositoryExpecter) ReleaseCoupon(ctx, id any) *mock.Call {
	return e.m.On("ReleaseCoupon", ctx, id)
}

func (e *CouponRepositoryExpecter) FinalizeCoupon(ctx, id any) *mock.Call {
	return e.m.On("FinalizeCoupon", ctx, id)
}

func (m *CouponRepositoryMock) CreateCoupon(ctx context.Context, coupon *domain.Coupon) error {
	return m.Called(ctx, coupon).Error(0)
}

func (m *CouponRepositoryMock) GetCouponByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	args := m.Called(ctx, code)
	return get[*domain.Coupon](args, 0), args.Error(1)
}

func (m *CouponRepositoryMock) GetCouponByID(ctx context.Context, id int64) (*domain.Coupon, error) {
	args := m.Called(ctx, id)
	return get[*domain.Coupon](args, 0), args.Error(1)
}

func (m *CouponRepositoryMock) ListCoupons(ctx context.Context) ([]*domain.Coupon, error) {
	args := m.Called(ctx)
	return get[[]*domain.Coupon](args, 0), args.Error(1)
}

func (m *CouponRepositoryMock) ClaimCoupon(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *CouponRepositoryMock) ReleaseCoupon(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *CouponRepositoryMock) FinalizeCoupon(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// WalletRepositoryMock мок domain.WalletRepository
type WalletRepositoryMock struct{ mock.Mock }

func NewWalletRepositoryMock(t testingT) *WalletRepositoryMock {
	m := &WalletRepositoryMock{}
	setup(&m.Mock, t)
	return m
}

type WalletRepositoryExpecter struct{ m *mock.Mock }

func (m *WalletRepositoryMock) EXPECT() *WalletRepositoryExpecter { return &WalletRepositoryExpecter{&m.Mock} }

func (e *WalletRepositoryExpecter) GetWallet(ctx, userID any) *mock.Call {
	return e.m.On("GetWallet", ctx, userID)
}

func (e *WalletRepositoryExpecter) Debit(ctx, userID, amount any) *mock.Call {
	return e.m.On("Debit", ctx, userID, amount)
}

func (e *WalletRepositoryExpecter) Credit(ctx, userID, amount any) *mock.Call {
	return e.m.On("Credit", ctx, userID, amount)
}

func (m *WalletRepositoryMock) GetWallet(ctx context.Context, userID int64) (*domain.Wallet, error) {
	args := m.Called(ctx, userID)
	return get[*domain.Wallet](args, 0), args.Error(1)
}

func (m *WalletRepositoryMock) Debit(ctx context.Context, userID int64, amount decimal.Decimal) error {
	return m.Called(ctx, userID, amount).Error(0)
}

func (m *WalletRepositoryMock) Credit(ctx context.Context, userID int64, amount decimal.Decimal) (*domain.Wallet, error) {
	args := m.Called(ctx, userID, amount)
	return get[*domain.Wallet](args, 0), args.Error(1)
}

// CoinRepositoryMock мок domain.CoinRepository
type CoinRepositoryMock struct{ mock.Mock }

func NewCoinRepositoryMock(t testingT) *CoinRepositoryMock {
	m := &CoinRepositoryMock{}
	setup(&m.Mock, t)
	return m
}

type CoinRepositoryExpecter struct{ m *mock.Mock }

func (m *CoinRepositoryMock) EXPECT() *CoinRepositoryExpecter { return &CoinRepositoryExpecter{&m.Mock} }

func (e *CoinRepositoryExpecter) GetLedger(ctx, userID any) *mock.Call {
	return e.m.On("GetLedger", ctx, userID)
}

func (e *CoinRepositoryExpecter) Append(ctx, entry any) *mock.Call {
	return e.m.On("Append", ctx, entry)
}

func (m *CoinRepositoryMock) GetLedger(ctx context.Context, userID int64) (*domain.CoinLedger, error) {
	args := m.Called(ctx, userID)
	return get[*domain.CoinLedger](args, 0), args.Error(1)
}

func (m *CoinRepositoryMock) Append(ctx context.Context, entry *domain.CoinEntry) error {
	return m.Called(ctx, entry).Error(0)
}

// PaymentRepositoryMock мок domain.PaymentRepository
type PaymentRepositoryMock struct{ mock.Mock }

func NewPaymentRepositoryMock(t testingT) *PaymentRepositoryMock {
	m := &PaymentRepositoryMock{}
	setup(&m.Mock, t)
	return m
}

type PaymentRepositoryExpecter struct{ m *mock.Mock }

func (m *PaymentRepositoryMock) EXPECT() *PaymentRepositoryExpecter {
	return &PaymentRepositoryExpecter{&m.Mock}
}

func (e *PaymentRepositoryExpecter) UpsertPayment(ctx, payment any) *mock.Call {
	return e.m.On("UpsertPayment", ctx, payment)
}

func (e *PaymentRepositoryExpecter) SyncPayment(ctx, orderID, amount, method any) *mock.Call {
	return e.m.On("SyncPayment", ctx, orderID, amount, method)
}

func (e *PaymentRepositoryExpecter) GetPaymentByOrderID(ctx, orderID any) *mock.Call {
	return e.m.On("GetPaymentByOrderID", ctx, orderID)
}

func (e *PaymentRepositoryExpecter) ListPayments(ctx any) *mock.Call {
	return e.m.On("ListPayments", ctx)
}

func (m *PaymentRepositoryMock) UpsertPayment(ctx context.Context, payment *domain.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *PaymentRepositoryMock) SyncPayment(ctx context.Context, orderID int64, amount decimal.Decimal, method domain.PaymentMethod) error {
	return m.Called(ctx, orderID, amount, method).Error(0)
}

func (m *PaymentRepositoryMock) GetPaymentByOrderID(ctx context.Context, orderID int64) (*domain.Payment, error) {
	args := m.Called(ctx, orderID)
	return get[*domain.Payment](args, 0), args.Error(1)
}

func (m *PaymentRepositoryMock) ListPayments(ctx context.Context) ([]*domain.Payment, error) {
	args := m.Called(ctx)
	return get[[]*domain.Payment](args, 0), args.Error(1)
}

// NotificationRepositoryMock мок domain.NotificationRepository
type NotificationRepositoryMock struct{ mock.Mock }

func NewNotificationRepositoryMock(t testingT) *NotificationRepositoryMock {
	m := &NotificationRepositoryMock{}
	setup(&m.Mock, t)
	return m
}

type NotificationRepositoryExpecter struct{ m *mock.Mock }

func (m *NotificationRepositoryMock) EXPECT() *NotificationRepositoryExpecter {
	return &NotificationRepositoryExpecter{&m.Mock}
}

func (e *NotificationRepositoryExpecter) CreateNotification(ctx, n any) *mock.Call {
	return e.m.On("CreateNotification", ctx, n)
}

func (e *NotificationRepositoryExpecter) GetNotificationsByUserID(ctx, userID any) *mock.Call {
	return e.m.On("GetNotificationsByUserID", ctx, userID)
}

func (e *NotificationRepositoryExpecter) MarkRead(ctx, userID, id any) *mock.Call {
	return e.m.On("MarkRead", ctx, userID, id)
}

func (m *NotificationRepositoryMock) CreateNotification(ctx context.Context, n *domain.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *NotificationRepositoryMock) GetNotificationsByUserID(ctx context.Context, userID int64) ([]*domain.Notification, error) {
	args := m.Called(ctx, userID)
	return get[[]*domain.Notification](args, 0), args.Error(1)
}

func (m *NotificationRepositoryMock) MarkRead(ctx context.Context, userID, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

// ReviewRepositoryMock мок domain.ReviewRepository
type ReviewRepositoryMock struct{ mock.Mock }

func NewReviewRepositoryMock(t testingT) *ReviewRepositoryMock {
	m := &ReviewRepositoryMock{}
	setup(&m.Mock, t)
	return m
}

type ReviewRepositoryExpecter struct{ m *mock.Mock }

func (m *ReviewRepositoryMock) EXPECT() *ReviewRepositoryExpecter { return &ReviewRepositoryExpecter{&m.Mock} }

func (e *ReviewRepositoryExpecter) CreateReview(ctx, review any) *mock.Call {
	return e.m.On("CreateReview", ctx, review)
}

func (e *ReviewRepositoryExpecter) GetReviewByID(ctx, id any) *mock.Call {
	return e.m.On("GetReviewByID", ctx, id)
}

func (e *ReviewRepositoryExpecter) GetReviewsByProductID(ctx, productID any) *mock.Call {
	return e.m.On("GetReviewsByProductID", ctx, productID)
}

func (e *ReviewRepositoryExpecter) DeleteReview(ctx, id any) *mock.Call {
	return e.m.On("DeleteReview", ctx, id)
}

func (m *ReviewRepositoryMock) CreateReview(ctx context.Context, review *domain.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *ReviewRepositoryMock) GetReviewByID(ctx context.Context, id int64) (*domain.Review, error) {
	args := m.Called(ctx, id)
	return get[*domain.Review](args, 0), args.Error(1)
}

func (m *ReviewRepositoryMock) GetReviewsByProductID(ctx context.Context, productID int64) ([]*domain.Review, error) {
	args := m.Called(ctx, productID)
	return get[[]*domain.Review](args, 0), args.Error(1)
}

func (m *ReviewRepositoryMock) DeleteReview(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// WishlistRepositoryMock мок domain.WishlistRepository
type WishlistRepositoryMock struct{ mock.Mock }

func NewWishlistRepositoryMock(t testingT) *WishlistRepositoryMock {
	m := &WishlistRepositoryMock{}
	setup(&m.Mock, t)
	return m
}

type WishlistRepositoryExpecter struct{ m *mock.Mock }

func (m *WishlistRepositoryMock) EXPECT() *WishlistRepositoryExpecter {
	return &WishlistRepositoryExpecter{&m.Mock}
}

func (e *WishlistRepositoryExpecter) Toggle(ctx, userID, productID any) *mock.Call {
	return e.m.On("Toggle", ctx, userID, productID)
}

func (e *WishlistRepositoryExpecter) GetWishlist(ctx, userID any) *mock.Call {
	return e.m.On("GetWishlist", ctx, userID)
}

func (m *WishlistRepositoryMock) Toggle(ctx context.Context, userID, productID int64) (bool, error) {
	args := m.Called(ctx, userID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *WishlistRepositoryMock) GetWishlist(ctx context.Context, userID int64) ([]*domain.Product, error) {
	args := m.Called(ctx, userID)
	return get[[]*domain.Product](args, 0), args.Error(1)
}
