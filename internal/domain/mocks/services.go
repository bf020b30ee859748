package mocks

import (
	"context"

	"github.com/avc/linecoffee/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// OrderServiceMock мок domain.OrderService
type OrderServiceMock struct{ mock.Mock }

func NewOrderServiceMock(t testingT) *OrderServiceMock {
	m := &OrderServiceMock{}
	setup(&m.Mock, t)
	return m
}

type OrderServiceExpecter struct{ m *mock.Mock }

func (m *OrderServiceMock) EXPECT() *OrderServiceExpecter { return &OrderServiceExpecter{&m.Mock} }

func (e *OrderServiceExpecter) CreateOrder(ctx, actor, in any) *mock.Call {
	return e.m.On("CreateOrder", ctx, actor, in)
}

func (e *OrderServiceExpecter) CompleteOrder(ctx, actor, orderID, in any) *mock.Call {
	return e.m.On("CompleteOrder", ctx, actor, orderID, in)
}

func (e *OrderServiceExpecter) GetOrder(ctx, actor, orderID any) *mock.Call {
	return e.m.On("GetOrder", ctx, actor, orderID)
}

func (e *OrderServiceExpecter) GetUserOrders(ctx, userID any) *mock.Call {
	return e.m.On("GetUserOrders", ctx, userID)
}

func (e *OrderServiceExpecter) GetAllOrders(ctx, actor any) *mock.Call {
	return e.m.On("GetAllOrders", ctx, actor)
}

func (e *OrderServiceExpecter) UpdateOrder(ctx, actor, orderID, in any) *mock.Call {
	return e.m.On("UpdateOrder", ctx, actor, orderID, in)
}

func (e *OrderServiceExpecter) UpdateStatus(ctx, orderID, status any) *mock.Call {
	return e.m.On("UpdateStatus", ctx, orderID, status)
}

func (e *OrderServiceExpecter) AdminUpdateOrder(ctx, orderID, in any) *mock.Call {
	return e.m.On("AdminUpdateOrder", ctx, orderID, in)
}

func (e *OrderServiceExpecter) CancelOrder(ctx, actor, orderID any) *mock.Call {
	return e.m.On("CancelOrder", ctx, actor, orderID)
}

func (m *OrderServiceMock) CreateOrder(ctx context.Context, actor domain.Identity, in domain.CreateOrderInput) (*domain.Order, error) {
	args := m.Called(ctx, actor, in)
	return get[*domain.Order](args, 0), args.Error(1)
}

func (m *OrderServiceMock) CompleteOrder(ctx context.Context, actor domain.Identity, orderID int64, in domain.CompleteOrderInput) (*domain.Order, error) {
	args := m.Called(ctx, actor, orderID, in)
	return get[*domain.Order](args, 0), args.Error(1)
}

func (m *OrderServiceMock) GetOrder(ctx context.Context, actor domain.Identity, orderID int64) (*domain.Order, error) {
	args := m.Called(ctx, actor, orderID)
	return get[*domain.Order](args, 0), args.Error(1)
}

func (m *OrderServiceMock) GetUserOrders(ctx context.Context, userID int64) ([]*domain.Order, error) {
	args := m.Called(ctx, userID)
	return get[[]*domain.Order](args, 0), args.Error(1)
}

func (m *OrderServiceMock) GetAllOrders(ctx context.Context, actor domain.Identity) ([]*domain.Order, error) {
	args := m.Called(ctx, actor)
	return get[[]*domain.Order](args, 0), args.Error(1)
}

func (m *OrderServiceMock) UpdateOrder(ctx context.Context, actor domain.Identity, orderID int64, in domain.UpdateOrderInput) (*domain.Order, error) {
	args := m.Called(ctx, actor, orderID, in)
	return get[*domain.Order](args, 0), args.Error(1)
}

func (m *OrderServiceMock) UpdateStatus(ctx context.Context, orderID int64, status domain.OrderStatus) (*domain.Order, error) {
	args := m.Called(ctx, orderID, status)
	return get[*domain.Order](args, 0), args.Error(1)
}

func (m *OrderServiceMock) AdminUpdateOrder(ctx context.Context, orderID int64, in domain.AdminUpdateOrderInput) (*domain.Order, error) {
	args := m.Called(ctx, orderID, in)
	return get[*domain.Order](args, 0), args.Error(1)
}

func (m *OrderServiceMock) CancelOrder(ctx context.Context, actor domain.Identity, orderID int64) error {
	return m.Called(ctx, actor, orderID).Error(0)
}

// CouponServiceMock мок domain.CouponService
type CouponServiceMock struct{ mock.Mock }

func NewCouponServiceMock(t testingT) *CouponServiceMock {
	m := &CouponServiceMock{}
	setup(&m.Mock, t)
	return m
}

type CouponServiceExpecter struct{ m *mock.Mock }

func (m *CouponServiceMock) EXPECT() *CouponServiceExpecter { return &CouponServiceExpecter{&m.Mock} }

func (e *CouponServiceExpecter) Validate(ctx, code, total any) *mock.Call {
	return e.m.On("Validate", ctx, code, total)
}

func (e *CouponServiceExpecter) CreateCoupon(ctx, code, kind, value any) *mock.Call {
	return e.m.On("CreateCoupon", ctx, code, kind, value)
}

func (e *CouponServiceExpecter) ListCoupons(ctx any) *mock.Call {
	return e.m.On("ListCoupons", ctx)
}

func (m *CouponServiceMock) Validate(ctx context.Context, code string, total decimal.Decimal) (*domain.CouponQuote, error) {
	args := m.Called(ctx, code, total)
	return get[*domain.CouponQuote](args, 0), args.Error(1)
}

func (m *CouponServiceMock) CreateCoupon(ctx context.Context, code string, kind domain.DiscountKind, value decimal.Decimal) (*domain.Coupon, error) {
	args := m.Called(ctx, code, kind, value)
	return get[*domain.Coupon](args, 0), args.Error(1)
}

func (m *CouponServiceMock) ListCoupons(ctx context.Context) ([]*domain.Coupon, error) {
	args := m.Called(ctx)
	return get[[]*domain.Coupon](args, 0), args.Error(1)
}

// WalletServiceMock мок domain.WalletService
type WalletServiceMock struct{ mock.Mock }

func NewWalletServiceMock(t testingT) *WalletServiceMock {
	m := &WalletServiceMock{}
	setup(&m.Mock, t)
	return m
}

type WalletServiceExpecter struct{ m *mock.Mock }

func (m *WalletServiceMock) EXPECT() *WalletServiceExpecter { return &WalletServiceExpecter{&m.Mock} }

func (e *WalletServiceExpecter) GetWallet(ctx, userID any) *mock.Call {
	return e.m.On("GetWallet", ctx, userID)
}

func (e *WalletServiceExpecter) TopUp(ctx, userID, amount any) *mock.Call {
	return e.m.On("TopUp", ctx, userID, amount)
}

func (m *WalletServiceMock) GetWallet(ctx context.Context, userID int64) (*domain.Wallet, error) {
	args := m.Called(ctx, userID)
	return get[*domain.Wallet](args, 0), args.Error(1)
}

func (m *WalletServiceMock) TopUp(ctx context.Context, userID int64, amount decimal.Decimal) (*domain.Wallet, error) {
	args := m.Called(ctx, userID, amount)
	return get[*domain.Wallet](args, 0), args.Error(1)
}

// CoinServiceMock мок domain.CoinService
type CoinServiceMock struct{ mock.Mock }

func NewCoinServiceMock(t testingT) *CoinServiceMock {
	m := &CoinServiceMock{}
	setup(&m.Mock, t)
	return m
}

type CoinServiceExpecter struct{ m *mock.Mock }

func (m *CoinServiceMock) EXPECT() *CoinServiceExpecter { return &CoinServiceExpecter{&m.Mock} }

func (e *CoinServiceExpecter) GetLedger(ctx, userID any) *mock.Call {
	return e.m.On("GetLedger", ctx, userID)
}

func (e *CoinServiceExpecter) Redeem(ctx, userID, amount, description any) *mock.Call {
	return e.m.On("Redeem", ctx, userID, amount, description)
}

func (m *CoinServiceMock) GetLedger(ctx context.Context, userID int64) (*domain.CoinLedger, error) {
	args := m.Called(ctx, userID)
	return get[*domain.CoinLedger](args, 0), args.Error(1)
}

func (m *CoinServiceMock) Redeem(ctx context.Context, userID int64, amount int64, description string) (*domain.CoinLedger, error) {
	args := m.Called(ctx, userID, amount, description)
	return get[*domain.CoinLedger](args, 0), args.Error(1)
}

// ProductServiceMock мок domain.ProductService
type ProductServiceMock struct{ mock.Mock }

func NewProductServiceMock(t testingT) *ProductServiceMock {
	m := &ProductServiceMock{}
	setup(&m.Mock, t)
	return m
}

type ProductServiceExpecter struct{ m *mock.Mock }

func (m *ProductServiceMock) EXPECT() *ProductServiceExpecter { return &ProductServiceExpecter{&m.Mock} }

func (e *ProductServiceExpecter) ListProducts(ctx, filter any) *mock.Call {
	return e.m.On("ListProducts", ctx, filter)
}

func (e *ProductServiceExpecter) GetProduct(ctx, id any) *mock.Call {
	return e.m.On("GetProduct", ctx, id)
}

func (m *ProductServiceMock) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	args := m.Called(ctx, filter)
	return get[[]*domain.Product](args, 0), args.Error(1)
}

func (m *ProductServiceMock) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	return get[*domain.Product](args, 0), args.Error(1)
}

// ReviewServiceMock мок domain.ReviewService
type ReviewServiceMock struct{ mock.Mock }

func NewReviewServiceMock(t testingT) *ReviewServiceMock {
	m := &ReviewServiceMock{}
	setup(&m.Mock, t)
	return m
}

type ReviewServiceExpecter struct{ m *mock.Mock }

func (m *ReviewServiceMock) EXPECT() *ReviewServiceExpecter { return &ReviewServiceExpecter{&m.Mock} }

func (e *ReviewServiceExpecter) AddReview(ctx, actor, productID, rating, comment any) *mock.Call {
	return e.m.On("AddReview", ctx, actor, productID, rating, comment)
}

func (e *ReviewServiceExpecter) GetProductReviews(ctx, productID any) *mock.Call {
	return e.m.On("GetProductReviews", ctx, productID)
}

func (e *ReviewServiceExpecter) DeleteReview(ctx, actor, reviewID any) *mock.Call {
	return e.m.On("DeleteReview", ctx, actor, reviewID)
}

func (m *ReviewServiceMock) AddReview(ctx context.Context, actor domain.Identity, productID int64, rating int, comment string) ([]*domain.Review, error) {
	args := m.Called(ctx, actor, productID, rating, comment)
	return get[[]*domain.Review](args, 0), args.Error(1)
}

func (m *ReviewServiceMock) GetProductReviews(ctx context.Context, productID int64) ([]*domain.Review, error) {
	args := m.Called(ctx, productID)
	return get[[]*domain.Review](args, 0), args.Error(1)
}

func (m *ReviewServiceMock) DeleteReview(ctx context.Context, actor domain.Identity, reviewID int64) error {
	return m.Called(ctx, actor, reviewID).Error(0)
}

// WishlistServiceMock мок domain.WishlistService
type WishlistServiceMock struct{ mock.Mock }

func NewWishlistServiceMock(t testingT) *WishlistServiceMock {
	m := &WishlistServiceMock{}
	setup(&m.Mock, t)
	return m
}

type WishlistServiceExpecter struct{ m *mock.Mock }

func (m *WishlistServiceMock) EXPECT() *WishlistServiceExpecter { return &WishlistServiceExpecter{&m.Mock} }

func (e *WishlistServiceExpecter) GetWishlist(ctx, userID any) *mock.Call {
	return e.m.On("GetWishlist", ctx, userID)
}

func (e *WishlistServiceExpecter) Toggle(ctx, userID, productID any) *mock.Call {
	return e.m.On("Toggle", ctx, userID, productID)
}

func (m *WishlistServiceMock) GetWishlist(ctx context.Context, userID int64) ([]*domain.Product, error) {
	args := m.Called(ctx, userID)
	return get[[]*domain.Product](args, 0), args.Error(1)
}

func (m *WishlistServiceMock) Toggle(ctx context.Context, userID, productID int64) (bool, []*domain.Product, error) {
	args := m.Called(ctx, userID, productID)
	return args.Bool(0), get[[]*domain.Product](args, 1), args.Error(2)
}

// NotificationServiceMock мок domain.NotificationService
type NotificationServiceMock struct{ mock.Mock }

func NewNotificationServiceMock(t testingT) *NotificationServiceMock {
	m := &NotificationServiceMock{}
	setup(&m.Mock, t)
	return m
}

type NotificationServiceExpecter struct{ m *mock.Mock }

func (m *NotificationServiceMock) EXPECT() *NotificationServiceExpecter {
	return &NotificationServiceExpecter{&m.Mock}
}

func (e *NotificationServiceExpecter) Notify(ctx, userID, title, message, kind any) *mock.Call {
	return e.m.On("Notify", ctx, userID, title, message, kind)
}

func (e *NotificationServiceExpecter) GetNotifications(ctx, userID any) *mock.Call {
	return e.m.On("GetNotifications", ctx, userID)
}

func (e *NotificationServiceExpecter) MarkRead(ctx, userID, id any) *mock.Call {
	return e.m.On("MarkRead", ctx, userID, id)
}

func (m *NotificationServiceMock) Notify(ctx context.Context, userID int64, title, message, kind string) error {
	return m.Called(ctx, userID, title, message, kind).Error(0)
}

func (m *NotificationServiceMock) GetNotifications(ctx context.Context, userID int64) ([]*domain.Notification, error) {
	args := m.Called(ctx, userID)
	return get[[]*domain.Notification](args, 0), args.Error(1)
}

func (m *NotificationServiceMock) MarkRead(ctx context.Context, userID, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

// PaymentServiceMock мок domain.PaymentService
type PaymentServiceMock struct{ mock.Mock }

func NewPaymentServiceMock(t testingT) *PaymentServiceMock {
	m := &PaymentServiceMock{}
	setup(&m.Mock, t)
	return m
}

type PaymentServiceExpecter struct{ m *mock.Mock }

func (m *PaymentServiceMock) EXPECT() *PaymentServiceExpecter { return &PaymentServiceExpecter{&m.Mock} }

func (e *PaymentServiceExpecter) ListPayments(ctx any) *mock.Call {
	return e.m.On("ListPayments", ctx)
}

func (m *PaymentServiceMock) ListPayments(ctx context.Context) ([]*domain.Payment, error) {
	args := m.Called(ctx)
	return get[[]*domain.Payment](args, 0), args.Error(1)
}
