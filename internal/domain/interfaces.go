package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// UserRepository определяет методы чтения пользователей
type UserRepository interface {
	GetUserByID(ctx context.Context, id int64) (*User, error)
}

// ProductRepository определяет методы для работы с каталогом
type ProductRepository interface {
	GetProductByID(ctx context.Context, id int64) (*Product, error)
	ListProducts(ctx context.Context, filter ProductFilter) ([]*Product, error)
	RecalculateRating(ctx context.Context, productID int64) error
}

// OrderRepository определяет методы для работы с заказами
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *Order) error
	GetOrderByID(ctx context.Context, id int64) (*Order, error)
	GetOrdersByUserID(ctx context.Context, userID int64) ([]*Order, error)
	ListOrders(ctx context.Context) ([]*Order, error)
	UpdateOrder(ctx context.Context, order *Order) error
	TransitionStatus(ctx context.Context, id int64, from, to OrderStatus) error
	DeliverOrder(ctx context.Context, id int64, earned *CoinEntry) error
	DeleteOrder(ctx context.Context, id int64) error
	HasPurchased(ctx context.Context, userID, productID int64) (bool, error)
}

// CouponRepository определяет методы для работы с купонами
type CouponRepository interface {
	CreateCoupon(ctx context.Context, coupon *Coupon) error
	GetCouponByCode(ctx context.Context, code string) (*Coupon, error)
	GetCouponByID(ctx context.Context, id int64) (*Coupon, error)
	ListCoupons(ctx context.Context) ([]*Coupon, error)
	ClaimCoupon(ctx context.Context, id int64) error
	ReleaseCoupon(ctx context.Context, id int64) error
	FinalizeCoupon(ctx context.Context, id int64) error
}

// WalletRepository определяет методы для работы с кошельками
type WalletRepository interface {
	GetWallet(ctx context.Context, userID int64) (*Wallet, error)
	Debit(ctx context.Context, userID int64, amount decimal.Decimal) error
	Credit(ctx context.Context, userID int64, amount decimal.Decimal) (*Wallet, error)
}

// CoinRepository определяет методы для работы с журналом монет
type CoinRepository interface {
	GetLedger(ctx context.Context, userID int64) (*CoinLedger, error)
	Append(ctx context.Context, entry *CoinEntry) error
}

// PaymentRepository определяет методы для работы с платежами
type PaymentRepository interface {
	UpsertPayment(ctx context.Context, payment *Payment) error
	SyncPayment(ctx context.Context, orderID int64, amount decimal.Decimal, method PaymentMethod) error
	GetPaymentByOrderID(ctx context.Context, orderID int64) (*Payment, error)
	ListPayments(ctx context.Context) ([]*Payment, error)
}

// NotificationRepository определяет методы для работы с уведомлениями
type NotificationRepository interface {
	CreateNotification(ctx context.Context, n *Notification) error
	GetNotificationsByUserID(ctx context.Context, userID int64) ([]*Notification, error)
	MarkRead(ctx context.Context, userID, id int64) error
}

// ReviewRepository определяет методы для работы с отзывами
type ReviewRepository interface {
	CreateReview(ctx context.Context, review *Review) error
	GetReviewByID(ctx context.Context, id int64) (*Review, error)
	GetReviewsByProductID(ctx context.Context, productID int64) ([]*Review, error)
	DeleteReview(ctx context.Context, id int64) error
}

// WishlistRepository определяет методы для работы со списком желаний
type WishlistRepository interface {
	Toggle(ctx context.Context, userID, productID int64) (bool, error)
	GetWishlist(ctx context.Context, userID int64) ([]*Product, error)
}

// Notifier создает внутренние уведомления пользователю
type Notifier interface {
	Notify(ctx context.Context, userID int64, title, message, kind string) error
}

// AlertSender отправляет сообщение оператору по внешнему каналу
type AlertSender interface {
	Send(ctx context.Context, alert *OperatorAlert) error
}

// AlertDispatcher ставит сообщения оператору в очередь доставки
type AlertDispatcher interface {
	Dispatch(alert *OperatorAlert) bool
}

// CreateOrderInput содержит данные для создания заказа
type CreateOrderInput struct {
	Items        []ItemInput
	CouponCode   string
	WalletAmount decimal.Decimal
}

// CompleteOrderInput содержит данные для завершения заказа
type CompleteOrderInput struct {
	PaymentMethod PaymentMethod
	WalletAmount  decimal.Decimal
}

// UpdateOrderInput содержит изменения заказа пользователем
type UpdateOrderInput struct {
	Items        []ItemInput
	RemovedItems []int64
	CouponCode   string
	RemoveCoupon bool
	WalletAmount *decimal.Decimal
	Notes        *string
}

// AdminUpdateOrderInput содержит изменения заказа администратором
type AdminUpdateOrderInput struct {
	Items        []ItemInput
	CouponCode   string
	RemoveCoupon bool
	WalletAmount *decimal.Decimal
	Status       OrderStatus
	Notes        *string
}

// OrderService определяет операции конвейера заказов
type OrderService interface {
	CreateOrder(ctx context.Context, actor Identity, in CreateOrderInput) (*Order, error)
	CompleteOrder(ctx context.Context, actor Identity, orderID int64, in CompleteOrderInput) (*Order, error)
	GetOrder(ctx context.Context, actor Identity, orderID int64) (*Order, error)
	GetUserOrders(ctx context.Context, userID int64) ([]*Order, error)
	GetAllOrders(ctx context.Context, actor Identity) ([]*Order, error)
	UpdateOrder(ctx context.Context, actor Identity, orderID int64, in UpdateOrderInput) (*Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status OrderStatus) (*Order, error)
	AdminUpdateOrder(ctx context.Context, orderID int64, in AdminUpdateOrderInput) (*Order, error)
	CancelOrder(ctx context.Context, actor Identity, orderID int64) error
}

// CouponQuote представляет результат проверки купона
type CouponQuote struct {
	Coupon   *Coupon         `json:"coupon"`
	Discount decimal.Decimal `json:"discount"`
}

// CouponService определяет операции с купонами
type CouponService interface {
	Validate(ctx context.Context, code string, total decimal.Decimal) (*CouponQuote, error)
	CreateCoupon(ctx context.Context, code string, kind DiscountKind, value decimal.Decimal) (*Coupon, error)
	ListCoupons(ctx context.Context) ([]*Coupon, error)
}

// WalletService определяет операции с кошельком
type WalletService interface {
	GetWallet(ctx context.Context, userID int64) (*Wallet, error)
	TopUp(ctx context.Context, userID int64, amount decimal.Decimal) (*Wallet, error)
}

// CoinService определяет операции с монетами
type CoinService interface {
	GetLedger(ctx context.Context, userID int64) (*CoinLedger, error)
	Redeem(ctx context.Context, userID int64, amount int64, description string) (*CoinLedger, error)
}

// ProductService определяет операции чтения каталога
type ProductService interface {
	ListProducts(ctx context.Context, filter ProductFilter) ([]*Product, error)
	GetProduct(ctx context.Context, id int64) (*Product, error)
}

// ReviewService определяет операции с отзывами
type ReviewService interface {
	AddReview(ctx context.Context, actor Identity, productID int64, rating int, comment string) ([]*Review, error)
	GetProductReviews(ctx context.Context, productID int64) ([]*Review, error)
	DeleteReview(ctx context.Context, actor Identity, reviewID int64) error
}

// WishlistService определяет операции со списком желаний
type WishlistService interface {
	GetWishlist(ctx context.Context, userID int64) ([]*Product, error)
	Toggle(ctx context.Context, userID, productID int64) (bool, []*Product, error)
}

// NotificationService определяет операции с уведомлениями
type NotificationService interface {
	Notifier
	GetNotifications(ctx context.Context, userID int64) ([]*Notification, error)
	MarkRead(ctx context.Context, userID, id int64) error
}

// PaymentService определяет операции чтения платежей
type PaymentService interface {
	ListPayments(ctx context.Context) ([]*Payment, error)
}
