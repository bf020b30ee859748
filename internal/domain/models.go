package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role представляет роль пользователя
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// OrderStatus представляет статус заказа
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCanceled  OrderStatus = "canceled"
)

// Valid сообщает, является ли статус допустимым
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusDelivered, OrderStatusCanceled:
		return true
	}
	return false
}

// CanMoveTo сообщает, допустим ли переход в статус next.
// Переходы возможны только из pending; pending -> pending ничего не меняет.
func (s OrderStatus) CanMoveTo(next OrderStatus) bool {
	return s == OrderStatusPending && next.Valid()
}

// PaymentMethod представляет способ оплаты заказа
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodVodafone PaymentMethod = "vodafone"
	PaymentMethodInsta    PaymentMethod = "insta"
)

// Valid сообщает, входит ли способ оплаты в список разрешенных
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodVodafone, PaymentMethodInsta:
		return true
	}
	return false
}

// PaymentStatus представляет статус платежа
type PaymentStatus string

const (
	PaymentStatusSuccess PaymentStatus = "success"
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// DiscountKind определяет, как купон уменьшает сумму заказа
type DiscountKind string

const (
	DiscountPercentage DiscountKind = "percentage"
	DiscountFixed      DiscountKind = "fixed"
)

// CoinAction представляет тип операции с монетами
type CoinAction string

const (
	CoinActionEarn    CoinAction = "earn"
	CoinActionRedeem  CoinAction = "redeem"
	CoinActionReverse CoinAction = "reverse"
)

// Identity представляет аутентифицированного пользователя запроса
type Identity struct {
	UserID int64
	Role   Role
	Email  string
}

// IsAdmin сообщает, является ли пользователь администратором
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// CanAccess сообщает, может ли пользователь работать с ресурсом владельца ownerID
func (i Identity) CanAccess(ownerID int64) bool {
	return i.IsAdmin() || i.UserID == ownerID
}

// User представляет пользователя системы
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"userName"`
	Phone     string    `json:"userPhone"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Product представляет товар каталога
type Product struct {
	ID            int64           `json:"id"`
	CategoryID    int64           `json:"category"`
	Name          string          `json:"productsName"`
	Description   string          `json:"productsDescription"`
	Price         decimal.Decimal `json:"price"`
	Available     bool            `json:"available"`
	InStock       int             `json:"inStock"`
	AverageRating decimal.Decimal `json:"averageRating"`
	NumOfReviews  int             `json:"numOfReviews"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ProductFilter задает условия выборки товаров
type ProductFilter struct {
	CategoryID *int64
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Available  *bool
}

// OrderItem представляет позицию заказа
type OrderItem struct {
	ProductID   int64           `json:"product"`
	ProductName string          `json:"productsName,omitempty"`
	UnitPrice   decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// ItemInput представляет позицию, переданную клиентом
type ItemInput struct {
	ProductID int64 `json:"product"`
	Quantity  int   `json:"quantity"`
}

// Order представляет заказ пользователя
type Order struct {
	ID           int64           `json:"id"`
	UserID       int64           `json:"userId"`
	Customer     *User           `json:"user,omitempty"`
	Items        []OrderItem     `json:"items"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	Discount     decimal.Decimal `json:"discount"`
	WalletAmount decimal.Decimal `json:"walletAmount"`
	// Запрошенная сумма из кошелька; WalletAmount не превышает остаток к оплате
	WalletRequested decimal.Decimal `json:"walletRequested"`
	FinalAmount     decimal.Decimal `json:"finalAmount"`
	CouponID        *int64          `json:"couponId,omitempty"`
	CouponCode      string          `json:"couponCode,omitempty"`
	CoinsEarned     int64           `json:"coinsEarned"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod,omitempty"`
	Status          OrderStatus     `json:"status"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// Completed сообщает, выбран ли уже способ оплаты (заказ ожидает оплату)
func (o *Order) Completed() bool {
	return o.PaymentMethod != ""
}

// Reprice пересчитывает суммы по текущим позициям, купону и запрошенной сумме кошелька
func (o *Order) Reprice(coupon *Coupon, walletRequested decimal.Decimal) {
	o.WalletRequested = walletRequested
	o.ApplyPricing(Price(SumItems(o.Items), coupon, walletRequested))
}

// ApplyPricing переносит результат расчета в заказ
func (o *Order) ApplyPricing(p Pricing) {
	o.TotalAmount = p.Total
	o.Discount = p.Discount
	o.WalletAmount = p.Wallet
	o.FinalAmount = p.Final
}

// Coupon представляет купон на скидку
type Coupon struct {
	ID        int64           `json:"id"`
	Code      string          `json:"couponCode"`
	Kind      DiscountKind    `json:"discountKind"`
	Value     decimal.Decimal `json:"discountValue"`
	IsActive  bool            `json:"isActive"`
	IsUsed    bool            `json:"isUsed"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Applicable сообщает, можно ли применить купон к новому заказу
func (c *Coupon) Applicable() bool {
	return c.IsActive && !c.IsUsed
}

// Wallet представляет кошелек пользователя
type Wallet struct {
	UserID    int64           `json:"userId"`
	Balance   decimal.Decimal `json:"balance"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// CoinEntry представляет запись журнала монет
type CoinEntry struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"-"`
	Action      CoinAction `json:"action"`
	Amount      int64      `json:"amount"`
	Description string     `json:"description"`
	OrderID     *int64     `json:"orderId,omitempty"`
	CreatedAt   time.Time  `json:"date"`
}

// CoinLedger представляет баланс монет вместе с журналом
type CoinLedger struct {
	UserID int64        `json:"userId"`
	Coins  int64        `json:"coins"`
	Log    []*CoinEntry `json:"log"`
}

// Payment представляет платеж, отражающий денежное состояние заказа
type Payment struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"orderId"`
	UserID    int64           `json:"userId"`
	Method    PaymentMethod   `json:"method"`
	Amount    decimal.Decimal `json:"amount"`
	Status    PaymentStatus   `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// Notification представляет внутреннее уведомление пользователя
type Notification struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// Review представляет отзыв о товаре
type Review struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	UserName  string    `json:"userName,omitempty"`
	ProductID int64     `json:"product"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// AlertKind представляет тип сообщения оператору
type AlertKind string

const (
	AlertOrderPlaced   AlertKind = "order_placed"
	AlertOrderCanceled AlertKind = "order_canceled"
)

// OperatorAlert представляет сообщение оператору магазина
type OperatorAlert struct {
	Kind  AlertKind `json:"kind"`
	Order *Order    `json:"order"`
}
