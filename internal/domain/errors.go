package domain

import (
	"errors"
	"fmt"
)

// Ошибки доступа и ввода
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
)

// Ошибки поиска
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrWalletNotFound       = errors.New("wallet not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrCouponNotFound       = errors.New("coupon not found")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrReviewNotFound       = errors.New("review not found")
	ErrNotificationNotFound = errors.New("notification not found")
)

// Ошибки заказов
var (
	ErrEmptyOrder           = errors.New("no items in the order")
	ErrInvalidState         = errors.New("order is not in the required state")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// Ошибки купонов, кошелька и монет
var (
	ErrInvalidCoupon     = errors.New("coupon is invalid or already used")
	ErrCouponExists      = errors.New("coupon already exists")
	ErrInsufficientFunds = errors.New("insufficient wallet balance")
	ErrInsufficientCoins = errors.New("insufficient coins")
)

// Ошибки отзывов
var (
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrAlreadyReviewed = errors.New("product already reviewed by user")
	ErrNotPurchased    = errors.New("product must be purchased before reviewing")
)

// ProductNotFoundError сообщает, какой именно товар не найден
type ProductNotFoundError struct {
	ProductID int64
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product with id %d not found", e.ProductID)
}

// Is позволяет сравнивать ошибку с ErrProductNotFound
func (e *ProductNotFoundError) Is(target error) bool {
	return target == ErrProductNotFound
}
