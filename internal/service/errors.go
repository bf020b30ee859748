package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/avc/linecoffee/internal/domain"
)

// domainErrors возвращаются вызывающему без обертки
var domainErrors = []error{
	domain.ErrUnauthorized,
	domain.ErrForbidden,
	domain.ErrInvalidInput,
	domain.ErrUserNotFound,
	domain.ErrWalletNotFound,
	domain.ErrOrderNotFound,
	domain.ErrProductNotFound,
	domain.ErrCouponNotFound,
	domain.ErrPaymentNotFound,
	domain.ErrReviewNotFound,
	domain.ErrNotificationNotFound,
	domain.ErrEmptyOrder,
	domain.ErrInvalidState,
	domain.ErrInvalidPaymentMethod,
	domain.ErrInvalidCoupon,
	domain.ErrCouponExists,
	domain.ErrInsufficientFunds,
	domain.ErrInsufficientCoins,
	domain.ErrInvalidRating,
	domain.ErrAlreadyReviewed,
	domain.ErrNotPurchased,
}

// wrap добавляет контекст к инфраструктурной ошибке. Sentinel errors не оборачиваем.
func wrap(err error, format string, args ...any) error {
	for _, target := range domainErrors {
		if errors.Is(err, target) {
			return err
		}
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// RateLimitError представляет ошибку превышения лимита запросов к API сообщений
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry after %s", e.RetryAfter)
}

// NewRateLimitError создает новую ошибку rate limit
func NewRateLimitError(retryAfter time.Duration) *RateLimitError {
	return &RateLimitError{RetryAfter: retryAfter}
}

// DeliveryError описывает отказ внешнего канала принять сообщение
type DeliveryError struct {
	StatusCode int
	Message    string
}

func (e *DeliveryError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("message rejected with status %d", e.StatusCode)
	}
	return fmt.Sprintf("message rejected with status %d: %s", e.StatusCode, e.Message)
}
