package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/avc/linecoffee/internal/domain"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type messageResponse struct {
	Message string `json:"message"`
}

var errorStatuses = []struct {
	err    error
	status int
}{
	{domain.ErrUnauthorized, http.StatusUnauthorized},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrNotPurchased, http.StatusForbidden},

	{domain.ErrOrderNotFound, http.StatusNotFound},
	{domain.ErrProductNotFound, http.StatusNotFound},
	{domain.ErrUserNotFound, http.StatusNotFound},
	{domain.ErrWalletNotFound, http.StatusNotFound},
	{domain.ErrReviewNotFound, http.StatusNotFound},
	{domain.ErrCouponNotFound, http.StatusNotFound},
	{domain.ErrPaymentNotFound, http.StatusNotFound},
	{domain.ErrNotificationNotFound, http.StatusNotFound},

	{domain.ErrInvalidInput, http.StatusBadRequest},
	{domain.ErrEmptyOrder, http.StatusBadRequest},
	{domain.ErrInvalidPaymentMethod, http.StatusBadRequest},
	{domain.ErrInvalidCoupon, http.StatusBadRequest},
	{domain.ErrInsufficientFunds, http.StatusBadRequest},
	{domain.ErrInsufficientCoins, http.StatusBadRequest},
	{domain.ErrInvalidState, http.StatusBadRequest},
	{domain.ErrInvalidRating, http.StatusBadRequest},

	{domain.ErrAlreadyReviewed, http.StatusConflict},
	{domain.ErrCouponExists, http.StatusConflict},
}

// statusFor возвращает HTTP статус для ошибки; 0 означает непредвиденную ошибку
func statusFor(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return 0
}

// writeError переводит ошибку в HTTP ответ {"message": ...}.
// Непредвиденные ошибки логируются и отдаются как 500.
func writeError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	status := statusFor(err)
	message := err.Error()

	if status == 0 {
		requestID, _ := r.Context().Value(RequestIDKey).(string)
		logger.Error("request failed",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		status = http.StatusInternalServerError
		message = http.StatusText(http.StatusInternalServerError)
	}

	writeJSON(w, logger, status, messageResponse{Message: message})
}

// writeJSON кодирует тело ответа в JSON
func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

// decodeJSON читает тело запроса; ошибка разбора сводится к ErrInvalidInput
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.ErrInvalidInput
	}
	return nil
}

// idParam извлекает положительный числовой параметр маршрута
func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidInput
	}
	return id, nil
}
