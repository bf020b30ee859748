package service

import (
	"context"

	"github.com/avc/linecoffee/internal/domain"
	"go.uber.org/zap"
)

// LogAlertSender записывает сообщения оператору в лог. Используется без внешнего канала.
type LogAlertSender struct {
	logger *zap.Logger
}

// NewLogAlertSender создает новый LogAlertSender
func NewLogAlertSender(logger *zap.Logger) *LogAlertSender {
	return &LogAlertSender{logger: logger}
}

// Send пишет текст сообщения в лог
func (s *LogAlertSender) Send(_ context.Context, alert *domain.OperatorAlert) error {
	var orderID int64
	if alert.Order != nil {
		orderID = alert.Order.ID
	}

	s.logger.Info("operator alert",
		zap.String("kind", string(alert.Kind)),
		zap.Int64("order_id", orderID),
		zap.String("text", alert.Text()),
	)
	return nil
}
