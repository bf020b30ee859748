package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/avc/linecoffee/internal/domain"
	"github.com/segmentio/kafka-go"
)

// MessageWriter описывает запись сообщений в Kafka
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaAlertSender реализует domain.AlertSender публикацией в топик Kafka
type KafkaAlertSender struct {
	writer MessageWriter
}

// NewKafkaWriter создает writer для топика сообщений оператору
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: 10 * time.Second,
	}
}

// NewKafkaAlertSender создает новый KafkaAlertSender
func NewKafkaAlertSender(writer MessageWriter) *KafkaAlertSender {
	return &KafkaAlertSender{writer: writer}
}

type alertEvent struct {
	Kind    domain.AlertKind `json:"kind"`
	OrderID int64            `json:"orderId"`
	UserID  int64            `json:"userId"`
	Text    string           `json:"text"`
	Order   *domain.Order    `json:"order"`
	SentAt  time.Time        `json:"sentAt"`
}

// Send публикует сообщение с ключом по ID заказа
func (s *KafkaAlertSender) Send(ctx context.Context, alert *domain.OperatorAlert) error {
	if alert == nil || alert.Order == nil {
		return fmt.Errorf("kafka alert: empty alert")
	}

	payload, err := json.Marshal(alertEvent{
		Kind:    alert.Kind,
		OrderID: alert.Order.ID,
		UserID:  alert.Order.UserID,
		Text:    alert.Text(),
		Order:   alert.Order,
		SentAt:  time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("kafka alert: failed to marshal alert: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(alert.Order.ID, 10)),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(alert.Kind)},
		},
	}
	if err := s.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka alert: failed to write message for order %d: %w", alert.Order.ID, err)
	}

	return nil
}

// Close закрывает writer
func (s *KafkaAlertSender) Close() error {
	return s.writer.Close()
}
