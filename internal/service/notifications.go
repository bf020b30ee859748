package service

import (
	"context"
	"fmt"

	"github.com/avc/linecoffee/internal/domain"
)

// NotificationService реализует domain.NotificationService
type NotificationService struct {
	notificationRepo domain.NotificationRepository
}

// NewNotificationService создает новый NotificationService
func NewNotificationService(notificationRepo domain.NotificationRepository) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
	}
}

// Notify сохраняет уведомление пользователя
func (s *NotificationService) Notify(ctx context.Context, userID int64, title, message, kind string) error {
	n := &domain.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    kind,
	}
	if err := s.notificationRepo.CreateNotification(ctx, n); err != nil {
		return fmt.Errorf("notification service: failed to notify user %d: %w", userID, err)
	}

	return nil
}

// GetNotifications получает уведомления пользователя
func (s *NotificationService) GetNotifications(ctx context.Context, userID int64) ([]*domain.Notification, error) {
	notifications, err := s.notificationRepo.GetNotificationsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("notification service: failed to get notifications for user %d: %w", userID, err)
	}
	if notifications == nil {
		notifications = []*domain.Notification{}
	}

	return notifications, nil
}

// MarkRead помечает уведомление прочитанным
func (s *NotificationService) MarkRead(ctx context.Context, userID, id int64) error {
	if err := s.notificationRepo.MarkRead(ctx, userID, id); err != nil {
		return wrap(err, "notification service: failed to mark notification %d read", id)
	}

	return nil
}
