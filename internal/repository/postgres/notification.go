package postgres

import (
	"context"
	"fmt"

	"github.com/avc/linecoffee/internal/domain"
)

// NotificationRepository реализует domain.NotificationRepository
type NotificationRepository struct {
	db DBTX
}

// NewNotificationRepository создает новый NotificationRepository
func NewNotificationRepository(db DBTX) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// CreateNotification сохраняет уведомление
func (r *NotificationRepository) CreateNotification(ctx context.Context, n *domain.Notification) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO notifications (user_id, title, message, type)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		n.UserID, n.Title, n.Message, n.Type,
	).Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return fmt.Errorf("repository: failed to create notification for user %d: %w", n.UserID, err)
	}

	return nil
}

// GetNotificationsByUserID получает уведомления пользователя, новые первыми
func (r *NotificationRepository) GetNotificationsByUserID(ctx context.Context, userID int64) ([]*domain.Notification, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, title, message, type, is_read, created_at
		 FROM notifications
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get notifications for user %d: %w", userID, err)
	}
	defer rows.Close()

	var notifications []*domain.Notification
	for rows.Next() {
		n := &domain.Notification{}
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("repository: failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating notifications: %w", err)
	}

	return notifications, nil
}

// MarkRead помечает уведомление пользователя прочитанным
func (r *NotificationRepository) MarkRead(ctx context.Context, userID, id int64) error {
	result, err := r.db.Exec(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("repository: failed to mark notification %d read: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrNotificationNotFound
	}

	return nil
}
