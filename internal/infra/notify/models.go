package notify

import "time"

// notificationEvent событие уведомления, публикуемое в Kafka.
// Доставкой до пользователя (хранение, push) занимается notification-service.
type notificationEvent struct {
	UserID    int64     `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
