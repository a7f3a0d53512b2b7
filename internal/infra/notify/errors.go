package notify

import "errors"

var (
	// ErrPublishFailed возвращается при сбое публикации события в брокер
	ErrPublishFailed = errors.New("notify.producer: failed to publish event")
)
