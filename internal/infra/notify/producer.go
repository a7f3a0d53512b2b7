package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const eventType = "notification.created"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Producer издатель событий уведомлений в Kafka.
// Вызывающая сторона трактует публикацию как best-effort: сбой публикации
// не откатывает уже зафиксированный переход слота.
type Producer struct {
	writer *kafka.Writer
	log    Logger
}

// NewProducer создает издателя уведомлений.
// brokers - список адресов через запятую; при пустом списке возвращается
// выключенный издатель, который только логирует события.
func NewProducer(brokers string, topic string, log Logger) *Producer {
	brokerList := splitBrokers(brokers)
	if len(brokerList) == 0 {
		log.Warn("notify: producer disabled (no kafka brokers configured)")
		return &Producer{log: log}
	}

	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokerList...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
		log: log,
	}
}

// Notify публикует уведомление для пользователя
func (p *Producer) Notify(ctx context.Context, userID int64, content string) error {
	if p.writer == nil {
		p.log.Info("notify: producer disabled, dropping notification for user=%d: %s", userID, content)
		return nil
	}

	payload, err := json.Marshal(notificationEvent{
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("%w: marshal event: %v", ErrPublishFailed, err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(userID, 10)),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(uuid.NewString())},
			{Key: "event_type", Value: []byte(eventType)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w: user=%d: %v", ErrPublishFailed, userID, err)
	}

	return nil
}

// Close закрывает соединение с брокером
func (p *Producer) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

func splitBrokers(raw string) []string {
	var brokers []string
	for _, b := range strings.Split(raw, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
