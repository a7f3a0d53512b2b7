package book_slot

import (
	"context"

	"github.com/ShaMkot/ISRES-BookingService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	// Book атомарно переводит слот available -> booked;
	// возвращает ErrSlotNotAvailable, если условие не выполнено
	Book(ctx context.Context, id int64, customerID int64) (*domain.AppointmentSlot, error)
	GetByID(ctx context.Context, id int64) (*domain.AppointmentSlot, error)
}

// Notifier интерфейс отправки уведомлений пользователям
type Notifier interface {
	Notify(ctx context.Context, userID int64, content string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
