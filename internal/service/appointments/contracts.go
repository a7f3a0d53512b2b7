package appointments

import (
	"context"

	"github.com/ShaMkot/ISRES-BookingService/internal/domain"
	"github.com/ShaMkot/ISRES-BookingService/internal/integrations/propertyservice"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	Create(ctx context.Context, slot *domain.AppointmentSlot) (*domain.AppointmentSlot, error)
	GetByID(ctx context.Context, id int64) (*domain.AppointmentSlot, error)
	ListAvailableByProperty(ctx context.Context, propertyID int64) ([]*domain.AppointmentSlot, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]*domain.AppointmentSlot, error)
	CancelBooking(ctx context.Context, id int64, customerID int64) (*domain.AppointmentSlot, error)
}

// PropertyServiceClient интерфейс клиента для PropertyService
type PropertyServiceClient interface {
	GetProperty(ctx context.Context, propertyID int64) (*propertyservice.Property, error)
}

// Notifier интерфейс отправки уведомлений пользователям.
// Отправка best-effort: ошибки логируются и не влияют на результат операции.
type Notifier interface {
	Notify(ctx context.Context, userID int64, content string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
