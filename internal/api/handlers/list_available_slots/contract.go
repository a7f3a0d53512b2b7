package list_available_slots

import (
	"context"

	"github.com/ShaMkot/ISRES-BookingService/internal/service/appointments/models"
)

type AppointmentsService interface {
	ListAvailableByProperty(ctx context.Context, propertyID int64) (*models.SlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
