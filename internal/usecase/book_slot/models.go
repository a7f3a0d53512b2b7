package book_slot

import (
	"time"

	"github.com/ShaMkot/ISRES-BookingService/pkg/types"
)

// Request модель запроса на бронирование слота
type Request struct {
	SlotID     int64 // ID слота просмотра
	CustomerID int64 // ID клиента (из контекста аутентификации)
}

// Response модель ответа с забронированным слотом
type Response struct {
	ID         int64
	PropertyID int64
	OwnerID    int64
	CustomerID int64
	Date       time.Time
	Time       types.TimeString
	Status     string

	CreatedAt time.Time
	UpdatedAt time.Time
}
