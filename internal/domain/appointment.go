package domain

import (
	"time"

	"github.com/ShaMkot/ISRES-BookingService/pkg/types"
)

// SlotStatus represents the status of an appointment slot
type SlotStatus string

const (
	StatusAvailable SlotStatus = "available"
	StatusBooked    SlotStatus = "booked"

	// StatusCancelled объявлен в схеме БД, но переходов в него нет:
	// отмена клиентом возвращает слот в available, удаление владельцем
	// физически удаляет строку.
	StatusCancelled SlotStatus = "cancelled"
)

// AppointmentSlot слот просмотра недвижимости, создаваемый владельцем объекта.
// Инвариант: CustomerID != nil тогда и только тогда, когда Status == booked.
type AppointmentSlot struct {
	ID         int64
	PropertyID int64
	OwnerID    int64  // владелец объекта; неизменяем после создания
	CustomerID *int64 // клиент, забронировавший слот; nil пока слот свободен

	Date time.Time        // дата просмотра (без времени)
	Time types.TimeString // время просмотра, например "14:00"

	Status SlotStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAvailable returns true if the slot can be booked
func (s *AppointmentSlot) IsAvailable() bool {
	return s.Status == StatusAvailable
}

// IsBooked returns true if the slot is currently held by a customer
func (s *AppointmentSlot) IsBooked() bool {
	return s.Status == StatusBooked
}

// IsHeldBy returns true if the slot is booked by the given customer
func (s *AppointmentSlot) IsHeldBy(customerID int64) bool {
	return s.Status == StatusBooked && s.CustomerID != nil && *s.CustomerID == customerID
}

// IsOwnedBy returns true if the slot belongs to the given owner
func (s *AppointmentSlot) IsOwnedBy(ownerID int64) bool {
	return s.OwnerID == ownerID
}
