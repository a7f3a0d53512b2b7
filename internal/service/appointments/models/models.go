package models

import (
	"time"

	"github.com/ShaMkot/ISRES-BookingService/internal/domain"
	"github.com/ShaMkot/ISRES-BookingService/pkg/types"
)

// Request модели

// CreateSlotRequest запрос на создание слота просмотра
type CreateSlotRequest struct {
	OwnerID    int64            // авторизованный пользователь (владелец объекта)
	PropertyID int64            // объект недвижимости
	Date       time.Time        // дата просмотра
	Time       types.TimeString // время просмотра, например "14:00"
}

// CancelSlotRequest запрос на отмену брони клиентом
type CancelSlotRequest struct {
	CustomerID int64 // авторизованный пользователь (держатель брони)
}

// Response модели

// SlotResponse ответ с данными слота
type SlotResponse struct {
	ID         int64  `json:"id"`
	PropertyID int64  `json:"propertyId"`
	OwnerID    int64  `json:"ownerId"`
	CustomerID *int64 `json:"customerId,omitempty"`
	Date       string `json:"date"` // "2025-06-01"
	Time       string `json:"time"` // "14:00"
	Status     string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SlotListResponse ответ со списком слотов
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// Методы конвертации

// FromDomainSlot конвертирует domain модель в DTO
func FromDomainSlot(s *domain.AppointmentSlot) *SlotResponse {
	if s == nil {
		return nil
	}

	return &SlotResponse{
		ID:         s.ID,
		PropertyID: s.PropertyID,
		OwnerID:    s.OwnerID,
		CustomerID: s.CustomerID,
		Date:       s.Date.Format(domain.DateFormat),
		Time:       s.Time.String(),
		Status:     string(s.Status),
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

// FromDomainSlotList конвертирует список domain моделей в DTO
func FromDomainSlotList(slots []*domain.AppointmentSlot) *SlotListResponse {
	resp := &SlotListResponse{
		Slots: make([]SlotResponse, 0, len(slots)),
	}

	for _, slot := range slots {
		if slotResp := FromDomainSlot(slot); slotResp != nil {
			resp.Slots = append(resp.Slots, *slotResp)
		}
	}

	return resp
}
