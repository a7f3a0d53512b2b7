package book_slot

import (
	"time"

	"github.com/ShaMkot/ISRES-BookingService/internal/domain"
	bookSlot "github.com/ShaMkot/ISRES-BookingService/internal/usecase/book_slot"
)

// SlotResponse HTTP response model
type SlotResponse struct {
	ID         int64  `json:"id"`
	PropertyID int64  `json:"propertyId"`
	OwnerID    int64  `json:"ownerId"`
	CustomerID int64  `json:"customerId"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookSlot.Response) *SlotResponse {
	return &SlotResponse{
		ID:         resp.ID,
		PropertyID: resp.PropertyID,
		OwnerID:    resp.OwnerID,
		CustomerID: resp.CustomerID,
		Date:       resp.Date.Format(domain.DateFormat),
		Time:       resp.Time.String(),
		Status:     resp.Status,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
