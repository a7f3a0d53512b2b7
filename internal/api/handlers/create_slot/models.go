package create_slot

import (
	"time"

	"github.com/ShaMkot/ISRES-BookingService/internal/domain"
	"github.com/ShaMkot/ISRES-BookingService/internal/service/appointments/models"
	"github.com/ShaMkot/ISRES-BookingService/pkg/types"
)

// CreateSlotRequest HTTP request model
type CreateSlotRequest struct {
	PropertyID int64  `json:"propertyId"`
	Date       string `json:"date"` // "2025-06-01"
	Time       string `json:"time"` // "14:00"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
// (с парсингом даты и времени)
func (r *CreateSlotRequest) ToServiceRequest(ownerID int64) (*models.CreateSlotRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	slotTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &models.CreateSlotRequest{
		OwnerID:    ownerID,
		PropertyID: r.PropertyID,
		Date:       date,
		Time:       slotTime,
	}, nil
}
