package create_slot

import (
	"errors"
	"net/http"

	"github.com/ShaMkot/ISRES-BookingService/internal/api/handlers"
	"github.com/ShaMkot/ISRES-BookingService/internal/api/middleware"
	appointmentsService "github.com/ShaMkot/ISRES-BookingService/internal/service/appointments"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgPropertyNotFound   = "объект недвижимости не найден"
	msgNotPropertyOwner   = "создавать слоты может только владелец объекта"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "пользователь не аутентифицирован")
		return
	}

	var req CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(ownerID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.service.CreateSlot(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrPropertyNotFound):
			h.logger.Warn("POST /appointments - Property not found: property_id=%d", req.PropertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, appointmentsService.ErrAccessDenied):
			h.logger.Warn("POST /appointments - Access denied: owner_id=%d, property_id=%d", ownerID, req.PropertyID)
			handlers.RespondForbidden(w, msgNotPropertyOwner)

		case errors.Is(err, appointmentsService.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /appointments - Failed to create slot: owner_id=%d, property_id=%d, error=%v",
				ownerID, req.PropertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Slot created: slot_id=%d, property_id=%d", result.ID, req.PropertyID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
