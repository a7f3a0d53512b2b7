package cancel_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ShaMkot/ISRES-BookingService/internal/api/handlers"
	"github.com/ShaMkot/ISRES-BookingService/internal/api/middleware"
	appointmentsService "github.com/ShaMkot/ISRES-BookingService/internal/service/appointments"
	"github.com/ShaMkot/ISRES-BookingService/internal/service/appointments/models"
)

const (
	msgInvalidSlotID = "некорректный идентификатор слота"
	msgSlotNotFound  = "слот просмотра не найден"
	msgNotSlotHolder = "отменить можно только собственную бронь"
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

// Handle PATCH /api/v1/appointments/{appointmentId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "пользователь не аутентифицирован")
		return
	}

	slotID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{appointmentId}/cancel - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	result, err := h.service.Cancel(r.Context(), slotID, &models.CancelSlotRequest{CustomerID: customerID})
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrSlotNotFound):
			h.logger.Warn("PATCH /appointments/{appointmentId}/cancel - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, appointmentsService.ErrAccessDenied):
			h.logger.Warn("PATCH /appointments/{appointmentId}/cancel - Access denied: slot_id=%d, customer_id=%d",
				slotID, customerID)
			handlers.RespondForbidden(w, msgNotSlotHolder)

		case errors.Is(err, appointmentsService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidSlotID)

		default:
			h.logger.Error("PATCH /appointments/{appointmentId}/cancel - Failed: slot_id=%d, customer_id=%d, error=%v",
				slotID, customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{appointmentId}/cancel - Booking cancelled: slot_id=%d, customer_id=%d",
		slotID, customerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
