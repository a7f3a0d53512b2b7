package delete_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ShaMkot/ISRES-BookingService/internal/api/handlers"
	"github.com/ShaMkot/ISRES-BookingService/internal/api/middleware"
	deleteSlot "github.com/ShaMkot/ISRES-BookingService/internal/usecase/delete_slot"
)

const (
	msgInvalidSlotID = "некорректный идентификатор слота"
	msgSlotNotFound  = "слот просмотра не найден"
	msgNotSlotOwner  = "удалить слот может только владелец объекта"
)

type Handler struct {
	useCase DeleteSlotUseCase
	logger  Logger
}

func NewHandler(useCase DeleteSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "пользователь не аутентифицирован")
		return
	}

	slotID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /appointments/{appointmentId} - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	err = h.useCase.Execute(r.Context(), &deleteSlot.Request{
		SlotID:      slotID,
		RequesterID: requesterID,
	})
	if err != nil {
		switch {
		case errors.Is(err, deleteSlot.ErrSlotNotFound):
			h.logger.Warn("DELETE /appointments/{appointmentId} - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, deleteSlot.ErrAccessDenied):
			h.logger.Warn("DELETE /appointments/{appointmentId} - Access denied: slot_id=%d, requester_id=%d",
				slotID, requesterID)
			handlers.RespondForbidden(w, msgNotSlotOwner)

		case errors.Is(err, deleteSlot.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidSlotID)

		default:
			h.logger.Error("DELETE /appointments/{appointmentId} - Failed: slot_id=%d, requester_id=%d, error=%v",
				slotID, requesterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /appointments/{appointmentId} - Slot deleted: slot_id=%d, requester_id=%d",
		slotID, requesterID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
