package get_nearby_services

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ShaMkot/ISRES-BookingService/internal/api/handlers"
	nearbyServices "github.com/ShaMkot/ISRES-BookingService/internal/usecase/get_nearby_services"
)

const (
	msgInvalidPropertyID = "некорректный идентификатор объекта"
	msgPropertyNotFound  = "объект недвижимости не найден"
	msgGeocodeFailed     = "не удалось определить координаты объекта"
	msgLookupFailed      = "не удалось получить сервисы рядом с объектом"
)

type Handler struct {
	useCase NearbyServicesUseCase
	logger  Logger
}

func NewHandler(useCase NearbyServicesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/properties/{propertyId}/nearby-services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	propertyID, err := strconv.ParseInt(mux.Vars(r)["propertyId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /properties/{propertyId}/nearby-services - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &nearbyServices.Request{PropertyID: propertyID})
	if err != nil {
		switch {
		case errors.Is(err, nearbyServices.ErrPropertyNotFound):
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, nearbyServices.ErrGeocodeFailed):
			h.logger.Warn("GET /properties/{propertyId}/nearby-services - Geocode failed: property_id=%d, error=%v",
				propertyID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgGeocodeFailed)

		case errors.Is(err, nearbyServices.ErrServiceLookupFailed):
			h.logger.Warn("GET /properties/{propertyId}/nearby-services - POI lookup failed: property_id=%d, error=%v",
				propertyID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgLookupFailed)

		case errors.Is(err, nearbyServices.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidPropertyID)

		default:
			h.logger.Error("GET /properties/{propertyId}/nearby-services - Failed: property_id=%d, error=%v",
				propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
