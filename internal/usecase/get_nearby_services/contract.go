package get_nearby_services

import (
	"context"

	"github.com/ShaMkot/ISRES-BookingService/internal/domain"
	"github.com/ShaMkot/ISRES-BookingService/internal/integrations/overpass"
	"github.com/ShaMkot/ISRES-BookingService/internal/integrations/propertyservice"
)

// PropertyServiceClient интерфейс клиента для PropertyService
type PropertyServiceClient interface {
	GetProperty(ctx context.Context, propertyID int64) (*propertyservice.Property, error)
}

// Geocoder интерфейс сервиса геокодирования
type Geocoder interface {
	Geocode(ctx context.Context, address propertyservice.Address) (domain.Coordinate, error)
}

// POIClient интерфейс индекса точек интереса
type POIClient interface {
	FindNearby(ctx context.Context, coord domain.Coordinate, radiusMeters int, selectors []domain.CategorySelector) ([]overpass.Element, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
