package get_nearby_services

import (
	"context"

	nearbyServices "github.com/ShaMkot/ISRES-BookingService/internal/usecase/get_nearby_services"
)

type NearbyServicesUseCase interface {
	Execute(ctx context.Context, req *nearbyServices.Request) (*nearbyServices.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
