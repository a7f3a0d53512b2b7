package get_nearby_services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/ShaMkot/ISRES-BookingService/internal/domain"
	propertyClient "github.com/ShaMkot/ISRES-BookingService/internal/integrations/propertyservice"
	"github.com/ShaMkot/ISRES-BookingService/pkg/geo"
)

// UseCase use case поиска сервисов рядом с объектом недвижимости.
//
// Конвейер: адрес объекта из каталога -> геокодирование -> запрос к
// индексу POI в радиусе domain.NearbyRadiusMeters -> расстояние по
// хаверсину до каждого элемента -> группировка по категориям.
// Оба внешних вызова ограничены таймаутом клиента; по таймауту
// конвейер завершается ошибкой, а не пустым результатом.
type UseCase struct {
	propertyClient PropertyServiceClient
	geocoder       Geocoder
	poiClient      POIClient
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	propertyClient PropertyServiceClient,
	geocoder Geocoder,
	poiClient POIClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		propertyClient: propertyClient,
		geocoder:       geocoder,
		poiClient:      poiClient,
		logger:         logger,
	}
}

// Execute выполняет поиск сервисов рядом с объектом
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetNearbyServices: property=%d", req.PropertyID)

	if req.PropertyID <= 0 {
		return nil, fmt.Errorf("%w: propertyID must be positive", ErrInvalidInput)
	}

	// 1. Получаем объект с адресом из каталога недвижимости
	property, err := uc.propertyClient.GetProperty(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, propertyClient.ErrPropertyNotFound) {
			uc.logger.Warn("GetNearbyServices: property id=%d not found", req.PropertyID)
			return nil, ErrPropertyNotFound
		}
		uc.logger.Error("GetNearbyServices: failed to get property id=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
	}

	// 2. Геокодируем адрес. Любой сбой (нет совпадений, сеть, таймаут)
	// фатален для вычисления - частичного результата не возвращаем
	coord, err := uc.geocoder.Geocode(ctx, property.Address)
	if err != nil {
		uc.logger.Error("GetNearbyServices: geocoding failed for property id=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: %v", ErrGeocodeFailed, err)
	}

	// 3. Запрашиваем точки интереса в фиксированном радиусе
	elements, err := uc.poiClient.FindNearby(ctx, coord, domain.NearbyRadiusMeters, domain.NearbyCategories)
	if err != nil {
		uc.logger.Error("GetNearbyServices: POI lookup failed for property id=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: %v", ErrServiceLookupFailed, err)
	}

	// 4. Считаем расстояния и группируем по категориям
	services := make(map[string][]ServiceRecord)
	for _, element := range elements {
		lat, lon, ok := element.Coordinate()
		if !ok {
			// Элемент без координаты бесполезен для расчета расстояния
			continue
		}

		category, ok := resolveCategory(element.TagValue)
		if !ok {
			continue
		}

		name := element.Name()
		if name == "" {
			name = domain.UnnamedServiceName
		}

		services[string(category)] = append(services[string(category)], ServiceRecord{
			Name:       name,
			Category:   string(category),
			Lat:        lat,
			Lon:        lon,
			DistanceKm: geo.HaversineKm(coord.Lat, coord.Lon, lat, lon),
		})
	}

	// Внутри категории - от ближнего к дальнему
	for _, records := range services {
		sort.Slice(records, func(i, j int) bool {
			return records[i].DistanceKm < records[j].DistanceKm
		})
	}

	uc.logger.Info("GetNearbyServices: %d categories with services for property=%d",
		len(services), req.PropertyID)

	return &Response{
		PropertyID: req.PropertyID,
		Lat:        coord.Lat,
		Lon:        coord.Lon,
		Services:   services,
	}, nil
}

// resolveCategory определяет категорию элемента по его тегам,
// сверяясь с фиксированным списком domain.NearbyCategories
func resolveCategory(tagValue func(key string) string) (domain.ServiceCategory, bool) {
	for _, sel := range domain.NearbyCategories {
		if tagValue(sel.Key) == sel.Value {
			return sel.Category, true
		}
	}
	return "", false
}
