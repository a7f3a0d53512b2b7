package get_nearby_services

import "errors"

var (
	// ErrPropertyNotFound возвращается, когда объект недвижимости не найден
	ErrPropertyNotFound = errors.New("get_nearby_services: property not found")

	// ErrGeocodeFailed возвращается, когда адрес объекта не удалось
	// преобразовать в координаты. Запасных координат нет - вычисление
	// сервисов поблизости без геокодирования невозможно.
	ErrGeocodeFailed = errors.New("get_nearby_services: failed to geocode property address")

	// ErrServiceLookupFailed возвращается при сбое запроса к индексу POI
	ErrServiceLookupFailed = errors.New("get_nearby_services: failed to look up nearby services")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_nearby_services: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_nearby_services: internal error")
)
