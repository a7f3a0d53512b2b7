package overpass

import "errors"

var (
	// ErrLookupFailed возвращается при сбое запроса к индексу POI
	// (сеть, таймаут, не-200 ответ)
	ErrLookupFailed = errors.New("overpass client: lookup failed")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("overpass client: invalid response")
)
