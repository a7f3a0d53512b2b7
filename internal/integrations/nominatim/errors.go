package nominatim

import "errors"

var (
	// ErrNoResult возвращается, когда сервис геокодирования не нашел
	// ни одного совпадения для адреса
	ErrNoResult = errors.New("nominatim client: no result for address")

	// ErrInternal возвращается при внутренних ошибках клиента
	// (сеть, таймаут, построение запроса)
	ErrInternal = errors.New("nominatim client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("nominatim client: invalid response")
)
