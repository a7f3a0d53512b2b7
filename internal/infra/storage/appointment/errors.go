package appointment

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("appointment.repository: slot not found")

	// ErrSlotNotAvailable возвращается, когда условное обновление
	// available -> booked не затронуло ни одной строки
	ErrSlotNotAvailable = errors.New("appointment.repository: slot not available")

	// ErrNotHeldByCustomer возвращается, когда условное обновление отмены
	// не затронуло ни одной строки (слот не забронирован этим клиентом)
	ErrNotHeldByCustomer = errors.New("appointment.repository: slot not held by customer")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
