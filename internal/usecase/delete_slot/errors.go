package delete_slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("delete_slot: slot not found")

	// ErrAccessDenied возвращается, когда удаление запрошено не владельцем
	ErrAccessDenied = errors.New("delete_slot: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("delete_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("delete_slot: internal error")
)
