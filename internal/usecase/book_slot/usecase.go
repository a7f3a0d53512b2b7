package book_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/ShaMkot/ISRES-BookingService/internal/domain"
	slotRepo "github.com/ShaMkot/ISRES-BookingService/internal/infra/storage/appointment"
)

// UseCase use case бронирования слота просмотра клиентом.
//
// Ключевое свойство: переход available -> booked выполняется одним
// условным UPDATE в репозитории, поэтому из двух конкурентных
// бронирований одного слота ровно одно завершается успехом,
// второе получает ErrSlotAlreadyBooked.
type UseCase struct {
	slotRepo SlotRepository
	notifier Notifier
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, notifier Notifier, logger Logger) *UseCase {
	return &UseCase{
		slotRepo: slotRepo,
		notifier: notifier,
		logger:   logger,
	}
}

// Execute выполняет бронирование слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookSlot: slot=%d, customer=%d", req.SlotID, req.CustomerID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookSlot: validation failed: %v", err)
		return nil, err
	}

	slot, err := uc.slotRepo.Book(ctx, req.SlotID, req.CustomerID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotAvailable) {
			// Условный UPDATE не нашел строку: различаем "слота нет"
			// и "слот уже забронирован"
			if _, getErr := uc.slotRepo.GetByID(ctx, req.SlotID); errors.Is(getErr, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("BookSlot: slot id=%d not found", req.SlotID)
				return nil, ErrSlotNotFound
			}
			uc.logger.Warn("BookSlot: slot id=%d is already booked", req.SlotID)
			return nil, ErrSlotAlreadyBooked
		}
		uc.logger.Error("BookSlot: repository error for slot id=%d: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	// Уведомляем владельца объекта о новой брони; сбой отправки
	// не откатывает уже зафиксированное бронирование
	content := fmt.Sprintf("Просмотр забронирован на %s в %s",
		slot.Date.Format(domain.DateFormat), slot.Time)
	if err := uc.notifier.Notify(ctx, slot.OwnerID, content); err != nil {
		uc.logger.Error("BookSlot: failed to notify owner=%d for slot id=%d: %v", slot.OwnerID, slot.ID, err)
	}

	uc.logger.Info("BookSlot: successfully booked slot id=%d for customer=%d", slot.ID, req.CustomerID)

	return &Response{
		ID:         slot.ID,
		PropertyID: slot.PropertyID,
		OwnerID:    slot.OwnerID,
		CustomerID: req.CustomerID,
		Date:       slot.Date,
		Time:       slot.Time,
		Status:     string(slot.Status),
		CreatedAt:  slot.CreatedAt,
		UpdatedAt:  slot.UpdatedAt,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SlotID <= 0 {
		return fmt.Errorf("%w: slotID must be positive", ErrInvalidInput)
	}

	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	return nil
}
