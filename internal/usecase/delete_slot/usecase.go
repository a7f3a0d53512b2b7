package delete_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/ShaMkot/ISRES-BookingService/internal/domain"
	slotRepo "github.com/ShaMkot/ISRES-BookingService/internal/infra/storage/appointment"
)

// UseCase use case удаления слота владельцем объекта.
//
// Чтение и удаление выполняются в одной транзакции с блокировкой строки
// (FOR UPDATE): конкурентное бронирование не может вклиниться между
// проверкой статуса и удалением, поэтому вытесненный клиент фиксируется
// консистентно. Уведомление отправляется после коммита.
type UseCase struct {
	slotRepo  SlotRepository
	txManager TransactionManager
	notifier  Notifier
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:  slotRepo,
		txManager: txManager,
		notifier:  notifier,
		logger:    logger,
	}
}

// Execute выполняет удаление слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	uc.logger.Info("DeleteSlot: slot=%d, requester=%d", req.SlotID, req.RequesterID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("DeleteSlot: validation failed: %v", err)
		return err
	}

	// Вытесненный клиент, которого нужно уведомить после коммита
	var displacedCustomerID *int64
	var deleted *domain.AppointmentSlot

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		slot, err := uc.slotRepo.GetByIDForUpdate(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("DeleteSlot: slot id=%d not found", req.SlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("DeleteSlot: repository error for slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: repository error: %v", ErrInternal, err)
		}

		if !slot.IsOwnedBy(req.RequesterID) {
			uc.logger.Warn("DeleteSlot: user=%d is not the owner of slot id=%d", req.RequesterID, req.SlotID)
			return ErrAccessDenied
		}

		if slot.IsBooked() && slot.CustomerID != nil {
			displacedCustomerID = slot.CustomerID
		}
		deleted = slot

		if err := uc.slotRepo.Delete(txCtx, req.SlotID); err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			uc.logger.Error("DeleteSlot: failed to delete slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to delete slot: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	// Уведомляем вытесненного клиента - иначе он не узнает, что его
	// бронь исчезла. Сбой отправки не откатывает удаление.
	if displacedCustomerID != nil {
		content := fmt.Sprintf("Ваша бронь просмотра %s в %s отменена владельцем объекта",
			deleted.Date.Format(domain.DateFormat), deleted.Time)
		if err := uc.notifier.Notify(ctx, *displacedCustomerID, content); err != nil {
			uc.logger.Error("DeleteSlot: failed to notify displaced customer=%d for slot id=%d: %v",
				*displacedCustomerID, req.SlotID, err)
		}
	}

	uc.logger.Info("DeleteSlot: successfully deleted slot id=%d", req.SlotID)
	return nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SlotID <= 0 {
		return fmt.Errorf("%w: slotID must be positive", ErrInvalidInput)
	}

	if req.RequesterID <= 0 {
		return fmt.Errorf("%w: requesterID must be positive", ErrInvalidInput)
	}

	return nil
}
