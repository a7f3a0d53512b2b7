package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/ShaMkot/ISRES-BookingService/internal/domain"
	slotRepo "github.com/ShaMkot/ISRES-BookingService/internal/infra/storage/appointment"
	propertyClient "github.com/ShaMkot/ISRES-BookingService/internal/integrations/propertyservice"
	"github.com/ShaMkot/ISRES-BookingService/internal/service/appointments/models"
)

// Service сервис для работы со слотами просмотров
type Service struct {
	slotRepo       SlotRepository
	propertyClient PropertyServiceClient
	notifier       Notifier
	logger         Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(
	slotRepo SlotRepository,
	propertyClient PropertyServiceClient,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		slotRepo:       slotRepo,
		propertyClient: propertyClient,
		notifier:       notifier,
		logger:         logger,
	}
}

// CreateSlot создает новый слот просмотра для объекта недвижимости.
// Доступно только владельцу объекта: владелец сверяется с каталогом
// недвижимости. Несколько слотов на одно и то же время допустимы.
func (s *Service) CreateSlot(ctx context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("CreateSlot: owner=%d, property=%d, date=%s, time=%s",
		req.OwnerID, req.PropertyID, req.Date.Format(domain.DateFormat), req.Time)

	if err := validateCreateSlotRequest(req); err != nil {
		s.logger.Warn("CreateSlot: validation failed: %v", err)
		return nil, err
	}

	property, err := s.propertyClient.GetProperty(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, propertyClient.ErrPropertyNotFound) {
			s.logger.Warn("CreateSlot: property id=%d not found", req.PropertyID)
			return nil, ErrPropertyNotFound
		}
		s.logger.Error("CreateSlot: failed to get property id=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: CreateSlot - failed to get property: %v", ErrInternal, err)
	}

	if property.OwnerID != req.OwnerID {
		s.logger.Warn("CreateSlot: user=%d is not the owner of property=%d", req.OwnerID, req.PropertyID)
		return nil, ErrAccessDenied
	}

	slot := &domain.AppointmentSlot{
		PropertyID: req.PropertyID,
		OwnerID:    req.OwnerID,
		Date:       req.Date,
		Time:       req.Time,
		Status:     domain.StatusAvailable,
	}

	created, err := s.slotRepo.Create(ctx, slot)
	if err != nil {
		s.logger.Error("CreateSlot: repository error for property=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: CreateSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateSlot: successfully created slot id=%d for property=%d", created.ID, req.PropertyID)
	return models.FromDomainSlot(created), nil
}

// GetByID получает слот по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.SlotResponse, error) {
	s.logger.Info("GetByID: fetching slot id=%d", id)

	slot, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("GetByID: slot id=%d not found", id)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("GetByID: repository error for slot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlot(slot), nil
}

// ListAvailableByProperty возвращает свободные слоты объекта,
// отсортированные по дате и времени по возрастанию
func (s *Service) ListAvailableByProperty(ctx context.Context, propertyID int64) (*models.SlotListResponse, error) {
	s.logger.Info("ListAvailableByProperty: property=%d", propertyID)

	if propertyID <= 0 {
		return nil, fmt.Errorf("%w: propertyID must be positive", ErrInvalidInput)
	}

	slots, err := s.slotRepo.ListAvailableByProperty(ctx, propertyID)
	if err != nil {
		s.logger.Error("ListAvailableByProperty: repository error for property=%d: %v", propertyID, err)
		return nil, fmt.Errorf("%w: ListAvailableByProperty - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAvailableByProperty: %d available slots for property=%d", len(slots), propertyID)
	return models.FromDomainSlotList(slots), nil
}

// GetUserAppointments возвращает слоты, забронированные пользователем
func (s *Service) GetUserAppointments(ctx context.Context, customerID int64) (*models.SlotListResponse, error) {
	s.logger.Info("GetUserAppointments: customer=%d", customerID)

	if customerID <= 0 {
		return nil, fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	slots, err := s.slotRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		s.logger.Error("GetUserAppointments: repository error for customer=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: GetUserAppointments - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlotList(slots), nil
}

// Cancel отменяет бронь клиента: слот возвращается в available, клиент
// очищается. Снять можно только собственную бронь - условие входит в
// атомарный UPDATE репозитория. Владелец объекта уведомляется best-effort.
func (s *Service) Cancel(ctx context.Context, slotID int64, req *models.CancelSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("Cancel: slot=%d, customer=%d", slotID, req.CustomerID)

	if slotID <= 0 || req.CustomerID <= 0 {
		return nil, fmt.Errorf("%w: slotID and customerID must be positive", ErrInvalidInput)
	}

	slot, err := s.slotRepo.CancelBooking(ctx, slotID, req.CustomerID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrNotHeldByCustomer) {
			// Условный UPDATE не нашел строку: различаем "слота нет"
			// и "бронь держит другой клиент"
			if _, getErr := s.slotRepo.GetByID(ctx, slotID); errors.Is(getErr, slotRepo.ErrSlotNotFound) {
				s.logger.Warn("Cancel: slot id=%d not found", slotID)
				return nil, ErrSlotNotFound
			}
			s.logger.Warn("Cancel: slot id=%d is not held by customer=%d", slotID, req.CustomerID)
			return nil, ErrAccessDenied
		}
		s.logger.Error("Cancel: repository error for slot id=%d: %v", slotID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Уведомляем владельца об освободившемся слоте; сбой отправки
	// не откатывает уже зафиксированную отмену
	content := fmt.Sprintf("Бронь просмотра %s в %s отменена клиентом",
		slot.Date.Format(domain.DateFormat), slot.Time)
	if err := s.notifier.Notify(ctx, slot.OwnerID, content); err != nil {
		s.logger.Error("Cancel: failed to notify owner=%d for slot id=%d: %v", slot.OwnerID, slotID, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking for slot id=%d", slotID)
	return models.FromDomainSlot(slot), nil
}

// validateCreateSlotRequest валидирует входные данные создания слота
func validateCreateSlotRequest(req *models.CreateSlotRequest) error {
	if req.OwnerID <= 0 {
		return fmt.Errorf("%w: ownerID must be positive", ErrInvalidInput)
	}

	if req.PropertyID <= 0 {
		return fmt.Errorf("%w: propertyID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	return nil
}
