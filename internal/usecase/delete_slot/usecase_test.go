package delete_slot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShaMkot/ISRES-BookingService/internal/domain"
	slotRepo "github.com/ShaMkot/ISRES-BookingService/internal/infra/storage/appointment"
	"github.com/ShaMkot/ISRES-BookingService/pkg/ptr"
	"github.com/ShaMkot/ISRES-BookingService/pkg/types"
)

type stubRepo struct {
	slots map[int64]*domain.AppointmentSlot
}

func newStubRepo(slots ...*domain.AppointmentSlot) *stubRepo {
	r := &stubRepo{slots: make(map[int64]*domain.AppointmentSlot)}
	for _, s := range slots {
		r.slots[s.ID] = s
	}
	return r
}

func (r *stubRepo) GetByIDForUpdate(_ context.Context, id int64) (*domain.AppointmentSlot, error) {
	slot, ok := r.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	cp := *slot
	return &cp, nil
}

func (r *stubRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.slots[id]; !ok {
		return slotRepo.ErrSlotNotFound
	}
	delete(r.slots, id)
	return nil
}

// passthroughTxManager выполняет функцию без реальной транзакции
type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubNotifier struct {
	calls []struct {
		UserID  int64
		Content string
	}
}

func (n *stubNotifier) Notify(_ context.Context, userID int64, content string) error {
	n.calls = append(n.calls, struct {
		UserID  int64
		Content string
	}{userID, content})
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func slotOwnedBy(id, ownerID int64) *domain.AppointmentSlot {
	return &domain.AppointmentSlot{
		ID:         id,
		PropertyID: 10,
		OwnerID:    ownerID,
		Date:       time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Time:       types.TimeString("14:00"),
		Status:     domain.StatusAvailable,
	}
}

func TestUseCase_Execute_DeleteAvailableSlot(t *testing.T) {
	repo := newStubRepo(slotOwnedBy(1, 100))
	notifier := &stubNotifier{}
	uc := NewUseCase(repo, passthroughTxManager{}, notifier, noopLogger{})

	err := uc.Execute(context.Background(), &Request{SlotID: 1, RequesterID: 100})
	require.NoError(t, err)

	_, err = repo.GetByIDForUpdate(context.Background(), 1)
	assert.ErrorIs(t, err, slotRepo.ErrSlotNotFound)

	// Слот не был забронирован - уведомлять некого
	assert.Empty(t, notifier.calls)
}

func TestUseCase_Execute_DeleteBookedSlot_NotifiesDisplacedCustomer(t *testing.T) {
	slot := slotOwnedBy(1, 100)
	slot.Status = domain.StatusBooked
	slot.CustomerID = ptr.Ptr(int64(42))

	repo := newStubRepo(slot)
	notifier := &stubNotifier{}
	uc := NewUseCase(repo, passthroughTxManager{}, notifier, noopLogger{})

	err := uc.Execute(context.Background(), &Request{SlotID: 1, RequesterID: 100})
	require.NoError(t, err)

	require.Len(t, notifier.calls, 1)
	assert.Equal(t, int64(42), notifier.calls[0].UserID)
	assert.Contains(t, notifier.calls[0].Content, "2025-06-01")
	assert.Contains(t, notifier.calls[0].Content, "14:00")
}

func TestUseCase_Execute_NotOwner(t *testing.T) {
	repo := newStubRepo(slotOwnedBy(1, 100))
	uc := NewUseCase(repo, passthroughTxManager{}, &stubNotifier{}, noopLogger{})

	err := uc.Execute(context.Background(), &Request{SlotID: 1, RequesterID: 200})
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Слот остается нетронутым
	slot, getErr := repo.GetByIDForUpdate(context.Background(), 1)
	require.NoError(t, getErr)
	assert.Equal(t, domain.StatusAvailable, slot.Status)
}

func TestUseCase_Execute_SlotNotFound(t *testing.T) {
	uc := NewUseCase(newStubRepo(), passthroughTxManager{}, &stubNotifier{}, noopLogger{})

	err := uc.Execute(context.Background(), &Request{SlotID: 99, RequesterID: 100})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	uc := NewUseCase(newStubRepo(), passthroughTxManager{}, &stubNotifier{}, noopLogger{})

	err := uc.Execute(context.Background(), &Request{SlotID: 0, RequesterID: 100})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = uc.Execute(context.Background(), &Request{SlotID: 1, RequesterID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
