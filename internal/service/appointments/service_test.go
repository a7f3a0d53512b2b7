package appointments

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShaMkot/ISRES-BookingService/internal/domain"
	slotRepo "github.com/ShaMkot/ISRES-BookingService/internal/infra/storage/appointment"
	"github.com/ShaMkot/ISRES-BookingService/internal/integrations/propertyservice"
	"github.com/ShaMkot/ISRES-BookingService/internal/service/appointments/models"
	"github.com/ShaMkot/ISRES-BookingService/pkg/ptr"
	"github.com/ShaMkot/ISRES-BookingService/pkg/types"
)

// stubRepo хранит слоты в памяти и повторяет семантику репозитория:
// отмена брони - условный переход booked -> available с проверкой клиента.
type stubRepo struct {
	nextID int64
	slots  map[int64]*domain.AppointmentSlot
}

func newStubRepo() *stubRepo {
	return &stubRepo{nextID: 1, slots: make(map[int64]*domain.AppointmentSlot)}
}

func (r *stubRepo) Create(_ context.Context, slot *domain.AppointmentSlot) (*domain.AppointmentSlot, error) {
	cp := *slot
	cp.ID = r.nextID
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	r.nextID++
	r.slots[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *stubRepo) GetByID(_ context.Context, id int64) (*domain.AppointmentSlot, error) {
	slot, ok := r.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	cp := *slot
	return &cp, nil
}

func (r *stubRepo) ListAvailableByProperty(_ context.Context, propertyID int64) ([]*domain.AppointmentSlot, error) {
	var out []*domain.AppointmentSlot
	for _, slot := range r.slots {
		if slot.PropertyID == propertyID && slot.Status == domain.StatusAvailable {
			cp := *slot
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Time.IsBefore(out[j].Time)
	})
	return out, nil
}

func (r *stubRepo) ListByCustomer(_ context.Context, customerID int64) ([]*domain.AppointmentSlot, error) {
	var out []*domain.AppointmentSlot
	for _, slot := range r.slots {
		if slot.CustomerID != nil && *slot.CustomerID == customerID {
			cp := *slot
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *stubRepo) CancelBooking(_ context.Context, id int64, customerID int64) (*domain.AppointmentSlot, error) {
	slot, ok := r.slots[id]
	if !ok || slot.Status != domain.StatusBooked || slot.CustomerID == nil || *slot.CustomerID != customerID {
		return nil, slotRepo.ErrNotHeldByCustomer
	}
	slot.Status = domain.StatusAvailable
	slot.CustomerID = nil
	cp := *slot
	return &cp, nil
}

// book имитирует успешное бронирование напрямую в хранилище
func (r *stubRepo) book(id, customerID int64) {
	r.slots[id].Status = domain.StatusBooked
	r.slots[id].CustomerID = ptr.Ptr(customerID)
}

type stubPropertyClient struct {
	property *propertyservice.Property
	err      error
}

func (c *stubPropertyClient) GetProperty(context.Context, int64) (*propertyservice.Property, error) {
	return c.property, c.err
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

func newTestService(repo *stubRepo, notifier *stubNotifier) *Service {
	property := &propertyservice.Property{ID: 10, OwnerID: 100}
	return NewService(repo, &stubPropertyClient{property: property}, notifier, noopLogger{})
}

func createReq(date string, tm string) *models.CreateSlotRequest {
	d, _ := time.Parse(domain.DateFormat, date)
	return &models.CreateSlotRequest{
		OwnerID:    100,
		PropertyID: 10,
		Date:       d,
		Time:       types.TimeString(tm),
	}
}

func TestService_CreateSlot(t *testing.T) {
	svc := newTestService(newStubRepo(), &stubNotifier{})

	resp, err := svc.CreateSlot(context.Background(), createReq("2025-06-01", "14:00"))
	require.NoError(t, err)

	assert.Equal(t, int64(10), resp.PropertyID)
	assert.Equal(t, int64(100), resp.OwnerID)
	assert.Equal(t, "2025-06-01", resp.Date)
	assert.Equal(t, "14:00", resp.Time)
	assert.Equal(t, string(domain.StatusAvailable), resp.Status)
	assert.Nil(t, resp.CustomerID, "new slot must have no customer")
}

func TestService_CreateSlot_NotOwner(t *testing.T) {
	svc := newTestService(newStubRepo(), &stubNotifier{})

	req := createReq("2025-06-01", "14:00")
	req.OwnerID = 999
	_, err := svc.CreateSlot(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_CreateSlot_PropertyNotFound(t *testing.T) {
	svc := NewService(newStubRepo(),
		&stubPropertyClient{err: propertyservice.ErrPropertyNotFound},
		&stubNotifier{}, noopLogger{})

	_, err := svc.CreateSlot(context.Background(), createReq("2025-06-01", "14:00"))
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestService_CreateSlot_InvalidTime(t *testing.T) {
	svc := newTestService(newStubRepo(), &stubNotifier{})

	_, err := svc.CreateSlot(context.Background(), createReq("2025-06-01", "25:99"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_ListAvailableByProperty_SortedByDateAndTime(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo, &stubNotifier{})
	ctx := context.Background()

	// Создаем вразнобой, ожидаем по возрастанию даты и времени
	for _, s := range []struct{ date, tm string }{
		{"2025-06-02", "09:00"},
		{"2025-06-01", "15:30"},
		{"2025-06-01", "09:00"},
	} {
		_, err := svc.CreateSlot(ctx, createReq(s.date, s.tm))
		require.NoError(t, err)
	}

	resp, err := svc.ListAvailableByProperty(ctx, 10)
	require.NoError(t, err)
	require.Len(t, resp.Slots, 3)

	assert.Equal(t, "2025-06-01", resp.Slots[0].Date)
	assert.Equal(t, "09:00", resp.Slots[0].Time)
	assert.Equal(t, "2025-06-01", resp.Slots[1].Date)
	assert.Equal(t, "15:30", resp.Slots[1].Time)
	assert.Equal(t, "2025-06-02", resp.Slots[2].Date)
}

func TestService_ListAvailableByProperty_ExcludesBooked(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo, &stubNotifier{})
	ctx := context.Background()

	first, err := svc.CreateSlot(ctx, createReq("2025-06-01", "09:00"))
	require.NoError(t, err)
	_, err = svc.CreateSlot(ctx, createReq("2025-06-01", "15:30"))
	require.NoError(t, err)

	repo.book(first.ID, 42)

	resp, err := svc.ListAvailableByProperty(ctx, 10)
	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "15:30", resp.Slots[0].Time)
}

func TestService_Cancel_ReleasesSlot(t *testing.T) {
	repo := newStubRepo()
	notifier := &stubNotifier{}
	svc := newTestService(repo, notifier)
	ctx := context.Background()

	created, err := svc.CreateSlot(ctx, createReq("2025-06-01", "14:00"))
	require.NoError(t, err)
	repo.book(created.ID, 42)

	resp, err := svc.Cancel(ctx, created.ID, &models.CancelSlotRequest{CustomerID: 42})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusAvailable), resp.Status)
	assert.Nil(t, resp.CustomerID, "cancelled booking must clear the customer")

	// Слот снова виден в списке свободных
	list, err := svc.ListAvailableByProperty(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, list.Slots, 1)

	// Владелец уведомлен об освободившемся слоте
	require.Len(t, notifier.calls, 1)
	assert.Equal(t, int64(100), notifier.calls[0].UserID)
}

func TestService_Cancel_NotHeldByCustomer(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo, &stubNotifier{})
	ctx := context.Background()

	created, err := svc.CreateSlot(ctx, createReq("2025-06-01", "14:00"))
	require.NoError(t, err)
	repo.book(created.ID, 42)

	_, err = svc.Cancel(ctx, created.ID, &models.CancelSlotRequest{CustomerID: 7})
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Чужая бронь остается нетронутой
	slot, getErr := repo.GetByID(ctx, created.ID)
	require.NoError(t, getErr)
	assert.Equal(t, domain.StatusBooked, slot.Status)
	require.NotNil(t, slot.CustomerID)
	assert.Equal(t, int64(42), *slot.CustomerID)
}

func TestService_Cancel_SlotNotFound(t *testing.T) {
	svc := newTestService(newStubRepo(), &stubNotifier{})

	_, err := svc.Cancel(context.Background(), 99, &models.CancelSlotRequest{CustomerID: 42})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestService_GetUserAppointments(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo, &stubNotifier{})
	ctx := context.Background()

	first, err := svc.CreateSlot(ctx, createReq("2025-06-01", "09:00"))
	require.NoError(t, err)
	_, err = svc.CreateSlot(ctx, createReq("2025-06-01", "15:30"))
	require.NoError(t, err)

	repo.book(first.ID, 42)

	resp, err := svc.GetUserAppointments(ctx, 42)
	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, first.ID, resp.Slots[0].ID)
	require.NotNil(t, resp.Slots[0].CustomerID)
	assert.Equal(t, int64(42), *resp.Slots[0].CustomerID)
}
