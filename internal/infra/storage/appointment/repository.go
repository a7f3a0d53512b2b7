package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/ShaMkot/ISRES-BookingService/internal/domain"
	"github.com/ShaMkot/ISRES-BookingService/pkg/dbmetrics"
	"github.com/ShaMkot/ISRES-BookingService/pkg/psqlbuilder"
)

var slotColumns = []string{
	"id",
	"property_id",
	"owner_id",
	"customer_id",
	"slot_date",
	"slot_time",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со слотами просмотров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый слот со статусом available.
// Пересечения по дате/времени намеренно не проверяются: владелец может
// создать несколько слотов на одно и то же время.
func (r *Repository) Create(ctx context.Context, slot *domain.AppointmentSlot) (*domain.AppointmentSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointment_slots").
		Columns(
			"property_id",
			"owner_id",
			"slot_date",
			"slot_time",
			"status",
		).
		Values(
			slot.PropertyID,
			slot.OwnerID,
			slot.Date,
			slot.Time,
			slot.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return slot, nil
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.AppointmentSlot, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate получает слот по ID с блокировкой строки (FOR UPDATE).
// Должен вызываться внутри транзакции - вне транзакции блокировка
// не добавляется.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.AppointmentSlot, error) {
	return r.getByID(ctx, id, true)
}

func (r *Repository) getByID(ctx context.Context, id int64, forUpdate bool) (*domain.AppointmentSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("appointment_slots").
		Where(squirrel.Eq{"id": id})

	if forUpdate && dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	slot, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return slot, nil
}

// ListAvailableByProperty возвращает свободные слоты объекта,
// отсортированные по дате и времени по возрастанию
func (r *Repository) ListAvailableByProperty(ctx context.Context, propertyID int64) ([]*domain.AppointmentSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("appointment_slots").
		Where(squirrel.Eq{
			"property_id": propertyID,
			"status":      domain.StatusAvailable,
		}).
		OrderBy("slot_date ASC", "slot_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailableByProperty - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailableByProperty - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// ListByCustomer возвращает слоты, забронированные клиентом,
// отсортированные по дате и времени по возрастанию
func (r *Repository) ListByCustomer(ctx context.Context, customerID int64) ([]*domain.AppointmentSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("appointment_slots").
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("slot_date ASC", "slot_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByCustomer - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCustomer - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// Book атомарно переводит слот из available в booked и записывает клиента.
// Условие status = 'available' входит в сам UPDATE, поэтому из двух
// конкурентных бронирований одного слота ровно одно затронет строку,
// второе получит ErrSlotNotAvailable.
func (r *Repository) Book(ctx context.Context, id int64, customerID int64) (*domain.AppointmentSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointment_slots").
		Set("status", domain.StatusBooked).
		Set("customer_id", customerID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":     id,
			"status": domain.StatusAvailable,
		}).
		Suffix("RETURNING " + joinColumns(slotColumns)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Book - build update query: %v", ErrBuildQuery, err)
	}

	slot, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotAvailable
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Book - scan slot: %v", ErrScanRow, err)
	}

	return slot, nil
}

// CancelBooking атомарно возвращает слот из booked в available и очищает
// клиента. Условие customer_id = $N гарантирует, что чужую бронь снять
// нельзя, без отдельного чтения перед записью.
func (r *Repository) CancelBooking(ctx context.Context, id int64, customerID int64) (*domain.AppointmentSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointment_slots").
		Set("status", domain.StatusAvailable).
		Set("customer_id", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":          id,
			"status":      domain.StatusBooked,
			"customer_id": customerID,
		}).
		Suffix("RETURNING " + joinColumns(slotColumns)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CancelBooking - build update query: %v", ErrBuildQuery, err)
	}

	slot, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrNotHeldByCustomer
	}
	if err != nil {
		return nil, fmt.Errorf("%w: CancelBooking - scan slot: %v", ErrScanRow, err)
	}

	return slot, nil
}

// Delete физически удаляет слот
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointment_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSlot(row rowScanner) (*domain.AppointmentSlot, error) {
	var slot domain.AppointmentSlot
	var customerID sql.NullInt64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&slot.ID,
		&slot.PropertyID,
		&slot.OwnerID,
		&customerID,
		&slot.Date,
		&slot.Time,
		&slot.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if customerID.Valid {
		slot.CustomerID = &customerID.Int64
	}
	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return &slot, nil
}

func scanSlots(rows *sql.Rows) ([]*domain.AppointmentSlot, error) {
	slots := make([]*domain.AppointmentSlot, 0)

	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
