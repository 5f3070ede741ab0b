package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/knows-studios/KNS-BookingService/internal/domain"
	"github.com/knows-studios/KNS-BookingService/pkg/dbmetrics"
	"github.com/knows-studios/KNS-BookingService/pkg/psqlbuilder"
)

// bookingColumns колонки таблицы bookings в порядке сканирования
var bookingColumns = []string{
	"id",
	"user_id",
	"confirmation_number",
	"booking_date",
	"start_time",
	"package_name",
	"package_duration",
	"addon_names",
	"total_price",
	"deposit_due",
	"customer_name",
	"customer_email",
	"customer_phone",
	"project_description",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями бронирований.
// Записи бронирований неизменяемы: репозиторий поддерживает только
// создание и чтение.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись бронирования.
// Если в контексте передана активная транзакция (через context.Value), использует её.
func (r *Repository) Create(ctx context.Context, record *domain.BookingRecord) (*domain.BookingRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"confirmation_number",
			"booking_date",
			"start_time",
			"package_name",
			"package_duration",
			"addon_names",
			"total_price",
			"deposit_due",
			"customer_name",
			"customer_email",
			"customer_phone",
			"project_description",
		).
		Values(
			record.UserID,
			record.ConfirmationNumber,
			record.BookingDate,
			record.StartTime,
			record.PackageName,
			record.PackageDuration,
			pq.Array(record.AddOnNames),
			record.TotalPrice,
			record.DepositDue,
			record.CustomerName,
			record.CustomerEmail,
			record.CustomerPhone,
			record.ProjectDescription,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&record.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	record.CreatedAt = createdAt.Time
	record.UpdatedAt = updatedAt.Time

	return record, nil
}

// GetByID получает запись бронирования по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BookingRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	record, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return record, nil
}

// GetByConfirmationNumber получает запись бронирования по номеру подтверждения.
// Номер не гарантированно уникален, возвращается самая свежая запись.
func (r *Repository) GetByConfirmationNumber(ctx context.Context, number string) (*domain.BookingRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"confirmation_number": number}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByConfirmationNumber - build select query: %v", ErrBuildQuery, err)
	}

	record, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByConfirmationNumber - scan booking: %v", ErrScanRow, err)
	}

	return record, nil
}

// GetByUserID получает историю бронирований пользователя, сначала новые
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]*domain.BookingRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("booking_date DESC, start_time DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]*domain.BookingRecord, 0)
	for rows.Next() {
		record, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByUserID - scan row: %v", ErrScanRow, err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку результата в доменную модель
func (r *Repository) scanBooking(row rowScanner) (*domain.BookingRecord, error) {
	var record domain.BookingRecord
	var addOnNames pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&record.ID,
		&record.UserID,
		&record.ConfirmationNumber,
		&record.BookingDate,
		&record.StartTime,
		&record.PackageName,
		&record.PackageDuration,
		&addOnNames,
		&record.TotalPrice,
		&record.DepositDue,
		&record.CustomerName,
		&record.CustomerEmail,
		&record.CustomerPhone,
		&record.ProjectDescription,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.AddOnNames = addOnNames
	record.CreatedAt = createdAt.Time
	record.UpdatedAt = updatedAt.Time

	return &record, nil
}
