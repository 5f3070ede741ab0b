package draft

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/knows-studios/KNS-BookingService/pkg/dbmetrics"
	"github.com/knows-studios/KNS-BookingService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Draft сохраненный черновик мастера бронирования.
// Payload хранится как есть (JSON), разбором занимается вызывающая сторона:
// битый payload не должен быть ошибкой уровня хранилища.
type Draft struct {
	StorageKey string
	Payload    []byte
	CapturedAt time.Time
}

// Repository репозиторий для работы с черновиками мастера бронирования.
// Один ключ - один черновик, запись по ключу перезаписывается целиком
// (last-write-wins, без блокировок).
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория черновиков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает черновик по ключу
func (r *Repository) Get(ctx context.Context, storageKey string) (*Draft, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"storage_key",
		"payload",
		"captured_at",
	).
		From("wizard_drafts").
		Where(squirrel.Eq{"storage_key": storageKey}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var draft Draft
	var capturedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&draft.StorageKey,
		&draft.Payload,
		&capturedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan draft: %v", ErrScanRow, err)
	}

	draft.CapturedAt = capturedAt.Time

	return &draft, nil
}

// Upsert сохраняет черновик, перезаписывая предыдущее значение по ключу
func (r *Repository) Upsert(ctx context.Context, storageKey string, payload []byte, capturedAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("wizard_drafts").
		Columns("storage_key", "payload", "captured_at").
		Values(storageKey, payload, capturedAt).
		Suffix("ON CONFLICT (storage_key) DO UPDATE SET payload = EXCLUDED.payload, captured_at = EXCLUDED.captured_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// Delete удаляет черновик по ключу.
// Отсутствие черновика не является ошибкой.
func (r *Repository) Delete(ctx context.Context, storageKey string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("wizard_drafts").
		Where(squirrel.Eq{"storage_key": storageKey}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// DeleteOlderThan удаляет черновики, снятые раньше указанного момента.
// Используется фоновой очисткой, возвращает количество удаленных строк.
func (r *Repository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("wizard_drafts").
		Where(squirrel.Lt{"captured_at": cutoff}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOlderThan - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOlderThan - execute delete: %v", ErrExecQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOlderThan - get rows affected: %v", ErrExecQuery, err)
	}

	return deleted, nil
}
