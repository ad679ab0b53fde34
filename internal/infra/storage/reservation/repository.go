package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

// Колонка is_reserved хранит "активность" брони: true до тех пор,
// пока sweeper не пометит её истекшей. Записи никогда не удаляются
// sweeper'ом - история сохраняется для отчетов и экспорта.
const uniqueViolationCode = "23505"

var reservationColumns = []string{
	"table_id",
	"reservation_time",
	"username",
	"customer_name",
	"seats",
	"is_reserved",
	"created_at",
	"updated_at",
}

// Repository репозиторий броней столов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую бронь
// Уникальный индекс (table_id, reservation_time) - последняя линия защиты
// от двойного бронирования: нарушение конвертируется в ErrSlotTaken
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"table_id",
			"reservation_time",
			"username",
			"customer_name",
			"seats",
			"is_reserved",
		).
		Values(
			res.TableID,
			res.StartTime,
			res.Username,
			res.CustomerName,
			res.Seats,
			res.Active,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return nil, fmt.Errorf("%w: table=%s time=%s", ErrSlotTaken, res.TableID, res.StartTime.Format(time.RFC3339))
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// ExistsActive проверяет, есть ли активная бронь на точную пару (стол, время)
// Внутри транзакции блокирует найденную строку (FOR UPDATE),
// чтобы check-then-act бронирования был атомарным
func (r *Repository) ExistsActive(ctx context.Context, tableID string, startTime time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("1").
		From("reservations").
		Where(squirrel.Eq{
			"table_id":         tableID,
			"reservation_time": startTime,
			"is_reserved":      true,
		})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsActive - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsActive - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}

// GetByKey получает бронь по ключу (стол, время)
// Внутри транзакции блокирует строку (FOR UPDATE)
func (r *Repository) GetByKey(ctx context.Context, tableID string, startTime time.Time) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{
			"table_id":         tableID,
			"reservation_time": startTime,
		})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - build select query: %v", ErrBuildQuery, err)
	}

	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.TableID,
		&res.StartTime,
		&res.Username,
		&res.CustomerName,
		&res.Seats,
		&res.Active,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - scan row: %v", ErrScanRow, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

// Delete удаляет бронь по ключу (стол, время)
// Используется отменой: в отличие от sweeper'а, отмена уничтожает запись
func (r *Repository) Delete(ctx context.Context, tableID string, startTime time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{
			"table_id":         tableID,
			"reservation_time": startTime,
		}).
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
		return ErrReservationNotFound
	}

	return nil
}

// GetByTable получает все брони стола, по возрастанию времени
func (r *Repository) GetByTable(ctx context.Context, tableID string) ([]*domain.Reservation, error) {
	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"table_id": tableID}).
		OrderBy("reservation_time ASC")

	return r.query(ctx, selectBuilder, "GetByTable")
}

// GetByUsername получает все брони пользователя, по возрастанию времени
func (r *Repository) GetByUsername(ctx context.Context, username string) ([]*domain.Reservation, error) {
	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"username": username}).
		OrderBy("reservation_time ASC")

	return r.query(ctx, selectBuilder, "GetByUsername")
}

// GetAll получает все брони, по возрастанию времени
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Reservation, error) {
	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		OrderBy("reservation_time ASC")

	return r.query(ctx, selectBuilder, "GetAll")
}

// MarkElapsed помечает истекшими все активные брони, начавшиеся не позже now
// Возвращает количество затронутых строк; повторный вызов на тех же данных
// ничего не меняет
func (r *Repository) MarkElapsed(ctx context.Context, now time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("is_reserved", false).
		Set("updated_at", now).
		Where(squirrel.Eq{"is_reserved": true}).
		Where(squirrel.LtOrEq{"reservation_time": now}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: MarkElapsed - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: MarkElapsed - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: MarkElapsed - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

func (r *Repository) query(ctx context.Context, selectBuilder squirrel.SelectBuilder, caller string) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, caller, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, caller, err)
	}
	defer rows.Close()

	return r.scanReservations(rows, caller)
}

// scanReservations сканирует результаты запроса в слайс броней
func (r *Repository) scanReservations(rows *sql.Rows, caller string) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		var res domain.Reservation
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&res.TableID,
			&res.StartTime,
			&res.Username,
			&res.CustomerName,
			&res.Seats,
			&res.Active,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, caller, err)
		}

		res.CreatedAt = createdAt.Time
		res.UpdatedAt = updatedAt.Time

		reservations = append(reservations, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, caller, err)
	}

	return reservations, nil
}
