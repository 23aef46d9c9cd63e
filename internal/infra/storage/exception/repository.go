package exception

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/dsalazarv/MCS-AgendaService/internal/domain"
	"github.com/dsalazarv/MCS-AgendaService/pkg/dbmetrics"
	"github.com/dsalazarv/MCS-AgendaService/pkg/psqlbuilder"
	"github.com/dsalazarv/MCS-AgendaService/pkg/types"
)

// Переиспользуем интерфейс executor из dbmetrics
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий датированных исключений расписания
// (закрытия BLOCK и исключительные открытия ENABLE)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория исключений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByAgendaAndDateRange получает исключения агенды, чей диапазон дат
// пересекается с [from, to]
func (r *Repository) GetByAgendaAndDateRange(ctx context.Context, agendaID int64, from, to time.Time) ([]domain.Exception, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"agenda_id",
		"service_id",
		"kind",
		"date_start",
		"date_end",
		"all_day",
		"time_start",
		"time_end",
		"reason",
	).
		From("schedule_exceptions").
		Where(squirrel.Eq{"agenda_id": agendaID}).
		Where(squirrel.LtOrEq{"date_start": to}).
		Where(squirrel.GtOrEq{"date_end": from}).
		OrderBy("date_start ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByAgendaAndDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByAgendaAndDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	exceptions := make([]domain.Exception, 0)
	for rows.Next() {
		var e domain.Exception
		var timeStart, timeEnd sql.NullString
		err := rows.Scan(
			&e.ID,
			&e.AgendaID,
			&e.ServiceID,
			&e.Kind,
			&e.DateStart,
			&e.DateEnd,
			&e.AllDay,
			&timeStart,
			&timeEnd,
			&e.Reason,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByAgendaAndDateRange - scan row: %v", ErrScanRow, err)
		}

		if timeStart.Valid {
			var ts types.TimeString
			if err := ts.Scan(timeStart.String); err != nil {
				return nil, fmt.Errorf("%w: GetByAgendaAndDateRange - scan time_start: %v", ErrScanRow, err)
			}
			e.TimeStart = &ts
		}
		if timeEnd.Valid {
			var te types.TimeString
			if err := te.Scan(timeEnd.String); err != nil {
				return nil, fmt.Errorf("%w: GetByAgendaAndDateRange - scan time_end: %v", ErrScanRow, err)
			}
			e.TimeEnd = &te
		}

		exceptions = append(exceptions, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByAgendaAndDateRange - rows error: %v", ErrScanRow, err)
	}

	return exceptions, nil
}

// Create создает новое исключение расписания
func (r *Repository) Create(ctx context.Context, e *domain.Exception) (*domain.Exception, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedule_exceptions").
		Columns(
			"agenda_id",
			"service_id",
			"kind",
			"date_start",
			"date_end",
			"all_day",
			"time_start",
			"time_end",
			"reason",
		).
		Values(
			e.AgendaID,
			e.ServiceID,
			e.Kind,
			e.DateStart,
			e.DateEnd,
			e.AllDay,
			e.TimeStart,
			e.TimeEnd,
			e.Reason,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&e.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return e, nil
}

// Delete удаляет исключение по ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("schedule_exceptions").
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
		return ErrExceptionNotFound
	}

	return nil
}
