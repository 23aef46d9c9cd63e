package schedule

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/dsalazarv/MCS-AgendaService/internal/domain"
	"github.com/dsalazarv/MCS-AgendaService/pkg/dbmetrics"
	"github.com/dsalazarv/MCS-AgendaService/pkg/psqlbuilder"
)

// Переиспользуем интерфейс executor из dbmetrics
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий повторяющегося расписания: общие часы агенды
// (weekly_hours) и переопределения по услугам (service_hours)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWeeklyHours получает все общие окна работы агенды
func (r *Repository) GetWeeklyHours(ctx context.Context, agendaID int64) ([]domain.WeeklyHourRange, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"agenda_id",
		"day_of_week",
		"start_time",
		"end_time",
	).
		From("weekly_hours").
		Where(squirrel.Eq{"agenda_id": agendaID}).
		OrderBy("day_of_week ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklyHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklyHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ranges := make([]domain.WeeklyHourRange, 0)
	for rows.Next() {
		var hr domain.WeeklyHourRange
		if err := rows.Scan(&hr.ID, &hr.AgendaID, &hr.DayOfWeek, &hr.StartTime, &hr.EndTime); err != nil {
			return nil, fmt.Errorf("%w: GetWeeklyHours - scan row: %v", ErrScanRow, err)
		}
		ranges = append(ranges, hr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWeeklyHours - rows error: %v", ErrScanRow, err)
	}

	return ranges, nil
}

// GetServiceHours получает все переопределения расписания по услугам агенды
// Фильтр по услуге здесь не применяется: признак ограниченного режима
// определяется наличием строк на ЛЮБОЙ день, поэтому движку нужен полный набор
func (r *Repository) GetServiceHours(ctx context.Context, agendaID int64) ([]domain.ServiceHourRange, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"agenda_id",
		"service_id",
		"day_of_week",
		"start_time",
		"end_time",
	).
		From("service_hours").
		Where(squirrel.Eq{"agenda_id": agendaID}).
		OrderBy("service_id ASC, day_of_week ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ranges := make([]domain.ServiceHourRange, 0)
	for rows.Next() {
		var hr domain.ServiceHourRange
		if err := rows.Scan(&hr.ID, &hr.AgendaID, &hr.ServiceID, &hr.DayOfWeek, &hr.StartTime, &hr.EndTime); err != nil {
			return nil, fmt.Errorf("%w: GetServiceHours - scan row: %v", ErrScanRow, err)
		}
		ranges = append(ranges, hr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetServiceHours - rows error: %v", ErrScanRow, err)
	}

	return ranges, nil
}

// ReplaceWeeklyHours заменяет все общие окна агенды новым набором
// Выполняется внутри транзакции вызывающей стороны
func (r *Repository) ReplaceWeeklyHours(ctx context.Context, agendaID int64, ranges []domain.WeeklyHourRange) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("weekly_hours").
		Where(squirrel.Eq{"agenda_id": agendaID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWeeklyHours - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceWeeklyHours - execute delete: %v", ErrExecQuery, err)
	}

	if len(ranges) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("weekly_hours").
		Columns("agenda_id", "day_of_week", "start_time", "end_time")
	for _, hr := range ranges {
		insertBuilder = insertBuilder.Values(agendaID, hr.DayOfWeek, hr.StartTime, hr.EndTime)
	}

	query, args, err = insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWeeklyHours - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceWeeklyHours - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// ReplaceServiceHours заменяет все переопределения по услугам новым набором
func (r *Repository) ReplaceServiceHours(ctx context.Context, agendaID int64, ranges []domain.ServiceHourRange) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("service_hours").
		Where(squirrel.Eq{"agenda_id": agendaID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceServiceHours - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceServiceHours - execute delete: %v", ErrExecQuery, err)
	}

	if len(ranges) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("service_hours").
		Columns("agenda_id", "service_id", "day_of_week", "start_time", "end_time")
	for _, hr := range ranges {
		insertBuilder = insertBuilder.Values(agendaID, hr.ServiceID, hr.DayOfWeek, hr.StartTime, hr.EndTime)
	}

	query, args, err = insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceServiceHours - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceServiceHours - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
