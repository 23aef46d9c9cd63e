package servicecatalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/dsalazarv/MCS-AgendaService/internal/domain"
	"github.com/dsalazarv/MCS-AgendaService/pkg/dbmetrics"
	"github.com/dsalazarv/MCS-AgendaService/pkg/psqlbuilder"
)

// Переиспользуем интерфейс executor из dbmetrics
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий каталога услуг агенды
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает услугу агенды по ID
func (r *Repository) GetByID(ctx context.Context, agendaID, serviceID int64) (*domain.Service, error) {
	return r.getOne(ctx, squirrel.Eq{"agenda_id": agendaID, "id": serviceID})
}

// GetByName получает услугу агенды по имени
// Имя услуги уникально в пределах агенды
func (r *Repository) GetByName(ctx context.Context, agendaID int64, name string) (*domain.Service, error) {
	return r.getOne(ctx, squirrel.Eq{"agenda_id": agendaID, "name": name})
}

// ListByAgenda получает все услуги агенды
func (r *Repository) ListByAgenda(ctx context.Context, agendaID int64) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"agenda_id",
		"name",
		"duration_minutes",
		"concurrency",
		"total_sessions",
		"color",
	).
		From("agenda_services").
		Where(squirrel.Eq{"agenda_id": agendaID}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByAgenda - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByAgenda - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		var svc domain.Service
		err := rows.Scan(
			&svc.ID,
			&svc.AgendaID,
			&svc.Name,
			&svc.DurationMinutes,
			&svc.Concurrency,
			&svc.TotalSessions,
			&svc.Color,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByAgenda - scan row: %v", ErrScanRow, err)
		}
		services = append(services, &svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByAgenda - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"agenda_id",
		"name",
		"duration_minutes",
		"concurrency",
		"total_sessions",
		"color",
	).
		From("agenda_services").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	var svc domain.Service
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&svc.ID,
		&svc.AgendaID,
		&svc.Name,
		&svc.DurationMinutes,
		&svc.Concurrency,
		&svc.TotalSessions,
		&svc.Color,
	)

	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan service: %v", ErrScanRow, err)
	}

	return &svc, nil
}
