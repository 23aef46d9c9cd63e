package schedule

import (
	"context"
	"time"

	"github.com/dsalazarv/MCS-AgendaService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetWeeklyHours(ctx context.Context, agendaID int64) ([]domain.WeeklyHourRange, error)
	GetServiceHours(ctx context.Context, agendaID int64) ([]domain.ServiceHourRange, error)
	ReplaceWeeklyHours(ctx context.Context, agendaID int64, ranges []domain.WeeklyHourRange) error
	ReplaceServiceHours(ctx context.Context, agendaID int64, ranges []domain.ServiceHourRange) error
}

// ExceptionRepository интерфейс репозитория исключений расписания
type ExceptionRepository interface {
	GetByAgendaAndDateRange(ctx context.Context, agendaID int64, from, to time.Time) ([]domain.Exception, error)
	Create(ctx context.Context, e *domain.Exception) (*domain.Exception, error)
	Delete(ctx context.Context, id int64) error
}

// ServiceCatalogRepository интерфейс репозитория каталога услуг
type ServiceCatalogRepository interface {
	GetByID(ctx context.Context, agendaID, serviceID int64) (*domain.Service, error)
	ListByAgenda(ctx context.Context, agendaID int64) ([]*domain.Service, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
