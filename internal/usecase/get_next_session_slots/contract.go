package get_next_session_slots

import (
	"context"
	"time"

	"github.com/dsalazarv/MCS-AgendaService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByAgendaWithFilter(ctx context.Context, filter domain.AgendaAppointmentsFilter) ([]*domain.Appointment, error)
}

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetWeeklyHours(ctx context.Context, agendaID int64) ([]domain.WeeklyHourRange, error)
	GetServiceHours(ctx context.Context, agendaID int64) ([]domain.ServiceHourRange, error)
}

// ExceptionRepository интерфейс репозитория исключений расписания
type ExceptionRepository interface {
	GetByAgendaAndDateRange(ctx context.Context, agendaID int64, from, to time.Time) ([]domain.Exception, error)
}

// ServiceCatalogRepository интерфейс репозитория каталога услуг
type ServiceCatalogRepository interface {
	GetByName(ctx context.Context, agendaID int64, name string) (*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
