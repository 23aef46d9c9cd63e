package create_appointment

import (
	"context"
	"time"

	"github.com/dsalazarv/MCS-AgendaService/internal/domain"
	"github.com/dsalazarv/MCS-AgendaService/internal/integrations/notifier"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
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
	GetByID(ctx context.Context, agendaID, serviceID int64) (*domain.Service, error)
}

// NotifierClient интерфейс клиента шлюза уведомлений
type NotifierClient interface {
	NotifyWithGracefulDegradation(ctx context.Context, event notifier.AppointmentEvent) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
