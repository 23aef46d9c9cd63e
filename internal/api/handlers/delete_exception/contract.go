package delete_exception

import "context"

// ScheduleService описывает операции сервиса расписания, нужные обработчику.
type ScheduleService interface {
	DeleteException(ctx context.Context, id int64) error
}

// Logger описывает интерфейс для логирования.
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
