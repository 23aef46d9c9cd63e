package update_appointment_status

import (
	"context"

	"github.com/dsalazarv/MCS-AgendaService/internal/service/appointments/models"
)

// AppointmentsService описывает операции сервиса записей, нужные обработчику.
type AppointmentsService interface {
	UpdateStatus(ctx context.Context, appointmentID int64, req *models.UpdateStatusRequest) error
}

// Logger описывает интерфейс для логирования.
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
