package get_agenda_appointments

import (
	"context"

	"github.com/dsalazarv/MCS-AgendaService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetAgendaAppointments(ctx context.Context, req *models.GetAgendaAppointmentsRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
