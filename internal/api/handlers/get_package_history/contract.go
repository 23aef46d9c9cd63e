package get_package_history

import (
	"context"

	"github.com/dsalazarv/MCS-AgendaService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetPackageHistory(ctx context.Context, appointmentID int64) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
