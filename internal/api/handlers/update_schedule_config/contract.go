package update_schedule_config

import (
	"context"

	"github.com/dsalazarv/MCS-AgendaService/internal/service/schedule/models"
)

type ScheduleService interface {
	UpdateWeeklyHours(ctx context.Context, req *models.UpdateWeeklyHoursRequest) error
	UpdateServiceHours(ctx context.Context, req *models.UpdateServiceHoursRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
