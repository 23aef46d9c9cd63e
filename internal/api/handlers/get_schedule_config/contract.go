package get_schedule_config

import (
	"context"

	"github.com/dsalazarv/MCS-AgendaService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetScheduleConfig(ctx context.Context, req *models.GetScheduleConfigRequest) (*models.ScheduleConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
