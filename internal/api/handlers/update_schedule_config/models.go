package update_schedule_config

import (
	"github.com/dsalazarv/MCS-AgendaService/internal/service/schedule/models"
)

// UpdateScheduleRequest HTTP request model.
// Присутствие секции в теле означает полную замену соответствующего набора:
// пустой массив очищает набор, отсутствующая секция не трогается
type UpdateScheduleRequest struct {
	WeeklyHours  *[]models.HourRangeInput        `json:"weeklyHours,omitempty"`
	ServiceHours *[]models.ServiceHourRangeInput `json:"serviceHours,omitempty"`
}
