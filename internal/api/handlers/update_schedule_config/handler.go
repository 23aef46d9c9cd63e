package update_schedule_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dsalazarv/MCS-AgendaService/internal/api/handlers"
	"github.com/dsalazarv/MCS-AgendaService/internal/service/schedule"
	"github.com/dsalazarv/MCS-AgendaService/internal/service/schedule/models"
)

const (
	msgInvalidAgendaID    = "некорректный ID агенды"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgServiceNotFound    = "услуга не найдена"
	msgEmptyRequest       = "тело запроса не содержит ни одной секции расписания"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/agendas/{agendaId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	agendaID, err := strconv.ParseInt(vars["agendaId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /agendas/{id}/schedule - Invalid agenda ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAgendaID)
		return
	}

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /agendas/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.WeeklyHours == nil && req.ServiceHours == nil {
		h.logger.Warn("PUT /agendas/{id}/schedule - Empty request: agenda_id=%d", agendaID)
		handlers.RespondBadRequest(w, msgEmptyRequest)
		return
	}

	if req.WeeklyHours != nil {
		serviceReq := &models.UpdateWeeklyHoursRequest{
			AgendaID: agendaID,
			Ranges:   *req.WeeklyHours,
		}
		if err := h.service.UpdateWeeklyHours(r.Context(), serviceReq); err != nil {
			h.respondUpdateError(w, agendaID, "weekly hours", err)
			return
		}
	}

	if req.ServiceHours != nil {
		serviceReq := &models.UpdateServiceHoursRequest{
			AgendaID: agendaID,
			Ranges:   *req.ServiceHours,
		}
		if err := h.service.UpdateServiceHours(r.Context(), serviceReq); err != nil {
			h.respondUpdateError(w, agendaID, "service hours", err)
			return
		}
	}

	h.logger.Info("PUT /agendas/{id}/schedule - Schedule updated: agenda_id=%d", agendaID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) respondUpdateError(w http.ResponseWriter, agendaID int64, section string, err error) {
	switch {
	case errors.Is(err, schedule.ErrInvalidInput):
		h.logger.Warn("PUT /agendas/{id}/schedule - Invalid %s: agenda_id=%d, error=%v", section, agendaID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)

	case errors.Is(err, schedule.ErrServiceNotFound):
		h.logger.Warn("PUT /agendas/{id}/schedule - Service not found in %s: agenda_id=%d", section, agendaID)
		handlers.RespondNotFound(w, msgServiceNotFound)

	default:
		h.logger.Error("PUT /agendas/{id}/schedule - Failed to update %s: agenda_id=%d, error=%v",
			section, agendaID, err)
		handlers.RespondInternalError(w)
	}
}
