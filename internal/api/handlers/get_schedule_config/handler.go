package get_schedule_config

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/dsalazarv/MCS-AgendaService/internal/api/handlers"
	"github.com/dsalazarv/MCS-AgendaService/internal/domain"
	"github.com/dsalazarv/MCS-AgendaService/internal/service/schedule/models"
)

const (
	msgInvalidAgendaID = "некорректный ID агенды"
	msgInvalidParams   = "некорректные параметры from/to"
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

// Handle GET /api/v1/agendas/{agendaId}/schedule
// Query params: from, to - период выборки исключений (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	agendaID, err := strconv.ParseInt(vars["agendaId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /agendas/{id}/schedule - Invalid agenda ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAgendaID)
		return
	}

	req := &models.GetScheduleConfigRequest{AgendaID: agendaID}

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			h.logger.Warn("GET /agendas/{id}/schedule - Invalid from: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		req.From = &from
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			h.logger.Warn("GET /agendas/{id}/schedule - Invalid to: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		req.To = &to
	}

	result, err := h.service.GetScheduleConfig(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /agendas/{id}/schedule - Failed to get config: agenda_id=%d, error=%v", agendaID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /agendas/{id}/schedule - Config retrieved: agenda_id=%d", agendaID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
