package create_exception

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

// Handle POST /api/v1/agendas/{agendaId}/schedule/exceptions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	agendaID, err := strconv.ParseInt(vars["agendaId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /agendas/{id}/schedule/exceptions - Invalid agenda ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAgendaID)
		return
	}

	var req models.CreateExceptionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /agendas/{id}/schedule/exceptions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.AgendaID = agendaID

	result, err := h.service.CreateException(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /agendas/{id}/schedule/exceptions - Invalid input: agenda_id=%d, error=%v",
				agendaID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, schedule.ErrServiceNotFound):
			h.logger.Warn("POST /agendas/{id}/schedule/exceptions - Service not found: agenda_id=%d", agendaID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("POST /agendas/{id}/schedule/exceptions - Failed to create exception: agenda_id=%d, error=%v",
				agendaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /agendas/{id}/schedule/exceptions - Exception created: agenda_id=%d, exception_id=%d",
		agendaID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
