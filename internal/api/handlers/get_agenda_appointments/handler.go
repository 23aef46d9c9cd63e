package get_agenda_appointments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dsalazarv/MCS-AgendaService/internal/api/handlers"
	"github.com/dsalazarv/MCS-AgendaService/internal/service/appointments"
)

const (
	msgInvalidAgendaID = "некорректный ID агенды"
	msgInvalidParams   = "некорректные параметры запроса"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/agendas/{agendaId}/appointments
// Query params: service, status, startDate, endDate, includeCancelled (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	agendaID, err := strconv.ParseInt(vars["agendaId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /agendas/{id}/appointments - Invalid agenda ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAgendaID)
		return
	}

	query := r.URL.Query()
	serviceReq, err := ToServiceRequest(
		agendaID,
		query.Get("service"),
		query.Get("status"),
		query.Get("startDate"),
		query.Get("endDate"),
		query.Get("includeCancelled"),
	)
	if err != nil {
		h.logger.Warn("GET /agendas/{id}/appointments - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.GetAgendaAppointments(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /agendas/{id}/appointments - Invalid input: agenda_id=%d, error=%v", agendaID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /agendas/{id}/appointments - Failed to get appointments: agenda_id=%d, error=%v",
				agendaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /agendas/{id}/appointments - Appointments retrieved: agenda_id=%d, count=%d",
		agendaID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result.Appointments)
}
