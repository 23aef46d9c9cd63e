package get_next_session_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dsalazarv/MCS-AgendaService/internal/api/handlers"
	getNextSessionSlots "github.com/dsalazarv/MCS-AgendaService/internal/usecase/get_next_session_slots"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgAppointmentNotFound  = "запись не найдена"
	msgServiceNotFound      = "услуга записи больше не существует"
	msgPackageComplete      = "все сеансы пакета уже назначены"
)

type Handler struct {
	useCase GetNextSessionSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetNextSessionSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/{appointmentId}/next-session/slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /appointments/{id}/next-session/slots - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	useCaseReq, err := ToUseCaseRequest(appointmentID, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /appointments/{id}/next-session/slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getNextSessionSlots.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/{id}/next-session/slots - Appointment not found: appointment_id=%d",
				appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, getNextSessionSlots.ErrServiceNotFound):
			h.logger.Warn("GET /appointments/{id}/next-session/slots - Service not found: appointment_id=%d",
				appointmentID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getNextSessionSlots.ErrPackageComplete):
			h.logger.Warn("GET /appointments/{id}/next-session/slots - Package complete: appointment_id=%d",
				appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgPackageComplete)

		case errors.Is(err, getNextSessionSlots.ErrInvalidInput):
			h.logger.Warn("GET /appointments/{id}/next-session/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /appointments/{id}/next-session/slots - Failed: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/{id}/next-session/slots - Slots retrieved: appointment_id=%d, session=%d/%d, available=%d",
		appointmentID, result.SessionNumber, result.TotalSessions, len(result.Available))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
