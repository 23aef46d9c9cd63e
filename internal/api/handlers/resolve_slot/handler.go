package resolve_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dsalazarv/MCS-AgendaService/internal/api/handlers"
	resolveSlot "github.com/dsalazarv/MCS-AgendaService/internal/usecase/resolve_slot"
)

const (
	msgInvalidAgendaID  = "некорректный ID агенды"
	msgInvalidServiceID = "некорректный ID услуги"
	msgInvalidParams    = "некорректные параметры date/time"
	msgServiceNotFound  = "услуга не найдена"
)

type Handler struct {
	useCase ResolveSlotUseCase
	logger  Logger
}

func NewHandler(useCase ResolveSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/agendas/{agendaId}/services/{serviceId}/slots/resolve?date=YYYY-MM-DD&time=HH:MM
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	agendaID, err := strconv.ParseInt(vars["agendaId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /slots/resolve - Invalid agenda ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAgendaID)
		return
	}

	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /slots/resolve - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	useCaseReq, err := ToUseCaseRequest(agendaID, serviceID, r.URL.Query().Get("date"), r.URL.Query().Get("time"))
	if err != nil {
		h.logger.Warn("GET /slots/resolve - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, resolveSlot.ErrServiceNotFound):
			h.logger.Warn("GET /slots/resolve - Service not found: agenda_id=%d, service_id=%d", agendaID, serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, resolveSlot.ErrInvalidInput):
			h.logger.Warn("GET /slots/resolve - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /slots/resolve - Failed to resolve slot: agenda_id=%d, error=%v", agendaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots/resolve - Slot resolved: agenda_id=%d, service_id=%d, outcome=%s",
		agendaID, serviceID, result.Outcome)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
