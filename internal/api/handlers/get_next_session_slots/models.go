package get_next_session_slots

import (
	"time"

	"github.com/dsalazarv/MCS-AgendaService/internal/domain"
	getNextSessionSlots "github.com/dsalazarv/MCS-AgendaService/internal/usecase/get_next_session_slots"
)

// NextSessionSlotsResponse HTTP response model
type NextSessionSlotsResponse struct {
	AgendaID        int64    `json:"agendaId"`
	ServiceID       int64    `json:"serviceId"`
	ServiceName     string   `json:"serviceName"`
	Date            string   `json:"date"`
	DurationMinutes int      `json:"durationMinutes"`
	SessionNumber   int      `json:"sessionNumber"`
	TotalSessions   int      `json:"totalSessions"`
	Available       []string `json:"available"`
	Full            []string `json:"full"`
	DayStatus       string   `json:"dayStatus"`
	DayReason       string   `json:"dayReason,omitempty"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(appointmentID int64, dateStr string) (*getNextSessionSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getNextSessionSlots.Request{
		AppointmentID: appointmentID,
		Date:          date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getNextSessionSlots.Response) *NextSessionSlotsResponse {
	available := make([]string, len(resp.Available))
	for i, t := range resp.Available {
		available[i] = t.String()
	}
	full := make([]string, len(resp.Full))
	for i, t := range resp.Full {
		full[i] = t.String()
	}

	return &NextSessionSlotsResponse{
		AgendaID:        resp.AgendaID,
		ServiceID:       resp.ServiceID,
		ServiceName:     resp.ServiceName,
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		SessionNumber:   resp.SessionNumber,
		TotalSessions:   resp.TotalSessions,
		Available:       available,
		Full:            full,
		DayStatus:       resp.DayStatus,
		DayReason:       resp.DayReason,
	}
}
