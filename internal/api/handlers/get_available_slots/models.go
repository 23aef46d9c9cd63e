package get_available_slots

import (
	"time"

	"github.com/dsalazarv/MCS-AgendaService/internal/domain"
	getAvailableSlots "github.com/dsalazarv/MCS-AgendaService/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	AgendaID        int64    `json:"agendaId"`
	ServiceID       int64    `json:"serviceId"`
	Date            string   `json:"date"`
	DurationMinutes int      `json:"durationMinutes"`
	Available       []string `json:"available"`
	Full            []string `json:"full"`
	DayStatus       string   `json:"dayStatus"`
	DayReason       string   `json:"dayReason,omitempty"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(agendaID, serviceID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		AgendaID:  agendaID,
		ServiceID: serviceID,
		Date:      date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	available := make([]string, len(resp.Available))
	for i, t := range resp.Available {
		available[i] = t.String()
	}
	full := make([]string, len(resp.Full))
	for i, t := range resp.Full {
		full[i] = t.String()
	}

	return &SlotsResponse{
		AgendaID:        resp.AgendaID,
		ServiceID:       resp.ServiceID,
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		Available:       available,
		Full:            full,
		DayStatus:       resp.DayStatus,
		DayReason:       resp.DayReason,
	}
}
