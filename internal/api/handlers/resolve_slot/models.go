package resolve_slot

import (
	"time"

	"github.com/dsalazarv/MCS-AgendaService/internal/domain"
	resolveSlot "github.com/dsalazarv/MCS-AgendaService/internal/usecase/resolve_slot"
	"github.com/dsalazarv/MCS-AgendaService/pkg/types"
)

// VerdictResponse HTTP response model
type VerdictResponse struct {
	AgendaID        int64  `json:"agendaId"`
	ServiceID       int64  `json:"serviceId"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Outcome         string `json:"outcome"`
	Reason          string `json:"reason,omitempty"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(agendaID, serviceID int64, dateStr, timeStr string) (*resolveSlot.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(timeStr)
	if err != nil {
		return nil, err
	}

	return &resolveSlot.Request{
		AgendaID:  agendaID,
		ServiceID: serviceID,
		Date:      date,
		StartTime: startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *resolveSlot.Response) *VerdictResponse {
	return &VerdictResponse{
		AgendaID:        resp.AgendaID,
		ServiceID:       resp.ServiceID,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Outcome:         resp.Outcome,
		Reason:          resp.Reason,
	}
}
