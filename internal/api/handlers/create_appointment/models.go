package create_appointment

import (
	"time"

	"github.com/dsalazarv/MCS-AgendaService/internal/domain"
	createAppointment "github.com/dsalazarv/MCS-AgendaService/internal/usecase/create_appointment"
	"github.com/dsalazarv/MCS-AgendaService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	AgendaID      int64   `json:"agendaId"`
	ServiceID     int64   `json:"serviceId"`
	Date          string  `json:"date"`      // "2025-10-15"
	StartTime     string  `json:"startTime"` // "10:00"
	PatientName   string  `json:"patientName"`
	Document      *string `json:"document,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Email         *string `json:"email,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	SessionNumber int     `json:"sessionNumber,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	AgendaID        int64   `json:"agendaId"`
	ServiceID       int64   `json:"serviceId"`
	ServiceName     string  `json:"serviceName"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	PatientName     string  `json:"patientName"`
	Document        *string `json:"document,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	Email           *string `json:"email,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	SessionNumber   int     `json:"sessionNumber"`
	TotalSessions   int     `json:"totalSessions"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		AgendaID:      r.AgendaID,
		ServiceID:     r.ServiceID,
		Date:          date,
		StartTime:     startTime,
		PatientName:   r.PatientName,
		Document:      r.Document,
		Phone:         r.Phone,
		Email:         r.Email,
		Notes:         r.Notes,
		SessionNumber: r.SessionNumber,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		AgendaID:        resp.AgendaID,
		ServiceID:       resp.ServiceID,
		ServiceName:     resp.ServiceName,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		PatientName:     resp.PatientName,
		Document:        resp.Document,
		Phone:           resp.Phone,
		Email:           resp.Email,
		Notes:           resp.Notes,
		SessionNumber:   resp.SessionNumber,
		TotalSessions:   resp.TotalSessions,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
