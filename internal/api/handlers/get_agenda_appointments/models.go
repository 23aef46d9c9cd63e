package get_agenda_appointments

import (
	"strconv"
	"time"

	"github.com/dsalazarv/MCS-AgendaService/internal/domain"
	"github.com/dsalazarv/MCS-AgendaService/internal/service/appointments/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(
	agendaID int64,
	serviceNameStr string,
	statusStr string,
	startDateStr string,
	endDateStr string,
	includeCancelledStr string,
) (*models.GetAgendaAppointmentsRequest, error) {
	req := &models.GetAgendaAppointmentsRequest{
		AgendaID:         agendaID,
		IncludeCancelled: false, // По умолчанию только активные
	}

	if serviceNameStr != "" {
		req.ServiceName = &serviceNameStr
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	// Парсим период, если указан
	if startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}
	if endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if includeCancelledStr != "" {
		includeCancelled, err := strconv.ParseBool(includeCancelledStr)
		if err != nil {
			return nil, err
		}
		req.IncludeCancelled = includeCancelled
	}

	return req, nil
}
