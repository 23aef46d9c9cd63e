package resolve_slot

import (
	"context"
	"fmt"
	"time"

	"github.com/dsalazarv/MCS-AgendaService/internal/availability"
	"github.com/dsalazarv/MCS-AgendaService/internal/domain"
)

// loadSnapshot собирает снимок расписания агенды на указанную дату
func loadSnapshot(
	ctx context.Context,
	agendaID int64,
	date time.Time,
	scheduleRepo ScheduleRepository,
	exceptionRepo ExceptionRepository,
	apptRepo AppointmentRepository,
) (*availability.Snapshot, error) {
	weekly, err := scheduleRepo.GetWeeklyHours(ctx, agendaID)
	if err != nil {
		return nil, fmt.Errorf("failed to get weekly hours: %v", err)
	}

	serviceHours, err := scheduleRepo.GetServiceHours(ctx, agendaID)
	if err != nil {
		return nil, fmt.Errorf("failed to get service hours: %v", err)
	}

	exceptions, err := exceptionRepo.GetByAgendaAndDateRange(ctx, agendaID, date, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get exceptions: %v", err)
	}

	filter := domain.AgendaAppointmentsFilter{
		AgendaID:         agendaID,
		StartDate:        &date,
		EndDate:          &date,
		IncludeCancelled: false,
	}
	appointments, err := apptRepo.GetByAgendaWithFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get appointments: %v", err)
	}

	flat := make([]domain.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a != nil {
			flat = append(flat, *a)
		}
	}

	return &availability.Snapshot{
		WeeklyHours:  weekly,
		ServiceHours: serviceHours,
		Exceptions:   exceptions,
		Appointments: flat,
	}, nil
}
