package availability

import (
	"time"

	"github.com/dsalazarv/MCS-AgendaService/internal/domain"
	"github.com/dsalazarv/MCS-AgendaService/pkg/types"
)

// Понедельник 6 октября 2025 - базовая дата тестов
var testMonday = time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC)

func testService() *domain.Service {
	return &domain.Service{
		ID:              1,
		AgendaID:        10,
		Name:            "Limpieza dental",
		DurationMinutes: 30,
		Concurrency:     1,
		TotalSessions:   1,
	}
}

func weekly(day domain.DayOfWeek, start, end types.TimeString) domain.WeeklyHourRange {
	return domain.WeeklyHourRange{AgendaID: 10, DayOfWeek: day, StartTime: start, EndTime: end}
}

func serviceHours(serviceID int64, day domain.DayOfWeek, start, end types.TimeString) domain.ServiceHourRange {
	return domain.ServiceHourRange{AgendaID: 10, ServiceID: serviceID, DayOfWeek: day, StartTime: start, EndTime: end}
}

func blockAllDay(serviceID *int64, date time.Time) domain.Exception {
	return domain.Exception{
		AgendaID:  10,
		ServiceID: serviceID,
		Kind:      domain.KindBlock,
		DateStart: date,
		DateEnd:   date,
		AllDay:    true,
	}
}

func blockWindow(serviceID *int64, date time.Time, start, end types.TimeString) domain.Exception {
	return domain.Exception{
		AgendaID:  10,
		ServiceID: serviceID,
		Kind:      domain.KindBlock,
		DateStart: date,
		DateEnd:   date,
		TimeStart: &start,
		TimeEnd:   &end,
	}
}

func enableAllDay(serviceID *int64, date time.Time) domain.Exception {
	return domain.Exception{
		AgendaID:  10,
		ServiceID: serviceID,
		Kind:      domain.KindEnable,
		DateStart: date,
		DateEnd:   date,
		AllDay:    true,
	}
}

func enableWindow(serviceID *int64, date time.Time, start, end types.TimeString) domain.Exception {
	return domain.Exception{
		AgendaID:  10,
		ServiceID: serviceID,
		Kind:      domain.KindEnable,
		DateStart: date,
		DateEnd:   date,
		TimeStart: &start,
		TimeEnd:   &end,
	}
}

func appt(id int64, serviceName string, date time.Time, start types.TimeString, duration int, status domain.AppointmentStatus) domain.Appointment {
	return domain.Appointment{
		ID:              id,
		AgendaID:        10,
		ServiceName:     serviceName,
		Date:            date,
		StartTime:       start,
		DurationMinutes: duration,
		Status:          status,
		PatientName:     "Paciente de Prueba",
		SessionNumber:   1,
		TotalSessions:   1,
	}
}

func mondayMorning() *Snapshot {
	return &Snapshot{
		WeeklyHours: []domain.WeeklyHourRange{
			weekly(domain.Monday, "08:00", "12:00"),
		},
	}
}
