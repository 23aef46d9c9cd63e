package resolve_slot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsalazarv/MCS-AgendaService/internal/domain"
	catalogStorage "github.com/dsalazarv/MCS-AgendaService/internal/infra/storage/servicecatalog"
)

// Понедельник 6 октября 2025 - базовая дата тестов
var testMonday = time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC)

type fakeApptRepo struct {
	appointments []*domain.Appointment
}

func (r *fakeApptRepo) GetByAgendaWithFilter(_ context.Context, _ domain.AgendaAppointmentsFilter) ([]*domain.Appointment, error) {
	return r.appointments, nil
}

type fakeScheduleRepo struct {
	weekly       []domain.WeeklyHourRange
	serviceHours []domain.ServiceHourRange
}

func (r *fakeScheduleRepo) GetWeeklyHours(_ context.Context, _ int64) ([]domain.WeeklyHourRange, error) {
	return r.weekly, nil
}

func (r *fakeScheduleRepo) GetServiceHours(_ context.Context, _ int64) ([]domain.ServiceHourRange, error) {
	return r.serviceHours, nil
}

type fakeExceptionRepo struct {
	exceptions []domain.Exception
}

func (r *fakeExceptionRepo) GetByAgendaAndDateRange(_ context.Context, _ int64, _, _ time.Time) ([]domain.Exception, error) {
	return r.exceptions, nil
}

type fakeCatalogRepo struct {
	services map[int64]*domain.Service
}

func (r *fakeCatalogRepo) GetByID(_ context.Context, _ int64, serviceID int64) (*domain.Service, error) {
	svc, ok := r.services[serviceID]
	if !ok {
		return nil, catalogStorage.ErrServiceNotFound
	}
	return svc, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newUseCase(apptRepo *fakeApptRepo, exceptions []domain.Exception) *UseCase {
	scheduleRepo := &fakeScheduleRepo{
		weekly: []domain.WeeklyHourRange{
			{AgendaID: 10, DayOfWeek: domain.Monday, StartTime: "08:00", EndTime: "12:00"},
		},
	}
	catalog := &fakeCatalogRepo{
		services: map[int64]*domain.Service{
			1: {
				ID:              1,
				AgendaID:        10,
				Name:            "Limpieza dental",
				DurationMinutes: 30,
				Concurrency:     1,
				TotalSessions:   1,
			},
		},
	}
	return NewUseCase(apptRepo, scheduleRepo, &fakeExceptionRepo{exceptions: exceptions}, catalog, noopLogger{})
}

func TestExecute_SlotInsideHoursIsAvailable(t *testing.T) {
	uc := newUseCase(&fakeApptRepo{}, nil)

	// Произвольное время вне регулярной сетки тоже проверяется
	resp, err := uc.Execute(context.Background(), &Request{
		AgendaID: 10, ServiceID: 1, Date: testMonday, StartTime: "09:05",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.OutcomeAvailable), resp.Outcome)
	assert.Empty(t, resp.Reason)
	assert.Equal(t, 30, resp.DurationMinutes)
}

func TestExecute_SlotOutsideHoursIsBlocked(t *testing.T) {
	uc := newUseCase(&fakeApptRepo{}, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		AgendaID: 10, ServiceID: 1, Date: testMonday, StartTime: "13:00",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.OutcomeBlocked), resp.Outcome)
	assert.Equal(t, string(domain.ReasonAgendaClosed), resp.Reason)
}

func TestExecute_OverlappingBookingMakesSlotFull(t *testing.T) {
	apptRepo := &fakeApptRepo{
		appointments: []*domain.Appointment{
			{
				ID:              5,
				AgendaID:        10,
				ServiceName:     "Limpieza dental",
				Date:            testMonday,
				StartTime:       "09:00",
				DurationMinutes: 30,
				Status:          domain.StatusConfirmed,
				PatientName:     "María García",
				SessionNumber:   1,
				TotalSessions:   1,
			},
		},
	}
	uc := newUseCase(apptRepo, nil)

	// 09:15 пересекается с записью 09:00-09:30 при ёмкости 1
	resp, err := uc.Execute(context.Background(), &Request{
		AgendaID: 10, ServiceID: 1, Date: testMonday, StartTime: "09:15",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.OutcomeFull), resp.Outcome)
	assert.Equal(t, string(domain.ReasonCapacityReached), resp.Reason)
}

func TestExecute_BlockExceptionWins(t *testing.T) {
	uc := newUseCase(&fakeApptRepo{}, []domain.Exception{
		{
			AgendaID:  10,
			Kind:      domain.KindBlock,
			DateStart: testMonday,
			DateEnd:   testMonday,
			AllDay:    true,
		},
	})

	resp, err := uc.Execute(context.Background(), &Request{
		AgendaID: 10, ServiceID: 1, Date: testMonday, StartTime: "09:00",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.OutcomeBlocked), resp.Outcome)
	assert.Equal(t, string(domain.ReasonException), resp.Reason)
}

func TestExecute_UnknownService(t *testing.T) {
	uc := newUseCase(&fakeApptRepo{}, nil)

	_, err := uc.Execute(context.Background(), &Request{
		AgendaID: 10, ServiceID: 42, Date: testMonday, StartTime: "09:00",
	})
	require.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newUseCase(&fakeApptRepo{}, nil)

	tests := []struct {
		name string
		req  *Request
	}{
		{"нулевая агенда", &Request{ServiceID: 1, Date: testMonday, StartTime: "09:00"}},
		{"нулевая дата", &Request{AgendaID: 10, ServiceID: 1, StartTime: "09:00"}},
		{"пустое время", &Request{AgendaID: 10, ServiceID: 1, Date: testMonday}},
		{"кривое время", &Request{AgendaID: 10, ServiceID: 1, Date: testMonday, StartTime: "9 утра"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
