package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsalazarv/MCS-AgendaService/internal/domain"
	catalogStorage "github.com/dsalazarv/MCS-AgendaService/internal/infra/storage/servicecatalog"
	"github.com/dsalazarv/MCS-AgendaService/pkg/types"
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

func TestExecute_EnumeratesSlotsForTheDay(t *testing.T) {
	uc := newUseCase(&fakeApptRepo{}, nil)

	resp, err := uc.Execute(context.Background(), &Request{AgendaID: 10, ServiceID: 1, Date: testMonday})
	require.NoError(t, err)

	expected := []types.TimeString{"08:00", "08:35", "09:10", "09:45", "10:20", "10:55", "11:30"}
	assert.Equal(t, expected, resp.Available)
	assert.Empty(t, resp.Full)
	assert.Equal(t, string(domain.OutcomeAvailable), resp.DayStatus)
	assert.Equal(t, 30, resp.DurationMinutes)
}

func TestExecute_BookedSlotMovesToFull(t *testing.T) {
	apptRepo := &fakeApptRepo{
		appointments: []*domain.Appointment{
			{
				ID:              5,
				AgendaID:        10,
				ServiceName:     "Limpieza dental",
				Date:            testMonday,
				StartTime:       "08:00",
				DurationMinutes: 30,
				Status:          domain.StatusConfirmed,
				PatientName:     "Pedro López",
				SessionNumber:   1,
				TotalSessions:   1,
			},
		},
	}
	uc := newUseCase(apptRepo, nil)

	resp, err := uc.Execute(context.Background(), &Request{AgendaID: 10, ServiceID: 1, Date: testMonday})
	require.NoError(t, err)

	assert.NotContains(t, resp.Available, types.TimeString("08:00"))
	assert.Contains(t, resp.Full, types.TimeString("08:00"))
}

func TestExecute_FullDayBlockReportsDayClosed(t *testing.T) {
	uc := newUseCase(&fakeApptRepo{}, []domain.Exception{
		{
			AgendaID:  10,
			Kind:      domain.KindBlock,
			DateStart: testMonday,
			DateEnd:   testMonday,
			AllDay:    true,
		},
	})

	resp, err := uc.Execute(context.Background(), &Request{AgendaID: 10, ServiceID: 1, Date: testMonday})
	require.NoError(t, err)

	assert.Empty(t, resp.Available)
	assert.Equal(t, string(domain.OutcomeBlocked), resp.DayStatus)
	assert.Equal(t, string(domain.ReasonDayClosed), resp.DayReason)
}

func TestExecute_UnknownService(t *testing.T) {
	uc := newUseCase(&fakeApptRepo{}, nil)

	_, err := uc.Execute(context.Background(), &Request{AgendaID: 10, ServiceID: 42, Date: testMonday})
	require.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newUseCase(&fakeApptRepo{}, nil)

	_, err := uc.Execute(context.Background(), &Request{AgendaID: 0, ServiceID: 1, Date: testMonday})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{AgendaID: 10, ServiceID: 1})
	require.ErrorIs(t, err, ErrInvalidInput)
}
