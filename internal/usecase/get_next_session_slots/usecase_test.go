package get_next_session_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsalazarv/MCS-AgendaService/internal/domain"
	apptStorage "github.com/dsalazarv/MCS-AgendaService/internal/infra/storage/appointment"
	catalogStorage "github.com/dsalazarv/MCS-AgendaService/internal/infra/storage/servicecatalog"
	"github.com/dsalazarv/MCS-AgendaService/pkg/types"
)

// Понедельник 6 октября 2025 - базовая дата тестов
var testMonday = time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC)

type fakeApptRepo struct {
	byID map[int64]*domain.Appointment
	all  []*domain.Appointment
}

func (r *fakeApptRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := r.byID[id]
	if !ok {
		return nil, apptStorage.ErrAppointmentNotFound
	}
	return appt, nil
}

func (r *fakeApptRepo) GetByAgendaWithFilter(_ context.Context, _ domain.AgendaAppointmentsFilter) ([]*domain.Appointment, error) {
	return r.all, nil
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
	byName map[string]*domain.Service
}

func (r *fakeCatalogRepo) GetByName(_ context.Context, _ int64, name string) (*domain.Service, error) {
	svc, ok := r.byName[name]
	if !ok {
		return nil, catalogStorage.ErrServiceNotFound
	}
	return svc, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func previousSession() *domain.Appointment {
	return &domain.Appointment{
		ID:              7,
		AgendaID:        10,
		ServiceName:     "Fisioterapia",
		Date:            testMonday.AddDate(0, 0, -7),
		StartTime:       "09:00",
		DurationMinutes: 40,
		Status:          domain.StatusConfirmed,
		PatientName:     "María García",
		SessionNumber:   2,
		TotalSessions:   5,
	}
}

func newUseCase(prev *domain.Appointment) *UseCase {
	apptRepo := &fakeApptRepo{byID: map[int64]*domain.Appointment{}}
	if prev != nil {
		apptRepo.byID[prev.ID] = prev
	}
	scheduleRepo := &fakeScheduleRepo{
		weekly: []domain.WeeklyHourRange{
			{AgendaID: 10, DayOfWeek: domain.Monday, StartTime: "09:00", EndTime: "11:00"},
		},
	}
	catalog := &fakeCatalogRepo{
		byName: map[string]*domain.Service{
			"Fisioterapia": {
				ID:              3,
				AgendaID:        10,
				Name:            "Fisioterapia",
				DurationMinutes: 40,
				Concurrency:     1,
				TotalSessions:   5,
			},
		},
	}
	return NewUseCase(apptRepo, scheduleRepo, &fakeExceptionRepo{}, catalog, noopLogger{})
}

func TestExecute_PlansNextSessionWithSameService(t *testing.T) {
	uc := newUseCase(previousSession())

	resp, err := uc.Execute(context.Background(), &Request{AppointmentID: 7, Date: testMonday})
	require.NoError(t, err)

	assert.Equal(t, "Fisioterapia", resp.ServiceName)
	assert.Equal(t, int64(3), resp.ServiceID)
	assert.Equal(t, 3, resp.SessionNumber)
	assert.Equal(t, 5, resp.TotalSessions)
	assert.Equal(t, 40, resp.DurationMinutes)

	// Шаг сетки 40 + 5 минут внутри окна 09:00-11:00: слот 10:30
	// не помещается (10:30 + 40 > 11:00)
	expected := []types.TimeString{"09:00", "09:45"}
	assert.Equal(t, expected, resp.Available)
}

func TestExecute_PackageComplete(t *testing.T) {
	prev := previousSession()
	prev.SessionNumber = 5

	uc := newUseCase(prev)

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 7, Date: testMonday})
	require.ErrorIs(t, err, ErrPackageComplete)
}

func TestExecute_AppointmentNotFound(t *testing.T) {
	uc := newUseCase(nil)

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 7, Date: testMonday})
	require.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_ServiceRemovedFromCatalog(t *testing.T) {
	prev := previousSession()
	prev.ServiceName = "Servicio eliminado"

	uc := newUseCase(prev)

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 7, Date: testMonday})
	require.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_DefaultsTotalSessionsWhenMissing(t *testing.T) {
	prev := previousSession()
	prev.SessionNumber = 1
	prev.TotalSessions = 0

	uc := newUseCase(prev)

	// TotalSessions по умолчанию равен 1, следующий сеанс выходит за пакет
	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 7, Date: testMonday})
	require.ErrorIs(t, err, ErrPackageComplete)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newUseCase(previousSession())

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 0, Date: testMonday})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{AppointmentID: 7})
	require.ErrorIs(t, err, ErrInvalidInput)
}
