package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsalazarv/MCS-AgendaService/internal/domain"
	catalogRepo "github.com/dsalazarv/MCS-AgendaService/internal/infra/storage/servicecatalog"
	"github.com/dsalazarv/MCS-AgendaService/internal/integrations/notifier"
	"github.com/dsalazarv/MCS-AgendaService/pkg/types"
)

// Понедельник 6 октября 2025 - базовая дата тестов
var testMonday = time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC)

// Фейки зависимостей

type fakeApptRepo struct {
	appointments []*domain.Appointment
	nextID       int64
	createErr    error
}

func (r *fakeApptRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	created := *appt
	created.ID = r.nextID
	created.CreatedAt = testMonday
	created.UpdatedAt = testMonday
	r.appointments = append(r.appointments, &created)
	return &created, nil
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
		return nil, catalogRepo.ErrServiceNotFound
	}
	return svc, nil
}

type fakeNotifier struct {
	events  []notifier.AppointmentEvent
	sendErr error
}

func (n *fakeNotifier) NotifyWithGracefulDegradation(_ context.Context, event notifier.AppointmentEvent) error {
	n.events = append(n.events, event)
	return n.sendErr
}

type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// Сборка usecase с дефолтными фейками

type fixture struct {
	uc        *UseCase
	apptRepo  *fakeApptRepo
	notifier  *fakeNotifier
	txManager *fakeTxManager
}

func newFixture() *fixture {
	apptRepo := &fakeApptRepo{}
	scheduleRepo := &fakeScheduleRepo{
		weekly: []domain.WeeklyHourRange{
			{AgendaID: 10, DayOfWeek: domain.Monday, StartTime: "08:00", EndTime: "12:00"},
		},
	}
	exceptionRepo := &fakeExceptionRepo{}
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
	notifierClient := &fakeNotifier{}
	txManager := &fakeTxManager{}

	uc := NewUseCase(apptRepo, scheduleRepo, exceptionRepo, catalog, notifierClient, txManager, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testMonday}

	return &fixture{
		uc:        uc,
		apptRepo:  apptRepo,
		notifier:  notifierClient,
		txManager: txManager,
	}
}

func validRequest() *Request {
	return &Request{
		AgendaID:    10,
		ServiceID:   1,
		Date:        testMonday,
		StartTime:   types.TimeString("09:00"),
		PatientName: "María García",
	}
}

func TestExecute_CreatesConfirmedAppointment(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Limpieza dental", resp.ServiceName)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, 1, resp.SessionNumber)
	assert.Equal(t, 1, resp.TotalSessions)
	assert.Equal(t, 1, f.txManager.calls)
}

func TestExecute_SendsCreatedNotification(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, f.notifier.events, 1)
	event := f.notifier.events[0]
	assert.Equal(t, notifier.EventAppointmentCreated, event.Event)
	assert.Equal(t, resp.ID, event.AppointmentID)
	assert.Equal(t, "09:00", event.StartTime)
	assert.Equal(t, "María García", event.PatientName)
}

func TestExecute_NotifierFailureDoesNotFailCreation(t *testing.T) {
	f := newFixture()
	f.notifier.sendErr = notifier.ErrServiceDegraded

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Len(t, f.apptRepo.appointments, 1)
}

func TestExecute_SlotOutsideHoursIsBlocked(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.StartTime = types.TimeString("13:00")

	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrSlotBlocked)
	assert.Empty(t, f.apptRepo.appointments)
	assert.Empty(t, f.notifier.events)
}

func TestExecute_SlotAtCapacityIsFull(t *testing.T) {
	f := newFixture()
	f.apptRepo.appointments = []*domain.Appointment{
		{
			ID:              99,
			AgendaID:        10,
			ServiceName:     "Limpieza dental",
			Date:            testMonday,
			StartTime:       "09:00",
			DurationMinutes: 30,
			Status:          domain.StatusConfirmed,
			PatientName:     "Pedro López",
			SessionNumber:   1,
			TotalSessions:   1,
		},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrSlotFull)
	assert.Len(t, f.apptRepo.appointments, 1)
}

func TestExecute_PastDateRejected(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.Date = testMonday.AddDate(0, 0, -7)

	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_UnknownServiceRejected(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.ServiceID = 42

	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_SessionNumberCarriedThrough(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.SessionNumber = 3

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.SessionNumber)
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{name: "zero agenda", mutate: func(req *Request) { req.AgendaID = 0 }},
		{name: "zero service", mutate: func(req *Request) { req.ServiceID = 0 }},
		{name: "zero date", mutate: func(req *Request) { req.Date = time.Time{} }},
		{name: "empty start time", mutate: func(req *Request) { req.StartTime = "" }},
		{name: "malformed start time", mutate: func(req *Request) { req.StartTime = "9am" }},
		{name: "empty patient name", mutate: func(req *Request) { req.PatientName = "   " }},
		{name: "negative session number", mutate: func(req *Request) { req.SessionNumber = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := validRequest()
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
