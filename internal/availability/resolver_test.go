package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsalazarv/MCS-AgendaService/internal/domain"
	"github.com/dsalazarv/MCS-AgendaService/pkg/ptr"
	"github.com/dsalazarv/MCS-AgendaService/pkg/types"
)

func TestResolve_WeeklyHours(t *testing.T) {
	tests := []struct {
		name        string
		startTime   types.TimeString
		wantOutcome domain.Outcome
		wantReason  domain.VerdictReason
	}{
		{name: "start of window", startTime: "08:00", wantOutcome: domain.OutcomeAvailable},
		{name: "fits exactly before close", startTime: "11:30", wantOutcome: domain.OutcomeAvailable},
		{name: "start at window end", startTime: "12:00", wantOutcome: domain.OutcomeBlocked, wantReason: domain.ReasonAgendaClosed},
		{name: "partial overlap at close", startTime: "11:45", wantOutcome: domain.OutcomeBlocked, wantReason: domain.ReasonAgendaClosed},
		{name: "before opening", startTime: "07:30", wantOutcome: domain.OutcomeBlocked, wantReason: domain.ReasonAgendaClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict, err := Resolve(testService(), testMonday, tt.startTime, mondayMorning())
			require.NoError(t, err)
			assert.Equal(t, tt.wantOutcome, verdict.Outcome)
			assert.Equal(t, tt.wantReason, verdict.Reason)
		})
	}
}

func TestResolve_Deterministic(t *testing.T) {
	snap := mondayMorning()
	snap.Appointments = []domain.Appointment{
		appt(1, "Limpieza dental", testMonday, "08:00", 30, domain.StatusConfirmed),
	}

	first, err := Resolve(testService(), testMonday, "08:00", snap)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Resolve(testService(), testMonday, "08:00", snap)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestResolve_RestrictedMode(t *testing.T) {
	svc := testService()

	// Одна строка ServiceHourRange на вторник переводит услугу в
	// ограниченный режим на всю неделю
	snap := mondayMorning()
	snap.ServiceHours = []domain.ServiceHourRange{
		serviceHours(svc.ID, domain.Tuesday, "14:00", "18:00"),
	}

	verdict, err := Resolve(svc, testMonday, "08:30", snap)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeBlocked, verdict.Outcome)
	assert.Equal(t, domain.ReasonNoServiceHours, verdict.Reason)

	// На вторник услуга доступна в своём окне
	tuesday := testMonday.AddDate(0, 0, 1)
	verdict, err = Resolve(svc, tuesday, "14:00", snap)
	require.NoError(t, err)
	assert.True(t, verdict.IsAvailable())

	// Вне своего окна - закрыто, даже если общие часы были бы открыты
	verdict, err = Resolve(svc, tuesday, "13:00", snap)
	require.NoError(t, err)
	assert.Equal(t, domain.ReasonNoServiceHours, verdict.Reason)
}

func TestResolve_UnrestrictedServiceIgnoresOtherServiceRules(t *testing.T) {
	svc := testService()
	other := int64(99)

	snap := mondayMorning()
	snap.ServiceHours = []domain.ServiceHourRange{
		serviceHours(other, domain.Monday, "14:00", "18:00"),
	}

	// Чужие строки не переводят услугу в ограниченный режим
	verdict, err := Resolve(svc, testMonday, "08:00", snap)
	require.NoError(t, err)
	assert.True(t, verdict.IsAvailable())
}

func TestResolve_BlockExceptions(t *testing.T) {
	svc := testService()

	t.Run("timed block overlapping interval", func(t *testing.T) {
		snap := mondayMorning()
		snap.Exceptions = []domain.Exception{
			blockWindow(nil, testMonday, "09:00", "10:00"),
		}

		verdict, err := Resolve(svc, testMonday, "09:15", snap)
		require.NoError(t, err)
		assert.Equal(t, domain.ReasonException, verdict.Reason)

		// Интервал 08:45-09:15 задевает блок
		verdict, err = Resolve(svc, testMonday, "08:45", snap)
		require.NoError(t, err)
		assert.Equal(t, domain.ReasonException, verdict.Reason)

		// Граничащий интервал 08:30-09:00 блоком не считается
		verdict, err = Resolve(svc, testMonday, "08:30", snap)
		require.NoError(t, err)
		assert.True(t, verdict.IsAvailable())

		// Начало ровно в конце блока - свободно
		verdict, err = Resolve(svc, testMonday, "10:00", snap)
		require.NoError(t, err)
		assert.True(t, verdict.IsAvailable())
	})

	t.Run("global all-day block closes every service", func(t *testing.T) {
		snap := mondayMorning()
		snap.Exceptions = []domain.Exception{blockAllDay(nil, testMonday)}

		verdict, err := Resolve(svc, testMonday, "08:00", snap)
		require.NoError(t, err)
		assert.Equal(t, domain.ReasonException, verdict.Reason)

		otherSvc := &domain.Service{ID: 2, AgendaID: 10, Name: "Ortodoncia", DurationMinutes: 45, Concurrency: 2}
		verdict, err = Resolve(otherSvc, testMonday, "09:00", snap)
		require.NoError(t, err)
		assert.Equal(t, domain.ReasonException, verdict.Reason)
	})

	t.Run("service-scoped block leaves other services open", func(t *testing.T) {
		snap := mondayMorning()
		snap.Exceptions = []domain.Exception{blockAllDay(ptr.Ptr(int64(2)), testMonday)}

		verdict, err := Resolve(svc, testMonday, "08:00", snap)
		require.NoError(t, err)
		assert.True(t, verdict.IsAvailable())
	})

	t.Run("block outside date range does not apply", func(t *testing.T) {
		snap := mondayMorning()
		snap.Exceptions = []domain.Exception{blockAllDay(nil, testMonday.AddDate(0, 0, 7))}

		verdict, err := Resolve(svc, testMonday, "08:00", snap)
		require.NoError(t, err)
		assert.True(t, verdict.IsAvailable())
	})
}

func TestResolve_EnableDominates(t *testing.T) {
	svc := testService()

	t.Run("enable overrides all-day block", func(t *testing.T) {
		snap := mondayMorning()
		snap.Exceptions = []domain.Exception{
			blockAllDay(nil, testMonday),
			enableWindow(nil, testMonday, "09:00", "11:00"),
		}

		verdict, err := Resolve(svc, testMonday, "09:00", snap)
		require.NoError(t, err)
		assert.True(t, verdict.IsAvailable())

		// Вне окна habilitación блок действует
		verdict, err = Resolve(svc, testMonday, "08:00", snap)
		require.NoError(t, err)
		assert.Equal(t, domain.ReasonException, verdict.Reason)
	})

	t.Run("enable opens a day with no recurring hours", func(t *testing.T) {
		// Воскресенье вообще без расписания
		sunday := testMonday.AddDate(0, 0, 6)
		snap := &Snapshot{
			Exceptions: []domain.Exception{
				enableWindow(ptr.Ptr(svc.ID), sunday, "13:00", "14:00"),
			},
		}

		verdict, err := Resolve(svc, sunday, "13:00", snap)
		require.NoError(t, err)
		assert.True(t, verdict.IsAvailable())
	})

	t.Run("booking must fit entirely inside the enable window", func(t *testing.T) {
		sunday := testMonday.AddDate(0, 0, 6)
		snap := &Snapshot{
			Exceptions: []domain.Exception{
				enableWindow(ptr.Ptr(svc.ID), sunday, "13:00", "14:00"),
			},
		}

		// 13:30 + 30 минут упирается ровно в край окна
		verdict, err := Resolve(svc, sunday, "13:30", snap)
		require.NoError(t, err)
		assert.True(t, verdict.IsAvailable())

		// 13:45 + 30 минут вылезает за 14:00 в закрытое время
		verdict, err = Resolve(svc, sunday, "13:45", snap)
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeBlocked, verdict.Outcome)
		assert.Equal(t, domain.ReasonAgendaClosed, verdict.Reason)
	})

	t.Run("service-scoped enable does not open other services", func(t *testing.T) {
		sunday := testMonday.AddDate(0, 0, 6)
		snap := &Snapshot{
			Exceptions: []domain.Exception{
				enableWindow(ptr.Ptr(int64(99)), sunday, "13:00", "14:00"),
			},
		}

		verdict, err := Resolve(svc, sunday, "13:00", snap)
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeBlocked, verdict.Outcome)
		assert.Equal(t, domain.ReasonAgendaClosed, verdict.Reason)
	})

	t.Run("enable is still subject to capacity", func(t *testing.T) {
		snap := mondayMorning()
		snap.Exceptions = []domain.Exception{enableAllDay(nil, testMonday)}
		snap.Appointments = []domain.Appointment{
			appt(1, svc.Name, testMonday, "09:00", 30, domain.StatusConfirmed),
		}

		verdict, err := Resolve(svc, testMonday, "09:00", snap)
		require.NoError(t, err)
		assert.True(t, verdict.IsFull())
	})
}

func TestResolve_Capacity(t *testing.T) {
	svc := testService()

	t.Run("overlapping confirmed appointment exhausts concurrency 1", func(t *testing.T) {
		snap := mondayMorning()
		snap.Appointments = []domain.Appointment{
			appt(1, svc.Name, testMonday, "08:00", 30, domain.StatusConfirmed),
		}

		verdict, err := Resolve(svc, testMonday, "08:00", snap)
		require.NoError(t, err)
		assert.True(t, verdict.IsFull())
		assert.Equal(t, domain.ReasonCapacityReached, verdict.Reason)

		// Без пересечения - свободно
		verdict, err = Resolve(svc, testMonday, "08:35", snap)
		require.NoError(t, err)
		assert.True(t, verdict.IsAvailable())

		// Частичное пересечение 08:15-08:45 тоже занято
		verdict, err = Resolve(svc, testMonday, "08:15", snap)
		require.NoError(t, err)
		assert.True(t, verdict.IsFull())
	})

	t.Run("cancelled appointments never count", func(t *testing.T) {
		snap := mondayMorning()
		snap.Appointments = []domain.Appointment{
			appt(1, svc.Name, testMonday, "08:00", 30, domain.StatusCancelled),
			appt(2, svc.Name, testMonday, "08:00", 30, domain.StatusCancelled),
		}

		verdict, err := Resolve(svc, testMonday, "08:00", snap)
		require.NoError(t, err)
		assert.True(t, verdict.IsAvailable())
	})

	t.Run("concurrency N admits N overlapping bookings", func(t *testing.T) {
		parallel := testService()
		parallel.Concurrency = 2

		snap := mondayMorning()
		snap.Appointments = []domain.Appointment{
			appt(1, parallel.Name, testMonday, "08:00", 30, domain.StatusConfirmed),
		}

		verdict, err := Resolve(parallel, testMonday, "08:00", snap)
		require.NoError(t, err)
		assert.True(t, verdict.IsAvailable())

		snap.Appointments = append(snap.Appointments,
			appt(2, parallel.Name, testMonday, "08:15", 30, domain.StatusPending))

		// Минуты 08:15-08:30 заняты дважды
		verdict, err = Resolve(parallel, testMonday, "08:00", snap)
		require.NoError(t, err)
		assert.True(t, verdict.IsFull())
	})

	t.Run("other services do not consume capacity", func(t *testing.T) {
		snap := mondayMorning()
		snap.Appointments = []domain.Appointment{
			appt(1, "Ortodoncia", testMonday, "08:00", 30, domain.StatusConfirmed),
		}

		verdict, err := Resolve(svc, testMonday, "08:00", snap)
		require.NoError(t, err)
		assert.True(t, verdict.IsAvailable())
	})

	t.Run("appointments on other dates are ignored", func(t *testing.T) {
		snap := mondayMorning()
		snap.Appointments = []domain.Appointment{
			appt(1, svc.Name, testMonday.AddDate(0, 0, 7), "08:00", 30, domain.StatusConfirmed),
		}

		verdict, err := Resolve(svc, testMonday, "08:00", snap)
		require.NoError(t, err)
		assert.True(t, verdict.IsAvailable())
	})
}

func TestResolve_CallerErrors(t *testing.T) {
	snap := mondayMorning()

	t.Run("nil service", func(t *testing.T) {
		_, err := Resolve(nil, testMonday, "08:00", snap)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("non-positive duration", func(t *testing.T) {
		svc := testService()
		svc.DurationMinutes = 0
		_, err := Resolve(svc, testMonday, "08:00", snap)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("zero date", func(t *testing.T) {
		_, err := Resolve(testService(), time.Time{}, "08:00", snap)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("malformed time", func(t *testing.T) {
		_, err := Resolve(testService(), testMonday, "8am", snap)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestResolve_DataInconsistency(t *testing.T) {
	svc := testService()

	t.Run("timed exception without times", func(t *testing.T) {
		snap := mondayMorning()
		snap.Exceptions = []domain.Exception{{
			AgendaID:  10,
			Kind:      domain.KindBlock,
			DateStart: testMonday,
			DateEnd:   testMonday,
			AllDay:    false,
			// TimeStart/TimeEnd отсутствуют
		}}

		_, err := Resolve(svc, testMonday, "08:00", snap)
		assert.ErrorIs(t, err, ErrDataInconsistency)
	})

	t.Run("appointment with non-positive duration", func(t *testing.T) {
		snap := mondayMorning()
		snap.Appointments = []domain.Appointment{
			appt(7, svc.Name, testMonday, "08:00", 0, domain.StatusConfirmed),
		}

		_, err := Resolve(svc, testMonday, "08:00", snap)
		assert.ErrorIs(t, err, ErrDataInconsistency)
	})

	t.Run("hour range with start after end", func(t *testing.T) {
		snap := &Snapshot{
			WeeklyHours: []domain.WeeklyHourRange{
				weekly(domain.Monday, "12:00", "08:00"),
			},
		}

		_, err := Resolve(svc, testMonday, "08:00", snap)
		assert.ErrorIs(t, err, ErrDataInconsistency)
	})
}
