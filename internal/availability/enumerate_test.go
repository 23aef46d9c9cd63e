package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsalazarv/MCS-AgendaService/internal/domain"
	"github.com/dsalazarv/MCS-AgendaService/pkg/ptr"
	"github.com/dsalazarv/MCS-AgendaService/pkg/types"
)

func TestEnumerate_MondayMorning(t *testing.T) {
	// Понедельник 08:00-12:00, услуга 30 минут, шаг 30+5
	result, err := Enumerate(testService(), testMonday, mondayMorning())
	require.NoError(t, err)

	want := []types.TimeString{"08:00", "08:35", "09:10", "09:45", "10:20", "10:55", "11:30"}
	assert.Equal(t, want, result.Available)
	assert.Empty(t, result.Full)
	assert.True(t, result.Verdict.IsAvailable())
}

func TestEnumerate_NoOverflowSlots(t *testing.T) {
	// Ни один слот не выходит за конец окна
	svc := testService()
	result, err := Enumerate(svc, testMonday, mondayMorning())
	require.NoError(t, err)

	closeMin, _ := types.TimeString("12:00").Minutes()
	for _, slot := range result.Available {
		start, err := slot.Minutes()
		require.NoError(t, err)
		assert.LessOrEqual(t, start+svc.DurationMinutes, closeMin, "slot %s overflows the window", slot)
	}
}

func TestEnumerate_RoundTripWithResolve(t *testing.T) {
	svc := testService()
	snap := mondayMorning()
	snap.Exceptions = []domain.Exception{
		blockWindow(nil, testMonday, "09:00", "10:00"),
	}
	snap.Appointments = []domain.Appointment{
		appt(1, svc.Name, testMonday, "10:20", 30, domain.StatusConfirmed),
	}

	result, err := Enumerate(svc, testMonday, snap)
	require.NoError(t, err)
	require.NotEmpty(t, result.Available)

	// Каждый слот из Available на том же снапшоте разрешается в Available
	for _, slot := range result.Available {
		verdict, err := Resolve(svc, testMonday, slot, snap)
		require.NoError(t, err)
		assert.True(t, verdict.IsAvailable(), "slot %s did not round-trip", slot)
	}
}

func TestEnumerate_FullBucket(t *testing.T) {
	svc := testService()
	snap := mondayMorning()
	snap.Appointments = []domain.Appointment{
		appt(1, svc.Name, testMonday, "08:00", 30, domain.StatusConfirmed),
	}

	result, err := Enumerate(svc, testMonday, snap)
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"08:35", "09:10", "09:45", "10:20", "10:55", "11:30"}, result.Available)
	assert.Equal(t, []types.TimeString{"08:00"}, result.Full)
}

func TestEnumerate_BookedTimeOutsideRangesShowsAsFull(t *testing.T) {
	// Запись на 15:00 вне окон всё равно видна как занятая
	svc := testService()
	snap := mondayMorning()
	snap.Appointments = []domain.Appointment{
		appt(1, svc.Name, testMonday, "15:00", 30, domain.StatusConfirmed),
	}

	result, err := Enumerate(svc, testMonday, snap)
	require.NoError(t, err)
	assert.Contains(t, result.Full, types.TimeString("15:00"))
}

func TestEnumerate_CancelledAppointmentsInvisible(t *testing.T) {
	svc := testService()
	snap := mondayMorning()
	snap.Appointments = []domain.Appointment{
		appt(1, svc.Name, testMonday, "08:00", 30, domain.StatusCancelled),
	}

	result, err := Enumerate(svc, testMonday, snap)
	require.NoError(t, err)
	assert.Contains(t, result.Available, types.TimeString("08:00"))
	assert.Empty(t, result.Full)
}

func TestEnumerate_DayClosedByFullDayBlock(t *testing.T) {
	svc := testService()
	snap := mondayMorning()
	snap.Exceptions = []domain.Exception{blockAllDay(nil, testMonday)}

	result, err := Enumerate(svc, testMonday, snap)
	require.NoError(t, err)

	assert.Empty(t, result.Available)
	assert.Empty(t, result.Full)
	assert.Equal(t, domain.OutcomeBlocked, result.Verdict.Outcome)
	assert.Equal(t, domain.ReasonDayClosed, result.Verdict.Reason)
}

func TestEnumerate_EnableOverridesFullDayBlock(t *testing.T) {
	svc := testService()
	snap := mondayMorning()
	snap.Exceptions = []domain.Exception{
		blockAllDay(nil, testMonday),
		enableWindow(nil, testMonday, "09:00", "10:00"),
	}

	result, err := Enumerate(svc, testMonday, snap)
	require.NoError(t, err)

	assert.True(t, result.Verdict.IsAvailable())
	assert.Contains(t, result.Available, types.TimeString("09:00"))
	// Слоты из общих часов вне habilitación остаются заблокированными
	assert.NotContains(t, result.Available, types.TimeString("08:00"))
}

func TestEnumerate_EnableOnClosedDay(t *testing.T) {
	// Воскресенье без расписания, habilitación 13:00-14:00
	svc := testService()
	sunday := testMonday.AddDate(0, 0, 6)
	snap := &Snapshot{
		Exceptions: []domain.Exception{
			enableWindow(ptr.Ptr(svc.ID), sunday, "13:00", "14:00"),
		},
	}

	result, err := Enumerate(svc, sunday, snap)
	require.NoError(t, err)

	// 13:00-13:30 помещается; следующий кандидат 13:35 уже не влезает
	assert.Equal(t, []types.TimeString{"13:00"}, result.Available)
	assert.Empty(t, result.Full)
}

func TestEnumerate_AllDayEnableUsesDefaultWindow(t *testing.T) {
	svc := testService()
	sunday := testMonday.AddDate(0, 0, 6)
	snap := &Snapshot{
		Exceptions: []domain.Exception{enableAllDay(nil, sunday)},
	}

	result, err := Enumerate(svc, sunday, snap)
	require.NoError(t, err)
	require.NotEmpty(t, result.Available)

	// Стандартное широкое окно 06:00-21:00 ограничивает перебор
	assert.Equal(t, types.TimeString("06:00"), result.Available[0])
	last := result.Available[len(result.Available)-1]
	lastMin, _ := last.Minutes()
	endMin, _ := types.TimeString(domain.DefaultEnableWindowEnd).Minutes()
	assert.LessOrEqual(t, lastMin+svc.DurationMinutes, endMin)
}

func TestEnumerate_NoHoursConfigured(t *testing.T) {
	svc := testService()
	result, err := Enumerate(svc, testMonday, &Snapshot{})
	require.NoError(t, err)

	assert.Empty(t, result.Available)
	assert.Empty(t, result.Full)
	assert.Equal(t, domain.ReasonNoHoursConfigured, result.Verdict.Reason)
}

func TestEnumerate_RestrictedModeUsesServiceHoursOnly(t *testing.T) {
	svc := testService()
	snap := mondayMorning()
	snap.ServiceHours = []domain.ServiceHourRange{
		serviceHours(svc.ID, domain.Monday, "10:00", "11:10"),
	}

	result, err := Enumerate(svc, testMonday, snap)
	require.NoError(t, err)

	// Общие часы 08:00-12:00 игнорируются: перебор идет только по окну услуги
	assert.Equal(t, []types.TimeString{"10:00", "10:35"}, result.Available)
}

func TestEnumerate_DeduplicatesOverlappingRanges(t *testing.T) {
	svc := testService()
	snap := &Snapshot{
		WeeklyHours: []domain.WeeklyHourRange{
			weekly(domain.Monday, "08:00", "12:00"),
			weekly(domain.Monday, "08:00", "10:00"),
		},
	}

	result, err := Enumerate(svc, testMonday, snap)
	require.NoError(t, err)

	seen := make(map[types.TimeString]int)
	for _, slot := range result.Available {
		seen[slot]++
		assert.Equal(t, 1, seen[slot], "slot %s duplicated", slot)
	}
}

func TestEnumerate_FullExcludesSlotsAvailableElsewhere(t *testing.T) {
	// Слот, занятый по одному окну, но свободный по другому, показывается
	// только в Available
	svc := testService()
	snap := mondayMorning()
	snap.Appointments = []domain.Appointment{
		appt(1, svc.Name, testMonday, "08:00", 30, domain.StatusConfirmed),
	}
	snap.Exceptions = []domain.Exception{
		enableWindow(nil, testMonday, "08:00", "12:00"),
	}

	result, err := Enumerate(svc, testMonday, snap)
	require.NoError(t, err)

	for _, slot := range result.Full {
		assert.NotContains(t, result.Available, slot)
	}
}

func TestEnumerate_SplitShifts(t *testing.T) {
	svc := testService()
	snap := &Snapshot{
		WeeklyHours: []domain.WeeklyHourRange{
			weekly(domain.Monday, "08:00", "09:10"),
			weekly(domain.Monday, "14:00", "15:10"),
		},
	}

	result, err := Enumerate(svc, testMonday, snap)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"08:00", "08:35", "14:00", "14:35"}, result.Available)
}

func TestEnumerate_CallerErrors(t *testing.T) {
	_, err := Enumerate(nil, testMonday, mondayMorning())
	assert.ErrorIs(t, err, ErrInvalidInput)

	svc := testService()
	svc.Concurrency = 0
	_, err = Enumerate(svc, testMonday, mondayMorning())
	assert.ErrorIs(t, err, ErrInvalidInput)
}
