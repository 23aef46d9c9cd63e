package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsalazarv/MCS-AgendaService/internal/domain"
	"github.com/dsalazarv/MCS-AgendaService/pkg/ptr"
)

func TestPlanNextSession(t *testing.T) {
	prev := appt(1, "Fisioterapia", testMonday, "09:00", 45, domain.StatusConfirmed)
	prev.SessionNumber = 3
	prev.TotalSessions = 10

	plan, err := PlanNextSession(&prev)
	require.NoError(t, err)

	assert.Equal(t, "Fisioterapia", plan.ServiceName)
	assert.Equal(t, 4, plan.SessionNumber)
	assert.Equal(t, 10, plan.TotalSessions)
}

func TestPlanNextSession_DefaultsTotalSessions(t *testing.T) {
	prev := appt(1, "Fisioterapia", testMonday, "09:00", 45, domain.StatusConfirmed)
	prev.TotalSessions = 0

	plan, err := PlanNextSession(&prev)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTotalSessions, plan.TotalSessions)
}

func TestPlanNextSession_Errors(t *testing.T) {
	t.Run("nil previous appointment", func(t *testing.T) {
		_, err := PlanNextSession(nil)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("missing service", func(t *testing.T) {
		prev := appt(1, "", testMonday, "09:00", 45, domain.StatusConfirmed)
		_, err := PlanNextSession(&prev)
		assert.ErrorIs(t, err, ErrDataInconsistency)
	})

	t.Run("invalid session number", func(t *testing.T) {
		prev := appt(1, "Fisioterapia", testMonday, "09:00", 45, domain.StatusConfirmed)
		prev.SessionNumber = 0
		_, err := PlanNextSession(&prev)
		assert.ErrorIs(t, err, ErrDataInconsistency)
	})
}

func TestPackageHistory_MatchesByDocument(t *testing.T) {
	doc := ptr.Ptr("CC-1020304050")
	otherDoc := ptr.Ptr("CC-9988776655")

	ref := appt(1, "Fisioterapia", testMonday, "09:00", 45, domain.StatusConfirmed)
	ref.Document = doc
	ref.SessionNumber = 2

	session1 := appt(2, "Fisioterapia", testMonday.AddDate(0, 0, -7), "09:00", 45, domain.StatusConfirmed)
	session1.Document = doc
	session1.SessionNumber = 1

	otherPatient := appt(3, "Fisioterapia", testMonday, "10:00", 45, domain.StatusConfirmed)
	otherPatient.Document = otherDoc

	otherService := appt(4, "Limpieza dental", testMonday, "11:00", 30, domain.StatusConfirmed)
	otherService.Document = doc

	history := PackageHistory([]domain.Appointment{ref, session1, otherPatient, otherService}, &ref)

	require.Len(t, history, 2)
	assert.Equal(t, int64(2), history[0].ID) // sesión 1 первой
	assert.Equal(t, int64(1), history[1].ID)
}

func TestPackageHistory_FallsBackToName(t *testing.T) {
	ref := appt(1, "Fisioterapia", testMonday, "09:00", 45, domain.StatusConfirmed)
	ref.PatientName = "María Gómez"
	ref.Document = nil

	match := appt(2, "Fisioterapia", testMonday.AddDate(0, 0, -7), "09:00", 45, domain.StatusConfirmed)
	match.PatientName = "María Gómez"
	match.Document = nil

	noMatch := appt(3, "Fisioterapia", testMonday, "10:00", 45, domain.StatusConfirmed)
	noMatch.PatientName = "Otro Paciente"
	noMatch.Document = nil

	history := PackageHistory([]domain.Appointment{ref, match, noMatch}, &ref)
	assert.Len(t, history, 2)
}

func TestPackageHistory_NilReference(t *testing.T) {
	assert.Nil(t, PackageHistory(nil, nil))
}
