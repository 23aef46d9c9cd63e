package availability

import (
	"fmt"
	"sort"

	"github.com/dsalazarv/MCS-AgendaService/internal/domain"
)

// SessionPlan параметры следующей сессии пакета лечения: услуга и длительность
// берутся из предыдущей записи, номер сессии наращивается, общее количество
// переносится без изменений
type SessionPlan struct {
	ServiceName   string
	SessionNumber int
	TotalSessions int
}

// PlanNextSession строит план следующей сессии по предыдущей записи пакета.
// Движок не хранит состояния: это тонкая надстройка над Enumerate,
// фиксирующая услугу от предыдущей сессии.
func PlanNextSession(prev *domain.Appointment) (SessionPlan, error) {
	if prev == nil {
		return SessionPlan{}, fmt.Errorf("%w: previous appointment is required", ErrInvalidInput)
	}
	if prev.ServiceName == "" {
		return SessionPlan{}, fmt.Errorf("%w: previous appointment has no service", ErrDataInconsistency)
	}
	if prev.SessionNumber < 1 {
		return SessionPlan{}, fmt.Errorf("%w: appointment id=%d has session number %d", ErrDataInconsistency, prev.ID, prev.SessionNumber)
	}

	totalSessions := prev.TotalSessions
	if totalSessions < 1 {
		totalSessions = domain.DefaultTotalSessions
	}

	return SessionPlan{
		ServiceName:   prev.ServiceName,
		SessionNumber: prev.SessionNumber + 1,
		TotalSessions: totalSessions,
	}, nil
}

// PackageHistory возвращает все сессии пакета лечения, к которому относится
// ref: записи того же пациента (по документу, при его отсутствии - по имени)
// и той же услуги, отсортированные по номеру сессии и дате. Read-only выборка
// для отображения прогресса пакета.
func PackageHistory(appointments []domain.Appointment, ref *domain.Appointment) []domain.Appointment {
	if ref == nil {
		return nil
	}

	history := make([]domain.Appointment, 0)
	for i := range appointments {
		a := appointments[i]
		if a.SameService(ref.ServiceName) && a.SamePatient(ref) {
			history = append(history, a)
		}
	}

	sort.Slice(history, func(i, j int) bool {
		if history[i].SessionNumber != history[j].SessionNumber {
			return history[i].SessionNumber < history[j].SessionNumber
		}
		return history[i].Date.Before(history[j].Date)
	})

	return history
}
