package availability

import (
	"time"

	"github.com/dsalazarv/MCS-AgendaService/internal/domain"
)

// Snapshot срез трёх read-only источников правды, на котором принимается
// решение о доступности. Движок не выполняет I/O: вызывающая сторона
// загружает строки, относящиеся к агенде и дате, и передает их сюда.
// Повторный вызов с тем же снапшотом всегда дает тот же результат.
type Snapshot struct {
	WeeklyHours  []domain.WeeklyHourRange
	ServiceHours []domain.ServiceHourRange
	Exceptions   []domain.Exception
	Appointments []domain.Appointment
}

// isRestricted проверяет, находится ли услуга в "ограниченном режиме":
// наличие ХОТЯ БЫ ОДНОЙ строки ServiceHourRange для услуги (на любой день)
// означает, что её расписание определяется только этими строками
func (s *Snapshot) isRestricted(serviceID int64) bool {
	for i := range s.ServiceHours {
		if s.ServiceHours[i].ServiceID == serviceID {
			return true
		}
	}
	return false
}

// serviceHoursFor возвращает строки расписания услуги на день недели
func (s *Snapshot) serviceHoursFor(serviceID int64, day domain.DayOfWeek) []domain.ServiceHourRange {
	var rows []domain.ServiceHourRange
	for i := range s.ServiceHours {
		if s.ServiceHours[i].ServiceID == serviceID && s.ServiceHours[i].DayOfWeek == day {
			rows = append(rows, s.ServiceHours[i])
		}
	}
	return rows
}

// weeklyHoursFor возвращает общие часы работы агенды на день недели
func (s *Snapshot) weeklyHoursFor(day domain.DayOfWeek) []domain.WeeklyHourRange {
	var rows []domain.WeeklyHourRange
	for i := range s.WeeklyHours {
		if s.WeeklyHours[i].DayOfWeek == day {
			rows = append(rows, s.WeeklyHours[i])
		}
	}
	return rows
}

// exceptionsFor возвращает исключения заданного вида, покрывающие дату и
// относящиеся к услуге (глобальные или адресованные ей)
func (s *Snapshot) exceptionsFor(kind domain.ExceptionKind, date time.Time, serviceID int64) ([]domain.Exception, error) {
	var rows []domain.Exception
	for i := range s.Exceptions {
		e := s.Exceptions[i]
		if e.Kind != kind || !e.AppliesToService(serviceID) {
			continue
		}
		if err := e.Validate(); err != nil {
			return nil, err
		}
		if e.CoversDate(date) {
			rows = append(rows, e)
		}
	}
	return rows, nil
}

// appointmentsOn возвращает активные записи услуги на дату
func (s *Snapshot) appointmentsOn(date time.Time, serviceName string) []domain.Appointment {
	var rows []domain.Appointment
	for i := range s.Appointments {
		a := s.Appointments[i]
		if a.CountsTowardCapacity() && a.SameService(serviceName) && sameDate(a.Date, date) {
			rows = append(rows, a)
		}
	}
	return rows
}

// sameDate сравнивает только календарные даты
func sameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
