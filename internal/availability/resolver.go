package availability

import (
	"fmt"
	"time"

	"github.com/dsalazarv/MCS-AgendaService/internal/domain"
	"github.com/dsalazarv/MCS-AgendaService/pkg/types"
)

// Resolve решает, можно ли разместить запись услуги service на date в
// startTime. Приоритет проверок, первая сработавшая побеждает:
//
//  1. Habilitación: ENABLE-исключение, целиком вмещающее интервал записи,
//     открывает окно, игнорируя блокировки и расписание
//  2. Bloqueo: пересекающее BLOCK-исключение → Blocked(exception)
//  3. Расписание: в ограниченном режиме интервал должен целиком помещаться в
//     строку ServiceHourRange этого дня, иначе - в общие часы агенды
//  4. Cupos: поминутный подсчет одновременных записей против Concurrency
//
// Blocked и Full - обычные значения. Ошибка возвращается только при
// некорректном входе или противоречивых данных конфигурации.
func Resolve(service *domain.Service, date time.Time, startTime types.TimeString, snap *Snapshot) (domain.Verdict, error) {
	if err := validateResolveInput(service, date, startTime); err != nil {
		return domain.Verdict{}, err
	}

	startMin, err := startTime.Minutes()
	if err != nil {
		return domain.Verdict{}, fmt.Errorf("%w: start time: %v", ErrInvalidInput, err)
	}
	endMin := startMin + service.DurationMinutes

	// 1. ENABLE-исключения: окно открыто, только если интервал записи целиком
	// помещается в окно исключения
	enables, err := snap.exceptionsFor(domain.KindEnable, date, service.ID)
	if err != nil {
		return domain.Verdict{}, fmt.Errorf("%w: %v", ErrDataInconsistency, err)
	}
	enabled := false
	for i := range enables {
		contains, err := exceptionContainsInterval(&enables[i], startMin, endMin)
		if err != nil {
			return domain.Verdict{}, err
		}
		if contains {
			enabled = true
			break
		}
	}

	if !enabled {
		// 2. BLOCK-исключения: любое пересечение с интервалом закрывает его
		blocks, err := snap.exceptionsFor(domain.KindBlock, date, service.ID)
		if err != nil {
			return domain.Verdict{}, fmt.Errorf("%w: %v", ErrDataInconsistency, err)
		}
		for i := range blocks {
			overlaps, err := exceptionOverlapsInterval(&blocks[i], startMin, endMin)
			if err != nil {
				return domain.Verdict{}, err
			}
			if overlaps {
				return domain.Blocked(domain.ReasonException), nil
			}
		}

		// 3. Повторяющееся расписание: интервал должен целиком помещаться
		// в одно окно
		day := domain.DayOfWeekFromDate(date)
		if snap.isRestricted(service.ID) {
			fits, err := intervalFitsServiceHours(snap.serviceHoursFor(service.ID, day), startMin, endMin)
			if err != nil {
				return domain.Verdict{}, err
			}
			if !fits {
				return domain.Blocked(domain.ReasonNoServiceHours), nil
			}
		} else {
			fits, err := intervalFitsWeeklyHours(snap.weeklyHoursFor(day), startMin, endMin)
			if err != nil {
				return domain.Verdict{}, err
			}
			if !fits {
				return domain.Blocked(domain.ReasonAgendaClosed), nil
			}
		}
	}

	// 4. Поминутная проверка cupos
	full, err := capacityExhausted(snap.appointmentsOn(date, service.Name), startMin, endMin, service.Concurrency)
	if err != nil {
		return domain.Verdict{}, err
	}
	if full {
		return domain.Full(), nil
	}

	return domain.Available(), nil
}

// validateResolveInput отклоняет ошибки вызывающей стороны до логики
// приоритетов: они никогда не должны превращаться в вердикт
func validateResolveInput(service *domain.Service, date time.Time, startTime types.TimeString) error {
	if service == nil {
		return fmt.Errorf("%w: service is required", ErrInvalidInput)
	}
	if err := service.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := startTime.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// exceptionContainsInterval проверяет полное вложение интервала записи в окно
// исключения: запись не может вылезать за край окна в закрытое время
func exceptionContainsInterval(e *domain.Exception, startMin, endMin int) (bool, error) {
	winStart, winEnd, err := e.Window()
	if err != nil {
		return false, fmt.Errorf("%w: exception id=%d: %v", ErrDataInconsistency, e.ID, err)
	}
	return startMin >= winStart && endMin <= winEnd, nil
}

// exceptionOverlapsInterval проверяет реальное пересечение окон; граничащие
// интервалы пересечением не считаются
func exceptionOverlapsInterval(e *domain.Exception, startMin, endMin int) (bool, error) {
	winStart, winEnd, err := e.Window()
	if err != nil {
		return false, fmt.Errorf("%w: exception id=%d: %v", ErrDataInconsistency, e.ID, err)
	}
	return startMin < winEnd && endMin > winStart, nil
}

// intervalFitsServiceHours проверяет полное вложение интервала в одну из
// строк расписания услуги
func intervalFitsServiceHours(rows []domain.ServiceHourRange, startMin, endMin int) (bool, error) {
	for i := range rows {
		if err := rows[i].Validate(); err != nil {
			return false, fmt.Errorf("%w: service hour range id=%d: %v", ErrDataInconsistency, rows[i].ID, err)
		}
		rangeStart, _ := rows[i].StartTime.Minutes()
		rangeEnd, _ := rows[i].EndTime.Minutes()
		if startMin >= rangeStart && endMin <= rangeEnd {
			return true, nil
		}
	}
	return false, nil
}

// intervalFitsWeeklyHours проверяет полное вложение интервала в одно из
// общих окон работы агенды
func intervalFitsWeeklyHours(rows []domain.WeeklyHourRange, startMin, endMin int) (bool, error) {
	for i := range rows {
		if err := rows[i].Validate(); err != nil {
			return false, fmt.Errorf("%w: weekly hour range id=%d: %v", ErrDataInconsistency, rows[i].ID, err)
		}
		rangeStart, _ := rows[i].StartTime.Minutes()
		rangeEnd, _ := rows[i].EndTime.Minutes()
		if startMin >= rangeStart && endMin <= rangeEnd {
			return true, nil
		}
	}
	return false, nil
}

// capacityExhausted проверяет, достигнут ли лимит одновременных записей хотя
// бы в одну минуту интервала [startMin, endMin)
func capacityExhausted(appointments []domain.Appointment, startMin, endMin, concurrency int) (bool, error) {
	if len(appointments) == 0 {
		return false, nil
	}

	type occupied struct {
		start int
		end   int
	}
	intervals := make([]occupied, 0, len(appointments))
	for i := range appointments {
		a := &appointments[i]
		if a.DurationMinutes <= 0 {
			return false, fmt.Errorf("%w: appointment id=%d has non-positive duration", ErrDataInconsistency, a.ID)
		}
		aStart, err := a.StartTime.Minutes()
		if err != nil {
			return false, fmt.Errorf("%w: appointment id=%d: %v", ErrDataInconsistency, a.ID, err)
		}
		intervals = append(intervals, occupied{start: aStart, end: aStart + a.DurationMinutes})
	}

	for t := startMin; t < endMin; t++ {
		count := 0
		for _, iv := range intervals {
			if t >= iv.start && t < iv.end {
				count++
			}
		}
		if count >= concurrency {
			return true, nil
		}
	}
	return false, nil
}
