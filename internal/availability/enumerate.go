package availability

import (
	"fmt"
	"sort"
	"time"

	"github.com/dsalazarv/MCS-AgendaService/internal/domain"
	"github.com/dsalazarv/MCS-AgendaService/pkg/types"
)

// DaySlots результат перечисления слотов на день: два списка для UI -
// свободные слоты и слоты, существующие, но заполненные под завязку.
// Разделение намеренное: оператор видит спрос, даже когда cupos не осталось.
type DaySlots struct {
	Available []types.TimeString
	Full      []types.TimeString
	Verdict   domain.Verdict
}

// timeRange окно поиска в минутах с начала суток
type timeRange struct {
	start int
	end   int
}

// Enumerate перечисляет слоты услуги service на дату date.
// Алгоритм:
//  1. Окна поиска = строки расписания дня (услуги в ограниченном режиме,
//     иначе общие часы агенды) плюс окна всех покрывающих ENABLE-исключений
//     (all_day дает стандартное широкое окно)
//  2. Полнодневный BLOCK без покрывающего ENABLE закрывает весь день
//  3. Пустой набор окон - день не сконфигурирован
//  4. По каждому окну шаг = длительность + фиксированный буфер; каждый
//     кандидат классифицируется через Resolve
//  5. Времена существующих записей услуги добавляются в Full, даже если
//     лежат вне окон (защита от рассинхронизации с уже созданными записями)
func Enumerate(service *domain.Service, date time.Time, snap *Snapshot) (*DaySlots, error) {
	if err := validateEnumerateInput(service, date); err != nil {
		return nil, err
	}

	enables, err := snap.exceptionsFor(domain.KindEnable, date, service.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataInconsistency, err)
	}

	enableRanges, err := enableWindows(enables)
	if err != nil {
		return nil, err
	}

	// Полнодневная блокировка закрывает день, только если нет ни одного
	// покрывающего ENABLE
	if len(enableRanges) == 0 {
		blocks, err := snap.exceptionsFor(domain.KindBlock, date, service.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDataInconsistency, err)
		}
		for i := range blocks {
			if blocks[i].AllDay {
				return &DaySlots{
					Available: []types.TimeString{},
					Full:      []types.TimeString{},
					Verdict:   domain.Blocked(domain.ReasonDayClosed),
				}, nil
			}
		}
	}

	scheduleRanges, err := scheduleWindows(service, date, snap)
	if err != nil {
		return nil, err
	}

	ranges := append(scheduleRanges, enableRanges...)
	if len(ranges) == 0 {
		return &DaySlots{
			Available: []types.TimeString{},
			Full:      []types.TimeString{},
			Verdict:   domain.Blocked(domain.ReasonNoHoursConfigured),
		}, nil
	}

	step := service.DurationMinutes + domain.SlotGapMinutes
	availableSet := make(map[types.TimeString]struct{})
	fullSet := make(map[types.TimeString]struct{})

	for _, r := range ranges {
		for t := r.start; t+service.DurationMinutes <= r.end; t += step {
			slot, err := types.NewTimeStringFromMinutes(t)
			if err != nil {
				return nil, fmt.Errorf("%w: slot time out of range: %v", ErrDataInconsistency, err)
			}

			verdict, err := Resolve(service, date, slot, snap)
			if err != nil {
				return nil, err
			}

			switch {
			case verdict.IsAvailable():
				availableSet[slot] = struct{}{}
			case verdict.IsFull():
				fullSet[slot] = struct{}{}
			}
			// Blocked-кандидаты не показываются ни в одном списке
		}
	}

	// Времена уже существующих записей всегда видны как занятые
	for _, a := range snap.appointmentsOn(date, service.Name) {
		if err := a.StartTime.Validate(); err != nil {
			return nil, fmt.Errorf("%w: appointment id=%d: %v", ErrDataInconsistency, a.ID, err)
		}
		fullSet[a.StartTime] = struct{}{}
	}

	// Слот, доступный хотя бы через одно окно, не считается занятым
	for slot := range availableSet {
		delete(fullSet, slot)
	}

	return &DaySlots{
		Available: sortedSlots(availableSet),
		Full:      sortedSlots(fullSet),
		Verdict:   domain.Available(),
	}, nil
}

// validateEnumerateInput отклоняет ошибки вызывающей стороны до перечисления
func validateEnumerateInput(service *domain.Service, date time.Time) error {
	if service == nil {
		return fmt.Errorf("%w: service is required", ErrInvalidInput)
	}
	if err := service.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}

// enableWindows превращает ENABLE-исключения в окна поиска
func enableWindows(enables []domain.Exception) ([]timeRange, error) {
	defaultStart, _ := types.TimeString(domain.DefaultEnableWindowStart).Minutes()
	defaultEnd, _ := types.TimeString(domain.DefaultEnableWindowEnd).Minutes()

	var ranges []timeRange
	for i := range enables {
		e := &enables[i]
		if e.AllDay {
			ranges = append(ranges, timeRange{start: defaultStart, end: defaultEnd})
			continue
		}
		winStart, winEnd, err := e.Window()
		if err != nil {
			return nil, fmt.Errorf("%w: exception id=%d: %v", ErrDataInconsistency, e.ID, err)
		}
		ranges = append(ranges, timeRange{start: winStart, end: winEnd})
	}
	return ranges, nil
}

// scheduleWindows возвращает окна повторяющегося расписания на дату
func scheduleWindows(service *domain.Service, date time.Time, snap *Snapshot) ([]timeRange, error) {
	day := domain.DayOfWeekFromDate(date)
	var ranges []timeRange

	if snap.isRestricted(service.ID) {
		for _, row := range snap.serviceHoursFor(service.ID, day) {
			if err := row.Validate(); err != nil {
				return nil, fmt.Errorf("%w: service hour range id=%d: %v", ErrDataInconsistency, row.ID, err)
			}
			start, _ := row.StartTime.Minutes()
			end, _ := row.EndTime.Minutes()
			ranges = append(ranges, timeRange{start: start, end: end})
		}
		return ranges, nil
	}

	for _, row := range snap.weeklyHoursFor(day) {
		if err := row.Validate(); err != nil {
			return nil, fmt.Errorf("%w: weekly hour range id=%d: %v", ErrDataInconsistency, row.ID, err)
		}
		start, _ := row.StartTime.Minutes()
		end, _ := row.EndTime.Minutes()
		ranges = append(ranges, timeRange{start: start, end: end})
	}
	return ranges, nil
}

// sortedSlots возвращает времена множества по возрастанию
func sortedSlots(set map[types.TimeString]struct{}) []types.TimeString {
	slots := make([]types.TimeString, 0, len(set))
	for slot := range set {
		slots = append(slots, slot)
	}
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].IsBefore(slots[j])
	})
	return slots
}
