package domain

import (
	"time"

	"github.com/dsalazarv/MCS-AgendaService/pkg/types"
)

// DayOfWeek day of the week with Monday = 0 .. Sunday = 6, matching how
// schedule rows are stored
type DayOfWeek int

const (
	Monday DayOfWeek = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// DayOfWeekFromDate converts a calendar date to the schedule weekday
// numbering (time.Weekday has Sunday = 0)
func DayOfWeekFromDate(date time.Time) DayOfWeek {
	return DayOfWeek((int(date.Weekday()) + 6) % 7)
}

// IsValid returns true if the value is inside Monday..Sunday
func (d DayOfWeek) IsValid() bool {
	return d >= Monday && d <= Sunday
}

// WeeklyHourRange is one recurring operating window of an agenda on a
// weekday. Several ranges per day model split shifts.
type WeeklyHourRange struct {
	ID        int64
	AgendaID  int64
	DayOfWeek DayOfWeek
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Validate checks the range is well formed
func (r *WeeklyHourRange) Validate() error {
	if !r.DayOfWeek.IsValid() {
		return ErrInvalidDayOfWeek
	}
	if err := r.StartTime.Validate(); err != nil {
		return ErrMalformedTimeRange
	}
	if err := r.EndTime.Validate(); err != nil {
		return ErrMalformedTimeRange
	}
	if !r.StartTime.IsBefore(r.EndTime) {
		return ErrEmptyTimeRange
	}
	return nil
}

// ServiceHourRange overrides the agenda's general hours for one service.
// The presence of ANY row for a (agenda, service) pair puts that service in
// restricted mode: its recurring availability is governed exclusively by
// these rows, on every day of the week.
type ServiceHourRange struct {
	ID        int64
	AgendaID  int64
	ServiceID int64
	DayOfWeek DayOfWeek
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Validate checks the range is well formed
func (r *ServiceHourRange) Validate() error {
	if !r.DayOfWeek.IsValid() {
		return ErrInvalidDayOfWeek
	}
	if err := r.StartTime.Validate(); err != nil {
		return ErrMalformedTimeRange
	}
	if err := r.EndTime.Validate(); err != nil {
		return ErrMalformedTimeRange
	}
	if !r.StartTime.IsBefore(r.EndTime) {
		return ErrEmptyTimeRange
	}
	return nil
}
