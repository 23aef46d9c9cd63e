package domain

import (
	"time"

	"github.com/dsalazarv/MCS-AgendaService/pkg/types"
)

// ExceptionKind distinguishes closing overrides from exceptional openings
type ExceptionKind string

const (
	// KindBlock closes an otherwise open window
	KindBlock ExceptionKind = "block"
	// KindEnable opens a window regardless of recurring hours or blocks
	KindEnable ExceptionKind = "enable"
)

// Exception is a date-scoped schedule override. ServiceID nil means the
// exception applies to every service of the agenda. All-day exceptions cover
// every minute of every date in [DateStart, DateEnd]; timed ones carry an
// explicit [TimeStart, TimeEnd) window.
type Exception struct {
	ID        int64
	AgendaID  int64
	ServiceID *int64
	Kind      ExceptionKind
	DateStart time.Time
	DateEnd   time.Time
	AllDay    bool
	TimeStart *types.TimeString
	TimeEnd   *types.TimeString
	Reason    *string
}

// Validate rejects malformed rows instead of letting them silently resolve
// to open or closed
func (e *Exception) Validate() error {
	if e.Kind != KindBlock && e.Kind != KindEnable {
		return ErrUnknownExceptionKind
	}
	if e.DateStart.IsZero() || e.DateEnd.IsZero() || e.DateEnd.Before(e.DateStart) {
		return ErrInvalidDateRange
	}
	if e.AllDay {
		return nil
	}
	if e.TimeStart == nil || e.TimeEnd == nil {
		return ErrMalformedTimeRange
	}
	if err := e.TimeStart.Validate(); err != nil {
		return ErrMalformedTimeRange
	}
	if err := e.TimeEnd.Validate(); err != nil {
		return ErrMalformedTimeRange
	}
	if !e.TimeStart.IsBefore(*e.TimeEnd) {
		return ErrEmptyTimeRange
	}
	return nil
}

// IsGlobal returns true if the exception applies to every service
func (e *Exception) IsGlobal() bool {
	return e.ServiceID == nil
}

// AppliesToService returns true if the exception scopes to the given service
// (either globally or by explicit service id)
func (e *Exception) AppliesToService(serviceID int64) bool {
	return e.ServiceID == nil || *e.ServiceID == serviceID
}

// CoversDate returns true if date falls inside the inclusive
// [DateStart, DateEnd] range. Only the calendar date is compared.
func (e *Exception) CoversDate(date time.Time) bool {
	d := truncateToDate(date)
	return !d.Before(truncateToDate(e.DateStart)) && !d.After(truncateToDate(e.DateEnd))
}

// Window returns the exception's time window as minutes of the day.
// All-day exceptions report the whole day. Assumes Validate passed.
func (e *Exception) Window() (startMin, endMin int, err error) {
	if e.AllDay {
		return 0, 24 * 60, nil
	}
	startMin, err = e.TimeStart.Minutes()
	if err != nil {
		return 0, 0, ErrMalformedTimeRange
	}
	endMin, err = e.TimeEnd.Minutes()
	if err != nil {
		return 0, 0, ErrMalformedTimeRange
	}
	return startMin, endMin, nil
}

// truncateToDate drops the time-of-day component
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
