package domain

import "errors"

// Data consistency errors. Configuration rows failing these checks are
// surfaced to the caller instead of silently resolving to open or closed.
var (
	ErrServiceNameRequired  = errors.New("domain: service name is required")
	ErrNonPositiveDuration  = errors.New("domain: service duration must be positive")
	ErrInvalidConcurrency   = errors.New("domain: service concurrency must be at least 1")
	ErrInvalidDayOfWeek     = errors.New("domain: day of week must be in 0..6")
	ErrMalformedTimeRange   = errors.New("domain: malformed time range")
	ErrEmptyTimeRange       = errors.New("domain: time range start must be before end")
	ErrInvalidDateRange     = errors.New("domain: invalid date range")
	ErrUnknownExceptionKind = errors.New("domain: unknown exception kind")
)
