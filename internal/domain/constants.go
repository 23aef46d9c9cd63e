package domain

// Scheduling constants
const (
	// SlotGapMinutes fixed buffer between consecutive enumerated slots
	SlotGapMinutes = 5

	// Default search window contributed by an all-day enable exception.
	// Keeps enumeration bounded instead of walking the whole day.
	DefaultEnableWindowStart = "06:00"
	DefaultEnableWindowEnd   = "21:00"
)

// Default catalog values
const (
	DefaultDurationMinutes = 30
	DefaultConcurrency     = 1
	DefaultTotalSessions   = 1
	DefaultServiceColor    = "#3b82f6"
)

// Business validation constants
const (
	MinConcurrency     = 1
	MaxConcurrency     = 100
	MinDurationMinutes = 5
	MaxDurationMinutes = 480 // 8 hours
	MaxSessions        = 60
	MaxNotesLength     = 500
	MaxReasonLength    = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
