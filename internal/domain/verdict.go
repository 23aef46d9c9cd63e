package domain

// Outcome is the top-level classification of an availability decision
type Outcome string

const (
	OutcomeAvailable Outcome = "available"
	OutcomeBlocked   Outcome = "blocked"
	OutcomeFull      Outcome = "full"
)

// VerdictReason explains a negative verdict so UIs can distinguish
// "closed" from "full"
type VerdictReason string

const (
	// ReasonException a block exception covers the requested interval
	ReasonException VerdictReason = "exception"
	// ReasonNoServiceHours the service is in restricted mode and has no
	// covering hour range on that weekday
	ReasonNoServiceHours VerdictReason = "no-hours-service"
	// ReasonAgendaClosed the agenda's general hours do not cover the interval
	ReasonAgendaClosed VerdictReason = "no-hours-agenda"
	// ReasonDayClosed a full-day block exception closes the whole date
	ReasonDayClosed VerdictReason = "day-closed"
	// ReasonNoHoursConfigured no candidate windows exist for the date at all
	ReasonNoHoursConfigured VerdictReason = "no-hours-configured"
	// ReasonCapacityReached every concurrency spot of the service is taken
	ReasonCapacityReached VerdictReason = "capacity-reached"
)

// Verdict is the result of resolving one (agenda, service, date, time)
// candidate. Blocked and Full are ordinary values, never errors: they are the
// expected negative branches of the resolver.
type Verdict struct {
	Outcome Outcome
	Reason  VerdictReason
}

// Available builds a positive verdict
func Available() Verdict {
	return Verdict{Outcome: OutcomeAvailable}
}

// Blocked builds a negative verdict for a closed window
func Blocked(reason VerdictReason) Verdict {
	return Verdict{Outcome: OutcomeBlocked, Reason: reason}
}

// Full builds a negative verdict for an open but exhausted window
func Full() Verdict {
	return Verdict{Outcome: OutcomeFull, Reason: ReasonCapacityReached}
}

// IsAvailable returns true for a positive verdict
func (v Verdict) IsAvailable() bool {
	return v.Outcome == OutcomeAvailable
}

// IsBlocked returns true if the window is closed
func (v Verdict) IsBlocked() bool {
	return v.Outcome == OutcomeBlocked
}

// IsFull returns true if the window is open but at capacity
func (v Verdict) IsFull() bool {
	return v.Outcome == OutcomeFull
}
