package domain

// Service represents a bookable offering of an agenda: a fixed-duration
// procedure with a concurrency limit (how many patients can be attended at
// overlapping times) and a default treatment package length.
type Service struct {
	ID              int64
	AgendaID        int64
	Name            string
	DurationMinutes int
	Concurrency     int
	TotalSessions   int
	Color           string
}

// Validate checks the catalog row is usable for scheduling decisions.
// Rows failing this check must be rejected before any precedence logic runs.
func (s *Service) Validate() error {
	if s.Name == "" {
		return ErrServiceNameRequired
	}
	if s.DurationMinutes <= 0 {
		return ErrNonPositiveDuration
	}
	if s.Concurrency < MinConcurrency {
		return ErrInvalidConcurrency
	}
	return nil
}

// SupportsParallelBookings returns true if more than one patient can be
// attended at the same time
func (s *Service) SupportsParallelBookings() bool {
	return s.Concurrency > 1
}

// IsPackage returns true if the service is booked as a multi-session
// treatment package
func (s *Service) IsPackage() bool {
	return s.TotalSessions > 1
}
