package domain

import "time"

// Slot is a candidate appointment window computed on demand and never stored.
// Start and End are UTC instants; the formatted strings are local wall-clock
// renderings in the requested timezone.
type Slot struct {
	Start          time.Time
	End            time.Time
	StartFormatted string
	EndFormatted   string
	Available      bool
}

// Duration returns the slot length
func (s *Slot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}
