package get_available_slots

import (
	"cloud.google.com/go/civil"

	"github.com/m04kA/TherapyBookingService/internal/domain"
)

// Request asks for the slot grid of one local date
type Request struct {
	Slug            string
	Date            civil.Date
	DurationMinutes int    // 0 = therapist's default session length
	Timezone        string // IANA name, empty = practice timezone
}

// Response carries every grid position of the date, flagged available or not
type Response struct {
	Therapist       domain.TherapistSummary
	Date            civil.Date
	Slots           []domain.Slot
	DurationMinutes int
	Timezone        string
}

// AvailableCount returns how many slots are bookable
func (r *Response) AvailableCount() int {
	n := 0
	for _, s := range r.Slots {
		if s.Available {
			n++
		}
	}
	return n
}
