package get_available_dates

import (
	"cloud.google.com/go/civil"

	"github.com/m04kA/TherapyBookingService/internal/domain"
)

// Request asks for the bookable days of a therapist
type Request struct {
	Slug            string
	DurationMinutes int    // 0 = therapist's default session length
	Timezone        string // IANA name, empty = practice timezone
}

// Response lists bookable local dates in ascending order
type Response struct {
	Therapist       domain.TherapistSummary
	Dates           []civil.Date
	DurationMinutes int
	Timezone        string
}
