package create_booking

import (
	"time"

	"github.com/m04kA/TherapyBookingService/internal/domain"
)

// Request reserves one slot for a client
type Request struct {
	ClientID        int64
	TherapistSlug   string
	StartTime       time.Time // slot start as returned by the slot query
	DurationMinutes int       // 0 = therapist's default session length
	Timezone        string    // zone the client browsed the grid in
	ClientName      string
	ClientEmail     string
	Notes           *string
}

// Response describes the created booking
type Response struct {
	ID              int64
	TherapistID     int64
	TherapistSlug   string
	ClientID        int64
	ClientName      string
	ClientEmail     string
	StartTime       time.Time
	EndTime         time.Time
	StartFormatted  string
	EndFormatted    string
	DurationMinutes int
	Status          domain.BookingStatus
	Notes           *string
	CreatedAt       time.Time
}
