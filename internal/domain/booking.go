package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
	StatusNoShow    BookingStatus = "no_show"
)

// IsValid returns true for a known status
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusNoShow:
		return true
	}
	return false
}

// Booking represents a client reservation with a therapist
type Booking struct {
	ID            int64
	TherapistID   int64
	ClientID      int64
	ClientName    string
	ClientEmail   string
	StartDatetime time.Time // UTC
	EndDatetime   time.Time // UTC
	Status        BookingStatus
	Notes         *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesCalendar returns true if the booking takes capacity in availability checks
func (b *Booking) OccupiesCalendar() bool {
	return b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// DurationMinutes returns the session length
func (b *Booking) DurationMinutes() int {
	return int(b.EndDatetime.Sub(b.StartDatetime) / time.Minute)
}

// OccupiedWindow returns the booking window dilated by buffer on both ends
func (b *Booking) OccupiedWindow(buffer time.Duration) (time.Time, time.Time) {
	return b.StartDatetime.Add(-buffer), b.EndDatetime.Add(buffer)
}

// TherapistBookingsFilter narrows a therapist's bookings.
// From/To bound StartDatetime as [From, To).
type TherapistBookingsFilter struct {
	TherapistID int64
	Status      *BookingStatus
	From        *time.Time
	To          *time.Time
}
