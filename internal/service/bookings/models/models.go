package models

import (
	"errors"
	"time"

	"github.com/m04kA/TherapyBookingService/internal/domain"
)

// ErrInvalidStatus is returned for an unknown status filter
var ErrInvalidStatus = errors.New("invalid booking status")

// CancelBookingRequest cancels a booking on behalf of its client
type CancelBookingRequest struct {
	ClientID           int64
	CancellationReason *string
}

// GetClientBookingsRequest lists a client's bookings
type GetClientBookingsRequest struct {
	ClientID int64
	Status   *string
}

// BookingResponse is the client-facing view of a booking
type BookingResponse struct {
	ID                 int64      `json:"id"`
	TherapistID        int64      `json:"therapistId"`
	ClientID           int64      `json:"clientId"`
	ClientName         string     `json:"clientName"`
	ClientEmail        string     `json:"clientEmail"`
	StartDatetime      time.Time  `json:"startDatetime"`
	EndDatetime        time.Time  `json:"endDatetime"`
	DurationMinutes    int        `json:"durationMinutes"`
	Status             string     `json:"status"`
	Notes              *string    `json:"notes,omitempty"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:                 b.ID,
		TherapistID:        b.TherapistID,
		ClientID:           b.ClientID,
		ClientName:         b.ClientName,
		ClientEmail:        b.ClientEmail,
		StartDatetime:      b.StartDatetime.UTC(),
		EndDatetime:        b.EndDatetime.UTC(),
		DurationMinutes:    b.DurationMinutes(),
		Status:             string(b.Status),
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		if r := FromDomainBooking(b); r != nil {
			resp.Bookings = append(resp.Bookings, *r)
		}
	}

	return resp
}

// ToDomainBookingStatus validates a status filter
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
