package create_booking

import (
	"time"

	createBooking "github.com/m04kA/TherapyBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	TherapistSlug   string    `json:"therapistSlug"`
	StartTime       time.Time `json:"startTime"` // slot start as returned by available-slots
	DurationMinutes int       `json:"durationMinutes,omitempty"`
	Timezone        string    `json:"timezone,omitempty"`
	ClientName      string    `json:"clientName"`
	ClientEmail     string    `json:"clientEmail"`
	Notes           *string   `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64     `json:"id"`
	TherapistID     int64     `json:"therapistId"`
	TherapistSlug   string    `json:"therapistSlug"`
	ClientID        int64     `json:"clientId"`
	ClientName      string    `json:"clientName"`
	ClientEmail     string    `json:"clientEmail"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	StartFormatted  string    `json:"startFormatted"`
	EndFormatted    string    `json:"endFormatted"`
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`
	Notes           *string   `json:"notes,omitempty"`
	CreatedAt       string    `json:"createdAt"`
}

// ToUseCaseRequest binds the authenticated client to the HTTP body
func (r *CreateBookingRequest) ToUseCaseRequest(clientID int64) *createBooking.Request {
	return &createBooking.Request{
		ClientID:        clientID,
		TherapistSlug:   r.TherapistSlug,
		StartTime:       r.StartTime,
		DurationMinutes: r.DurationMinutes,
		Timezone:        r.Timezone,
		ClientName:      r.ClientName,
		ClientEmail:     r.ClientEmail,
		Notes:           r.Notes,
	}
}

func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		TherapistID:     resp.TherapistID,
		TherapistSlug:   resp.TherapistSlug,
		ClientID:        resp.ClientID,
		ClientName:      resp.ClientName,
		ClientEmail:     resp.ClientEmail,
		StartTime:       resp.StartTime.UTC(),
		EndTime:         resp.EndTime.UTC(),
		StartFormatted:  resp.StartFormatted,
		EndFormatted:    resp.EndFormatted,
		DurationMinutes: resp.DurationMinutes,
		Status:          string(resp.Status),
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
