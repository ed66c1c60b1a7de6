package get_available_dates

import (
	getAvailableDates "github.com/m04kA/TherapyBookingService/internal/usecase/get_available_dates"
)

// TherapistResponse identifies the therapist the dates belong to
type TherapistResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// AvailableDatesResponse HTTP response model
type AvailableDatesResponse struct {
	Therapist       TherapistResponse `json:"therapist"`
	Dates           []string          `json:"dates"` // "2026-10-19"
	DurationMinutes int               `json:"durationMinutes"`
	Timezone        string            `json:"timezone"`
}

// FromUseCaseResponse renders dates as yyyy-MM-dd strings
func FromUseCaseResponse(resp *getAvailableDates.Response) *AvailableDatesResponse {
	dates := make([]string, 0, len(resp.Dates))
	for _, d := range resp.Dates {
		dates = append(dates, d.String())
	}

	return &AvailableDatesResponse{
		Therapist: TherapistResponse{
			ID:   resp.Therapist.ID,
			Name: resp.Therapist.Name,
			Slug: resp.Therapist.Slug,
		},
		Dates:           dates,
		DurationMinutes: resp.DurationMinutes,
		Timezone:        resp.Timezone,
	}
}
