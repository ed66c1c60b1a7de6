package get_available_slots

import (
	"time"

	getAvailableSlots "github.com/m04kA/TherapyBookingService/internal/usecase/get_available_slots"
)

type TherapistResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// SlotResponse is one grid position; start and end are UTC instants
type SlotResponse struct {
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	StartFormatted string    `json:"startFormatted"` // "9:30 AM"
	EndFormatted   string    `json:"endFormatted"`
	Available      bool      `json:"available"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string            `json:"date"`
	Therapist       TherapistResponse `json:"therapist"`
	Slots           []SlotResponse    `json:"slots"`
	DurationMinutes int               `json:"durationMinutes"`
	Timezone        string            `json:"timezone"`
}

func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			Start:          s.Start.UTC(),
			End:            s.End.UTC(),
			StartFormatted: s.StartFormatted,
			EndFormatted:   s.EndFormatted,
			Available:      s.Available,
		})
	}

	return &AvailableSlotsResponse{
		Date: resp.Date.String(),
		Therapist: TherapistResponse{
			ID:   resp.Therapist.ID,
			Name: resp.Therapist.Name,
			Slug: resp.Therapist.Slug,
		},
		Slots:           slots,
		DurationMinutes: resp.DurationMinutes,
		Timezone:        resp.Timezone,
	}
}
