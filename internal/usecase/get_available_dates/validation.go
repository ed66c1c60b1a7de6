package get_available_dates

import (
	"fmt"
	"strings"

	"github.com/m04kA/TherapyBookingService/internal/domain"
)

func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Slug) == "" {
		return fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}

	if req.DurationMinutes < 0 {
		return fmt.Errorf("%w: duration must not be negative", ErrInvalidInput)
	}

	if req.DurationMinutes > 0 &&
		(req.DurationMinutes < domain.MinSessionDurationMinutes || req.DurationMinutes > domain.MaxSessionDurationMinutes) {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinSessionDurationMinutes, domain.MaxSessionDurationMinutes)
	}

	return nil
}
