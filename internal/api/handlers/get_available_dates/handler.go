package get_available_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/TherapyBookingService/internal/api/handlers"
	getAvailableDates "github.com/m04kA/TherapyBookingService/internal/usecase/get_available_dates"
)

const (
	msgInvalidDuration   = "duration must be a non-negative integer number of minutes"
	msgInvalidInput      = "invalid request parameters"
	msgInvalidTimezone   = "unknown timezone"
	msgTherapistNotFound = "therapist not found"
)

type Handler struct {
	useCase GetAvailableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/therapists/{slug}/available-dates
// Query params: duration (optional, minutes), timezone (optional, IANA name)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	query := r.URL.Query()

	duration := 0
	if raw := query.Get("duration"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			h.logger.Warn("GET /therapists/{slug}/available-dates - Invalid duration: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
		duration = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableDates.Request{
		Slug:            slug,
		DurationMinutes: duration,
		Timezone:        query.Get("timezone"),
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDates.ErrTherapistNotFound):
			h.logger.Warn("GET /therapists/{slug}/available-dates - Therapist not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgTherapistNotFound)

		case errors.Is(err, getAvailableDates.ErrInvalidTimezone):
			h.logger.Warn("GET /therapists/{slug}/available-dates - Invalid timezone: slug=%s, error=%v", slug, err)
			handlers.RespondBadRequest(w, msgInvalidTimezone)

		case errors.Is(err, getAvailableDates.ErrInvalidInput):
			h.logger.Warn("GET /therapists/{slug}/available-dates - Invalid input: slug=%s, error=%v", slug, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /therapists/{slug}/available-dates - Failed to compute dates: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /therapists/{slug}/available-dates - Dates computed: slug=%s, count=%d", slug, len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
