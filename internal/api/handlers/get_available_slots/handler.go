package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"cloud.google.com/go/civil"
	"github.com/gorilla/mux"

	"github.com/m04kA/TherapyBookingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/TherapyBookingService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate       = "date is required"
	msgInvalidDate       = "invalid date format, expected YYYY-MM-DD"
	msgInvalidDuration   = "duration must be a non-negative integer number of minutes"
	msgInvalidInput      = "invalid request parameters"
	msgInvalidTimezone   = "unknown timezone"
	msgTherapistNotFound = "therapist not found"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/therapists/{slug}/available-slots
// Query params: date (required, YYYY-MM-DD), duration (optional, minutes), timezone (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	query := r.URL.Query()

	rawDate := query.Get("date")
	if rawDate == "" {
		h.logger.Warn("GET /therapists/{slug}/available-slots - Missing date: slug=%s", slug)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := civil.ParseDate(rawDate)
	if err != nil {
		h.logger.Warn("GET /therapists/{slug}/available-slots - Invalid date %q: %v", rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	duration := 0
	if raw := query.Get("duration"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			h.logger.Warn("GET /therapists/{slug}/available-slots - Invalid duration: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
		duration = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		Slug:            slug,
		Date:            date,
		DurationMinutes: duration,
		Timezone:        query.Get("timezone"),
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrTherapistNotFound):
			h.logger.Warn("GET /therapists/{slug}/available-slots - Therapist not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgTherapistNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidTimezone):
			h.logger.Warn("GET /therapists/{slug}/available-slots - Invalid timezone: slug=%s, error=%v", slug, err)
			handlers.RespondBadRequest(w, msgInvalidTimezone)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /therapists/{slug}/available-slots - Invalid input: slug=%s, error=%v", slug, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /therapists/{slug}/available-slots - Failed to compute slots: slug=%s, date=%s, error=%v",
				slug, rawDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /therapists/{slug}/available-slots - Slots computed: slug=%s, date=%s, total=%d, available=%d",
		slug, rawDate, len(result.Slots), result.AvailableCount())
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
