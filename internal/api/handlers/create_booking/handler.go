package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/TherapyBookingService/internal/api/handlers"
	"github.com/m04kA/TherapyBookingService/internal/api/middleware"
	createBooking "github.com/m04kA/TherapyBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingUserID      = "missing user id"
	msgInvalidInput       = "invalid booking data"
	msgInvalidTimezone    = "unknown timezone"
	msgInvalidTimeSlot    = "start time is not a slot of this therapist's schedule"
	msgSlotNotAvailable   = "the selected time slot is no longer available"
	msgTherapistNotFound  = "therapist not found"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(clientID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: client_id=%d, therapist=%s, start=%s",
				clientID, req.TherapistSlug, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrTherapistNotFound):
			h.logger.Warn("POST /bookings - Therapist not found: therapist=%s", req.TherapistSlug)
			handlers.RespondNotFound(w, msgTherapistNotFound)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: client_id=%d, therapist=%s, start=%s",
				clientID, req.TherapistSlug, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidTimezone):
			h.logger.Warn("POST /bookings - Invalid timezone: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimezone)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: client_id=%d, error=%v", clientID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: client_id=%d, therapist=%s, error=%v",
				clientID, req.TherapistSlug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, client_id=%d, therapist=%s",
		result.ID, clientID, req.TherapistSlug)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
