package cancel_booking

import (
	"github.com/m04kA/TherapyBookingService/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest binds the authenticated client to the HTTP body
func (r *CancelBookingRequest) ToServiceRequest(clientID int64) *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		ClientID:           clientID,
		CancellationReason: r.CancellationReason,
	}
}
