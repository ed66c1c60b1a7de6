package get_available_dates

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TherapyBookingService/internal/domain"
	getAvailableDates "github.com/m04kA/TherapyBookingService/internal/usecase/get_available_dates"
	"github.com/m04kA/TherapyBookingService/pkg/logger"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(ctx context.Context, req *getAvailableDates.Request) (*getAvailableDates.Response, error) {
	args := m.Called(ctx, req)
	if resp, ok := args.Get(0).(*getAvailableDates.Response); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func serve(h *Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req = mux.SetURLVars(req, map[string]string{"slug": "ada"})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &getAvailableDates.Request{Slug: "ada", DurationMinutes: 50, Timezone: "Europe/Berlin"}).
		Return(&getAvailableDates.Response{
			Therapist:       domain.TherapistSummary{ID: 1, Name: "Ada Lovelace", Slug: "ada"},
			Dates:           []civil.Date{{Year: 2026, Month: 10, Day: 19}, {Year: 2026, Month: 10, Day: 21}},
			DurationMinutes: 50,
			Timezone:        "Europe/Berlin",
		}, nil)

	rec := serve(NewHandler(uc, logger.Nop()), "/api/v1/therapists/ada/available-dates?duration=50&timezone=Europe/Berlin")

	require.Equal(t, http.StatusOK, rec.Code)
	var body AvailableDatesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"2026-10-19", "2026-10-21"}, body.Dates)
	assert.Equal(t, "ada", body.Therapist.Slug)
}

func TestHandle_EmptyListIsArray(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).
		Return(&getAvailableDates.Response{Therapist: domain.TherapistSummary{ID: 1, Slug: "ada"}}, nil)

	rec := serve(NewHandler(uc, logger.Nop()), "/api/v1/therapists/ada/available-dates")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"dates":[]`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		status int
	}{
		{name: "bad duration", target: "/x?duration=abc", status: http.StatusBadRequest},
		{name: "negative duration", target: "/x?duration=-5", status: http.StatusBadRequest},
		{name: "not found", target: "/x", err: getAvailableDates.ErrTherapistNotFound, status: http.StatusNotFound},
		{name: "timezone", target: "/x?timezone=Mars/Base", err: getAvailableDates.ErrInvalidTimezone, status: http.StatusBadRequest},
		{name: "invalid input", target: "/x", err: getAvailableDates.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "internal", target: "/x", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(NewHandler(uc, logger.Nop()), tt.target)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
