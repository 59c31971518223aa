package create_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/m04kA/SMC-StayBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-StayBookingService/pkg/logger"
)

type stubUseCase struct {
	got  *createBooking.Request
	resp *createBooking.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	s.got = req
	return s.resp, s.err
}

const validBody = `{"listing_id":7,"check_in":"2025-06-01","check_out":"2025-06-04",` +
	`"guest_name":"Ann","guest_email":"ann@example.com","guests":2}`

func serve(t *testing.T, uc *stubUseCase, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	h := NewHandler(uc, logger.NewNop())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))

	h.Handle(rec, req)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return rec, decoded
}

func TestHandle_Created(t *testing.T) {
	id := uuid.New()
	uc := &stubUseCase{resp: &createBooking.Response{
		ID:            id,
		ListingID:     7,
		CheckIn:       time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
		TotalNights:   3,
		PricePerNight: decimal.NewFromInt(100),
		TotalPrice:    decimal.NewFromInt(300),
		Status:        "confirmed",
	}}

	rec, body := serve(t, uc, validBody)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Booking created successfully", body["message"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, id.String(), data["id"])
	assert.Equal(t, 300.0, data["total_price"])
	assert.Equal(t, 3.0, data["total_nights"])
	assert.Equal(t, "confirmed", data["status"])
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(7), *uc.got.ListingID)
}

func TestHandle_InvalidBody(t *testing.T) {
	uc := &stubUseCase{}

	rec, body := serve(t, uc, `{"listing_id":"seven"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", body["error"])
	assert.Nil(t, uc.got)
}

func TestHandle_MissingFields(t *testing.T) {
	uc := &stubUseCase{err: &createBooking.MissingFieldsError{Fields: []string{"guest_email", "guests"}}}

	rec, body := serve(t, uc, `{"listing_id":7}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required fields", body["error"])
	assert.Len(t, body["required"], 6)
	assert.Equal(t, []interface{}{"guest_email", "guests"}, body["missing"])
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"listing not found", createBooking.ErrListingNotFound, http.StatusNotFound, "Listing with ID 7 not found"},
		{"invalid date", createBooking.ErrInvalidDate, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD"},
		{"past", createBooking.ErrCheckInInPast, http.StatusBadRequest, "Check-in date cannot be in the past"},
		{"order", createBooking.ErrCheckOutNotAfterCheckIn, http.StatusBadRequest, "Check-out date must be after check-in date"},
		{
			"minimum stay",
			&createBooking.MinimumStayError{Required: 2, Selected: 1},
			http.StatusBadRequest,
			"This property requires a minimum stay of 2 night(s). You selected 1 night(s).",
		},
		{"guests", createBooking.ErrInvalidGuests, http.StatusBadRequest, "At least 1 guest is required"},
		{"email", createBooking.ErrInvalidEmail, http.StatusBadRequest, "Please provide a valid email address"},
		{"persistence", createBooking.ErrPersistence, http.StatusInternalServerError, "Failed to create booking"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "Failed to create booking"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := serve(t, &stubUseCase{err: tt.err}, validBody)

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.message, body["error"])
		})
	}
}
