package list_bookings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-StayBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-StayBookingService/pkg/logger"
)

type stubService struct {
	got *models.ListBookingsRequest
	err error
}

func (s *stubService) List(_ context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.BookingListResponse{
		Bookings:   []*models.BookingResponse{{ID: "a"}, {ID: "b"}},
		Pagination: models.Pagination{Total: 12, Page: 2, Pages: 2, Limit: 10},
	}, nil
}

func TestHandle(t *testing.T) {
	svc := &stubService{}
	rec := httptest.NewRecorder()

	NewHandler(svc, logger.NewNop()).Handle(rec,
		httptest.NewRequest(http.MethodGet, "/api/bookings?guest_email=ann@example.com&status=confirmed&page=2&limit=10", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, &models.ListBookingsRequest{
		GuestEmail: "ann@example.com", Status: "confirmed", Page: 2, Limit: 10,
	}, svc.got)

	var body struct {
		Success    bool                      `json:"success"`
		Data       []*models.BookingResponse `json:"data"`
		Pagination models.Pagination         `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Len(t, body.Data, 2)
	assert.Equal(t, models.Pagination{Total: 12, Page: 2, Pages: 2, Limit: 10}, body.Pagination)
}

func TestHandle_BadParams(t *testing.T) {
	svc := &stubService{}
	rec := httptest.NewRecorder()

	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/bookings?page=two", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.got)
}

func TestHandle_InvalidStatus(t *testing.T) {
	rec := httptest.NewRecorder()

	NewHandler(&stubService{err: bookings.ErrInvalidInput}, logger.NewNop()).Handle(rec,
		httptest.NewRequest(http.MethodGet, "/api/bookings?status=pending", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
