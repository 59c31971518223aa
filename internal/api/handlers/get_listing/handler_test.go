package get_listing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-StayBookingService/internal/service/listings"
	"github.com/m04kA/SMC-StayBookingService/internal/service/listings/models"
	"github.com/m04kA/SMC-StayBookingService/pkg/logger"
)

type stubService struct{ err error }

func (s *stubService) GetByID(_ context.Context, id int64) (*models.ListingResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.ListingResponse{ID: id, Name: "Cozy loft", Price: 100}, nil
}

func serve(svc *stubService, id string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/listings/{id}", NewHandler(svc, logger.NewNop()).Handle)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/listings/"+id, nil))
	return rec
}

func TestHandle(t *testing.T) {
	rec := serve(&stubService{}, "7")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Cozy loft"`)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&stubService{}, "seven").Code)
	assert.Equal(t, http.StatusNotFound, serve(&stubService{err: listings.ErrListingNotFound}, "7").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&stubService{err: listings.ErrInternal}, "7").Code)
}
