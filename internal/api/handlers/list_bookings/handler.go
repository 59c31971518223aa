package list_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StayBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-StayBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-StayBookingService/internal/service/bookings/models"
)

const (
	msgInvalidParams = "Invalid query parameters"
	msgInvalidStatus = "Invalid status, expected one of: confirmed, cancelled, completed"
	msgFetchFailed   = "Failed to fetch bookings"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/bookings
// Query params: guest_email, status, page, limit (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	page, err := handlers.QueryInt(r, "page")
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid page: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}
	limit, err := handlers.QueryInt(r, "limit")
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid limit: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	query := r.URL.Query()
	result, err := h.service.List(r.Context(), &models.ListBookingsRequest{
		GuestEmail: query.Get("guest_email"),
		Status:     query.Get("status"),
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: error=%v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgFetchFailed)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved: count=%d, total=%d",
		len(result.Bookings), result.Pagination.Total)
	handlers.RespondPaginated(w, result.Bookings, result.Pagination)
}
