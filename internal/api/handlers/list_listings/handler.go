package list_listings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StayBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-StayBookingService/internal/service/listings"
	"github.com/m04kA/SMC-StayBookingService/internal/service/listings/models"
)

const (
	msgInvalidParams = "Invalid query parameters"
	msgFetchFailed   = "Error fetching listings"
)

type Handler struct {
	service ListingService
	logger  Logger
}

func NewHandler(service ListingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/listings
// Query params: neighbourhood, neighbourhood_group, room_type, min_price, max_price, search, page, limit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	page, err := handlers.QueryInt(r, "page")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}
	limit, err := handlers.QueryInt(r, "limit")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	query := r.URL.Query()
	result, err := h.service.List(r.Context(), &models.ListListingsRequest{
		Neighbourhood:      query.Get("neighbourhood"),
		NeighbourhoodGroup: query.Get("neighbourhood_group"),
		RoomType:           query.Get("room_type"),
		MinPrice:           query.Get("min_price"),
		MaxPrice:           query.Get("max_price"),
		Search:             query.Get("search"),
		Page:               page,
		Limit:              limit,
	})
	if err != nil {
		if errors.Is(err, listings.ErrInvalidInput) {
			h.logger.Warn("GET /listings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		h.logger.Error("GET /listings - Failed to list listings: error=%v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgFetchFailed)
		return
	}

	handlers.RespondPaginated(w, result.Listings, result.Pagination)
}
