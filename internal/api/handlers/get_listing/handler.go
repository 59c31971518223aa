package get_listing

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StayBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-StayBookingService/internal/service/listings"
)

const (
	msgInvalidListingID = "Invalid listing ID"
	msgNotFound         = "Listing not found"
	msgFetchFailed      = "Error fetching listing"
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

// Handle GET /api/listings/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	listingID, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("GET /listings/{id} - Invalid listing ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidListingID)
		return
	}

	listing, err := h.service.GetByID(r.Context(), listingID)
	if err != nil {
		if errors.Is(err, listings.ErrListingNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /listings/{id} - Failed to get listing: listing_id=%d, error=%v", listingID, err)
		handlers.RespondError(w, http.StatusInternalServerError, msgFetchFailed)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, listing)
}
