package get_listing_filters

import (
	"net/http"

	"github.com/m04kA/SMC-StayBookingService/internal/api/handlers"
)

const (
	msgNeighbourhoodsFailed = "Error fetching neighbourhoods"
	msgRoomTypesFailed      = "Error fetching room types"
)

// Handler отдает значения для фильтров каталога
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

// Neighbourhoods GET /api/listings/filters/neighbourhoods
func (h *Handler) Neighbourhoods(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Neighbourhoods(r.Context())
	if err != nil {
		h.logger.Error("GET /listings/filters/neighbourhoods - %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgNeighbourhoodsFailed)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// RoomTypes GET /api/listings/filters/room-types
func (h *Handler) RoomTypes(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.RoomTypes(r.Context())
	if err != nil {
		h.logger.Error("GET /listings/filters/room-types - %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgRoomTypesFailed)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}
