package create_booking

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-StayBookingService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-StayBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgMissingFields      = "Missing required fields"
	msgListingNotFound    = "Listing with ID %d not found"
	msgInvalidDate        = "Invalid date format, expected YYYY-MM-DD"
	msgCheckInInPast      = "Check-in date cannot be in the past"
	msgCheckOutBeforeIn   = "Check-out date must be after check-in date"
	msgInvalidGuests      = "At least 1 guest is required"
	msgInvalidEmail       = "Please provide a valid email address"
	msgCreateFailed       = "Failed to create booking"
	msgCreated            = "Booking created successfully"
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

// Handle POST /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		h.respondError(w, &req, err)
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, listing_id=%d",
		result.ID, result.ListingID)
	handlers.RespondMessage(w, http.StatusCreated, msgCreated, FromUseCaseResponse(result))
}

func (h *Handler) respondError(w http.ResponseWriter, req *CreateBookingRequest, err error) {
	var (
		missingErr *createBooking.MissingFieldsError
		minStayErr *createBooking.MinimumStayError
	)

	switch {
	case errors.As(err, &missingErr):
		h.logger.Warn("POST /bookings - Missing fields: %v", missingErr.Fields)
		handlers.WriteJSON(w, http.StatusBadRequest, handlers.Response{
			Success:  false,
			Error:    msgMissingFields,
			Required: createBooking.RequiredFields,
			Missing:  missingErr.Fields,
		})

	case errors.Is(err, createBooking.ErrListingNotFound):
		h.logger.Warn("POST /bookings - Listing not found: listing_id=%d", *req.ListingID)
		handlers.RespondNotFound(w, fmt.Sprintf(msgListingNotFound, *req.ListingID))

	case errors.Is(err, createBooking.ErrInvalidDate):
		h.logger.Warn("POST /bookings - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)

	case errors.Is(err, createBooking.ErrCheckInInPast):
		h.logger.Warn("POST /bookings - Check-in in the past: check_in=%s", *req.CheckIn)
		handlers.RespondBadRequest(w, msgCheckInInPast)

	case errors.Is(err, createBooking.ErrCheckOutNotAfterCheckIn):
		h.logger.Warn("POST /bookings - Check-out not after check-in: check_in=%s, check_out=%s",
			*req.CheckIn, *req.CheckOut)
		handlers.RespondBadRequest(w, msgCheckOutBeforeIn)

	case errors.As(err, &minStayErr):
		h.logger.Warn("POST /bookings - Below minimum stay: listing_id=%d, required=%d, selected=%d",
			*req.ListingID, minStayErr.Required, minStayErr.Selected)
		handlers.RespondBadRequest(w, minStayErr.Message())

	case errors.Is(err, createBooking.ErrInvalidGuests):
		handlers.RespondBadRequest(w, msgInvalidGuests)

	case errors.Is(err, createBooking.ErrInvalidEmail):
		handlers.RespondBadRequest(w, msgInvalidEmail)

	default:
		h.logger.Error("POST /bookings - Failed to create booking: error=%v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgCreateFailed)
	}
}
