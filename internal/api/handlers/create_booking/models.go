package create_booking

import (
	bookingModels "github.com/m04kA/SMC-StayBookingService/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-StayBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model.
// Указатели отличают отсутствующее поле от переданного.
type CreateBookingRequest struct {
	ListingID  *int64  `json:"listing_id"`
	CheckIn    *string `json:"check_in"`  // "2025-06-01"
	CheckOut   *string `json:"check_out"` // "2025-06-04"
	GuestName  *string `json:"guest_name"`
	GuestEmail *string `json:"guest_email"`
	Guests     *int    `json:"guests"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		ListingID:  r.ListingID,
		CheckIn:    r.CheckIn,
		CheckOut:   r.CheckOut,
		GuestName:  r.GuestName,
		GuestEmail: r.GuestEmail,
		Guests:     r.Guests,
	}
}

// FromUseCaseResponse конвертирует результат use case в HTTP ответ
func FromUseCaseResponse(r *createBooking.Response) *bookingModels.BookingResponse {
	return &bookingModels.BookingResponse{
		ID:            r.ID.String(),
		ListingID:     r.ListingID,
		ListingName:   r.ListingName,
		ListingImage:  r.ListingImage,
		CheckIn:       r.CheckIn,
		CheckOut:      r.CheckOut,
		GuestName:     r.GuestName,
		GuestEmail:    r.GuestEmail,
		Guests:        r.Guests,
		TotalNights:   r.TotalNights,
		PricePerNight: r.PricePerNight.InexactFloat64(),
		TotalPrice:    r.TotalPrice.InexactFloat64(),
		BookingDate:   r.BookingDate,
		Status:        r.Status,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
