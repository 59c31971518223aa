package models

import (
	"time"

	"github.com/m04kA/SMC-StayBookingService/internal/domain"
)

// ListBookingsRequest параметры списка бронирований.
// Пустые строки означают отсутствие фильтра, нули - значения по умолчанию.
type ListBookingsRequest struct {
	GuestEmail string
	Status     string
	Page       int
	Limit      int
}

// BookingResponse бронирование в ответе API
type BookingResponse struct {
	ID            string    `json:"id"`
	ListingID     int64     `json:"listing_id"`
	ListingName   string    `json:"listing_name"`
	ListingImage  string    `json:"listing_image"`
	CheckIn       time.Time `json:"check_in"`
	CheckOut      time.Time `json:"check_out"`
	GuestName     string    `json:"guest_name"`
	GuestEmail    string    `json:"guest_email"`
	Guests        int       `json:"guests"`
	TotalNights   int       `json:"total_nights"`
	PricePerNight float64   `json:"price_per_night"`
	TotalPrice    float64   `json:"total_price"`
	BookingDate   time.Time `json:"booking_date"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Pagination метаданные страницы
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
	Limit int   `json:"limit"`
}

// BookingListResponse страница бронирований
type BookingListResponse struct {
	Bookings   []*BookingResponse
	Pagination Pagination
}

// FromDomainBooking конвертирует доменную модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID.String(),
		ListingID:     b.ListingID,
		ListingName:   b.ListingName,
		ListingImage:  b.ListingImage,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		GuestName:     b.GuestName,
		GuestEmail:    b.GuestEmail,
		Guests:        b.Guests,
		TotalNights:   b.TotalNights,
		PricePerNight: b.PricePerNight.InexactFloat64(),
		TotalPrice:    b.TotalPrice.InexactFloat64(),
		BookingDate:   b.BookingDate,
		Status:        b.Status.String(),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует страницу бронирований
func FromDomainBookingList(bookings []*domain.Booking, total int64, page domain.Pagination) *BookingListResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}

	return &BookingListResponse{
		Bookings: result,
		Pagination: Pagination{
			Total: total,
			Page:  page.Page,
			Pages: page.Pages(total),
			Limit: page.Limit,
		},
	}
}
