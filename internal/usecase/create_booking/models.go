package create_booking

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request запрос на создание бронирования.
// nil означает, что поле не передано.
type Request struct {
	ListingID  *int64
	CheckIn    *string // YYYY-MM-DD или RFC 3339
	CheckOut   *string
	GuestName  *string
	GuestEmail *string
	Guests     *int
}

// ValidatedRequest нормализованный запрос после валидации
type ValidatedRequest struct {
	ListingID   int64
	CheckIn     time.Time
	CheckOut    time.Time
	GuestName   string
	GuestEmail  string
	Guests      int
	TotalNights int
}

// Response созданное бронирование
type Response struct {
	ID            uuid.UUID
	ListingID     int64
	ListingName   string
	ListingImage  string
	CheckIn       time.Time
	CheckOut      time.Time
	GuestName     string
	GuestEmail    string
	Guests        int
	TotalNights   int
	PricePerNight decimal.Decimal
	TotalPrice    decimal.Decimal
	BookingDate   time.Time
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
