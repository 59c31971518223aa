package listingcatalog

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StayBookingService/internal/domain"
)

// envelope обёртка ответа каталога {success, data, error}
type envelope struct {
	Success bool     `json:"success"`
	Data    *Listing `json:"data"`
	Error   string   `json:"error,omitempty"`
}

// Listing модель объявления из каталога
type Listing struct {
	ID                          int64           `json:"id"`
	Name                        string          `json:"name"`
	HostID                      int64           `json:"host_id"`
	HostName                    string          `json:"host_name"`
	NeighbourhoodGroup          string          `json:"neighbourhood_group"`
	Neighbourhood               string          `json:"neighbourhood"`
	Latitude                    float64         `json:"latitude"`
	Longitude                   float64         `json:"longitude"`
	RoomType                    string          `json:"room_type"`
	Price                       decimal.Decimal `json:"price"`
	MinimumNights               int             `json:"minimum_nights"`
	NumberOfReviews             int             `json:"number_of_reviews"`
	LastReview                  *time.Time      `json:"last_review,omitempty"`
	ReviewsPerMonth             *float64        `json:"reviews_per_month,omitempty"`
	CalculatedHostListingsCount int             `json:"calculated_host_listings_count"`
	Availability365             int             `json:"availability_365"`
	ImageURL                    *string         `json:"image_url,omitempty"`
}

// ToDomain конвертирует модель каталога в domain.Listing
func (l *Listing) ToDomain() *domain.Listing {
	return &domain.Listing{
		ID:                          l.ID,
		Name:                        l.Name,
		HostID:                      l.HostID,
		HostName:                    l.HostName,
		NeighbourhoodGroup:          l.NeighbourhoodGroup,
		Neighbourhood:               l.Neighbourhood,
		Latitude:                    l.Latitude,
		Longitude:                   l.Longitude,
		RoomType:                    l.RoomType,
		Price:                       l.Price,
		MinimumNights:               l.MinimumNights,
		NumberOfReviews:             l.NumberOfReviews,
		LastReview:                  l.LastReview,
		ReviewsPerMonth:             l.ReviewsPerMonth,
		CalculatedHostListingsCount: l.CalculatedHostListingsCount,
		Availability365:             l.Availability365,
		ImageURL:                    l.ImageURL,
	}
}
