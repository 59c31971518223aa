package models

import (
	"time"

	"github.com/m04kA/SMC-StayBookingService/internal/domain"
)

// ListListingsRequest параметры каталога, пустая строка означает отсутствие фильтра
type ListListingsRequest struct {
	Neighbourhood      string
	NeighbourhoodGroup string
	RoomType           string
	MinPrice           string
	MaxPrice           string
	Search             string
	Page               int
	Limit              int
}

// ListingResponse объявление в ответе API
type ListingResponse struct {
	ID                          int64      `json:"id"`
	Name                        string     `json:"name"`
	HostID                      int64      `json:"host_id"`
	HostName                    string     `json:"host_name"`
	NeighbourhoodGroup          string     `json:"neighbourhood_group"`
	Neighbourhood               string     `json:"neighbourhood"`
	Latitude                    float64    `json:"latitude"`
	Longitude                   float64    `json:"longitude"`
	RoomType                    string     `json:"room_type"`
	Price                       float64    `json:"price"`
	MinimumNights               int        `json:"minimum_nights"`
	NumberOfReviews             int        `json:"number_of_reviews"`
	LastReview                  *time.Time `json:"last_review"`
	ReviewsPerMonth             *float64   `json:"reviews_per_month"`
	CalculatedHostListingsCount int        `json:"calculated_host_listings_count"`
	Availability365             int        `json:"availability_365"`
	ImageURL                    string     `json:"image_url"`
}

// Pagination метаданные страницы
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
	Limit int   `json:"limit"`
}

// ListingListResponse страница каталога
type ListingListResponse struct {
	Listings   []*ListingResponse
	Pagination Pagination
}

// NeighbourhoodsResponse значения фильтров по району
type NeighbourhoodsResponse struct {
	Neighbourhoods      []string `json:"neighbourhoods"`
	NeighbourhoodGroups []string `json:"neighbourhood_groups"`
}

// FromDomainListing конвертирует объявление в DTO, подставляя картинку по умолчанию
func FromDomainListing(l *domain.Listing, defaultImage string) *ListingResponse {
	return &ListingResponse{
		ID:                          l.ID,
		Name:                        l.Name,
		HostID:                      l.HostID,
		HostName:                    l.HostName,
		NeighbourhoodGroup:          l.NeighbourhoodGroup,
		Neighbourhood:               l.Neighbourhood,
		Latitude:                    l.Latitude,
		Longitude:                   l.Longitude,
		RoomType:                    l.RoomType,
		Price:                       l.Price.InexactFloat64(),
		MinimumNights:               l.EffectiveMinimumNights(),
		NumberOfReviews:             l.NumberOfReviews,
		LastReview:                  l.LastReview,
		ReviewsPerMonth:             l.ReviewsPerMonth,
		CalculatedHostListingsCount: l.CalculatedHostListingsCount,
		Availability365:             l.Availability365,
		ImageURL:                    l.ImageOrDefault(defaultImage),
	}
}
