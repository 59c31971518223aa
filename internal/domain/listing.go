package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Listing объявление о сдаче жилья. Сервис бронирований только читает его.
type Listing struct {
	ID                          int64
	Name                        string
	HostID                      int64
	HostName                    string
	NeighbourhoodGroup          string
	Neighbourhood               string
	Latitude                    float64
	Longitude                   float64
	RoomType                    string
	Price                       decimal.Decimal
	MinimumNights               int
	NumberOfReviews             int
	LastReview                  *time.Time
	ReviewsPerMonth             *float64
	CalculatedHostListingsCount int
	Availability365             int
	ImageURL                    *string
}

// EffectiveMinimumNights минимальный срок проживания, не меньше одной ночи
func (l *Listing) EffectiveMinimumNights() int {
	if l.MinimumNights < DefaultMinimumNights {
		return DefaultMinimumNights
	}
	return l.MinimumNights
}

// ImageOrDefault картинка объявления или картинка по умолчанию
func (l *Listing) ImageOrDefault(fallback string) string {
	if l.ImageURL == nil || *l.ImageURL == "" {
		return fallback
	}
	return *l.ImageURL
}

// ListingsFilter фильтр каталога объявлений
type ListingsFilter struct {
	Neighbourhood      *string
	NeighbourhoodGroup *string
	RoomType           *string
	MinPrice           *decimal.Decimal
	MaxPrice           *decimal.Decimal
	Search             *string // подстрока названия без учета регистра
}

// ListingFacets значения для фильтров каталога
type ListingFacets struct {
	Neighbourhoods      []string
	NeighbourhoodGroups []string
}
