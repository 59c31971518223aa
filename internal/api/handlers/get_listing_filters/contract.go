package get_listing_filters

import (
	"context"

	"github.com/m04kA/SMC-StayBookingService/internal/service/listings/models"
)

type ListingService interface {
	Neighbourhoods(ctx context.Context) (*models.NeighbourhoodsResponse, error)
	RoomTypes(ctx context.Context) ([]string, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
