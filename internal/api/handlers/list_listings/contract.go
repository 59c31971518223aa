package list_listings

import (
	"context"

	"github.com/m04kA/SMC-StayBookingService/internal/service/listings/models"
)

type ListingService interface {
	List(ctx context.Context, req *models.ListListingsRequest) (*models.ListingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
