package listings

import (
	"context"

	"github.com/m04kA/SMC-StayBookingService/internal/domain"
)

// ListingRepository интерфейс каталога объявлений
type ListingRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Listing, error)
	List(ctx context.Context, filter domain.ListingsFilter, page domain.Pagination) ([]*domain.Listing, int64, error)
	Facets(ctx context.Context) (*domain.ListingFacets, error)
	RoomTypes(ctx context.Context) ([]string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
