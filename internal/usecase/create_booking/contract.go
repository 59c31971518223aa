package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StayBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// ListingCatalog каталог объявлений (Postgres или внешний HTTP-сервис)
type ListingCatalog interface {
	FindByID(ctx context.Context, id int64) (*domain.Listing, error)
}

// MetricsRecorder бизнес-метрики создания бронирований
type MetricsRecorder interface {
	BookingCreated()
	ValidationFailed(reason string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
