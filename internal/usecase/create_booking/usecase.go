package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StayBookingService/internal/domain"
	listingRepo "github.com/m04kA/SMC-StayBookingService/internal/infra/storage/listing"
	"github.com/m04kA/SMC-StayBookingService/internal/integrations/listingcatalog"
)

// Options настройки use case
type Options struct {
	Location     *time.Location // часовой пояс для календарных дат, по умолчанию UTC
	DefaultImage string         // картинка, если у объявления её нет
}

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	catalog      ListingCatalog
	metrics      MetricsRecorder
	timeProvider TimeProvider
	location     *time.Location
	defaultImage string
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalog ListingCatalog,
	metrics MetricsRecorder,
	opts Options,
	logger Logger,
) *UseCase {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.DefaultImage == "" {
		opts.DefaultImage = domain.DefaultListingImage
	}

	return &UseCase{
		bookingRepo:  bookingRepo,
		catalog:      catalog,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		location:     opts.Location,
		defaultImage: opts.DefaultImage,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Ошибка валидации прерывает выполнение до записи в хранилище.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Проверяем обязательные поля до обращения к каталогу
	if missing := missingFields(req); len(missing) > 0 {
		err := &MissingFieldsError{Fields: missing}
		uc.rejected(err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: listing=%d, check_in=%s, check_out=%s, guests=%d",
		*req.ListingID, *req.CheckIn, *req.CheckOut, *req.Guests)

	// 2. Получаем объявление
	listing, err := uc.catalog.FindByID(ctx, *req.ListingID)
	if err != nil {
		if !isListingNotFound(err) {
			uc.logger.Error("CreateBooking: failed to get listing id=%d: %v", *req.ListingID, err)
			return nil, fmt.Errorf("%w: failed to get listing: %v", ErrInternal, err)
		}
		listing = nil
	}

	// 3. Валидация относительно объявления и текущей даты
	now := uc.timeProvider.Now().In(uc.location)
	validated, err := Validate(req, listing, now)
	if err != nil {
		uc.rejected(err)
		return nil, err
	}

	// 4. Считаем стоимость, цена за ночь хранится с точностью до копеек
	pricePerNight := listing.Price.Round(domain.MoneyScale)
	nights, total := domain.CalculateStay(validated.CheckIn, validated.CheckOut, pricePerNight)

	// 5. Собираем бронирование со снимком данных объявления
	booking := &domain.Booking{
		ListingID:     listing.ID,
		ListingName:   listing.Name,
		ListingImage:  listing.ImageOrDefault(uc.defaultImage),
		PricePerNight: pricePerNight,
		CheckIn:       validated.CheckIn,
		CheckOut:      validated.CheckOut,
		GuestName:     validated.GuestName,
		GuestEmail:    validated.GuestEmail,
		Guests:        validated.Guests,
		TotalNights:   nights,
		TotalPrice:    total,
		BookingDate:   now,
		Status:        domain.StatusConfirmed,
	}

	// 6. Сохраняем
	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking for listing=%d: %v", listing.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	uc.metrics.BookingCreated()
	uc.logger.Info("CreateBooking: successfully created booking id=%s, nights=%d, total=%s",
		created.ID, created.TotalNights, created.TotalPrice.String())

	return toResponse(created), nil
}

func (uc *UseCase) rejected(err error) {
	uc.metrics.ValidationFailed(failureReason(err))
	uc.logger.Warn("CreateBooking: validation failed: %v", err)
}

func isListingNotFound(err error) bool {
	return errors.Is(err, listingRepo.ErrListingNotFound) ||
		errors.Is(err, listingcatalog.ErrListingNotFound)
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:            b.ID,
		ListingID:     b.ListingID,
		ListingName:   b.ListingName,
		ListingImage:  b.ListingImage,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		GuestName:     b.GuestName,
		GuestEmail:    b.GuestEmail,
		Guests:        b.Guests,
		TotalNights:   b.TotalNights,
		PricePerNight: b.PricePerNight,
		TotalPrice:    b.TotalPrice,
		BookingDate:   b.BookingDate,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
