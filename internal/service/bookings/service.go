package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StayBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-StayBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-StayBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-StayBookingService/pkg/ptr"
)

// Options настройки постраничной выдачи
type Options struct {
	DefaultPageLimit int
	MaxPageLimit     int
}

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	metrics     MetricsRecorder
	opts        Options
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	opts Options,
	logger Logger,
) *Service {
	if opts.DefaultPageLimit < 1 {
		opts.DefaultPageLimit = domain.DefaultBookingsPageLimit
	}
	if opts.MaxPageLimit < 1 {
		opts.MaxPageLimit = domain.DefaultMaxPageLimit
	}

	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		metrics:     metrics,
		opts:        opts,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.repoError("GetByID", id, err)
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// List возвращает страницу бронирований, новые первыми.
// Фильтры по email и статусу объединяются через AND.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings guest_email=%q, status=%q, page=%d, limit=%d",
		req.GuestEmail, req.Status, req.Page, req.Limit)

	var filter domain.BookingsFilter

	if email := strings.ToLower(strings.TrimSpace(req.GuestEmail)); email != "" {
		filter.GuestEmail = ptr.Ptr(email)
	}

	if req.Status != "" {
		status, err := domain.ParseBookingStatus(req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%q", req.Status)
			return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, req.Status)
		}
		filter.Status = &status
	}

	page := domain.NewPagination(req.Page, req.Limit, s.opts.DefaultPageLimit, s.opts.MaxPageLimit)

	bookings, total, err := s.bookingRepo.List(ctx, filter, page)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d of %d bookings", len(bookings), total)
	return models.FromDomainBookingList(bookings, total, page), nil
}

// Cancel переводит бронирование в статус cancelled.
// Чтение и запись выполняются в одной транзакции, строка блокируется FOR UPDATE.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%s", id)

	var cancelled *domain.Booking
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		if err := booking.Cancel(); err != nil {
			return err
		}

		cancelled, err = s.bookingRepo.UpdateStatus(txCtx, id, booking.Status)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyCancelled):
			s.logger.Warn("Cancel: booking id=%s is already cancelled", id)
			return nil, ErrAlreadyCancelled
		case errors.Is(err, domain.ErrInvalidTransition):
			s.logger.Warn("Cancel: booking id=%s cannot be cancelled", id)
			return nil, ErrCannotCancel
		default:
			return nil, s.repoError("Cancel", id, err)
		}
	}

	s.metrics.BookingCancelled()
	s.logger.Info("Cancel: successfully cancelled booking id=%s", id)
	return models.FromDomainBooking(cancelled), nil
}

// Delete удаляет бронирование в любом статусе и возвращает удаленную запись
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (*models.BookingResponse, error) {
	s.logger.Info("Delete: deleting booking id=%s", id)

	deleted, err := s.bookingRepo.Delete(ctx, id)
	if err != nil {
		return nil, s.repoError("Delete", id, err)
	}

	s.metrics.BookingDeleted()
	s.logger.Info("Delete: successfully deleted booking id=%s, status was %s", id, deleted.Status)
	return models.FromDomainBooking(deleted), nil
}

func (s *Service) repoError(op string, id uuid.UUID, err error) error {
	if errors.Is(err, bookingRepo.ErrBookingNotFound) {
		s.logger.Warn("%s: booking id=%s not found", op, id)
		return ErrBookingNotFound
	}
	s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
