package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingStatus статус бронирования
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

var (
	// ErrAlreadyCancelled повторная отмена уже отмененного бронирования
	ErrAlreadyCancelled = errors.New("domain: booking is already cancelled")

	// ErrInvalidTransition переход между статусами не разрешен
	ErrInvalidTransition = errors.New("domain: invalid booking status transition")

	// ErrUnknownStatus строка не является статусом бронирования
	ErrUnknownStatus = errors.New("domain: unknown booking status")
)

// validTransitions допустимые переходы статусов.
// В completed переводит только внешнее администрирование, сервис такой переход не выполняет.
var validTransitions = map[BookingStatus][]BookingStatus{
	StatusConfirmed: {StatusCancelled, StatusCompleted},
	StatusCancelled: {},
	StatusCompleted: {},
}

// ParseBookingStatus разбирает статус из строки
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.IsValid() {
		return "", ErrUnknownStatus
	}
	return status, nil
}

// IsValid проверяет, что статус входит в перечисление
func (s BookingStatus) IsValid() bool {
	_, ok := validTransitions[s]
	return ok
}

// CanTransitionTo проверяет допустимость перехода
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal true, если из статуса нет переходов
func (s BookingStatus) IsTerminal() bool {
	return len(validTransitions[s]) == 0
}

func (s BookingStatus) String() string {
	return string(s)
}

// Booking бронирование жилья гостем
type Booking struct {
	ID        uuid.UUID
	ListingID int64

	// Снимок данных объявления на момент бронирования
	ListingName   string
	ListingImage  string
	PricePerNight decimal.Decimal

	CheckIn    time.Time
	CheckOut   time.Time
	GuestName  string
	GuestEmail string
	Guests     int

	TotalNights int
	TotalPrice  decimal.Decimal
	BookingDate time.Time
	Status      BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanBeCancelled true, если бронирование можно отменить
func (b *Booking) CanBeCancelled() bool {
	return b.Status.CanTransitionTo(StatusCancelled)
}

// IsCancelled true, если бронирование отменено
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// Cancel переводит бронирование в cancelled.
// При ошибке статус не меняется.
func (b *Booking) Cancel() error {
	if b.IsCancelled() {
		return ErrAlreadyCancelled
	}
	if !b.CanBeCancelled() {
		return ErrInvalidTransition
	}
	b.Status = StatusCancelled
	return nil
}

// BookingsFilter фильтр списка бронирований, условия объединяются через AND
type BookingsFilter struct {
	GuestEmail *string
	Status     *BookingStatus
}
