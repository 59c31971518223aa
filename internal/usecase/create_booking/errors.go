package create_booking

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingFields не переданы обязательные поля
	ErrMissingFields = errors.New("create_booking: missing required fields")

	// ErrListingNotFound объявление не найдено в каталоге
	ErrListingNotFound = errors.New("create_booking: listing not found")

	// ErrInvalidDate дата заезда или выезда не разбирается
	ErrInvalidDate = errors.New("create_booking: invalid date")

	// ErrCheckInInPast дата заезда раньше сегодняшнего дня
	ErrCheckInInPast = errors.New("create_booking: check-in date is in the past")

	// ErrCheckOutNotAfterCheckIn дата выезда не позже даты заезда
	ErrCheckOutNotAfterCheckIn = errors.New("create_booking: check-out date must be after check-in date")

	// ErrBelowMinimumStay ночей меньше минимального срока объявления
	ErrBelowMinimumStay = errors.New("create_booking: below minimum stay")

	// ErrInvalidGuests количество гостей меньше 1
	ErrInvalidGuests = errors.New("create_booking: at least 1 guest is required")

	// ErrInvalidEmail email не проходит проверку формата
	ErrInvalidEmail = errors.New("create_booking: invalid email address")

	// ErrPersistence ошибка сохранения бронирования, запрос можно повторить
	ErrPersistence = errors.New("create_booking: failed to persist booking")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// MissingFieldsError перечисляет отсутствующие обязательные поля
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingFields, strings.Join(e.Fields, ", "))
}

func (e *MissingFieldsError) Unwrap() error {
	return ErrMissingFields
}

// MinimumStayError содержит требуемый минимум и выбранное количество ночей
type MinimumStayError struct {
	Required int
	Selected int
}

func (e *MinimumStayError) Error() string {
	return fmt.Sprintf("%s: requires minimum stay of %d night(s), you selected %d", ErrBelowMinimumStay, e.Required, e.Selected)
}

func (e *MinimumStayError) Unwrap() error {
	return ErrBelowMinimumStay
}

// Message текст ошибки для клиента
func (e *MinimumStayError) Message() string {
	return fmt.Sprintf("This property requires a minimum stay of %d night(s). You selected %d night(s).", e.Required, e.Selected)
}

// failureReason метка причины отказа для метрик
func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrMissingFields):
		return "missing_fields"
	case errors.Is(err, ErrListingNotFound):
		return "listing_not_found"
	case errors.Is(err, ErrInvalidDate):
		return "invalid_date"
	case errors.Is(err, ErrCheckInInPast):
		return "check_in_in_past"
	case errors.Is(err, ErrCheckOutNotAfterCheckIn):
		return "check_out_not_after_check_in"
	case errors.Is(err, ErrBelowMinimumStay):
		return "below_minimum_stay"
	case errors.Is(err, ErrInvalidGuests):
		return "invalid_guests"
	case errors.Is(err, ErrInvalidEmail):
		return "invalid_email"
	default:
		return "other"
	}
}
