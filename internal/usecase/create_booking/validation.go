package create_booking

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/m04kA/SMC-StayBookingService/internal/domain"
)

// RequiredFields обязательные поля запроса в порядке проверки
var RequiredFields = []string{"listing_id", "check_in", "check_out", "guest_name", "guest_email", "guests"}

var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,})+$`)

// missingFields возвращает ключи отсутствующих полей.
// Пустая строка после trim и нулевые listing_id/guests считаются отсутствующими.
func missingFields(req *Request) []string {
	missing := make([]string, 0)

	if req.ListingID == nil || *req.ListingID == 0 {
		missing = append(missing, "listing_id")
	}
	if isBlank(req.CheckIn) {
		missing = append(missing, "check_in")
	}
	if isBlank(req.CheckOut) {
		missing = append(missing, "check_out")
	}
	if isBlank(req.GuestName) {
		missing = append(missing, "guest_name")
	}
	if isBlank(req.GuestEmail) {
		missing = append(missing, "guest_email")
	}
	if req.Guests == nil || *req.Guests == 0 {
		missing = append(missing, "guests")
	}

	return missing
}

// Validate проверяет запрос против объявления. Проверки идут по порядку,
// возвращается первая ошибка:
//  1. обязательные поля
//  2. объявление существует (listing != nil)
//  3. даты разбираются
//  4. заезд не раньше today (сравнение по календарным дням)
//  5. выезд позже заезда
//  6. ночей не меньше минимума объявления
//  7. гостей не меньше 1, email корректный
//
// Даты без времени интерпретируются в location значения today.
func Validate(req *Request, listing *domain.Listing, today time.Time) (*ValidatedRequest, error) {
	if missing := missingFields(req); len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	if listing == nil {
		return nil, fmt.Errorf("%w: id=%d", ErrListingNotFound, *req.ListingID)
	}

	loc := today.Location()

	checkIn, err := ParseDate(*req.CheckIn, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: check_in %q", ErrInvalidDate, *req.CheckIn)
	}
	checkOut, err := ParseDate(*req.CheckOut, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: check_out %q", ErrInvalidDate, *req.CheckOut)
	}

	if domain.StartOfDay(checkIn.In(loc)).Before(domain.StartOfDay(today)) {
		return nil, ErrCheckInInPast
	}

	if !checkOut.After(checkIn) {
		return nil, ErrCheckOutNotAfterCheckIn
	}

	nights := domain.NightsBetween(checkIn, checkOut)
	if minNights := listing.EffectiveMinimumNights(); nights < minNights {
		return nil, &MinimumStayError{Required: minNights, Selected: nights}
	}

	if *req.Guests < 1 {
		return nil, ErrInvalidGuests
	}

	email := NormalizeEmail(*req.GuestEmail)
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	return &ValidatedRequest{
		ListingID:   *req.ListingID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		GuestName:   strings.TrimSpace(*req.GuestName),
		GuestEmail:  email,
		Guests:      *req.Guests,
		TotalNights: nights,
	}, nil
}

// ParseDate разбирает YYYY-MM-DD (в loc) или RFC 3339
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(domain.DateFormat, s, loc); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// NormalizeEmail trim + lower-case
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
