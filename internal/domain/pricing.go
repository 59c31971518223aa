package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const day = 24 * time.Hour

// CalculateStay считает количество ночей и итоговую цену.
// Неполные сутки округляются вверх, налоги и сборы не начисляются.
func CalculateStay(checkIn, checkOut time.Time, nightlyRate decimal.Decimal) (int, decimal.Decimal) {
	nights := NightsBetween(checkIn, checkOut)
	return nights, nightlyRate.Mul(decimal.NewFromInt(int64(nights)))
}

// NightsBetween ceil((checkOut - checkIn) / 24h), для непустого интервала не меньше 1.
// Считается по показаниям часов, поэтому переход на летнее/зимнее время не меняет число ночей.
func NightsBetween(checkIn, checkOut time.Time) int {
	diff := wallClock(checkOut).Sub(wallClock(checkIn))
	if diff <= 0 {
		return 0
	}
	nights := int(diff / day)
	if diff%day != 0 {
		nights++
	}
	return nights
}

// wallClock переносит дату и время в UTC без пересчёта смещения
func wallClock(t time.Time) time.Time {
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()
	return time.Date(y, m, d, hh, mm, ss, t.Nanosecond(), time.UTC)
}

// StartOfDay обнуляет время, сохраняя location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
