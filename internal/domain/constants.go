package domain

const (
	DefaultMinimumNights = 1

	DefaultBookingsPageLimit = 50
	DefaultListingsPageLimit = 20
	DefaultMaxPageLimit      = 100

	DefaultListingImage = "https://images.unsplash.com/photo-1568605114967-8130f3a36994"

	// MoneyScale знаков после запятой в денежных колонках (NUMERIC(_, 2))
	MoneyScale = 2
)

// Форматы дат
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
