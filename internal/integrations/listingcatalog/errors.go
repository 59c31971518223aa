package listingcatalog

import "errors"

var (
	// ErrListingNotFound возвращается, когда каталог не знает объявление
	ErrListingNotFound = errors.New("listingcatalog client: listing not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("listingcatalog client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от каталога
	ErrInvalidResponse = errors.New("listingcatalog client: invalid response")
)
