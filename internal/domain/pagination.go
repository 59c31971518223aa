package domain

import "math"

// MaxPage верхняя граница номера страницы и лимита, (MaxPage-1)*MaxPage помещается в bigint
const MaxPage = math.MaxInt32

// Pagination параметры постраничной выборки, страницы нумеруются с 1
type Pagination struct {
	Page  int
	Limit int
}

// NewPagination нормализует page/limit: значения меньше 1 заменяются на значения по умолчанию,
// limit ограничивается сверху maxLimit
func NewPagination(page, limit, defaultLimit, maxLimit int) Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit > MaxPage {
		limit = MaxPage
	}
	return Pagination{Page: page, Limit: limit}
}

// Offset смещение для SQL OFFSET
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pages количество страниц: ceil(total / limit)
func (p Pagination) Pages(total int64) int {
	if p.Limit <= 0 || total <= 0 {
		return 0
	}
	limit := int64(p.Limit)
	return int((total + limit - 1) / limit)
}
