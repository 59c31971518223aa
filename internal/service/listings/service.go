package listings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StayBookingService/internal/domain"
	listingRepo "github.com/m04kA/SMC-StayBookingService/internal/infra/storage/listing"
	"github.com/m04kA/SMC-StayBookingService/internal/service/listings/models"
)

// Options настройки выдачи каталога
type Options struct {
	DefaultPageLimit int
	MaxPageLimit     int
	DefaultImage     string
}

// Service сервис каталога объявлений (только чтение)
type Service struct {
	repo   ListingRepository
	opts   Options
	logger Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(repo ListingRepository, opts Options, logger Logger) *Service {
	if opts.DefaultPageLimit < 1 {
		opts.DefaultPageLimit = domain.DefaultListingsPageLimit
	}
	if opts.MaxPageLimit < 1 {
		opts.MaxPageLimit = domain.DefaultMaxPageLimit
	}
	if opts.DefaultImage == "" {
		opts.DefaultImage = domain.DefaultListingImage
	}

	return &Service{repo: repo, opts: opts, logger: logger}
}

// GetByID возвращает объявление по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ListingResponse, error) {
	s.logger.Info("GetListing: fetching listing id=%d", id)

	listing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, listingRepo.ErrListingNotFound) {
			s.logger.Warn("GetListing: listing id=%d not found", id)
			return nil, ErrListingNotFound
		}
		s.logger.Error("GetListing: repository error for listing id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainListing(listing, s.opts.DefaultImage), nil
}

// List возвращает страницу каталога, отсортированную по цене
func (s *Service) List(ctx context.Context, req *models.ListListingsRequest) (*models.ListingListResponse, error) {
	filter, err := toDomainFilter(req)
	if err != nil {
		s.logger.Warn("ListListings: invalid filter: %v", err)
		return nil, err
	}

	page := domain.NewPagination(req.Page, req.Limit, s.opts.DefaultPageLimit, s.opts.MaxPageLimit)

	listings, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		s.logger.Error("ListListings: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	result := make([]*models.ListingResponse, 0, len(listings))
	for _, l := range listings {
		result = append(result, models.FromDomainListing(l, s.opts.DefaultImage))
	}

	s.logger.Info("ListListings: fetched %d of %d listings, page=%d", len(result), total, page.Page)
	return &models.ListingListResponse{
		Listings: result,
		Pagination: models.Pagination{
			Total: total,
			Page:  page.Page,
			Pages: page.Pages(total),
			Limit: page.Limit,
		},
	}, nil
}

// Neighbourhoods возвращает значения для фильтров по району
func (s *Service) Neighbourhoods(ctx context.Context) (*models.NeighbourhoodsResponse, error) {
	facets, err := s.repo.Facets(ctx)
	if err != nil {
		s.logger.Error("Neighbourhoods: repository error: %v", err)
		return nil, fmt.Errorf("%w: Neighbourhoods - repository error: %v", ErrInternal, err)
	}

	return &models.NeighbourhoodsResponse{
		Neighbourhoods:      nonNil(facets.Neighbourhoods),
		NeighbourhoodGroups: nonNil(facets.NeighbourhoodGroups),
	}, nil
}

// RoomTypes возвращает значения для фильтра по типу жилья
func (s *Service) RoomTypes(ctx context.Context) ([]string, error) {
	roomTypes, err := s.repo.RoomTypes(ctx)
	if err != nil {
		s.logger.Error("RoomTypes: repository error: %v", err)
		return nil, fmt.Errorf("%w: RoomTypes - repository error: %v", ErrInternal, err)
	}

	return nonNil(roomTypes), nil
}

func toDomainFilter(req *models.ListListingsRequest) (domain.ListingsFilter, error) {
	var filter domain.ListingsFilter

	filter.Neighbourhood = optional(req.Neighbourhood)
	filter.NeighbourhoodGroup = optional(req.NeighbourhoodGroup)
	filter.RoomType = optional(req.RoomType)
	filter.Search = optional(req.Search)

	var err error
	if filter.MinPrice, err = parsePrice("min_price", req.MinPrice); err != nil {
		return filter, err
	}
	if filter.MaxPrice, err = parsePrice("max_price", req.MaxPrice); err != nil {
		return filter, err
	}
	if filter.MinPrice != nil && filter.MaxPrice != nil && filter.MinPrice.GreaterThan(*filter.MaxPrice) {
		return filter, fmt.Errorf("%w: min_price is greater than max_price", ErrInvalidInput)
	}

	return filter, nil
}

func parsePrice(name, raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return nil, fmt.Errorf("%w: %s must be a non-negative number", ErrInvalidInput, name)
	}
	return &d, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
