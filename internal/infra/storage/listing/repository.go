package listing

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-StayBookingService/internal/domain"
	"github.com/m04kA/SMC-StayBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-StayBookingService/pkg/psqlbuilder"
)

const tableListings = "listings"

var listingColumns = []string{
	"id",
	"name",
	"host_id",
	"host_name",
	"neighbourhood_group",
	"neighbourhood",
	"latitude",
	"longitude",
	"room_type",
	"price",
	"minimum_nights",
	"number_of_reviews",
	"last_review",
	"reviews_per_month",
	"calculated_host_listings_count",
	"availability_365",
	"image_url",
}

// likeEscaper экранирует спецсимволы LIKE в пользовательском поиске
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Repository каталог объявлений (только чтение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория объявлений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindByID получает объявление по ID
func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.Listing, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(listingColumns...).
		From(tableListings).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindByID - build select query: %v", ErrBuildQuery, err)
	}

	listing, err := scanListing(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrListingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindByID - scan listing: %v", ErrScanRow, err)
	}

	return listing, nil
}

// List возвращает страницу объявлений, отсортированных по цене, и общее количество
func (r *Repository) List(ctx context.Context, filter domain.ListingsFilter, page domain.Pagination) ([]*domain.Listing, int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	conditions := buildConditions(filter)

	countBuilder := psqlbuilder.Select("COUNT(*)").From(tableListings)
	selectBuilder := psqlbuilder.Select(listingColumns...).
		From(tableListings).
		OrderBy("price ASC", "id ASC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset()))

	if len(conditions) > 0 {
		countBuilder = countBuilder.Where(conditions)
		selectBuilder = selectBuilder.Where(conditions)
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build count query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: List - count listings: %v", ErrExecQuery, err)
	}

	if total == 0 {
		return make([]*domain.Listing, 0), 0, nil
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	listings := make([]*domain.Listing, 0, page.Limit)
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		listings = append(listings, listing)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return listings, total, nil
}

// Facets возвращает отсортированные уникальные районы и группы районов
func (r *Repository) Facets(ctx context.Context) (*domain.ListingFacets, error) {
	neighbourhoods, err := r.distinct(ctx, "neighbourhood")
	if err != nil {
		return nil, err
	}

	groups, err := r.distinct(ctx, "neighbourhood_group")
	if err != nil {
		return nil, err
	}

	return &domain.ListingFacets{
		Neighbourhoods:      neighbourhoods,
		NeighbourhoodGroups: groups,
	}, nil
}

// RoomTypes возвращает отсортированные уникальные типы жилья
func (r *Repository) RoomTypes(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "room_type")
}

func (r *Repository) distinct(ctx context.Context, column string) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT " + column).
		From(tableListings).
		Where(squirrel.NotEq{column: ""}).
		OrderBy(column + " ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: distinct(%s) - build select query: %v", ErrBuildQuery, column, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: distinct(%s) - execute query: %v", ErrExecQuery, column, err)
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("%w: distinct(%s) - scan value: %v", ErrScanRow, column, err)
		}
		values = append(values, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: distinct(%s) - rows error: %v", ErrScanRow, column, err)
	}

	return values, nil
}

func buildConditions(filter domain.ListingsFilter) squirrel.And {
	conditions := squirrel.And{}

	if filter.Neighbourhood != nil {
		conditions = append(conditions, squirrel.Eq{"neighbourhood": *filter.Neighbourhood})
	}
	if filter.NeighbourhoodGroup != nil {
		conditions = append(conditions, squirrel.Eq{"neighbourhood_group": *filter.NeighbourhoodGroup})
	}
	if filter.RoomType != nil {
		conditions = append(conditions, squirrel.Eq{"room_type": *filter.RoomType})
	}
	if filter.MinPrice != nil {
		conditions = append(conditions, squirrel.GtOrEq{"price": filter.MinPrice.String()})
	}
	if filter.MaxPrice != nil {
		conditions = append(conditions, squirrel.LtOrEq{"price": filter.MaxPrice.String()})
	}
	if filter.Search != nil && *filter.Search != "" {
		conditions = append(conditions, squirrel.ILike{"name": "%" + likeEscaper.Replace(*filter.Search) + "%"})
	}

	return conditions
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanListing(row rowScanner) (*domain.Listing, error) {
	var (
		listing         domain.Listing
		lastReview      sql.NullTime
		reviewsPerMonth sql.NullFloat64
		imageURL        sql.NullString
	)

	err := row.Scan(
		&listing.ID,
		&listing.Name,
		&listing.HostID,
		&listing.HostName,
		&listing.NeighbourhoodGroup,
		&listing.Neighbourhood,
		&listing.Latitude,
		&listing.Longitude,
		&listing.RoomType,
		&listing.Price,
		&listing.MinimumNights,
		&listing.NumberOfReviews,
		&lastReview,
		&reviewsPerMonth,
		&listing.CalculatedHostListingsCount,
		&listing.Availability365,
		&imageURL,
	)
	if err != nil {
		return nil, err
	}

	if lastReview.Valid {
		listing.LastReview = &lastReview.Time
	}
	if reviewsPerMonth.Valid {
		listing.ReviewsPerMonth = &reviewsPerMonth.Float64
	}
	if imageURL.Valid {
		listing.ImageURL = &imageURL.String
	}

	return &listing, nil
}
