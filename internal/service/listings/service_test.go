package listings

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayBookingService/internal/domain"
	listingRepo "github.com/m04kA/SMC-StayBookingService/internal/infra/storage/listing"
	"github.com/m04kA/SMC-StayBookingService/internal/service/listings/models"
	"github.com/m04kA/SMC-StayBookingService/pkg/logger"
)

type mockRepo struct{ mock.Mock }

func (m *mockRepo) FindByID(ctx context.Context, id int64) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	l, _ := args.Get(0).(*domain.Listing)
	return l, args.Error(1)
}

func (m *mockRepo) List(ctx context.Context, filter domain.ListingsFilter, page domain.Pagination) ([]*domain.Listing, int64, error) {
	args := m.Called(ctx, filter, page)
	list, _ := args.Get(0).([]*domain.Listing)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *mockRepo) Facets(ctx context.Context) (*domain.ListingFacets, error) {
	args := m.Called(ctx)
	f, _ := args.Get(0).(*domain.ListingFacets)
	return f, args.Error(1)
}

func (m *mockRepo) RoomTypes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	rt, _ := args.Get(0).([]string)
	return rt, args.Error(1)
}

func TestService_GetByID(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, Options{}, logger.NewNop())

	repo.On("FindByID", mock.Anything, int64(7)).Return(&domain.Listing{
		ID: 7, Name: "Cozy loft", Price: decimal.RequireFromString("99.50"), MinimumNights: 0,
	}, nil)

	resp, err := svc.GetByID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 99.5, resp.Price)
	assert.Equal(t, 1, resp.MinimumNights)
	assert.Equal(t, domain.DefaultListingImage, resp.ImageURL)
}

func TestService_GetByID_NotFound(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, Options{}, logger.NewNop())

	repo.On("FindByID", mock.Anything, int64(404)).Return(nil, listingRepo.ErrListingNotFound)

	_, err := svc.GetByID(context.Background(), 404)

	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestService_List(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, Options{}, logger.NewNop())

	repo.On("List", mock.Anything, mock.MatchedBy(func(f domain.ListingsFilter) bool {
		return f.RoomType != nil && *f.RoomType == "Private room" &&
			f.MinPrice != nil && f.MinPrice.Equal(decimal.NewFromInt(50)) &&
			f.MaxPrice == nil && f.Neighbourhood == nil
	}), domain.Pagination{Page: 1, Limit: 20}).Return([]*domain.Listing{
		{ID: 1, Price: decimal.NewFromInt(60)},
		{ID: 2, Price: decimal.NewFromInt(80)},
	}, int64(2), nil)

	resp, err := svc.List(context.Background(), &models.ListListingsRequest{
		RoomType: "Private room",
		MinPrice: "50",
	})

	require.NoError(t, err)
	assert.Len(t, resp.Listings, 2)
	assert.Equal(t, models.Pagination{Total: 2, Page: 1, Pages: 1, Limit: 20}, resp.Pagination)
}

func TestService_List_InvalidPrice(t *testing.T) {
	tests := []struct {
		name string
		req  models.ListListingsRequest
	}{
		{name: "not a number", req: models.ListListingsRequest{MinPrice: "cheap"}},
		{name: "negative", req: models.ListListingsRequest{MaxPrice: "-1"}},
		{name: "inverted range", req: models.ListListingsRequest{MinPrice: "200", MaxPrice: "100"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{}
			svc := NewService(repo, Options{}, logger.NewNop())

			_, err := svc.List(context.Background(), &tt.req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestService_Facets(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, Options{}, logger.NewNop())

	repo.On("Facets", mock.Anything).Return(&domain.ListingFacets{
		Neighbourhoods: []string{"Harlem", "Midtown"},
	}, nil)
	repo.On("RoomTypes", mock.Anything).Return(nil, errors.New("timeout"))

	n, err := svc.Neighbourhoods(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Harlem", "Midtown"}, n.Neighbourhoods)
	assert.NotNil(t, n.NeighbourhoodGroups)

	_, err = svc.RoomTypes(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
