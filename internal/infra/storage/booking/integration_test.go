//go:build integration

package booking_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/m04kA/SMC-StayBookingService/internal/domain"
	"github.com/m04kA/SMC-StayBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-StayBookingService/migrations"
	"github.com/m04kA/SMC-StayBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-StayBookingService/pkg/txmanager"
)

const (
	testUser     = "booking"
	testPassword = "booking"
	testDB       = "stay_booking"
)

func startPostgres(t *testing.T) *sql.DB {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	dsn := func(host string, port nat.Port) string {
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			host, port.Port(), testUser, testPassword, testDB)
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       testDB,
			},
			WaitingFor: wait.ForSQL("5432/tcp", "postgres", dsn).WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	db, err := sql.Open("postgres", dsn(host, port))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migrations.Up(db))
	return db
}

func TestRepository_Postgres(t *testing.T) {
	db := dbmetrics.Wrap(startPostgres(t), nil, "test")
	repo := booking.NewRepository(db)
	tx := txmanager.NewTransactionManager(db)
	ctx := context.Background()

	checkIn := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)
	created, err := repo.Create(ctx, &domain.Booking{
		ListingID:     7,
		ListingName:   "Cozy loft",
		ListingImage:  domain.DefaultListingImage,
		PricePerNight: decimal.RequireFromString("100.50"),
		CheckIn:       checkIn,
		CheckOut:      checkIn.AddDate(0, 0, 3),
		GuestName:     "Ann",
		GuestEmail:    "ann@example.com",
		Guests:        2,
		TotalNights:   3,
		TotalPrice:    decimal.RequireFromString("301.50"),
		BookingDate:   time.Now().UTC(),
		Status:        domain.StatusConfirmed,
	})
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, got.TotalPrice.Equal(decimal.RequireFromString("301.50")))
	assert.True(t, got.CheckIn.Equal(checkIn))

	email := "ann@example.com"
	list, total, err := repo.List(ctx, domain.BookingsFilter{GuestEmail: &email}, domain.Pagination{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, list, 1)

	err = tx.Do(ctx, func(txCtx context.Context) error {
		b, err := repo.GetByID(txCtx, created.ID)
		if err != nil {
			return err
		}
		if err := b.Cancel(); err != nil {
			return err
		}
		_, err = repo.UpdateStatus(txCtx, b.ID, b.Status)
		return err
	})
	require.NoError(t, err)

	got, err = repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, got.Status)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, booking.ErrBookingNotFound)
}
