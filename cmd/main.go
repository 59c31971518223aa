package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-StayBookingService/internal/api/handlers"
	cancelBookingHandler "github.com/m04kA/SMC-StayBookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-StayBookingService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/SMC-StayBookingService/internal/api/handlers/delete_booking"
	getBookingHandler "github.com/m04kA/SMC-StayBookingService/internal/api/handlers/get_booking"
	getListingHandler "github.com/m04kA/SMC-StayBookingService/internal/api/handlers/get_listing"
	listingFiltersHandler "github.com/m04kA/SMC-StayBookingService/internal/api/handlers/get_listing_filters"
	listBookingsHandler "github.com/m04kA/SMC-StayBookingService/internal/api/handlers/list_bookings"
	listListingsHandler "github.com/m04kA/SMC-StayBookingService/internal/api/handlers/list_listings"
	"github.com/m04kA/SMC-StayBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-StayBookingService/internal/config"
	bookingRepo "github.com/m04kA/SMC-StayBookingService/internal/infra/storage/booking"
	listingRepo "github.com/m04kA/SMC-StayBookingService/internal/infra/storage/listing"
	"github.com/m04kA/SMC-StayBookingService/internal/integrations/listingcatalog"
	bookingsService "github.com/m04kA/SMC-StayBookingService/internal/service/bookings"
	listingsService "github.com/m04kA/SMC-StayBookingService/internal/service/listings"
	createBookingUC "github.com/m04kA/SMC-StayBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-StayBookingService/migrations"
	"github.com/m04kA/SMC-StayBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-StayBookingService/pkg/logger"
	"github.com/m04kA/SMC-StayBookingService/pkg/metrics"
	"github.com/m04kA/SMC-StayBookingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-StayBookingService...")

	location, err := cfg.Location()
	if err != nil {
		log.Fatal("Invalid booking timezone: %v", err)
	}

	// Метрики (если включены). nil-коллектор безопасен для всех потребителей.
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(config.Seconds(cfg.Database.ConnMaxLifetime))

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if cfg.Database.AutoMigrate {
		if err := migrations.Up(db); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Database migrations applied")
	}

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil, cfg.Metrics.ServiceName)
	}

	// Репозитории и транзакции
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	listingRepository := listingRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Источник объявлений для создания бронирований
	var catalog createBookingUC.ListingCatalog = listingRepository
	if cfg.Catalog.Source == config.CatalogSourceHTTP {
		catalog = listingcatalog.NewClient(cfg.Catalog.URL, config.Seconds(cfg.Catalog.Timeout), log)
		log.Info("Listing catalog: HTTP %s (timeout=%ds)", cfg.Catalog.URL, cfg.Catalog.Timeout)
	} else {
		log.Info("Listing catalog: postgres")
	}

	// Сервисы и use cases
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		txMgr,
		metricsCollector,
		bookingsService.Options{
			DefaultPageLimit: cfg.Booking.DefaultPageLimit,
			MaxPageLimit:     cfg.Booking.MaxPageLimit,
		},
		log,
	)
	listingSvc := listingsService.NewService(
		listingRepository,
		listingsService.Options{
			MaxPageLimit: cfg.Booking.MaxPageLimit,
			DefaultImage: cfg.Booking.DefaultListingImage,
		},
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalog,
		metricsCollector,
		createBookingUC.Options{
			Location:     location,
			DefaultImage: cfg.Booking.DefaultListingImage,
		},
		log,
	)

	// Handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getListing := getListingHandler.NewHandler(listingSvc, log)
	listListings := listListingsHandler.NewHandler(listingSvc, log)
	listingFilters := listingFiltersHandler.NewHandler(listingSvc, log)

	// Роутер
	r := mux.NewRouter()
	r.Use(middleware.Recover(log))
	r.Use(middleware.RequestLogger(log))
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/", welcome).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// --- Объявления (фильтры до /{id}) ---
	api.HandleFunc("/listings/filters/neighbourhoods", listingFilters.Neighbourhoods).Methods(http.MethodGet)
	api.HandleFunc("/listings/filters/room-types", listingFilters.RoomTypes).Methods(http.MethodGet)
	api.HandleFunc("/listings/{id}", getListing.Handle).Methods(http.MethodGet)
	api.HandleFunc("/listings", listListings.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{id}", deleteBooking.Handle).Methods(http.MethodDelete)

	r.NotFoundHandler = http.HandlerFunc(notFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(notFound)

	// HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      middleware.NewCORSHandler(cfg.CORS.AllowedOrigins)(r),
		ReadTimeout:  config.Seconds(cfg.Server.ReadTimeout),
		WriteTimeout: config.Seconds(cfg.Server.WriteTimeout),
		IdleTimeout:  config.Seconds(cfg.Server.IdleTimeout),
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.Seconds(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

func welcome(w http.ResponseWriter, _ *http.Request) {
	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Welcome to Stay Booking API",
		"endpoints": map[string]string{
			"listings": "/api/listings",
			"bookings": "/api/bookings",
		},
	})
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondNotFound(w, "Route not found")
}
