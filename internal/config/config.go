package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix префикс переменных окружения, например BOOKING_DATABASE_PASSWORD
	EnvPrefix = "BOOKING"

	CatalogSourcePostgres = "postgres"
	CatalogSourceHTTP     = "http"
)

// ErrInvalidConfig конфигурация не прошла проверку
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Catalog  CatalogConfig  `toml:"catalog"`
	Booking  BookingConfig  `toml:"booking"`
	CORS     CORSConfig     `toml:"cors"`
}

// ServerConfig HTTP сервер, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" envconfig:"HTTP_PORT"`
	ReadTimeout     int `toml:"read_timeout" envconfig:"HTTP_READ_TIMEOUT"`
	WriteTimeout    int `toml:"write_timeout" envconfig:"HTTP_WRITE_TIMEOUT"`
	IdleTimeout     int `toml:"idle_timeout" envconfig:"HTTP_IDLE_TIMEOUT"`
	ShutdownTimeout int `toml:"shutdown_timeout" envconfig:"HTTP_SHUTDOWN_TIMEOUT"`
}

// DatabaseConfig подключение к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host" envconfig:"DB_HOST"`
	Port            int    `toml:"port" envconfig:"DB_PORT"`
	User            string `toml:"user" envconfig:"DB_USER"`
	Password        string `toml:"password" envconfig:"DB_PASSWORD"`
	DBName          string `toml:"dbname" envconfig:"DB_NAME"`
	SSLMode         string `toml:"sslmode" envconfig:"DB_SSLMODE"`
	MaxOpenConns    int    `toml:"max_open_conns" envconfig:"DB_MAX_OPEN_CONNS"`
	MaxIdleConns    int    `toml:"max_idle_conns" envconfig:"DB_MAX_IDLE_CONNS"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" envconfig:"DB_CONN_MAX_LIFETIME"` // секунды
	AutoMigrate     bool   `toml:"auto_migrate" envconfig:"DB_AUTO_MIGRATE"`
}

// LogsConfig логирование
type LogsConfig struct {
	Level string `toml:"level" envconfig:"LOG_LEVEL"`
	File  string `toml:"file" envconfig:"LOG_FILE"`
}

// MetricsConfig prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" envconfig:"METRICS_ENABLED"`
	Path        string `toml:"path" envconfig:"METRICS_PATH"`
	ServiceName string `toml:"service_name" envconfig:"METRICS_SERVICE_NAME"`
}

// CatalogConfig источник объявлений: таблица listings или внешний HTTP-сервис
type CatalogConfig struct {
	Source  string `toml:"source" envconfig:"CATALOG_SOURCE"`
	URL     string `toml:"url" envconfig:"CATALOG_URL"`
	Timeout int    `toml:"timeout" envconfig:"CATALOG_TIMEOUT"` // секунды
}

// BookingConfig правила выдачи бронирований
type BookingConfig struct {
	Timezone            string `toml:"timezone" envconfig:"BOOKING_TIMEZONE"`
	DefaultPageLimit    int    `toml:"default_page_limit" envconfig:"BOOKING_DEFAULT_PAGE_LIMIT"`
	MaxPageLimit        int    `toml:"max_page_limit" envconfig:"BOOKING_MAX_PAGE_LIMIT"`
	DefaultListingImage string `toml:"default_listing_image" envconfig:"DEFAULT_LISTING_IMAGE"`
}

// CORSConfig разрешенные источники, пустой список разрешает все
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins" envconfig:"CORS_ALLOWED_ORIGINS"`
}

// Default значения по умолчанию, поверх которых читается файл
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        5000,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "stay_booking",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			AutoMigrate:     true,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "stay-booking-service",
		},
		Catalog: CatalogConfig{
			Source:  CatalogSourcePostgres,
			Timeout: 5,
		},
		Booking: BookingConfig{
			Timezone:         "UTC",
			DefaultPageLimit: 50,
			MaxPageLimit:     100,
		},
	}
}

// Load читает конфигурацию: значения по умолчанию, затем TOML-файл,
// затем .env (если есть) и переменные окружения.
func Load(path string) (*Config, error) {
	return load(path, ".env")
}

func load(path, envFile string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: failed to load %s: %w", envFile, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to process environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("%w: server.http_port must be positive", ErrInvalidConfig)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	if c.Database.Port <= 0 {
		return fmt.Errorf("%w: database.port must be positive", ErrInvalidConfig)
	}

	switch c.Catalog.Source {
	case CatalogSourcePostgres:
	case CatalogSourceHTTP:
		if _, err := url.ParseRequestURI(c.Catalog.URL); err != nil {
			return fmt.Errorf("%w: catalog.url is required for http source: %v", ErrInvalidConfig, err)
		}
	default:
		return fmt.Errorf("%w: unknown catalog.source %q", ErrInvalidConfig, c.Catalog.Source)
	}

	if _, err := c.Location(); err != nil {
		return fmt.Errorf("%w: booking.timezone: %v", ErrInvalidConfig, err)
	}
	if c.Booking.MaxPageLimit < 1 {
		return fmt.Errorf("%w: booking.max_page_limit must be positive", ErrInvalidConfig)
	}

	return nil
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Location часовой пояс для календарных дат бронирований
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Booking.Timezone)
}

// Seconds переводит значение конфигурации в time.Duration
func Seconds(v int) time.Duration {
	return time.Duration(v) * time.Second
}
