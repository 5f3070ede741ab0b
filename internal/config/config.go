package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/knows-studios/KNS-BookingService/internal/domain"
)

// Config конфигурация сервиса, загружается из TOML файла
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Studio   StudioConfig   `toml:"studio"`
	Booking  BookingConfig  `toml:"booking"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN возвращает строку подключения к PostgreSQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StudioConfig реквизиты студии, используются в тексте подтверждения
type StudioConfig struct {
	Name    string `toml:"name"`
	Address string `toml:"address"`
	Email   string `toml:"email"`
	Phone   string `toml:"phone"`
}

// BookingConfig настройки бизнес-логики бронирования
type BookingConfig struct {
	// CatalogPath путь к TOML файлу каталога (пакеты, допуслуги, слоты).
	// Пустое значение - используется встроенный каталог по умолчанию.
	CatalogPath string `toml:"catalog_path"`

	// BlockedDates даты, недоступные для бронирования, в формате YYYY-MM-DD
	BlockedDates []string `toml:"blocked_dates"`

	// ExternalBookingURL страница внешней booking-платформы,
	// которую клиент открывает после завершения бронирования
	ExternalBookingURL string `toml:"external_booking_url"`

	// RedirectDelaySeconds задержка перед переходом на внешнюю платформу
	RedirectDelaySeconds int `toml:"redirect_delay_seconds"`

	// DraftTTLHours окно свежести черновика
	DraftTTLHours int `toml:"draft_ttl_hours"`

	// DraftCleanupSchedule cron-выражение фоновой очистки устаревших черновиков.
	// Пустое значение - очистка выключена.
	DraftCleanupSchedule string `toml:"draft_cleanup_schedule"`
}

// Load загружает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "kns-booking-service"
	}
	if cfg.Studio.Name == "" {
		cfg.Studio.Name = "KNOWS STUDIOS"
	}
	if cfg.Booking.RedirectDelaySeconds == 0 {
		cfg.Booking.RedirectDelaySeconds = 5
	}
	if cfg.Booking.DraftTTLHours == 0 {
		cfg.Booking.DraftTTLHours = domain.DefaultDraftTTLHours
	}
}

func validate(cfg *Config) error {
	if cfg.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if cfg.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}
	if cfg.Logs.File == "" {
		return fmt.Errorf("config: logs.file is required")
	}
	if cfg.Booking.ExternalBookingURL == "" {
		return fmt.Errorf("config: booking.external_booking_url is required")
	}
	return nil
}
