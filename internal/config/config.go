package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-GymScheduleService/internal/domain"
)

// FailPolicy поведение при ошибке загрузки расписания тренера
type FailPolicy string

const (
	// FailOpen тренер без загруженного расписания считается свободным
	FailOpen FailPolicy = "open"
	// FailClosed тренер без загруженного расписания исключается из кандидатов
	FailClosed FailPolicy = "closed"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Server       ServerConfig       `toml:"server"`
	Logs         LogsConfig         `toml:"logs"`
	Database     DatabaseConfig     `toml:"database"`
	Metrics      MetricsConfig      `toml:"metrics"`
	GymBackend   GymBackendConfig   `toml:"gym_backend"`
	Availability AvailabilityConfig `toml:"availability"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     d.DBName,
		RawQuery: "sslmode=" + d.SSLMode,
	}
	return u.String()
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type GymBackendConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

type AvailabilityConfig struct {
	BufferMinutes  int        `toml:"buffer_minutes"`
	FetchTimeoutMs int        `toml:"fetch_timeout_ms"`
	MaxConcurrency int        `toml:"max_concurrency"`
	FailPolicy     FailPolicy `toml:"fail_policy"`
}

func (a AvailabilityConfig) Buffer() time.Duration {
	return time.Duration(a.BufferMinutes) * time.Minute
}

func (a AvailabilityConfig) FetchTimeout() time.Duration {
	return time.Duration(a.FetchTimeoutMs) * time.Millisecond
}

// Load читает конфигурацию из TOML файла и применяет значения по умолчанию
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация по умолчанию, поверх которой декодируется файл
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "gym-schedule-service",
		},
		GymBackend: GymBackendConfig{
			Timeout: 10,
		},
		Availability: AvailabilityConfig{
			BufferMinutes:  domain.DefaultBufferMinutes,
			FetchTimeoutMs: 5000,
			MaxConcurrency: 8,
			FailPolicy:     FailOpen,
		},
	}
}

func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range: %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.GymBackend.URL == "" {
		return fmt.Errorf("%w: gym_backend.url is required", ErrInvalidConfig)
	}
	if c.Availability.BufferMinutes < 0 {
		return fmt.Errorf("%w: availability.buffer_minutes must not be negative", ErrInvalidConfig)
	}
	if c.Availability.FetchTimeoutMs <= 0 {
		return fmt.Errorf("%w: availability.fetch_timeout_ms must be positive", ErrInvalidConfig)
	}
	if c.Availability.MaxConcurrency <= 0 {
		return fmt.Errorf("%w: availability.max_concurrency must be positive", ErrInvalidConfig)
	}
	switch c.Availability.FailPolicy {
	case FailOpen, FailClosed:
	default:
		return fmt.Errorf("%w: availability.fail_policy must be %q or %q, got %q",
			ErrInvalidConfig, FailOpen, FailClosed, c.Availability.FailPolicy)
	}
	return nil
}
