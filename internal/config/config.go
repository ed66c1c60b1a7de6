package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

var (
	// ErrReadConfig is returned when the TOML file cannot be read or decoded
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig is returned when a loaded value fails validation
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config is the full service configuration
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Availability AvailabilityConfig `toml:"availability"`
	Redis        RedisConfig        `toml:"redis"`
	CORS         CORSConfig         `toml:"cors"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
	RequestTimeout  int `toml:"request_timeout"`  // seconds, per-request deadline
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN builds a lib/pq connection string
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type AvailabilityConfig struct {
	// DefaultTimezone is the practice timezone used when a request omits one
	DefaultTimezone        string `toml:"default_timezone"`
	MaxSerializableRetries int    `toml:"max_serializable_retries"`
}

type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	// TTL in seconds. A cached profile is not re-read until it expires, so a
	// therapist deactivated in the database can keep showing availability for
	// up to TTL seconds. Reservations always read the database and are unaffected.
	TTL int `toml:"ttl"`
}

// TTLDuration returns the therapist cache TTL
func (c RedisConfig) TTLDuration() time.Duration {
	return time.Duration(c.TTL) * time.Second
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Load reads path, applies .env and environment overrides, fills defaults and validates.
// A missing .env file is not an error.
func Load(path string, envFiles ...string) (*Config, error) {
	loadDotEnv(envFiles...)

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	applyEnv(cfg)
	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadDotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) > 0 {
		_ = godotenv.Load(existing...)
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("PRACTICE_TIMEZONE"); v != "" {
		cfg.Availability.DefaultTimezone = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logs.Level = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.HTTPPort = port
		}
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.CORS.AllowedOrigins = splitList(v)
	}
}

func applyDefaults(cfg *Config) {
	setDefault(&cfg.Server.HTTPPort, 8080)
	setDefault(&cfg.Server.ReadTimeout, 10)
	setDefault(&cfg.Server.WriteTimeout, 10)
	setDefault(&cfg.Server.IdleTimeout, 60)
	setDefault(&cfg.Server.ShutdownTimeout, 15)
	setDefault(&cfg.Server.RequestTimeout, 5)

	setDefault(&cfg.Database.Port, 5432)
	setDefault(&cfg.Database.MaxOpenConns, 25)
	setDefault(&cfg.Database.MaxIdleConns, 5)
	setDefault(&cfg.Database.ConnMaxLifetime, 300)
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}

	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}

	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "therapy-booking"
	}

	if cfg.Availability.DefaultTimezone == "" {
		cfg.Availability.DefaultTimezone = "UTC"
	}
	setDefault(&cfg.Availability.MaxSerializableRetries, 3)

	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
	setDefault(&cfg.Redis.TTL, 30)

	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{"*"}
	}
}

// Validate checks values that would otherwise fail at request time
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Host == "" {
		return fmt.Errorf("%w: database.host is required", ErrInvalidConfig)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}
	if _, err := time.LoadLocation(c.Availability.DefaultTimezone); err != nil {
		return fmt.Errorf("%w: availability.default_timezone %q: %v", ErrInvalidConfig, c.Availability.DefaultTimezone, err)
	}
	return nil
}

func setDefault(field *int, value int) {
	if *field == 0 {
		*field = value
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}
