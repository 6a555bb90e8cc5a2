package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") != "" || os.Getenv("RENDER") != "" {
		log.Println("running on managed platform, using system ENV")
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system ENV")
	} else {
		log.Println(".env file loaded")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || strings.TrimSpace(value) == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func getEnvInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return i, nil
}

func getEnvBool(key string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "":
		return def
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func getEnvDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

// =======================
// CONFIG
// =======================

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type DatabaseConfig struct {
	Driver       string
	DSN          string // sqlite file / DSN; for postgres an explicit URL overrides the parts below
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	AutoMigrate  bool
}

// PostgresDSN builds the connection URL with a statement timeout.
func (c DatabaseConfig) PostgresDSN() string {
	if c.DSN != "" {
		return c.DSN
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=careconnect&options=-c%%20statement_timeout%%3D3000",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

type KeepAliveConfig struct {
	URL      string
	Schedule string
	Timeout  time.Duration
}

func (k KeepAliveConfig) Enabled() bool { return k.URL != "" }

type Config struct {
	AppName        string
	Port           string
	LogLevel       string
	LogFormat      string
	RequestTimeout time.Duration
	CORSOrigins    string
	RateLimitMax   int

	Database  DatabaseConfig
	KeepAlive KeepAliveConfig
}

// Load reads the process environment. Call LoadEnv first to pick up .env.
func Load() (Config, error) {
	cfg := Config{
		AppName:     GetEnv("APP_NAME", "careconnect"),
		Port:        GetEnv("PORT", "8000"),
		LogLevel:    strings.ToLower(GetEnv("LOG_LEVEL", "info")),
		LogFormat:   strings.ToLower(GetEnv("LOG_FORMAT", "json")),
		CORSOrigins: GetEnv("CORS_ALLOW_ORIGINS", "*"),
		Database: DatabaseConfig{
			Driver:      strings.ToLower(GetEnv("DB_DRIVER", DriverSQLite)),
			DSN:         GetEnv("DB_DSN"),
			Host:        GetEnv("DB_HOST", "localhost"),
			Port:        GetEnv("DB_PORT", "5432"),
			User:        GetEnv("DB_USER"),
			Password:    GetEnv("DB_PASSWORD"),
			Name:        GetEnv("DB_NAME", "careconnect"),
			SSLMode:     GetEnv("DB_SSLMODE", "disable"),
			AutoMigrate: getEnvBool("DB_AUTO_MIGRATE", true),
		},
		KeepAlive: KeepAliveConfig{
			URL:      GetEnv("KEEPALIVE_URL"),
			Schedule: GetEnv("KEEPALIVE_SCHEDULE", "@every 5m"),
		},
	}

	var err error
	if cfg.RequestTimeout, err = getEnvDuration("REQUEST_TIMEOUT", 5*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.KeepAlive.Timeout, err = getEnvDuration("KEEPALIVE_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitMax, err = getEnvInt("RATE_LIMIT_MAX", 100); err != nil {
		return Config{}, err
	}
	if cfg.Database.MaxOpenConns, err = getEnvInt("DB_MAX_OPEN_CONNS", 20); err != nil {
		return Config{}, err
	}
	if cfg.Database.MaxIdleConns, err = getEnvInt("DB_MAX_IDLE_CONNS", 10); err != nil {
		return Config{}, err
	}

	switch cfg.Database.Driver {
	case DriverSQLite:
		if cfg.Database.DSN == "" {
			cfg.Database.DSN = "careconnect.db"
		}
	case DriverPostgres:
		if cfg.Database.DSN == "" && cfg.Database.User == "" {
			return Config{}, fmt.Errorf("DB_USER is required for the postgres driver")
		}
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}

	if p, err := strconv.Atoi(cfg.Port); err != nil || p <= 0 || p > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %q", cfg.Port)
	}
	return cfg, nil
}
