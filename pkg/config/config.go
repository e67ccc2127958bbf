package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store backends understood by STORE_BACKEND.
const (
	BackendRedis = "redis"
	BackendSQL   = "sql"
)

// Config holds environment driven settings for the group directory server.
type Config struct {
	Env            string
	Host           string
	Port           string
	AllowedOrigins []string
	LogLevel       string
	LogDir         string

	JWTSecret string

	RateLimitPerMinute int
	SocketIOEnabled    bool

	StoreBackend string
	Redis        RedisConfig
	Database     DatabaseConfig
	Groups       GroupsConfig
}

// RedisConfig contains the Redis connection used by the redis store backend.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// DatabaseConfig contains database connection settings for the sql store backend.
type DatabaseConfig struct {
	// URL takes precedence over the individual fields when set. It may be a
	// postgres:// URL or a SQLite path / file: DSN.
	URL             string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	TimeZone        string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime int // seconds
	ConnMaxIdleTime int // seconds
	RunMigrations   bool
}

// GroupsConfig tunes group creation.
type GroupsConfig struct {
	// MaxNameLength is the fallback for the live maximumGroupNameLength setting.
	MaxNameLength    int
	AtomicCreate     bool
	BootstrapSystem  bool
	SettingsCacheTTL time.Duration
}

// Load builds a Config from environment variables with sensible defaults.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		Env:                getEnv("APP_ENV", "development"),
		Host:               getEnv("APP_HOST", "0.0.0.0"),
		Port:               getEnv("APP_PORT", "4567"),
		LogLevel:           getEnv("APP_LOG_LEVEL", "info"),
		LogDir:             getEnv("APP_LOG_DIR", "logs"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 100),
		SocketIOEnabled:    getEnvAsBool("SOCKETIO_ENABLED", false),
		StoreBackend:       strings.ToLower(getEnv("STORE_BACKEND", BackendRedis)),
	}

	cfg.AllowedOrigins = splitAndTrim(os.Getenv("APP_ALLOWED_ORIGINS"))
	cfg.Redis = loadRedisConfig()
	cfg.Database = loadDatabaseConfig()
	cfg.Groups = loadGroupsConfig()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StoreBackend {
	case BackendRedis, BackendSQL:
	default:
		return fmt.Errorf("unsupported STORE_BACKEND %q (want %q or %q)", c.StoreBackend, BackendRedis, BackendSQL)
	}

	if c.Groups.MaxNameLength <= 0 {
		return fmt.Errorf("GROUPS_MAX_NAME_LENGTH must be positive, got %d", c.Groups.MaxNameLength)
	}

	return nil
}

// ServerAddress joins the host and port into a listen address.
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsProduction reports whether the app is running in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// DSN returns the connection string handed to pkg/database. DATABASE_URL wins;
// otherwise a PostgreSQL key/value DSN is assembled from the DB_* fields.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.Name,
		d.SSLMode,
		d.TimeZone,
	)
}

func loadRedisConfig() RedisConfig {
	return RedisConfig{
		Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       getEnvAsInt("REDIS_DB", 0),
	}
}

func loadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		URL:             strings.TrimSpace(os.Getenv("DATABASE_URL")),
		Host:            getEnv("DB_HOST", "127.0.0.1"),
		Port:            getEnv("DB_PORT", "5432"),
		User:            getEnv("DB_USER", "postgres"),
		Password:        os.Getenv("DB_PASSWORD"),
		Name:            getEnv("DB_NAME", "nodebb"),
		SSLMode:         getEnv("DB_SSLMODE", "disable"),
		TimeZone:        getEnv("DB_TIMEZONE", "UTC"),
		MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
		MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 20),
		ConnMaxLifetime: getEnvAsInt("DB_CONN_MAX_LIFETIME", 1800),
		ConnMaxIdleTime: getEnvAsInt("DB_CONN_MAX_IDLE_TIME", 300),
		RunMigrations:   getEnvAsBool("DB_RUN_MIGRATIONS", true),
	}
}

func loadGroupsConfig() GroupsConfig {
	return GroupsConfig{
		MaxNameLength:    getEnvAsInt("GROUPS_MAX_NAME_LENGTH", 255),
		AtomicCreate:     getEnvAsBool("GROUPS_ATOMIC_CREATE", true),
		BootstrapSystem:  getEnvAsBool("GROUPS_BOOTSTRAP", true),
		SettingsCacheTTL: getEnvAsDuration("SETTINGS_CACHE_TTL", 30*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func splitAndTrim(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.FieldsFunc(value, func(r rune) bool {
		switch r {
		case ',', ';':
			return true
		default:
			return false
		}
	})

	var cleaned []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}

	if len(cleaned) == 0 {
		return nil
	}

	return cleaned
}
