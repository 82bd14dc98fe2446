package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
	ConnectAttempts    int
	AutoMigrate        bool
	// TimeZone is the PostgreSQL session time zone; Load copies APP_TIMEZONE into it.
	TimeZone string
}

// MinIOConfig holds object storage settings for MinIO.
// Storage is optional: when Endpoint is empty exports can only be downloaded, not stored.
type MinIOConfig struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	UseSSL        bool
	PresignExpiry time.Duration
}

// Enabled reports whether object storage has been configured.
func (c MinIOConfig) Enabled() bool {
	return c.Endpoint != ""
}

// RedisConfig holds settings for the optional Redis instance used for report caching and job locks.
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	ReportTTL time.Duration
}

// Enabled reports whether Redis has been configured.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

// AuthConfig holds bearer token settings for the admin API.
// An empty JWTSecret disables authentication (local development only).
type AuthConfig struct {
	JWTSecret string
	Issuer    string
}

// BillingConfig holds the commission rules applied when bills are generated.
type BillingConfig struct {
	// CommissionBasis is either "revenue" or "profit".
	CommissionBasis string
}

// SchedulerConfig holds cron expressions for the background worker.
type SchedulerConfig struct {
	CheckExpiredSpec  string
	MonthlyBillsSpec  string
	ExpiryWarningDays int
	LockTTL           time.Duration
}

// HTTPConfig holds HTTP server concerns that are not route specific.
type HTTPConfig struct {
	CORSOrigins    string
	RateLimitMax   int
	RateLimitEvery time.Duration
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost   string
	Port      string
	Timezone  string
	Database  DatabaseConfig
	MinIO     MinIOConfig
	Redis     RedisConfig
	Auth      AuthConfig
	Billing   BillingConfig
	Scheduler SchedulerConfig
	HTTP      HTTPConfig
}

// Location resolves the configured time zone, falling back to UTC when it is unknown.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	tz := getEnv("APP_TIMEZONE", "UTC")
	return &AppConfig{
		AppHost:  getEnv("APP_HOST", "localhost:8080"),
		Port:     getEnv("PORT", "8080"),
		Timezone: tz,
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
			ConnectAttempts:    getEnvInt("DB_CONNECT_ATTEMPTS", 5),
			AutoMigrate:        getEnvBool("DB_AUTO_MIGRATE", true),
			TimeZone:           tz,
		},
		MinIO: MinIOConfig{
			Endpoint:      getEnv("MINIO_ENDPOINT", ""),
			AccessKey:     getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey:     getEnv("MINIO_SECRET_KEY", ""),
			Bucket:        getEnv("MINIO_BUCKET", ""),
			UseSSL:        getEnvBool("MINIO_USE_SSL", false),
			PresignExpiry: getEnvDuration("MINIO_PRESIGN_EXPIRY", 15*time.Minute),
		},
		Redis: RedisConfig{
			Addr:      getEnv("REDIS_ADDR", ""),
			Password:  getEnv("REDIS_PASSWORD", ""),
			DB:        getEnvInt("REDIS_DB", 0),
			ReportTTL: getEnvDuration("REDIS_REPORT_TTL", 5*time.Minute),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("AUTH_JWT_SECRET", ""),
			Issuer:    getEnv("AUTH_JWT_ISSUER", ""),
		},
		Billing: BillingConfig{
			CommissionBasis: strings.ToLower(getEnv("BILLING_COMMISSION_BASIS", "revenue")),
		},
		Scheduler: SchedulerConfig{
			CheckExpiredSpec:  getEnv("CRON_CHECK_EXPIRED", "0 1 * * *"),
			MonthlyBillsSpec:  getEnv("CRON_MONTHLY_BILLS", "0 2 1 * *"),
			ExpiryWarningDays: getEnvInt("AGENT_EXPIRY_WARNING_DAYS", 7),
			LockTTL:           getEnvDuration("CRON_LOCK_TTL", 30*time.Minute),
		},
		HTTP: HTTPConfig{
			CORSOrigins:    getEnv("CORS_ALLOW_ORIGINS", "*"),
			RateLimitMax:   getEnvInt("RATE_LIMIT_MAX", 300),
			RateLimitEvery: getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	}
	return def
}
