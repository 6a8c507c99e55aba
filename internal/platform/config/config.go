package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the Jobly API configuration.
type Config struct {
	Server     ServerConfig     `json:"server"`
	Database   DatabaseConfig   `json:"database"`
	JWT        JWTConfig        `json:"jwt"`
	Security   SecurityConfig   `json:"security"`
	RateLimits RateLimitsConfig `json:"rateLimits"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host      string `json:"host"`
	Port      int    `json:"port"`
	WebDomain string `json:"webDomain"`
	Debug     bool   `json:"debug"`
}

// Addr is the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Postgres PostgreSQLConfig `json:"postgres"`
	// ApplySchema creates the tables on startup when they are missing.
	ApplySchema bool `json:"applySchema"`
}

// PostgreSQLConfig holds PostgreSQL-specific configuration
type PostgreSQLConfig struct {
	Host            string        `json:"host"`
	Port            int           `json:"port"`
	Username        string        `json:"username"`
	Password        string        `json:"password"`
	Database        string        `json:"database"`
	DSN             string        `json:"dsn"`
	SSLMode         string        `json:"sslMode"`
	Schema          string        `json:"schema"`
	MaxOpenConns    int           `json:"maxOpenConns"`
	MaxIdleConns    int           `json:"maxIdleConns"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime"`
}

// ConnectionString returns DSN when set, otherwise a URL built from the parts.
func (p PostgreSQLConfig) ConnectionString() string {
	if p.DSN != "" {
		return p.DSN
	}
	u := url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%d", p.Host, p.Port),
		Path:   "/" + p.Database,
	}
	if p.Username != "" {
		u.User = url.UserPassword(p.Username, p.Password)
	}
	q := url.Values{}
	if p.SSLMode != "" {
		q.Set("sslmode", p.SSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// JWTConfig holds JWT-related configuration
type JWTConfig struct {
	PublicKey  string        `json:"publicKey"`
	PrivateKey string        `json:"privateKey"`
	Issuer     string        `json:"issuer"`
	TokenTTL   time.Duration `json:"tokenTTL"`
}

// SecurityConfig holds password policy settings
type SecurityConfig struct {
	BcryptWorkFactor int `json:"bcryptWorkFactor"`
	PasswordMinScore int `json:"passwordMinScore"`
}

// RateLimitConfig holds rate limiting configuration for a specific endpoint
type RateLimitConfig struct {
	Enabled  bool          `json:"enabled"`
	Max      int           `json:"max"`
	Duration time.Duration `json:"duration"`
}

// RateLimitsConfig holds rate limiting configuration for the auth endpoints
type RateLimitsConfig struct {
	Login    RateLimitConfig `json:"login"`
	Register RateLimitConfig `json:"register"`
	Backend  string          `json:"backend"`
	Redis    RedisConfig     `json:"redis"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Address  string `json:"address"`
	Password string `json:"password"`
	DB       int    `json:"db"`
	PoolSize int    `json:"poolSize"`
	Prefix   string `json:"prefix"`
}

const (
	RateLimitBackendMemory = "memory"
	RateLimitBackendRedis  = "redis"
)

// LoadFromEnv loads configuration from the environment.
// Precedence: explicit environment variables, then values from .env, then defaults.
func LoadFromEnv() (*Config, error) {
	// godotenv never overrides variables that are already set.
	envPaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	var loadErr error
	for _, envPath := range envPaths {
		loadErr = godotenv.Load(envPath)
		if loadErr == nil {
			break
		}
	}
	if loadErr != nil {
		fmt.Println("INFO: .env file not found, using environment variables and defaults.")
	}

	return load(func(key string) (string, bool) {
		value := os.Getenv(key)
		return value, value != ""
	})
}

// LoadFromMap loads configuration from an in-memory map.
// Tests use it to exercise configuration without touching the process environment.
func LoadFromMap(envMap map[string]string) (*Config, error) {
	return load(func(key string) (string, bool) {
		value, ok := envMap[key]
		return value, ok
	})
}

type lookupFunc func(key string) (string, bool)

func load(lookup lookupFunc) (*Config, error) {
	env := envReader{lookup: lookup}

	config := &Config{
		Server: ServerConfig{
			Host:      env.str("HOST", "0.0.0.0"),
			Port:      env.int("PORT", 3001),
			WebDomain: env.str("WEB_DOMAIN", "http://localhost:3000"),
			Debug:     env.bool("DEBUG", false),
		},
		Database: DatabaseConfig{
			Postgres: PostgreSQLConfig{
				Host:            env.str("POSTGRES_HOST", "localhost"),
				Port:            env.int("POSTGRES_PORT", 5432),
				Username:        env.str("POSTGRES_USERNAME", ""),
				Password:        env.str("POSTGRES_PASSWORD", ""),
				Database:        env.str("POSTGRES_DATABASE", "jobly"),
				DSN:             env.str("DATABASE_URL", ""),
				SSLMode:         env.str("POSTGRES_SSL_MODE", "disable"),
				Schema:          env.str("POSTGRES_SCHEMA", ""),
				MaxOpenConns:    env.int("POSTGRES_MAX_OPEN_CONNS", 25),
				MaxIdleConns:    env.int("POSTGRES_MAX_IDLE_CONNS", 25),
				ConnMaxLifetime: time.Duration(env.int("POSTGRES_CONN_MAX_LIFETIME", 300)) * time.Second,
			},
			ApplySchema: env.bool("DB_APPLY_SCHEMA", false),
		},
		JWT: JWTConfig{
			PublicKey:  env.str("JWT_PUBLIC_KEY", ""),
			PrivateKey: env.str("JWT_PRIVATE_KEY", ""),
			Issuer:     env.str("JWT_ISSUER", "jobly"),
			TokenTTL:   env.duration("JWT_TOKEN_TTL", 24*time.Hour),
		},
		Security: SecurityConfig{
			BcryptWorkFactor: env.int("BCRYPT_WORK_FACTOR", 12),
			PasswordMinScore: env.int("PASSWORD_MIN_SCORE", 0),
		},
		RateLimits: RateLimitsConfig{
			Login: RateLimitConfig{
				Enabled:  env.bool("RATE_LIMIT_LOGIN_ENABLED", true),
				Max:      env.int("RATE_LIMIT_LOGIN_MAX", 5),
				Duration: env.duration("RATE_LIMIT_LOGIN_DURATION", 15*time.Minute),
			},
			Register: RateLimitConfig{
				Enabled:  env.bool("RATE_LIMIT_REGISTER_ENABLED", true),
				Max:      env.int("RATE_LIMIT_REGISTER_MAX", 10),
				Duration: env.duration("RATE_LIMIT_REGISTER_DURATION", 1*time.Hour),
			},
			Backend: env.str("RATE_LIMIT_BACKEND", RateLimitBackendMemory),
			Redis: RedisConfig{
				Address:  env.str("REDIS_ADDRESS", "localhost:6379"),
				Password: env.str("REDIS_PASSWORD", ""),
				DB:       env.int("REDIS_DB", 0),
				PoolSize: env.int("REDIS_POOL_SIZE", 10),
				Prefix:   env.str("REDIS_PREFIX", "jobly:ratelimit:"),
			},
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration for required fields
func (c *Config) Validate() error {
	var errors []string

	if strings.TrimSpace(c.JWT.PublicKey) == "" {
		errors = append(errors, "JWT_PUBLIC_KEY is required")
	}
	if strings.TrimSpace(c.JWT.PrivateKey) == "" {
		errors = append(errors, "JWT_PRIVATE_KEY is required")
	}
	if c.JWT.TokenTTL <= 0 {
		errors = append(errors, "JWT_TOKEN_TTL must be positive")
	}

	// bcrypt accepts costs 4..31
	if c.Security.BcryptWorkFactor < 4 || c.Security.BcryptWorkFactor > 31 {
		errors = append(errors, "BCRYPT_WORK_FACTOR must be between 4 and 31")
	}
	if c.Security.PasswordMinScore < 0 || c.Security.PasswordMinScore > 4 {
		errors = append(errors, "PASSWORD_MIN_SCORE must be between 0 and 4")
	}

	validBackends := []string{RateLimitBackendMemory, RateLimitBackendRedis}
	if !contains(validBackends, c.RateLimits.Backend) {
		errors = append(errors, fmt.Sprintf("RATE_LIMIT_BACKEND must be one of: %s", strings.Join(validBackends, ", ")))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errors = append(errors, "PORT must be a valid TCP port")
	}

	if len(errors) > 0 {
		return fmt.Errorf("validation errors: %s", strings.Join(errors, "; "))
	}

	return nil
}

// envReader applies defaults and ignores unparsable values.
type envReader struct {
	lookup lookupFunc
}

func (e envReader) str(key, defaultValue string) string {
	if value, ok := e.lookup(key); ok {
		return value
	}
	return defaultValue
}

func (e envReader) int(key string, defaultValue int) int {
	if value, ok := e.lookup(key); ok {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func (e envReader) bool(key string, defaultValue bool) bool {
	if value, ok := e.lookup(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func (e envReader) duration(key string, defaultValue time.Duration) time.Duration {
	if value, ok := e.lookup(key); ok {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
