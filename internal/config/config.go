package config

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultPyxPayEndpoint is the API base used when the operator leaves the endpoint blank
const DefaultPyxPayEndpoint = "https://pyxpay.com.br/v1"

const (
	DatabaseDriverSQLite   = "sqlite"
	DatabaseDriverPostgres = "postgres"

	StoreBackendDatabase = "database"
	StoreBackendRedis    = "redis"

	developmentStorageSecret = "pyxpay-dashboard-development-secret"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Store    StoreConfig
	JWT      JWTConfig
	Security SecurityConfig
	PyxPay   PyxPayConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// CORSAllowOrigins is empty unless CORS_ALLOW_ORIGINS is set; no CORS headers are sent then
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Driver          string
	Path            string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// StoreConfig selects where namespaced local state (session, filters, columns) lives
type StoreConfig struct {
	Backend       string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	// Secret encrypts API keys at rest
	Secret string
}

type JWTConfig struct {
	SessionTokenDuration time.Duration
	PrivateKey           *rsa.PrivateKey
	PublicKey            *rsa.PublicKey
	Issuer               string
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

type PyxPayConfig struct {
	DefaultEndpoint string
	// Timeout of zero leaves the transport default in place
	Timeout time.Duration
}

// Load reads .env (when present) and the process environment.
// Production must provide STORAGE_SECRET and the JWT keypair.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("WARNING: failed to read .env file: %v", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:             envString("SERVER_PORT", "8080"),
			Host:             envString("SERVER_HOST", "localhost"),
			Environment:      envString("APP_ENV", "development"),
			ReadTimeout:      envDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:     envDuration("SERVER_WRITE_TIMEOUT", 60*time.Second),
			CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS"),
		},
		Database: DatabaseConfig{
			Driver:          envString("DB_DRIVER", DatabaseDriverSQLite),
			Path:            envString("DB_PATH", "pyxpay.db"),
			Host:            envString("DB_HOST", "localhost"),
			Port:            envString("DB_PORT", "5432"),
			User:            envString("DB_USER", "pyxpay"),
			Password:        envString("DB_PASSWORD", "pyxpay"),
			Name:            envString("DB_NAME", "pyxpay_dashboard"),
			SSLMode:         envString("DB_SSL_MODE", "disable"),
			MaxConnections:  envInt("DB_MAX_CONNECTIONS", 10),
			MaxIdleConns:    envInt("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: envDuration("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Store: StoreConfig{
			Backend:       envString("STORE_BACKEND", StoreBackendDatabase),
			RedisAddr:     envString("REDIS_ADDR", "localhost:6379"),
			RedisPassword: os.Getenv("REDIS_PASSWORD"),
			RedisDB:       envInt("REDIS_DB", 0),
			Secret:        os.Getenv("STORAGE_SECRET"),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: envInt("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     envInt("RATE_LIMIT_BURST", 10),
		},
		JWT: JWTConfig{
			SessionTokenDuration: envDuration("JWT_SESSION_TOKEN_DURATION", 12*time.Hour),
			Issuer:               envString("JWT_ISSUER", "pyxpay-dashboard"),
		},
		PyxPay: PyxPayConfig{
			DefaultEndpoint: envString("PYXPAY_DEFAULT_ENDPOINT", DefaultPyxPayEndpoint),
			Timeout:         envDuration("PYXPAY_TIMEOUT", 0),
		},
	}

	if cfg.Store.Secret == "" {
		if cfg.IsProduction() {
			return nil, errors.New("STORAGE_SECRET must be set in production")
		}
		log.Println("STORAGE_SECRET not set: saved API keys are encrypted with the development secret")
		cfg.Store.Secret = developmentStorageSecret
	}

	keys, err := signingKeys(cfg.IsProduction())
	if err != nil {
		return nil, err
	}
	cfg.JWT.PrivateKey, cfg.JWT.PublicKey = keys.private, keys.public

	return cfg, nil
}

// DSN returns the connection string for the configured driver
func (c *DatabaseConfig) DSN() string {
	if c.Driver == DatabaseDriverPostgres {
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
	}
	return c.Path
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// AutoMigrateEnabled reports whether SQL migrations should run on startup
func AutoMigrateEnabled() bool {
	return envParsed("AUTO_MIGRATE", true, strconv.ParseBool)
}

// envParsed returns fallback when key is unset or does not parse
func envParsed[T any](key string, fallback T, parse func(string) (T, error)) T {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	v, err := parse(raw)
	if err != nil {
		log.Printf("WARNING: ignoring %s=%q: %v", key, raw, err)
		return fallback
	}
	return v
}

func envString(key, fallback string) string {
	return envParsed(key, fallback, func(s string) (string, error) { return s, nil })
}

func envInt(key string, fallback int) int {
	return envParsed(key, fallback, strconv.Atoi)
}

func envDuration(key string, fallback time.Duration) time.Duration {
	return envParsed(key, fallback, time.ParseDuration)
}

func envList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
