package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Storage drivers.
const (
	DriverSQLite = "sqlite"
	DriverMongo  = "mongo"
)

// Session backends.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

type Config struct {
	Port     string `env:"PORT,      default=3000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	StoreDriver          string `env:"STORE_DRIVER,            default=sqlite"`
	StrictPatientStatus  bool   `env:"STRICT_PATIENT_STATUS,   default=false"`
	BootstrapRoute       bool   `env:"BOOTSTRAP_ROUTE_ENABLED, default=false"`
	BootstrapAdminSecret string `env:"BOOTSTRAP_ADMIN_PASSWORD, default=admin123"`
	AuditWorkers         int    `env:"AUDIT_WORKERS,           default=2"`

	SQLite  SQLiteConfig
	Mongo   MongoConfig
	Redis   RedisConfig
	Session SessionConfig
}

type SQLiteConfig struct {
	Path string `env:"SQLITE_PATH, default=clinic.db"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=clinic"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

type SessionConfig struct {
	Backend string `env:"SESSION_BACKEND, default=memory"`
	// Secret signs the session cookie. Empty means a random secret per
	// process, which logs everybody out on restart.
	Secret string        `env:"SESSION_SECRET"`
	TTL    time.Duration `env:"SESSION_TTL,   default=0"`
	Secure bool          `env:"COOKIE_SECURE, default=false"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads configuration through lookuper.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects unknown drivers and backends.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverSQLite, DriverMongo:
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q", c.StoreDriver)
	}
	switch c.Session.Backend {
	case BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("config: unknown SESSION_BACKEND %q", c.Session.Backend)
	}
	if c.Session.TTL < 0 {
		return fmt.Errorf("config: SESSION_TTL must not be negative")
	}
	return nil
}

// IsProduction reports whether ENV is "production".
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
