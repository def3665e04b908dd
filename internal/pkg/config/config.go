package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Store backends.
const (
	BackendLocal    = "local"
	BackendMongo    = "mongo"
	BackendPostgres = "postgres"
)

// Cache backends.
const (
	CacheRedis  = "redis"
	CacheMemory = "memory"
)

type Config struct {
	Port       string        `env:"PORT,        default=8080"`
	Env        string        `env:"ENV,         default=development"`
	JWTSecret  string        `env:"JWT_SECRET"`
	SessionTTL time.Duration `env:"SESSION_TTL, default=24h"`
	LogLevel   string        `env:"LOG_LEVEL,   default=info"`

	Store    StoreConfig
	Realtime RealtimeConfig
	Cache    CacheConfig
	Mongo    MongoConfig
	Postgres PostgresConfig
	Redis    RedisConfig

	// CredentialsMode is plaintext or bcrypt. Password recovery and admin
	// credential disclosure only work in plaintext mode.
	CredentialsMode string `env:"CREDENTIALS_MODE,     default=plaintext"`
	SeedSamples     bool   `env:"CATALOG_SEED_SAMPLES, default=true"`
	MaxAlerts       int    `env:"MAX_ALERTS,           default=50"`
}

type StoreConfig struct {
	Backend           string `env:"STORE_BACKEND,             default=local"`
	RefetchAfterWrite bool   `env:"STORE_REFETCH_AFTER_WRITE, default=false"`
	SyncOrders        bool   `env:"STORE_SYNC_ORDERS,         default=true"`
	SyncNotifications bool   `env:"STORE_SYNC_NOTIFICATIONS,  default=true"`
}

type RealtimeConfig struct {
	Enabled bool          `env:"REALTIME_ENABLED, default=false"`
	Echo    string        `env:"REALTIME_ECHO,    default=deliver"`
	Retry   time.Duration `env:"REALTIME_RETRY,   default=5s"`
}

type CacheConfig struct {
	Backend string `env:"CACHE_BACKEND, default=memory"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB, default=boutique"`
}

type PostgresConfig struct {
	DSN string `env:"POSTGRES_DSN"`
}

type RedisConfig struct {
	Addr   string `env:"REDIS_ADDR,   default=localhost:6379"`
	DB     int    `env:"REDIS_DB,     default=0"`
	Prefix string `env:"REDIS_PREFIX, default=boutique:"`
}

// Load reads an optional .env file, then the environment.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load() // a missing .env is fine
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom resolves the configuration through l and validates it.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects unknown enum values and missing endpoints for the
// selected backends.
func (c *Config) Validate() error {
	var errs []error
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}

	switch c.Store.Backend {
	case BackendLocal:
	case BackendMongo:
		if c.Mongo.URI == "" {
			errs = append(errs, errors.New("MONGO_URI is required when STORE_BACKEND=mongo"))
		}
	case BackendPostgres:
		if c.Postgres.DSN == "" {
			errs = append(errs, errors.New("POSTGRES_DSN is required when STORE_BACKEND=postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("STORE_BACKEND %q is not one of local, mongo, postgres", c.Store.Backend))
	}

	if c.Realtime.Enabled && c.Store.Backend == BackendLocal {
		errs = append(errs, errors.New("REALTIME_ENABLED needs a mongo or postgres STORE_BACKEND"))
	}
	if c.Realtime.Echo != "deliver" && c.Realtime.Echo != "suppress" {
		errs = append(errs, fmt.Errorf("REALTIME_ECHO %q is not one of deliver, suppress", c.Realtime.Echo))
	}
	if c.CredentialsMode != "plaintext" && c.CredentialsMode != "bcrypt" {
		errs = append(errs, fmt.Errorf("CREDENTIALS_MODE %q is not one of plaintext, bcrypt", c.CredentialsMode))
	}
	if c.Cache.Backend != CacheRedis && c.Cache.Backend != CacheMemory {
		errs = append(errs, fmt.Errorf("CACHE_BACKEND %q is not one of redis, memory", c.Cache.Backend))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// UsesRedis reports whether any component needs a Redis connection.
func (c *Config) UsesRedis() bool {
	return c.Cache.Backend == CacheRedis || (c.Realtime.Enabled && c.Realtime.Echo == "suppress")
}
