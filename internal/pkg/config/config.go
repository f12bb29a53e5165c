package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port            string        `env:"PORT,             default=8080"`
	Env             string        `env:"ENV,              default=development"`
	LogLevel        string        `env:"LOG_LEVEL,        default=info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`

	Auth     AuthConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	Geocode  GeocodeConfig
	Defaults DefaultsConfig
	CORS     CORSConfig
}

type AuthConfig struct {
	JWTSecret string        `env:"JWT_SECRET, required"`
	TokenTTL  time.Duration `env:"JWT_TTL,    default=24h"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=travel_journal"`
}

// RedisConfig backs the geocode cache. An empty Addr disables it.
type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB,      default=0"`
	TLS      bool          `env:"REDIS_TLS,     default=false"`
	Timeout  time.Duration `env:"REDIS_TIMEOUT, default=500ms"`
}

type GeocodeConfig struct {
	BaseURL  string        `env:"GEOCODE_BASE_URL,  default=https://maps.googleapis.com/maps/api/geocode/json"`
	APIKey   string        `env:"GEOCODE_API_KEY"`
	Timeout  time.Duration `env:"GEOCODE_TIMEOUT,   default=10s"`
	CacheTTL time.Duration `env:"GEOCODE_CACHE_TTL, default=24h"`
}

type DefaultsConfig struct {
	EntryPhoto string `env:"DEFAULT_ENTRY_PHOTO, default=https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcSpPkm3Hhfm2fa7zZFgK0HQrD8yvwSBmnm_Gw&s"`
	UserImage  string `env:"DEFAULT_USER_IMAGE,  default=https://img.freepik.com/free-vector/user-circles-set_78370-4704.jpg"`
}

type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS, default=*"`
}

// IsDevelopment reports whether the service runs with developer ergonomics
// (pretty logs, verbose banner).
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith resolves configuration from an arbitrary lookuper.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	return &cfg, nil
}
