package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Backend BackendConfig
	Session SessionConfig
	Redis   RedisConfig
}

type BackendConfig struct {
	// BaseURL includes the API prefix; deployments vary between a relative
	// /api behind a proxy and absolute hostnames.
	BaseURL string        `env:"BACKEND_BASE_URL, default=http://localhost:8000/api"`
	Timeout time.Duration `env:"BACKEND_TIMEOUT,  default=30s"`
}

type SessionConfig struct {
	TTL        time.Duration `env:"SESSION_TTL,         default=24h"`
	CookieName string        `env:"SESSION_COOKIE_NAME, default=resourcehub_session"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Production reports whether the gateway runs in a deployed environment
// (JSON logs, Secure cookies).
func (c *Config) Production() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
