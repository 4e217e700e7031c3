package config

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix  = "portfolio"
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App       AppConfig
	Resend    ResendConfig
	RateLimit RateLimitConfig
	Redis     RedisConfig
	CORS      CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"PORTFOLIO_APP_ENV" default:"dev"`
	Port         string `envconfig:"PORTFOLIO_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"PORTFOLIO_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"PORTFOLIO_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// ResendConfig carries the transactional email provider settings. None of
// the fields are required at boot: missing settings degrade the submission
// endpoints to a 500 instead of preventing startup.
type ResendConfig struct {
	APIKey      string        `envconfig:"PORTFOLIO_RESEND_API_KEY"`
	FromEmail   string        `envconfig:"PORTFOLIO_RESEND_FROM_EMAIL"`
	ToEmail     string        `envconfig:"PORTFOLIO_RESEND_TO_EMAIL"`
	SendTimeout time.Duration `envconfig:"PORTFOLIO_RESEND_SEND_TIMEOUT" default:"10s"`
}

// Configured reports whether every provider setting is present and the
// sender/recipient addresses parse. The from address may carry a display
// name ("Portfolio Store <noreply@example.com>").
func (r ResendConfig) Configured() bool {
	if strings.TrimSpace(r.APIKey) == "" {
		return false
	}
	if _, err := mail.ParseAddress(r.FromEmail); err != nil {
		return false
	}
	if _, err := mail.ParseAddress(r.ToEmail); err != nil {
		return false
	}
	return true
}

// RateLimitConfig throttles the public submission endpoints per client IP.
// Orders get a stricter quota than contact messages.
type RateLimitConfig struct {
	ContactWindow time.Duration `envconfig:"PORTFOLIO_RATE_LIMIT_CONTACT_WINDOW" default:"1h"`
	ContactLimit  int           `envconfig:"PORTFOLIO_RATE_LIMIT_CONTACT_LIMIT" default:"5"`
	OrderWindow   time.Duration `envconfig:"PORTFOLIO_RATE_LIMIT_ORDER_WINDOW" default:"1h"`
	OrderLimit    int           `envconfig:"PORTFOLIO_RATE_LIMIT_ORDER_LIMIT" default:"3"`
}

// RedisConfig is optional. When a URL is set the rate-limit counters move
// to Redis so multiple instances share one quota; otherwise counters stay
// process-local.
type RedisConfig struct {
	URL          string        `envconfig:"PORTFOLIO_REDIS_URL"`
	PoolSize     int           `envconfig:"PORTFOLIO_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"PORTFOLIO_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"PORTFOLIO_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"PORTFOLIO_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"PORTFOLIO_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != ""
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"PORTFOLIO_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}
