// Package config loads application configuration from the environment, with
// optional .env support for local development.
package config

import (
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type DBConfig struct {
	Url string `envconfig:"URL"`
}

type JwtConfig struct {
	Secret string        `envconfig:"SECRET_KEY" required:"true"`
	Expiry time.Duration `envconfig:"EXPIRY" default:"24h"`
}

type ExchangeConfig struct {
	// DefaultRate is the USD→VND rate used until the household configures
	// one through the settings endpoint.
	DefaultRate float64 `envconfig:"DEFAULT_RATE" default:"25000"`
}

type RateLimitConfig struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type AdminConfig struct {
	Username string `envconfig:"USERNAME" default:"admin"`
	Password string `envconfig:"PASSWORD" default:"admin123"`
}

type AppConfig struct {
	Env       string          `envconfig:"APP_ENV" default:"development"`
	Host      string          `envconfig:"APP_HOST" default:"localhost"`
	Port      int             `envconfig:"APP_PORT" default:"8000"`
	DB        DBConfig        `envconfig:"DATABASE"`
	Jwt       JwtConfig       `envconfig:"JWT"`
	Exchange  ExchangeConfig  `envconfig:"EXCHANGE_RATE"`
	RateLimit RateLimitConfig `envconfig:"RATE_LIMIT"`
	Admin     AdminConfig     `envconfig:"ADMIN"`
}

// Load reads configuration from the environment, after loading a .env file
// when one exists. A missing .env is not an error.
func Load(logger *slog.Logger, envFilePath ...string) (*AppConfig, error) {
	var err error
	if len(envFilePath) > 0 && envFilePath[0] != "" {
		err = godotenv.Load(envFilePath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		logger.Warn("no .env file found, using system environment variables")
	} else {
		logger.Info("environment variables loaded from .env file")
	}

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	logger.Info("app config loaded",
		"env", cfg.Env,
		"port", cfg.Port,
		"jwt_expiry", cfg.Jwt.Expiry,
		"default_exchange_rate", cfg.Exchange.DefaultRate,
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
	)
	return &cfg, nil
}
