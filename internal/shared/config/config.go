package config

import "github.com/caarlos0/env/v11"

// Config holds application configuration
type Config struct {
	Version     string `env:"VERSION" envDefault:"0.1.0"`
	Port        int    `env:"PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"prod"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	SentryDSN   string `env:"SENTRY_DSN"`
	DatabaseURL string `env:"DATABASE_URL"`

	// APIBaseURL is resolved once at startup and treated as immutable
	// process-wide configuration; every client endpoint path is joined
	// onto it.
	APIBaseURL string `env:"API_BASE_URL" envDefault:"https://api.bitebranch.app/api/v1"`

	JWTSecret string `env:"JWT_SECRET" envDefault:"dev-insecure-secret-change-me"`
	// OTPTTLMinutes is how long a password reset code stays valid.
	OTPTTLMinutes int `env:"OTP_TTL_MINUTES" envDefault:"10"`

	// ServiceChargeBps is the service charge applied to order subtotals,
	// in basis points (250 = 2.5%).
	ServiceChargeBps int `env:"SERVICE_CHARGE_BPS" envDefault:"250"`
	// DeliveryFeeCents is the flat delivery fee in minor units.
	DeliveryFeeCents int64 `env:"DELIVERY_FEE_CENTS" envDefault:"399"`
	// FreeDeliveryOverCents waives the delivery fee for subtotals at or
	// above this amount. Zero disables the waiver.
	FreeDeliveryOverCents int64 `env:"FREE_DELIVERY_OVER_CENTS" envDefault:"5000"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsEnvProd() bool {
	if c.Environment == "prod" && c.SentryDSN != "" {
		return true
	}
	return false
}
