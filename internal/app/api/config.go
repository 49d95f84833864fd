package api

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.temporal.io/sdk/client"
)

const defaultOutboundTimeout = 10 * time.Second

// Config carries environment-driven settings for the API and worker processes.
type Config struct {
	Port              string
	Environment       string
	PostgresDSN       string
	OrderServiceURL   string
	IdentityURL       string
	OutboundTimeout   time.Duration
	TemporalAddress   string
	TemporalNamespace string
	TemporalDisabled  bool
}

// LoadConfig reads environment variables, applies defaults, and validates basic constraints.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:              envDefault("PORT", "8080"),
		Environment:       envDefault("ENVIRONMENT", "local"),
		PostgresDSN:       strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		OrderServiceURL:   strings.TrimSpace(os.Getenv("ORDER_SERVICE_URL")),
		IdentityURL:       envDefault("IDENTITY_SERVICE_URL", strings.TrimSpace(os.Getenv("COGNITO_URL"))),
		OutboundTimeout:   defaultOutboundTimeout,
		TemporalAddress:   envDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		TemporalNamespace: envDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		TemporalDisabled:  isTruthy(os.Getenv("TEMPORAL_DISABLED")),
	}
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return Config{}, fmt.Errorf("PORT must be numeric, got %q", cfg.Port)
	}
	if raw := strings.TrimSpace(os.Getenv("OUTBOUND_TIMEOUT_SECONDS")); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			return Config{}, fmt.Errorf("OUTBOUND_TIMEOUT_SECONDS must be a positive integer")
		}
		cfg.OutboundTimeout = time.Duration(seconds) * time.Second
	}
	return cfg, nil
}

// Addr is the listen address derived from Port.
func (c Config) Addr() string {
	return ":" + c.Port
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
