// Package config centralises configuration parsing for the signup service.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config captures runtime configuration values for the signup service.
type Config struct {
	HTTPAddress  string        `env:"HTTP_ADDRESS" envDefault:":8080"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout  time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`

	// StaticDir, when set, is served under /static for the signup front end.
	StaticDir string `env:"STATIC_DIR"`

	EventsEnabled bool     `env:"EVENTS_ENABLED" envDefault:"false"`
	KafkaBrokers  []string `env:"KAFKA_BROKERS" envDefault:"kafka:9092"`
	RosterTopic   string   `env:"ROSTER_TOPIC" envDefault:"activity.roster"`
	ConsumerGroup string   `env:"CONSUMER_GROUP" envDefault:"signup-auditor"`
	AuditLimit    int      `env:"AUDIT_LIMIT" envDefault:"100"`

	MetricsAddress string `env:"METRICS_ADDRESS" envDefault:":9090"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load reads environment variables into Config, applying defaults for local dev.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
