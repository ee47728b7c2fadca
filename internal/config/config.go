package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration.
type Config struct {
	ServerPort     int    `env:"PORT" envDefault:"8080"`
	DatabasePath   string `env:"DATABASE_PATH" envDefault:"./blog.db"`
	JWTSecret      string `env:"JWT_SECRET" envDefault:"devsecret"`
	AllowedOrigin  string `env:"ALLOWED_ORIGIN" envDefault:"http://localhost:3000"`
	ProductionMode bool   `env:"PRODUCTION" envDefault:"false"`
	SMTP           SMTP   `envPrefix:"SMTP_"`
}

// SMTP configures the outbound relay used by the contact form.
type SMTP struct {
	Host      string `env:"HOST" envDefault:"smtp.gmail.com"`
	Port      int    `env:"PORT" envDefault:"587"`
	Username  string `env:"USERNAME"`
	Password  string `env:"PASSWORD"`
	ContactTo string `env:"CONTACT_TO"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
