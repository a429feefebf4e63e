package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Configuration carrega tudo via variáveis de ambiente.
// Em deploy só temos env, então não usamos arquivo de config.
type Configuration struct {
	Port         string `env:"PORT" envDefault:"8000"`
	DatabaseURL  string `env:"DATABASE_URL" envDefault:"mongodb://localhost:27017"`
	DatabaseName string `env:"DATABASE_NAME" envDefault:"ruva"`
	LogMode      string `env:"LOG_MODE" envDefault:"development"`
}

// Get parses the configuration from the environment.
func Get() (Configuration, error) {
	var c Configuration
	if err := env.Parse(&c); err != nil {
		return c, fmt.Errorf("failed to parse config: %w", err)
	}
	return c, nil
}
