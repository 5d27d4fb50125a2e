package config

import (
	"strings"

	"github.com/caarlos0/env/v6"
)

type Environment string

const (
	EnvLocal      Environment = "local"
	EnvDev        Environment = "dev"
	EnvProduction Environment = "production"
)

type Config struct {
	App struct {
		Version  string      `env:"APP_VERSION" envDefault:"local"`
		Env      Environment `env:"APP_ENV" envDefault:"local"`
		Timezone string      `env:"APP_TIMEZONE" envDefault:"America/Argentina/Buenos_Aires"`
	}

	Clinic struct {
		// Display name shown in the menu banner and echoed in logs
		Name string `env:"CLINIC_NAME" envDefault:"UTN-Medical Center"`
	}

	Storage struct {
		// Whole-document configuration + snapshot file, read at
		// startup and rewritten at register close
		ConfigFile string `env:"CONFIG_FILE" envDefault:"configs.json"`
	}

	Cache struct {
		Enabled      bool `env:"CACHE_ENABLED" envDefault:"true"`
		PatientsSize int  `env:"CACHE_PATIENTS_SIZE" envDefault:"256"`
	}
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	// Normalize the environment for comparisons
	cfg.App.Env = Environment(strings.ToLower(string(cfg.App.Env)))

	return cfg, nil
}

func (c *Config) IsLocal() bool {
	return c.App.Env == EnvLocal
}
