package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// envPrefix namespaces the CLI environment variables (GALLERYDL_BASE_DIR,
// GALLERYDL_BIN, GALLERYDL_TITLE_TIMEOUT).
const envPrefix = "gallerydl"

// Env is the CLI configuration, read from the environment. Flags override
// these values; both override the built-in defaults.
type Env struct {
	BaseDir      string        `envconfig:"BASE_DIR"`
	Bin          string        `envconfig:"BIN"`
	TitleTimeout time.Duration `envconfig:"TITLE_TIMEOUT" default:"10s"`
}

// LoadEnv reads an optional .env file and then the process environment.
// A missing .env file is not an error; environment variables may be set any
// other way.
func LoadEnv(envFile string) (*Env, error) {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	}

	var env Env
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &env, nil
}
