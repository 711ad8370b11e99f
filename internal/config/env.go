package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dryink/dryink/internal/errors"
)

// Env is the process environment the client reads at startup.
type Env struct {
	BackendBaseURL string        `env:"BACKEND_BASE_URL,notEmpty,required"`
	SessionFile    string        `env:"DRYINK_SESSION_FILE"`
	RequestTimeout time.Duration `env:"DRYINK_REQUEST_TIMEOUT" envDefault:"0s"`
}

// LoadEnv loads envFile (or ./.env when present) into the process
// environment and parses Env from it.
func LoadEnv(envFile string) (Env, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Env{}, errors.ConfigLoadFailed(envFile, err)
		}
	} else if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return Env{}, errors.ConfigLoadFailed(".env", err)
		}
	}
	return ParseEnv()
}

// ParseEnv parses Env from the current process environment.
func ParseEnv() (Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return Env{}, errors.E(errors.Op("config.ParseEnv"), errors.KindConfig, err)
	}

	u, err := url.Parse(cfg.BackendBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Env{}, errors.ConfigInvalid(fmt.Sprintf("BACKEND_BASE_URL is not an absolute URL: %q", cfg.BackendBaseURL))
	}
	cfg.BackendBaseURL = strings.TrimRight(cfg.BackendBaseURL, "/")

	if cfg.RequestTimeout < 0 {
		return Env{}, errors.ConfigInvalid("DRYINK_REQUEST_TIMEOUT must not be negative")
	}

	if cfg.SessionFile == "" {
		dir, err := configDir()
		if err != nil {
			return Env{}, errors.E(errors.Op("config.ParseEnv"), errors.KindConfig, err)
		}
		cfg.SessionFile = filepath.Join(dir, "session.json")
	}
	return cfg, nil
}
