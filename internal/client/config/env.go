package config

import (
	"fmt"

	"github.com/dmitrijs2005/sn/internal/secret"
)

const (
	EnvBaseURL  = "SN_BASE_URL"
	EnvUsername = "SN_USERNAME"
	EnvPassword = "SN_PASSWORD"
	EnvTimeout  = "SN_TIMEOUT"
	EnvLogLevel = "SN_LOG_LEVEL"
)

// parseEnv overlays cfg with the SN_* variables that are set and non-empty.
func parseEnv(cfg *Config, lookup LookupEnv) error {
	get := func(key string) string {
		v, _ := lookup(key)
		return v
	}

	setString(&cfg.BaseURL, get(EnvBaseURL))
	setString(&cfg.Username, get(EnvUsername))
	setString(&cfg.LogLevel, get(EnvLogLevel))
	if v := get(EnvPassword); v != "" {
		cfg.Password = secret.New(v)
	}
	if v := get(EnvTimeout); v != "" {
		d, err := parseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		cfg.Timeout = d
	}
	return nil
}
