package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/dmitrijs2005/sn/internal/flagx"
	"github.com/dmitrijs2005/sn/internal/logging"
	"github.com/dmitrijs2005/sn/internal/netx"
	"github.com/dmitrijs2005/sn/internal/secret"
)

const (
	DefaultBaseURL = "https://api.supernotes.app/v1/"
	DefaultTimeout = 30 * time.Second
)

// Config holds runtime settings for the sn CLI.
type Config struct {
	BaseURL    string        `json:"base_url"`
	Username   string        `json:"username"`
	Password   secret.String `json:"password"`
	Timeout    time.Duration `json:"timeout"`
	LogLevel   string        `json:"log_level"`
	LogFormat  string        `json:"log_format"`
	LogBackend string        `json:"log_backend"`
}

// LookupEnv matches os.LookupEnv.
type LookupEnv func(key string) (string, bool)

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = DefaultBaseURL
	c.Timeout = DefaultTimeout
	c.LogLevel = "warn"
	c.LogFormat = logging.FormatText
	c.LogBackend = logging.BackendHclog
}

// LoadConfig constructs a Config from defaults, the config file named in
// args, the environment and the flags in args, later sources taking
// precedence. It returns the positional arguments left after the flags.
//
// The result is normalized but not validated; call Validate once every
// value (e.g. a prompted password) is in place.
func LoadConfig(args []string, lookupEnv LookupEnv) (*Config, []string, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if path := flagx.ConfigFileFlag(args, NewFlagSet("create", &Config{})); path != "" {
		if err := parseFile(cfg, path); err != nil {
			return nil, nil, err
		}
	}

	if lookupEnv != nil {
		if err := parseEnv(cfg, lookupEnv); err != nil {
			return nil, nil, err
		}
	}

	fs := NewFlagSet("create", cfg)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	if u, err := NormalizeBaseURL(cfg.BaseURL); err == nil {
		cfg.BaseURL = u
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	return cfg, fs.Args(), nil
}

// NormalizeBaseURL validates raw as an absolute http(s) URL and returns it
// with a trailing slash.
func NormalizeBaseURL(raw string) (string, error) {
	u, err := netx.ParseBaseURL(raw)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, validation.Required, validation.By(isBaseURL)),
		validation.Field(&c.Username, validation.Required),
		validation.Field(&c.Password, validation.By(notEmptySecret)),
		validation.Field(&c.Timeout, validation.Required, validation.Min(time.Millisecond)),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.LogFormat, validation.In(logging.FormatText, logging.FormatJSON)),
		validation.Field(&c.LogBackend, validation.In(logging.BackendHclog, logging.BackendSlog)),
	)
}

func isBaseURL(v any) error {
	s, _ := v.(string)
	if s == "" {
		return nil
	}
	if _, err := netx.ParseBaseURL(s); err != nil {
		return validation.NewError("validation_base_url", "must be an absolute http or https URL")
	}
	return nil
}

func notEmptySecret(v any) error {
	if s, ok := v.(secret.String); !ok || s.IsEmpty() {
		return validation.ErrRequired
	}
	return nil
}

// parseDuration accepts Go durations ("15s") and bare seconds ("15").
func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	if secs, err := strconv.Atoi(s); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return 0, fmt.Errorf("invalid duration %q", s)
}
