package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/sn/internal/secret"
)

// NewFlagSet returns a flag set bound to cfg: each flag defaults to the
// current value in cfg and writes back into it when parsed. Parse errors are
// returned rather than printed; -h yields flag.ErrHelp.
func NewFlagSet(name string, cfg *Config) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	// Consumed by flagx.ConfigFileFlag before parsing; registered so Parse
	// accepts them.
	var configFile string
	fs.StringVar(&configFile, "config", "", "Path to a .json, .hcl or .yaml config file")
	fs.StringVar(&configFile, "c", "", "Shorthand for -config")

	fs.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "The API base URL [env SN_BASE_URL]")
	fs.StringVar(&cfg.Username, "username", cfg.Username, "The username to login with [env SN_USERNAME]")
	fs.StringVar(&cfg.Username, "u", cfg.Username, "Shorthand for -username")
	fs.Var(&secretValue{&cfg.Password}, "password", "The password [env SN_PASSWORD]")
	fs.Var(&secretValue{&cfg.Password}, "p", "Shorthand for -password")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Timeout of each HTTP request [env SN_TIMEOUT]")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error [env SN_LOG_LEVEL]")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: text or json")
	fs.StringVar(&cfg.LogBackend, "log-backend", cfg.LogBackend, "Log backend: hclog or slog")

	return fs
}

// FlagHelp renders the flag defaults of a fresh default config, for usage
// text.
func FlagHelp(w io.Writer) {
	cfg := &Config{}
	cfg.LoadDefaults()
	fs := NewFlagSet("create", cfg)
	fs.SetOutput(w)
	fs.PrintDefaults()
}

// secretValue is a flag.Value that keeps the password out of help output.
type secretValue struct {
	s *secret.String
}

func (v *secretValue) String() string {
	return ""
}

func (v *secretValue) Set(s string) error {
	*v.s = secret.New(s)
	return nil
}
