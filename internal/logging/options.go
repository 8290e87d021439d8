package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
)

const (
	BackendHclog = "hclog"
	BackendSlog  = "slog"

	FormatText = "text"
	FormatJSON = "json"
)

// Options selects and configures a Logger backend.
type Options struct {
	Name    string
	Backend string // hclog (default) or slog
	Level   string // debug, info, warn, error
	Format  string // text (default) or json
	Output  io.Writer
}

// New returns a Logger for opts. Unknown backends and levels are errors so a
// typo in a config file does not silently change verbosity.
func New(opts Options) (Logger, error) {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}

	level := strings.ToLower(strings.TrimSpace(opts.Level))
	if level == "" {
		level = "warn"
	}

	switch opts.Backend {
	case "", BackendHclog:
		lvl := hclog.LevelFromString(level)
		if lvl == hclog.NoLevel {
			return nil, fmt.Errorf("unknown log level %q", opts.Level)
		}
		return NewHclogLogger(hclog.New(&hclog.LoggerOptions{
			Name:       opts.Name,
			Level:      lvl,
			Output:     opts.Output,
			JSONFormat: opts.Format == FormatJSON,
		})), nil

	case BackendSlog:
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("unknown log level %q", opts.Level)
		}
		l := newSlog(opts.Output, lvl, opts.Format)
		if opts.Name != "" {
			return l.With("logger", opts.Name), nil
		}
		return l, nil

	default:
		return nil, fmt.Errorf("unknown log backend %q", opts.Backend)
	}
}
