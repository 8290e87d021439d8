package config

import (
	"bytes"
	"errors"
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFlagSet(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantErr  bool
		expected Config
		rest     []string
	}{
		{
			name: "long flags",
			args: []string{"-base-url", "http://localhost:9090", "-username", "me", "-password", "pw", "-timeout", "3s", "Card"},
			expected: Config{
				BaseURL: "http://localhost:9090", Username: "me", Timeout: 3 * time.Second,
				LogLevel: "warn", LogFormat: "text", LogBackend: "hclog",
			},
			rest: []string{"Card"},
		},
		{
			name: "short flags and logging",
			args: []string{"-u", "me", "-p", "pw", "-log-level", "debug", "-log-format", "json", "-log-backend", "slog", "Card", "card.md"},
			expected: Config{
				BaseURL: DefaultBaseURL, Username: "me", Timeout: DefaultTimeout,
				LogLevel: "debug", LogFormat: "json", LogBackend: "slog",
			},
			rest: []string{"Card", "card.md"},
		},
		{name: "incorrect timeout", args: []string{"-timeout", "abc"}, wantErr: true},
		{name: "unknown flag", args: []string{"-x"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.LoadDefaults()

			fs := NewFlagSet("create", cfg)
			err := fs.Parse(tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, "pw", cfg.Password.Reveal())
			got := *cfg
			got.Password = tt.expected.Password
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.rest, fs.Args())
		})
	}
}

func TestNewFlagSet_Help(t *testing.T) {
	cfg := &Config{}
	err := NewFlagSet("create", cfg).Parse([]string{"-h"})
	assert.True(t, errors.Is(err, flag.ErrHelp))
}

func TestFlagHelp_HidesPassword(t *testing.T) {
	t.Setenv(EnvPassword, "hunter2")

	var buf bytes.Buffer
	FlagHelp(&buf)

	out := buf.String()
	assert.Contains(t, out, "-password")
	assert.Contains(t, out, "SN_PASSWORD")
	assert.Contains(t, out, DefaultBaseURL)
	assert.NotContains(t, out, "hunter2")
}
