package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/sn/internal/netx"
	"github.com/dmitrijs2005/sn/internal/secret"
)

func env(vars map[string]string) LookupEnv {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "https://api.supernotes.app/v1/", c.BaseURL)
	assert.Equal(t, 30*time.Second, c.Timeout)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, "text", c.LogFormat)
	assert.Equal(t, "hclog", c.LogBackend)
}

func TestLoadConfig_DefaultsOnly(t *testing.T) {
	cfg, rest, err := LoadConfig([]string{"Card title"}, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"Card title"}, rest)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Empty(t, cfg.Username)
	assert.True(t, cfg.Password.IsEmpty())
}

func TestLoadConfig_Env(t *testing.T) {
	cfg, rest, err := LoadConfig([]string{"Card title", "card.md"}, env(map[string]string{
		EnvBaseURL:  "http://127.0.0.1:1234",
		EnvUsername: "username",
		EnvPassword: "password",
		EnvTimeout:  "5",
		EnvLogLevel: "DEBUG",
	}))

	require.NoError(t, err)
	assert.Equal(t, []string{"Card title", "card.md"}, rest)
	assert.Equal(t, "http://127.0.0.1:1234/", cfg.BaseURL)
	assert.Equal(t, "username", cfg.Username)
	assert.Equal(t, "password", cfg.Password.Reveal())
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_FlagsOverrideEnvAndFile(t *testing.T) {
	path := writeFile(t, "sn.json", `{"base_url":"https://file.example","username":"file-user","timeout":"10s"}`)

	cfg, rest, err := LoadConfig([]string{
		"-c", path,
		"-u", "flag-user",
		"-p", "flag-pass",
		"-timeout", "2s",
		"Card title",
	}, env(map[string]string{
		EnvUsername: "env-user",
		EnvBaseURL:  "https://env.example/v1",
	}))

	require.NoError(t, err)
	want := &Config{
		BaseURL:    "https://env.example/v1/",
		Username:   "flag-user",
		Password:   secret.New("flag-pass"),
		Timeout:    2 * time.Second,
		LogLevel:   "warn",
		LogFormat:  "text",
		LogBackend: "hclog",
	}
	assert.Empty(t, cmp.Diff(want, cfg, cmp.AllowUnexported(secret.String{})))
	assert.Equal(t, []string{"Card title"}, rest)
}

func TestLoadConfig_FileFormats(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
	}{
		{"json", "sn.json", `{"base_url":"https://file.example/api","username":"me","password":"pw","timeout":"7s","log_level":"info"}`},
		{"hcl", "sn.hcl", `
base_url  = "https://file.example/api"
username  = "me"
password  = "pw"
timeout   = "7s"
log_level = "info"
`},
		{"yaml", "sn.yaml", `
base_url: https://file.example/api
username: me
password: pw
timeout: 7s
log_level: info
`},
		{"yml", "sn.yml", "base_url: https://file.example/api\nusername: me\npassword: pw\ntimeout: \"7\"\nlog_level: info\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.body)

			cfg, _, err := LoadConfig([]string{"-config=" + path}, nil)

			require.NoError(t, err)
			assert.Equal(t, "https://file.example/api/", cfg.BaseURL)
			assert.Equal(t, "me", cfg.Username)
			assert.Equal(t, "pw", cfg.Password.Reveal())
			assert.Equal(t, 7*time.Second, cfg.Timeout)
			assert.Equal(t, "info", cfg.LogLevel)
		})
	}
}

func TestLoadConfig_FileErrors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		body     string
		contains string
	}{
		{"invalid json", "bad.json", `{ this is not valid json`, "error parsing config file"},
		{"unknown hcl attribute", "bad.hcl", `colour = "red"`, "error parsing config file"},
		{"bad timeout", "bad.yaml", "timeout: soon\n", "timeout"},
		{"unsupported extension", "sn.toml", `base_url = "x"`, "unsupported config file extension"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.body)

			_, _, err := LoadConfig([]string{"-c", path}, nil)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}

	_, _, err := LoadConfig([]string{"-c", filepath.Join(t.TempDir(), "missing.json")}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoadConfig_BadEnvTimeout(t *testing.T) {
	_, _, err := LoadConfig(nil, env(map[string]string{EnvTimeout: "later"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvTimeout)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		c := &Config{}
		c.LoadDefaults()
		c.Username = "username"
		c.Password = secret.New("password")
		return c
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
		field  string
	}{
		{"missing username", func(c *Config) { c.Username = "" }, "username"},
		{"missing password", func(c *Config) { c.Password = secret.String{} }, "password"},
		{"missing base url", func(c *Config) { c.BaseURL = "" }, "base_url"},
		{"relative base url", func(c *Config) { c.BaseURL = "api.supernotes.app/v1" }, "base_url"},
		{"wrong scheme", func(c *Config) { c.BaseURL = "ftp://example.com/" }, "base_url"},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, "timeout"},
		{"bad level", func(c *Config) { c.LogLevel = "verbose" }, "log_level"},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }, "log_format"},
		{"bad backend", func(c *Config) { c.LogBackend = "zap" }, "log_backend"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)

			err := c.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestValidate_ReportsAllFieldsWithoutLeakingPassword(t *testing.T) {
	c := &Config{BaseURL: "nope", Password: secret.New("hunter2"), Timeout: time.Second}

	err := c.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_url")
	assert.Contains(t, err.Error(), "username")
	assert.NotContains(t, err.Error(), "hunter2")
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := NormalizeBaseURL("https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/", got)

	base, err := netx.ParseBaseURL(got)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/user/login", netx.Resolve(base, "user/login"))
	assert.Equal(t, "https://example.com/cards/", netx.Resolve(base, "cards/"))

	_, err = NormalizeBaseURL("example.com")
	require.Error(t, err)
}

func TestParseDuration(t *testing.T) {
	d, err := parseDuration("1m30s")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, d)

	d, err = parseDuration(" 12 ")
	require.NoError(t, err)
	assert.Equal(t, 12*time.Second, d)

	_, err = parseDuration("soon")
	require.Error(t, err)
}

func TestLoadConfig_ConfigFlagAfterNameIsPositional(t *testing.T) {
	path := writeFile(t, "sn.json", `{ this is not valid json`)

	cfg, rest, err := LoadConfig([]string{"Card title", "-c", path}, nil)

	require.NoError(t, err, "a -c after NAME must not be loaded")
	assert.Equal(t, []string{"Card title", "-c", path}, rest)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
}
