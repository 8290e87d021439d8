package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/sn/internal/secret"
)

// fileConfig is the on-disk shape shared by the JSON, HCL and YAML loaders.
// Timeout is a duration string such as "15s".
type fileConfig struct {
	BaseURL    string `json:"base_url" hcl:"base_url,optional" yaml:"base_url"`
	Username   string `json:"username" hcl:"username,optional" yaml:"username"`
	Password   string `json:"password" hcl:"password,optional" yaml:"password"`
	Timeout    string `json:"timeout" hcl:"timeout,optional" yaml:"timeout"`
	LogLevel   string `json:"log_level" hcl:"log_level,optional" yaml:"log_level"`
	LogFormat  string `json:"log_format" hcl:"log_format,optional" yaml:"log_format"`
	LogBackend string `json:"log_backend" hcl:"log_backend,optional" yaml:"log_backend"`
}

// parseFile overlays cfg with the non-empty values of the config file at
// path.
func parseFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &fc)
	case ".hcl":
		err = hclsimple.Decode(filepath.Base(path), data, nil, &fc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		return fmt.Errorf("unsupported config file extension %q (want .json, .hcl, .yaml or .yml)", ext)
	}
	if err != nil {
		return fmt.Errorf("error parsing config file %s: %w", path, err)
	}

	return fc.apply(cfg)
}

func (fc *fileConfig) apply(cfg *Config) error {
	setString(&cfg.BaseURL, fc.BaseURL)
	setString(&cfg.Username, fc.Username)
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.LogFormat, fc.LogFormat)
	setString(&cfg.LogBackend, fc.LogBackend)
	if fc.Password != "" {
		cfg.Password = secret.New(fc.Password)
	}
	if fc.Timeout != "" {
		d, err := parseDuration(fc.Timeout)
		if err != nil {
			return fmt.Errorf("timeout: %w", err)
		}
		cfg.Timeout = d
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
