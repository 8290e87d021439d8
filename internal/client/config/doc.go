// Package config loads runtime configuration for the sn CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config (see parseFile).
//     The format follows the extension: .json, .hcl, .yaml or .yml.
//  3. SN_* environment variables (see parseEnv).
//  4. Command-line flags (see NewFlagSet), which override everything else.
//
// Supported flags
//
//	-base-url string    API base URL (default https://api.supernotes.app/v1/)
//	-u, -username       user to log in as
//	-p, -password       password (prefer SN_PASSWORD or the prompt)
//	-timeout duration   per-request HTTP timeout
//	-log-level string   debug, info, warn or error
//	-log-format string  text or json
//	-log-backend string hclog or slog
//
// # Environment
//
//	SN_BASE_URL, SN_USERNAME, SN_PASSWORD, SN_TIMEOUT, SN_LOG_LEVEL
//
// # File schema
//
// JSON and YAML use the same snake_case keys; HCL uses them as attributes:
//
//	base_url = "https://api.supernotes.app/v1/"
//	username = "me@example.com"
//	timeout  = "15s"
//
// The password is a secret.String and never shows up in help output, logs
// or validation errors.
package config
