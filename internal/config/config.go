// Package config loads medcalc settings from defaults, an optional TOML
// file, the environment and command-line flags, in increasing order of
// precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/leofalp/medcalc/providers/observability/slogobs"
)

// EnvConfigPath names the environment variable holding the TOML file path.
const EnvConfigPath = "MEDCALC_CONFIG"

// Transports.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config holds process configuration. Fields left unset by the environment
// keep the value from the file or the defaults.
type Config struct {
	Transport string `toml:"transport"  env:"MEDCALC_TRANSPORT"`
	HTTPAddr  string `toml:"http_addr"  env:"MEDCALC_HTTP_ADDR"`
	LogLevel  string `toml:"log_level"  env:"MEDCALC_LOG_LEVEL"`
	LogFormat string `toml:"log_format" env:"MEDCALC_LOG_FORMAT"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Transport: TransportStdio,
		HTTPAddr:  "localhost:8081",
		LogLevel:  "info",
		LogFormat: string(slogobs.FormatCompact),
	}
}

// Load applies the TOML file named by MEDCALC_CONFIG (if any) and then the
// environment on top of the defaults. environ is the environment as a map;
// nil means the process environment.
func Load(environ map[string]string) (Config, error) {
	if environ == nil {
		environ = env.ToMap(os.Environ())
	}

	cfg := Default()
	if path := strings.TrimSpace(environ[EnvConfigPath]); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// loadFile decodes path over cfg. Keys the file does not define are left
// untouched; unknown keys are rejected.
func loadFile(path string, cfg *Config) error {
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("load config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// RegisterFlags binds the serve flags to cfg, using its current values as
// defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Transport, "transport", c.Transport, "Transport type: stdio or http")
	fs.StringVar(&c.HTTPAddr, "http-addr", c.HTTPAddr, "HTTP server address (for HTTP transport)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level: trace, debug, info, warn or error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "Log format: compact or json")
}

// ParseFlags registers the flags on fs, parses args and validates the
// result.
func (c *Config) ParseFlags(fs *flag.FlagSet, args []string) error {
	c.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	return c.Validate()
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error
	switch c.Transport {
	case TransportStdio:
	case TransportHTTP:
		if strings.TrimSpace(c.HTTPAddr) == "" {
			errs = append(errs, errors.New("http_addr is required for the http transport"))
		}
	default:
		errs = append(errs, fmt.Errorf("transport %q not supported (want stdio or http)", c.Transport))
	}
	if _, err := slogobs.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if _, err := slogobs.ParseFormat(c.LogFormat); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
