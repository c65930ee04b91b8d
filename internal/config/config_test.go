package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "medcalc.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(map[string]string{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestLoad_Precedence(t *testing.T) {
	path := writeConfig(t, `
transport = "http"
http_addr = "0.0.0.0:9000"
log_level = "debug"
`)

	cfg, err := Load(map[string]string{
		EnvConfigPath:       path,
		"MEDCALC_LOG_LEVEL": "warn",
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Transport != "http" {
		t.Errorf("transport = %q, want http from file", cfg.Transport)
	}
	if cfg.HTTPAddr != "0.0.0.0:9000" {
		t.Errorf("http addr = %q, want file value", cfg.HTTPAddr)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("log level = %q, want warn from env", cfg.LogLevel)
	}
	if cfg.LogFormat != "compact" {
		t.Errorf("log format = %q, want default", cfg.LogFormat)
	}

	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	if err := cfg.ParseFlags(fs, []string{"-transport", "stdio"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if cfg.Transport != "stdio" {
		t.Errorf("transport = %q, want stdio from flag", cfg.Transport)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("flag parsing reset log level to %q", cfg.LogLevel)
	}
}

func TestLoad_FileErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"missing file", filepath.Join(t.TempDir(), "absent.toml"), "load config"},
		{"bad syntax", writeConfig(t, "transport = "), "load config"},
		{"unknown key", writeConfig(t, `transprt = "http"`), "unknown keys transprt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(map[string]string{EnvConfigPath: tt.path})
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"http", func(c *Config) { c.Transport = "http" }, ""},
		{"unknown transport", func(c *Config) { c.Transport = "grpc" }, "not supported"},
		{"http without addr", func(c *Config) { c.Transport = "http"; c.HTTPAddr = " " }, "http_addr is required"},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, "unknown log level"},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }, "unknown log format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseFlags_RejectsInvalid(t *testing.T) {
	cfg := Default()
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	err := cfg.ParseFlags(fs, []string{"-transport", "carrier-pigeon"})
	if err == nil || !strings.Contains(err.Error(), "not supported") {
		t.Fatalf("ParseFlags() = %v, want unsupported transport", err)
	}
}
