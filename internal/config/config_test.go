package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %s, want 8080", cfg.Port)
	}
	if cfg.DataBackend != "file" {
		t.Errorf("DataBackend = %s, want file", cfg.DataBackend)
	}
	if cfg.SaveDelay != 800*time.Millisecond {
		t.Errorf("SaveDelay = %v, want 800ms", cfg.SaveDelay)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_BACKEND", "memory")
	t.Setenv("SAVE_DELAY", "0s")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Port = %s, want 9090", cfg.Port)
	}
	if cfg.DataBackend != "memory" {
		t.Errorf("DataBackend = %s, want memory", cfg.DataBackend)
	}
	if cfg.SaveDelay != 0 {
		t.Errorf("SaveDelay = %v, want 0", cfg.SaveDelay)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:          "8080",
			DataBackend:   "memory",
			AdminEmail:    "admin@logisystem.cl",
			AdminPassword: "admin123",
			SaveDelay:     time.Second,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:    "non-numeric port",
			mutate:  func(c *Config) { c.Port = "abc" },
			wantMsg: "invalid port",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Port = "70000" },
			wantMsg: "invalid port",
		},
		{
			name:    "unknown backend",
			mutate:  func(c *Config) { c.DataBackend = "redis" },
			wantMsg: "invalid data backend",
		},
		{
			name:    "missing admin email",
			mutate:  func(c *Config) { c.AdminEmail = "" },
			wantMsg: "admin email",
		},
		{
			name:    "missing admin password",
			mutate:  func(c *Config) { c.AdminPassword = "" },
			wantMsg: "admin password",
		},
		{
			name:    "negative save delay",
			mutate:  func(c *Config) { c.SaveDelay = -time.Second },
			wantMsg: "invalid save delay",
		},
		{
			name:    "missing seed file",
			mutate:  func(c *Config) { c.SeedFile = "/nonexistent/seed.yaml" },
			wantMsg: "seed file does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantMsg == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Validate() error %q does not contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestValidateAccumulatesErrors(t *testing.T) {
	cfg := &Config{
		Port:        "abc",
		DataBackend: "redis",
	}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	for _, want := range []string{"invalid port", "invalid data backend", "admin email", "admin password"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q missing %q", msg, want)
		}
	}
}

func TestValidateCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	cfg := &Config{
		Port:          "8080",
		DataBackend:   "file",
		DataDir:       dir,
		AdminEmail:    "a@b.c",
		AdminPassword: "x",
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
}
