package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"
)

func TestServiceConfigApplyDefaults(t *testing.T) {
	t.Run("empty environment defaults to development", func(t *testing.T) {
		cfg := ServiceConfig{Name: "gwutil"}
		cfg.ApplyDefaults()
		if cfg.Environment != "development" {
			t.Errorf("expected 'development', got %q", cfg.Environment)
		}
		if !cfg.Debug {
			t.Error("expected debug=true for development")
		}
		if cfg.Logging.ServiceName != "gwutil" {
			t.Errorf("expected logging service name to follow Name, got %q", cfg.Logging.ServiceName)
		}
		if cfg.Logging.Level != "info" {
			t.Errorf("expected logging level default 'info', got %q", cfg.Logging.Level)
		}
	})

	t.Run("production environment keeps debug false", func(t *testing.T) {
		cfg := ServiceConfig{Name: "gwutil", Environment: "production"}
		cfg.ApplyDefaults()
		if cfg.Debug {
			t.Error("expected debug=false for production")
		}
	})

	t.Run("explicit logging service name is kept", func(t *testing.T) {
		cfg := ServiceConfig{Name: "gwutil"}
		cfg.Logging.ServiceName = "edge"
		cfg.ApplyDefaults()
		if cfg.Logging.ServiceName != "edge" {
			t.Errorf("expected 'edge', got %q", cfg.Logging.ServiceName)
		}
	})
}

func TestServiceConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ServiceConfig
		wantErr string
	}{
		{"valid development", ServiceConfig{Name: "svc", Environment: "development"}, ""},
		{"valid production", ServiceConfig{Name: "svc", Environment: "production"}, ""},
		{"missing name", ServiceConfig{Environment: "production"}, "name: is required"},
		{"invalid environment", ServiceConfig{Name: "svc", Environment: "qa"}, "environment: must be one of"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.cfg.ApplyDefaults()
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("expected error containing %q, got %q", tc.wantErr, err.Error())
			}
		})
	}
}

func TestServiceConfigValidateLogging(t *testing.T) {
	cfg := ServiceConfig{Name: "svc"}
	cfg.ApplyDefaults()
	cfg.Logging.Level = "loud"
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "config.logging") {
		t.Errorf("expected logging error, got %v", err)
	}
}

type testConfig struct {
	ServiceConfig `yaml:",inline" mapstructure:",squash"`
	ACL           struct {
		AllowIP string `mapstructure:"allow_ip"`
		DenyIP  string `mapstructure:"deny_ip"`
	} `mapstructure:"acl"`
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadConfigWithYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", `
name: gw-test
environment: staging
logging:
  level: warn
telemetry:
  interval: 30s
acl:
  allow_ip: "10.0.0.*"
  deny_ip: "*.*.*.*"
`)

	var cfg testConfig
	if err := LoadConfig("gwtest", &cfg, WithConfigFile(path)); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Name != "gw-test" || cfg.Environment != "staging" {
		t.Errorf("unexpected base fields: %+v", cfg.ServiceConfig)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected logging level 'warn', got %q", cfg.Logging.Level)
	}
	if cfg.Telemetry.Interval != 30*time.Second {
		t.Errorf("expected telemetry interval 30s, got %v", cfg.Telemetry.Interval)
	}
	if cfg.ACL.AllowIP != "10.0.0.*" || cfg.ACL.DenyIP != "*.*.*.*" {
		t.Errorf("unexpected acl section: %+v", cfg.ACL)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", "name: gw-test\nacl:\n  allow_ip: \"10.0.0.*\"\n")

	t.Setenv("GWTEST_ACL_ALLOW_IP", "192.168.*.*")
	t.Setenv("GWTEST_LOGGING_LEVEL", "debug")

	var cfg testConfig
	if err := LoadConfig("gwtest", &cfg, WithConfigFile(path)); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.ACL.AllowIP != "192.168.*.*" {
		t.Errorf("expected env to override allow_ip, got %q", cfg.ACL.AllowIP)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected env logging level, got %q", cfg.Logging.Level)
	}
	if cfg.Name != "gw-test" {
		t.Errorf("expected file value to survive, got %q", cfg.Name)
	}
}

func TestLoadConfigEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := writeFile(t, dir, ".env", "GWENVTEST_ACL_DENY_IP=172.16.*.*\n")
	t.Cleanup(func() { os.Unsetenv("GWENVTEST_ACL_DENY_IP") })

	var cfg testConfig
	if err := LoadConfig("gwenvtest", &cfg, WithEnvFile(envPath), WithFileSystem(onlyFS{envPath})); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.ACL.DenyIP != "172.16.*.*" {
		t.Errorf("expected deny_ip from .env, got %q", cfg.ACL.DenyIP)
	}
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	var cfg testConfig
	err := LoadConfig("gwtest", &cfg, WithConfigFile("/nonexistent/path.yml"))
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestLoadConfigMalformedFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yml", "name: [unterminated\n")
	var cfg testConfig
	if err := LoadConfig("gwtest", &cfg, WithConfigFile(path)); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

type mockFS struct {
	files map[string]bool
}

func (m *mockFS) Exists(path string) bool   { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error { return nil }

// onlyFS reports a single existing file and loads it for real.
type onlyFS struct{ path string }

func (o onlyFS) Exists(path string) bool   { return path == o.path }
func (o onlyFS) LoadEnv(path string) error { return RealFileSystem{}.LoadEnv(path) }

func TestResolveFilesWithMockFS(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		filepath.Join(".", "cmd", "gwutil", "config.yml"): true,
		".env":         true,
		"./config.yml": true,
	}}
	files := ResolveFiles("gwutil", LoaderConfig{FileSystem: fs})
	if files.ConfigFile != filepath.Join(".", "cmd", "gwutil", "config.yml") {
		t.Errorf("expected cmd config file first, got %q", files.ConfigFile)
	}
	if files.EnvFile != ".env" {
		t.Errorf("expected .env, got %q", files.EnvFile)
	}
}

func TestResolveFilesExplicitWins(t *testing.T) {
	fs := &mockFS{files: map[string]bool{"./config.yml": true}}
	files := ResolveFiles("gwutil", LoaderConfig{FileSystem: fs, ConfigFile: "/etc/gw.yml"})
	if files.ConfigFile != "/etc/gw.yml" {
		t.Errorf("expected explicit config file, got %q", files.ConfigFile)
	}
	if files.EnvFile != "" {
		t.Errorf("expected no env file, got %q", files.EnvFile)
	}
}

func TestStructKeys(t *testing.T) {
	keys := StructKeys(&testConfig{})
	for _, want := range []string{"name", "environment", "logging.level", "logging.places", "telemetry.enabled", "acl.allow_ip", "acl.deny_ip"} {
		if !slices.Contains(keys, want) {
			t.Errorf("expected key %q in %v", want, keys)
		}
	}
	if StructKeys(42) != nil {
		t.Error("expected nil keys for non-struct")
	}
}

func TestEnvPrefix(t *testing.T) {
	if got := EnvPrefix("gw-util"); got != "GW_UTIL" {
		t.Errorf("expected GW_UTIL, got %q", got)
	}
}

func TestLoaderOptions(t *testing.T) {
	var lc LoaderConfig
	WithFileSystem(&mockFS{})(&lc)
	WithConfigFile("/path/to/config.yml")(&lc)
	WithEnvFile("/path/to/.env")(&lc)
	WithEnvPrefix("EDGE")(&lc)
	if lc.FileSystem == nil || lc.ConfigFile != "/path/to/config.yml" || lc.EnvFile != "/path/to/.env" || lc.EnvPrefix != "EDGE" {
		t.Errorf("options not applied: %+v", lc)
	}
}
