package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"github.com/simonhull/coverart/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("COVERART_LOG_LEVEL", "")
	path := filepath.Join(t.TempDir(), "absent.toml")

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected exists to be false")
	}
	if resolved != path {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, path)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("expected default level info, got %q", cfg.Logging.Level)
	}
	if !filepath.IsAbs(cfg.Extract.OutputDir) {
		t.Fatalf("expected output dir to be absolute, got %q", cfg.Extract.OutputDir)
	}
}

func TestLoadCustomPath(t *testing.T) {
	t.Setenv("COVERART_LOG_LEVEL", "")
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "coverart.toml")

	custom := config.Default()
	custom.Logging.Format = "JSON"
	custom.Logging.Level = "Debug"
	custom.Extract.OutputDir = filepath.Join(tempDir, "covers")
	custom.Extract.MaxArtworkSize = 1 << 20
	custom.Extract.Workers = 3
	custom.Extract.BlurHash = true

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, _, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected normalized logging settings, got %+v", cfg.Logging)
	}
	if cfg.Extract.OutputDir != filepath.Join(tempDir, "covers") {
		t.Fatalf("unexpected output dir %q", cfg.Extract.OutputDir)
	}
	if cfg.Extract.MaxArtworkSize != 1<<20 || cfg.Extract.Workers != 3 || !cfg.Extract.BlurHash {
		t.Fatalf("unexpected extract settings %+v", cfg.Extract)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "coverart.toml")
	if err := os.WriteFile(configPath, []byte("[extract]\noutput = \"x\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestLoadRejectsDirectory(t *testing.T) {
	if _, _, _, err := config.Load(t.TempDir()); err == nil {
		t.Fatal("expected error when config path is a directory")
	}
}

func TestEnvOverridesLogLevel(t *testing.T) {
	t.Setenv("COVERART_LOG_LEVEL", "WARN")

	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("expected env level warn, got %q", cfg.Logging.Level)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "[extract]") {
		t.Fatalf("sample config missing extract section: %s", contents)
	}

	// The sample must load cleanly as a real config file
	t.Setenv("COVERART_LOG_LEVEL", "")
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	if !strings.HasSuffix(cfg.Extract.OutputDir, filepath.Join("Pictures", "covers")) {
		t.Fatalf("expected expanded sample output dir, got %q", cfg.Extract.OutputDir)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"bad format", func(c *config.Config) { c.Logging.Format = "xml" }},
		{"bad level", func(c *config.Config) { c.Logging.Level = "verbose" }},
		{"empty output dir", func(c *config.Config) { c.Extract.OutputDir = "" }},
		{"negative size", func(c *config.Config) { c.Extract.MaxArtworkSize = -1 }},
		{"negative workers", func(c *config.Config) { c.Extract.Workers = -2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}

	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	got, err := config.ExpandPath("~/covers")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(home, "covers") {
		t.Fatalf("unexpected expansion %q", got)
	}

	got, err = config.ExpandPath("")
	if err != nil || got != "" {
		t.Fatalf("empty path should stay empty, got %q, %v", got, err)
	}
}
