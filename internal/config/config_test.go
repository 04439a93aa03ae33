package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/postersmith/postersmith/pkg/errors"
)

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Tool.Binary != "magick" {
		t.Errorf("Binary = %q, want magick", cfg.Tool.Binary)
	}
	if cfg.Batch.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Batch.Workers)
	}
	if cfg.Batch.Language != "en" {
		t.Errorf("Language = %q, want en", cfg.Batch.Language)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "postersmith.toml")
	content := `
[tool]
binary = "convert"
timeout_seconds = 60

[batch]
workers = 8
language = "fr"

[paths]
output = "/data/posters"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Tool.Binary != "convert" {
		t.Errorf("Binary = %q, want convert", cfg.Tool.Binary)
	}
	if cfg.Batch.Workers != 8 || cfg.Batch.Language != "fr" {
		t.Errorf("Batch = %+v", cfg.Batch)
	}
	if cfg.Paths.Output != "/data/posters" {
		t.Errorf("Output = %q", cfg.Paths.Output)
	}
	// Untouched settings keep their defaults
	if cfg.Paths.Assets != "assets" {
		t.Errorf("Assets = %q, want assets", cfg.Paths.Assets)
	}
}

func TestLoadMissingNamedFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero workers", "[batch]\nworkers = 0\n"},
		{"negative timeout", "[tool]\ntimeout_seconds = -1\n"},
		{"empty binary", "[tool]\nbinary = \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestStorePath(t *testing.T) {
	cfg := Default()
	cfg.Paths.Store = "/data/cache.db"
	p, err := cfg.StorePath()
	if err != nil || p != "/data/cache.db" {
		t.Errorf("StorePath = %q, %v", p, err)
	}

	cfg.Paths.Store = ""
	t.Setenv("XDG_CACHE_HOME", "/xdg")
	p, err = cfg.StorePath()
	if err != nil || p != "/xdg/postersmith/pointsizes.db" {
		t.Errorf("StorePath = %q, %v", p, err)
	}
}
