package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/theirongolddev/training/internal/model"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.GraphDays != 7 || cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("defaults = %+v", cfg)
	}
	if Exists() {
		t.Fatal("Exists() = true for missing file")
	}
}

func TestSaveThenLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.GraphDays = 14
	cfg.General.DataPath = "/tmp/train.db"
	cfg.Appearance.Theme = "tokyo-night"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Fatalf("Load = %+v, want %+v", got, cfg)
	}
}

func TestLoadFileFixesNonPositiveValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[general]\ngraph_days = 0\nbar_width = -3\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.General.GraphDays != 7 || cfg.General.BarWidth != 30 {
		t.Fatalf("cfg = %+v", cfg.General)
	}
}

func TestLoadFileRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[general\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFile(path)
	if !model.IsValidation(err) {
		t.Fatalf("LoadFile(bad toml) = %v, want validation error", err)
	}
}

func TestLoadFileUnreadableIsIOError(t *testing.T) {
	// A directory exists but cannot be read as a file.
	_, err := LoadFile(t.TempDir())
	if model.KindOf(err) != model.KindIO {
		t.Fatalf("LoadFile(dir) = %v, want I/O error", err)
	}
}

func TestDataPathPrecedence(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/xdg")
	t.Setenv("TRAINING_DB", "")

	cfg := DefaultConfig()
	if got := DataPath(cfg); got != filepath.Join("/xdg", "training", "training.db") {
		t.Fatalf("default DataPath = %q", got)
	}

	cfg.General.DataPath = "/from/config.db"
	if got := DataPath(cfg); got != "/from/config.db" {
		t.Fatalf("config DataPath = %q", got)
	}

	t.Setenv("TRAINING_DB", "/from/env.db")
	if got := DataPath(cfg); got != "/from/env.db" {
		t.Fatalf("env DataPath = %q", got)
	}
}
