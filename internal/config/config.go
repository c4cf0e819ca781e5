// Package config loads and saves the training TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/training/internal/model"

	"github.com/BurntSushi/toml"
)

// Config holds all training configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DataPath  string `toml:"data_path,omitempty"`
	GraphDays int    `toml:"graph_days"`
	BarWidth  int    `toml:"bar_width"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			GraphDays: 7,
			BarWidth:  30,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "training")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "training")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// DefaultDataPath returns the XDG-compliant database location.
func DefaultDataPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "training", "training.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "training", "training.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	return LoadFile(Path())
}

// LoadFile reads the config at path, returning defaults if it doesn't exist.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, model.IOError("reading config "+path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, model.Validationf("parsing config %s: %v", path, err)
	}
	if cfg.General.GraphDays <= 0 {
		cfg.General.GraphDays = DefaultConfig().General.GraphDays
	}
	if cfg.General.BarWidth <= 0 {
		cfg.General.BarWidth = DefaultConfig().General.BarWidth
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// DataPath resolves the database location: TRAINING_DB, then the config
// file, then the XDG default.
func DataPath(cfg Config) string {
	if p := os.Getenv("TRAINING_DB"); p != "" {
		return p
	}
	if cfg.General.DataPath != "" {
		return cfg.General.DataPath
	}
	return DefaultDataPath()
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
