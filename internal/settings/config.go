package settings

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"

	"TacNotepad/internal/state"
)

const configFile = "config.toml"

// Config holds the static defaults read from config.toml.
type Config struct {
	EraserColor  string   `toml:"eraser_color"`
	Palette      []string `toml:"palette"`
	DefaultColor string   `toml:"default_color"`
	DefaultWidth float64  `toml:"default_width"`
	MinWidth     float64  `toml:"min_width"`
	MaxWidth     float64  `toml:"max_width"`
	ShareEnabled bool     `toml:"share_enabled"`
	SharePort    int      `toml:"share_port"`
}

// DefaultConfig is written to disk the first time the app starts.
func DefaultConfig() Config {
	return Config{
		EraserColor:  "#ffffff",
		Palette:      []string{"#000000", "#ff0000", "#00a000", "#0000ff", "#ffa500"},
		DefaultColor: "#000000",
		DefaultWidth: 2,
		MinWidth:     1,
		MaxWidth:     20,
		ShareEnabled: false,
		SharePort:    8888,
	}
}

// ConfigDir resolves $XDG_CONFIG_HOME/tacnotepad, falling back to
// ~/.config/tacnotepad.
func ConfigDir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(base, "tacnotepad")
}

// LoadConfig reads config.toml from dir, creating it with defaults when it
// does not exist. Missing keys keep their default values.
func LoadConfig(dir string, lggr *zap.SugaredLogger) (Config, error) {
	conf := DefaultConfig()
	path := filepath.Join(dir, configFile)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		lggr.Infof("Initializing config at %s", path)
		if err := WriteConfig(dir, conf); err != nil {
			return conf, err
		}
		return conf, nil
	} else if err != nil {
		return conf, fmt.Errorf("couldn't check config file: %w", err)
	}

	if _, err := toml.DecodeFile(path, &conf); err != nil {
		return DefaultConfig(), fmt.Errorf("couldn't read config file: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return DefaultConfig(), err
	}
	return conf, nil
}

// WriteConfig stores conf as dir/config.toml.
func WriteConfig(dir string, conf Config) error {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("couldn't create config directory: %w", err)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(conf); err != nil {
		return fmt.Errorf("couldn't encode config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, configFile), buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("couldn't write config file: %w", err)
	}
	return nil
}

// Validate rejects configs the UI can't work with.
func (c Config) Validate() error {
	for _, hex := range append([]string{c.EraserColor, c.DefaultColor}, c.Palette...) {
		if !state.SameColor(hex, hex) {
			return fmt.Errorf("invalid color %q in config", hex)
		}
	}
	if c.MinWidth <= 0 || c.MaxWidth < c.MinWidth {
		return fmt.Errorf("invalid width range %v-%v", c.MinWidth, c.MaxWidth)
	}
	if c.DefaultWidth < c.MinWidth || c.DefaultWidth > c.MaxWidth {
		return fmt.Errorf("default width %v outside %v-%v", c.DefaultWidth, c.MinWidth, c.MaxWidth)
	}
	if c.SharePort <= 0 || c.SharePort > 65535 {
		return fmt.Errorf("invalid share port %d", c.SharePort)
	}
	return nil
}

// ClampWidth limits w to the configured range.
func (c Config) ClampWidth(w float64) float64 {
	return max(c.MinWidth, min(w, c.MaxWidth))
}
