// Package config loads inspector.toml, the project-level settings for class
// generation, export and logging.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"github.com/agiangrant/inspector/render"
	"github.com/agiangrant/inspector/tw"
)

// FileName is the configuration file looked up by Find.
const FileName = "inspector.toml"

// Config represents the inspector.toml configuration file
type Config struct {
	Document    DocumentConfig      `toml:"document"`
	Breakpoints tw.BreakpointConfig `toml:"breakpoints"`
	Classes     ClassesConfig       `toml:"classes"`
	Styles      StylesConfig        `toml:"styles"`
	Export      ExportConfig        `toml:"export"`
	// Scales overrides token families by name (spacing, opacity, z, ...).
	Scales map[string][]string `toml:"scales,omitempty" validate:"dive,keys,oneof=spacing opacity z scale rotate skew hue-rotate saturate brightness contrast grayscale invert sepia,endkeys,min=1"`
	Log    LogConfig           `toml:"log"`
}

type DocumentConfig struct {
	// Path of the state document used when --file is not given.
	Path string `toml:"path" validate:"required"`
}

type ClassesConfig struct {
	// Emit on-scale pixel spacing as tokens (pl-4) instead of pl-[16px].
	SpacingTokens bool `toml:"spacing_tokens"`
}

type StylesConfig struct {
	PerspectiveMultiplier float64 `toml:"perspective_multiplier" validate:"gt=0"`
}

type ExportConfig struct {
	// Selector for elements without an id.
	Selector string `toml:"selector" validate:"required"`
}

type LogConfig struct {
	Level string `toml:"level" validate:"oneof=trace debug info warn error fatal panic disabled"`
	Human bool   `toml:"human"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() Config {
	return Config{
		Document:    DocumentConfig{Path: "inspector.yaml"},
		Breakpoints: tw.DefaultBreakpoints(),
		Styles:      StylesConfig{PerspectiveMultiplier: render.DefaultPerspectiveMultiplier},
		Export:      ExportConfig{Selector: ".component"},
		Log:         LogConfig{Level: "warn", Human: true},
	}
}

// Load reads the configuration at path over the defaults. An empty path looks
// for inspector.toml from the working directory upwards; if none exists the
// defaults are returned.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		dir, err := FindProjectRoot()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, FileName)
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// A document path in the config is relative to the config file.
	if !filepath.IsAbs(cfg.Document.Path) {
		cfg.Document.Path = filepath.Join(filepath.Dir(path), cfg.Document.Path)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path.
func Save(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks value ranges and breakpoint ordering.
func (c Config) Validate() error {
	return validate.Struct(c)
}

// Apply registers the theme part of the configuration with the tw package.
func (c Config) Apply() {
	tw.SetConfig(tw.ThemeConfig{Scales: c.Scales, Breakpoints: c.Breakpoints})
}

// RenderOptions returns the generator options the configuration selects.
func (c Config) RenderOptions() render.Options {
	return render.Options{
		SpacingTokens:         c.Classes.SpacingTokens,
		PerspectiveMultiplier: c.Styles.PerspectiveMultiplier,
	}
}

// FindProjectRoot finds the project root by looking for inspector.toml or go.mod
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, FileName)); err == nil {
			return dir, nil
		}
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s or go.mod found", FileName)
		}
		dir = parent
	}
}
