// Package config loads the overlay settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"InkOverlay/internal/render"
	"InkOverlay/internal/state"

	"github.com/pelletier/go-toml/v2"
)

type Pencil struct {
	Width float64 `toml:"width"`
	Color string  `toml:"color"`
}

type Eraser struct {
	Radius float64 `toml:"radius"`
}

type Zoom struct {
	Min  float64 `toml:"min"`
	Max  float64 `toml:"max"`
	Step float64 `toml:"step"`
}

type Config struct {
	LogLevel string `toml:"log_level"`
	Pencil   Pencil `toml:"pencil"`
	Eraser   Eraser `toml:"eraser"`
	Zoom     Zoom   `toml:"zoom"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel: "info",
		Pencil:   Pencil{Width: 2, Color: "black"},
		Eraser:   Eraser{Radius: 10},
		Zoom:     Zoom{Min: 0.3, Max: 3, Step: 1.2},
	}
}

// Load reads path on top of the defaults. A missing file yields the
// defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("could not read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes TOML data on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("could not parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if c.Pencil.Width <= 0 {
		return fmt.Errorf("pencil width must be positive, got %g", c.Pencil.Width)
	}
	if c.Eraser.Radius <= 0 {
		return fmt.Errorf("eraser radius must be positive, got %g", c.Eraser.Radius)
	}
	if c.Zoom.Min <= 0 || c.Zoom.Min > 1 || c.Zoom.Max < 1 {
		return fmt.Errorf("zoom range [%g, %g] must contain 1", c.Zoom.Min, c.Zoom.Max)
	}
	if c.Zoom.Step <= 1 {
		return fmt.Errorf("zoom step must be greater than 1, got %g", c.Zoom.Step)
	}
	if _, err := ParseColor(c.Pencil.Color); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Style returns the pencil stroke style.
func (c Config) Style() render.Style {
	col, err := ParseColor(c.Pencil.Color)
	if err != nil {
		col = render.DefaultStyle.Color
	}
	return render.Style{Width: c.Pencil.Width, Color: col}
}

// EraserConfig returns the eraser footprint.
func (c Config) EraserConfig() state.EraserConfig {
	return state.EraserConfig{Radius: c.Eraser.Radius}
}

// Level returns the slog level named by LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("bad log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}

var namedColors = map[string]color.Color{
	"black": color.Black,
	"red":   color.NRGBA{R: 255, A: 255},
	"green": color.NRGBA{G: 255, A: 255},
	"blue":  color.NRGBA{B: 255, A: 255},
}

// ParseColor accepts one of the named colors or #rrggbb.
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	var r, g, b uint8
	if len(s) == 7 && s[0] == '#' {
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err == nil {
			return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
		}
	}
	return nil, fmt.Errorf("unknown color %q", s)
}
