// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package triangle

import (
	"fmt"
	"os"
	"strings"

	"github.com/gogpu/gputypes"
	"gopkg.in/yaml.v3"
)

// Surface format names accepted in Config.Format.
const (
	FormatBGRA8Unorm = "bgra8unorm"
	FormatRGBA8Unorm = "rgba8unorm"
)

// AlphaMode controls how the rendered surface is composited.
type AlphaMode string

// Alpha modes accepted in Config.AlphaMode.
const (
	// AlphaPremultiplied blends the fragment output with premultiplied alpha.
	AlphaPremultiplied AlphaMode = "premultiplied"

	// AlphaOpaque writes the fragment output without blending.
	AlphaOpaque AlphaMode = "opaque"
)

// Config holds window and surface settings.
//
// The zero value is not usable; start from DefaultConfig and override
// fields with the With* methods or LoadConfig.
type Config struct {
	// Title is the window title.
	Title string `yaml:"title"`

	// Width and Height are the initial window size in pixels.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Format is the surface texture format name ("bgra8unorm" or "rgba8unorm").
	Format string `yaml:"format"`

	// AlphaMode selects premultiplied blending or opaque output.
	AlphaMode AlphaMode `yaml:"alpha_mode"`

	// ClearColor is the RGBA color the surface is cleared to every frame.
	ClearColor [4]float64 `yaml:"clear_color,flow"`

	// ContinuousRender redraws at VSync when true, on demand otherwise.
	ContinuousRender bool `yaml:"continuous_render"`
}

// DefaultConfig returns the configuration used when no file is given:
// an 800x600 window, bgra8unorm surface, premultiplied alpha, opaque
// black clear and continuous VSync rendering.
func DefaultConfig() Config {
	return Config{
		Title:            "WebGPU Triangle",
		Width:            800,
		Height:           600,
		Format:           FormatBGRA8Unorm,
		AlphaMode:        AlphaPremultiplied,
		ClearColor:       ClearColor,
		ContinuousRender: true,
	}
}

// WithTitle returns a copy of c with the window title set.
func (c Config) WithTitle(title string) Config {
	c.Title = title
	return c
}

// WithSize returns a copy of c with the initial window size set.
func (c Config) WithSize(width, height int) Config {
	c.Width = width
	c.Height = height
	return c
}

// WithFormat returns a copy of c with the surface format name set.
func (c Config) WithFormat(format string) Config {
	c.Format = format
	return c
}

// WithAlphaMode returns a copy of c with the alpha mode set.
func (c Config) WithAlphaMode(mode AlphaMode) Config {
	c.AlphaMode = mode
	return c
}

// WithContinuousRender returns a copy of c with continuous rendering toggled.
func (c Config) WithContinuousRender(enabled bool) Config {
	c.ContinuousRender = enabled
	return c
}

// LoadConfig reads a YAML config file and applies it over DefaultConfig.
// Keys missing from the file keep their default values.
//
// Example file:
//
//	title: My Triangle
//	width: 1024
//	height: 768
//	format: bgra8unorm
//	alpha_mode: premultiplied
//	clear_color: [0, 0, 0, 1]
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	Logger().Debug("config loaded", "path", path, "width", cfg.Width, "height", cfg.Height, "format", cfg.Format)
	return cfg, nil
}

// Validate checks that the size is positive and that the format and alpha
// mode names are known. Names are matched case-insensitively.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if _, err := c.TextureFormat(); err != nil {
		return err
	}
	if _, err := c.Alpha(); err != nil {
		return err
	}
	for _, ch := range c.ClearColor {
		if ch < 0 || ch > 1 {
			return fmt.Errorf("triangle: clear color component %v out of [0, 1]", ch)
		}
	}
	return nil
}

// TextureFormat maps the Format name to a gputypes texture format.
func (c Config) TextureFormat() (gputypes.TextureFormat, error) {
	switch strings.ToLower(strings.TrimSpace(c.Format)) {
	case FormatBGRA8Unorm:
		return gputypes.TextureFormatBGRA8Unorm, nil
	case FormatRGBA8Unorm:
		return gputypes.TextureFormatRGBA8Unorm, nil
	default:
		return gputypes.TextureFormatUndefined, fmt.Errorf("%w: %q", ErrUnsupportedFormat, c.Format)
	}
}

// Alpha returns the alpha mode with case and surrounding space ignored.
func (c Config) Alpha() (AlphaMode, error) {
	switch mode := AlphaMode(strings.ToLower(strings.TrimSpace(string(c.AlphaMode)))); mode {
	case AlphaPremultiplied, AlphaOpaque:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: alpha mode %q", ErrUnsupportedFormat, c.AlphaMode)
	}
}
