// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package triangle

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
	if cfg.Format != FormatBGRA8Unorm {
		t.Errorf("Format = %q, want %q", cfg.Format, FormatBGRA8Unorm)
	}
	if cfg.AlphaMode != AlphaPremultiplied {
		t.Errorf("AlphaMode = %q, want %q", cfg.AlphaMode, AlphaPremultiplied)
	}
	if cfg.ClearColor != [4]float64{0, 0, 0, 1} {
		t.Errorf("ClearColor = %v, want opaque black", cfg.ClearColor)
	}
	f, err := cfg.TextureFormat()
	if err != nil || f != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("TextureFormat() = %v, %v; want BGRA8Unorm", f, err)
	}
}

func TestConfigWith(t *testing.T) {
	base := DefaultConfig()
	cfg := base.WithTitle("t").WithSize(320, 240).WithFormat(FormatRGBA8Unorm).
		WithAlphaMode(AlphaOpaque).WithContinuousRender(false)

	if cfg.Title != "t" || cfg.Width != 320 || cfg.Height != 240 {
		t.Errorf("unexpected title/size: %+v", cfg)
	}
	if cfg.Format != FormatRGBA8Unorm || cfg.AlphaMode != AlphaOpaque || cfg.ContinuousRender {
		t.Errorf("unexpected format/alpha/render: %+v", cfg)
	}
	// With* must not mutate the receiver.
	if base.Width != 800 || base.Format != FormatBGRA8Unorm {
		t.Errorf("base config mutated: %+v", base)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"default", DefaultConfig(), nil},
		{"rgba", DefaultConfig().WithFormat("RGBA8Unorm"), nil},
		{"zero width", DefaultConfig().WithSize(0, 600), ErrInvalidSize},
		{"negative height", DefaultConfig().WithSize(800, -1), ErrInvalidSize},
		{"bad format", DefaultConfig().WithFormat("rgb565"), ErrUnsupportedFormat},
		{"bad alpha", DefaultConfig().WithAlphaMode("additive"), ErrUnsupportedFormat},
		{"upper case alpha", DefaultConfig().WithAlphaMode("PREMULTIPLIED"), nil},
		{"mixed case alpha and format", DefaultConfig().WithAlphaMode(" Opaque").WithFormat("BGRA8UNORM "), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigAlpha(t *testing.T) {
	tests := []struct {
		in   AlphaMode
		want AlphaMode
	}{
		{"premultiplied", AlphaPremultiplied},
		{"PREMULTIPLIED", AlphaPremultiplied},
		{"Opaque", AlphaOpaque},
		{" opaque\n", AlphaOpaque},
	}
	for _, tt := range tests {
		got, err := DefaultConfig().WithAlphaMode(tt.in).Alpha()
		if err != nil || got != tt.want {
			t.Errorf("Alpha(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}

	if _, err := DefaultConfig().WithAlphaMode("inherit").Alpha(); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Alpha(inherit) = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoadConfigCaseInsensitiveNames(t *testing.T) {
	path := writeConfig(t, "format: RGBA8Unorm\nalpha_mode: OPAQUE\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if f, _ := cfg.TextureFormat(); f != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("TextureFormat() = %v, want RGBA8Unorm", f)
	}
	if a, _ := cfg.Alpha(); a != AlphaOpaque {
		t.Errorf("Alpha() = %q, want opaque", a)
	}
}

func TestConfigValidateClearColor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ClearColor = [4]float64{0, 2, 0, 1}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() accepted clear color component 2")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "triangle.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
title: Resized Triangle
width: 1024
height: 768
alpha_mode: opaque
clear_color: [0.1, 0.2, 0.3, 1]
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() = %v", err)
	}
	if cfg.Title != "Resized Triangle" || cfg.Width != 1024 || cfg.Height != 768 {
		t.Errorf("unexpected title/size: %+v", cfg)
	}
	if cfg.AlphaMode != AlphaOpaque {
		t.Errorf("AlphaMode = %q, want opaque", cfg.AlphaMode)
	}
	if cfg.ClearColor != [4]float64{0.1, 0.2, 0.3, 1} {
		t.Errorf("ClearColor = %v", cfg.ClearColor)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Format != FormatBGRA8Unorm {
		t.Errorf("Format = %q, want default %q", cfg.Format, FormatBGRA8Unorm)
	}
	if !cfg.ContinuousRender {
		t.Error("ContinuousRender should default to true")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("LoadConfig() = %v, want os.ErrNotExist", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "width: [1, 2\n")
		if _, err := LoadConfig(path); err == nil {
			t.Error("LoadConfig() accepted malformed YAML")
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		path := writeConfig(t, "format: r8unorm\n")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("LoadConfig() = %v, want ErrUnsupportedFormat", err)
		}
	})
}
