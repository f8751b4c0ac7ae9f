// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package app

import (
	"errors"
	"image"

	"github.com/gogpu/triangle"
	"github.com/gogpu/triangle/internal/gpu"
	"github.com/gogpu/triangle/internal/software"
)

// SnapshotMode selects the renderer used by RenderSnapshot.
type SnapshotMode int

const (
	// SnapshotAuto renders on the GPU and falls back to the software
	// renderer when no GPU is available.
	SnapshotAuto SnapshotMode = iota

	// SnapshotGPU renders on the GPU only.
	SnapshotGPU

	// SnapshotSoftware renders on the CPU only.
	SnapshotSoftware
)

// String returns the mode name.
func (m SnapshotMode) String() string {
	switch m {
	case SnapshotAuto:
		return "auto"
	case SnapshotGPU:
		return "gpu"
	case SnapshotSoftware:
		return "software"
	default:
		return "unknown"
	}
}

// openDevice is replaced in tests.
var openDevice = gpu.OpenDevice

// RenderSnapshot renders a single frame of cfg.Width x cfg.Height offscreen.
func RenderSnapshot(cfg triangle.Config, mode SnapshotMode) (*image.RGBA, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if mode == SnapshotSoftware {
		return software.Render(cfg.Width, cfg.Height, cfg.ClearColor)
	}

	img, err := renderGPUSnapshot(cfg)
	if errors.Is(err, triangle.ErrNoGPU) && mode == SnapshotAuto {
		triangle.Logger().Warn("falling back to software rendering", "err", err)
		return software.Render(cfg.Width, cfg.Height, cfg.ClearColor)
	}
	return img, err
}

func renderGPUSnapshot(cfg triangle.Config) (*image.RGBA, error) {
	rc, err := gpu.RendererConfigFrom(cfg)
	if err != nil {
		return nil, err
	}
	dev, err := openDevice()
	if err != nil {
		return nil, err
	}
	defer dev.Close()

	r := gpu.NewRenderer(dev, rc)
	defer r.Destroy()
	if err := r.Init(cfg.Width, cfg.Height); err != nil {
		return nil, err
	}
	return r.Snapshot(cfg.Width, cfg.Height)
}
