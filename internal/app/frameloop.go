// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package app

import (
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/triangle"
	"github.com/gogpu/triangle/internal/gpu"
)

// FrameLoop turns per-frame surface callbacks into renderer calls.
// It is not safe for concurrent use.
type FrameLoop struct {
	renderer *gpu.Renderer

	// width, height are the surface size of the last rendered frame.
	width, height int

	skipped uint64
}

// NewFrameLoop creates a frame loop rendering on dev. GPU objects are
// created on the first non-empty frame.
func NewFrameLoop(dev *gpu.Device, config gpu.RendererConfig) *FrameLoop {
	return &FrameLoop{renderer: gpu.NewRenderer(dev, config)}
}

// Draw renders one frame of a width x height surface into view.
//
// The first frame initializes the renderer; a frame whose size differs from
// the previous one resizes it first. Zero-sized frames (minimized window)
// are skipped.
func (l *FrameLoop) Draw(width, height int, view hal.TextureView) error {
	if width <= 0 || height <= 0 {
		l.skipped++
		return nil
	}

	switch {
	case l.width == 0 && l.height == 0:
		if err := l.renderer.Init(width, height); err != nil {
			return err
		}
	case width != l.width || height != l.height:
		triangle.Logger().Debug("surface resized",
			"from_width", l.width, "from_height", l.height, "width", width, "height", height)
		if err := l.renderer.Resize(width, height); err != nil {
			return err
		}
	}
	l.width, l.height = width, height

	_, err := l.renderer.RenderFrame(view)
	return err
}

// Size returns the surface size of the last rendered frame.
func (l *FrameLoop) Size() (int, int) {
	return l.width, l.height
}

// Frames returns the number of frames rendered.
func (l *FrameLoop) Frames() uint64 {
	return l.renderer.Frames()
}

// Skipped returns the number of zero-sized frames skipped.
func (l *FrameLoop) Skipped() uint64 {
	return l.skipped
}

// Renderer returns the underlying renderer.
func (l *FrameLoop) Renderer() *gpu.Renderer {
	return l.renderer
}

// Close destroys the renderer's GPU objects.
func (l *FrameLoop) Close() {
	l.renderer.Destroy()
}
