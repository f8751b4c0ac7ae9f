// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
)

// createNoopDevice opens a device on the noop backend for testing.
// The device is destroyed when the test ends.
func createNoopDevice(t *testing.T) *Device {
	t.Helper()
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		t.Fatal("noop backend exposed no adapters")
	}
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	dev := &Device{
		instance:    instance,
		device:      openDev.Device,
		queue:       openDev.Queue,
		adapterName: adapters[0].Info.Name,
	}
	t.Cleanup(dev.Close)
	return dev
}

// newInitRenderer returns a renderer initialized for a width x height surface.
func newInitRenderer(t *testing.T, width, height int) *Renderer {
	t.Helper()
	r := NewRenderer(createNoopDevice(t), DefaultRendererConfig())
	if err := r.Init(width, height); err != nil {
		t.Fatalf("Init(%d, %d) failed: %v", width, height, err)
	}
	t.Cleanup(r.Destroy)
	return r
}

// createTargetView creates a render target texture view standing in for
// the surface texture of a frame.
func createTargetView(t *testing.T, r *Renderer, width, height uint32) hal.TextureView {
	t.Helper()
	tex, err := r.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "test_surface",
		Size:          hal.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        r.config.Format,
		Usage:         gputypes.TextureUsageRenderAttachment,
	})
	if err != nil {
		t.Fatalf("CreateTexture failed: %v", err)
	}
	view, err := r.device.CreateTextureView(tex, &hal.TextureViewDescriptor{Label: "test_surface_view"})
	if err != nil {
		r.device.DestroyTexture(tex)
		t.Fatalf("CreateTextureView failed: %v", err)
	}
	t.Cleanup(func() {
		r.device.DestroyTextureView(view)
		r.device.DestroyTexture(tex)
	})
	return view
}
