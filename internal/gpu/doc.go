// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpu owns the GPU side of the triangle: device acquisition,
// shader modules, the vertex buffer, the render pipeline and per-frame
// command encoding, on top of the gogpu/wgpu HAL (Vulkan, Metal, DX12,
// GLES or the noop backend in tests).
//
// # Lifecycle
//
//	dev, err := gpu.OpenDevice() // or gpu.DeviceFromProvider(host)
//	if err != nil {
//	    return err // wraps triangle.ErrNoGPU when WebGPU is unavailable
//	}
//	defer dev.Close()
//
//	r := gpu.NewRenderer(dev, gpu.DefaultRendererConfig())
//	if err := r.Init(width, height); err != nil {
//	    return err
//	}
//	defer r.Destroy()
//
//	// every frame:
//	stats, err := r.RenderFrame(surfaceView)
//
//	// on window resize:
//	err = r.Resize(newWidth, newHeight)
//
// Shaders, pipeline layout and pipeline are created once in Init and never
// change. Resize only rewrites the 24-byte vertex buffer.
//
// # Thread Safety
//
// Renderer is meant to be driven from a single frame callback and does no
// locking.
package gpu
