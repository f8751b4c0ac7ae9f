// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package triangle renders the WebGPU "hello triangle" with Pure Go.
//
// # Overview
//
// The program is four linear stages on top of gogpu/wgpu:
//
//  1. Acquire a GPU device, queue and surface format.
//  2. Compile a pass-through vertex shader and a solid-green fragment shader.
//  3. Allocate a 24-byte vertex buffer holding three clip-space points,
//     recomputed from the surface size whenever the window is resized.
//  4. Build one render pipeline and, every frame, clear to opaque black and
//     draw three vertices.
//
// This package holds the GPU-independent parts: vertex math, configuration,
// sentinel errors and the shared logger. GPU objects live in internal/gpu,
// the window loop in internal/app and the executable in cmd/triangle.
//
// # Quick Start
//
//	v, err := triangle.ComputeVertices(800, 600)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(v.Point(0)) // 0 0.16666667
//
// # Coordinate System
//
// Vertices are in clip space: x and y in [-1, 1], origin at the center of
// the surface, y pointing up.
package triangle
