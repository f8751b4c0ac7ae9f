// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/wgpu/hal"
)

// ErrNoSurfaceView is returned by SurfaceTextureView when the frame has no
// acquired surface texture.
var ErrNoSurfaceView = errors.New("gpu: no surface view")

// SurfaceTextureView unwraps the surface view of a frame into a HAL view.
//
// gogpu hands out *wgpu.TextureView, which wraps the HAL view behind
// HalTextureView. A hal.TextureView is returned as is.
func SurfaceTextureView(v any) (hal.TextureView, error) {
	if isNil(v) {
		return nil, ErrNoSurfaceView
	}
	var raw any
	switch sv := v.(type) {
	case hal.TextureView:
		return sv, nil
	case interface{ HalTextureView() hal.TextureView }:
		raw = sv.HalTextureView()
	case interface{ HalTextureView() any }:
		raw = sv.HalTextureView()
	default:
		return nil, fmt.Errorf("gpu: %T is not a texture view", v)
	}
	view, ok := raw.(hal.TextureView)
	if !ok || isNil(view) {
		return nil, ErrNoSurfaceView
	}
	return view, nil
}
