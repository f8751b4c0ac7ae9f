// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package triangle

import "errors"

var (
	// ErrNoGPU is returned when no GPU backend or adapter is available.
	ErrNoGPU = errors.New("triangle: WebGPU is not supported on this system")

	// ErrInvalidSize is returned for non-positive surface dimensions.
	ErrInvalidSize = errors.New("triangle: invalid surface size")

	// ErrNotInitialized is returned when rendering before Init.
	ErrNotInitialized = errors.New("triangle: renderer not initialized")

	// ErrRendererClosed is returned when using a destroyed renderer.
	ErrRendererClosed = errors.New("triangle: renderer closed")

	// ErrUnsupportedFormat is returned for unknown surface format or alpha mode names.
	ErrUnsupportedFormat = errors.New("triangle: unsupported surface format")
)
