// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package app runs the triangle in a window and renders snapshots to image
// files.
//
// Run opens a gogpu window and drives a FrameLoop from its VSync callback.
// The FrameLoop itself does not depend on the windowing library: it is
// given the surface size and texture view of every frame, initializes the
// renderer on the first one, re-uploads the vertices when the size changes
// and draws.
package app
