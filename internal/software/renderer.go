// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package software renders the triangle on the CPU with gg.
//
// It produces the same picture as the GPU renderer for the same surface size
// and is used where no GPU is available: snapshots on headless machines and
// reference images in tests.
package software

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/gogpu/gg"

	"github.com/gogpu/triangle"
)

// Render draws one frame of width x height: the clear color over the whole
// surface and the triangle filled with the fragment color.
func Render(width, height int, clear [4]float64) (*image.RGBA, error) {
	v, err := triangle.ComputeVertices(width, height)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(width, height)
	defer func() { _ = dc.Close() }()

	dc.ClearWithColor(gg.RGBA2(clear[0], clear[1], clear[2], clear[3]))

	pts := v.ToPixels(width, height)
	dc.MoveTo(pts[0][0], pts[0][1])
	dc.LineTo(pts[1][0], pts[1][1])
	dc.LineTo(pts[2][0], pts[2][1])
	dc.ClosePath()

	c := triangle.FragmentColor
	dc.SetRGBA(float64(c[0]), float64(c[1]), float64(c[2]), float64(c[3]))
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("software: fill triangle: %w", err)
	}

	triangle.Logger().Debug("software frame rendered", "width", width, "height", height)
	return toRGBA(dc.Image()), nil
}

// toRGBA returns img as *image.RGBA, converting only when needed.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}
