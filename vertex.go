// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package triangle

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Triangle extent in pixels. Half of each is divided by the surface size to
// get the clip-space coordinates, so the drawn triangle spans
// TriangleWidth/2 x TriangleHeight/2 surface pixels whatever the surface size.
const (
	TriangleWidth  = 200
	TriangleHeight = 200
)

// Vertex layout constants.
const (
	// VertexCount is the number of vertices drawn each frame.
	VertexCount = 3

	// FloatsPerVertex is the number of float32 components per vertex (x, y).
	FloatsPerVertex = 2

	// VertexStride is the byte stride of one vertex: 2 x float32 = 8 bytes.
	VertexStride = FloatsPerVertex * 4

	// VertexBufferSize is the byte size of the vertex buffer: 3 x 8 = 24 bytes.
	VertexBufferSize = VertexCount * VertexStride
)

// ClearColor is the color the surface is cleared to every frame (opaque black).
var ClearColor = [4]float64{0, 0, 0, 1}

// FragmentColor is the color the fragment shader writes for every pixel.
var FragmentColor = [4]float32{0, 1, 0, 1}

// Vertices holds the three triangle vertices in clip space.
// Layout: [x0, y0, x1, y1, x2, y2] with the top vertex first, then
// bottom-left and bottom-right.
type Vertices [VertexCount * FloatsPerVertex]float32

// ComputeVertices converts the fixed pixel-sized triangle into clip space for
// a surface of the given size. The triangle is centered on the surface:
//
//	top          (0,      100/H)
//	bottom-left  (-100/W, -100/H)
//	bottom-right (100/W,  -100/H)
//
// Returns ErrInvalidSize if either dimension is not positive.
func ComputeVertices(width, height int) (Vertices, error) {
	if width <= 0 || height <= 0 {
		return Vertices{}, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	halfWidth := float32(TriangleWidth) / 2
	halfHeight := float32(TriangleHeight) / 2
	w, h := float32(width), float32(height)

	topY := halfHeight / h
	bottomY := -halfHeight / h
	leftX := -halfWidth / w
	rightX := halfWidth / w

	return Vertices{
		0, topY,
		leftX, bottomY,
		rightX, bottomY,
	}, nil
}

// Point returns vertex i (0 = top, 1 = bottom-left, 2 = bottom-right).
func (v Vertices) Point(i int) (x, y float32) {
	return v[i*FloatsPerVertex], v[i*FloatsPerVertex+1]
}

// Bytes returns the vertices as VertexBufferSize little-endian bytes,
// ready to be written into a GPU vertex buffer.
func (v Vertices) Bytes() []byte {
	buf := make([]byte, VertexBufferSize)
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

// ToPixels maps the vertices back to surface pixel coordinates with the
// origin at the top-left corner and y pointing down.
func (v Vertices) ToPixels(width, height int) [VertexCount][2]float64 {
	var pts [VertexCount][2]float64
	w, h := float64(width), float64(height)
	for i := range VertexCount {
		x, y := v.Point(i)
		pts[i][0] = (float64(x) + 1) * w / 2
		pts[i][1] = (1 - float64(y)) * h / 2
	}
	return pts
}
