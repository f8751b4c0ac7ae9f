// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/triangle"
)

// VertexBuffer owns the 24-byte GPU buffer holding the triangle vertices.
// The contents are recomputed from the surface size on every Update.
type VertexBuffer struct {
	device hal.Device
	queue  hal.Queue
	buf    hal.Buffer

	// data is the last uploaded vertex data.
	data triangle.Vertices

	// width, height are the surface dimensions data was computed for.
	width, height int

	// uploads counts queue writes since creation.
	uploads int
}

// newVertexBuffer allocates the vertex buffer (Vertex | CopyDst usage).
// No data is written until Update is called.
func newVertexBuffer(device hal.Device, queue hal.Queue) (*VertexBuffer, error) {
	buf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: "triangle_vertices",
		Size:  triangle.VertexBufferSize,
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create vertex buffer: %w", err)
	}
	return &VertexBuffer{
		device: device,
		queue:  queue,
		buf:    buf,
	}, nil
}

// Update recomputes the vertices for a width x height surface and writes
// them to the GPU buffer.
func (vb *VertexBuffer) Update(width, height int) error {
	if vb.buf == nil {
		return triangle.ErrRendererClosed
	}
	v, err := triangle.ComputeVertices(width, height)
	if err != nil {
		return err
	}

	vb.queue.WriteBuffer(vb.buf, 0, v.Bytes())
	vb.data = v
	vb.width, vb.height = width, height
	vb.uploads++

	triangle.Logger().Debug("vertex buffer updated",
		"width", width, "height", height, "uploads", vb.uploads)
	return nil
}

// Vertices returns the last uploaded vertex data.
func (vb *VertexBuffer) Vertices() triangle.Vertices {
	return vb.data
}

// Size returns the surface size the current vertex data was computed for.
func (vb *VertexBuffer) Size() (int, int) {
	return vb.width, vb.height
}

// Uploads returns how many times vertex data has been written to the GPU.
func (vb *VertexBuffer) Uploads() int {
	return vb.uploads
}

// ByteSize returns the buffer size in bytes (always triangle.VertexBufferSize).
func (vb *VertexBuffer) ByteSize() uint64 {
	return triangle.VertexBufferSize
}

// Buffer returns the HAL buffer handle, nil after destroy.
func (vb *VertexBuffer) Buffer() hal.Buffer {
	return vb.buf
}

// destroy releases the GPU buffer. Safe to call multiple times.
func (vb *VertexBuffer) destroy() {
	if vb.buf != nil {
		vb.device.DestroyBuffer(vb.buf)
		vb.buf = nil
	}
}
