// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/triangle"
)

// copyPitchAlignment is the required BytesPerRow alignment for
// texture-to-buffer copies.
const copyPitchAlignment = 256

// Snapshot renders one frame of width x height into an offscreen texture
// and reads it back. The vertex data is updated for the snapshot size, as a
// resize would.
func (r *Renderer) Snapshot(width, height int) (*image.RGBA, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", triangle.ErrInvalidSize, width, height)
	}
	if err := r.vertices.Update(width, height); err != nil {
		return nil, err
	}

	w, h := uint32(width), uint32(height)
	tex, err := r.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "triangle_snapshot",
		Size:          hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        r.config.Format,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return nil, fmt.Errorf("create snapshot texture: %w", err)
	}
	defer r.device.DestroyTexture(tex)

	view, err := r.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label: "triangle_snapshot_view",
	})
	if err != nil {
		return nil, fmt.Errorf("create snapshot view: %w", err)
	}
	defer r.device.DestroyTextureView(view)

	encoder, err := r.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "triangle_snapshot_encoder",
	})
	if err != nil {
		return nil, fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("triangle_snapshot"); err != nil {
		return nil, fmt.Errorf("begin encoding: %w", err)
	}

	r.recordPass(encoder, view)

	// This is a no-op on Metal, GLES, software, and noop backends.
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: tex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageRenderAttachment,
			NewUsage: gputypes.TextureUsageCopySrc,
		},
	}})

	bytesPerRow := w * 4
	alignedBytesPerRow := (bytesPerRow + copyPitchAlignment - 1) &^ (copyPitchAlignment - 1)
	stagingSize := uint64(alignedBytesPerRow) * uint64(h)

	staging, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "triangle_snapshot_staging",
		Size:  stagingSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		encoder.DiscardEncoding()
		return nil, fmt.Errorf("create staging buffer: %w", err)
	}
	defer r.device.DestroyBuffer(staging)

	encoder.CopyTextureToBuffer(tex, staging, []hal.BufferTextureCopy{{
		BufferLayout: hal.ImageDataLayout{Offset: 0, BytesPerRow: alignedBytesPerRow, RowsPerImage: h},
		TextureBase:  hal.ImageCopyTexture{Texture: tex, MipLevel: 0},
		Size:         hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	}})

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return nil, fmt.Errorf("end encoding: %w", err)
	}
	defer r.device.FreeCommandBuffer(cmdBuf)

	if err := r.submit(cmdBuf); err != nil {
		return nil, err
	}

	readback := make([]byte, stagingSize)
	if err := r.queue.ReadBuffer(staging, 0, readback); err != nil {
		return nil, fmt.Errorf("readback: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	bgra := r.config.Format == gputypes.TextureFormatBGRA8Unorm
	for row := 0; row < height; row++ {
		src := readback[row*int(alignedBytesPerRow) : row*int(alignedBytesPerRow)+int(bytesPerRow)]
		dst := img.Pix[row*img.Stride : row*img.Stride+int(bytesPerRow)]
		copyRow(dst, src, bgra)
	}

	r.frames++
	triangle.Logger().Debug("snapshot rendered", "width", width, "height", height)
	return img, nil
}

// copyRow copies one row of 8-bit premultiplied pixels into RGBA order.
// bgra swaps the red and blue channels.
func copyRow(dst, src []byte, bgra bool) {
	copy(dst, src)
	if !bgra {
		return
	}
	for i := 0; i+3 < len(dst); i += 4 {
		dst[i], dst[i+2] = dst[i+2], dst[i]
	}
}
