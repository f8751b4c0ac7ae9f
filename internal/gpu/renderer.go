// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/triangle"
)

// fenceTimeout bounds the wait for a submitted frame.
const fenceTimeout = 5 * time.Second

// RendererConfig configures the render target of a Renderer.
type RendererConfig struct {
	// Format is the color target format, usually the surface format.
	Format gputypes.TextureFormat

	// AlphaMode selects premultiplied blending or opaque output.
	AlphaMode triangle.AlphaMode

	// ClearColor is the RGBA clear color applied at the start of every frame.
	ClearColor [4]float64
}

// DefaultRendererConfig returns a BGRA8Unorm, premultiplied, black-clearing config.
func DefaultRendererConfig() RendererConfig {
	return RendererConfig{
		Format:     gputypes.TextureFormatBGRA8Unorm,
		AlphaMode:  triangle.AlphaPremultiplied,
		ClearColor: triangle.ClearColor,
	}
}

// RendererConfigFrom derives a RendererConfig from the application config.
func RendererConfigFrom(cfg triangle.Config) (RendererConfig, error) {
	format, err := cfg.TextureFormat()
	if err != nil {
		return RendererConfig{}, err
	}
	alpha, err := cfg.Alpha()
	if err != nil {
		return RendererConfig{}, err
	}
	return RendererConfig{
		Format:     format,
		AlphaMode:  alpha,
		ClearColor: cfg.ClearColor,
	}, nil
}

// FrameStats describes the work encoded for one frame.
type FrameStats struct {
	// DrawCalls is the number of draw calls recorded (always 1).
	DrawCalls int

	// Vertices is the number of vertices drawn (always 3).
	Vertices int
}

// Renderer draws the triangle. It owns the shader modules, the vertex
// buffer and the render pipeline, all created once by Init. Only the
// vertex data changes afterwards (on Resize).
//
// Renderer is not safe for concurrent use; drive it from the frame callback.
type Renderer struct {
	device hal.Device
	queue  hal.Queue
	config RendererConfig

	shaders  *ShaderModules
	vertices *VertexBuffer
	pipeline *trianglePipeline

	frames uint64
	closed bool
}

// NewRenderer creates a renderer on dev. GPU objects are not created until
// Init is called.
func NewRenderer(dev *Device, config RendererConfig) *Renderer {
	device, queue := dev.HAL()
	return &Renderer{
		device: device,
		queue:  queue,
		config: config,
	}
}

// Init compiles the shaders, allocates and fills the vertex buffer for a
// width x height surface and builds the render pipeline. Calling Init on an
// initialized renderer is a no-op.
func (r *Renderer) Init(width, height int) error {
	if r.closed {
		return triangle.ErrRendererClosed
	}
	if r.pipeline != nil {
		return nil
	}
	if r.device == nil || r.queue == nil {
		return fmt.Errorf("%w: no device", triangle.ErrNoGPU)
	}

	if err := ValidateShaders(); err != nil {
		return err
	}
	shaders, err := createShaders(r.device)
	if err != nil {
		return err
	}
	r.shaders = shaders

	vb, err := newVertexBuffer(r.device, r.queue)
	if err != nil {
		r.release()
		return err
	}
	r.vertices = vb
	if err := vb.Update(width, height); err != nil {
		r.release()
		return fmt.Errorf("initial vertex upload: %w", err)
	}

	pipeline, err := createPipeline(r.device, r.shaders, r.config.Format, r.config.AlphaMode)
	if err != nil {
		r.release()
		return err
	}
	r.pipeline = pipeline

	triangle.Logger().Info("renderer initialized", "width", width, "height", height)
	return nil
}

// Resize recomputes the vertex data for the new surface size and uploads
// it. A zero-sized surface (minimized window) keeps the previous data.
func (r *Renderer) Resize(width, height int) error {
	if err := r.ready(); err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		triangle.Logger().Debug("resize skipped", "width", width, "height", height)
		return nil
	}
	return r.vertices.Update(width, height)
}

// RenderFrame encodes and submits one frame into view: clear to the
// configured color, then one draw of three vertices. It waits for the GPU
// to finish so the caller can present the surface right after.
func (r *Renderer) RenderFrame(view hal.TextureView) (FrameStats, error) {
	if err := r.ready(); err != nil {
		return FrameStats{}, err
	}
	if view == nil {
		return FrameStats{}, errors.New("gpu: nil target view")
	}

	encoder, err := r.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "triangle_frame_encoder",
	})
	if err != nil {
		return FrameStats{}, fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("triangle_frame"); err != nil {
		return FrameStats{}, fmt.Errorf("begin encoding: %w", err)
	}

	stats := r.recordPass(encoder, view)

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return FrameStats{}, fmt.Errorf("end encoding: %w", err)
	}
	defer r.device.FreeCommandBuffer(cmdBuf)

	if err := r.submit(cmdBuf); err != nil {
		return FrameStats{}, err
	}

	r.frames++
	if r.frames == 1 {
		triangle.Logger().Debug("first frame submitted", "draw_calls", stats.DrawCalls, "vertices", stats.Vertices)
	}
	return stats, nil
}

// recordPass records the single render pass of a frame.
func (r *Renderer) recordPass(encoder hal.CommandEncoder, view hal.TextureView) FrameStats {
	c := r.config.ClearColor
	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "triangle_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     gputypes.LoadOpClear,
				StoreOp:    gputypes.StoreOpStore,
				ClearValue: gputypes.Color{R: c[0], G: c[1], B: c[2], A: c[3]},
			},
		},
	})
	rp.SetPipeline(r.pipeline.pipeline)
	rp.SetVertexBuffer(0, r.vertices.Buffer(), 0)
	rp.Draw(triangle.VertexCount, 1, 0, 0)
	rp.End()

	return FrameStats{DrawCalls: 1, Vertices: triangle.VertexCount}
}

// submit submits cmdBuf and waits on a fence for completion.
func (r *Renderer) submit(cmdBuf hal.CommandBuffer) error {
	fence, err := r.device.CreateFence()
	if err != nil {
		return fmt.Errorf("create fence: %w", err)
	}
	defer r.device.DestroyFence(fence)

	if err := r.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	fenceOK, err := r.device.Wait(fence, 1, fenceTimeout)
	if err != nil || !fenceOK {
		return fmt.Errorf("wait for GPU: ok=%v err=%w", fenceOK, err)
	}
	return nil
}

// Vertices returns the vertex data currently on the GPU.
func (r *Renderer) Vertices() triangle.Vertices {
	if r.vertices == nil {
		return triangle.Vertices{}
	}
	return r.vertices.Vertices()
}

// VertexBuffer returns the vertex buffer, nil before Init.
func (r *Renderer) VertexBuffer() *VertexBuffer {
	return r.vertices
}

// Frames returns the number of frames submitted.
func (r *Renderer) Frames() uint64 {
	return r.frames
}

// Config returns the renderer configuration.
func (r *Renderer) Config() RendererConfig {
	return r.config
}

// Destroy releases all GPU objects in reverse creation order. The device
// itself is not touched. Safe to call multiple times.
func (r *Renderer) Destroy() {
	if r.closed {
		return
	}
	r.release()
	r.closed = true
}

// release destroys whatever Init managed to create.
func (r *Renderer) release() {
	if r.device == nil {
		return
	}
	if r.pipeline != nil {
		r.pipeline.destroy(r.device)
		r.pipeline = nil
	}
	if r.vertices != nil {
		r.vertices.destroy()
		r.vertices = nil
	}
	if r.shaders != nil {
		r.shaders.destroy(r.device)
		r.shaders = nil
	}
}

func (r *Renderer) ready() error {
	if r.closed {
		return triangle.ErrRendererClosed
	}
	if r.pipeline == nil {
		return triangle.ErrNotInitialized
	}
	return nil
}
