// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/triangle"
)

// trianglePipeline is the one render pipeline used every frame, together
// with its (binding-free) pipeline layout. Immutable after creation.
type trianglePipeline struct {
	layout   hal.PipelineLayout
	pipeline hal.RenderPipeline
}

// vertexBufferLayouts describes the single vertex buffer: float32x2
// position at location(0), one vertex every 8 bytes.
func vertexBufferLayouts() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: triangle.VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{
					Format:         gputypes.VertexFormatFloat32x2,
					Offset:         0,
					ShaderLocation: 0,
				},
			},
		},
	}
}

// colorTarget returns the fragment output target for the surface format.
// Premultiplied alpha installs premultiplied blending; opaque writes the
// fragment color as is.
func colorTarget(format gputypes.TextureFormat, alpha triangle.AlphaMode) gputypes.ColorTargetState {
	target := gputypes.ColorTargetState{
		Format:    format,
		WriteMask: gputypes.ColorWriteMaskAll,
	}
	if alpha == triangle.AlphaPremultiplied {
		blend := gputypes.BlendStatePremultiplied()
		target.Blend = &blend
	}
	return target
}

// createPipeline builds the pipeline layout (no bind groups) and the render
// pipeline: triangle list, no culling, single-sampled.
func createPipeline(
	device hal.Device,
	shaders *ShaderModules,
	format gputypes.TextureFormat,
	alpha triangle.AlphaMode,
) (*trianglePipeline, error) {
	layout, err := device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "triangle_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{},
	})
	if err != nil {
		return nil, fmt.Errorf("create pipeline layout: %w", err)
	}

	pipeline, err := device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "triangle_pipeline",
		Layout: layout,
		Vertex: hal.VertexState{
			Module:     shaders.Vertex,
			EntryPoint: shaders.VertexEntryPoint,
			Buffers:    vertexBufferLayouts(),
		},
		Fragment: &hal.FragmentState{
			Module:     shaders.Fragment,
			EntryPoint: shaders.FragmentEntryPoint,
			Targets:    []gputypes.ColorTargetState{colorTarget(format, alpha)},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		device.DestroyPipelineLayout(layout)
		return nil, fmt.Errorf("create render pipeline: %w", err)
	}

	triangle.Logger().Debug("render pipeline created", "format", format, "alpha_mode", alpha)
	return &trianglePipeline{layout: layout, pipeline: pipeline}, nil
}

// destroy releases the pipeline and its layout in reverse creation order.
func (p *trianglePipeline) destroy(device hal.Device) {
	if p.pipeline != nil {
		device.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.layout != nil {
		device.DestroyPipelineLayout(p.layout)
		p.layout = nil
	}
}
