// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/triangle"
)

// Embedded WGSL shader sources.

//go:embed shaders/triangle_vertex.wgsl
var vertexShaderSource string

//go:embed shaders/triangle_fragment.wgsl
var fragmentShaderSource string

// Entry points of the two shader modules.
const (
	vertexEntryPoint   = "main"
	fragmentEntryPoint = "main"
)

// ShaderModules holds the compiled vertex and fragment stages.
type ShaderModules struct {
	Vertex   hal.ShaderModule
	Fragment hal.ShaderModule

	VertexEntryPoint   string
	FragmentEntryPoint string
}

// VertexShaderSource returns the WGSL source of the vertex stage.
func VertexShaderSource() string { return vertexShaderSource }

// FragmentShaderSource returns the WGSL source of the fragment stage.
func FragmentShaderSource() string { return fragmentShaderSource }

// ValidateShaders compiles both WGSL sources with naga so syntax and type
// errors surface before any GPU object is created.
func ValidateShaders() error {
	for _, s := range []struct {
		name, source string
	}{
		{"vertex", vertexShaderSource},
		{"fragment", fragmentShaderSource},
	} {
		if s.source == "" {
			return fmt.Errorf("%s shader source is empty", s.name)
		}
		spirv, err := naga.Compile(s.source)
		if err != nil {
			return fmt.Errorf("compile %s shader: %w", s.name, err)
		}
		triangle.Logger().Debug("shader validated", "stage", s.name, "spirv_bytes", len(spirv))
	}
	return nil
}

// createShaders builds the vertex and fragment shader modules from WGSL.
// On failure, any module already created is destroyed.
func createShaders(device hal.Device) (*ShaderModules, error) {
	if device == nil {
		return nil, errors.New("gpu: nil device")
	}

	vs, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "triangle_vertex_shader",
		Source: hal.ShaderSource{WGSL: vertexShaderSource},
	})
	if err != nil {
		return nil, fmt.Errorf("create vertex shader module: %w", err)
	}

	fs, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "triangle_fragment_shader",
		Source: hal.ShaderSource{WGSL: fragmentShaderSource},
	})
	if err != nil {
		device.DestroyShaderModule(vs)
		return nil, fmt.Errorf("create fragment shader module: %w", err)
	}

	return &ShaderModules{
		Vertex:             vs,
		Fragment:           fs,
		VertexEntryPoint:   vertexEntryPoint,
		FragmentEntryPoint: fragmentEntryPoint,
	}, nil
}

// destroy releases both modules. Safe on partially created modules.
func (s *ShaderModules) destroy(device hal.Device) {
	if s.Fragment != nil {
		device.DestroyShaderModule(s.Fragment)
		s.Fragment = nil
	}
	if s.Vertex != nil {
		device.DestroyShaderModule(s.Vertex)
		s.Vertex = nil
	}
}
