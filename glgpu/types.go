// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

//go:generate core generate

import "fmt"

// BufferTarget is a buffer binding point.
type BufferTarget int32 //enums:enum

const (
	// ArrayBuffer holds vertex attribute data (GL_ARRAY_BUFFER).
	ArrayBuffer BufferTarget = iota

	// ElementArrayBuffer holds index data (GL_ELEMENT_ARRAY_BUFFER).
	// The binding is recorded in the current vertex array.
	ElementArrayBuffer

	// UniformBuffer holds uniform block data (GL_UNIFORM_BUFFER).
	UniformBuffer
)

// ScalarType is the scalar type of vertex attribute or index data.
type ScalarType int32 //enums:enum

const (
	Byte ScalarType = iota
	UnsignedByte
	Short
	UnsignedShort
	Int
	UnsignedInt
	HalfFloat
	Float
)

// Topology is the primitive topology of a draw call.
type Topology int32 //enums:enum

const (
	Points Topology = iota
	Lines
	LineLoop
	LineStrip
	Triangles
	TriangleFan
	TriangleStrip
)

// ShaderStage is the pipeline stage a shader is compiled for.
type ShaderStage int32 //enums:enum -line-comment

const (
	VertexShader   ShaderStage = iota // vertex
	FragmentShader                    // fragment
	GeometryShader                    // geometry
)

// ParseShaderStage returns the stage with the given name
// (vertex, fragment or geometry).
func ParseShaderStage(s string) (ShaderStage, error) {
	var ss ShaderStage
	if err := ss.SetString(s); err != nil {
		return 0, fmt.Errorf("glgpu: %w", err)
	}
	return ss, nil
}
