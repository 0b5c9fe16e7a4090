// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gldriver

import (
	"cogentcore.org/glmodel/glgpu"
	"github.com/go-gl/gl/v4.1-core/gl"
)

var bufferTargets = map[glgpu.BufferTarget]uint32{
	glgpu.ArrayBuffer:        gl.ARRAY_BUFFER,
	glgpu.ElementArrayBuffer: gl.ELEMENT_ARRAY_BUFFER,
	glgpu.UniformBuffer:      gl.UNIFORM_BUFFER,
}

var scalarTypes = map[glgpu.ScalarType]uint32{
	glgpu.Byte:          gl.BYTE,
	glgpu.UnsignedByte:  gl.UNSIGNED_BYTE,
	glgpu.Short:         gl.SHORT,
	glgpu.UnsignedShort: gl.UNSIGNED_SHORT,
	glgpu.Int:           gl.INT,
	glgpu.UnsignedInt:   gl.UNSIGNED_INT,
	glgpu.HalfFloat:     gl.HALF_FLOAT,
	glgpu.Float:         gl.FLOAT,
}

var topologies = map[glgpu.Topology]uint32{
	glgpu.Points:        gl.POINTS,
	glgpu.Lines:         gl.LINES,
	glgpu.LineLoop:      gl.LINE_LOOP,
	glgpu.LineStrip:     gl.LINE_STRIP,
	glgpu.Triangles:     gl.TRIANGLES,
	glgpu.TriangleFan:   gl.TRIANGLE_FAN,
	glgpu.TriangleStrip: gl.TRIANGLE_STRIP,
}

var shaderStages = map[glgpu.ShaderStage]uint32{
	glgpu.VertexShader:   gl.VERTEX_SHADER,
	glgpu.FragmentShader: gl.FRAGMENT_SHADER,
	glgpu.GeometryShader: gl.GEOMETRY_SHADER,
}
