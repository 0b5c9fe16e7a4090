// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glgpu defines the explicit OpenGL device handle used by glmodel.
//
// OpenGL keeps its state in a context bound to the calling thread. Rather
// than reaching for that implicit global state, every glmodel entry point is
// given a [Device], which issues the calls against one context. A Device is
// not safe for concurrent use: all calls must come from the thread that owns
// the context, in program order.
//
// The gldriver subpackage implements Device on top of go-gl, and glgputest
// provides a recording implementation for tests.
package glgpu

// Device is the set of OpenGL calls issued by glmodel.
// Names (buffer, vertex array, shader and program handles) are
// the driver-assigned uint32 values, 0 meaning none.
type Device interface {

	// GenBuffer allocates a new buffer name.
	GenBuffer() uint32

	// DeleteBuffer deletes the buffer with the given name.
	DeleteBuffer(name uint32)

	// BindBuffer binds the buffer to the given target; 0 unbinds.
	BindBuffer(target BufferTarget, name uint32)

	// BufferData uploads data to the buffer bound to target,
	// with static draw usage.
	BufferData(target BufferTarget, data []byte)

	// BindBufferBase binds the buffer to an indexed binding point of target.
	BindBufferBase(target BufferTarget, index, name uint32)

	// GenVertexArray allocates a new vertex array name.
	GenVertexArray() uint32

	// DeleteVertexArray deletes the vertex array with the given name.
	DeleteVertexArray(name uint32)

	// BindVertexArray makes the vertex array current; 0 unbinds.
	BindVertexArray(name uint32)

	// EnableVertexAttribArray enables the attribute location in the
	// current vertex array.
	EnableVertexAttribArray(location uint32)

	// VertexAttribPointer describes the data of the buffer bound to
	// [ArrayBuffer] for the attribute location in the current vertex array.
	VertexAttribPointer(location uint32, size int32, typ ScalarType, normalized bool, stride int32, offset int)

	// CreateShader creates a shader object of the given stage.
	CreateShader(stage ShaderStage) uint32

	// CompileShader sets the source of the shader and compiles it.
	CompileShader(shader uint32, src string)

	// ShaderCompiled returns the compile status of the shader.
	ShaderCompiled(shader uint32) bool

	// ShaderInfoLog returns the info log of the shader.
	ShaderInfoLog(shader uint32) string

	// DeleteShader deletes the shader object.
	DeleteShader(shader uint32)

	// CreateProgram creates a program object.
	CreateProgram() uint32

	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)

	// ProgramLinked returns the link status of the program.
	ProgramLinked(program uint32) bool

	// ProgramInfoLog returns the info log of the program.
	ProgramInfoLog(program uint32) string

	DeleteProgram(program uint32)
	UseProgram(program uint32)

	// AttribLocation returns the location of the named attribute,
	// or -1 if the program has no active attribute of that name.
	AttribLocation(program uint32, name string) int32

	// UniformLocation returns the location of the named uniform,
	// or -1 if the program has no active uniform of that name.
	UniformLocation(program uint32, name string) int32

	// UniformBlockIndex returns the index of the named uniform block,
	// or [InvalidIndex].
	UniformBlockIndex(program uint32, name string) uint32

	// UniformBlockBinding assigns the uniform block to a binding point.
	UniformBlockBinding(program, block, binding uint32)

	// UniformMatrix4fv sets a mat4 (or mat4 array) uniform of the current
	// program from column-major values, 16 per matrix.
	UniformMatrix4fv(location int32, values []float32)

	// Uniform1f sets a float uniform of the current program.
	Uniform1f(location int32, value float32)

	// DrawElements draws count indices of the given type, starting at
	// the byte offset into the element array buffer of the current
	// vertex array.
	DrawElements(mode Topology, count int32, typ ScalarType, offset int)

	// Error returns and clears the next recorded error flag,
	// or [NoError].
	Error() uint32
}

// InvalidIndex is the uniform block index reported for an unknown block.
const InvalidIndex = ^uint32(0)
