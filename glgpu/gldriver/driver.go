// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gldriver implements [glgpu.Device] for an OpenGL 4.1 core
// context using go-gl. The context must be current on the calling
// thread, and [Init] must have been called after making it current.
package gldriver

import (
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/glmodel/glgpu"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Init loads the OpenGL function pointers for the current context.
func Init() error {
	if err := gl.Init(); err != nil {
		return errors.Log(err)
	}
	return nil
}

// Version returns the GL version string of the current context.
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// Device issues glgpu calls against the current OpenGL context.
type Device struct{}

// New returns a Device for the current context.
func New() *Device {
	return &Device{}
}

var _ glgpu.Device = (*Device)(nil)

func (d *Device) GenBuffer() uint32 {
	var name uint32
	gl.GenBuffers(1, &name)
	return name
}

func (d *Device) DeleteBuffer(name uint32) {
	gl.DeleteBuffers(1, &name)
}

func (d *Device) BindBuffer(target glgpu.BufferTarget, name uint32) {
	gl.BindBuffer(bufferTargets[target], name)
}

func (d *Device) BufferData(target glgpu.BufferTarget, data []byte) {
	if len(data) == 0 {
		gl.BufferData(bufferTargets[target], 0, nil, gl.STATIC_DRAW)
		return
	}
	gl.BufferData(bufferTargets[target], len(data), gl.Ptr(&data[0]), gl.STATIC_DRAW)
}

func (d *Device) BindBufferBase(target glgpu.BufferTarget, index, name uint32) {
	gl.BindBufferBase(bufferTargets[target], index, name)
}

func (d *Device) GenVertexArray() uint32 {
	var name uint32
	gl.GenVertexArrays(1, &name)
	return name
}

func (d *Device) DeleteVertexArray(name uint32) {
	gl.DeleteVertexArrays(1, &name)
}

func (d *Device) BindVertexArray(name uint32) {
	gl.BindVertexArray(name)
}

func (d *Device) EnableVertexAttribArray(location uint32) {
	gl.EnableVertexAttribArray(location)
}

func (d *Device) VertexAttribPointer(location uint32, size int32, typ glgpu.ScalarType, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointerWithOffset(location, size, scalarTypes[typ], normalized, stride, uintptr(offset))
}

func (d *Device) CreateShader(stage glgpu.ShaderStage) uint32 {
	return gl.CreateShader(shaderStages[stage])
}

// CompileShader compiles the given source. The source does not need to be
// null terminated, but that skips the extra step of adding the terminator.
func (d *Device) CompileShader(shader uint32, src string) {
	csources, free := gl.Strs(cString(src))
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)
}

func (d *Device) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (d *Device) ShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	msg := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(msg))
	return goString(msg)
}

func (d *Device) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (d *Device) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (d *Device) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (d *Device) DetachShader(program, shader uint32) {
	gl.DetachShader(program, shader)
}

func (d *Device) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (d *Device) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (d *Device) ProgramInfoLog(program uint32) string {
	var lgLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &lgLength)
	if lgLength == 0 {
		return ""
	}
	lg := strings.Repeat("\x00", int(lgLength+1))
	gl.GetProgramInfoLog(program, lgLength, nil, gl.Str(lg))
	return goString(lg)
}

func (d *Device) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (d *Device) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (d *Device) AttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(cString(name)))
}

func (d *Device) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(cString(name)))
}

func (d *Device) UniformBlockIndex(program uint32, name string) uint32 {
	return gl.GetUniformBlockIndex(program, gl.Str(cString(name)))
}

func (d *Device) UniformBlockBinding(program, block, binding uint32) {
	gl.UniformBlockBinding(program, block, binding)
}

func (d *Device) UniformMatrix4fv(location int32, values []float32) {
	if len(values) < 16 {
		return
	}
	gl.UniformMatrix4fv(location, int32(len(values)/16), false, &values[0])
}

func (d *Device) Uniform1f(location int32, value float32) {
	gl.Uniform1f(location, value)
}

func (d *Device) DrawElements(mode glgpu.Topology, count int32, typ glgpu.ScalarType, offset int) {
	gl.DrawElements(topologies[mode], count, scalarTypes[typ], gl.PtrOffset(offset))
}

func (d *Device) Error() uint32 {
	return gl.GetError()
}

// cString returns a null terminated version of s.
func cString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

// goString trims the null terminator and trailing whitespace from s.
func goString(s string) string {
	return strings.TrimRight(s, "\x00\n\r\t ")
}

// BeginFrame sets the viewport to the framebuffer size, enables depth
// testing and clears the color and depth buffers to the color.
func BeginFrame(width, height int, clear [4]float32) {
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(clear[0], clear[1], clear[2], clear[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}
