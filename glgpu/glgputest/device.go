// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glgputest provides a recording [glgpu.Device] that simulates
// the OpenGL state glmodel relies on, without needing a GPU.
package glgputest

import (
	"fmt"
	"slices"

	"cogentcore.org/glmodel/glgpu"
)

// Call is one recorded device call.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

// AttribPointer is the recorded state of one vertex attribute location.
type AttribPointer struct {
	Buffer     uint32
	Size       int32
	Type       glgpu.ScalarType
	Normalized bool
	Stride     int32
	Offset     int
	Enabled    bool
}

// VertexArray is the recorded state of a vertex array object.
type VertexArray struct {
	// Index is the element array buffer bound while this array was current.
	Index uint32

	// Attribs are the attribute locations described while this array was current.
	Attribs map[uint32]*AttribPointer
}

// Shader is a simulated shader object.
type Shader struct {
	Stage    glgpu.ShaderStage
	Source   string
	Compiled bool
	Log      string
}

// Program is a simulated program object.
type Program struct {
	Shaders []uint32
	Linked  bool
	Log     string
}

// Device is a recording in-memory [glgpu.Device].
// Every linked program reports the symbols of Attribs, Uniforms and
// Blocks, so tests declare the shader interface by filling them in.
type Device struct {

	// Calls is every call made, in order.
	Calls []Call

	// Attribs maps attribute names to locations.
	Attribs map[string]int32

	// Uniforms maps uniform names to locations.
	Uniforms map[string]int32

	// Blocks maps uniform block names to block indexes.
	Blocks map[string]uint32

	// CompileErrors makes compilation of the given stages fail with the log.
	CompileErrors map[glgpu.ShaderStage]string

	// LinkError makes linking fail with this log, if non-empty.
	LinkError string

	// Errors are pending error flags returned by Error, in order.
	Errors []uint32

	// Buffers holds the uploaded contents of every live buffer.
	Buffers map[uint32][]byte

	// Deleted lists every buffer name passed to DeleteBuffer, in order.
	Deleted []uint32

	VertexArrays map[uint32]*VertexArray
	Shaders      map[uint32]*Shader
	Programs     map[uint32]*Program

	// UniformValues holds the last value set for each uniform location.
	UniformValues map[int32][]float32

	bound   map[glgpu.BufferTarget]uint32
	vao     uint32
	program uint32
	next    uint32
}

var _ glgpu.Device = (*Device)(nil)

// New returns a new Device with empty symbol tables.
func New() *Device {
	return &Device{
		Attribs:       map[string]int32{},
		Uniforms:      map[string]int32{},
		Blocks:        map[string]uint32{},
		CompileErrors: map[glgpu.ShaderStage]string{},
		Buffers:       map[uint32][]byte{},
		VertexArrays:  map[uint32]*VertexArray{},
		Shaders:       map[uint32]*Shader{},
		Programs:      map[uint32]*Program{},
		UniformValues: map[int32][]float32{},
		bound:         map[glgpu.BufferTarget]uint32{},
	}
}

func (d *Device) record(name string, args ...any) {
	d.Calls = append(d.Calls, Call{Name: name, Args: args})
}

func (d *Device) fail(code uint32) {
	d.Errors = append(d.Errors, code)
}

func (d *Device) gen() uint32 {
	d.next++
	return d.next
}

// Count returns the number of recorded calls with the given name.
func (d *Device) Count(name string) int {
	n := 0
	for _, c := range d.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Named returns the recorded calls with the given name.
func (d *Device) Named(name string) []Call {
	var cs []Call
	for _, c := range d.Calls {
		if c.Name == name {
			cs = append(cs, c)
		}
	}
	return cs
}

// Reset forgets the recorded calls, keeping all simulated state.
func (d *Device) Reset() {
	d.Calls = nil
}

// Bound returns the buffer bound to the target.
func (d *Device) Bound(target glgpu.BufferTarget) uint32 {
	if target == glgpu.ElementArrayBuffer && d.vao != 0 {
		return d.VertexArrays[d.vao].Index
	}
	return d.bound[target]
}

// CurrentVertexArray returns the bound vertex array.
func (d *Device) CurrentVertexArray() uint32 {
	return d.vao
}

// CurrentProgram returns the program in use.
func (d *Device) CurrentProgram() uint32 {
	return d.program
}

func (d *Device) GenBuffer() uint32 {
	name := d.gen()
	d.Buffers[name] = nil
	d.record("GenBuffer", name)
	return name
}

func (d *Device) DeleteBuffer(name uint32) {
	d.record("DeleteBuffer", name)
	d.Deleted = append(d.Deleted, name)
	delete(d.Buffers, name)
}

func (d *Device) BindBuffer(target glgpu.BufferTarget, name uint32) {
	d.record("BindBuffer", target, name)
	if _, ok := d.Buffers[name]; name != 0 && !ok {
		d.fail(glgpu.InvalidValue)
		return
	}
	if target == glgpu.ElementArrayBuffer && d.vao != 0 {
		d.VertexArrays[d.vao].Index = name
		return
	}
	d.bound[target] = name
}

func (d *Device) BufferData(target glgpu.BufferTarget, data []byte) {
	d.record("BufferData", target, len(data))
	name := d.Bound(target)
	if name == 0 {
		d.fail(glgpu.InvalidOperation)
		return
	}
	d.Buffers[name] = slices.Clone(data)
}

func (d *Device) BindBufferBase(target glgpu.BufferTarget, index, name uint32) {
	d.record("BindBufferBase", target, index, name)
}

func (d *Device) GenVertexArray() uint32 {
	name := d.gen()
	d.VertexArrays[name] = &VertexArray{Attribs: map[uint32]*AttribPointer{}}
	d.record("GenVertexArray", name)
	return name
}

func (d *Device) DeleteVertexArray(name uint32) {
	d.record("DeleteVertexArray", name)
	delete(d.VertexArrays, name)
	if d.vao == name {
		d.vao = 0
	}
}

func (d *Device) BindVertexArray(name uint32) {
	d.record("BindVertexArray", name)
	if _, ok := d.VertexArrays[name]; name != 0 && !ok {
		d.fail(glgpu.InvalidOperation)
		return
	}
	d.vao = name
}

func (d *Device) attrib(location uint32) *AttribPointer {
	va := d.VertexArrays[d.vao]
	ap, ok := va.Attribs[location]
	if !ok {
		ap = &AttribPointer{}
		va.Attribs[location] = ap
	}
	return ap
}

func (d *Device) EnableVertexAttribArray(location uint32) {
	d.record("EnableVertexAttribArray", location)
	if d.vao == 0 {
		d.fail(glgpu.InvalidOperation)
		return
	}
	d.attrib(location).Enabled = true
}

func (d *Device) VertexAttribPointer(location uint32, size int32, typ glgpu.ScalarType, normalized bool, stride int32, offset int) {
	d.record("VertexAttribPointer", location, size, typ, normalized, stride, offset)
	if d.vao == 0 || d.bound[glgpu.ArrayBuffer] == 0 {
		d.fail(glgpu.InvalidOperation)
		return
	}
	ap := d.attrib(location)
	ap.Buffer = d.bound[glgpu.ArrayBuffer]
	ap.Size = size
	ap.Type = typ
	ap.Normalized = normalized
	ap.Stride = stride
	ap.Offset = offset
}

func (d *Device) CreateShader(stage glgpu.ShaderStage) uint32 {
	name := d.gen()
	d.Shaders[name] = &Shader{Stage: stage}
	d.record("CreateShader", stage, name)
	return name
}

func (d *Device) CompileShader(shader uint32, src string) {
	d.record("CompileShader", shader)
	sh, ok := d.Shaders[shader]
	if !ok {
		d.fail(glgpu.InvalidValue)
		return
	}
	sh.Source = src
	if msg, bad := d.CompileErrors[sh.Stage]; bad {
		sh.Log = msg
		return
	}
	sh.Compiled = true
}

func (d *Device) ShaderCompiled(shader uint32) bool {
	sh, ok := d.Shaders[shader]
	return ok && sh.Compiled
}

func (d *Device) ShaderInfoLog(shader uint32) string {
	if sh, ok := d.Shaders[shader]; ok {
		return sh.Log
	}
	return ""
}

func (d *Device) DeleteShader(shader uint32) {
	d.record("DeleteShader", shader)
	delete(d.Shaders, shader)
}

func (d *Device) CreateProgram() uint32 {
	name := d.gen()
	d.Programs[name] = &Program{}
	d.record("CreateProgram", name)
	return name
}

func (d *Device) AttachShader(program, shader uint32) {
	d.record("AttachShader", program, shader)
	pr, ok := d.Programs[program]
	if !ok {
		d.fail(glgpu.InvalidValue)
		return
	}
	pr.Shaders = append(pr.Shaders, shader)
}

func (d *Device) DetachShader(program, shader uint32) {
	d.record("DetachShader", program, shader)
	if pr, ok := d.Programs[program]; ok {
		pr.Shaders = slices.DeleteFunc(pr.Shaders, func(s uint32) bool { return s == shader })
	}
}

func (d *Device) LinkProgram(program uint32) {
	d.record("LinkProgram", program)
	pr, ok := d.Programs[program]
	if !ok {
		d.fail(glgpu.InvalidValue)
		return
	}
	if d.LinkError != "" {
		pr.Log = d.LinkError
		return
	}
	for _, s := range pr.Shaders {
		if sh, ok := d.Shaders[s]; !ok || !sh.Compiled {
			pr.Log = fmt.Sprintf("shader %d is not compiled", s)
			return
		}
	}
	pr.Linked = true
}

func (d *Device) ProgramLinked(program uint32) bool {
	pr, ok := d.Programs[program]
	return ok && pr.Linked
}

func (d *Device) ProgramInfoLog(program uint32) string {
	if pr, ok := d.Programs[program]; ok {
		return pr.Log
	}
	return ""
}

func (d *Device) DeleteProgram(program uint32) {
	d.record("DeleteProgram", program)
	delete(d.Programs, program)
	if d.program == program {
		d.program = 0
	}
}

func (d *Device) UseProgram(program uint32) {
	d.record("UseProgram", program)
	d.program = program
}

func (d *Device) linked(program uint32) bool {
	if !d.ProgramLinked(program) {
		d.fail(glgpu.InvalidOperation)
		return false
	}
	return true
}

func (d *Device) AttribLocation(program uint32, name string) int32 {
	d.record("AttribLocation", program, name)
	if !d.linked(program) {
		return -1
	}
	if loc, ok := d.Attribs[name]; ok {
		return loc
	}
	return -1
}

func (d *Device) UniformLocation(program uint32, name string) int32 {
	d.record("UniformLocation", program, name)
	if !d.linked(program) {
		return -1
	}
	if loc, ok := d.Uniforms[name]; ok {
		return loc
	}
	return -1
}

func (d *Device) UniformBlockIndex(program uint32, name string) uint32 {
	d.record("UniformBlockIndex", program, name)
	if !d.linked(program) {
		return glgpu.InvalidIndex
	}
	if idx, ok := d.Blocks[name]; ok {
		return idx
	}
	return glgpu.InvalidIndex
}

func (d *Device) UniformBlockBinding(program, block, binding uint32) {
	d.record("UniformBlockBinding", program, block, binding)
}

func (d *Device) UniformMatrix4fv(location int32, values []float32) {
	d.record("UniformMatrix4fv", location, len(values)/16)
	d.UniformValues[location] = slices.Clone(values)
}

func (d *Device) Uniform1f(location int32, value float32) {
	d.record("Uniform1f", location, value)
	d.UniformValues[location] = []float32{value}
}

func (d *Device) DrawElements(mode glgpu.Topology, count int32, typ glgpu.ScalarType, offset int) {
	d.record("DrawElements", mode, count, typ, offset)
	if d.program == 0 || d.vao == 0 || d.VertexArrays[d.vao].Index == 0 {
		d.fail(glgpu.InvalidOperation)
	}
}

func (d *Device) Error() uint32 {
	if len(d.Errors) == 0 {
		return glgpu.NoError
	}
	code := d.Errors[0]
	d.Errors = d.Errors[1:]
	return code
}
