// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgputest

import (
	"testing"

	"cogentcore.org/glmodel/glgpu"
	"github.com/stretchr/testify/assert"
)

func TestElementBindingIsPerVertexArray(t *testing.T) {
	d := New()
	buf := d.GenBuffer()
	vao := d.GenVertexArray()
	d.BindVertexArray(vao)
	d.BindBuffer(glgpu.ElementArrayBuffer, buf)
	d.BindVertexArray(0)
	assert.Equal(t, buf, d.VertexArrays[vao].Index)
	assert.Zero(t, d.Bound(glgpu.ElementArrayBuffer))
	assert.Empty(t, d.Errors)
}

func TestBufferDataNeedsBinding(t *testing.T) {
	d := New()
	d.BufferData(glgpu.ArrayBuffer, []byte{1, 2})
	assert.Equal(t, []uint32{glgpu.InvalidOperation}, d.Errors)
}

func TestLinkNeedsCompiledShaders(t *testing.T) {
	d := New()
	d.CompileErrors[glgpu.FragmentShader] = "bad"
	vs := d.CreateShader(glgpu.VertexShader)
	fs := d.CreateShader(glgpu.FragmentShader)
	d.CompileShader(vs, "void main(){}")
	d.CompileShader(fs, "void main(){")
	assert.True(t, d.ShaderCompiled(vs))
	assert.False(t, d.ShaderCompiled(fs))
	assert.Equal(t, "bad", d.ShaderInfoLog(fs))

	pr := d.CreateProgram()
	d.AttachShader(pr, vs)
	d.AttachShader(pr, fs)
	d.LinkProgram(pr)
	assert.False(t, d.ProgramLinked(pr))
	assert.NotEmpty(t, d.ProgramInfoLog(pr))
}

func TestSymbolLookup(t *testing.T) {
	d := New()
	d.Attribs["aPosition"] = 3
	d.Uniforms["uModel"] = 7
	d.Blocks["Lights"] = 1
	pr := d.CreateProgram()
	d.LinkProgram(pr)
	assert.Equal(t, int32(3), d.AttribLocation(pr, "aPosition"))
	assert.Equal(t, int32(-1), d.AttribLocation(pr, "aNormal"))
	assert.Equal(t, int32(7), d.UniformLocation(pr, "uModel"))
	assert.Equal(t, uint32(1), d.UniformBlockIndex(pr, "Lights"))
	assert.Equal(t, glgpu.InvalidIndex, d.UniformBlockIndex(pr, "Other"))
	assert.Equal(t, 2, d.Count("AttribLocation"))
}
