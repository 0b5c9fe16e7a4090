// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glmodel

import (
	"bytes"
	"log/slog"
	"testing"

	"cogentcore.org/glmodel/glgpu"
	"cogentcore.org/glmodel/glgpu/glgputest"
	"cogentcore.org/glmodel/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStages = []Stage{
	{Kind: glgpu.VertexShader, Source: "#version 410\nvoid main() {}"},
	{Kind: glgpu.FragmentShader, Source: "#version 410\nvoid main() {}"},
}

// newTestDevice returns a device whose programs have the symbols
// used by the tests.
func newTestDevice() *glgputest.Device {
	dev := glgputest.New()
	dev.Attribs["aPosition"] = 0
	dev.Attribs["aNormal"] = 1
	dev.Attribs["aTexCoords"] = 2
	dev.Uniforms["uView"] = 10
	dev.Uniforms["uModel"] = 11
	dev.Uniforms["uMesh"] = 12
	dev.Uniforms["uBones"] = 13
	dev.Uniforms["uBoneScale"] = 14
	dev.Uniforms["uTint"] = 15
	dev.Blocks["Lights"] = 0
	return dev
}

// newTestProgram compiles a program on the context with all the
// symbols of [newTestDevice] bound.
func newTestProgram(t *testing.T, c *Context) *Program {
	t.Helper()
	pr, err := c.CompileProgram("test", testStages...)
	require.NoError(t, err)
	require.NoError(t, pr.BindAttribute("aPosition", scene.Position))
	require.NoError(t, pr.BindAttribute("aNormal", scene.Normal))
	require.NoError(t, pr.BindAttribute("aTexCoords", scene.TexCoords0))
	require.NoError(t, pr.BindUniform("uView", ViewMatrix))
	require.NoError(t, pr.BindUniform("uModel", ModelMatrix))
	require.NoError(t, pr.BindUniform("uMesh", MeshMatrix))
	require.NoError(t, pr.BindUniform("uBones", BoneMatrices))
	require.NoError(t, pr.BindUniform("uBoneScale", BoneScale))
	require.NoError(t, pr.BindUniform("uTint", User(0)))
	require.NoError(t, pr.BindUniformBlock("Lights", 0))
	return pr
}

func TestCompileProgram(t *testing.T) {
	dev := newTestDevice()
	c := NewContext(dev)
	pr := newTestProgram(t, c)
	assert.NotZero(t, pr.Handle())
	assert.True(t, dev.ProgramLinked(pr.Handle()))
	assert.Equal(t, 2, dev.Count("DetachShader"))
	assert.Empty(t, dev.Shaders)

	assert.Len(t, pr.Attributes(), 3)
	loc, ok := pr.Uniform(MeshMatrix)
	assert.True(t, ok)
	assert.Equal(t, int32(12), loc)
	loc, ok = pr.Uniform(BufferBlock(0))
	assert.True(t, ok)
	assert.Zero(t, loc)
	_, ok = pr.Uniform(User(1))
	assert.False(t, ok)
}

func TestCompileError(t *testing.T) {
	dev := newTestDevice()
	dev.CompileErrors[glgpu.FragmentShader] = "0:3: syntax error"
	c := NewContext(dev)
	pr, err := c.CompileProgram("bad", testStages...)
	assert.Nil(t, pr)
	var ce *CompileError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, glgpu.FragmentShader, ce.Stage)
	assert.Equal(t, "0:3: syntax error", ce.Log)
	assert.Contains(t, err.Error(), "fragment")
	assert.Zero(t, dev.Count("CreateProgram"))
	assert.Zero(t, dev.Count("LinkProgram"))
	assert.Empty(t, dev.Shaders)
}

func TestLinkError(t *testing.T) {
	dev := newTestDevice()
	dev.LinkError = "main not defined"
	c := NewContext(dev)
	_, err := c.CompileProgram("bad", testStages...)
	var le *LinkError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "main not defined", le.Log)
	assert.Empty(t, dev.Programs)
	assert.Empty(t, dev.Shaders)

	_, err = c.CompileProgram("empty")
	assert.Error(t, err)
}

func TestMissingSymbols(t *testing.T) {
	c := NewContext(newTestDevice())
	pr, err := c.CompileProgram("test", testStages...)
	require.NoError(t, err)

	var se *SymbolError
	err = pr.BindUniform("uMissing", BoneScale)
	require.ErrorAs(t, err, &se)
	assert.Equal(t, UniformSymbol, se.Kind)
	assert.Equal(t, "uMissing", se.Name)
	_, ok := pr.Uniform(BoneScale)
	assert.False(t, ok)

	err = pr.BindAttribute("uModel", scene.Normal)
	require.ErrorAs(t, err, &se)
	assert.Equal(t, AttributeSymbol, se.Kind)
	assert.Empty(t, pr.Attributes())

	err = pr.BindUniform("aNormal", User(2))
	require.ErrorAs(t, err, &se)
	assert.Equal(t, UniformSymbol, se.Kind)

	err = pr.BindUniformBlock("Materials", 1)
	require.ErrorAs(t, err, &se)
	assert.Equal(t, UniformBlockSymbol, se.Kind)
	assert.Contains(t, err.Error(), `uniform block "Materials"`)

	assert.Error(t, pr.BindUniform("Lights", BufferBlock(0)))
}

func TestRebindReplacesLocation(t *testing.T) {
	dev := newTestDevice()
	c := NewContext(dev)
	pr, err := c.CompileProgram("test", testStages...)
	require.NoError(t, err)
	require.NoError(t, pr.BindAttribute("aNormal", scene.Normal))
	require.NoError(t, pr.BindAttribute("aTexCoords", scene.Normal))
	assert.Equal(t, []AttributeBinding{{Location: 2, Attr: scene.Normal}}, pr.Attributes())

	require.NoError(t, pr.BindUniform("uModel", User(4)))
	require.NoError(t, pr.BindUniform("uTint", User(4)))
	loc, _ := pr.Uniform(User(4))
	assert.Equal(t, int32(15), loc)
}

func TestBindUniformBuffer(t *testing.T) {
	dev := newTestDevice()
	c := NewContext(dev)
	pr := newTestProgram(t, c)
	buf, err := c.NewUniformBuffer(make([]byte, 64))
	require.NoError(t, err)

	require.NoError(t, pr.BindUniformBuffer(0, 3, buf))
	bb := dev.Named("BindBufferBase")
	require.Len(t, bb, 1)
	assert.Equal(t, []any{glgpu.UniformBuffer, uint32(3), buf.Name()}, bb[0].Args)
	ub := dev.Named("UniformBlockBinding")
	require.Len(t, ub, 1)
	assert.Equal(t, []any{pr.Handle(), uint32(0), uint32(3)}, ub[0].Args)

	var se *SymbolError
	assert.ErrorAs(t, pr.BindUniformBuffer(1, 3, buf), &se)
	assert.Error(t, pr.BindUniformBuffer(0, 3, c.Buffers().New()))
}

func TestSetViewMatrix(t *testing.T) {
	dev := newTestDevice()
	c := NewContext(dev)
	pr := newTestProgram(t, c)
	pr.Use()
	assert.Equal(t, pr.Handle(), dev.CurrentProgram())
	view := scene.Identity()
	view.Translation[2] = -5
	m := view.Mat4()
	pr.SetViewMatrix(m)
	assert.Equal(t, m[:], dev.UniformValues[10])
}

func TestDeleteProgram(t *testing.T) {
	dev := newTestDevice()
	c := NewContext(dev)
	pr := newTestProgram(t, c)
	in, err := c.Instantiate(scene.Cube())
	require.NoError(t, err)
	vao, err := c.NewVAO(pr, in.Vertices[0])
	require.NoError(t, err)

	var logged bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logged, nil)))
	err = pr.Delete()
	slog.SetDefault(prev)
	assert.ErrorIs(t, err, ErrInUse)
	assert.Empty(t, logged.String())
	assert.NotZero(t, pr.Handle())
	vao.Delete()
	require.NoError(t, pr.Delete())
	require.NoError(t, pr.Delete())
	assert.Zero(t, pr.Handle())
	assert.Equal(t, 1, dev.Count("DeleteProgram"))

	assert.ErrorIs(t, pr.BindUniform("uModel", ModelMatrix), ErrReleased)
	_, err = c.NewVAO(pr, in.Vertices[0])
	assert.ErrorIs(t, err, ErrReleased)
}
