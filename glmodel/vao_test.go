// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glmodel

import (
	"testing"

	"cogentcore.org/glmodel/glgpu"
	"cogentcore.org/glmodel/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVAO(t *testing.T) {
	dev := newTestDevice()
	c := NewContext(dev)
	c.Debug = true
	pr := newTestProgram(t, c)
	in, err := c.Instantiate(scene.Cube())
	require.NoError(t, err)
	vs := in.Vertices[0]

	vao, err := c.NewVAO(pr, vs)
	require.NoError(t, err)
	assert.Zero(t, dev.CurrentVertexArray())
	va := dev.VertexArrays[vao.Handle()]
	require.NotNil(t, va)
	assert.Equal(t, vs.Index.Buffer().Name(), va.Index)

	// the cube has no texture coordinates, so location 2 stays unbound
	assert.Len(t, va.Attribs, 2)
	assert.NotContains(t, va.Attribs, uint32(2))

	pos := va.Attribs[0]
	assert.Equal(t, vs.Position.Buffer().Name(), pos.Buffer)
	assert.Equal(t, int32(3), pos.Size)
	assert.Equal(t, glgpu.Float, pos.Type)
	assert.Equal(t, int32(24), pos.Stride)
	assert.Zero(t, pos.Offset)
	assert.True(t, pos.Enabled)
	assert.False(t, pos.Normalized)

	nrm := va.Attribs[1]
	assert.Equal(t, vs.Position.Buffer().Name(), nrm.Buffer)
	assert.Equal(t, 12, nrm.Offset)
	assert.True(t, nrm.Enabled)
	assert.Empty(t, dev.Errors)

	vao.Bind()
	assert.Equal(t, vao.Handle(), dev.CurrentVertexArray())
}

func TestVAOIntegerAttribute(t *testing.T) {
	dev := newTestDevice()
	c := NewContext(dev)
	pr := newTestProgram(t, c)
	ob := scene.Cube()
	vt := ob.Vertices[0]
	vt.AddAttr(scene.TexCoords0, scene.NewBufferView(scene.NewBufferData(make([]byte, 24*4)), 2, scene.Int16, 0, 0))
	in, err := c.Instantiate(ob)
	require.NoError(t, err)

	vao, err := c.NewVAO(pr, in.Vertices[0])
	require.NoError(t, err)
	tex := dev.VertexArrays[vao.Handle()].Attribs[2]
	require.NotNil(t, tex)
	assert.Equal(t, glgpu.Short, tex.Type)
	assert.Equal(t, int32(2), tex.Size)
	assert.Zero(t, tex.Stride)
	assert.NotEqual(t, in.Vertices[0].Position.Buffer().Name(), tex.Buffer)
}

func TestVAOBoundsLifetimes(t *testing.T) {
	dev := newTestDevice()
	c := NewContext(dev)
	pr := newTestProgram(t, c)
	in, err := c.Instantiate(scene.Cube())
	require.NoError(t, err)
	vs := in.Vertices[0]

	vao, err := c.NewVAO(pr, vs)
	require.NoError(t, err)
	assert.ErrorIs(t, vs.Release(), ErrInUse)
	assert.Empty(t, dev.Deleted)

	vao.Delete()
	vao.Delete()
	assert.Equal(t, 1, dev.Count("DeleteVertexArray"))
	assert.Zero(t, vao.Handle())
	require.NoError(t, vs.Release())

	_, err = c.NewVAO(pr, vs)
	assert.ErrorIs(t, err, ErrReleased)
}

func TestVAODebugErrors(t *testing.T) {
	dev := newTestDevice()
	c := NewContext(dev)
	c.Debug = true
	pr := newTestProgram(t, c)
	in, err := c.Instantiate(scene.Cube())
	require.NoError(t, err)

	dev.Errors = []uint32{glgpu.InvalidOperation}
	_, err = c.NewVAO(pr, in.Vertices[0])
	assert.ErrorContains(t, err, "INVALID_OPERATION")
	assert.Equal(t, 1, dev.Count("DeleteVertexArray"))
	assert.Empty(t, dev.VertexArrays)
	require.NoError(t, pr.Delete())
}
