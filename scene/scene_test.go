// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementSize(t *testing.T) {
	assert.Equal(t, 1, Int8.Size())
	assert.Equal(t, 2, Int16.Size())
	assert.Equal(t, 4, Int32.Size())
	assert.Equal(t, 2, Float16.Size())
	assert.Equal(t, 4, Float32.Size())
	assert.Equal(t, 0, ElementType(99).Size())
	assert.True(t, Int16.IsInteger())
	assert.False(t, Float16.IsInteger())
}

func TestParseVertexAttr(t *testing.T) {
	for va := Indices; va <= Weights; va++ {
		got, err := ParseVertexAttr(va.String())
		require.NoError(t, err)
		assert.Equal(t, va, got)
	}
	got, err := ParseVertexAttr("normal")
	assert.NoError(t, err)
	assert.Equal(t, Normal, got)
	_, err = ParseVertexAttr("Bitangent")
	assert.Error(t, err)
}

func TestIndexBytes(t *testing.T) {
	bd := NewBufferData([]byte{0, 1, 2, 3, 4, 5, 6, 7})
	b, err := NewBufferView(bd, 3, Int16, 2, 0).IndexBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 3, 4, 5, 6, 7}, b)

	_, err = NewBufferView(bd, 3, Int32, 0, 0).IndexBytes()
	assert.Error(t, err)
}

func TestRecipeFlattensHierarchy(t *testing.T) {
	ob := NewObject()
	bd := NewBufferData(make([]byte, 64))
	vi := ob.AddVertices(NewVertices(NewBufferView(bd, 3, Int8, 0, 0), NewBufferView(bd, 3, Float32, 0, 0)))
	mesh := &Mesh{Primitives: []Primitive{{VerticesIndex: vi, Type: Triangles, IndexCount: 3}, {VerticesIndex: vi, Type: Lines, IndexCount: 2}}}

	root := ob.AddNode(-1, mgl32.Translate3D(1, 0, 0), mesh)
	ob.AddNode(root, mgl32.Translate3D(0, 2, 0), nil)
	child := ob.AddNode(root, mgl32.Translate3D(0, 0, 3), mesh)
	_ = child

	rr, err := ob.Recipe()
	require.NoError(t, err)
	assert.Len(t, rr.Matrices, 2)
	assert.Len(t, rr.Primitives, 4)
	assert.Equal(t, []int{0, 0, 1, 1}, rr.MatrixForPrimitive)
	assert.Equal(t, mgl32.Vec3{1, 0, 3}, rr.Matrices[1].Col(3).Vec3())
	assert.NoError(t, rr.Validate(len(ob.Vertices)))
	assert.Error(t, rr.Validate(0))
}

func TestRecipeRejectsCycles(t *testing.T) {
	ob := NewObject()
	a := ob.AddNode(-1, mgl32.Ident4(), nil)
	b := ob.AddNode(a, mgl32.Ident4(), nil)
	ob.Nodes[b].Children = append(ob.Nodes[b].Children, a)
	_, err := ob.Recipe()
	assert.Error(t, err)
}

func TestTransformationMat4(t *testing.T) {
	tf := Identity()
	assert.True(t, tf.Mat4().ApproxEqual(mgl32.Ident4()))

	tf.Translation = mgl32.Vec3{1, 2, 3}
	tf.Scale = mgl32.Vec3{2, 2, 2}
	tf.Rotation = mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 0, 1})
	p := tf.Mat4().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 1, p.X(), 1e-5)
	assert.InDelta(t, 4, p.Y(), 1e-5)
	assert.InDelta(t, 3, p.Z(), 1e-5)
}

// recordingClient records the order of client notifications.
type recordingClient struct {
	events []string
	fail   VertexAttr
}

func (rc *recordingClient) CreateBufferData(data *BufferData) error {
	rc.events = append(rc.events, "data")
	return nil
}

func (rc *recordingClient) CreateView(view *BufferView, attr VertexAttr) error {
	if attr == rc.fail {
		return errors.New("refused")
	}
	rc.events = append(rc.events, attr.String())
	return nil
}

func (rc *recordingClient) CreateVertices(vt *Vertices) (int, error) {
	rc.events = append(rc.events, "vertices")
	return len(rc.events), nil
}

func TestInstantiate(t *testing.T) {
	rc := &recordingClient{fail: -1}
	in, err := Instantiate[int](Cube(), rc)
	require.NoError(t, err)
	assert.Equal(t, []string{"Indices", "Position", "Normal", "vertices"}, rc.events)
	assert.Equal(t, []int{4}, in.Vertices)
	assert.Len(t, in.Recipe.Primitives, 1)
	assert.Equal(t, uint32(36), in.Recipe.Primitives[0].IndexCount)

	_, err = Instantiate[int](Cube(), &recordingClient{fail: Normal})
	assert.Error(t, err)
}

func TestCubeSharesVertexData(t *testing.T) {
	ob := Cube()
	vt := ob.Vertices[0]
	assert.Same(t, vt.Position.Data, vt.Attr(Normal).Data)
	assert.NotSame(t, vt.Position.Data, vt.Indices.Data)
	assert.Equal(t, 24*24, vt.Position.Data.ByteLength())
	_, err := vt.Indices.IndexBytes()
	assert.NoError(t, err)
}
