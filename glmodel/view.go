// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glmodel

import (
	"fmt"

	"cogentcore.org/glmodel/glgpu"
	"cogentcore.org/glmodel/scene"
)

// BufferView is either a [*VertexView] or an [*IndexView].
type BufferView interface {
	fmt.Stringer

	// Buffer returns the GPU buffer the view looks into.
	Buffer() *Buffer

	// Release releases the view's reference to its buffer.
	Release()

	isBufferView()
}

// AsVertexView returns the view as a vertex view, or [ErrWrongView].
func AsVertexView(bv BufferView) (*VertexView, error) {
	switch v := bv.(type) {
	case *VertexView:
		return v, nil
	case *IndexView:
		return nil, fmt.Errorf("%w: %v used as vertex data", ErrWrongView, v)
	}
	return nil, fmt.Errorf("%w: %T", ErrWrongView, bv)
}

// AsIndexView returns the view as an index view, or [ErrWrongView].
func AsIndexView(bv BufferView) (*IndexView, error) {
	switch v := bv.(type) {
	case *IndexView:
		return v, nil
	case *VertexView:
		return nil, fmt.Errorf("%w: %v used as index data", ErrWrongView, v)
	}
	return nil, fmt.Errorf("%w: %T", ErrWrongView, bv)
}

// VertexView is a subset of a shared GPU buffer used as the data of one
// vertex attribute. Many vertex views can share one buffer, each picking
// out its own attribute with an offset and stride.
type VertexView struct {
	buf *Buffer

	// Count is the number of elements per vertex, 1 to 4.
	Count uint32

	ElementType scene.ElementType

	// ByteOffset is the offset of the first element in the buffer.
	ByteOffset uint32

	// Stride is the distance between vertices; 0 means tightly packed.
	Stride uint32
}

func (vv *VertexView) isBufferView() {}

func (vv *VertexView) Buffer() *Buffer { return vv.buf }

func (vv *VertexView) Release() { vv.buf.Release() }

// share returns a copy of the view with its own owner of the buffer.
func (vv *VertexView) share() (*VertexView, error) {
	buf, err := vv.buf.Share()
	if err != nil {
		return nil, err
	}
	cp := *vv
	cp.buf = buf
	return &cp, nil
}

// ScalarType returns the GL type of the attribute elements.
func (vv *VertexView) ScalarType() glgpu.ScalarType {
	switch vv.ElementType {
	case scene.Int8:
		return glgpu.Byte
	case scene.Int16:
		return glgpu.Short
	case scene.Int32:
		return glgpu.Int
	case scene.Float16:
		return glgpu.HalfFloat
	}
	return glgpu.Float
}

// BindToVAO describes the view as the data of the attribute location
// in the current vertex array.
func (vv *VertexView) BindToVAO(dev glgpu.Device, location uint32) {
	dev.BindBuffer(glgpu.ArrayBuffer, vv.buf.Name())
	dev.EnableVertexAttribArray(location)
	dev.VertexAttribPointer(location, int32(vv.Count), vv.ScalarType(), false, int32(vv.Stride), int(vv.ByteOffset))
}

func (vv *VertexView) String() string {
	return fmt.Sprintf("Vert(%d+%d:#%d %v @%d)", vv.buf.Name(), vv.ByteOffset, vv.Count, vv.ElementType, vv.Stride)
}

// IndexView is a GPU element array buffer holding only index data.
// Its buffer is created for the view and never shared with a vertex view.
type IndexView struct {
	buf *Buffer

	// Count is the number of indices.
	Count uint32

	ElementType scene.ElementType
}

func (iv *IndexView) isBufferView() {}

func (iv *IndexView) Buffer() *Buffer { return iv.buf }

func (iv *IndexView) Release() { iv.buf.Release() }

func (iv *IndexView) share() (*IndexView, error) {
	buf, err := iv.buf.Share()
	if err != nil {
		return nil, err
	}
	cp := *iv
	cp.buf = buf
	return &cp, nil
}

// IndexType returns the GL type of the indices for draw calls.
func (iv *IndexView) IndexType() glgpu.ScalarType {
	switch iv.ElementType {
	case scene.Int8:
		return glgpu.UnsignedByte
	case scene.Int16:
		return glgpu.UnsignedShort
	}
	return glgpu.UnsignedInt
}

// BindToVAO binds the index buffer to the current vertex array.
func (iv *IndexView) BindToVAO(dev glgpu.Device) {
	dev.BindBuffer(glgpu.ElementArrayBuffer, iv.buf.Name())
}

func (iv *IndexView) String() string {
	return fmt.Sprintf("Ind(%d#%d %v)", iv.buf.Name(), iv.Count, iv.ElementType)
}

// newIndexView uploads the indices of the view into a new buffer.
func newIndexView(bs *Buffers, view *scene.BufferView) (*IndexView, error) {
	buf := bs.New()
	if err := buf.OfIndices(view); err != nil {
		buf.Release()
		return nil, err
	}
	return &IndexView{buf: buf, Count: view.Count, ElementType: view.ElementType}, nil
}

// newVertexView returns a view of the view's data in the shared buffer.
func newVertexView(shared *Buffer, view *scene.BufferView) (*VertexView, error) {
	if view.ElementType.Size() == 0 {
		return nil, fmt.Errorf("glmodel: vertex view %v has an unknown element type", view)
	}
	if view.Count < 1 || view.Count > 4 {
		return nil, fmt.Errorf("glmodel: vertex view %v must have 1 to 4 elements per vertex", view)
	}
	buf, err := shared.Share()
	if err != nil {
		return nil, err
	}
	return &VertexView{buf: buf, Count: view.Count, ElementType: view.ElementType, ByteOffset: view.ByteOffset, Stride: view.Stride}, nil
}
