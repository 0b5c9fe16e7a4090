// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glmodel

import (
	"fmt"
	"log/slog"

	"cogentcore.org/glmodel/glgpu"
	"cogentcore.org/glmodel/scene"
)

// bufferRecord is one GPU buffer in a [Buffers] arena.
// name is 0 until the data is uploaded, and then never changes
// until the record is freed.
type bufferRecord struct {
	name uint32
	refs int
	gen  uint32
}

// Buffers is an arena of reference counted GPU buffer records.
// Records are addressed by slot, and slots are reused after the last
// owner releases them; the generation count tells a reused slot apart.
type Buffers struct {
	dev  glgpu.Device
	recs []bufferRecord
	free []int
}

// NewBuffers returns a new empty arena issuing calls on dev.
func NewBuffers(dev glgpu.Device) *Buffers {
	return &Buffers{dev: dev}
}

// New returns the single owner of a new uninitialized record.
func (bs *Buffers) New() *Buffer {
	var slot int
	if n := len(bs.free); n > 0 {
		slot = bs.free[n-1]
		bs.free = bs.free[:n-1]
	} else {
		slot = len(bs.recs)
		bs.recs = append(bs.recs, bufferRecord{})
	}
	rec := &bs.recs[slot]
	rec.refs = 1
	return &Buffer{arena: bs, slot: slot, gen: rec.gen}
}

// Live returns the number of records that still have owners.
func (bs *Buffers) Live() int {
	return len(bs.recs) - len(bs.free)
}

// Buffer is one owner's reference to a GPU buffer. Every owner releases
// its own Buffer; the GPU buffer is deleted when the last one does.
type Buffer struct {
	arena    *Buffers
	slot     int
	gen      uint32
	released bool
}

func (b *Buffer) record() (*bufferRecord, error) {
	if b == nil || b.released {
		return nil, ErrReleased
	}
	rec := &b.arena.recs[b.slot]
	if rec.gen != b.gen {
		return nil, ErrReleased
	}
	return rec, nil
}

// Name returns the GPU buffer name, 0 if uninitialized or released.
func (b *Buffer) Name() uint32 {
	rec, err := b.record()
	if err != nil {
		return 0
	}
	return rec.name
}

// IsInitialized returns whether data has been uploaded to the buffer.
func (b *Buffer) IsInitialized() bool {
	return b.Name() != 0
}

// Owners returns the number of owners sharing the buffer.
func (b *Buffer) Owners() int {
	rec, err := b.record()
	if err != nil {
		return 0
	}
	return rec.refs
}

// Share returns a new owner of the same buffer.
func (b *Buffer) Share() (*Buffer, error) {
	rec, err := b.record()
	if err != nil {
		return nil, err
	}
	rec.refs++
	return &Buffer{arena: b.arena, slot: b.slot, gen: b.gen}, nil
}

// Release gives up this owner's reference. Releasing the last owner
// deletes the GPU buffer if it was initialized. Releasing the same
// owner again does nothing.
func (b *Buffer) Release() {
	rec, err := b.record()
	if err != nil {
		return
	}
	b.released = true
	rec.refs--
	if rec.refs > 0 {
		return
	}
	if rec.name != 0 {
		slog.Debug("glmodel: delete buffer", "name", rec.name)
		b.arena.dev.DeleteBuffer(rec.name)
	}
	rec.name = 0
	rec.gen++
	b.arena.free = append(b.arena.free, b.slot)
}

// OfData uploads data as vertex data (static draw array buffer).
func (b *Buffer) OfData(data []byte) error {
	return b.upload(glgpu.ArrayBuffer, data)
}

// OfIndices uploads the indices of the view as an element array buffer.
// The view must have an integer element type; its data must hold
// Count elements from ByteOffset.
func (b *Buffer) OfIndices(view *scene.BufferView) error {
	if !view.ElementType.IsInteger() {
		return fmt.Errorf("%w: got %v", ErrInvalidElementType, view.ElementType)
	}
	data, err := view.IndexBytes()
	if err != nil {
		return err
	}
	if _, err := b.record(); err != nil {
		return err
	}
	if b.IsInitialized() {
		return ErrDoubleInit
	}
	// binding an element buffer would attach it to whatever VAO is current
	b.arena.dev.BindVertexArray(0)
	return b.upload(glgpu.ElementArrayBuffer, data)
}

// OfUniformData uploads data as a uniform buffer.
func (b *Buffer) OfUniformData(data []byte) error {
	return b.upload(glgpu.UniformBuffer, data)
}

func (b *Buffer) upload(target glgpu.BufferTarget, data []byte) error {
	rec, err := b.record()
	if err != nil {
		return err
	}
	if rec.name != 0 {
		return ErrDoubleInit
	}
	dev := b.arena.dev
	name := dev.GenBuffer()
	dev.BindBuffer(target, name)
	dev.BufferData(target, data)
	dev.BindBuffer(target, 0)
	rec.name = name
	slog.Debug("glmodel: upload buffer", "target", target, "name", name, "bytes", len(data))
	return nil
}

func (b *Buffer) String() string {
	return fmt.Sprintf("GL(%d)", b.Name())
}
