// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "fmt"

// BufferData is a block of raw source data, typically the contents of
// a file buffer, that one or more [BufferView]s look into.
// Render clients key their GPU copy of the data on the *BufferData
// pointer, so the same data must not be wrapped twice.
type BufferData struct {
	// Data is the raw byte content.
	Data []byte
}

// NewBufferData returns a new BufferData holding data.
func NewBufferData(data []byte) *BufferData {
	return &BufferData{Data: data}
}

// ByteLength returns the length of the data in bytes.
func (bd *BufferData) ByteLength() int {
	return len(bd.Data)
}

// BufferView is a typed window into a [BufferData].
//
// For vertex attributes Count is the number of elements per vertex
// (1 to 4) and Stride the distance in bytes between vertices, 0 meaning
// tightly packed. For indices Count is the number of indices.
type BufferView struct {
	Data        *BufferData
	Count       uint32
	ElementType ElementType
	ByteOffset  uint32
	Stride      uint32
}

// NewBufferView returns a new view of data.
func NewBufferView(data *BufferData, count uint32, et ElementType, byteOffset, stride uint32) *BufferView {
	return &BufferView{Data: data, Count: count, ElementType: et, ByteOffset: byteOffset, Stride: stride}
}

// IndexBytes returns the bytes covered by the view when it holds Count
// indices, checking that they lie within the data.
func (bv *BufferView) IndexBytes() ([]byte, error) {
	n := int(bv.Count) * bv.ElementType.Size()
	start := int(bv.ByteOffset)
	if bv.Data == nil || start+n > bv.Data.ByteLength() {
		return nil, fmt.Errorf("scene: index view %v exceeds its data", bv)
	}
	return bv.Data.Data[start : start+n], nil
}

func (bv *BufferView) String() string {
	return fmt.Sprintf("View(+%d:#%d %v @%d)", bv.ByteOffset, bv.Count, bv.ElementType, bv.Stride)
}
