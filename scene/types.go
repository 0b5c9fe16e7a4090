// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

//go:generate core generate

import "fmt"

// ElementType is the scalar type of the elements of a [BufferView].
type ElementType int32 //enums:enum

const (
	Int8 ElementType = iota
	Int16
	Int32
	Float16
	Float32
)

// Size returns the size in bytes of one element, or 0 for an unknown type.
func (et ElementType) Size() int {
	switch et {
	case Int8:
		return 1
	case Int16, Float16:
		return 2
	case Int32, Float32:
		return 4
	}
	return 0
}

// IsInteger returns whether the type is one of the integer types.
func (et ElementType) IsInteger() bool {
	return et == Int8 || et == Int16 || et == Int32
}

// VertexAttr identifies the role of a [BufferView] within [Vertices].
type VertexAttr int32 //enums:enum

const (
	Indices VertexAttr = iota
	Position
	Normal
	Tangent
	Color
	TexCoords0
	TexCoords1
	Joints
	Weights
)

// ParseVertexAttr returns the attribute with the given name,
// such as Normal or normal.
func ParseVertexAttr(s string) (VertexAttr, error) {
	var va VertexAttr
	if err := va.SetString(s); err != nil {
		return 0, fmt.Errorf("scene: %w", err)
	}
	return va, nil
}

// PrimitiveType is the topology of a [Primitive].
type PrimitiveType int32 //enums:enum

const (
	Points PrimitiveType = iota
	Lines
	LineLoop
	LineStrip
	Triangles
	TriangleFan
	TriangleStrip
)
