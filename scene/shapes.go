// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// cubeFaces are the outward normal and the two in-face axes of each face.
var cubeFaces = [6][3]mgl32.Vec3{
	{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	{{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
	{{0, 1, 0}, {0, 0, 1}, {1, 0, 0}},
	{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
	{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
	{{0, 0, -1}, {0, 1, 0}, {1, 0, 0}},
}

// Cube returns a unit cube centered on the origin, as one mesh of
// triangles. Positions and normals are interleaved in one [BufferData]
// with a stride of 24 bytes; indices are 8-bit in a second one.
func Cube() *Object {
	var verts, idxs []byte
	for f, face := range cubeFaces {
		n, u, v := face[0], face[1], face[2]
		for _, c := range [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
			p := n.Add(u.Mul(c[0])).Add(v.Mul(c[1])).Mul(0.5)
			verts = AppendFloat32(verts, p[:]...)
			verts = AppendFloat32(verts, n[:]...)
		}
		base := byte(4 * f)
		idxs = append(idxs, base, base+1, base+2, base, base+2, base+3)
	}
	vdata := NewBufferData(verts)
	idata := NewBufferData(idxs)
	vt := NewVertices(
		NewBufferView(idata, uint32(len(idxs)), Int8, 0, 0),
		NewBufferView(vdata, 3, Float32, 0, 24),
	).AddAttr(Normal, NewBufferView(vdata, 3, Float32, 12, 24))

	ob := NewObject()
	vi := ob.AddVertices(vt)
	ob.AddNode(-1, mgl32.Ident4(), &Mesh{Primitives: []Primitive{{
		VerticesIndex: vi,
		Type:          Triangles,
		IndexCount:    uint32(len(idxs)),
		MaterialIndex: -1,
	}}})
	return ob
}

// AppendFloat32 appends the little-endian encoding of vals to b.
func AppendFloat32(b []byte, vals ...float32) []byte {
	for _, v := range vals {
		b = binary.LittleEndian.AppendUint32(b, math.Float32bits(v))
	}
	return b
}
