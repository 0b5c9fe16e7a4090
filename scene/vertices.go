// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

// AttrView pairs a vertex attribute with the view holding its data.
type AttrView struct {
	Attr VertexAttr
	View *BufferView
}

// Vertices is the geometry of one mesh: its indices, positions and
// any other vertex attributes.
type Vertices struct {
	Indices  *BufferView
	Position *BufferView
	Attrs    []AttrView
}

// NewVertices returns new Vertices with the given indices and positions.
func NewVertices(indices, position *BufferView) *Vertices {
	return &Vertices{Indices: indices, Position: position}
}

// AddAttr adds the view for the given attribute.
func (vt *Vertices) AddAttr(attr VertexAttr, view *BufferView) *Vertices {
	vt.Attrs = append(vt.Attrs, AttrView{Attr: attr, View: view})
	return vt
}

// Attr returns the view for the given attribute, or nil.
func (vt *Vertices) Attr(attr VertexAttr) *BufferView {
	switch attr {
	case Indices:
		return vt.Indices
	case Position:
		return vt.Position
	}
	for _, av := range vt.Attrs {
		if av.Attr == attr {
			return av.View
		}
	}
	return nil
}
