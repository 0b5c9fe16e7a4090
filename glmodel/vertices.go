// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glmodel

import (
	"fmt"
	"strings"

	"cogentcore.org/glmodel/scene"
)

// AttrView pairs a vertex attribute with its vertex view.
type AttrView struct {
	Attr scene.VertexAttr
	View *VertexView
}

// VertexSet is the GPU geometry of one mesh: an index view, a position
// view and the views of the other attributes. It holds its own owner
// of every buffer, which may be shared with other vertex sets built
// from the same data.
type VertexSet struct {
	Index    *IndexView
	Position *VertexView
	Attrs    []AttrView

	// users is the number of VAOs built from the set.
	users    int
	released bool
}

// Attr returns the view for the attribute, if the set has one.
func (vs *VertexSet) Attr(attr scene.VertexAttr) (*VertexView, bool) {
	if attr == scene.Position {
		return vs.Position, true
	}
	for _, av := range vs.Attrs {
		if av.Attr == attr {
			return av.View, true
		}
	}
	return nil, false
}

// Release releases the buffers of the set. It fails with [ErrInUse]
// while VAOs built from the set remain.
func (vs *VertexSet) Release() error {
	if vs.released {
		return nil
	}
	if vs.users > 0 {
		return fmt.Errorf("%w: vertex set has %d VAOs", ErrInUse, vs.users)
	}
	vs.released = true
	vs.Index.Release()
	vs.Position.Release()
	for _, av := range vs.Attrs {
		av.View.Release()
	}
	return nil
}

func (vs *VertexSet) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ind:%v pos:%v", vs.Index, vs.Position)
	for _, av := range vs.Attrs {
		fmt.Fprintf(&b, " %v:%v", av.Attr, av.View)
	}
	return b.String()
}
