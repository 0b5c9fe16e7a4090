// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "fmt"

// Client is implemented by a render backend to materialize the data of
// an [Object]. V is the backend's representation of one [Vertices].
type Client[V any] interface {

	// CreateBufferData materializes the source data. It may be called
	// repeatedly for the same data and must only act on the first call.
	CreateBufferData(data *BufferData) error

	// CreateView is called once per attribute usage of a view,
	// with attr [Indices] for index data.
	CreateView(view *BufferView, attr VertexAttr) error

	// CreateVertices is called once per [Vertices], after CreateView
	// has been called for all of its views.
	CreateVertices(vt *Vertices) (V, error)
}

// Instantiable is an [Object] materialized by a [Client]:
// one client value per [Object.Vertices], in the same order,
// and the render recipe that draws them.
type Instantiable[V any] struct {
	Vertices []V
	Recipe   *RenderRecipe
}

// Instantiate materializes the object with the client.
func Instantiate[V any](ob *Object, cl Client[V]) (*Instantiable[V], error) {
	rr, err := ob.Recipe()
	if err != nil {
		return nil, err
	}
	in := &Instantiable[V]{Recipe: rr}
	for i, vt := range ob.Vertices {
		if vt.Indices == nil || vt.Position == nil {
			return nil, fmt.Errorf("scene: vertices %d need indices and positions", i)
		}
		if err := cl.CreateView(vt.Indices, Indices); err != nil {
			return nil, err
		}
		if err := cl.CreateView(vt.Position, Position); err != nil {
			return nil, err
		}
		for _, av := range vt.Attrs {
			if err := cl.CreateView(av.View, av.Attr); err != nil {
				return nil, err
			}
		}
		v, err := cl.CreateVertices(vt)
		if err != nil {
			return nil, err
		}
		in.Vertices = append(in.Vertices, v)
	}
	return in, nil
}
