// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glmodel

import (
	"fmt"

	"cogentcore.org/glmodel/glgpu"
	"cogentcore.org/glmodel/scene"
)

// Context is the render context of one OpenGL device.
// It is the [scene.Client] that materializes scene objects into
// buffers, views and vertex sets. A Context must only be used from
// the thread that owns the device's GL context.
type Context struct {
	// Device issues the GL calls.
	Device glgpu.Device

	// Debug checks GL errors after building each VAO.
	Debug bool

	buffers *Buffers

	// data is the uploaded buffer for each source data.
	data map[*scene.BufferData]*Buffer

	// views is the client view for each scene view.
	views map[*scene.BufferView]BufferView
}

var _ scene.Client[*VertexSet] = (*Context)(nil)

// NewContext returns a new Context issuing calls on dev.
func NewContext(dev glgpu.Device) *Context {
	return &Context{
		Device:  dev,
		buffers: NewBuffers(dev),
		data:    map[*scene.BufferData]*Buffer{},
		views:   map[*scene.BufferView]BufferView{},
	}
}

// Buffers returns the buffer arena of the context.
func (c *Context) Buffers() *Buffers {
	return c.buffers
}

// CreateBufferData uploads the data as vertex data the first time it is
// called for it; later calls return the same buffer.
func (c *Context) CreateBufferData(data *scene.BufferData) error {
	_, err := c.bufferData(data)
	return err
}

func (c *Context) bufferData(data *scene.BufferData) (*Buffer, error) {
	if buf, ok := c.data[data]; ok {
		return buf, nil
	}
	buf := c.buffers.New()
	if err := buf.OfData(data.Data); err != nil {
		buf.Release()
		return nil, err
	}
	c.data[data] = buf
	return buf, nil
}

// CreateView materializes the view for the given use. Index views get
// a buffer of their own; vertex views share the buffer of their data.
// Repeated calls for the same view do nothing.
func (c *Context) CreateView(view *scene.BufferView, attr scene.VertexAttr) error {
	if prev, ok := c.views[view]; ok {
		var err error
		if attr == scene.Indices {
			_, err = AsIndexView(prev)
		} else {
			_, err = AsVertexView(prev)
		}
		return err
	}
	var bv BufferView
	if attr == scene.Indices {
		iv, err := newIndexView(c.buffers, view)
		if err != nil {
			return err
		}
		bv = iv
	} else {
		if view.Data == nil {
			return fmt.Errorf("glmodel: %v view %v has no data", attr, view)
		}
		shared, err := c.bufferData(view.Data)
		if err != nil {
			return err
		}
		vv, err := newVertexView(shared, view)
		if err != nil {
			return err
		}
		bv = vv
	}
	c.views[view] = bv
	return nil
}

// View returns the client view created for the scene view.
func (c *Context) View(view *scene.BufferView) (BufferView, bool) {
	bv, ok := c.views[view]
	return bv, ok
}

func (c *Context) vertexView(view *scene.BufferView) (*VertexView, error) {
	bv, ok := c.views[view]
	if !ok {
		return nil, fmt.Errorf("glmodel: view %v has not been created", view)
	}
	vv, err := AsVertexView(bv)
	if err != nil {
		return nil, err
	}
	return vv.share()
}

// CreateVertices builds a [VertexSet] from the views of the vertices,
// which must all have been created with CreateView.
func (c *Context) CreateVertices(vt *scene.Vertices) (*VertexSet, error) {
	bv, ok := c.views[vt.Indices]
	if !ok {
		return nil, fmt.Errorf("glmodel: index view %v has not been created", vt.Indices)
	}
	iv, err := AsIndexView(bv)
	if err != nil {
		return nil, err
	}
	vs := &VertexSet{}
	if vs.Index, err = iv.share(); err != nil {
		return nil, err
	}
	if vs.Position, err = c.vertexView(vt.Position); err != nil {
		vs.Index.Release()
		return nil, err
	}
	for _, av := range vt.Attrs {
		vv, err := c.vertexView(av.View)
		if err != nil {
			vs.Release()
			return nil, err
		}
		vs.Attrs = append(vs.Attrs, AttrView{Attr: av.Attr, View: vv})
	}
	return vs, nil
}

// Instantiate materializes the object in the context.
func (c *Context) Instantiate(ob *scene.Object) (*scene.Instantiable[*VertexSet], error) {
	return scene.Instantiate[*VertexSet](ob, c)
}

// Close releases the references the context holds on buffers; buffers
// still owned by vertex sets live on until those are released.
func (c *Context) Close() {
	for _, bv := range c.views {
		bv.Release()
	}
	for _, buf := range c.data {
		buf.Release()
	}
	clear(c.views)
	clear(c.data)
}

// NewUniformBuffer uploads data into a new uniform buffer.
func (c *Context) NewUniformBuffer(data []byte) (*Buffer, error) {
	buf := c.buffers.New()
	if err := buf.OfUniformData(data); err != nil {
		buf.Release()
		return nil, err
	}
	return buf, nil
}
