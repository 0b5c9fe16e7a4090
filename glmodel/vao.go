// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glmodel

import (
	"fmt"
	"log/slog"

	"cogentcore.org/glmodel/glgpu"
)

// VAO is a vertex array object binding the buffers of one [VertexSet]
// to the attribute locations of one [Program]. It must be deleted
// before either of them is released.
type VAO struct {
	dev     glgpu.Device
	handle  uint32
	program *Program
	set     *VertexSet
}

// NewVAO builds the vertex array for drawing the vertex set with the
// program. The index buffer is always bound; each attribute the program
// declares is bound to the matching view of the set. Attributes the set
// does not have are left unbound, as the program may not need them.
func (c *Context) NewVAO(pr *Program, vs *VertexSet) (*VAO, error) {
	if err := pr.live(); err != nil {
		return nil, err
	}
	if vs.released {
		return nil, fmt.Errorf("%w: vertex set", ErrReleased)
	}
	if !vs.Index.Buffer().IsInitialized() {
		return nil, fmt.Errorf("glmodel: index view %v is not initialized", vs.Index)
	}
	dev := c.Device
	handle := dev.GenVertexArray()
	dev.BindVertexArray(handle)
	vs.Index.BindToVAO(dev)
	for _, ab := range pr.attributes {
		vv, ok := vs.Attr(ab.Attr)
		if !ok {
			continue
		}
		vv.BindToVAO(dev, ab.Location)
	}
	dev.BindVertexArray(0)
	dev.BindBuffer(glgpu.ArrayBuffer, 0)
	if c.Debug {
		if err := glgpu.CheckErrors(dev, "NewVAO"); err != nil {
			dev.DeleteVertexArray(handle)
			return nil, err
		}
	}
	pr.users++
	vs.users++
	slog.Debug("glmodel: built VAO", "vao", handle, "program", pr.Name, "vertices", vs)
	return &VAO{dev: dev, handle: handle, program: pr, set: vs}, nil
}

// Handle returns the GL vertex array name, 0 once deleted.
func (v *VAO) Handle() uint32 {
	return v.handle
}

// Bind makes this the current vertex array.
func (v *VAO) Bind() {
	v.dev.BindVertexArray(v.handle)
}

// Delete deletes the vertex array, releasing its hold on the program
// and vertex set. Deleting it again does nothing.
func (v *VAO) Delete() {
	if v.handle == 0 {
		return
	}
	v.dev.DeleteVertexArray(v.handle)
	v.handle = 0
	v.program.users--
	v.set.users--
}
