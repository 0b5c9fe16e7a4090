// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glmodel

import (
	"fmt"
	"log/slog"

	"cogentcore.org/glmodel/glgpu"
	"cogentcore.org/glmodel/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// Stage is the source code of one shader stage of a [Program].
type Stage struct {
	Kind   glgpu.ShaderStage
	Source string
}

// AttributeBinding is the location of a vertex attribute in a program.
type AttributeBinding struct {
	Location uint32
	Attr     scene.VertexAttr
}

// UniformBinding is the location of a uniform in a program; for the
// [BufferKind] it is the uniform block index.
type UniformBinding struct {
	Location int32
	ID       UniformID
}

// Program is a linked shader program with the vertex attributes and
// uniforms it is known to have. Symbols are bound by name after
// compiling and then looked up by their symbolic ids.
type Program struct {
	// Name is for messages only.
	Name string

	dev        glgpu.Device
	handle     uint32
	attributes []AttributeBinding
	uniforms   []UniformBinding

	// users is the number of VAOs built for the program.
	users int
}

// CompileProgram compiles the stages and links them into a program.
// A stage that fails to compile aborts with a [*CompileError]; a link
// failure returns a [*LinkError]. The stage shaders are deleted once
// linking is done.
func (c *Context) CompileProgram(name string, stages ...Stage) (*Program, error) {
	if len(stages) == 0 {
		return nil, fmt.Errorf("glmodel: program %q has no stages", name)
	}
	dev := c.Device
	shaders := make([]uint32, 0, len(stages))
	defer func() {
		for _, sh := range shaders {
			dev.DeleteShader(sh)
		}
	}()
	for _, st := range stages {
		sh := dev.CreateShader(st.Kind)
		shaders = append(shaders, sh)
		dev.CompileShader(sh, st.Source)
		if !dev.ShaderCompiled(sh) {
			return nil, &CompileError{Stage: st.Kind, Log: dev.ShaderInfoLog(sh)}
		}
	}

	handle := dev.CreateProgram()
	for _, sh := range shaders {
		dev.AttachShader(handle, sh)
	}
	dev.LinkProgram(handle)
	for _, sh := range shaders {
		dev.DetachShader(handle, sh)
	}
	if !dev.ProgramLinked(handle) {
		err := &LinkError{Log: dev.ProgramInfoLog(handle)}
		dev.DeleteProgram(handle)
		return nil, err
	}
	slog.Debug("glmodel: linked program", "name", name, "handle", handle)
	return &Program{Name: name, dev: dev, handle: handle}, nil
}

// Handle returns the GL program name, 0 once deleted.
func (pr *Program) Handle() uint32 {
	return pr.handle
}

func (pr *Program) live() error {
	if pr.handle == 0 {
		return fmt.Errorf("%w: program %q", ErrReleased, pr.Name)
	}
	return nil
}

// BindAttribute records the location of the named attribute as the
// location of attr.
func (pr *Program) BindAttribute(name string, attr scene.VertexAttr) error {
	if err := pr.live(); err != nil {
		return err
	}
	loc := pr.dev.AttribLocation(pr.handle, name)
	if loc < 0 {
		return &SymbolError{Kind: AttributeSymbol, Name: name}
	}
	ab := AttributeBinding{Location: uint32(loc), Attr: attr}
	for i := range pr.attributes {
		if pr.attributes[i].Attr == attr {
			pr.attributes[i] = ab
			return nil
		}
	}
	pr.attributes = append(pr.attributes, ab)
	return nil
}

// BindUniform records the location of the named uniform as the
// location of id. Uniform blocks are bound with BindUniformBlock.
func (pr *Program) BindUniform(name string, id UniformID) error {
	if err := pr.live(); err != nil {
		return err
	}
	if id.Kind == BufferKind {
		return fmt.Errorf("glmodel: %v must be bound with BindUniformBlock", id)
	}
	loc := pr.dev.UniformLocation(pr.handle, name)
	if loc < 0 {
		return &SymbolError{Kind: UniformSymbol, Name: name}
	}
	pr.setUniform(UniformBinding{Location: loc, ID: id})
	return nil
}

// BindUniformBlock records the index of the named uniform block as the
// location of user buffer n.
func (pr *Program) BindUniformBlock(name string, n int) error {
	if err := pr.live(); err != nil {
		return err
	}
	idx := pr.dev.UniformBlockIndex(pr.handle, name)
	if idx == glgpu.InvalidIndex {
		return &SymbolError{Kind: UniformBlockSymbol, Name: name}
	}
	pr.setUniform(UniformBinding{Location: int32(idx), ID: BufferBlock(n)})
	return nil
}

func (pr *Program) setUniform(ub UniformBinding) {
	for i := range pr.uniforms {
		if pr.uniforms[i].ID == ub.ID {
			pr.uniforms[i] = ub
			return
		}
	}
	pr.uniforms = append(pr.uniforms, ub)
}

// Attributes returns the attribute bindings of the program.
func (pr *Program) Attributes() []AttributeBinding {
	return pr.attributes
}

// Uniform returns the location of the uniform, and false if the program
// does not have it.
func (pr *Program) Uniform(id UniformID) (int32, bool) {
	for _, ub := range pr.uniforms {
		if ub.ID == id {
			return ub.Location, true
		}
	}
	return -1, false
}

// Use makes this the current program.
func (pr *Program) Use() {
	pr.dev.UseProgram(pr.handle)
}

// SetViewMatrix sets the view matrix uniform, if the program has one.
// The program must be in use.
func (pr *Program) SetViewMatrix(m mgl32.Mat4) {
	if loc, ok := pr.Uniform(ViewMatrix); ok {
		pr.dev.UniformMatrix4fv(loc, m[:])
	}
}

// BindUniformBuffer binds the uniform block of user buffer n to the
// binding point, and the buffer to the same binding point.
func (pr *Program) BindUniformBuffer(n int, binding uint32, buf *Buffer) error {
	if err := pr.live(); err != nil {
		return err
	}
	id := BufferBlock(n)
	loc, ok := pr.Uniform(id)
	if !ok {
		return &SymbolError{Kind: UniformBlockSymbol, Name: id.String()}
	}
	if !buf.IsInitialized() {
		return fmt.Errorf("glmodel: uniform buffer %v is not initialized", buf)
	}
	pr.dev.UniformBlockBinding(pr.handle, uint32(loc), binding)
	pr.dev.BindBufferBase(glgpu.UniformBuffer, binding, buf.Name())
	return nil
}

// Delete deletes the GL program. It fails with [ErrInUse] while VAOs
// built for the program remain.
func (pr *Program) Delete() error {
	if pr.handle == 0 {
		return nil
	}
	if pr.users > 0 {
		return fmt.Errorf("%w: program %q has %d VAOs", ErrInUse, pr.Name, pr.users)
	}
	pr.dev.DeleteProgram(pr.handle)
	pr.handle = 0
	return nil
}
