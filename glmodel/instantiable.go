// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glmodel

import (
	"fmt"

	"cogentcore.org/glmodel/glgpu"
	"cogentcore.org/glmodel/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// topologies maps scene primitive types to draw call topologies.
var topologies = map[scene.PrimitiveType]glgpu.Topology{
	scene.Points:        glgpu.Points,
	scene.Lines:         glgpu.Lines,
	scene.LineLoop:      glgpu.LineLoop,
	scene.LineStrip:     glgpu.LineStrip,
	scene.Triangles:     glgpu.Triangles,
	scene.TriangleFan:   glgpu.TriangleFan,
	scene.TriangleStrip: glgpu.TriangleStrip,
}

// ShaderInstantiable is an instantiable object prepared for drawing with
// one program: it has a [VAO] for each of the object's vertex sets and
// draws instances of the object by walking its render recipe.
type ShaderInstantiable struct {
	program *Program
	inst    *scene.Instantiable[*VertexSet]
	vaos    []*VAO
	deleted bool
}

// NewShaderInstantiable builds the VAOs for drawing the instantiable
// with the program. The recipe is checked against the vertex sets so
// that drawing cannot index out of range.
func (c *Context) NewShaderInstantiable(pr *Program, in *scene.Instantiable[*VertexSet]) (*ShaderInstantiable, error) {
	if in.Recipe == nil {
		return nil, fmt.Errorf("glmodel: instantiable has no render recipe")
	}
	if err := in.Recipe.Validate(len(in.Vertices)); err != nil {
		return nil, err
	}
	for i, p := range in.Recipe.Primitives {
		if _, ok := topologies[p.Type]; !ok {
			return nil, fmt.Errorf("glmodel: recipe primitive %d has unknown type %v", i, p.Type)
		}
	}
	si := &ShaderInstantiable{program: pr, inst: in}
	for _, vs := range in.Vertices {
		vao, err := c.NewVAO(pr, vs)
		if err != nil {
			si.Delete()
			return nil, err
		}
		si.vaos = append(si.vaos, vao)
	}
	return si, nil
}

// Program returns the program the instantiable was built for.
func (si *ShaderInstantiable) Program() *Program {
	return si.program
}

// VAOs returns the vertex arrays, one per vertex set of the instantiable.
func (si *ShaderInstantiable) VAOs() []*VAO {
	return si.vaos
}

// Draw draws one instance. The program must be in use, with its view
// matrix already set.
//
// The model matrix and bone uniforms are set once for the instance.
// Then for each primitive of the recipe the mesh matrix is set if its
// matrix index differs from that of the previous primitive, and the
// VAO is bound if its vertex set index differs from the previous one,
// before drawing its indices. Uniforms the program does not have are
// skipped.
func (si *ShaderInstantiable) Draw(instance *scene.Instance) error {
	pr := si.program
	if err := pr.live(); err != nil {
		return err
	}
	if si.deleted {
		return fmt.Errorf("%w: shader instantiable", ErrReleased)
	}
	dev := pr.dev
	if loc, ok := pr.Uniform(ModelMatrix); ok {
		m := instance.Transform.Mat4()
		dev.UniformMatrix4fv(loc, m[:])
	}
	si.setBones(instance)

	rr := si.inst.Recipe
	meshLoc, hasMesh := pr.Uniform(MeshMatrix)
	lastMatrix, lastVAO := -1, -1
	for i, p := range rr.Primitives {
		if m := rr.MatrixForPrimitive[i]; m != lastMatrix {
			if hasMesh {
				dev.UniformMatrix4fv(meshLoc, rr.Matrices[m][:])
			}
			lastMatrix = m
		}
		if p.VerticesIndex != lastVAO {
			si.vaos[p.VerticesIndex].Bind()
			lastVAO = p.VerticesIndex
		}
		index := si.inst.Vertices[p.VerticesIndex].Index
		dev.DrawElements(topologies[p.Type], int32(p.IndexCount), index.IndexType(), int(p.ByteOffset))
	}
	return nil
}

// setBones uploads the bone poses of the instance, with a bone scale of
// 1, or sets the bone scale to 0 when it has none.
func (si *ShaderInstantiable) setBones(instance *scene.Instance) {
	pr := si.program
	scale := float32(0)
	if loc, ok := pr.Uniform(BoneMatrices); ok && len(instance.Bones) > 0 {
		vals := make([]float32, 0, 16*len(instance.Bones))
		for _, b := range instance.Bones {
			vals = append(vals, b[:]...)
		}
		pr.dev.UniformMatrix4fv(loc, vals)
		scale = 1
	}
	if loc, ok := pr.Uniform(BoneScale); ok {
		pr.dev.Uniform1f(loc, scale)
	}
}

// Delete deletes the VAOs of the instantiable. The vertex sets and
// program are not released.
func (si *ShaderInstantiable) Delete() {
	for _, vao := range si.vaos {
		vao.Delete()
	}
	si.vaos = nil
	si.deleted = true
}

// DrawAll uses the program, sets its view matrix and draws each instance.
func (si *ShaderInstantiable) DrawAll(view mgl32.Mat4, instances ...*scene.Instance) error {
	if err := si.program.live(); err != nil {
		return err
	}
	si.program.Use()
	si.program.SetViewMatrix(view)
	for _, inst := range instances {
		if err := si.Draw(inst); err != nil {
			return err
		}
	}
	return nil
}
