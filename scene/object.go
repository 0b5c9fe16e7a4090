// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Primitive is one draw call of a [Mesh].
type Primitive struct {
	// VerticesIndex is the index of the [Vertices] in the [Object].
	VerticesIndex int

	Type PrimitiveType

	// IndexCount is the number of indices drawn.
	IndexCount uint32

	// ByteOffset is the offset of the first index in the index buffer.
	ByteOffset uint32

	// MaterialIndex is the material of the primitive, -1 for none.
	MaterialIndex int
}

// Mesh is a list of primitives drawn with the same transform.
type Mesh struct {
	Primitives []Primitive
}

// Node is one element of an [Object] hierarchy.
type Node struct {
	// Matrix is the transform relative to the parent node.
	Matrix mgl32.Mat4

	// Mesh is drawn with the node's world transform; may be nil.
	Mesh *Mesh

	// Children are indexes in [Object.Nodes].
	Children []int
}

// Object is a drawable model: a set of [Vertices] and a hierarchy of
// nodes whose meshes reference them.
type Object struct {
	Vertices []*Vertices
	Nodes    []*Node

	// Roots are the indexes of the top level nodes.
	Roots []int
}

// NewObject returns a new empty Object.
func NewObject() *Object {
	return &Object{}
}

// AddVertices adds the vertices and returns their index.
func (ob *Object) AddVertices(vt *Vertices) int {
	ob.Vertices = append(ob.Vertices, vt)
	return len(ob.Vertices) - 1
}

// AddNode adds a node under the given parent (-1 for a root)
// and returns its index.
func (ob *Object) AddNode(parent int, matrix mgl32.Mat4, mesh *Mesh) int {
	idx := len(ob.Nodes)
	ob.Nodes = append(ob.Nodes, &Node{Matrix: matrix, Mesh: mesh})
	if parent < 0 {
		ob.Roots = append(ob.Roots, idx)
	} else {
		ob.Nodes[parent].Children = append(ob.Nodes[parent].Children, idx)
	}
	return idx
}

// RenderRecipe is the flattened form of an [Object]: every primitive
// in draw order with the index of its world matrix.
type RenderRecipe struct {
	Matrices           []mgl32.Mat4
	Primitives         []Primitive
	MatrixForPrimitive []int
}

// Recipe flattens the node hierarchy depth first into a [RenderRecipe].
// Each node with a mesh contributes one matrix, parent × local.
func (ob *Object) Recipe() (*RenderRecipe, error) {
	rr := &RenderRecipe{}
	visited := make([]bool, len(ob.Nodes))
	var walk func(idx int, parent mgl32.Mat4) error
	walk = func(idx int, parent mgl32.Mat4) error {
		if idx < 0 || idx >= len(ob.Nodes) {
			return fmt.Errorf("scene: node index %d out of range", idx)
		}
		if visited[idx] {
			return fmt.Errorf("scene: node %d is reachable twice", idx)
		}
		visited[idx] = true
		nd := ob.Nodes[idx]
		world := parent.Mul4(nd.Matrix)
		if nd.Mesh != nil && len(nd.Mesh.Primitives) > 0 {
			mi := len(rr.Matrices)
			rr.Matrices = append(rr.Matrices, world)
			for _, p := range nd.Mesh.Primitives {
				if p.VerticesIndex < 0 || p.VerticesIndex >= len(ob.Vertices) {
					return fmt.Errorf("scene: node %d primitive uses vertices %d of %d", idx, p.VerticesIndex, len(ob.Vertices))
				}
				rr.Primitives = append(rr.Primitives, p)
				rr.MatrixForPrimitive = append(rr.MatrixForPrimitive, mi)
			}
		}
		for _, ch := range nd.Children {
			if err := walk(ch, world); err != nil {
				return err
			}
		}
		return nil
	}
	for _, r := range ob.Roots {
		if err := walk(r, mgl32.Ident4()); err != nil {
			return nil, err
		}
	}
	return rr, nil
}

// Validate checks that every primitive of the recipe references
// a matrix, and a vertices index below numVertices.
func (rr *RenderRecipe) Validate(numVertices int) error {
	if len(rr.MatrixForPrimitive) != len(rr.Primitives) {
		return fmt.Errorf("scene: recipe has %d primitives but %d matrix indexes", len(rr.Primitives), len(rr.MatrixForPrimitive))
	}
	for i, p := range rr.Primitives {
		if p.VerticesIndex < 0 || p.VerticesIndex >= numVertices {
			return fmt.Errorf("scene: recipe primitive %d uses vertices %d of %d", i, p.VerticesIndex, numVertices)
		}
		if m := rr.MatrixForPrimitive[i]; m < 0 || m >= len(rr.Matrices) {
			return fmt.Errorf("scene: recipe primitive %d uses matrix %d of %d", i, m, len(rr.Matrices))
		}
	}
	return nil
}
