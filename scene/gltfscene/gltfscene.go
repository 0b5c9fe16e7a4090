// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gltfscene imports glTF 2.0 and GLB files as [scene.Object]s.
//
// Every glTF buffer becomes one [scene.BufferData], so that all the
// attribute accessors into it share a single GPU upload. Primitives
// without indices or positions are skipped, as are primitives that use
// sparse accessors.
package gltfscene

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"cogentcore.org/glmodel/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
)

// attrs maps glTF attribute semantics to vertex attributes.
var attrs = map[string]scene.VertexAttr{
	gltf.NORMAL:     scene.Normal,
	gltf.TANGENT:    scene.Tangent,
	gltf.COLOR_0:    scene.Color,
	gltf.TEXCOORD_0: scene.TexCoords0,
	gltf.TEXCOORD_1: scene.TexCoords1,
	gltf.JOINTS_0:   scene.Joints,
	gltf.WEIGHTS_0:  scene.Weights,
}

// Open reads the glTF or GLB file and decodes it into an object.
func Open(name string) (*scene.Object, error) {
	doc, err := gltf.Open(name)
	if err != nil {
		return nil, err
	}
	return Decode(doc)
}

// decoder holds the state of one [Decode].
type decoder struct {
	doc  *gltf.Document
	ob   *scene.Object
	data []*scene.BufferData

	// views are the views made for each accessor, as indices or not.
	views map[viewKey]*scene.BufferView

	// vertices are the vertices index for each distinct primitive source.
	vertices map[string]int
}

type viewKey struct {
	accessor int
	indices  bool
}

// Decode converts the document into an object. The nodes of the
// default scene (or the first one) are the roots; a document without
// scenes uses every node that is nobody's child.
func Decode(doc *gltf.Document) (*scene.Object, error) {
	d := &decoder{
		doc:      doc,
		ob:       scene.NewObject(),
		views:    map[viewKey]*scene.BufferView{},
		vertices: map[string]int{},
	}
	for i, b := range doc.Buffers {
		if b.Data == nil {
			return nil, fmt.Errorf("gltfscene: buffer %d has no data", i)
		}
		d.data = append(d.data, scene.NewBufferData(b.Data))
	}
	meshes := make([]*scene.Mesh, len(doc.Meshes))
	for i, m := range doc.Meshes {
		mesh, err := d.mesh(i, m)
		if err != nil {
			return nil, err
		}
		meshes[i] = mesh
	}
	for i, n := range doc.Nodes {
		nd := &scene.Node{Matrix: nodeMatrix(n), Children: slices.Clone(n.Children)}
		if n.Mesh != nil {
			if *n.Mesh < 0 || *n.Mesh >= len(meshes) {
				return nil, fmt.Errorf("gltfscene: node %d has mesh %d of %d", i, *n.Mesh, len(meshes))
			}
			nd.Mesh = meshes[*n.Mesh]
		}
		d.ob.Nodes = append(d.ob.Nodes, nd)
	}
	d.ob.Roots = d.roots()
	return d.ob, nil
}

func (d *decoder) roots() []int {
	doc := d.doc
	if len(doc.Scenes) > 0 {
		sc := 0
		if doc.Scene != nil && *doc.Scene >= 0 && *doc.Scene < len(doc.Scenes) {
			sc = *doc.Scene
		}
		return slices.Clone(doc.Scenes[sc].Nodes)
	}
	child := make([]bool, len(doc.Nodes))
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			if c >= 0 && c < len(child) {
				child[c] = true
			}
		}
	}
	var roots []int
	for i, isChild := range child {
		if !isChild {
			roots = append(roots, i)
		}
	}
	return roots
}

func (d *decoder) mesh(mi int, m *gltf.Mesh) (*scene.Mesh, error) {
	mesh := &scene.Mesh{}
	for pi, p := range m.Primitives {
		if p.Indices == nil {
			slog.Warn("gltfscene: skipping primitive without indices", "mesh", m.Name, "primitive", pi)
			continue
		}
		if _, ok := p.Attributes[gltf.POSITION]; !ok {
			slog.Warn("gltfscene: skipping primitive without positions", "mesh", m.Name, "primitive", pi)
			continue
		}
		if ai, ok := d.sparseAccessor(p); ok {
			slog.Warn("gltfscene: skipping primitive with sparse accessor", "mesh", m.Name, "primitive", pi, "accessor", ai)
			continue
		}
		pt, err := primitiveType(p.Mode)
		if err != nil {
			return nil, fmt.Errorf("gltfscene: mesh %d primitive %d: %w", mi, pi, err)
		}
		vi, err := d.vertexIndex(p)
		if err != nil {
			return nil, fmt.Errorf("gltfscene: mesh %d primitive %d: %w", mi, pi, err)
		}
		mat := -1
		if p.Material != nil {
			mat = *p.Material
		}
		mesh.Primitives = append(mesh.Primitives, scene.Primitive{
			VerticesIndex: vi,
			Type:          pt,
			IndexCount:    d.ob.Vertices[vi].Indices.Count,
			MaterialIndex: mat,
		})
	}
	return mesh, nil
}

// sparseAccessor returns the first sparse accessor among the indices
// and the imported attributes of the primitive.
func (d *decoder) sparseAccessor(p *gltf.Primitive) (int, bool) {
	used := []int{*p.Indices}
	for nm, ai := range p.Attributes {
		if _, ok := attrs[nm]; ok || nm == gltf.POSITION {
			used = append(used, ai)
		}
	}
	slices.Sort(used)
	for _, ai := range used {
		if ai >= 0 && ai < len(d.doc.Accessors) && d.doc.Accessors[ai].Sparse != nil {
			return ai, true
		}
	}
	return 0, false
}

// vertexIndex returns the index of the vertices of the primitive,
// adding them to the object unless a primitive with the same index
// and attribute accessors already did.
func (d *decoder) vertexIndex(p *gltf.Primitive) (int, error) {
	names := make([]string, 0, len(p.Attributes))
	for nm := range p.Attributes {
		names = append(names, nm)
	}
	slices.Sort(names)
	var key strings.Builder
	fmt.Fprintf(&key, "i%d", *p.Indices)
	for _, nm := range names {
		fmt.Fprintf(&key, " %s=%d", nm, p.Attributes[nm])
	}
	if vi, ok := d.vertices[key.String()]; ok {
		return vi, nil
	}

	ind, err := d.view(*p.Indices, true)
	if err != nil {
		return 0, err
	}
	pos, err := d.view(p.Attributes[gltf.POSITION], false)
	if err != nil {
		return 0, err
	}
	vt := scene.NewVertices(ind, pos)
	for _, nm := range names {
		attr, ok := attrs[nm]
		if !ok {
			continue
		}
		v, err := d.view(p.Attributes[nm], false)
		if err != nil {
			return 0, err
		}
		vt.AddAttr(attr, v)
	}
	vi := d.ob.AddVertices(vt)
	d.vertices[key.String()] = vi
	return vi, nil
}

// view returns the view of the accessor. For indices the view counts
// indices; otherwise it counts the components of one vertex.
func (d *decoder) view(ai int, indices bool) (*scene.BufferView, error) {
	key := viewKey{accessor: ai, indices: indices}
	if v, ok := d.views[key]; ok {
		return v, nil
	}
	doc := d.doc
	if ai < 0 || ai >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d of %d", ai, len(doc.Accessors))
	}
	acc := doc.Accessors[ai]
	if acc.BufferView == nil {
		return nil, fmt.Errorf("accessor %d has no buffer view", ai)
	}
	bvi := *acc.BufferView
	if bvi < 0 || bvi >= len(doc.BufferViews) {
		return nil, fmt.Errorf("accessor %d has buffer view %d of %d", ai, bvi, len(doc.BufferViews))
	}
	bv := doc.BufferViews[bvi]
	if bv.Buffer < 0 || bv.Buffer >= len(d.data) {
		return nil, fmt.Errorf("buffer view %d has buffer %d of %d", bvi, bv.Buffer, len(d.data))
	}
	et, err := elementType(acc.ComponentType)
	if err != nil {
		return nil, fmt.Errorf("accessor %d: %w", ai, err)
	}
	count := uint32(acc.Count)
	if !indices {
		count = uint32(acc.Type.Components())
		if count < 1 || count > 4 {
			return nil, fmt.Errorf("accessor %d: %v is not a vertex attribute type", ai, acc.Type)
		}
	}
	v := scene.NewBufferView(d.data[bv.Buffer], count, et, uint32(bv.ByteOffset)+uint32(acc.ByteOffset), uint32(bv.ByteStride))
	d.views[key] = v
	return v, nil
}

func elementType(ct gltf.ComponentType) (scene.ElementType, error) {
	switch ct {
	case gltf.ComponentByte, gltf.ComponentUbyte:
		return scene.Int8, nil
	case gltf.ComponentShort, gltf.ComponentUshort:
		return scene.Int16, nil
	case gltf.ComponentUint:
		return scene.Int32, nil
	case gltf.ComponentFloat:
		return scene.Float32, nil
	}
	return 0, fmt.Errorf("unsupported component type %v", ct)
}

func primitiveType(mode gltf.PrimitiveMode) (scene.PrimitiveType, error) {
	switch mode {
	case gltf.PrimitivePoints:
		return scene.Points, nil
	case gltf.PrimitiveLines:
		return scene.Lines, nil
	case gltf.PrimitiveLineLoop:
		return scene.LineLoop, nil
	case gltf.PrimitiveLineStrip:
		return scene.LineStrip, nil
	case gltf.PrimitiveTriangles:
		return scene.Triangles, nil
	case gltf.PrimitiveTriangleStrip:
		return scene.TriangleStrip, nil
	case gltf.PrimitiveTriangleFan:
		return scene.TriangleFan, nil
	}
	return 0, fmt.Errorf("unsupported primitive mode %v", mode)
}

// nodeMatrix returns the local transform of the node: its matrix if it
// has one, else translation × rotation × scale.
func nodeMatrix(n *gltf.Node) mgl32.Mat4 {
	if mat := n.MatrixOrDefault(); mat != gltf.DefaultMatrix {
		var m mgl32.Mat4
		for i, v := range mat {
			m[i] = float32(v)
		}
		return m
	}
	t, r, sc := n.Translation, n.RotationOrDefault(), n.ScaleOrDefault()
	tf := scene.Transformation{
		Translation: mgl32.Vec3{float32(t[0]), float32(t[1]), float32(t[2])},
		Rotation:    mgl32.Quat{W: float32(r[3]), V: mgl32.Vec3{float32(r[0]), float32(r[1]), float32(r[2])}},
		Scale:       mgl32.Vec3{float32(sc[0]), float32(sc[1]), float32(sc[2])},
	}
	return tf.Mat4()
}
