// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glmodel

//go:generate core generate

import (
	"fmt"
	"strconv"
	"strings"
)

// UniformKind is the kind of a [UniformID].
type UniformKind int32 //enums:enum -line-comment

const (
	// ViewMatrixKind is set once per framebuffer render.
	ViewMatrixKind UniformKind = iota // ViewMatrix

	// ModelMatrixKind is set once per instance.
	ModelMatrixKind // ModelMatrix

	// MeshMatrixKind is set once per mesh of the instance.
	MeshMatrixKind // MeshMatrix

	// BoneScaleKind is 1 when the instance has bone poses, else 0.
	BoneScaleKind // BoneScale

	// BoneMatricesKind holds the bone pose matrices of the instance.
	BoneMatricesKind // BoneMatrices

	// UserKind is a program-specific uniform numbered by the user.
	UserKind // User

	// BufferKind is a program-specific uniform block numbered by the user.
	BufferKind // Buffer
)

// UniformID identifies a uniform of a [Program] independently of the
// location the driver assigns to it. N numbers the user and buffer kinds
// and is 0 otherwise.
type UniformID struct {
	Kind UniformKind
	N    int
}

// The uniforms the draw protocol sets.
var (
	ViewMatrix   = UniformID{Kind: ViewMatrixKind}
	ModelMatrix  = UniformID{Kind: ModelMatrixKind}
	MeshMatrix   = UniformID{Kind: MeshMatrixKind}
	BoneScale    = UniformID{Kind: BoneScaleKind}
	BoneMatrices = UniformID{Kind: BoneMatricesKind}
)

// User returns the id of user uniform n.
func User(n int) UniformID {
	return UniformID{Kind: UserKind, N: n}
}

// BufferBlock returns the id of user uniform block n.
func BufferBlock(n int) UniformID {
	return UniformID{Kind: BufferKind, N: n}
}

// String returns the text form of the id, such as
// "ModelMatrix" or "User(3)".
func (id UniformID) String() string {
	if id.Kind == UserKind || id.Kind == BufferKind {
		return fmt.Sprintf("%v(%d)", id.Kind, id.N)
	}
	return id.Kind.String()
}

// ParseUniformID parses the text form of a [UniformID].
func ParseUniformID(s string) (UniformID, error) {
	s = strings.TrimSpace(s)
	name, arg, hasArg := strings.Cut(s, "(")
	invalid := fmt.Errorf("glmodel: invalid uniform id %q", s)
	var kind UniformKind
	if err := kind.SetString(name); err != nil {
		return UniformID{}, invalid
	}
	numbered := kind == UserKind || kind == BufferKind
	if numbered != hasArg {
		return UniformID{}, invalid
	}
	if !hasArg {
		return UniformID{Kind: kind}, nil
	}
	num, ok := strings.CutSuffix(arg, ")")
	if !ok {
		return UniformID{}, invalid
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 0 {
		return UniformID{}, invalid
	}
	return UniformID{Kind: kind, N: n}, nil
}
