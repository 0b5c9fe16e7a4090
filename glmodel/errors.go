// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glmodel

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/glmodel/glgpu"
)

var (
	// ErrDoubleInit is returned when data is uploaded to a [Buffer]
	// that already holds a GPU buffer.
	ErrDoubleInit = errors.New("glmodel: buffer is already initialized")

	// ErrInvalidElementType is returned when index data is given a
	// non-integer element type.
	ErrInvalidElementType = errors.New("glmodel: index data must have an 8, 16 or 32 bit integer element type")

	// ErrWrongView is returned when a [BufferView] is used as the other variant.
	ErrWrongView = errors.New("glmodel: wrong buffer view variant")

	// ErrReleased is returned when a released handle is used.
	ErrReleased = errors.New("glmodel: handle has been released")

	// ErrInUse is returned when deleting a resource that VAOs still depend on.
	ErrInUse = errors.New("glmodel: resource is still in use")
)

// CompileError is returned when a shader stage fails to compile.
type CompileError struct {
	Stage glgpu.ShaderStage

	// Log is the driver's diagnostic text.
	Log string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("glmodel: failed to compile %s shader: %s", e.Stage, e.Log)
}

// LinkError is returned when a program fails to link.
type LinkError struct {
	// Log is the driver's diagnostic text.
	Log string
}

func (e *LinkError) Error() string {
	return "glmodel: failed to link program: " + e.Log
}

// SymbolKind is the namespace a program symbol is looked up in.
type SymbolKind int32 //enums:enum -line-comment

const (
	AttributeSymbol    SymbolKind = iota // attribute
	UniformSymbol                        // uniform
	UniformBlockSymbol                   // uniform block
)

// SymbolError is returned when a name is not an active symbol of a
// linked program.
type SymbolError struct {
	Kind SymbolKind
	Name string
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("glmodel: unable to find %s %q in program", e.Kind, e.Name)
}
