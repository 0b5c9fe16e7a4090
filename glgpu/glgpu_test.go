// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu_test

import (
	"testing"

	"cogentcore.org/glmodel/glgpu"
	"cogentcore.org/glmodel/glgpu/glgputest"
	"github.com/stretchr/testify/assert"
)

func TestCheckErrors(t *testing.T) {
	dev := glgputest.New()
	assert.NoError(t, glgpu.CheckErrors(dev, "clean"))

	dev.Errors = []uint32{glgpu.InvalidOperation, glgpu.InvalidValue}
	err := glgpu.CheckErrors(dev, "vao")
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "INVALID_OPERATION")
		assert.Contains(t, err.Error(), "INVALID_VALUE")
	}
	assert.Empty(t, dev.Errors)
}

func TestCheckErrorsBounded(t *testing.T) {
	dev := glgputest.New()
	for range 40 {
		dev.Errors = append(dev.Errors, glgpu.OutOfMemory)
	}
	assert.Error(t, glgpu.CheckErrors(dev, "lost"))
	assert.Len(t, dev.Errors, 40-16)
}

func TestParseShaderStage(t *testing.T) {
	for _, st := range []glgpu.ShaderStage{glgpu.VertexShader, glgpu.FragmentShader, glgpu.GeometryShader} {
		got, err := glgpu.ParseShaderStage(st.String())
		assert.NoError(t, err)
		assert.Equal(t, st, got)
	}
	got, err := glgpu.ParseShaderStage("fragment")
	assert.NoError(t, err)
	assert.Equal(t, glgpu.FragmentShader, got)
	_, err = glgpu.ParseShaderStage("compute")
	assert.Error(t, err)
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "TriangleFan", glgpu.TriangleFan.String())
	assert.Equal(t, "UnsignedShort", glgpu.UnsignedShort.String())
	assert.Equal(t, "ElementArrayBuffer", glgpu.ElementArrayBuffer.String())
	assert.Equal(t, "42", glgpu.Topology(42).String())
	assert.Equal(t, "vertex", glgpu.VertexShader.String())
	assert.Len(t, glgpu.TopologyValues(), int(glgpu.TopologyN))
	assert.Equal(t, "0x0123", glgpu.ErrorName(0x123))
}
