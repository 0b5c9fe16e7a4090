// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaderdesc

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"cogentcore.org/glmodel/glgpu"
	"cogentcore.org/glmodel/glgpu/glgputest"
	"cogentcore.org/glmodel/glmodel"
	"cogentcore.org/glmodel/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tomlDesc = `
name = "lit"
optional = ["uTint"]

[[stages]]
kind = "vertex"
file = "lit.vert"

[[stages]]
kind = "fragment"
source = "void main() {}"

[attributes]
aPosition = "Position"
aNormal = "Normal"

[uniforms]
uModel = "ModelMatrix"
uMesh = "MeshMatrix"
uTint = "User(1)"

[blocks]
Lights = 0
`

const yamlDesc = `
name: lit
optional: [uTint]
stages:
  - kind: vertex
    file: lit.vert
  - kind: fragment
    source: "void main() {}"
attributes:
  aPosition: Position
  aNormal: Normal
uniforms:
  uModel: ModelMatrix
  uMesh: MeshMatrix
  uTint: User(1)
blocks:
  Lights: 0
`

const jsonDesc = `{
  "name": "lit",
  "optional": ["uTint"],
  "stages": [
    {"kind": "vertex", "file": "lit.vert"},
    {"kind": "fragment", "source": "void main() {}"}
  ],
  "attributes": {"aPosition": "Position", "aNormal": "Normal"},
  "uniforms": {"uModel": "ModelMatrix", "uMesh": "MeshMatrix", "uTint": "User(1)"},
  "blocks": {"Lights": 0}
}`

// testDevice returns a device whose programs have every symbol of the
// test descriptions except uTint.
func testDevice() *glgputest.Device {
	dev := glgputest.New()
	dev.Attribs["aPosition"] = 0
	dev.Attribs["aNormal"] = 1
	dev.Uniforms["uModel"] = 4
	dev.Uniforms["uMesh"] = 5
	dev.Blocks["Lights"] = 0
	return dev
}

func TestDecodeFormats(t *testing.T) {
	want, err := Decode("lit.toml", []byte(tomlDesc))
	require.NoError(t, err)
	assert.Equal(t, "lit", want.Name)
	assert.Len(t, want.Stages, 2)
	assert.Equal(t, "User(1)", want.Uniforms["uTint"])

	for name, src := range map[string]string{"lit.yaml": yamlDesc, "lit.yml": yamlDesc, "lit.json": jsonDesc} {
		got, err := Decode(name, []byte(src))
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err = Decode("lit.ini", []byte(tomlDesc))
	assert.Error(t, err)
	_, err = Decode("lit.json", []byte("{"))
	assert.Error(t, err)
}

func TestDecodeDefaultsName(t *testing.T) {
	pd, err := Decode("shaders/flat.yaml", []byte("stages:\n  - kind: vertex\n    source: x\n"))
	require.NoError(t, err)
	assert.Equal(t, "flat", pd.Name)
}

func TestValidate(t *testing.T) {
	bad := []string{
		"name: x\n",
		"stages:\n  - kind: compute\n    source: x\n",
		"stages:\n  - kind: vertex\n",
		"stages:\n  - kind: vertex\n    source: x\n    file: y\n",
		"stages:\n  - kind: vertex\n    source: x\nattributes:\n  aBi: Bitangent\n",
		"stages:\n  - kind: vertex\n    source: x\nuniforms:\n  uX: Texture\n",
		"stages:\n  - kind: vertex\n    source: x\nblocks:\n  B: -1\n",
		"stages:\n  - kind: vertex\n    source: x\nuniforms:\n  Lights: Buffer(0)\noptional: [Lights]\n",
	}
	for _, src := range bad {
		_, err := Decode("bad.yaml", []byte(src))
		assert.Error(t, err, src)
	}
}

func TestValidateRejectsBlockUniform(t *testing.T) {
	pd, err := Decode("lit.toml", []byte(tomlDesc))
	require.NoError(t, err)
	pd.Uniforms["Lights"] = "Buffer(0)"
	pd.Optional = append(pd.Optional, "Lights")
	err = pd.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blocks")
	_, err = pd.Build(glmodel.NewContext(testDevice()))
	assert.Error(t, err)
}

func TestBuildFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"shaders/lit.toml": {Data: []byte(tomlDesc)},
		"shaders/lit.vert": {Data: []byte("#version 410\nvoid main() {}")},
	}
	pd, err := OpenFS(fsys, "shaders/lit.toml")
	require.NoError(t, err)
	assert.Nil(t, pd.StageFiles())

	dev := testDevice()
	pr, err := pd.Build(glmodel.NewContext(dev))
	require.NoError(t, err)
	assert.Len(t, pr.Attributes(), 2)
	_, ok := pr.Uniform(glmodel.ModelMatrix)
	assert.True(t, ok)
	_, ok = pr.Uniform(glmodel.User(1))
	assert.False(t, ok)
	_, ok = pr.Uniform(glmodel.BufferBlock(0))
	assert.True(t, ok)
	assert.Equal(t, 2, dev.Count("CompileShader"))
}

func TestBuildMissingSymbol(t *testing.T) {
	pd, err := Decode("lit.yaml", []byte(yamlDesc))
	require.NoError(t, err)
	pd.Stages[0] = Stage{Kind: "vertex", Source: "void main() {}"}
	pd.Optional = nil

	dev := testDevice()
	_, err = pd.Build(glmodel.NewContext(dev))
	var se *glmodel.SymbolError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "uTint", se.Name)
	assert.Empty(t, dev.Programs)
}

func TestBuildCompileError(t *testing.T) {
	pd, err := Decode("lit.json", []byte(jsonDesc))
	require.NoError(t, err)
	dev := testDevice()
	dev.CompileErrors[glgpu.FragmentShader] = "bad"
	fsys := fstest.MapFS{"lit.vert": {Data: []byte("void main() {}")}}
	pd.fsys = fsys
	pd.dir = "."
	_, err = pd.Build(glmodel.NewContext(dev))
	var ce *glmodel.CompileError
	assert.ErrorAs(t, err, &ce)

	pd.fsys = fstest.MapFS{}
	_, err = pd.Build(glmodel.NewContext(testDevice()))
	assert.Error(t, err)
}

// writeDesc writes the TOML description and its vertex stage to dir.
func writeDesc(t *testing.T, dir string) string {
	t.Helper()
	file := filepath.Join(dir, "lit.toml")
	require.NoError(t, os.WriteFile(file, []byte(tomlDesc), 0666))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lit.vert"), []byte("void main() {}"), 0666))
	return file
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	file := writeDesc(t, dir)
	pd, err := Open(file)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "lit.vert")}, pd.StageFiles())
	_, err = pd.Build(glmodel.NewContext(testDevice()))
	assert.NoError(t, err)

	_, err = Open(filepath.Join(dir, "none.toml"))
	assert.Error(t, err)
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	file := writeDesc(t, dir)
	w, err := NewWatcher(file)
	require.NoError(t, err)
	defer w.Close()
	assert.False(t, w.Changed())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0666))
	time.Sleep(50 * time.Millisecond)
	assert.False(t, w.Changed())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "lit.vert"), []byte("void main() { }"), 0666))
	assert.Eventually(t, w.Changed, 2*time.Second, 10*time.Millisecond)

	c := glmodel.NewContext(testDevice())
	pr, ok := w.Reload(c, nil)
	require.True(t, ok)
	require.NotNil(t, pr)

	require.NoError(t, os.WriteFile(file, []byte("stages = 3"), 0666))
	assert.Eventually(t, w.Changed, 2*time.Second, 10*time.Millisecond)
	got, ok := w.Reload(c, pr)
	assert.False(t, ok)
	assert.Same(t, pr, got)
}

func TestWatcherCloseTwice(t *testing.T) {
	w, err := NewWatcher(writeDesc(t, t.TempDir()))
	require.NoError(t, err)
	assert.NoError(t, w.Close())
	assert.NotPanics(t, func() { assert.NoError(t, w.Close()) })
}

func TestProgramDrawsScene(t *testing.T) {
	pd, err := Decode("lit.yaml", []byte(yamlDesc))
	require.NoError(t, err)
	pd.Stages[0] = Stage{Kind: "vertex", Source: "void main() {}"}
	dev := testDevice()
	c := glmodel.NewContext(dev)
	pr, err := pd.Build(c)
	require.NoError(t, err)

	in, err := c.Instantiate(scene.Cube())
	require.NoError(t, err)
	si, err := c.NewShaderInstantiable(pr, in)
	require.NoError(t, err)
	require.NoError(t, si.DrawAll(scene.Identity().Mat4(), scene.NewInstance()))
	assert.Equal(t, 1, dev.Count("DrawElements"))
	assert.Empty(t, dev.Errors)
}
