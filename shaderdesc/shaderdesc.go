// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shaderdesc provides declarative descriptions of shader
// programs: the stage sources and the names of the attributes, uniforms
// and uniform blocks to bind, read from TOML, YAML or JSON files.
// A [Watcher] reports when a description or its stage files change, so
// that the program can be rebuilt while running.
package shaderdesc

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/glmodel/glgpu"
	"cogentcore.org/glmodel/glmodel"
	"cogentcore.org/glmodel/scene"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// decoders are the description decoders by file extension.
var decoders = map[string]iox.DecoderFunc{
	".toml": iox.NewDecoderFunc(tomlx.NewDecoder),
	".yaml": iox.NewDecoderFunc(yaml.NewDecoder),
	".yml":  iox.NewDecoderFunc(yaml.NewDecoder),
	".json": iox.NewDecoderFunc(json.NewDecoder),
}

// Stage is one shader stage of a [Program].
type Stage struct {

	// Kind is vertex, fragment or geometry.
	Kind string `toml:"kind" yaml:"kind" json:"kind"`

	// File is the path of the source, relative to the description.
	File string `toml:"file" yaml:"file" json:"file"`

	// Source is the inline source, used when File is empty.
	Source string `toml:"source" yaml:"source" json:"source"`
}

// Program describes a shader program.
type Program struct {
	Name   string  `toml:"name" yaml:"name" json:"name"`
	Stages []Stage `toml:"stages" yaml:"stages" json:"stages"`

	// Attributes maps attribute names in the shader to vertex
	// attributes, such as Position or Normal.
	Attributes map[string]string `toml:"attributes" yaml:"attributes" json:"attributes"`

	// Uniforms maps uniform names in the shader to uniform ids,
	// such as ModelMatrix or User(1).
	Uniforms map[string]string `toml:"uniforms" yaml:"uniforms" json:"uniforms"`

	// Blocks maps uniform block names in the shader to buffer numbers.
	Blocks map[string]int `toml:"blocks" yaml:"blocks" json:"blocks"`

	// Optional lists the names that the shader may leave out;
	// binding them is skipped if the linked program lacks them.
	Optional []string `toml:"optional" yaml:"optional" json:"optional"`

	// fsys holds the stage files, and dir is the directory of the
	// description within it.
	fsys fs.FS
	dir  string

	// osDir is the directory of the description on disk, if it was opened from disk.
	osDir string
}

// Decode decodes a description, choosing the format from the extension
// of name: .toml, .yaml, .yml or .json.
func Decode(name string, data []byte) (*Program, error) {
	dec, ok := decoders[strings.ToLower(filepath.Ext(name))]
	if !ok {
		return nil, fmt.Errorf("shaderdesc: unknown description format %q", name)
	}
	pd := &Program{}
	if err := iox.ReadBytes(pd, data, dec); err != nil {
		return nil, fmt.Errorf("shaderdesc: %s: %w", name, err)
	}
	if pd.Name == "" {
		pd.Name = strings.TrimSuffix(path.Base(filepath.ToSlash(name)), path.Ext(name))
	}
	return pd, pd.Validate()
}

// Open reads the description file, with stage files relative to it.
func Open(file string) (*Program, error) {
	dir, base := filepath.Split(file)
	if dir == "" {
		dir = "."
	}
	pd, err := OpenFS(os.DirFS(dir), base)
	if err != nil {
		return nil, err
	}
	pd.osDir = dir
	return pd, nil
}

// OpenFS reads the description file from fsys, such as an embed.FS,
// with stage files relative to it.
func OpenFS(fsys fs.FS, file string) (*Program, error) {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return nil, err
	}
	pd, err := Decode(file, data)
	if err != nil {
		return nil, err
	}
	pd.fsys = fsys
	pd.dir = path.Dir(file)
	return pd, nil
}

// Validate checks that the description names known stages,
// attributes and uniforms.
func (pd *Program) Validate() error {
	var errs []error
	if len(pd.Stages) == 0 {
		errs = append(errs, fmt.Errorf("shaderdesc: program %q has no stages", pd.Name))
	}
	for i, st := range pd.Stages {
		if _, err := glgpu.ParseShaderStage(st.Kind); err != nil {
			errs = append(errs, fmt.Errorf("shaderdesc: stage %d: %w", i, err))
		}
		if (st.File == "") == (st.Source == "") {
			errs = append(errs, fmt.Errorf("shaderdesc: stage %d needs exactly one of file and source", i))
		}
	}
	for nm, attr := range pd.Attributes {
		if _, err := scene.ParseVertexAttr(attr); err != nil {
			errs = append(errs, fmt.Errorf("shaderdesc: attribute %q: %w", nm, err))
		}
	}
	for nm, id := range pd.Uniforms {
		uid, err := glmodel.ParseUniformID(id)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("shaderdesc: uniform %q: %w", nm, err))
		case uid.Kind == glmodel.BufferKind:
			errs = append(errs, fmt.Errorf("shaderdesc: uniform %q is the uniform block %v; list it under blocks", nm, uid))
		}
	}
	for nm, n := range pd.Blocks {
		if n < 0 {
			errs = append(errs, fmt.Errorf("shaderdesc: block %q has negative buffer %d", nm, n))
		}
	}
	return errors.Join(errs...)
}

// StageFiles returns the paths on disk of the stage files, when the
// description was opened with [Open].
func (pd *Program) StageFiles() []string {
	if pd.osDir == "" {
		return nil
	}
	var files []string
	for _, st := range pd.Stages {
		if st.File != "" {
			files = append(files, filepath.Join(pd.osDir, filepath.FromSlash(st.File)))
		}
	}
	return files
}

// sources reads the stage sources.
func (pd *Program) sources() ([]glmodel.Stage, error) {
	stages := make([]glmodel.Stage, 0, len(pd.Stages))
	for _, st := range pd.Stages {
		kind, err := glgpu.ParseShaderStage(st.Kind)
		if err != nil {
			return nil, err
		}
		src := st.Source
		if st.File != "" {
			if pd.fsys == nil {
				return nil, fmt.Errorf("shaderdesc: program %q has no file system for stage file %q", pd.Name, st.File)
			}
			b, err := fs.ReadFile(pd.fsys, path.Join(pd.dir, st.File))
			if err != nil {
				return nil, err
			}
			src = string(b)
		}
		stages = append(stages, glmodel.Stage{Kind: kind, Source: src})
	}
	return stages, nil
}

// Build compiles the program on the context and binds all of its
// symbols. A missing symbol that is not optional fails the build and
// deletes the program.
func (pd *Program) Build(c *glmodel.Context) (*glmodel.Program, error) {
	if err := pd.Validate(); err != nil {
		return nil, err
	}
	stages, err := pd.sources()
	if err != nil {
		return nil, err
	}
	pr, err := c.CompileProgram(pd.Name, stages...)
	if err != nil {
		return nil, err
	}
	if err := pd.bind(pr); err != nil {
		errors.Log(pr.Delete())
		return nil, err
	}
	return pr, nil
}

func (pd *Program) bind(pr *glmodel.Program) error {
	for _, nm := range sortedKeys(pd.Attributes) {
		attr, _ := scene.ParseVertexAttr(pd.Attributes[nm])
		if err := pd.optional(nm, pr.BindAttribute(nm, attr)); err != nil {
			return err
		}
	}
	for _, nm := range sortedKeys(pd.Uniforms) {
		id, _ := glmodel.ParseUniformID(pd.Uniforms[nm])
		if err := pd.optional(nm, pr.BindUniform(nm, id)); err != nil {
			return err
		}
	}
	for _, nm := range sortedKeys(pd.Blocks) {
		if err := pd.optional(nm, pr.BindUniformBlock(nm, pd.Blocks[nm])); err != nil {
			return err
		}
	}
	return nil
}

// optional drops a missing symbol error for an optional name.
func (pd *Program) optional(name string, err error) error {
	var se *glmodel.SymbolError
	if errors.As(err, &se) && slices.Contains(pd.Optional, name) {
		slog.Debug("shaderdesc: optional symbol not in program", "program", pd.Name, "symbol", name)
		return nil
	}
	return err
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
