// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

// Config is the configuration of glview.
type Config struct {

	// Model is the glTF or GLB file to view; a cube is drawn if it is empty.
	Model string `posarg:"0" required:"-"`

	// Shader is the shader program description file (TOML, YAML or JSON).
	// The built-in shader is used if it is empty.
	Shader string

	// Width is the initial window width.
	Width int `default:"1024"`

	// Height is the initial window height.
	Height int `default:"768"`

	// Distance is the distance of the camera from the origin.
	Distance float32 `default:"3"`

	// Speed is the rotation speed of the model in radians per second.
	Speed float32 `default:"0.8"`

	// Watch rebuilds the shader program when its files change.
	Watch bool `default:"true"`

	// Debug enables debug logging and GL error checks.
	Debug bool
}
