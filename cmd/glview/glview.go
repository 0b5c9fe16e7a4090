// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command glview draws a glTF model, or a cube, with an OpenGL 4.1
// context, spinning it in front of the camera.
package main

import (
	"embed"
	"log/slog"
	"runtime"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/glmodel/glgpu/gldriver"
	"cogentcore.org/glmodel/glmodel"
	"cogentcore.org/glmodel/scene"
	"cogentcore.org/glmodel/scene/gltfscene"
	"cogentcore.org/glmodel/shaderdesc"
	"github.com/chewxy/math32"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

//go:embed shaders
var shaders embed.FS

func init() {
	// GL calls must be made from the main thread
	runtime.LockOSThread()
}

func main() {
	opts := cli.DefaultOptions("glview", "Glview draws a glTF model, or a cube, with OpenGL.")
	cli.Run(opts, &Config{}, View)
}

// viewer holds the GL objects drawn by [View].
type viewer struct {
	ctx     *glmodel.Context
	program *glmodel.Program
	inst    *scene.Instantiable[*glmodel.VertexSet]
	drawer  *glmodel.ShaderInstantiable
}

// View opens a window and draws the model until it is closed.
func View(c *Config) error {
	if c.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	if err := glfw.Init(); err != nil {
		return errors.Log(err)
	}
	defer glfw.Terminate()
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	win, err := glfw.CreateWindow(c.Width, c.Height, "glview", nil, nil)
	if err != nil {
		return errors.Log(err)
	}
	defer win.Destroy()
	win.MakeContextCurrent()
	glfw.SwapInterval(1)
	if err := gldriver.Init(); err != nil {
		return err
	}
	slog.Info("glview: opened OpenGL context", "version", gldriver.Version())

	v := &viewer{ctx: glmodel.NewContext(gldriver.New())}
	v.ctx.Debug = c.Debug
	defer v.ctx.Close()
	defer v.release()
	if err := v.load(c); err != nil {
		return errors.Log(err)
	}

	var watcher *shaderdesc.Watcher
	if c.Watch && c.Shader != "" {
		watcher, err = shaderdesc.NewWatcher(c.Shader)
		if err != nil {
			errors.Log(err)
		} else {
			defer watcher.Close()
		}
	}

	inst := scene.NewInstance()
	start := glfw.GetTime()
	for !win.ShouldClose() {
		if watcher != nil && watcher.Changed() {
			v.reload(watcher)
		}
		w, h := win.GetFramebufferSize()
		gldriver.BeginFrame(w, h, [4]float32{0.1, 0.1, 0.12, 1})
		t := float32(glfw.GetTime() - start)
		inst.Transform.Rotation = mgl32.QuatRotate(t*c.Speed, mgl32.Vec3{0, 1, 0})
		inst.Transform.Translation[1] = 0.1 * math32.Sin(2*t)
		if err := v.drawer.DrawAll(camera(c, w, h), inst); err != nil {
			return errors.Log(err)
		}
		win.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

// camera returns the projection × view matrix for a framebuffer size.
func camera(c *Config, width, height int) mgl32.Mat4 {
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	proj := mgl32.Perspective(math32.Pi/4, aspect, 0.05, 100)
	eye := mgl32.Vec3{0, c.Distance * 0.4, c.Distance}
	view := mgl32.LookAtV(eye, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	return proj.Mul4(view)
}

// load builds the program and the drawable model.
func (v *viewer) load(c *Config) error {
	ob := scene.Cube()
	if c.Model != "" {
		var err error
		if ob, err = gltfscene.Open(c.Model); err != nil {
			return err
		}
	}
	pd, err := openShader(c.Shader)
	if err != nil {
		return err
	}
	if v.program, err = pd.Build(v.ctx); err != nil {
		return err
	}
	if v.inst, err = v.ctx.Instantiate(ob); err != nil {
		return err
	}
	v.drawer, err = v.ctx.NewShaderInstantiable(v.program, v.inst)
	return err
}

func openShader(file string) (*shaderdesc.Program, error) {
	if file == "" {
		return shaderdesc.OpenFS(shaders, "shaders/default.toml")
	}
	return shaderdesc.Open(file)
}

// reload swaps in the rebuilt program, keeping the old one if either
// it or its VAOs fail to build.
func (v *viewer) reload(w *shaderdesc.Watcher) {
	pr, ok := w.Reload(v.ctx, v.program)
	if !ok {
		return
	}
	drawer, err := v.ctx.NewShaderInstantiable(pr, v.inst)
	if err != nil {
		errors.Log(err)
		errors.Log(pr.Delete())
		return
	}
	v.drawer.Delete()
	errors.Log(v.program.Delete())
	v.program, v.drawer = pr, drawer
}

// release deletes the GL objects in dependency order.
func (v *viewer) release() {
	if v.drawer != nil {
		v.drawer.Delete()
	}
	if v.inst != nil {
		for _, vs := range v.inst.Vertices {
			errors.Log(vs.Release())
		}
	}
	if v.program != nil {
		errors.Log(v.program.Delete())
	}
}
