// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "github.com/go-gl/mathgl/mgl32"

// Transformation is a scale, then rotation, then translation.
type Transformation struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

// Identity returns the identity transformation.
func Identity() Transformation {
	return Transformation{Rotation: mgl32.QuatIdent(), Scale: mgl32.Vec3{1, 1, 1}}
}

// Mat4 returns the transformation as a 4×4 matrix.
func (tf Transformation) Mat4() mgl32.Mat4 {
	t := mgl32.Translate3D(tf.Translation.X(), tf.Translation.Y(), tf.Translation.Z())
	r := tf.Rotation.Normalize().Mat4()
	s := mgl32.Scale3D(tf.Scale.X(), tf.Scale.Y(), tf.Scale.Z())
	return t.Mul4(r).Mul4(s)
}

// Instance is one placement of an instantiable object.
type Instance struct {
	Transform Transformation

	// Bones are the current pose matrices of the bone set, if any.
	Bones []mgl32.Mat4
}

// NewInstance returns an instance with the identity transformation.
func NewInstance() *Instance {
	return &Instance{Transform: Identity()}
}
