// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"

	"cogentcore.org/core/base/errors"
)

// OpenGL error flags, as returned by [Device.Error].
const (
	NoError                     uint32 = 0
	InvalidEnum                 uint32 = 0x0500
	InvalidValue                uint32 = 0x0501
	InvalidOperation            uint32 = 0x0502
	OutOfMemory                 uint32 = 0x0505
	InvalidFramebufferOperation uint32 = 0x0506
)

// maxErrors bounds the number of flags drained by [CheckErrors];
// some drivers report an error forever once the context is lost.
const maxErrors = 16

// ErrorName returns the GL name of the error flag.
func ErrorName(code uint32) string {
	switch code {
	case NoError:
		return "NO_ERROR"
	case InvalidEnum:
		return "INVALID_ENUM"
	case InvalidValue:
		return "INVALID_VALUE"
	case InvalidOperation:
		return "INVALID_OPERATION"
	case OutOfMemory:
		return "OUT_OF_MEMORY"
	case InvalidFramebufferOperation:
		return "INVALID_FRAMEBUFFER_OPERATION"
	}
	return fmt.Sprintf("0x%04x", code)
}

// CheckErrors drains the error flags of the device and returns them
// joined into one error, or nil if no flag was set. The label
// names the operation being checked.
func CheckErrors(dev Device, label string) error {
	var errs []error
	for range maxErrors {
		code := dev.Error()
		if code == NoError {
			break
		}
		errs = append(errs, fmt.Errorf("glgpu %s: GL error %s", label, ErrorName(code)))
	}
	return errors.Join(errs...)
}
