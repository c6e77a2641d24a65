// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"errors"
	"unsafe"

	"github.com/gogpu/gpufilter/gl"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when no registered backend could be
	// created.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrUnknownBackend is returned by Get for names nobody registered.
	ErrUnknownBackend = errors.New("backend: unknown backend")
)

// Backend name constants.
const (
	// Desktop is the go-gl OpenGL 2.1 backend.
	Desktop = "desktop"
	// Dynamic resolves OpenGL entry points through a Loader and calls them
	// without cgo.
	Dynamic = "dynamic"
	// Software is the in-memory reference driver.
	Software = "software"
)

// Loader resolves a GL entry point by name in the current context, as
// eglGetProcAddress and glfwGetProcAddress do.
type Loader func(name string) unsafe.Pointer

// Factory creates a driver for the GL context that is current on the
// calling thread. load may be nil.
type Factory func(load Loader) (gl.Functions, error)
