// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package desktop implements gl.Functions on desktop OpenGL 2.1 through
// github.com/go-gl/gl. It needs cgo and links against the system GL
// library.
//
// Importing the package registers the "desktop" backend:
//
//	import _ "github.com/gogpu/gpufilter/backend/desktop"
//
// A GL context must be current on the calling thread before New or any
// Functions method runs.
package desktop
