// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package dynamic implements gl.Functions without cgo. Entry points are
// resolved at run time through a backend.Loader, usually
// eglGetProcAddress, and called with goffi.
//
// The package is built on Linux with CGO_ENABLED=0, where backend/desktop is
// unavailable. Importing it registers the "dynamic" backend:
//
//	import _ "github.com/gogpu/gpufilter/backend/dynamic"
//
// A GL context must be current on the calling thread before New or any
// Functions method runs.
package dynamic
