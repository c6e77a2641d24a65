// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gl defines the graphics-driver capability used by gpufilter.
//
// gpufilter never talks to a process-wide "current context". Instead the
// host hands it a [Functions] value: one method per OpenGL / OpenGL ES entry
// point the filter layer needs. Backends adapt real bindings to it:
//
//   - backend/desktop wraps github.com/go-gl/gl (desktop OpenGL, cgo)
//   - backend/dynamic loads OpenGL through EGL without cgo (Linux)
//   - backend/mobile wraps golang.org/x/mobile/gl (OpenGL ES 2)
//   - gl/soft is a software reference driver
//
// The method set follows the OpenGL ES 2 shape: object names are small typed
// structs ([Texture], [Program], [Uniform], ...), enums are [Enum] values
// holding the real GL constants, and pointer+count pairs are slices.
//
// A Functions value is bound to exactly one driver context. The caller is
// responsible for keeping that context current on the calling thread and for
// serializing access to it.
package gl
