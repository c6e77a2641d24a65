// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package backend selects the gl.Functions implementation a
// gpufilter.Context runs on.
//
// # Backend Registration
//
// Driver packages register a factory from init(). Import them for the side
// effect:
//
//	import _ "github.com/gogpu/gpufilter/backend/desktop"
//
// The software reference driver is always registered.
//
// # Backend Selection
//
// Use Default to get the best available backend, or Get to request one by
// name. Both take the GL entry-point loader of the current context; pass
// nil to let the driver use its platform default:
//
//	fns, name, err := backend.Default(egl.GetGLProcAddress)
//	if err != nil {
//		return err
//	}
//	ctx := gpufilter.NewContext(fns)
//
// # Available Backends
//
//   - "desktop": OpenGL 2.1 through go-gl (cgo)
//   - "dynamic": OpenGL or GLES entry points resolved at run time through
//     the loader, called without cgo (Linux, CGO_ENABLED=0)
//   - "software": in-memory driver from gl/soft; shaders are not
//     executed, every draw copies the primary texture. Default never
//     selects it.
//
// OpenGL ES on iOS and Android is not registered here: x/mobile hands the
// application a gl.Context, which backend/mobile wraps directly.
package backend
