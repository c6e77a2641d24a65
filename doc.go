// Package gpufilter is a thin convenience layer over OpenGL and OpenGL ES
// for running fragment-shader filters on images.
//
// # Overview
//
// gpufilter creates textures, framebuffers and shader programs, binds
// uniform values and renders a full-screen quad from a source texture into a
// destination framebuffer. Every call is a near-direct pass-through to the
// driver; there is no caching and no retry.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gpufilter"
//	    "github.com/gogpu/gpufilter/headless"
//	)
//
//	hc, err := headless.New(headless.Config{})
//	if err != nil {
//	    return err
//	}
//	defer hc.Close()
//
//	ctx := gpufilter.NewContext(hc.Functions())
//	src, _ := ctx.NewTextureWithData(w, h, gpufilter.RGBA, pix)
//	dst, _ := ctx.NewFramebuffer(w, h)
//	prog, _ := ctx.CompileProgram(vertex, fragment)
//	_ = prog.SetUniform("amount", gpufilter.Float(0.5))
//	_ = ctx.Render(src, dst, prog)
//	out, _ := dst.ReadPixels(gpufilter.RGBA)
//
// # Driver
//
// The driver is an explicit capability: a [gl.Functions] implementation
// handed to [NewContext]. The caller creates the GL context, keeps it current
// on the calling OS thread and serializes access. Implementations live in
// backend/desktop (go-gl), backend/dynamic (EGL without cgo),
// backend/mobile (x/mobile/gl) and gl/soft (software reference).
//
// # Errors
//
// Operations return error. A nil error is [StatusOK]; failures are a
// [Status] or wrap one, so [StatusOf] and errors.Is recover the code.
//
// # Handles
//
// Texture, Framebuffer and Program carry a validity flag. Any operation other
// than Destroy on a destroyed, never-created or nil handle fails with the
// matching Invalid status and issues no driver call. Destroy is idempotent.
package gpufilter
