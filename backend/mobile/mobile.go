// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build darwin || linux || openbsd || windows

// Package mobile implements gl.Functions on an OpenGL ES 2 context from
// golang.org/x/mobile/gl, as handed to an x/mobile app in its
// lifecycle.StageVisible event.
//
//	case lifecycle.Event:
//	    if e.Crosses(lifecycle.StageVisible) == lifecycle.CrossOn {
//	        glctx := e.DrawContext.(mgl.Context)
//	        ctx := gpufilter.NewContext(mobile.New(glctx), gpufilter.WithPlatform(gpufilter.Mobile))
//	    }
//
// BGRA uploads and readback need the EXT_texture_format_BGRA8888 and
// EXT_read_format_bgra extensions; without them the driver reports an
// error which gpufilter surfaces as StatusUnknownError.
package mobile

import (
	mgl "golang.org/x/mobile/gl"

	"github.com/gogpu/gpufilter/gl"
)

// Functions adapts an x/mobile GL context.
type Functions struct {
	ctx mgl.Context
}

var _ gl.Functions = (*Functions)(nil)

// New wraps ctx.
func New(ctx mgl.Context) *Functions {
	return &Functions{ctx: ctx}
}

// Context returns the wrapped x/mobile context.
func (f *Functions) Context() mgl.Context { return f.ctx }

func program(p gl.Program) mgl.Program { return mgl.Program{Init: p.V != 0, Value: p.V} }
func shader(s gl.Shader) mgl.Shader    { return mgl.Shader{Value: s.V} }
func texture(t gl.Texture) mgl.Texture { return mgl.Texture{Value: t.V} }
func uniform(u gl.Uniform) mgl.Uniform { return mgl.Uniform{Value: u.V} }
func attrib(a gl.Attrib) mgl.Attrib    { return mgl.Attrib{Value: uint(a.V)} }

func (f *Functions) ActiveTexture(unit gl.Enum) { f.ctx.ActiveTexture(mgl.Enum(unit)) }

func (f *Functions) AttachShader(p gl.Program, s gl.Shader) {
	f.ctx.AttachShader(program(p), shader(s))
}

func (f *Functions) BindAttribLocation(p gl.Program, a gl.Attrib, name string) {
	f.ctx.BindAttribLocation(program(p), attrib(a), name)
}

func (f *Functions) BindBuffer(target gl.Enum, b gl.Buffer) {
	f.ctx.BindBuffer(mgl.Enum(target), mgl.Buffer{Value: b.V})
}

func (f *Functions) BindFramebuffer(target gl.Enum, fb gl.Framebuffer) {
	f.ctx.BindFramebuffer(mgl.Enum(target), mgl.Framebuffer{Value: fb.V})
}

func (f *Functions) BindTexture(target gl.Enum, t gl.Texture) {
	f.ctx.BindTexture(mgl.Enum(target), texture(t))
}

func (f *Functions) BufferData(target gl.Enum, src []byte, usage gl.Enum) {
	f.ctx.BufferData(mgl.Enum(target), src, mgl.Enum(usage))
}

func (f *Functions) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	return gl.Enum(f.ctx.CheckFramebufferStatus(mgl.Enum(target)))
}

func (f *Functions) CompileShader(s gl.Shader) { f.ctx.CompileShader(shader(s)) }

func (f *Functions) CreateBuffer() gl.Buffer { return gl.Buffer{V: f.ctx.CreateBuffer().Value} }

func (f *Functions) CreateFramebuffer() gl.Framebuffer {
	return gl.Framebuffer{V: f.ctx.CreateFramebuffer().Value}
}

func (f *Functions) CreateProgram() gl.Program { return gl.Program{V: f.ctx.CreateProgram().Value} }

func (f *Functions) CreateShader(ty gl.Enum) gl.Shader {
	return gl.Shader{V: f.ctx.CreateShader(mgl.Enum(ty)).Value}
}

func (f *Functions) CreateTexture() gl.Texture { return gl.Texture{V: f.ctx.CreateTexture().Value} }

func (f *Functions) DeleteBuffer(b gl.Buffer) { f.ctx.DeleteBuffer(mgl.Buffer{Value: b.V}) }

func (f *Functions) DeleteFramebuffer(fb gl.Framebuffer) {
	f.ctx.DeleteFramebuffer(mgl.Framebuffer{Value: fb.V})
}

func (f *Functions) DeleteProgram(p gl.Program) { f.ctx.DeleteProgram(program(p)) }
func (f *Functions) DeleteShader(s gl.Shader)   { f.ctx.DeleteShader(shader(s)) }
func (f *Functions) DeleteTexture(t gl.Texture) { f.ctx.DeleteTexture(texture(t)) }

func (f *Functions) DetachShader(p gl.Program, s gl.Shader) {
	f.ctx.DetachShader(program(p), shader(s))
}

func (f *Functions) Disable(capability gl.Enum) { f.ctx.Disable(mgl.Enum(capability)) }

func (f *Functions) DrawArrays(mode gl.Enum, first, count int) {
	f.ctx.DrawArrays(mgl.Enum(mode), first, count)
}

func (f *Functions) EnableVertexAttribArray(a gl.Attrib) { f.ctx.EnableVertexAttribArray(attrib(a)) }

func (f *Functions) Finish() { f.ctx.Finish() }
func (f *Functions) Flush()  { f.ctx.Flush() }

func (f *Functions) FramebufferTexture2D(target, attachment, texTarget gl.Enum, t gl.Texture, level int) {
	f.ctx.FramebufferTexture2D(mgl.Enum(target), mgl.Enum(attachment), mgl.Enum(texTarget), texture(t), level)
}

func (f *Functions) GetError() gl.Enum { return gl.Enum(f.ctx.GetError()) }

func (f *Functions) GetProgrami(p gl.Program, pname gl.Enum) int {
	return f.ctx.GetProgrami(program(p), mgl.Enum(pname))
}

func (f *Functions) GetProgramInfoLog(p gl.Program) string {
	return f.ctx.GetProgramInfoLog(program(p))
}

func (f *Functions) GetShaderi(s gl.Shader, pname gl.Enum) int {
	return f.ctx.GetShaderi(shader(s), mgl.Enum(pname))
}

func (f *Functions) GetShaderInfoLog(s gl.Shader) string { return f.ctx.GetShaderInfoLog(shader(s)) }

func (f *Functions) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	return gl.Uniform{V: f.ctx.GetUniformLocation(program(p), name).Value}
}

func (f *Functions) LinkProgram(p gl.Program) { f.ctx.LinkProgram(program(p)) }

func (f *Functions) PixelStorei(pname gl.Enum, param int) {
	f.ctx.PixelStorei(mgl.Enum(pname), int32(param))
}

func (f *Functions) ReadPixels(dst []byte, x, y, width, height int, format, ty gl.Enum) {
	f.ctx.ReadPixels(dst, x, y, width, height, mgl.Enum(format), mgl.Enum(ty))
}

func (f *Functions) ShaderSource(s gl.Shader, src string) { f.ctx.ShaderSource(shader(s), src) }

func (f *Functions) TexImage2D(target gl.Enum, level int, internalFormat int, width, height int, format, ty gl.Enum, data []byte) {
	f.ctx.TexImage2D(mgl.Enum(target), level, internalFormat, width, height, mgl.Enum(format), mgl.Enum(ty), data)
}

func (f *Functions) TexParameteri(target, pname gl.Enum, param int) {
	f.ctx.TexParameteri(mgl.Enum(target), mgl.Enum(pname), param)
}

func (f *Functions) UseProgram(p gl.Program) { f.ctx.UseProgram(program(p)) }

func (f *Functions) VertexAttribPointer(a gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	f.ctx.VertexAttribPointer(attrib(a), size, mgl.Enum(ty), normalized, stride, offset)
}

func (f *Functions) Viewport(x, y, width, height int) { f.ctx.Viewport(x, y, width, height) }

func (f *Functions) Uniform1f(dst gl.Uniform, v float32) { f.ctx.Uniform1f(uniform(dst), v) }

func (f *Functions) Uniform2f(dst gl.Uniform, v0, v1 float32) {
	f.ctx.Uniform2f(uniform(dst), v0, v1)
}

func (f *Functions) Uniform3f(dst gl.Uniform, v0, v1, v2 float32) {
	f.ctx.Uniform3f(uniform(dst), v0, v1, v2)
}

func (f *Functions) Uniform4f(dst gl.Uniform, v0, v1, v2, v3 float32) {
	f.ctx.Uniform4f(uniform(dst), v0, v1, v2, v3)
}

func (f *Functions) Uniform1i(dst gl.Uniform, v int) { f.ctx.Uniform1i(uniform(dst), v) }

func (f *Functions) Uniform2i(dst gl.Uniform, v0, v1 int) { f.ctx.Uniform2i(uniform(dst), v0, v1) }

func (f *Functions) Uniform3i(dst gl.Uniform, v0, v1, v2 int32) {
	f.ctx.Uniform3i(uniform(dst), v0, v1, v2)
}

func (f *Functions) Uniform4i(dst gl.Uniform, v0, v1, v2, v3 int32) {
	f.ctx.Uniform4i(uniform(dst), v0, v1, v2, v3)
}

// x/mobile indexes src[0] unconditionally, so empty slices are dropped
// here.

func (f *Functions) Uniform1fv(dst gl.Uniform, src []float32) {
	if len(src) > 0 {
		f.ctx.Uniform1fv(uniform(dst), src)
	}
}

func (f *Functions) Uniform2fv(dst gl.Uniform, src []float32) {
	if len(src) > 0 {
		f.ctx.Uniform2fv(uniform(dst), src)
	}
}

func (f *Functions) Uniform3fv(dst gl.Uniform, src []float32) {
	if len(src) > 0 {
		f.ctx.Uniform3fv(uniform(dst), src)
	}
}

func (f *Functions) Uniform4fv(dst gl.Uniform, src []float32) {
	if len(src) > 0 {
		f.ctx.Uniform4fv(uniform(dst), src)
	}
}

func (f *Functions) Uniform1iv(dst gl.Uniform, src []int32) {
	if len(src) > 0 {
		f.ctx.Uniform1iv(uniform(dst), src)
	}
}

func (f *Functions) Uniform2iv(dst gl.Uniform, src []int32) {
	if len(src) > 0 {
		f.ctx.Uniform2iv(uniform(dst), src)
	}
}

func (f *Functions) Uniform3iv(dst gl.Uniform, src []int32) {
	if len(src) > 0 {
		f.ctx.Uniform3iv(uniform(dst), src)
	}
}

func (f *Functions) Uniform4iv(dst gl.Uniform, src []int32) {
	if len(src) > 0 {
		f.ctx.Uniform4iv(uniform(dst), src)
	}
}

func (f *Functions) UniformMatrix2fv(dst gl.Uniform, src []float32) {
	if len(src) > 0 {
		f.ctx.UniformMatrix2fv(uniform(dst), src)
	}
}

func (f *Functions) UniformMatrix3fv(dst gl.Uniform, src []float32) {
	if len(src) > 0 {
		f.ctx.UniformMatrix3fv(uniform(dst), src)
	}
}

func (f *Functions) UniformMatrix4fv(dst gl.Uniform, src []float32) {
	if len(src) > 0 {
		f.ctx.UniformMatrix4fv(uniform(dst), src)
	}
}
