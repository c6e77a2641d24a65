// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build linux && !cgo

package dynamic

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"unsafe"

	wgl "github.com/gogpu/wgpu/hal/gles/gl"

	"github.com/gogpu/gpufilter"
	"github.com/gogpu/gpufilter/backend"
	"github.com/gogpu/gpufilter/gl"
)

var (
	// ErrNoLoader is returned by New without a loader.
	ErrNoLoader = errors.New("dynamic: no loader")

	// ErrMissingEntryPoints is returned when the loader cannot resolve an
	// entry point gpufilter calls.
	ErrMissingEntryPoints = errors.New("dynamic: missing GL entry points")
)

func init() {
	backend.Register(backend.Dynamic, func(load backend.Loader) (gl.Functions, error) {
		return New(load)
	})
}

// scalarEntryPoints are called through the wgpu GL context, which does not
// report unresolved names itself.
var scalarEntryPoints = []string{
	"glActiveTexture", "glAttachShader", "glBindBuffer", "glBindFramebuffer",
	"glBindTexture", "glCheckFramebufferStatus", "glCompileShader",
	"glCreateProgram", "glCreateShader", "glDeleteProgram", "glDeleteShader",
	"glDisable", "glDrawArrays", "glEnableVertexAttribArray", "glFinish",
	"glFlush", "glFramebufferTexture2D", "glGetError", "glGetString",
	"glLinkProgram", "glPixelStorei", "glTexParameteri", "glUseProgram",
	"glVertexAttribPointer", "glViewport",
}

// Functions implements gl.Functions on the GL context that was current
// when New ran.
type Functions struct {
	ctx wgl.Context
	p   procs
}

var _ gl.Functions = (*Functions)(nil)

// New resolves every entry point through load.
func New(load backend.Loader) (*Functions, error) {
	if load == nil {
		return nil, ErrNoLoader
	}
	var missing []string
	for _, name := range scalarEntryPoints {
		if load(name) == nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingEntryPoints, strings.Join(missing, ", "))
	}

	f := new(Functions)
	if err := f.ctx.Load(wgl.ProcAddressFunc(load)); err != nil {
		return nil, fmt.Errorf("dynamic: %w", err)
	}
	if err := f.p.load(load); err != nil {
		return nil, err
	}
	gpufilter.Logger().Info("dynamic: GL loaded",
		"version", f.ctx.GetString(wgl.VERSION),
		"renderer", f.ctx.GetString(wgl.RENDERER),
	)
	return f, nil
}

// data returns the address of the first element of b, or nil.
func data[T any](b []T) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}

func cstr(s string) []byte { return append([]byte(s), 0) }

func (f *Functions) genName(p *proc) uint32 {
	n, name := int32(1), uint32(0)
	ref := unsafe.Pointer(&name)
	p.call(nil, unsafe.Pointer(&n), unsafe.Pointer(&ref))
	return name
}

func (f *Functions) deleteName(p *proc, name uint32) {
	n := int32(1)
	ref := unsafe.Pointer(&name)
	p.call(nil, unsafe.Pointer(&n), unsafe.Pointer(&ref))
}

func (f *Functions) ActiveTexture(unit gl.Enum) { f.ctx.ActiveTexture(uint32(unit)) }

func (f *Functions) AttachShader(p gl.Program, s gl.Shader) { f.ctx.AttachShader(p.V, s.V) }

func (f *Functions) BindAttribLocation(p gl.Program, a gl.Attrib, name string) {
	cname := cstr(name)
	ref := data(cname)
	f.p.bindAttribLocation.call(nil, unsafe.Pointer(&p.V), unsafe.Pointer(&a.V), unsafe.Pointer(&ref))
	runtime.KeepAlive(cname)
}

func (f *Functions) BindBuffer(target gl.Enum, b gl.Buffer) { f.ctx.BindBuffer(uint32(target), b.V) }

func (f *Functions) BindFramebuffer(target gl.Enum, fb gl.Framebuffer) {
	f.ctx.BindFramebuffer(uint32(target), fb.V)
}

func (f *Functions) BindTexture(target gl.Enum, t gl.Texture) { f.ctx.BindTexture(uint32(target), t.V) }

func (f *Functions) BufferData(target gl.Enum, src []byte, usage gl.Enum) {
	t, size, u := uint32(target), int64(len(src)), uint32(usage)
	ref := data(src)
	f.p.bufferData.call(nil, unsafe.Pointer(&t), unsafe.Pointer(&size), unsafe.Pointer(&ref), unsafe.Pointer(&u))
	runtime.KeepAlive(src)
}

func (f *Functions) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	return gl.Enum(f.ctx.CheckFramebufferStatus(uint32(target)))
}

func (f *Functions) CompileShader(s gl.Shader) { f.ctx.CompileShader(s.V) }

func (f *Functions) CreateBuffer() gl.Buffer { return gl.Buffer{V: f.genName(&f.p.genBuffers)} }

func (f *Functions) CreateFramebuffer() gl.Framebuffer {
	return gl.Framebuffer{V: f.genName(&f.p.genFramebuffers)}
}

func (f *Functions) CreateProgram() gl.Program { return gl.Program{V: f.ctx.CreateProgram()} }

func (f *Functions) CreateShader(ty gl.Enum) gl.Shader {
	return gl.Shader{V: f.ctx.CreateShader(uint32(ty))}
}

func (f *Functions) CreateTexture() gl.Texture { return gl.Texture{V: f.genName(&f.p.genTextures)} }

func (f *Functions) DeleteBuffer(b gl.Buffer) { f.deleteName(&f.p.deleteBuffers, b.V) }

func (f *Functions) DeleteFramebuffer(fb gl.Framebuffer) {
	f.deleteName(&f.p.deleteFramebuffers, fb.V)
}

func (f *Functions) DeleteProgram(p gl.Program) { f.ctx.DeleteProgram(p.V) }
func (f *Functions) DeleteShader(s gl.Shader)   { f.ctx.DeleteShader(s.V) }
func (f *Functions) DeleteTexture(t gl.Texture) { f.deleteName(&f.p.deleteTextures, t.V) }

func (f *Functions) DetachShader(p gl.Program, s gl.Shader) {
	f.p.detachShader.call(nil, unsafe.Pointer(&p.V), unsafe.Pointer(&s.V))
}

func (f *Functions) Disable(capability gl.Enum) { f.ctx.Disable(uint32(capability)) }

func (f *Functions) DrawArrays(mode gl.Enum, first, count int) {
	f.ctx.DrawArrays(uint32(mode), int32(first), int32(count))
}

func (f *Functions) EnableVertexAttribArray(a gl.Attrib) { f.ctx.EnableVertexAttribArray(a.V) }

func (f *Functions) Finish() { f.ctx.Finish() }
func (f *Functions) Flush()  { f.ctx.Flush() }

func (f *Functions) FramebufferTexture2D(target, attachment, texTarget gl.Enum, t gl.Texture, level int) {
	f.ctx.FramebufferTexture2D(uint32(target), uint32(attachment), uint32(texTarget), t.V, int32(level))
}

func (f *Functions) GetError() gl.Enum { return gl.Enum(f.ctx.GetError()) }

func (f *Functions) getiv(p *proc, name uint32, pname gl.Enum) int {
	var v int32
	pn := uint32(pname)
	ref := unsafe.Pointer(&v)
	p.call(nil, unsafe.Pointer(&name), unsafe.Pointer(&pn), unsafe.Pointer(&ref))
	return int(v)
}

func (f *Functions) infoLog(p *proc, name uint32, n int) string {
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	size := int32(n)
	var length unsafe.Pointer
	ref := data(buf)
	p.call(nil, unsafe.Pointer(&name), unsafe.Pointer(&size), unsafe.Pointer(&length), unsafe.Pointer(&ref))
	runtime.KeepAlive(buf)
	return strings.TrimRight(string(buf), "\x00")
}

func (f *Functions) GetProgrami(p gl.Program, pname gl.Enum) int {
	return f.getiv(&f.p.getProgramiv, p.V, pname)
}

func (f *Functions) GetProgramInfoLog(p gl.Program) string {
	return f.infoLog(&f.p.getProgramInfoLog, p.V, f.GetProgrami(p, gl.INFO_LOG_LENGTH))
}

func (f *Functions) GetShaderi(s gl.Shader, pname gl.Enum) int {
	return f.getiv(&f.p.getShaderiv, s.V, pname)
}

func (f *Functions) GetShaderInfoLog(s gl.Shader) string {
	return f.infoLog(&f.p.getShaderInfoLog, s.V, f.GetShaderi(s, gl.INFO_LOG_LENGTH))
}

func (f *Functions) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	var loc int32
	cname := cstr(name)
	ref := data(cname)
	f.p.getUniformLocation.call(unsafe.Pointer(&loc), unsafe.Pointer(&p.V), unsafe.Pointer(&ref))
	runtime.KeepAlive(cname)
	return gl.Uniform{V: loc}
}

func (f *Functions) LinkProgram(p gl.Program) { f.ctx.LinkProgram(p.V) }

func (f *Functions) PixelStorei(pname gl.Enum, param int) {
	f.ctx.PixelStorei(uint32(pname), int32(param))
}

func (f *Functions) ReadPixels(dst []byte, x, y, width, height int, format, ty gl.Enum) {
	x32, y32, w32, h32 := int32(x), int32(y), int32(width), int32(height)
	fm, t := uint32(format), uint32(ty)
	ref := data(dst)
	f.p.readPixels.call(nil,
		unsafe.Pointer(&x32), unsafe.Pointer(&y32), unsafe.Pointer(&w32), unsafe.Pointer(&h32),
		unsafe.Pointer(&fm), unsafe.Pointer(&t), unsafe.Pointer(&ref))
	runtime.KeepAlive(dst)
}

func (f *Functions) ShaderSource(s gl.Shader, src string) {
	csrc := cstr(src)
	count := int32(1)
	str := data(csrc)
	strs := unsafe.Pointer(&str)
	var lengths unsafe.Pointer
	f.p.shaderSource.call(nil, unsafe.Pointer(&s.V), unsafe.Pointer(&count), unsafe.Pointer(&strs), unsafe.Pointer(&lengths))
	runtime.KeepAlive(csrc)
}

func (f *Functions) TexImage2D(target gl.Enum, level int, internalFormat int, width, height int, format, ty gl.Enum, pix []byte) {
	tg, fm, t := uint32(target), uint32(format), uint32(ty)
	lv, ifm, w, h, border := int32(level), int32(internalFormat), int32(width), int32(height), int32(0)
	ref := data(pix)
	f.p.texImage2D.call(nil,
		unsafe.Pointer(&tg), unsafe.Pointer(&lv), unsafe.Pointer(&ifm), unsafe.Pointer(&w), unsafe.Pointer(&h),
		unsafe.Pointer(&border), unsafe.Pointer(&fm), unsafe.Pointer(&t), unsafe.Pointer(&ref))
	runtime.KeepAlive(pix)
}

func (f *Functions) TexParameteri(target, pname gl.Enum, param int) {
	f.ctx.TexParameteri(uint32(target), uint32(pname), int32(param))
}

func (f *Functions) UseProgram(p gl.Program) { f.ctx.UseProgram(p.V) }

func (f *Functions) VertexAttribPointer(a gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	f.ctx.VertexAttribPointer(a.V, int32(size), uint32(ty), normalized, int32(stride), uintptr(offset))
}

func (f *Functions) Viewport(x, y, width, height int) {
	f.ctx.Viewport(int32(x), int32(y), int32(width), int32(height))
}
