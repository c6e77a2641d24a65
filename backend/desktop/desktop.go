// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build cgo

package desktop

import (
	"fmt"
	"strings"
	"unsafe"

	gogl "github.com/go-gl/gl/v2.1/gl"

	"github.com/gogpu/gpufilter"
	"github.com/gogpu/gpufilter/backend"
	"github.com/gogpu/gpufilter/gl"
)

func init() {
	backend.Register(backend.Desktop, func(load backend.Loader) (gl.Functions, error) {
		if load == nil {
			return New()
		}
		return NewWithProcAddr(load)
	})
}

// Functions implements gl.Functions on the current OpenGL context.
type Functions struct{}

var _ gl.Functions = Functions{}

// New loads the GL entry points with the platform's default loader.
func New() (Functions, error) {
	if err := gogl.Init(); err != nil {
		return Functions{}, fmt.Errorf("desktop: %w", err)
	}
	logDriver()
	return Functions{}, nil
}

// NewWithProcAddr loads the GL entry points through getProcAddr, for
// contexts created by EGL or GLFW.
func NewWithProcAddr(getProcAddr func(name string) unsafe.Pointer) (Functions, error) {
	if err := gogl.InitWithProcAddrFunc(getProcAddr); err != nil {
		return Functions{}, fmt.Errorf("desktop: %w", err)
	}
	logDriver()
	return Functions{}, nil
}

func logDriver() {
	gpufilter.Logger().Info("desktop: GL loaded",
		"version", gogl.GoStr(gogl.GetString(gogl.VERSION)),
		"renderer", gogl.GoStr(gogl.GetString(gogl.RENDERER)),
	)
}

func ptr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return gogl.Ptr(b)
}

func cstr(s string) *uint8 { return gogl.Str(s + "\x00") }

func (Functions) ActiveTexture(unit gl.Enum) { gogl.ActiveTexture(uint32(unit)) }

func (Functions) AttachShader(p gl.Program, s gl.Shader) { gogl.AttachShader(p.V, s.V) }

func (Functions) BindAttribLocation(p gl.Program, a gl.Attrib, name string) {
	gogl.BindAttribLocation(p.V, a.V, cstr(name))
}

func (Functions) BindBuffer(target gl.Enum, b gl.Buffer) { gogl.BindBuffer(uint32(target), b.V) }

func (Functions) BindFramebuffer(target gl.Enum, fb gl.Framebuffer) {
	gogl.BindFramebuffer(uint32(target), fb.V)
}

func (Functions) BindTexture(target gl.Enum, t gl.Texture) { gogl.BindTexture(uint32(target), t.V) }

func (Functions) BufferData(target gl.Enum, src []byte, usage gl.Enum) {
	gogl.BufferData(uint32(target), len(src), ptr(src), uint32(usage))
}

func (Functions) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	return gl.Enum(gogl.CheckFramebufferStatus(uint32(target)))
}

func (Functions) CompileShader(s gl.Shader) { gogl.CompileShader(s.V) }

func (Functions) CreateBuffer() gl.Buffer {
	var b gl.Buffer
	gogl.GenBuffers(1, &b.V)
	return b
}

func (Functions) CreateFramebuffer() gl.Framebuffer {
	var fb gl.Framebuffer
	gogl.GenFramebuffers(1, &fb.V)
	return fb
}

func (Functions) CreateProgram() gl.Program { return gl.Program{V: gogl.CreateProgram()} }

func (Functions) CreateShader(ty gl.Enum) gl.Shader {
	return gl.Shader{V: gogl.CreateShader(uint32(ty))}
}

func (Functions) CreateTexture() gl.Texture {
	var t gl.Texture
	gogl.GenTextures(1, &t.V)
	return t
}

func (Functions) DeleteBuffer(b gl.Buffer)            { gogl.DeleteBuffers(1, &b.V) }
func (Functions) DeleteFramebuffer(fb gl.Framebuffer) { gogl.DeleteFramebuffers(1, &fb.V) }
func (Functions) DeleteProgram(p gl.Program)          { gogl.DeleteProgram(p.V) }
func (Functions) DeleteShader(s gl.Shader)            { gogl.DeleteShader(s.V) }
func (Functions) DeleteTexture(t gl.Texture)          { gogl.DeleteTextures(1, &t.V) }

func (Functions) DetachShader(p gl.Program, s gl.Shader) { gogl.DetachShader(p.V, s.V) }

func (Functions) Disable(capability gl.Enum) { gogl.Disable(uint32(capability)) }

func (Functions) DrawArrays(mode gl.Enum, first, count int) {
	gogl.DrawArrays(uint32(mode), int32(first), int32(count))
}

func (Functions) EnableVertexAttribArray(a gl.Attrib) { gogl.EnableVertexAttribArray(a.V) }

func (Functions) Finish() { gogl.Finish() }
func (Functions) Flush()  { gogl.Flush() }

func (Functions) FramebufferTexture2D(target, attachment, texTarget gl.Enum, t gl.Texture, level int) {
	gogl.FramebufferTexture2D(uint32(target), uint32(attachment), uint32(texTarget), t.V, int32(level))
}

func (Functions) GetError() gl.Enum { return gl.Enum(gogl.GetError()) }

func (Functions) GetProgrami(p gl.Program, pname gl.Enum) int {
	var v int32
	gogl.GetProgramiv(p.V, uint32(pname), &v)
	return int(v)
}

func (f Functions) GetProgramInfoLog(p gl.Program) string {
	n := f.GetProgrami(p, gl.INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	buf := make([]uint8, n)
	gogl.GetProgramInfoLog(p.V, int32(n), nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00")
}

func (Functions) GetShaderi(s gl.Shader, pname gl.Enum) int {
	var v int32
	gogl.GetShaderiv(s.V, uint32(pname), &v)
	return int(v)
}

func (f Functions) GetShaderInfoLog(s gl.Shader) string {
	n := f.GetShaderi(s, gl.INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	buf := make([]uint8, n)
	gogl.GetShaderInfoLog(s.V, int32(n), nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00")
}

func (Functions) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	return gl.Uniform{V: gogl.GetUniformLocation(p.V, cstr(name))}
}

func (Functions) LinkProgram(p gl.Program) { gogl.LinkProgram(p.V) }

func (Functions) PixelStorei(pname gl.Enum, param int) { gogl.PixelStorei(uint32(pname), int32(param)) }

func (Functions) ReadPixels(dst []byte, x, y, width, height int, format, ty gl.Enum) {
	gogl.ReadPixels(int32(x), int32(y), int32(width), int32(height), uint32(format), uint32(ty), ptr(dst))
}

func (Functions) ShaderSource(s gl.Shader, src string) {
	csrc, free := gogl.Strs(src + "\x00")
	defer free()
	gogl.ShaderSource(s.V, 1, csrc, nil)
}

func (Functions) TexImage2D(target gl.Enum, level int, internalFormat int, width, height int, format, ty gl.Enum, data []byte) {
	gogl.TexImage2D(uint32(target), int32(level), int32(internalFormat), int32(width), int32(height), 0, uint32(format), uint32(ty), ptr(data))
}

func (Functions) TexParameteri(target, pname gl.Enum, param int) {
	gogl.TexParameteri(uint32(target), uint32(pname), int32(param))
}

func (Functions) UseProgram(p gl.Program) { gogl.UseProgram(p.V) }

func (Functions) VertexAttribPointer(a gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	gogl.VertexAttribPointerWithOffset(a.V, int32(size), uint32(ty), normalized, int32(stride), uintptr(offset))
}

func (Functions) Viewport(x, y, width, height int) {
	gogl.Viewport(int32(x), int32(y), int32(width), int32(height))
}
