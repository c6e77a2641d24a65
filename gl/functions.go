// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gl

// Functions is the subset of OpenGL (ES) that gpufilter drives.
//
// Each method maps to exactly one GL entry point with the same name, so the
// driver documentation applies unchanged. Methods never report errors
// themselves; callers query GetError or the relevant status after the call,
// as they would in C.
type Functions interface {
	ActiveTexture(texture Enum)
	AttachShader(p Program, s Shader)
	BindAttribLocation(p Program, a Attrib, name string)
	BindBuffer(target Enum, b Buffer)
	BindFramebuffer(target Enum, fb Framebuffer)
	BindTexture(target Enum, t Texture)
	BufferData(target Enum, src []byte, usage Enum)
	CheckFramebufferStatus(target Enum) Enum
	CompileShader(s Shader)
	CreateBuffer() Buffer
	CreateFramebuffer() Framebuffer
	CreateProgram() Program
	CreateShader(ty Enum) Shader
	CreateTexture() Texture
	DeleteBuffer(b Buffer)
	DeleteFramebuffer(fb Framebuffer)
	DeleteProgram(p Program)
	DeleteShader(s Shader)
	DeleteTexture(t Texture)
	DetachShader(p Program, s Shader)
	Disable(capability Enum)
	DrawArrays(mode Enum, first, count int)
	EnableVertexAttribArray(a Attrib)
	Finish()
	Flush()
	FramebufferTexture2D(target, attachment, texTarget Enum, t Texture, level int)
	GetError() Enum
	GetProgrami(p Program, pname Enum) int
	GetProgramInfoLog(p Program) string
	GetShaderi(s Shader, pname Enum) int
	GetShaderInfoLog(s Shader) string
	GetUniformLocation(p Program, name string) Uniform
	LinkProgram(p Program)
	PixelStorei(pname Enum, param int)
	ReadPixels(dst []byte, x, y, width, height int, format, ty Enum)
	ShaderSource(s Shader, src string)
	TexImage2D(target Enum, level int, internalFormat int, width, height int, format, ty Enum, data []byte)
	TexParameteri(target, pname Enum, param int)
	UseProgram(p Program)
	VertexAttribPointer(a Attrib, size int, ty Enum, normalized bool, stride, offset int)
	Viewport(x, y, width, height int)

	Uniform1f(dst Uniform, v float32)
	Uniform2f(dst Uniform, v0, v1 float32)
	Uniform3f(dst Uniform, v0, v1, v2 float32)
	Uniform4f(dst Uniform, v0, v1, v2, v3 float32)
	Uniform1i(dst Uniform, v int)
	Uniform2i(dst Uniform, v0, v1 int)
	Uniform3i(dst Uniform, v0, v1, v2 int32)
	Uniform4i(dst Uniform, v0, v1, v2, v3 int32)
	Uniform1fv(dst Uniform, src []float32)
	Uniform2fv(dst Uniform, src []float32)
	Uniform3fv(dst Uniform, src []float32)
	Uniform4fv(dst Uniform, src []float32)
	Uniform1iv(dst Uniform, src []int32)
	Uniform2iv(dst Uniform, src []int32)
	Uniform3iv(dst Uniform, src []int32)
	Uniform4iv(dst Uniform, src []int32)
	UniformMatrix2fv(dst Uniform, src []float32)
	UniformMatrix3fv(dst Uniform, src []float32)
	UniformMatrix4fv(dst Uniform, src []float32)
}
