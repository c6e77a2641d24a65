// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build linux && !cgo

package dynamic

import (
	"fmt"
	"strings"
	"sync"
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"
)

// signature is a C prototype shared by several GL entry points.
type signature struct {
	cif  types.CallInterface
	ret  *types.TypeDescriptor
	args []*types.TypeDescriptor
}

var (
	void = types.VoidTypeDescriptor
	u8   = types.UInt8TypeDescriptor
	u32  = types.UInt32TypeDescriptor
	i32  = types.SInt32TypeDescriptor
	i64  = types.SInt64TypeDescriptor
	f32  = types.FloatTypeDescriptor
	ptr  = types.PointerTypeDescriptor
)

var (
	sigNames        = &signature{ret: void, args: []*types.TypeDescriptor{i32, ptr}}
	sigUU           = &signature{ret: void, args: []*types.TypeDescriptor{u32, u32}}
	sigUUP          = &signature{ret: void, args: []*types.TypeDescriptor{u32, u32, ptr}}
	sigBufferData   = &signature{ret: void, args: []*types.TypeDescriptor{u32, i64, ptr, u32}}
	sigShaderSource = &signature{ret: void, args: []*types.TypeDescriptor{u32, i32, ptr, ptr}}
	sigLocation     = &signature{ret: i32, args: []*types.TypeDescriptor{u32, ptr}}
	sigTexImage     = &signature{ret: void, args: []*types.TypeDescriptor{u32, i32, i32, i32, i32, i32, u32, u32, ptr}}
	sigReadPixels   = &signature{ret: void, args: []*types.TypeDescriptor{i32, i32, i32, i32, u32, u32, ptr}}
	sigUniformf     = [4]*signature{
		{ret: void, args: []*types.TypeDescriptor{i32, f32}},
		{ret: void, args: []*types.TypeDescriptor{i32, f32, f32}},
		{ret: void, args: []*types.TypeDescriptor{i32, f32, f32, f32}},
		{ret: void, args: []*types.TypeDescriptor{i32, f32, f32, f32, f32}},
	}
	sigUniformi = [4]*signature{
		{ret: void, args: []*types.TypeDescriptor{i32, i32}},
		{ret: void, args: []*types.TypeDescriptor{i32, i32, i32}},
		{ret: void, args: []*types.TypeDescriptor{i32, i32, i32, i32}},
		{ret: void, args: []*types.TypeDescriptor{i32, i32, i32, i32, i32}},
	}
	sigUniformv = &signature{ret: void, args: []*types.TypeDescriptor{i32, i32, ptr}}
	sigMatrix   = &signature{ret: void, args: []*types.TypeDescriptor{i32, i32, u8, ptr}}
)

var prepareSignatures = sync.OnceValue(func() error {
	sigs := []*signature{
		sigNames, sigUU, sigUUP, sigBufferData, sigShaderSource, sigLocation,
		sigTexImage, sigReadPixels, sigUniformv, sigMatrix,
	}
	sigs = append(sigs, sigUniformf[:]...)
	sigs = append(sigs, sigUniformi[:]...)
	for _, s := range sigs {
		if err := ffi.PrepareCallInterface(&s.cif, types.DefaultCall, s.ret, s.args); err != nil {
			return err
		}
	}
	return nil
})

// proc is one resolved entry point.
type proc struct {
	sig *signature
	fn  unsafe.Pointer
}

// call invokes p. Every element of args points at the argument value; for
// pointer parameters that is the address of the pointer.
func (p *proc) call(ret unsafe.Pointer, args ...unsafe.Pointer) {
	_ = ffi.CallFunction(&p.sig.cif, p.fn, ret, args)
}

// procs holds the entry points that take pointers or float arguments. The
// scalar ones go through the wgpu GL context.
type procs struct {
	genBuffers         proc
	genFramebuffers    proc
	genTextures        proc
	deleteBuffers      proc
	deleteFramebuffers proc
	deleteTextures     proc
	bindAttribLocation proc
	detachShader       proc
	bufferData         proc
	shaderSource       proc
	getShaderiv        proc
	getProgramiv       proc
	getShaderInfoLog   proc
	getProgramInfoLog  proc
	getUniformLocation proc
	texImage2D         proc
	readPixels         proc

	uniformf  [4]proc // glUniform1f .. glUniform4f
	uniformi  [4]proc // glUniform1i .. glUniform4i
	uniformfv [4]proc
	uniformiv [4]proc
	matrixfv  [3]proc // glUniformMatrix2fv .. glUniformMatrix4fv
}

func (p *procs) load(load func(name string) unsafe.Pointer) error {
	if err := prepareSignatures(); err != nil {
		return fmt.Errorf("dynamic: prepare call interfaces: %w", err)
	}

	type entry struct {
		dst  *proc
		name string
		sig  *signature
	}
	entries := []entry{
		{&p.genBuffers, "glGenBuffers", sigNames},
		{&p.genFramebuffers, "glGenFramebuffers", sigNames},
		{&p.genTextures, "glGenTextures", sigNames},
		{&p.deleteBuffers, "glDeleteBuffers", sigNames},
		{&p.deleteFramebuffers, "glDeleteFramebuffers", sigNames},
		{&p.deleteTextures, "glDeleteTextures", sigNames},
		{&p.bindAttribLocation, "glBindAttribLocation", sigUUP},
		{&p.detachShader, "glDetachShader", sigUU},
		{&p.bufferData, "glBufferData", sigBufferData},
		{&p.shaderSource, "glShaderSource", sigShaderSource},
		{&p.getShaderiv, "glGetShaderiv", sigUUP},
		{&p.getProgramiv, "glGetProgramiv", sigUUP},
		{&p.getShaderInfoLog, "glGetShaderInfoLog", sigShaderSource},
		{&p.getProgramInfoLog, "glGetProgramInfoLog", sigShaderSource},
		{&p.getUniformLocation, "glGetUniformLocation", sigLocation},
		{&p.texImage2D, "glTexImage2D", sigTexImage},
		{&p.readPixels, "glReadPixels", sigReadPixels},
	}
	for i := range 4 {
		n := i + 1
		entries = append(entries,
			entry{&p.uniformf[i], fmt.Sprintf("glUniform%df", n), sigUniformf[i]},
			entry{&p.uniformi[i], fmt.Sprintf("glUniform%di", n), sigUniformi[i]},
			entry{&p.uniformfv[i], fmt.Sprintf("glUniform%dfv", n), sigUniformv},
			entry{&p.uniformiv[i], fmt.Sprintf("glUniform%div", n), sigUniformv},
		)
	}
	for i := range 3 {
		n := i + 2
		entries = append(entries, entry{&p.matrixfv[i], fmt.Sprintf("glUniformMatrix%dfv", n), sigMatrix})
	}

	var missing []string
	for _, e := range entries {
		e.dst.sig = e.sig
		e.dst.fn = load(e.name)
		if e.dst.fn == nil {
			missing = append(missing, e.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingEntryPoints, strings.Join(missing, ", "))
	}
	return nil
}
