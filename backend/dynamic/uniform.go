// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build linux && !cgo

package dynamic

import (
	"runtime"
	"unsafe"

	"github.com/gogpu/gpufilter/gl"
)

func (f *Functions) Uniform1f(dst gl.Uniform, v float32) {
	f.p.uniformf[0].call(nil, unsafe.Pointer(&dst.V), unsafe.Pointer(&v))
}

func (f *Functions) Uniform2f(dst gl.Uniform, v0, v1 float32) {
	f.p.uniformf[1].call(nil, unsafe.Pointer(&dst.V), unsafe.Pointer(&v0), unsafe.Pointer(&v1))
}

func (f *Functions) Uniform3f(dst gl.Uniform, v0, v1, v2 float32) {
	f.p.uniformf[2].call(nil, unsafe.Pointer(&dst.V), unsafe.Pointer(&v0), unsafe.Pointer(&v1), unsafe.Pointer(&v2))
}

func (f *Functions) Uniform4f(dst gl.Uniform, v0, v1, v2, v3 float32) {
	f.p.uniformf[3].call(nil, unsafe.Pointer(&dst.V),
		unsafe.Pointer(&v0), unsafe.Pointer(&v1), unsafe.Pointer(&v2), unsafe.Pointer(&v3))
}

func (f *Functions) Uniform1i(dst gl.Uniform, v int) {
	a := int32(v)
	f.p.uniformi[0].call(nil, unsafe.Pointer(&dst.V), unsafe.Pointer(&a))
}

func (f *Functions) Uniform2i(dst gl.Uniform, v0, v1 int) {
	a, b := int32(v0), int32(v1)
	f.p.uniformi[1].call(nil, unsafe.Pointer(&dst.V), unsafe.Pointer(&a), unsafe.Pointer(&b))
}

func (f *Functions) Uniform3i(dst gl.Uniform, v0, v1, v2 int32) {
	f.p.uniformi[2].call(nil, unsafe.Pointer(&dst.V), unsafe.Pointer(&v0), unsafe.Pointer(&v1), unsafe.Pointer(&v2))
}

func (f *Functions) Uniform4i(dst gl.Uniform, v0, v1, v2, v3 int32) {
	f.p.uniformi[3].call(nil, unsafe.Pointer(&dst.V),
		unsafe.Pointer(&v0), unsafe.Pointer(&v1), unsafe.Pointer(&v2), unsafe.Pointer(&v3))
}

// vector uploads src as len(src)/n elements of n components. Short slices
// are ignored.
func vector[T float32 | int32](p *proc, dst gl.Uniform, src []T, n int) {
	if len(src) < n {
		return
	}
	count := int32(len(src) / n)
	ref := data(src)
	p.call(nil, unsafe.Pointer(&dst.V), unsafe.Pointer(&count), unsafe.Pointer(&ref))
	runtime.KeepAlive(src)
}

func (f *Functions) Uniform1fv(dst gl.Uniform, src []float32) { vector(&f.p.uniformfv[0], dst, src, 1) }
func (f *Functions) Uniform2fv(dst gl.Uniform, src []float32) { vector(&f.p.uniformfv[1], dst, src, 2) }
func (f *Functions) Uniform3fv(dst gl.Uniform, src []float32) { vector(&f.p.uniformfv[2], dst, src, 3) }
func (f *Functions) Uniform4fv(dst gl.Uniform, src []float32) { vector(&f.p.uniformfv[3], dst, src, 4) }
func (f *Functions) Uniform1iv(dst gl.Uniform, src []int32)   { vector(&f.p.uniformiv[0], dst, src, 1) }
func (f *Functions) Uniform2iv(dst gl.Uniform, src []int32)   { vector(&f.p.uniformiv[1], dst, src, 2) }
func (f *Functions) Uniform3iv(dst gl.Uniform, src []int32)   { vector(&f.p.uniformiv[2], dst, src, 3) }
func (f *Functions) Uniform4iv(dst gl.Uniform, src []int32)   { vector(&f.p.uniformiv[3], dst, src, 4) }

func matrix(p *proc, dst gl.Uniform, src []float32, n int) {
	if len(src) < n*n {
		return
	}
	count := int32(len(src) / (n * n))
	var transpose uint8
	ref := data(src)
	p.call(nil, unsafe.Pointer(&dst.V), unsafe.Pointer(&count), unsafe.Pointer(&transpose), unsafe.Pointer(&ref))
	runtime.KeepAlive(src)
}

func (f *Functions) UniformMatrix2fv(dst gl.Uniform, src []float32) {
	matrix(&f.p.matrixfv[0], dst, src, 2)
}

func (f *Functions) UniformMatrix3fv(dst gl.Uniform, src []float32) {
	matrix(&f.p.matrixfv[1], dst, src, 3)
}

func (f *Functions) UniformMatrix4fv(dst gl.Uniform, src []float32) {
	matrix(&f.p.matrixfv[2], dst, src, 4)
}
