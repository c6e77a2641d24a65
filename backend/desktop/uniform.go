// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build cgo

package desktop

import (
	gogl "github.com/go-gl/gl/v2.1/gl"

	"github.com/gogpu/gpufilter/gl"
)

func (Functions) Uniform1f(dst gl.Uniform, v float32) { gogl.Uniform1f(dst.V, v) }

func (Functions) Uniform2f(dst gl.Uniform, v0, v1 float32) { gogl.Uniform2f(dst.V, v0, v1) }

func (Functions) Uniform3f(dst gl.Uniform, v0, v1, v2 float32) { gogl.Uniform3f(dst.V, v0, v1, v2) }

func (Functions) Uniform4f(dst gl.Uniform, v0, v1, v2, v3 float32) {
	gogl.Uniform4f(dst.V, v0, v1, v2, v3)
}

func (Functions) Uniform1i(dst gl.Uniform, v int) { gogl.Uniform1i(dst.V, int32(v)) }

func (Functions) Uniform2i(dst gl.Uniform, v0, v1 int) {
	gogl.Uniform2i(dst.V, int32(v0), int32(v1))
}

func (Functions) Uniform3i(dst gl.Uniform, v0, v1, v2 int32) { gogl.Uniform3i(dst.V, v0, v1, v2) }

func (Functions) Uniform4i(dst gl.Uniform, v0, v1, v2, v3 int32) {
	gogl.Uniform4i(dst.V, v0, v1, v2, v3)
}

// The vector forms take the element count, not the component count.

func (Functions) Uniform1fv(dst gl.Uniform, src []float32) {
	if len(src) > 0 {
		gogl.Uniform1fv(dst.V, int32(len(src)), &src[0])
	}
}

func (Functions) Uniform2fv(dst gl.Uniform, src []float32) {
	if len(src) >= 2 {
		gogl.Uniform2fv(dst.V, int32(len(src)/2), &src[0])
	}
}

func (Functions) Uniform3fv(dst gl.Uniform, src []float32) {
	if len(src) >= 3 {
		gogl.Uniform3fv(dst.V, int32(len(src)/3), &src[0])
	}
}

func (Functions) Uniform4fv(dst gl.Uniform, src []float32) {
	if len(src) >= 4 {
		gogl.Uniform4fv(dst.V, int32(len(src)/4), &src[0])
	}
}

func (Functions) Uniform1iv(dst gl.Uniform, src []int32) {
	if len(src) > 0 {
		gogl.Uniform1iv(dst.V, int32(len(src)), &src[0])
	}
}

func (Functions) Uniform2iv(dst gl.Uniform, src []int32) {
	if len(src) >= 2 {
		gogl.Uniform2iv(dst.V, int32(len(src)/2), &src[0])
	}
}

func (Functions) Uniform3iv(dst gl.Uniform, src []int32) {
	if len(src) >= 3 {
		gogl.Uniform3iv(dst.V, int32(len(src)/3), &src[0])
	}
}

func (Functions) Uniform4iv(dst gl.Uniform, src []int32) {
	if len(src) >= 4 {
		gogl.Uniform4iv(dst.V, int32(len(src)/4), &src[0])
	}
}

// Matrices are column-major, so transpose is always false.

func (Functions) UniformMatrix2fv(dst gl.Uniform, src []float32) {
	if len(src) >= 4 {
		gogl.UniformMatrix2fv(dst.V, int32(len(src)/4), false, &src[0])
	}
}

func (Functions) UniformMatrix3fv(dst gl.Uniform, src []float32) {
	if len(src) >= 9 {
		gogl.UniformMatrix3fv(dst.V, int32(len(src)/9), false, &src[0])
	}
}

func (Functions) UniformMatrix4fv(dst gl.Uniform, src []float32) {
	if len(src) >= 16 {
		gogl.UniformMatrix4fv(dst.V, int32(len(src)/16), false, &src[0])
	}
}
