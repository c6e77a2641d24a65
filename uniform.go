package gpufilter

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/gpufilter/gl"
)

// Value is a uniform value accepted by Program.SetUniform. The set of
// implementations is closed: scalars, vectors and matrices of float32,
// scalars and vectors of int32, and arrays of each.
//
// Matrices are column-major (mgl32 layout) and are never transposed.
// Array values set as many elements as the slice holds; the count is not
// checked against the size declared in the shader.
type Value interface {
	upload(f gl.Functions, loc gl.Uniform)
}

// SetUniform resolves name in p and pushes v to it. It returns
// StatusNoSuchParameter when the program has no active uniform called name;
// the program stays usable.
func (p *Program) SetUniform(name string, v Value) error {
	if !p.Valid() {
		return StatusInvalidProgram
	}
	if v == nil {
		return fmt.Errorf("%w: nil value for %q", StatusUnknownError, name)
	}
	f := p.ctx.gl
	loc := f.GetUniformLocation(p.id, name)
	if !loc.Valid() {
		return fmt.Errorf("%w: %q", StatusNoSuchParameter, name)
	}
	f.UseProgram(p.id)
	v.upload(f, loc)
	return nil
}

// SetFloat sets a float uniform.
func (p *Program) SetFloat(name string, v float32) error {
	return p.SetUniform(name, Float(v))
}

// SetInt sets an int or sampler uniform.
func (p *Program) SetInt(name string, v int) error {
	return p.SetUniform(name, Int(v))
}

type (
	Float float32
	Vec2  mgl32.Vec2
	Vec3  mgl32.Vec3
	Vec4  mgl32.Vec4
	Mat2  mgl32.Mat2
	Mat3  mgl32.Mat3
	Mat4  mgl32.Mat4

	Int   int32
	IVec2 [2]int32
	IVec3 [3]int32
	IVec4 [4]int32

	FloatArray []float32
	Vec2Array  []mgl32.Vec2
	Vec3Array  []mgl32.Vec3
	Vec4Array  []mgl32.Vec4
	Mat2Array  []mgl32.Mat2
	Mat3Array  []mgl32.Mat3
	Mat4Array  []mgl32.Mat4

	IntArray   []int32
	IVec2Array [][2]int32
	IVec3Array [][3]int32
	IVec4Array [][4]int32
)

func (v Float) upload(f gl.Functions, loc gl.Uniform) { f.Uniform1f(loc, float32(v)) }
func (v Vec2) upload(f gl.Functions, loc gl.Uniform)  { f.Uniform2f(loc, v[0], v[1]) }
func (v Vec3) upload(f gl.Functions, loc gl.Uniform)  { f.Uniform3f(loc, v[0], v[1], v[2]) }
func (v Vec4) upload(f gl.Functions, loc gl.Uniform)  { f.Uniform4f(loc, v[0], v[1], v[2], v[3]) }
func (v Mat2) upload(f gl.Functions, loc gl.Uniform)  { f.UniformMatrix2fv(loc, v[:]) }
func (v Mat3) upload(f gl.Functions, loc gl.Uniform)  { f.UniformMatrix3fv(loc, v[:]) }
func (v Mat4) upload(f gl.Functions, loc gl.Uniform)  { f.UniformMatrix4fv(loc, v[:]) }

func (v Int) upload(f gl.Functions, loc gl.Uniform)   { f.Uniform1i(loc, int(v)) }
func (v IVec2) upload(f gl.Functions, loc gl.Uniform) { f.Uniform2i(loc, int(v[0]), int(v[1])) }
func (v IVec3) upload(f gl.Functions, loc gl.Uniform) { f.Uniform3i(loc, v[0], v[1], v[2]) }
func (v IVec4) upload(f gl.Functions, loc gl.Uniform) { f.Uniform4i(loc, v[0], v[1], v[2], v[3]) }

// Array forms push nothing when empty.

func (v FloatArray) upload(f gl.Functions, loc gl.Uniform) {
	if len(v) > 0 {
		f.Uniform1fv(loc, v)
	}
}

func (v Vec2Array) upload(f gl.Functions, loc gl.Uniform) {
	if len(v) > 0 {
		f.Uniform2fv(loc, flatten(v, func(e *mgl32.Vec2) []float32 { return e[:] }))
	}
}

func (v Vec3Array) upload(f gl.Functions, loc gl.Uniform) {
	if len(v) > 0 {
		f.Uniform3fv(loc, flatten(v, func(e *mgl32.Vec3) []float32 { return e[:] }))
	}
}

func (v Vec4Array) upload(f gl.Functions, loc gl.Uniform) {
	if len(v) > 0 {
		f.Uniform4fv(loc, flatten(v, func(e *mgl32.Vec4) []float32 { return e[:] }))
	}
}

func (v Mat2Array) upload(f gl.Functions, loc gl.Uniform) {
	if len(v) > 0 {
		f.UniformMatrix2fv(loc, flatten(v, func(e *mgl32.Mat2) []float32 { return e[:] }))
	}
}

func (v Mat3Array) upload(f gl.Functions, loc gl.Uniform) {
	if len(v) > 0 {
		f.UniformMatrix3fv(loc, flatten(v, func(e *mgl32.Mat3) []float32 { return e[:] }))
	}
}

func (v Mat4Array) upload(f gl.Functions, loc gl.Uniform) {
	if len(v) > 0 {
		f.UniformMatrix4fv(loc, flatten(v, func(e *mgl32.Mat4) []float32 { return e[:] }))
	}
}

func (v IntArray) upload(f gl.Functions, loc gl.Uniform) {
	if len(v) > 0 {
		f.Uniform1iv(loc, v)
	}
}

func (v IVec2Array) upload(f gl.Functions, loc gl.Uniform) {
	if len(v) > 0 {
		f.Uniform2iv(loc, flatten(v, func(e *[2]int32) []int32 { return e[:] }))
	}
}

func (v IVec3Array) upload(f gl.Functions, loc gl.Uniform) {
	if len(v) > 0 {
		f.Uniform3iv(loc, flatten(v, func(e *[3]int32) []int32 { return e[:] }))
	}
}

func (v IVec4Array) upload(f gl.Functions, loc gl.Uniform) {
	if len(v) > 0 {
		f.Uniform4iv(loc, flatten(v, func(e *[4]int32) []int32 { return e[:] }))
	}
}

// flatten concatenates the components of each element in order.
func flatten[T, E any](v []T, elems func(*T) []E) []E {
	var out []E
	for i := range v {
		out = append(out, elems(&v[i])...)
	}
	return out
}
