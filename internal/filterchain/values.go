// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filterchain

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/gpufilter"
)

// Values converts the pass uniforms. Floats map to Float and integers to
// Int; integers outside the int32 range are rejected. Arrays of 2 to 4 numbers become vectors: IVecN when every element is
// an integer, VecN otherwise. Other flat arrays become FloatArray or
// IntArray. An array of N arrays of N numbers (N = 2, 3, 4) is a matrix
// given column by column; arrays of equal-length vectors become vector
// arrays.
func (p *Pass) Values() (map[string]gpufilter.Value, error) {
	out := make(map[string]gpufilter.Value, len(p.Uniforms))
	for name, raw := range p.Uniforms {
		v, err := value(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s.%s: %v", ErrUniformType, p.Name, name, err)
		}
		out[name] = v
	}
	return out, nil
}

func value(raw any) (gpufilter.Value, error) {
	switch v := raw.(type) {
	case float64:
		return gpufilter.Float(v), nil
	case int64:
		i, err := toInt32(v)
		if err != nil {
			return nil, err
		}
		return gpufilter.Int(i), nil
	case bool:
		if v {
			return gpufilter.Int(1), nil
		}
		return gpufilter.Int(0), nil
	case []any:
		return array(v)
	default:
		return nil, fmt.Errorf("%T", raw)
	}
}

func array(items []any) (gpufilter.Value, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("empty array")
	}
	if _, nested := items[0].([]any); nested {
		return nestedArray(items)
	}
	fs, is, err := numbers(items)
	if err != nil {
		return nil, err
	}

	switch {
	case is != nil && len(is) == 2:
		return gpufilter.IVec2{is[0], is[1]}, nil
	case is != nil && len(is) == 3:
		return gpufilter.IVec3{is[0], is[1], is[2]}, nil
	case is != nil && len(is) == 4:
		return gpufilter.IVec4{is[0], is[1], is[2], is[3]}, nil
	case is != nil:
		return gpufilter.IntArray(is), nil
	case len(items) == 2:
		return gpufilter.Vec2{fs[0], fs[1]}, nil
	case len(items) == 3:
		return gpufilter.Vec3{fs[0], fs[1], fs[2]}, nil
	case len(items) == 4:
		return gpufilter.Vec4{fs[0], fs[1], fs[2], fs[3]}, nil
	default:
		return gpufilter.FloatArray(fs), nil
	}
}

func toInt32(v int64) (int32, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("integer %d overflows int32", v)
	}
	return int32(v), nil
}

// numbers flattens items to float32. When every item is an integer it also
// returns them as int32, failing if one does not fit.
func numbers(items []any) ([]float32, []int32, error) {
	fs := make([]float32, len(items))
	is := make([]int32, len(items))
	var overflow error
	for i, it := range items {
		switch n := it.(type) {
		case int64:
			fs[i] = float32(n)
			if v, err := toInt32(n); err != nil {
				overflow = err
			} else if is != nil {
				is[i] = v
			}
		case float64:
			fs[i] = float32(n)
			is = nil
		default:
			return nil, nil, fmt.Errorf("array element %T", it)
		}
	}
	if is == nil {
		return fs, nil, nil
	}
	if overflow != nil {
		return nil, nil, overflow
	}
	return fs, is, nil
}

func nestedArray(items []any) (gpufilter.Value, error) {
	var (
		cols  [][]float32
		width int
	)
	for _, it := range items {
		inner, ok := it.([]any)
		if !ok {
			return nil, fmt.Errorf("mixed array")
		}
		fs, _, err := numbers(inner)
		if err != nil {
			return nil, err
		}
		if width == 0 {
			width = len(fs)
		}
		if len(fs) != width || width < 2 || width > 4 {
			return nil, fmt.Errorf("array rows must hold 2 to 4 numbers of equal length")
		}
		cols = append(cols, fs)
	}

	if len(cols) == width {
		var flat []float32
		for _, c := range cols {
			flat = append(flat, c...)
		}
		switch width {
		case 2:
			var m gpufilter.Mat2
			copy(m[:], flat)
			return m, nil
		case 3:
			var m gpufilter.Mat3
			copy(m[:], flat)
			return m, nil
		default:
			var m gpufilter.Mat4
			copy(m[:], flat)
			return m, nil
		}
	}

	switch width {
	case 2:
		a := make(gpufilter.Vec2Array, len(cols))
		for i, c := range cols {
			a[i] = mgl32.Vec2{c[0], c[1]}
		}
		return a, nil
	case 3:
		a := make(gpufilter.Vec3Array, len(cols))
		for i, c := range cols {
			a[i] = mgl32.Vec3{c[0], c[1], c[2]}
		}
		return a, nil
	default:
		a := make(gpufilter.Vec4Array, len(cols))
		for i, c := range cols {
			a[i] = mgl32.Vec4{c[0], c[1], c[2], c[3]}
		}
		return a, nil
	}
}
