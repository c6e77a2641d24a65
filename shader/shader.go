// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package shader translates WGSL filters into GLSL programs for gpufilter.
//
// A WGSL filter has one @vertex and one @fragment entry point. The vertex
// stage reads the quad position at @location(0) and the texture coordinate
// at @location(1). Every texture_2d sampled by the fragment stage becomes a
// texture unit: the lowest (group, binding) is the source texture, the rest
// map to SecondTexture, ThirdTexture and so on.
//
// Generated GLSL targets version 330 on desktop and 300 es on mobile, so a
// GL 3.3 or GLES 3.0 context is needed. Uniform buffers become GLSL uniform
// blocks, which Program.SetUniform does not reach; filter parameters belong
// in GLSL sources.
package shader

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/glsl"
	"github.com/gogpu/naga/ir"

	"github.com/gogpu/gpufilter"
)

var (
	// ErrNoEntryPoint is returned when the module lacks a vertex or
	// fragment entry point.
	ErrNoEntryPoint = errors.New("shader: missing entry point")

	// ErrTooManyTextures is returned when the fragment stage samples more
	// textures than a Program can bind.
	ErrTooManyTextures = errors.New("shader: too many textures")
)

// PassthroughWGSL copies the source texture unchanged.
const PassthroughWGSL = `struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) uv: vec2<f32>,
}

@vertex
fn vs_main(@location(0) position: vec4<f32>, @location(1) uv: vec2<f32>) -> VertexOutput {
    var out: VertexOutput;
    out.position = position;
    out.uv = uv;
    return out;
}

@group(0) @binding(0) var source: texture_2d<f32>;
@group(0) @binding(1) var source_sampler: sampler;

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    return textureSample(source, source_sampler, in.uv);
}
`

// Translation is a WGSL module rendered as a GLSL program.
type Translation struct {
	Vertex   string
	Fragment string

	// Samplers lists the combined sampler uniforms of the fragment stage
	// ordered by texture (group, binding).
	Samplers []string
}

// Version returns the GLSL version used for a platform.
func Version(p gpufilter.Platform) glsl.Version {
	if p == gpufilter.Mobile {
		return glsl.VersionES300
	}
	return glsl.Version330
}

// Translate compiles WGSL source to GLSL of the given version.
func Translate(src string, version glsl.Version) (*Translation, error) {
	ast, err := naga.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("shader: %w", err)
	}
	module, err := naga.LowerWithSource(ast, src)
	if err != nil {
		return nil, fmt.Errorf("shader: %w", err)
	}
	verrs, err := naga.Validate(module)
	if err != nil {
		return nil, fmt.Errorf("shader: validate: %w", err)
	}
	if len(verrs) > 0 {
		errs := make([]error, len(verrs))
		for i, e := range verrs {
			errs[i] = e
		}
		return nil, fmt.Errorf("shader: validate: %w", errors.Join(errs...))
	}

	vsName, err := entryPoint(module, ir.StageVertex)
	if err != nil {
		return nil, err
	}
	fsName, err := entryPoint(module, ir.StageFragment)
	if err != nil {
		return nil, err
	}

	opts := glsl.Options{LangVersion: version, ForceHighPrecision: true}

	opts.EntryPoint = vsName
	vs, _, err := glsl.Compile(module, opts)
	if err != nil {
		return nil, fmt.Errorf("shader: vertex %s: %w", vsName, err)
	}

	opts.EntryPoint = fsName
	fs, info, err := glsl.Compile(module, opts)
	if err != nil {
		return nil, fmt.Errorf("shader: fragment %s: %w", fsName, err)
	}

	return &Translation{
		Vertex:   vs,
		Fragment: fs,
		Samplers: samplerOrder(info.TextureMappings),
	}, nil
}

func entryPoint(m *ir.Module, stage ir.ShaderStage) (string, error) {
	for _, ep := range m.EntryPoints {
		if ep.Stage == stage {
			return ep.Name, nil
		}
	}
	return "", ErrNoEntryPoint
}

func samplerOrder(mappings map[string]glsl.TextureMapping) []string {
	names := make([]string, 0, len(mappings))
	for name := range mappings {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		ta, tb := mappings[a].TextureBinding, mappings[b].TextureBinding
		if c := cmp.Compare(ta.Group, tb.Group); c != 0 {
			return c
		}
		if c := cmp.Compare(ta.Binding, tb.Binding); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return names
}

// CompileProgram translates src for the context's platform and compiles it.
// The sampler names found by Translate are wired as the program's texture
// units; opts apply after them.
func CompileProgram(ctx *gpufilter.Context, src string, opts ...gpufilter.ProgramOption) (*gpufilter.Program, error) {
	tr, err := Translate(src, Version(ctx.Platform()))
	if err != nil {
		return nil, err
	}
	if len(tr.Samplers) > 1+gpufilter.MaxAdditionalTextures {
		return nil, fmt.Errorf("%w: %d samplers, at most %d", ErrTooManyTextures,
			len(tr.Samplers), 1+gpufilter.MaxAdditionalTextures)
	}

	var all []gpufilter.ProgramOption
	if len(tr.Samplers) > 0 {
		all = append(all, gpufilter.WithSamplerNames(tr.Samplers[0], tr.Samplers[1:]...))
	}
	all = append(all, opts...)

	gpufilter.Logger().Debug("shader: translated WGSL", "samplers", tr.Samplers)
	return ctx.CompileProgram(tr.Vertex, tr.Fragment, all...)
}
