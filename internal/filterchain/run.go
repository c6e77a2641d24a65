// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filterchain

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/gpufilter"
	"github.com/gogpu/gpufilter/shader"
)

// stage is a compiled pass with the textures it owns.
type stage struct {
	name     string
	prog     *gpufilter.Program
	textures []*gpufilter.Texture
}

func (s *stage) destroy() {
	for _, t := range s.textures {
		t.Destroy()
	}
	s.prog.Destroy()
}

// Run renders src through every pass and returns the framebuffer holding
// the result, sized like src. The caller destroys it.
func (c *Chain) Run(ctx *gpufilter.Context, src *gpufilter.Texture) (*gpufilter.Framebuffer, error) {
	if len(c.Passes) == 0 {
		return nil, ErrEmptyChain
	}
	if !src.Valid() {
		return nil, gpufilter.StatusInvalidTexture
	}

	stages := make([]*stage, 0, len(c.Passes))
	defer func() {
		for _, s := range stages {
			s.destroy()
		}
	}()
	for i := range c.Passes {
		s, err := c.compile(ctx, &c.Passes[i])
		if err != nil {
			return nil, err
		}
		stages = append(stages, s)
	}

	var targets [2]*gpufilter.Framebuffer
	for i := range targets {
		if i == 1 && len(stages) == 1 {
			break
		}
		fb, err := ctx.NewFramebuffer(src.Width(), src.Height())
		if err != nil {
			for _, t := range targets[:i] {
				t.Destroy()
			}
			return nil, err
		}
		targets[i] = fb
	}

	var prev *gpufilter.Framebuffer
	for i, s := range stages {
		dst := targets[i%2]
		var err error
		if prev == nil {
			err = ctx.Render(src, dst, s.prog)
		} else {
			err = ctx.RenderFramebuffer(prev, dst, s.prog)
		}
		if err != nil {
			for _, t := range targets {
				if t != nil {
					t.Destroy()
				}
			}
			return nil, fmt.Errorf("filterchain: %s: %w", s.name, err)
		}
		gpufilter.Logger().Debug("filterchain: pass rendered", "pass", s.name, "index", i)
		prev = dst
	}

	for _, t := range targets {
		if t != nil && t != prev {
			t.Destroy()
		}
	}
	return prev, nil
}

func (c *Chain) compile(ctx *gpufilter.Context, p *Pass) (*stage, error) {
	if len(p.Textures) > gpufilter.MaxAdditionalTextures {
		return nil, fmt.Errorf("filterchain: %s: %d textures, at most %d",
			p.Name, len(p.Textures), gpufilter.MaxAdditionalTextures)
	}
	values, err := p.Values()
	if err != nil {
		return nil, err
	}

	prog, err := c.program(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("filterchain: %s: %w", p.Name, err)
	}
	s := &stage{name: p.Name, prog: prog}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		err := prog.SetUniform(name, values[name])
		if errors.Is(err, gpufilter.StatusNoSuchParameter) {
			// Drivers drop uniforms the shader never reads.
			gpufilter.Logger().Warn("filterchain: uniform not active", "pass", p.Name, "uniform", name)
			continue
		}
		if err != nil {
			s.destroy()
			return nil, fmt.Errorf("filterchain: %s: %w", p.Name, err)
		}
	}

	for i, path := range p.Textures {
		tex, err := c.texture(ctx, path)
		if err != nil {
			s.destroy()
			return nil, fmt.Errorf("filterchain: %s: %w", p.Name, err)
		}
		s.textures = append(s.textures, tex)
		if err := prog.SetTexture(gpufilter.SecondTexture+gpufilter.TextureSlot(i), tex); err != nil {
			s.destroy()
			return nil, fmt.Errorf("filterchain: %s: %w", p.Name, err)
		}
	}
	return s, nil
}

func (c *Chain) program(ctx *gpufilter.Context, p *Pass) (*gpufilter.Program, error) {
	var opts []gpufilter.ProgramOption
	if len(p.Samplers) > 0 {
		opts = append(opts, gpufilter.WithSamplerNames(p.Samplers[0], p.Samplers[1:]...))
	}

	if p.WGSL != "" {
		src, err := c.read(p.WGSL)
		if err != nil {
			return nil, err
		}
		return shader.CompileProgram(ctx, src, opts...)
	}

	fs, err := c.read(p.Fragment)
	if err != nil {
		return nil, err
	}
	vs := gpufilter.DefaultVertexShader(ctx.Platform())
	if p.Vertex != "" {
		if vs, err = c.read(p.Vertex); err != nil {
			return nil, err
		}
	}
	return ctx.CompileProgram(vs, fs, opts...)
}

func (c *Chain) texture(ctx *gpufilter.Context, path string) (*gpufilter.Texture, error) {
	img, _, err := DecodeImage(c.path(path))
	if err != nil {
		return nil, err
	}
	tex, err := ctx.NewTexture()
	if err != nil {
		return nil, err
	}
	if err := tex.UploadImage(img); err != nil {
		tex.Destroy()
		return nil, err
	}
	return tex, nil
}
