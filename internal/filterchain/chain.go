// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package filterchain runs ordered filter passes described in TOML.
//
//	[[pass]]
//	name = "tint"
//	fragment = "tint.frag"
//	textures = ["mask.png"]
//	[pass.uniforms]
//	amount = 0.5
//	tint = [1.0, 0.8, 0.6]
//
// Each pass renders the previous result through its program. Source paths
// are relative to the chain file.
package filterchain

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

var (
	// ErrEmptyChain is returned when a chain has no passes.
	ErrEmptyChain = errors.New("filterchain: no passes")

	// ErrNoSource is returned for a pass with neither a fragment nor a
	// wgsl source.
	ErrNoSource = errors.New("filterchain: pass has no shader source")

	// ErrUniformType is returned for uniform values with no GL mapping.
	ErrUniformType = errors.New("filterchain: unsupported uniform value")
)

// Pass is one filter step.
type Pass struct {
	Name string `toml:"name"`

	// Fragment and Vertex are GLSL source files. Vertex defaults to the
	// platform pass-through shader.
	Fragment string `toml:"fragment"`
	Vertex   string `toml:"vertex"`

	// WGSL is a WGSL source file holding both stages. It replaces
	// Fragment and Vertex.
	WGSL string `toml:"wgsl"`

	// Samplers overrides the sampler uniform names of a GLSL pass: the
	// first is the source texture, the rest follow Textures.
	Samplers []string `toml:"samplers"`

	// Textures are image files bound to SecondTexture, ThirdTexture and so
	// on.
	Textures []string `toml:"textures"`

	Uniforms map[string]any `toml:"uniforms"`
}

// Chain is an ordered list of passes.
type Chain struct {
	Passes []Pass `toml:"pass"`

	dir string
}

// Load reads a chain file.
func Load(path string) (*Chain, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("filterchain: %w", err)
	}
	return Parse(data, filepath.Dir(path))
}

// Parse decodes a chain. Relative source paths resolve against dir.
func Parse(data []byte, dir string) (*Chain, error) {
	var c Chain
	if err := toml.Unmarshal(data, &c); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("filterchain: line %d column %d: %w", row, col, err)
		}
		return nil, fmt.Errorf("filterchain: %w", err)
	}
	if len(c.Passes) == 0 {
		return nil, ErrEmptyChain
	}
	for i := range c.Passes {
		p := &c.Passes[i]
		if p.Name == "" {
			p.Name = fmt.Sprintf("pass%d", i)
		}
		if p.Fragment == "" && p.WGSL == "" {
			return nil, fmt.Errorf("%w: %s", ErrNoSource, p.Name)
		}
		if _, err := p.Values(); err != nil {
			return nil, err
		}
	}
	c.dir = dir
	return &c, nil
}

// Single wraps one GLSL fragment file as a chain.
func Single(fragment string) *Chain {
	return &Chain{Passes: []Pass{{Name: filepath.Base(fragment), Fragment: fragment}}}
}

// SingleWGSL wraps one WGSL file as a chain.
func SingleWGSL(wgsl string) *Chain {
	return &Chain{Passes: []Pass{{Name: filepath.Base(wgsl), WGSL: wgsl}}}
}

func (c *Chain) path(name string) string {
	if name == "" || filepath.IsAbs(name) || c.dir == "" {
		return name
	}
	return filepath.Join(c.dir, name)
}

func (c *Chain) read(name string) (string, error) {
	data, err := os.ReadFile(c.path(name))
	if err != nil {
		return "", fmt.Errorf("filterchain: %w", err)
	}
	return string(data), nil
}
