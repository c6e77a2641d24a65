// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filterchain

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/gpufilter"
	"github.com/gogpu/gpufilter/gl/soft"
)

const tintFrag = `precision mediump float;
uniform sampler2D texture;
uniform sampler2D texture2;
uniform float amount;
uniform vec3 tint;
uniform int iterations;
varying vec2 uv;
void main() { gl_FragColor = texture2D(texture, uv) * vec4(tint, amount); }
`

func writeFile(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o600); err != nil {
		t.Fatal(err)
	}
}

func writePNG(t *testing.T, dir, name string) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{R: 200, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	writeFile(t, dir, name, buf.Bytes())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
		passes  int
	}{
		{
			name: "two passes",
			doc: `
[[pass]]
name = "tint"
fragment = "tint.frag"
[pass.uniforms]
amount = 0.5

[[pass]]
wgsl = "blur.wgsl"
`,
			passes: 2,
		},
		{name: "empty", doc: "", wantErr: ErrEmptyChain},
		{name: "no source", doc: "[[pass]]\nname = \"x\"\n", wantErr: ErrNoSource},
		{name: "bad uniform", doc: "[[pass]]\nfragment = \"a\"\n[pass.uniforms]\nx = \"text\"\n", wantErr: ErrUniformType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse([]byte(tt.doc), "/filters")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if len(c.Passes) != tt.passes {
				t.Fatalf("passes = %d, want %d", len(c.Passes), tt.passes)
			}
			if got := c.Passes[1].Name; got != "pass1" {
				t.Errorf("unnamed pass = %q, want pass1", got)
			}
			if got := c.path("tint.frag"); got != filepath.Join("/filters", "tint.frag") {
				t.Errorf("path = %q", got)
			}
		})
	}
}

func TestParseSyntaxError(t *testing.T) {
	if _, err := Parse([]byte("[[pass]\nfragment ="), ""); err == nil {
		t.Fatal("malformed TOML accepted")
	}
}

func TestValues(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want gpufilter.Value
	}{
		{"float", 0.5, gpufilter.Float(0.5)},
		{"int", int64(3), gpufilter.Int(3)},
		{"bool", true, gpufilter.Int(1)},
		{"vec3", []any{1.0, int64(2), 0.5}, gpufilter.Vec3{1, 2, 0.5}},
		{"ivec2", []any{int64(1), int64(2)}, gpufilter.IVec2{1, 2}},
		{"float array", []any{1.0, 2.0, 3.0, 4.0, 5.0}, gpufilter.FloatArray{1, 2, 3, 4, 5}},
		{"int array", []any{int64(1)}, gpufilter.IntArray{1}},
		{"int32 bounds", int64(math.MinInt32), gpufilter.Int(math.MinInt32)},
		{"ivec2 exact", []any{int64(16777217), int64(math.MaxInt32)}, gpufilter.IVec2{16777217, math.MaxInt32}},
		{"wide int in float vector", []any{0.5, int64(1) << 40}, gpufilter.Vec2{0.5, 1 << 40}},
		{"mat2", []any{[]any{1.0, 2.0}, []any{3.0, 4.0}}, gpufilter.Mat2{1, 2, 3, 4}},
		{"vec2 array", []any{[]any{1.0, 2.0}, []any{3.0, 4.0}, []any{5.0, 6.0}},
			gpufilter.Vec2Array{mgl32.Vec2{1, 2}, mgl32.Vec2{3, 4}, mgl32.Vec2{5, 6}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pass{Name: "p", Uniforms: map[string]any{"u": tt.raw}}
			got, err := p.Values()
			if err != nil {
				t.Fatalf("Values: %v", err)
			}
			if !reflect.DeepEqual(got["u"], tt.want) {
				t.Errorf("u = %#v, want %#v", got["u"], tt.want)
			}
		})
	}
}

func TestValuesErrors(t *testing.T) {
	for _, raw := range []any{
		"text",
		[]any{},
		[]any{1.0, "x"},
		[]any{[]any{1.0}, []any{2.0}},
		[]any{[]any{1.0, 2.0}, []any{3.0}},
		int64(1) << 40,
		int64(math.MinInt32) - 1,
		[]any{int64(1), int64(1) << 40},
		[]any{int64(1), int64(2), int64(3), int64(4), int64(math.MaxInt32) + 1},
	} {
		p := Pass{Name: "p", Uniforms: map[string]any{"u": raw}}
		if _, err := p.Values(); !errors.Is(err, ErrUniformType) {
			t.Errorf("%#v: err = %v, want ErrUniformType", raw, err)
		}
	}
}

func newSource(t *testing.T, ctx *gpufilter.Context) *gpufilter.Texture {
	t.Helper()
	tex, err := ctx.NewTextureWithData(2, 1, gpufilter.RGBA, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(tex.Destroy)
	return tex
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tint.frag", []byte(tintFrag))
	writePNG(t, dir, "mask.png")
	writeFile(t, dir, "chain.toml", []byte(`
[[pass]]
name = "first"
fragment = "tint.frag"
textures = ["mask.png"]
[pass.uniforms]
amount = 0.5
tint = [1.0, 0.8, 0.6]
iterations = 3
unused = 1.0

[[pass]]
name = "second"
fragment = "tint.frag"

[[pass]]
name = "third"
fragment = "tint.frag"
`))

	chain, err := Load(filepath.Join(dir, "chain.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	d := soft.New()
	ctx := gpufilter.NewContext(d, gpufilter.WithPlatform(gpufilter.Desktop))
	defer ctx.Release()
	src := newSource(t, ctx)

	fb, err := chain.Run(ctx, src)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	defer fb.Destroy()

	if d.Draws() != 3 {
		t.Errorf("Draws = %d, want 3", d.Draws())
	}
	if fb.Width() != 2 || fb.Height() != 1 {
		t.Errorf("result %dx%d, want 2x1", fb.Width(), fb.Height())
	}
	got, err := fb.ReadPixels(gpufilter.RGBA)
	if err != nil {
		t.Fatalf("ReadPixels: %v", err)
	}
	// The reference driver copies unit 0 through every pass.
	if want := []byte{1, 2, 3, 4, 5, 6, 7, 8}; !slices.Equal(got, want) {
		t.Errorf("pixels = %v, want %v", got, want)
	}

	// Programs, mask texture and the spare framebuffer are released.
	if n := d.LivePrograms(); n != 0 {
		t.Errorf("live programs = %d", n)
	}
	if n := d.LiveFramebuffers(); n != 1 {
		t.Errorf("live framebuffers = %d, want 1", n)
	}
	if n := d.LiveTextures(); n != 2 {
		t.Errorf("live textures = %d, want source and result", n)
	}
}

func TestRunUploadsUniforms(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tint.frag", []byte(tintFrag))
	chain, err := Parse([]byte(`
[[pass]]
fragment = "tint.frag"
[pass.uniforms]
amount = 0.25
iterations = 2
`), dir)
	if err != nil {
		t.Fatal(err)
	}

	d := soft.New()
	ctx := gpufilter.NewContext(d, gpufilter.WithPlatform(gpufilter.Desktop))
	defer ctx.Release()

	d.ResetCalls()
	fb, err := chain.Run(ctx, newSource(t, ctx))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	defer fb.Destroy()

	if len(d.CallsWithPrefix("Uniform1f(")) != 1 || len(d.CallsWithPrefix("Uniform1i(")) == 0 {
		t.Errorf("uniform calls: %v", d.Calls())
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.frag", []byte("#error nope\n"))
	writeFile(t, dir, "tint.frag", []byte(tintFrag))

	d := soft.New()
	ctx := gpufilter.NewContext(d, gpufilter.WithPlatform(gpufilter.Desktop))
	defer ctx.Release()
	src := newSource(t, ctx)

	tests := []struct {
		name  string
		chain *Chain
	}{
		{"missing file", &Chain{Passes: []Pass{{Name: "m", Fragment: "missing.frag"}}, dir: dir}},
		{"compile failure", &Chain{Passes: []Pass{{Name: "b", Fragment: "broken.frag"}}, dir: dir}},
		{"missing texture", &Chain{Passes: []Pass{{Name: "t", Fragment: "tint.frag", Textures: []string{"none.png"}}}, dir: dir}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.chain.Run(ctx, src); err == nil {
				t.Fatal("Run succeeded")
			}
			if n := d.LiveFramebuffers(); n != 0 {
				t.Errorf("live framebuffers = %d", n)
			}
			if n := d.LivePrograms(); n != 0 {
				t.Errorf("live programs = %d", n)
			}
		})
	}

	if _, err := (&Chain{}).Run(ctx, src); !errors.Is(err, ErrEmptyChain) {
		t.Errorf("empty chain: err = %v", err)
	}
}

func TestDecodeImage(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "in.png")
	img, format, err := DecodeImage(filepath.Join(dir, "in.png"))
	if err != nil {
		t.Fatalf("DecodeImage: %v", err)
	}
	if format != "png" || img.Bounds().Dx() != 2 {
		t.Errorf("format %q bounds %v", format, img.Bounds())
	}
	if _, _, err := DecodeImage(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("missing file decoded")
	}
}
