package gpufilter

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/gogpu/gpufilter/gl/soft"
)

func newTestContext(t *testing.T, opts ...Option) (*Context, *soft.Device) {
	t.Helper()
	d := soft.New()
	return NewContext(d, append([]Option{WithPlatform(Desktop)}, opts...)...), d
}

func mustFramebuffer(t *testing.T, ctx *Context, w, h int) *Framebuffer {
	t.Helper()
	fb, err := ctx.NewFramebuffer(w, h)
	if err != nil {
		t.Fatalf("NewFramebuffer(%d, %d): %v", w, h, err)
	}
	return fb
}

func mustProgram(t *testing.T, ctx *Context, fragment string) *Program {
	t.Helper()
	if fragment == "" {
		fragment = DefaultFragmentShader(Desktop)
	}
	p, err := ctx.CompileProgram(DefaultVertexShader(Desktop), fragment)
	if err != nil {
		t.Fatalf("CompileProgram: %v", err)
	}
	return p
}

// samplerShader declares the primary sampler and all seven additional ones.
const samplerShader = `varying vec2 uv;
uniform sampler2D texture;
uniform sampler2D texture2;
uniform sampler2D texture3;
uniform sampler2D texture4;
uniform sampler2D texture5;
uniform sampler2D texture6;
uniform sampler2D texture7;
uniform sampler2D texture8;
uniform float amount;
uniform vec4 tint;
void main() { gl_FragColor = texture2D(texture, uv) * tint * amount; }
`

func fill(pixel []byte, n int) []byte { return bytes.Repeat(pixel, n) }

func itoa(v uint32) string { return strconv.FormatUint(uint64(v), 10) }
