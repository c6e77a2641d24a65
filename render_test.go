package gpufilter

import (
	"bytes"
	"fmt"
	"slices"
	"testing"

	"github.com/gogpu/gpufilter/gl"
)

func TestUploadRenderContentsFlatColor(t *testing.T) {
	tests := []struct {
		format ColorFormat
		pixel  []byte
		want   []byte // RGBA
	}{
		{RGB, []byte{0x12, 0x34, 0x56}, []byte{0x12, 0x34, 0x56, 0xff}},
		{RGBA, []byte{0x12, 0x34, 0x56, 0x78}, []byte{0x12, 0x34, 0x56, 0x78}},
		{BGRA, []byte{0x56, 0x34, 0x12, 0x78}, []byte{0x12, 0x34, 0x56, 0x78}},
	}
	const w, h = 5, 3
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			ctx, _ := newTestContext(t)
			src, err := ctx.NewTextureWithData(w, h, tt.format, fill(tt.pixel, w*h))
			if err != nil {
				t.Fatalf("NewTextureWithData: %v", err)
			}
			dst := mustFramebuffer(t, ctx, w, h)
			prog, err := ctx.CompileDefaultProgram()
			if err != nil {
				t.Fatalf("CompileDefaultProgram: %v", err)
			}
			if err := ctx.Render(src, dst, prog); err != nil {
				t.Fatalf("Render: %v", err)
			}

			got := make([]byte, dst.SizeInBytes())
			if err := dst.Contents(got, RGBA); err != nil {
				t.Fatalf("Contents: %v", err)
			}
			if want := fill(tt.want, w*h); !bytes.Equal(got, want) {
				t.Errorf("contents = % x, want % x", got[:8], want[:8])
			}

			// Reading back in the source format returns the source bytes.
			same, err := dst.ReadPixels(tt.format)
			if err != nil {
				t.Fatalf("ReadPixels: %v", err)
			}
			if want := fill(tt.pixel, w*h); !bytes.Equal(same, want) {
				t.Errorf("ReadPixels(%v) = % x, want % x", tt.format, same[:8], want[:8])
			}
		})
	}
}

func TestBlankTextureCopiesToWhite(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {7, 3}, {16, 16}} {
		w, h := size[0], size[1]
		t.Run(fmt.Sprintf("%dx%d", w, h), func(t *testing.T) {
			ctx, _ := newTestContext(t)
			blank, err := ctx.NewBlankTexture(w, h)
			if err != nil {
				t.Fatalf("NewBlankTexture: %v", err)
			}
			dst := mustFramebuffer(t, ctx, w, h)
			if err := ctx.Render(blank, dst, mustProgram(t, ctx, "")); err != nil {
				t.Fatalf("Render: %v", err)
			}
			got, err := dst.ReadPixels(RGBA)
			if err != nil {
				t.Fatalf("ReadPixels: %v", err)
			}
			if len(got) != 4*w*h {
				t.Fatalf("len = %d, want %d", len(got), 4*w*h)
			}
			for i, b := range got {
				if b != 0xff {
					t.Fatalf("byte %d = %#x, want 0xff", i, b)
				}
			}
		})
	}
}

func TestRenderBindsAllSlotsInUnitOrder(t *testing.T) {
	ctx, d := newTestContext(t)
	src, _ := ctx.NewBlankTexture(2, 2)
	dst := mustFramebuffer(t, ctx, 2, 2)
	prog := mustProgram(t, ctx, samplerShader)

	for slot := SecondTexture; slot <= EighthTexture; slot++ {
		tex, err := ctx.NewBlankTexture(1, 1)
		if err != nil {
			t.Fatal(err)
		}
		if err := prog.SetTexture(slot, tex); err != nil {
			t.Fatalf("SetTexture(%d): %v", slot, err)
		}
	}
	if err := ctx.ConfigureRenderingPipeline(); err != nil {
		t.Fatal(err)
	}

	d.ResetCalls()
	if err := ctx.Render(src, dst, prog); err != nil {
		t.Fatalf("Render: %v", err)
	}

	units := d.CallsWithPrefix("ActiveTexture(")
	binds := len(d.CallsWithPrefix("BindTexture("))
	want := []string{"ActiveTexture(TEXTURE0)"}
	for i := 1; i <= 7; i++ {
		want = append(want, fmt.Sprintf("ActiveTexture(TEXTURE%d)", i))
	}
	want = append(want, "ActiveTexture(TEXTURE0)")
	if !slices.Equal(units, want) {
		t.Errorf("unit sequence = %v, want %v", units, want)
	}
	if binds != 8 {
		t.Errorf("texture bindings = %d, want 8", binds)
	}

	calls := d.Calls()
	last := calls[len(calls)-1]
	if last != "DrawArrays(TRIANGLE_STRIP, 0, 4)" {
		t.Errorf("last call = %q, want the quad draw", last)
	}
	if calls[len(calls)-2] != "ActiveTexture(TEXTURE0)" {
		t.Errorf("unit not restored before draw: %q", calls[len(calls)-2])
	}

	for i := 2; i <= 8; i++ {
		name := fmt.Sprintf("texture%d", i)
		if got := d.UniformInts(prog.ID(), name); !slices.Equal(got, []int32{int32(i - 1)}) {
			t.Errorf("%s = %v, want [%d]", name, got, i-1)
		}
	}
	if got := d.UniformInts(prog.ID(), "texture"); !slices.Equal(got, []int32{0}) {
		t.Errorf("texture = %v, want [0]", got)
	}
}

func TestRenderSkipsUnusedSlots(t *testing.T) {
	ctx, d := newTestContext(t)
	src, _ := ctx.NewBlankTexture(2, 2)
	dst := mustFramebuffer(t, ctx, 2, 2)
	prog := mustProgram(t, ctx, samplerShader)
	mask, _ := ctx.NewBlankTexture(1, 1)
	if err := prog.SetTexture(FourthTexture, mask); err != nil {
		t.Fatal(err)
	}
	if err := prog.SetTexture(SecondTexture, mask); err != nil {
		t.Fatal(err)
	}
	if err := prog.ClearTexture(SecondTexture); err != nil {
		t.Fatal(err)
	}

	d.ResetCalls()
	if err := ctx.Render(src, dst, prog); err != nil {
		t.Fatal(err)
	}
	got := d.CallsWithPrefix("ActiveTexture(")
	want := []string{"ActiveTexture(TEXTURE0)", "ActiveTexture(TEXTURE3)", "ActiveTexture(TEXTURE0)"}
	if !slices.Equal(got, want) {
		t.Errorf("units = %v, want %v", got, want)
	}
}

func TestRenderSetsViewportToDestination(t *testing.T) {
	ctx, d := newTestContext(t)
	src, _ := ctx.NewBlankTexture(8, 8)
	dst := mustFramebuffer(t, ctx, 3, 5)
	if err := ctx.Render(src, dst, mustProgram(t, ctx, "")); err != nil {
		t.Fatal(err)
	}
	if got := d.CurrentViewport(); got != [4]int{0, 0, 3, 5} {
		t.Errorf("viewport = %v", got)
	}
}

func TestConfigureRenderingPipeline(t *testing.T) {
	ctx, d := newTestContext(t)
	for i := 0; i < 3; i++ {
		if err := ctx.ConfigureRenderingPipeline(); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}
	if got := len(d.CallsWithPrefix("CreateBuffer(")); got != 2 {
		t.Errorf("CreateBuffer calls = %d, want 2", got)
	}
	if !d.IsDisabled(gl.CULL_FACE) || !d.IsDisabled(gl.DEPTH_TEST) {
		t.Error("culling or depth test left enabled")
	}
	for _, attr := range []uint32{0, 1} {
		if !d.AttribEnabled(attr) {
			t.Errorf("attribute %d not enabled", attr)
		}
	}

	ctx.Release()
	if d.LiveBuffers() != 0 {
		t.Errorf("live buffers after Release = %d", d.LiveBuffers())
	}
}

func TestRenderConfiguresPipelineLazily(t *testing.T) {
	ctx, d := newTestContext(t)
	src, _ := ctx.NewBlankTexture(1, 1)
	dst := mustFramebuffer(t, ctx, 1, 1)
	prog := mustProgram(t, ctx, "")
	for i := 0; i < 2; i++ {
		if err := ctx.Render(src, dst, prog); err != nil {
			t.Fatal(err)
		}
	}
	if got := d.LiveBuffers(); got != 2 {
		t.Errorf("live buffers = %d, want 2", got)
	}
	if d.Draws() != 2 {
		t.Errorf("draws = %d, want 2", d.Draws())
	}
}

func TestRenderFramebufferChains(t *testing.T) {
	ctx, _ := newTestContext(t)
	red := []byte{0xff, 0, 0, 0xff}
	src, _ := ctx.NewTextureWithData(2, 2, RGBA, fill(red, 4))
	a := mustFramebuffer(t, ctx, 2, 2)
	b := mustFramebuffer(t, ctx, 2, 2)
	prog := mustProgram(t, ctx, "")

	if err := ctx.Render(src, a, prog); err != nil {
		t.Fatal(err)
	}
	if err := ctx.RenderFramebuffer(a, b, prog); err != nil {
		t.Fatal(err)
	}
	got, err := b.ReadPixels(RGBA)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, fill(red, 4)) {
		t.Errorf("second pass = % x", got)
	}
}
