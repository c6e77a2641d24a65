package gpufilter

import (
	"errors"
	"image"
	"testing"
)

// Operations on never-created, destroyed or nil handles must fail with the
// matching status and must not reach the driver.
func TestInvalidHandlesTouchNoDriverState(t *testing.T) {
	ctx, d := newTestContext(t)

	tex, err := ctx.NewTexture()
	if err != nil {
		t.Fatal(err)
	}
	fb := mustFramebuffer(t, ctx, 2, 2)
	prog := mustProgram(t, ctx, samplerShader)

	destroyedTex, _ := ctx.NewTexture()
	destroyedTex.Destroy()
	destroyedFB := mustFramebuffer(t, ctx, 2, 2)
	destroyedFB.Destroy()
	destroyedProg := mustProgram(t, ctx, "")
	destroyedProg.Destroy()

	textures := map[string]*Texture{"zero": {}, "nil": nil, "destroyed": destroyedTex}
	framebuffers := map[string]*Framebuffer{"zero": {}, "nil": nil, "destroyed": destroyedFB}
	programs := map[string]*Program{"zero": {}, "nil": nil, "destroyed": destroyedProg}

	type op struct {
		name string
		call func() error
		want Status
	}
	var ops []op
	for kind, bad := range textures {
		ops = append(ops,
			op{kind + " texture Upload", func() error { return bad.Upload(1, 1, RGBA, make([]byte, 4)) }, StatusInvalidTexture},
			op{kind + " texture UpdateData", func() error { return bad.UpdateData(nil) }, StatusInvalidTexture},
			op{kind + " texture UploadImage", func() error { return bad.UploadImage(image.NewNRGBA(image.Rect(0, 0, 1, 1))) }, StatusInvalidTexture},
			op{kind + " texture Render", func() error { return ctx.Render(bad, fb, prog) }, StatusInvalidTexture},
			op{kind + " texture SetTexture", func() error { return prog.SetTexture(ThirdTexture, bad) }, StatusInvalidTexture},
		)
	}
	for kind, bad := range framebuffers {
		ops = append(ops,
			op{kind + " framebuffer Contents", func() error { return bad.Contents(make([]byte, 16), RGBA) }, StatusInvalidFramebuffer},
			op{kind + " framebuffer ReadPixels", func() error { _, err := bad.ReadPixels(RGBA); return err }, StatusInvalidFramebuffer},
			op{kind + " framebuffer Image", func() error { _, err := bad.Image(); return err }, StatusInvalidFramebuffer},
			op{kind + " framebuffer Render", func() error { return ctx.Render(tex, bad, prog) }, StatusInvalidFramebuffer},
			op{kind + " framebuffer RenderFramebuffer src", func() error { return ctx.RenderFramebuffer(bad, fb, prog) }, StatusInvalidFramebuffer},
			op{kind + " framebuffer RenderFramebuffer dst", func() error { return ctx.RenderFramebuffer(fb, bad, prog) }, StatusInvalidFramebuffer},
		)
	}
	for kind, bad := range programs {
		ops = append(ops,
			op{kind + " program SetUniform", func() error { return bad.SetUniform("amount", Float(1)) }, StatusInvalidProgram},
			op{kind + " program SetFloat", func() error { return bad.SetFloat("amount", 1) }, StatusInvalidProgram},
			op{kind + " program SetInt", func() error { return bad.SetInt("texture2", 1) }, StatusInvalidProgram},
			op{kind + " program SetTexture", func() error { return bad.SetTexture(SecondTexture, tex) }, StatusInvalidProgram},
			op{kind + " program ClearTexture", func() error { return bad.ClearTexture(SecondTexture) }, StatusInvalidProgram},
			op{kind + " program Render", func() error { return ctx.Render(tex, fb, bad) }, StatusInvalidProgram},
		)
	}

	for _, o := range ops {
		t.Run(o.name, func(t *testing.T) {
			d.ResetCalls()
			err := o.call()
			if !errors.Is(err, o.want) {
				t.Errorf("err = %v, want %v", err, o.want)
			}
			if calls := d.Calls(); len(calls) != 0 {
				t.Errorf("driver was called: %v", calls)
			}
		})
	}
}

func TestRenderChecksTextureFirst(t *testing.T) {
	ctx, _ := newTestContext(t)
	if err := ctx.Render(nil, nil, nil); err != StatusInvalidTexture {
		t.Errorf("Render(nil, nil, nil) = %v, want %v", err, StatusInvalidTexture)
	}
	tex, _ := ctx.NewTexture()
	if err := ctx.Render(tex, nil, nil); err != StatusInvalidFramebuffer {
		t.Errorf("Render(tex, nil, nil) = %v, want %v", err, StatusInvalidFramebuffer)
	}
}

func TestDestroyIsIdempotent(t *testing.T) {
	ctx, d := newTestContext(t)

	tex, _ := ctx.NewTexture()
	fb := mustFramebuffer(t, ctx, 4, 4)
	prog := mustProgram(t, ctx, "")
	d.ResetCalls()

	for i := 0; i < 2; i++ {
		tex.Destroy()
		fb.Destroy()
		prog.Destroy()
	}

	for prefix, want := range map[string]int{
		"DeleteTexture(":     2, // tex and the framebuffer's color texture
		"DeleteFramebuffer(": 1,
		"DeleteProgram(":     1,
	} {
		if got := len(d.CallsWithPrefix(prefix)); got != want {
			t.Errorf("%s calls = %d, want %d", prefix, got, want)
		}
	}
	if tex.Valid() || fb.Valid() || prog.Valid() {
		t.Error("handle still valid after Destroy")
	}
	if d.LiveTextures() != 0 || d.LiveFramebuffers() != 0 || d.LivePrograms() != 0 {
		t.Errorf("live objects: textures=%d framebuffers=%d programs=%d",
			d.LiveTextures(), d.LiveFramebuffers(), d.LivePrograms())
	}

	// Zero and nil handles are no-ops too.
	d.ResetCalls()
	(&Texture{}).Destroy()
	(*Texture)(nil).Destroy()
	(&Framebuffer{}).Destroy()
	(*Framebuffer)(nil).Destroy()
	(&Program{}).Destroy()
	(*Program)(nil).Destroy()
	if calls := d.Calls(); len(calls) != 0 {
		t.Errorf("Destroy on invalid handles called the driver: %v", calls)
	}
}
