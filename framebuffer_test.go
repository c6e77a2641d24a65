package gpufilter

import (
	"errors"
	"image"
	"slices"
	"strings"
	"testing"

	"github.com/gogpu/gpufilter/gl"
)

func TestNewFramebuffer(t *testing.T) {
	ctx, d := newTestContext(t)
	fb := mustFramebuffer(t, ctx, 6, 4)
	if fb.Width() != 6 || fb.Height() != 4 {
		t.Errorf("size = %dx%d", fb.Width(), fb.Height())
	}
	if fb.SizeInBytes() != 96 {
		t.Errorf("SizeInBytes = %d, want 96", fb.SizeInBytes())
	}
	tex := fb.Texture()
	if !tex.Valid() || tex.Width() != 6 || tex.Height() != 4 {
		t.Errorf("texture = valid %v %dx%d", tex.Valid(), tex.Width(), tex.Height())
	}
	if w, h, _ := d.TexturePixels(tex.ID()); w != 6 || h != 4 {
		t.Errorf("driver texture = %dx%d", w, h)
	}
}

func TestNewFramebufferIncompleteReleasesObjects(t *testing.T) {
	tests := []struct {
		name      string
		w, h      int
		unsupport bool
	}{
		{"unsupported", 4, 4, true},
		{"zero size", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, d := newTestContext(t)
			d.IncompleteFramebuffers = tt.unsupport
			fb, err := ctx.NewFramebuffer(tt.w, tt.h)
			if fb != nil {
				t.Error("got a framebuffer")
			}
			if !errors.Is(err, StatusFramebufferConstructionFailed) {
				t.Errorf("err = %v, want %v", err, StatusFramebufferConstructionFailed)
			}
			if d.LiveFramebuffers() != 0 || d.LiveTextures() != 0 {
				t.Errorf("leaked framebuffers=%d textures=%d", d.LiveFramebuffers(), d.LiveTextures())
			}
		})
	}
}

func TestContentsSyncsBeforeReading(t *testing.T) {
	ctx, d := newTestContext(t)
	fb := mustFramebuffer(t, ctx, 2, 2)
	d.ResetCalls()
	if err := fb.Contents(make([]byte, fb.SizeInBytes()), RGBA); err != nil {
		t.Fatal(err)
	}
	calls := d.Calls()
	if len(calls) < 4 || calls[0] != "Flush()" || calls[1] != "Finish()" {
		t.Errorf("calls = %v, want Flush, Finish first", calls)
	}
}

func TestContentsShortBuffer(t *testing.T) {
	ctx, d := newTestContext(t)
	fb := mustFramebuffer(t, ctx, 2, 2)
	d.ResetCalls()
	err := fb.Contents(make([]byte, 15), RGBA)
	if StatusOf(err) != StatusUnknownError {
		t.Errorf("err = %v, want %v", err, StatusUnknownError)
	}
	if len(d.Calls()) != 0 {
		t.Errorf("driver called: %v", d.Calls())
	}
	// RGB needs only three bytes per pixel.
	if err := fb.Contents(make([]byte, 12), RGB); err != nil {
		t.Errorf("RGB into 12 bytes: %v", err)
	}
}

func TestImageLayout(t *testing.T) {
	ctx, _ := newTestContext(t)
	fb := mustFramebuffer(t, ctx, 3, 2)
	img, err := fb.Image()
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != image.Rect(0, 0, 3, 2) || img.Stride != 12 || len(img.Pix) != 24 {
		t.Errorf("image = %v stride %d len %d", img.Bounds(), img.Stride, len(img.Pix))
	}
}

func TestFramebufferDestroyInvalidatesTexture(t *testing.T) {
	ctx, d := newTestContext(t)
	fb := mustFramebuffer(t, ctx, 1, 1)
	fb.Destroy()
	if d.LiveTextures() != 0 {
		t.Errorf("live textures = %d", d.LiveTextures())
	}
	if tex := fb.Texture(); tex.Valid() {
		t.Error("framebuffer texture valid after Destroy")
	}
}

func TestBorrowedTextureDoesNotOwn(t *testing.T) {
	ctx, d := newTestContext(t)
	src := mustFramebuffer(t, ctx, 2, 2)
	dst := mustFramebuffer(t, ctx, 2, 2)
	p := mustProgram(t, ctx, "")
	live := d.LiveTextures()

	tex := src.Texture()
	tex.Destroy()
	tex.Destroy()
	if !tex.Valid() || !src.Valid() {
		t.Fatalf("borrowed Destroy invalidated: texture %v framebuffer %v", tex.Valid(), src.Valid())
	}
	if d.LiveTextures() != live {
		t.Errorf("live textures = %d, want %d", d.LiveTextures(), live)
	}
	if err := tex.Upload(1, 1, RGBA, []byte{1, 2, 3, 4}); err != StatusInvalidTexture {
		t.Errorf("Upload on borrowed texture = %v, want %v", err, StatusInvalidTexture)
	}
	if src.Width() != 2 || src.Height() != 2 {
		t.Errorf("framebuffer size changed to %dx%d", src.Width(), src.Height())
	}
	if err := ctx.Render(tex, dst, p); err != nil {
		t.Fatalf("Render from borrowed texture: %v", err)
	}

	d.ResetCalls()
	src.Destroy()
	if n := len(d.CallsWithPrefix("DeleteTexture")); n != 1 {
		t.Errorf("DeleteTexture calls = %d, want 1", n)
	}
	if tex.Valid() {
		t.Error("borrowed texture valid after its framebuffer was destroyed")
	}
	if err := ctx.Render(tex, dst, p); StatusOf(err) != StatusInvalidTexture {
		t.Errorf("Render from stale texture = %v, want %v", err, StatusInvalidTexture)
	}
	tex.Destroy()
	if e := d.GetError(); e != gl.NO_ERROR {
		t.Errorf("GetError = %v after destroying stale borrowed texture", e)
	}
}

func TestContentsPacksRows(t *testing.T) {
	ctx, d := newTestContext(t)
	// Three-byte RGB rows are not 4-byte aligned.
	src, err := ctx.NewTextureWithData(1, 3, RGB, []byte{10, 20, 30, 40, 50, 60, 70, 80, 90})
	if err != nil {
		t.Fatalf("upload RGB 1x3: %v", err)
	}
	dst := mustFramebuffer(t, ctx, 1, 3)
	p := mustProgram(t, ctx, "")
	if err := ctx.Render(src, dst, p); err != nil {
		t.Fatal(err)
	}

	got := make([]byte, 10)
	got[9] = 0xee
	d.ResetCalls()
	if err := dst.Contents(got[:9], RGB); err != nil {
		t.Fatalf("Contents RGB: %v", err)
	}
	if want := []byte{10, 20, 30, 40, 50, 60, 70, 80, 90}; string(got[:9]) != string(want) {
		t.Errorf("RGB contents = %v, want %v", got[:9], want)
	}
	if got[9] != 0xee {
		t.Error("Contents wrote past the buffer")
	}
	calls := d.Calls()
	pack := slices.Index(calls, "PixelStorei(PACK_ALIGNMENT, 1)")
	read := slices.IndexFunc(calls, func(c string) bool { return strings.HasPrefix(c, "ReadPixels(") })
	if pack < 0 || read < pack {
		t.Errorf("calls = %v, want PixelStorei(PACK_ALIGNMENT, 1) before ReadPixels", calls)
	}

	rgba, err := dst.ReadPixels(RGBA)
	if err != nil {
		t.Fatal(err)
	}
	if want := []byte{10, 20, 30, 255, 40, 50, 60, 255, 70, 80, 90, 255}; string(rgba) != string(want) {
		t.Errorf("RGBA contents = %v, want %v", rgba, want)
	}
}
