package gpufilter

import (
	"bytes"
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"

	"github.com/gogpu/gpufilter/gl"
)

// Texture is a 2D RGBA8 texture. The zero value is an invalid handle.
//
// Texture implements gpucontext.Texture and gpucontext.TextureUpdater.
type Texture struct {
	ctx    *Context
	valid  bool
	id     gl.Texture
	width  int
	height int
	// owner is set on handles borrowed from a Framebuffer, which keeps the
	// driver texture.
	owner *Framebuffer
}

var (
	_ gpucontext.Texture        = (*Texture)(nil)
	_ gpucontext.TextureUpdater = (*Texture)(nil)
)

// setSamplerState applies the fixed sampler state to the texture bound on
// the active unit: nearest filtering, clamp-to-edge wrapping.
func setSamplerState(f gl.Functions) {
	f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, int(gl.NEAREST))
	f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, int(gl.NEAREST))
	f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, int(gl.CLAMP_TO_EDGE))
	f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, int(gl.CLAMP_TO_EDGE))
}

// NewTexture creates an empty texture on unit 0. Width and height stay zero
// until the first Upload.
func (c *Context) NewTexture() (*Texture, error) {
	f := c.gl
	f.ActiveTexture(gl.TEXTURE0)
	id := f.CreateTexture()
	if !id.Valid() {
		return nil, fmt.Errorf("%w: driver returned no texture name", StatusUnknownError)
	}
	f.BindTexture(gl.TEXTURE_2D, id)
	setSamplerState(f)
	Logger().Debug("gpufilter: texture created", "id", id.V)
	return &Texture{ctx: c, valid: true, id: id}, nil
}

// NewTextureWithData creates a texture and uploads pix into it. On upload
// failure the texture is destroyed.
func (c *Context) NewTextureWithData(width, height int, format ColorFormat, pix []byte) (*Texture, error) {
	t, err := c.NewTexture()
	if err != nil {
		return nil, err
	}
	if err := t.Upload(width, height, format, pix); err != nil {
		t.Destroy()
		return nil, err
	}
	return t, nil
}

// NewBlankTexture creates a width x height texture filled with opaque white.
// It returns StatusOutOfMemory when the 4*width*height upload buffer
// overflows or exceeds the context's maximum upload size.
func (c *Context) NewBlankTexture(width, height int) (*Texture, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative size %dx%d", StatusUnknownError, width, height)
	}
	size, ok := pixelSize(width, height, 4)
	if !ok || size > c.options.maxUploadSize {
		return nil, fmt.Errorf("%w: blank texture %dx%d", StatusOutOfMemory, width, height)
	}
	return c.NewTextureWithData(width, height, RGBA, bytes.Repeat([]byte{0xff}, size))
}

// pixelSize returns bpp*width*height and false if it does not fit in an int.
func pixelSize(width, height, bpp int) (int, bool) {
	if width == 0 || height == 0 {
		return 0, true
	}
	if width > math.MaxInt/bpp/height {
		return 0, false
	}
	return bpp * width * height, true
}

// Valid reports whether t is a live texture. A texture borrowed from a
// framebuffer is valid as long as the framebuffer is.
func (t *Texture) Valid() bool {
	return t != nil && t.valid && t.ctx != nil && (t.owner == nil || t.owner.Valid())
}

// Destroy releases the driver texture. Calling it again is a no-op, and so
// is calling it on a texture borrowed from a framebuffer.
func (t *Texture) Destroy() {
	if !t.Valid() || t.owner != nil {
		return
	}
	t.valid = false
	t.ctx.gl.DeleteTexture(t.id)
	Logger().Debug("gpufilter: texture destroyed", "id", t.id.V)
}

// Width returns the width of the last upload.
func (t *Texture) Width() int {
	if t == nil {
		return 0
	}
	return t.width
}

// Height returns the height of the last upload.
func (t *Texture) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// ID returns the driver texture name.
func (t *Texture) ID() gl.Texture {
	if t == nil {
		return gl.Texture{}
	}
	return t.id
}

// Format returns the storage format, which is always RGBA8.
func (t *Texture) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Upload replaces the texture contents with width x height pixels of the
// given format. Storage is RGBA8 whatever the source format. The recorded
// size changes even when the upload fails.
//
// Rows of pix are tightly packed. A pix shorter than
// width*height*format.BytesPerPixel() is rejected with StatusUnknownError
// before reaching the driver. A nil pix allocates undefined contents.
//
// A texture borrowed from a framebuffer cannot be uploaded to; it returns
// StatusInvalidTexture.
func (t *Texture) Upload(width, height int, format ColorFormat, pix []byte) error {
	if !t.Valid() || t.owner != nil {
		return StatusInvalidTexture
	}
	t.width, t.height = width, height
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: negative size %dx%d", StatusUnknownError, width, height)
	}
	if need, ok := pixelSize(width, height, format.BytesPerPixel()); pix != nil && (!ok || len(pix) < need) {
		return fmt.Errorf("%w: %d bytes for %dx%d %v", StatusUnknownError, len(pix), width, height, format)
	}
	f := t.ctx.gl
	f.ActiveTexture(gl.TEXTURE0)
	f.BindTexture(gl.TEXTURE_2D, t.id)
	f.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	f.TexImage2D(gl.TEXTURE_2D, 0, int(gl.RGBA), width, height, format.glFormat(), gl.UNSIGNED_BYTE, pix)
	if e := f.GetError(); e != gl.NO_ERROR {
		return fmt.Errorf("%w: upload %dx%d %v: %v", StatusUnknownError, width, height, format, e)
	}
	return nil
}

// UpdateData uploads RGBA pixels at the current size. It implements
// gpucontext.TextureUpdater.
func (t *Texture) UpdateData(data []byte) error {
	if !t.Valid() {
		return StatusInvalidTexture
	}
	if want := 4 * t.width * t.height; len(data) != want {
		return fmt.Errorf("%w: got %d bytes, want %d", StatusUnknownError, len(data), want)
	}
	return t.Upload(t.width, t.height, RGBA, data)
}

// UploadImage converts img to non-premultiplied RGBA and uploads it. The
// first row of img becomes texture row 0, which Framebuffer.ReadPixels
// returns first.
func (t *Texture) UploadImage(img image.Image) error {
	if !t.Valid() {
		return StatusInvalidTexture
	}
	b := img.Bounds()
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) && n.Stride == 4*b.Dx() {
		return t.Upload(b.Dx(), b.Dy(), RGBA, n.Pix)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return t.Upload(b.Dx(), b.Dy(), RGBA, dst.Pix)
}
