package gpufilter

import (
	"fmt"
	"image"

	"github.com/gogpu/gpufilter/gl"
)

// Framebuffer is an offscreen render target backed by its own RGBA8
// texture. The zero value is an invalid handle.
type Framebuffer struct {
	ctx     *Context
	valid   bool
	id      gl.Framebuffer
	texture Texture
}

// NewFramebuffer creates a width x height framebuffer with a color texture
// attached. If the driver reports the framebuffer incomplete, the partial
// objects are released and StatusFramebufferConstructionFailed is returned.
func (c *Context) NewFramebuffer(width, height int) (*Framebuffer, error) {
	f := c.gl
	id := f.CreateFramebuffer()
	if !id.Valid() {
		return nil, fmt.Errorf("%w: driver returned no framebuffer name", StatusFramebufferConstructionFailed)
	}
	f.BindFramebuffer(gl.FRAMEBUFFER, id)

	f.ActiveTexture(gl.TEXTURE0)
	tex := f.CreateTexture()
	f.BindTexture(gl.TEXTURE_2D, tex)
	setSamplerState(f)
	f.TexImage2D(gl.TEXTURE_2D, 0, int(gl.RGBA), width, height, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	f.BindTexture(gl.TEXTURE_2D, gl.Texture{})

	f.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, tex, 0)
	if st := f.CheckFramebufferStatus(gl.FRAMEBUFFER); st != gl.FRAMEBUFFER_COMPLETE {
		f.BindFramebuffer(gl.FRAMEBUFFER, gl.Framebuffer{})
		f.DeleteFramebuffer(id)
		if tex.Valid() {
			f.DeleteTexture(tex)
		}
		f.GetError()
		Logger().Warn("gpufilter: incomplete framebuffer", "width", width, "height", height, "status", st)
		return nil, fmt.Errorf("%w: %dx%d: %v", StatusFramebufferConstructionFailed, width, height, st)
	}

	Logger().Debug("gpufilter: framebuffer created", "id", id.V, "texture", tex.V, "width", width, "height", height)
	return &Framebuffer{
		ctx:   c,
		valid: true,
		id:    id,
		texture: Texture{
			ctx:    c,
			valid:  true,
			id:     tex,
			width:  width,
			height: height,
		},
	}, nil
}

// Valid reports whether fb is a live framebuffer.
func (fb *Framebuffer) Valid() bool {
	return fb != nil && fb.valid && fb.ctx != nil
}

// Destroy releases the framebuffer and its texture. Calling it again is a
// no-op.
func (fb *Framebuffer) Destroy() {
	if !fb.Valid() {
		return
	}
	fb.valid = false
	fb.texture.valid = false
	fb.ctx.gl.DeleteFramebuffer(fb.id)
	fb.ctx.gl.DeleteTexture(fb.texture.id)
	Logger().Debug("gpufilter: framebuffer destroyed", "id", fb.id.V)
}

// Texture returns a borrowed handle to the color texture, suitable as a
// Render source or for Program.SetTexture. The framebuffer keeps ownership:
// Destroy and Upload on the handle are rejected, and the handle becomes
// invalid when the framebuffer is destroyed.
func (fb *Framebuffer) Texture() *Texture {
	if fb == nil {
		return &Texture{}
	}
	t := fb.texture
	t.owner = fb
	return &t
}

// Width returns the framebuffer width in pixels.
func (fb *Framebuffer) Width() int {
	if fb == nil {
		return 0
	}
	return fb.texture.width
}

// Height returns the framebuffer height in pixels.
func (fb *Framebuffer) Height() int {
	if fb == nil {
		return 0
	}
	return fb.texture.height
}

// SizeInBytes returns the size of the RGBA contents, 4*width*height.
func (fb *Framebuffer) SizeInBytes() int {
	return 4 * fb.Width() * fb.Height()
}

// Contents reads the framebuffer into dst in the given format. It waits for
// all previously issued GPU work to finish first.
//
// Rows are written tightly packed. dst must hold
// width*height*format.BytesPerPixel() bytes; a short dst is rejected with
// StatusUnknownError before any driver call.
func (fb *Framebuffer) Contents(dst []byte, format ColorFormat) error {
	if !fb.Valid() {
		return StatusInvalidFramebuffer
	}
	w, h := fb.texture.width, fb.texture.height
	need := w * h * format.BytesPerPixel()
	if len(dst) < need {
		return fmt.Errorf("%w: buffer holds %d bytes, need %d", StatusUnknownError, len(dst), need)
	}

	f := fb.ctx.gl
	f.Flush()
	f.Finish()
	f.BindFramebuffer(gl.FRAMEBUFFER, fb.id)
	f.PixelStorei(gl.PACK_ALIGNMENT, 1)
	f.ReadPixels(dst[:need], 0, 0, w, h, format.glFormat(), gl.UNSIGNED_BYTE)
	if e := f.GetError(); e != gl.NO_ERROR {
		return fmt.Errorf("%w: read pixels: %v", StatusUnknownError, e)
	}
	return nil
}

// ReadPixels is Contents with a freshly allocated buffer.
func (fb *Framebuffer) ReadPixels(format ColorFormat) ([]byte, error) {
	if !fb.Valid() {
		return nil, StatusInvalidFramebuffer
	}
	buf := make([]byte, fb.Width()*fb.Height()*format.BytesPerPixel())
	if err := fb.Contents(buf, format); err != nil {
		return nil, err
	}
	return buf, nil
}

// Image returns the contents as an image whose first row is texture row 0.
func (fb *Framebuffer) Image() (*image.NRGBA, error) {
	pix, err := fb.ReadPixels(RGBA)
	if err != nil {
		return nil, err
	}
	return &image.NRGBA{
		Pix:    pix,
		Stride: 4 * fb.Width(),
		Rect:   image.Rect(0, 0, fb.Width(), fb.Height()),
	}, nil
}
