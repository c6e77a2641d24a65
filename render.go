package gpufilter

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/mobile/exp/f32"

	"github.com/gogpu/gpufilter/gl"
)

// Full-screen quad as a triangle strip, with texture coordinates that put
// texture row 0 at the bottom of clip space.
var (
	quadPositions = f32.Bytes(binary.LittleEndian,
		-1, -1,
		1, -1,
		-1, 1,
		1, 1,
	)
	quadUVs = f32.Bytes(binary.LittleEndian,
		0, 0,
		1, 0,
		0, 1,
		1, 1,
	)
)

// ConfigureRenderingPipeline disables face culling and depth testing and
// uploads the full-screen quad into attributes 0 (inputPosition) and 1
// (inputUV). The state is assumed to stay bound for the life of the GL
// context. Only the first call does any work; Render calls it when the
// caller has not.
func (c *Context) ConfigureRenderingPipeline() error {
	if c.configured {
		return nil
	}
	f := c.gl
	f.Disable(gl.CULL_FACE)
	f.Disable(gl.DEPTH_TEST)

	for i, data := range [2][]byte{quadPositions, quadUVs} {
		attr := gl.Attrib{V: uint32(i)}
		b := f.CreateBuffer()
		f.BindBuffer(gl.ARRAY_BUFFER, b)
		f.BufferData(gl.ARRAY_BUFFER, data, gl.STATIC_DRAW)
		f.VertexAttribPointer(attr, 2, gl.FLOAT, false, 0, 0)
		f.EnableVertexAttribArray(attr)
		c.quad[i] = b
	}
	if e := f.GetError(); e != gl.NO_ERROR {
		for _, b := range c.quad {
			f.DeleteBuffer(b)
		}
		c.quad = [2]gl.Buffer{}
		return fmt.Errorf("%w: configure pipeline: %v", StatusUnknownError, e)
	}
	c.configured = true
	Logger().Debug("gpufilter: rendering pipeline configured")
	return nil
}

// Render draws src through p into dst. Handles are checked in the order
// texture, framebuffer, program, and the first invalid one determines the
// status. Unit 0 carries src; each in-use additional slot i is bound to unit
// i+1.
func (c *Context) Render(src *Texture, dst *Framebuffer, p *Program) error {
	if !src.Valid() {
		return StatusInvalidTexture
	}
	if !dst.Valid() {
		return StatusInvalidFramebuffer
	}
	if !p.Valid() {
		return StatusInvalidProgram
	}
	if err := c.ConfigureRenderingPipeline(); err != nil {
		return err
	}

	f := c.gl
	f.BindFramebuffer(gl.FRAMEBUFFER, dst.id)
	f.Viewport(0, 0, dst.texture.width, dst.texture.height)

	f.UseProgram(p.id)
	f.Uniform1i(p.primary, 0)
	f.ActiveTexture(gl.TEXTURE0)
	f.BindTexture(gl.TEXTURE_2D, src.id)

	for i, at := range p.additional {
		if !at.inUse {
			continue
		}
		f.Uniform1i(at.uniform, i+1)
		f.ActiveTexture(gl.TEXTURE0 + gl.Enum(i+1))
		f.BindTexture(gl.TEXTURE_2D, at.texture.id)
	}

	f.ActiveTexture(gl.TEXTURE0)
	f.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	return nil
}

// RenderFramebuffer renders the texture of src into dst.
func (c *Context) RenderFramebuffer(src, dst *Framebuffer, p *Program) error {
	if !src.Valid() {
		return StatusInvalidFramebuffer
	}
	return c.Render(&src.texture, dst, p)
}
