package gpufilter

import (
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/gpufilter/gl"
)

// Context binds gpufilter to one driver. It is not safe for concurrent use;
// the GL context behind fns must be current on the calling thread for every
// call.
type Context struct {
	gl      gl.Functions
	options contextOptions

	// Full-screen quad buffers, set up once by ConfigureRenderingPipeline.
	configured bool
	quad       [2]gl.Buffer
}

// NewContext wraps fns. It issues no driver calls.
func NewContext(fns gl.Functions, opts ...Option) *Context {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Context{gl: fns, options: o}
}

// Functions returns the driver the context was created with.
func (c *Context) Functions() gl.Functions { return c.gl }

// Platform returns the shader variant used by CompileDefaultProgram.
func (c *Context) Platform() Platform { return c.options.platform }

// Release deletes the quad buffers created by ConfigureRenderingPipeline.
// Textures, framebuffers and programs are owned by the caller and are not
// touched. A later Render configures the pipeline again.
func (c *Context) Release() {
	if !c.configured {
		return
	}
	for _, b := range c.quad {
		c.gl.DeleteBuffer(b)
	}
	c.quad = [2]gl.Buffer{}
	c.configured = false
}

// diagnostic forwards shader diagnostics to the log callback, if any.
func (c *Context) diagnostic(msg string) {
	if c.options.logFunc != nil {
		c.options.logFunc(msg)
	}
}

// NewTextureFromRGBA implements gpucontext.TextureCreator.
func (c *Context) NewTextureFromRGBA(width, height int, data []byte) (gpucontext.Texture, error) {
	t, err := c.NewTextureWithData(width, height, RGBA, data)
	if err != nil {
		return nil, err
	}
	return t, nil
}

var _ gpucontext.TextureCreator = (*Context)(nil)
