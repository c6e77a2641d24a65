package gpufilter

import (
	"fmt"
	"strings"

	"github.com/gogpu/gpufilter/gl"
)

// Fixed vertex attribute locations, bound before linking.
var (
	positionAttrib = gl.Attrib{V: 0}
	uvAttrib       = gl.Attrib{V: 1}
)

// MaxAdditionalTextures is the number of texture slots besides the primary
// input. Slot i is sampled from texture unit i+1.
const MaxAdditionalTextures = 7

// TextureSlot names an additional texture slot of a Program.
type TextureSlot int

const (
	SecondTexture TextureSlot = iota
	ThirdTexture
	FourthTexture
	FifthTexture
	SixthTexture
	SeventhTexture
	EighthTexture
)

func (s TextureSlot) valid() bool { return s >= SecondTexture && s <= EighthTexture }

// Unit returns the texture unit the slot is bound to during Render.
func (s TextureSlot) Unit() int { return int(s) + 1 }

func additionalSamplerName(i int) string { return fmt.Sprintf("texture%d", i+2) }

type additionalTexture struct {
	inUse   bool
	texture Texture
	uniform gl.Uniform
}

// Program is a linked vertex and fragment shader pair together with its
// texture bindings. The zero value is an invalid handle.
type Program struct {
	ctx        *Context
	valid      bool
	id         gl.Program
	primary    gl.Uniform
	additional [MaxAdditionalTextures]additionalTexture
}

// CompileProgram compiles and links a program from GLSL sources. Compile
// and link failures return StatusUnknownError wrapping the driver's info
// log; no driver objects survive a failure.
func (c *Context) CompileProgram(vertex, fragment string, opts ...ProgramOption) (*Program, error) {
	o := defaultProgramOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f := c.gl
	id := f.CreateProgram()
	if !id.Valid() {
		return nil, fmt.Errorf("%w: driver returned no program name", StatusUnknownError)
	}

	vs, err := c.compileShader(gl.VERTEX_SHADER, vertex)
	if err != nil {
		f.DeleteProgram(id)
		return nil, err
	}
	fs, err := c.compileShader(gl.FRAGMENT_SHADER, fragment)
	if err != nil {
		f.DeleteShader(vs)
		f.DeleteProgram(id)
		return nil, err
	}

	f.AttachShader(id, vs)
	f.AttachShader(id, fs)
	f.BindAttribLocation(id, positionAttrib, "inputPosition")
	f.BindAttribLocation(id, uvAttrib, "inputUV")
	f.LinkProgram(id)
	linked := f.GetProgrami(id, gl.LINK_STATUS) != gl.FALSE

	f.DetachShader(id, vs)
	f.DeleteShader(vs)
	f.DetachShader(id, fs)
	f.DeleteShader(fs)

	if !linked {
		msg := c.infoLog(f.GetProgrami(id, gl.INFO_LOG_LENGTH), func() string { return f.GetProgramInfoLog(id) })
		f.DeleteProgram(id)
		Logger().Warn("gpufilter: program link failed", "log", msg)
		return nil, fmt.Errorf("%w: link: %s", StatusUnknownError, msg)
	}

	p := &Program{ctx: c, valid: true, id: id}
	p.primary = f.GetUniformLocation(id, o.primary)
	for i := range p.additional {
		p.additional[i].uniform = f.GetUniformLocation(id, o.additional[i])
	}
	Logger().Debug("gpufilter: program linked", "id", id.V, "primary", p.primary.V)
	return p, nil
}

// compileShader returns a compiled shader or deletes it and reports the
// compile log.
func (c *Context) compileShader(ty gl.Enum, src string) (gl.Shader, error) {
	f := c.gl
	stage := "vertex"
	if ty == gl.FRAGMENT_SHADER {
		stage = "fragment"
	}
	s := f.CreateShader(ty)
	if !s.Valid() {
		return gl.Shader{}, fmt.Errorf("%w: driver returned no %s shader name", StatusUnknownError, stage)
	}
	f.ShaderSource(s, src)
	f.CompileShader(s)
	if f.GetShaderi(s, gl.COMPILE_STATUS) != gl.FALSE {
		return s, nil
	}
	msg := c.infoLog(f.GetShaderi(s, gl.INFO_LOG_LENGTH), func() string { return f.GetShaderInfoLog(s) })
	f.DeleteShader(s)
	Logger().Warn("gpufilter: shader compile failed", "stage", stage, "log", msg)
	return gl.Shader{}, fmt.Errorf("%w: compile %s shader: %s", StatusUnknownError, stage, msg)
}

// infoLog fetches a driver info log when one exists and forwards it to the
// log callback.
func (c *Context) infoLog(length int, fetch func() string) string {
	if length <= 0 {
		return "no info log"
	}
	msg := strings.TrimRight(fetch(), "\x00\n ")
	c.diagnostic(msg)
	return msg
}

// Valid reports whether p is a live program.
func (p *Program) Valid() bool {
	return p != nil && p.valid && p.ctx != nil
}

// Destroy deletes the program. Calling it again is a no-op.
func (p *Program) Destroy() {
	if !p.Valid() {
		return
	}
	p.valid = false
	p.ctx.gl.DeleteProgram(p.id)
	Logger().Debug("gpufilter: program destroyed", "id", p.id.V)
}

// ID returns the driver program name.
func (p *Program) ID() gl.Program {
	if p == nil {
		return gl.Program{}
	}
	return p.id
}

// SetTexture binds tex to an additional slot. The program keeps a copy of
// the handle taken now: a later Upload to tex changes what is sampled, but
// replacing or destroying tex is not observed until SetTexture is called
// again.
func (p *Program) SetTexture(slot TextureSlot, tex *Texture) error {
	if !p.Valid() {
		return StatusInvalidProgram
	}
	if !slot.valid() {
		return fmt.Errorf("%w: texture slot %d", StatusNoSuchParameter, slot)
	}
	if !tex.Valid() {
		return StatusInvalidTexture
	}
	p.additional[slot] = additionalTexture{
		inUse:   true,
		texture: *tex,
		uniform: p.additional[slot].uniform,
	}
	if !p.additional[slot].uniform.Valid() {
		Logger().Debug("gpufilter: texture slot has no sampler uniform", "program", p.id.V, "slot", int(slot))
	}
	return nil
}

// ClearTexture stops binding a texture to slot during Render.
func (p *Program) ClearTexture(slot TextureSlot) error {
	if !p.Valid() {
		return StatusInvalidProgram
	}
	if !slot.valid() {
		return fmt.Errorf("%w: texture slot %d", StatusNoSuchParameter, slot)
	}
	p.additional[slot].inUse = false
	p.additional[slot].texture = Texture{}
	return nil
}
