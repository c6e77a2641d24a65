// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package soft provides a software implementation of gl.Functions.
//
// It backs the opt-in "software" backend and the package tests. Device
// keeps every driver object in memory, records each call in a log and raises
// GL errors the way a conforming driver would for the calls gpufilter makes.
// Shaders are not executed: compilation only checks that the source is
// non-empty and free of "#error" directives, and every draw samples the
// texture bound to unit 0 into the bound framebuffer with nearest filtering.
// That is exactly what the pass-through program does, which is enough to
// verify upload, render and readback end to end.
package soft

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/gogpu/gpufilter/gl"
)

// Device is an in-memory driver. The zero value is not usable; call New.
type Device struct {
	// FailLink makes every LinkProgram call fail.
	FailLink bool

	// IncompleteFramebuffers makes CheckFramebufferStatus report
	// FRAMEBUFFER_UNSUPPORTED for every framebuffer.
	IncompleteFramebuffers bool

	// MaxShaders caps the number of live shader objects. CreateShader
	// returns the zero Shader once the cap is reached. Zero means no cap.
	MaxShaders int

	calls []string
	err   gl.Enum
	next  uint32

	textures     map[uint32]*texture
	framebuffers map[uint32]*framebuffer
	shaders      map[uint32]*shader
	programs     map[uint32]*program
	buffers      map[uint32][]byte

	activeUnit  int
	units       [32]uint32
	framebuffer uint32
	arrayBuffer uint32
	current     uint32
	viewport    [4]int
	unpackAlign int
	packAlign   int
	disabled    map[gl.Enum]bool
	attribs     map[uint32]attrib
	draws       int
}

type texture struct {
	width, height int
	pix           []byte // RGBA, row 0 first
	params        map[gl.Enum]int
}

type framebuffer struct {
	color uint32
}

type shader struct {
	ty       gl.Enum
	src      string
	compiled bool
	log      string
}

type program struct {
	attached map[uint32]bool
	attribs  map[string]uint32
	linked   bool
	log      string
	uniforms map[string]int32
	floats   map[int32][]float32
	ints     map[int32][]int32
}

type attrib struct {
	enabled bool
	buffer  uint32
	size    int
	ty      gl.Enum
	stride  int
	offset  int
}

// New returns an empty device.
func New() *Device {
	return &Device{
		textures:     make(map[uint32]*texture),
		framebuffers: make(map[uint32]*framebuffer),
		shaders:      make(map[uint32]*shader),
		programs:     make(map[uint32]*program),
		buffers:      make(map[uint32][]byte),
		disabled:     make(map[gl.Enum]bool),
		attribs:      make(map[uint32]attrib),
		unpackAlign:  4,
		packAlign:    4,
	}
}

var _ gl.Functions = (*Device)(nil)

func (d *Device) record(format string, args ...any) {
	d.calls = append(d.calls, fmt.Sprintf(format, args...))
}

// setError keeps the first error until GetError clears it, like GL does.
func (d *Device) setError(e gl.Enum) {
	if d.err == gl.NO_ERROR {
		d.err = e
	}
}

func (d *Device) name() uint32 {
	d.next++
	return d.next
}

// Calls returns the log of driver calls since New or the last ResetCalls.
func (d *Device) Calls() []string {
	return slices.Clone(d.calls)
}

// CallsWithPrefix returns the logged calls that start with prefix.
func (d *Device) CallsWithPrefix(prefix string) []string {
	var out []string
	for _, c := range d.calls {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}

// ResetCalls clears the call log.
func (d *Device) ResetCalls() { d.calls = d.calls[:0] }

// Draws returns the number of DrawArrays calls that reached the rasterizer.
func (d *Device) Draws() int { return d.draws }

func (d *Device) LiveTextures() int     { return len(d.textures) }
func (d *Device) LiveFramebuffers() int { return len(d.framebuffers) }
func (d *Device) LiveShaders() int      { return len(d.shaders) }
func (d *Device) LivePrograms() int     { return len(d.programs) }
func (d *Device) LiveBuffers() int      { return len(d.buffers) }

// TexturePixels returns a copy of a texture's RGBA storage.
func (d *Device) TexturePixels(t gl.Texture) (width, height int, pix []byte) {
	tex, ok := d.textures[t.V]
	if !ok {
		return 0, 0, nil
	}
	return tex.width, tex.height, slices.Clone(tex.pix)
}

// TextureParameter returns a sampler parameter set with TexParameteri.
func (d *Device) TextureParameter(t gl.Texture, pname gl.Enum) (int, bool) {
	tex, ok := d.textures[t.V]
	if !ok {
		return 0, false
	}
	v, ok := tex.params[pname]
	return v, ok
}

// AttribLocation returns the location bound with BindAttribLocation.
func (d *Device) AttribLocation(p gl.Program, name string) (uint32, bool) {
	prog, ok := d.programs[p.V]
	if !ok {
		return 0, false
	}
	loc, ok := prog.attribs[name]
	return loc, ok
}

// UniformFloats returns the float data last pushed to a uniform.
func (d *Device) UniformFloats(p gl.Program, name string) []float32 {
	prog, ok := d.programs[p.V]
	if !ok {
		return nil
	}
	loc, ok := prog.uniforms[name]
	if !ok {
		return nil
	}
	return slices.Clone(prog.floats[loc])
}

// UniformInts returns the integer data last pushed to a uniform.
func (d *Device) UniformInts(p gl.Program, name string) []int32 {
	prog, ok := d.programs[p.V]
	if !ok {
		return nil
	}
	loc, ok := prog.uniforms[name]
	if !ok {
		return nil
	}
	return slices.Clone(prog.ints[loc])
}

// IsDisabled reports whether a capability was turned off with Disable.
func (d *Device) IsDisabled(capability gl.Enum) bool { return d.disabled[capability] }

// AttribEnabled reports whether the attribute array is enabled and sourced
// from a buffer holding at least one vertex.
func (d *Device) AttribEnabled(index uint32) bool {
	a := d.attribs[index]
	return a.enabled && len(d.buffers[a.buffer]) > 0
}

// CurrentViewport returns the last viewport rectangle.
func (d *Device) CurrentViewport() [4]int { return d.viewport }

// ActiveUnit returns the active texture unit index.
func (d *Device) ActiveUnit() int { return d.activeUnit }

func (d *Device) ActiveTexture(unit gl.Enum) {
	d.record("ActiveTexture(%v)", unit)
	if unit < gl.TEXTURE0 || unit > gl.TEXTURE31 {
		d.setError(gl.INVALID_ENUM)
		return
	}
	d.activeUnit = int(unit - gl.TEXTURE0)
}

func (d *Device) AttachShader(p gl.Program, s gl.Shader) {
	d.record("AttachShader(%d, %d)", p.V, s.V)
	prog, ok := d.programs[p.V]
	if !ok || d.shaders[s.V] == nil {
		d.setError(gl.INVALID_VALUE)
		return
	}
	prog.attached[s.V] = true
}

func (d *Device) BindAttribLocation(p gl.Program, a gl.Attrib, name string) {
	d.record("BindAttribLocation(%d, %d, %s)", p.V, a.V, name)
	prog, ok := d.programs[p.V]
	if !ok {
		d.setError(gl.INVALID_VALUE)
		return
	}
	prog.attribs[name] = a.V
}

func (d *Device) BindBuffer(target gl.Enum, b gl.Buffer) {
	d.record("BindBuffer(%v, %d)", target, b.V)
	if target != gl.ARRAY_BUFFER {
		d.setError(gl.INVALID_ENUM)
		return
	}
	if _, ok := d.buffers[b.V]; !ok && b.V != 0 {
		d.setError(gl.INVALID_OPERATION)
		return
	}
	d.arrayBuffer = b.V
}

func (d *Device) BindFramebuffer(target gl.Enum, fb gl.Framebuffer) {
	d.record("BindFramebuffer(%v, %d)", target, fb.V)
	if target != gl.FRAMEBUFFER {
		d.setError(gl.INVALID_ENUM)
		return
	}
	if _, ok := d.framebuffers[fb.V]; !ok && fb.V != 0 {
		d.setError(gl.INVALID_OPERATION)
		return
	}
	d.framebuffer = fb.V
}

func (d *Device) BindTexture(target gl.Enum, t gl.Texture) {
	d.record("BindTexture(%v, %d)", target, t.V)
	if target != gl.TEXTURE_2D {
		d.setError(gl.INVALID_ENUM)
		return
	}
	if _, ok := d.textures[t.V]; !ok && t.V != 0 {
		d.setError(gl.INVALID_OPERATION)
		return
	}
	d.units[d.activeUnit] = t.V
}

func (d *Device) BufferData(target gl.Enum, src []byte, usage gl.Enum) {
	d.record("BufferData(%v, %d bytes, %v)", target, len(src), usage)
	if target != gl.ARRAY_BUFFER {
		d.setError(gl.INVALID_ENUM)
		return
	}
	if d.arrayBuffer == 0 {
		d.setError(gl.INVALID_OPERATION)
		return
	}
	d.buffers[d.arrayBuffer] = slices.Clone(src)
}

func (d *Device) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	d.record("CheckFramebufferStatus(%v)", target)
	if d.framebuffer == 0 {
		return gl.FRAMEBUFFER_COMPLETE
	}
	if d.IncompleteFramebuffers {
		return gl.FRAMEBUFFER_UNSUPPORTED
	}
	tex, ok := d.textures[d.framebuffers[d.framebuffer].color]
	if !ok || tex.width == 0 || tex.height == 0 {
		return gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT
	}
	return gl.FRAMEBUFFER_COMPLETE
}

func (d *Device) CompileShader(s gl.Shader) {
	d.record("CompileShader(%d)", s.V)
	sh, ok := d.shaders[s.V]
	if !ok {
		d.setError(gl.INVALID_VALUE)
		return
	}
	switch {
	case strings.TrimSpace(sh.src) == "":
		sh.compiled = false
		sh.log = "0:0: error: empty shader source"
	case strings.Contains(sh.src, "#error"):
		sh.compiled = false
		sh.log = "0:1: error: #error directive"
	default:
		sh.compiled = true
		sh.log = ""
	}
}

func (d *Device) CreateBuffer() gl.Buffer {
	n := d.name()
	d.buffers[n] = nil
	d.record("CreateBuffer() = %d", n)
	return gl.Buffer{V: n}
}

func (d *Device) CreateFramebuffer() gl.Framebuffer {
	n := d.name()
	d.framebuffers[n] = &framebuffer{}
	d.record("CreateFramebuffer() = %d", n)
	return gl.Framebuffer{V: n}
}

func (d *Device) CreateProgram() gl.Program {
	n := d.name()
	d.programs[n] = &program{
		attached: make(map[uint32]bool),
		attribs:  make(map[string]uint32),
		uniforms: make(map[string]int32),
		floats:   make(map[int32][]float32),
		ints:     make(map[int32][]int32),
	}
	d.record("CreateProgram() = %d", n)
	return gl.Program{V: n}
}

func (d *Device) CreateShader(ty gl.Enum) gl.Shader {
	if ty != gl.VERTEX_SHADER && ty != gl.FRAGMENT_SHADER {
		d.record("CreateShader(%v) = 0", ty)
		d.setError(gl.INVALID_ENUM)
		return gl.Shader{}
	}
	if d.MaxShaders > 0 && len(d.shaders) >= d.MaxShaders {
		d.record("CreateShader(%v) = 0", ty)
		d.setError(gl.OUT_OF_MEMORY)
		return gl.Shader{}
	}
	n := d.name()
	d.shaders[n] = &shader{ty: ty}
	d.record("CreateShader(%v) = %d", ty, n)
	return gl.Shader{V: n}
}

func (d *Device) CreateTexture() gl.Texture {
	n := d.name()
	d.textures[n] = &texture{params: make(map[gl.Enum]int)}
	d.record("CreateTexture() = %d", n)
	return gl.Texture{V: n}
}

func (d *Device) DeleteBuffer(b gl.Buffer) {
	d.record("DeleteBuffer(%d)", b.V)
	delete(d.buffers, b.V)
	if d.arrayBuffer == b.V {
		d.arrayBuffer = 0
	}
}

func (d *Device) DeleteFramebuffer(fb gl.Framebuffer) {
	d.record("DeleteFramebuffer(%d)", fb.V)
	delete(d.framebuffers, fb.V)
	if d.framebuffer == fb.V {
		d.framebuffer = 0
	}
}

func (d *Device) DeleteProgram(p gl.Program) {
	d.record("DeleteProgram(%d)", p.V)
	delete(d.programs, p.V)
	if d.current == p.V {
		d.current = 0
	}
}

func (d *Device) DeleteShader(s gl.Shader) {
	d.record("DeleteShader(%d)", s.V)
	delete(d.shaders, s.V)
}

func (d *Device) DeleteTexture(t gl.Texture) {
	d.record("DeleteTexture(%d)", t.V)
	delete(d.textures, t.V)
	for i, u := range d.units {
		if u == t.V {
			d.units[i] = 0
		}
	}
}

func (d *Device) DetachShader(p gl.Program, s gl.Shader) {
	d.record("DetachShader(%d, %d)", p.V, s.V)
	prog, ok := d.programs[p.V]
	if !ok || !prog.attached[s.V] {
		d.setError(gl.INVALID_OPERATION)
		return
	}
	delete(prog.attached, s.V)
}

func (d *Device) Disable(capability gl.Enum) {
	d.record("Disable(%v)", capability)
	d.disabled[capability] = true
}

func (d *Device) DrawArrays(mode gl.Enum, first, count int) {
	d.record("DrawArrays(%v, %d, %d)", mode, first, count)
	prog, ok := d.programs[d.current]
	if !ok || !prog.linked {
		d.setError(gl.INVALID_OPERATION)
		return
	}
	d.draws++
	if d.framebuffer == 0 {
		return
	}
	dst, ok := d.textures[d.framebuffers[d.framebuffer].color]
	if !ok {
		d.setError(gl.INVALID_FRAMEBUFFER_OPERATION)
		return
	}
	src, ok := d.textures[d.units[0]]
	if !ok || src.width == 0 || src.height == 0 {
		return
	}
	vx, vy, vw, vh := d.viewport[0], d.viewport[1], d.viewport[2], d.viewport[3]
	if vw <= 0 || vh <= 0 {
		return
	}
	for y := max(vy, 0); y < min(vy+vh, dst.height); y++ {
		sy := ((y-vy)*src.height + src.height/2) / vh
		sy = min(sy, src.height-1)
		for x := max(vx, 0); x < min(vx+vw, dst.width); x++ {
			sx := ((x-vx)*src.width + src.width/2) / vw
			sx = min(sx, src.width-1)
			si := (sy*src.width + sx) * 4
			di := (y*dst.width + x) * 4
			copy(dst.pix[di:di+4], src.pix[si:si+4])
		}
	}
}

func (d *Device) EnableVertexAttribArray(a gl.Attrib) {
	d.record("EnableVertexAttribArray(%d)", a.V)
	at := d.attribs[a.V]
	at.enabled = true
	d.attribs[a.V] = at
}

func (d *Device) Finish() { d.record("Finish()") }
func (d *Device) Flush()  { d.record("Flush()") }

func (d *Device) FramebufferTexture2D(target, attachment, texTarget gl.Enum, t gl.Texture, level int) {
	d.record("FramebufferTexture2D(%v, %v, %v, %d, %d)", target, attachment, texTarget, t.V, level)
	if target != gl.FRAMEBUFFER || attachment != gl.COLOR_ATTACHMENT0 || texTarget != gl.TEXTURE_2D {
		d.setError(gl.INVALID_ENUM)
		return
	}
	if d.framebuffer == 0 {
		d.setError(gl.INVALID_OPERATION)
		return
	}
	d.framebuffers[d.framebuffer].color = t.V
}

func (d *Device) GetError() gl.Enum {
	e := d.err
	d.err = gl.NO_ERROR
	return e
}

func (d *Device) GetProgrami(p gl.Program, pname gl.Enum) int {
	prog, ok := d.programs[p.V]
	if !ok {
		d.setError(gl.INVALID_VALUE)
		return 0
	}
	switch pname {
	case gl.LINK_STATUS:
		if prog.linked {
			return gl.TRUE
		}
		return gl.FALSE
	case gl.INFO_LOG_LENGTH:
		if prog.log == "" {
			return 0
		}
		return len(prog.log) + 1
	}
	d.setError(gl.INVALID_ENUM)
	return 0
}

func (d *Device) GetProgramInfoLog(p gl.Program) string {
	if prog, ok := d.programs[p.V]; ok {
		return prog.log
	}
	return ""
}

func (d *Device) GetShaderi(s gl.Shader, pname gl.Enum) int {
	sh, ok := d.shaders[s.V]
	if !ok {
		d.setError(gl.INVALID_VALUE)
		return 0
	}
	switch pname {
	case gl.COMPILE_STATUS:
		if sh.compiled {
			return gl.TRUE
		}
		return gl.FALSE
	case gl.INFO_LOG_LENGTH:
		if sh.log == "" {
			return 0
		}
		return len(sh.log) + 1
	}
	d.setError(gl.INVALID_ENUM)
	return 0
}

func (d *Device) GetShaderInfoLog(s gl.Shader) string {
	if sh, ok := d.shaders[s.V]; ok {
		return sh.log
	}
	return ""
}

func (d *Device) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	d.record("GetUniformLocation(%d, %s)", p.V, name)
	prog, ok := d.programs[p.V]
	if !ok || !prog.linked {
		d.setError(gl.INVALID_OPERATION)
		return gl.NoUniform
	}
	name = strings.TrimSuffix(name, "[0]")
	if loc, ok := prog.uniforms[name]; ok {
		return gl.Uniform{V: loc}
	}
	return gl.NoUniform
}

// uniformDecl matches GLSL uniform declarations, with or without a layout
// qualifier, precision qualifier or array suffix.
var uniformDecl = regexp.MustCompile(`(?m)(?:layout\s*\([^)]*\)\s*)?\buniform\s+(?:(?:lowp|mediump|highp)\s+)?\w+\s+(\w+)\s*(?:\[\s*\d*\s*\])?\s*;`)

func (d *Device) LinkProgram(p gl.Program) {
	d.record("LinkProgram(%d)", p.V)
	prog, ok := d.programs[p.V]
	if !ok {
		d.setError(gl.INVALID_VALUE)
		return
	}
	prog.linked = false
	prog.uniforms = make(map[string]int32)
	var stages []*shader
	for id := range prog.attached {
		if sh, ok := d.shaders[id]; ok {
			stages = append(stages, sh)
		}
	}
	slices.SortFunc(stages, func(a, b *shader) int { return int(b.ty) - int(a.ty) })
	var vertex, fragment bool
	for _, sh := range stages {
		if !sh.compiled {
			prog.log = "error: attached shader not compiled"
			return
		}
		vertex = vertex || sh.ty == gl.VERTEX_SHADER
		fragment = fragment || sh.ty == gl.FRAGMENT_SHADER
	}
	if !vertex || !fragment {
		prog.log = "error: program needs a vertex and a fragment shader"
		return
	}
	if d.FailLink {
		prog.log = "error: linking disabled"
		return
	}
	var loc int32
	for _, sh := range stages {
		for _, m := range uniformDecl.FindAllStringSubmatch(sh.src, -1) {
			if _, dup := prog.uniforms[m[1]]; !dup {
				prog.uniforms[m[1]] = loc
				loc++
			}
		}
	}
	prog.linked = true
	prog.log = ""
}

func (d *Device) PixelStorei(pname gl.Enum, param int) {
	d.record("PixelStorei(%v, %d)", pname, param)
	switch param {
	case 1, 2, 4, 8:
	default:
		d.setError(gl.INVALID_VALUE)
		return
	}
	switch pname {
	case gl.UNPACK_ALIGNMENT:
		d.unpackAlign = param
	case gl.PACK_ALIGNMENT:
		d.packAlign = param
	default:
		d.setError(gl.INVALID_ENUM)
	}
}

// rowLayout returns the row stride and the minimum client buffer size for a
// width x height image of bpp-byte pixels whose rows start on align bytes.
func rowLayout(width, height, bpp, align int) (stride, size int) {
	row := width * bpp
	stride = (row + align - 1) / align * align
	if height == 0 || width == 0 {
		return stride, 0
	}
	return stride, stride*(height-1) + row
}

func (d *Device) ReadPixels(dst []byte, x, y, width, height int, format, ty gl.Enum) {
	d.record("ReadPixels(%d, %d, %d, %d, %v, %v)", x, y, width, height, format, ty)
	bpp, ok := bytesPerPixel(format)
	if !ok || ty != gl.UNSIGNED_BYTE {
		d.setError(gl.INVALID_ENUM)
		return
	}
	if width < 0 || height < 0 {
		d.setError(gl.INVALID_VALUE)
		return
	}
	fb, ok := d.framebuffers[d.framebuffer]
	if !ok {
		d.setError(gl.INVALID_OPERATION)
		return
	}
	src, ok := d.textures[fb.color]
	if !ok {
		d.setError(gl.INVALID_FRAMEBUFFER_OPERATION)
		return
	}
	stride, size := rowLayout(width, height, bpp, d.packAlign)
	if len(dst) < size {
		d.setError(gl.INVALID_OPERATION)
		return
	}
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			sx, sy := x+col, y+row
			if sx < 0 || sy < 0 || sx >= src.width || sy >= src.height {
				continue
			}
			si := (sy*src.width + sx) * 4
			di := row*stride + col*bpp
			fromRGBA(dst[di:di+bpp], src.pix[si:si+4], format)
		}
	}
}

func (d *Device) ShaderSource(s gl.Shader, src string) {
	d.record("ShaderSource(%d)", s.V)
	sh, ok := d.shaders[s.V]
	if !ok {
		d.setError(gl.INVALID_VALUE)
		return
	}
	sh.src = src
}

func (d *Device) TexImage2D(target gl.Enum, level int, internalFormat int, width, height int, format, ty gl.Enum, data []byte) {
	d.record("TexImage2D(%v, %d, %v, %d, %d, %v, %v)", target, level, gl.Enum(internalFormat), width, height, format, ty)
	if target != gl.TEXTURE_2D {
		d.setError(gl.INVALID_ENUM)
		return
	}
	bpp, ok := bytesPerPixel(format)
	if !ok || ty != gl.UNSIGNED_BYTE {
		d.setError(gl.INVALID_ENUM)
		return
	}
	if gl.Enum(internalFormat) != gl.RGBA && gl.Enum(internalFormat) != gl.RGB {
		d.setError(gl.INVALID_VALUE)
		return
	}
	if width < 0 || height < 0 || level != 0 {
		d.setError(gl.INVALID_VALUE)
		return
	}
	tex, ok := d.textures[d.units[d.activeUnit]]
	if !ok {
		d.setError(gl.INVALID_OPERATION)
		return
	}
	stride, size := rowLayout(width, height, bpp, d.unpackAlign)
	if data != nil && len(data) < size {
		d.setError(gl.INVALID_OPERATION)
		return
	}
	tex.width, tex.height = width, height
	tex.pix = make([]byte, width*height*4)
	if data == nil {
		return
	}
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			di := (row*width + col) * 4
			si := row*stride + col*bpp
			toRGBA(tex.pix[di:di+4], data[si:si+bpp], format)
		}
	}
}

func (d *Device) TexParameteri(target, pname gl.Enum, param int) {
	d.record("TexParameteri(%v, %v, %v)", target, pname, gl.Enum(param))
	tex, ok := d.textures[d.units[d.activeUnit]]
	if target != gl.TEXTURE_2D || !ok {
		d.setError(gl.INVALID_OPERATION)
		return
	}
	tex.params[pname] = param
}

// uniformTarget returns the current program when dst can receive data.
// Location -1 is silently ignored, as in GL.
func (d *Device) uniformTarget(dst gl.Uniform) (*program, bool) {
	prog, ok := d.programs[d.current]
	if !ok || !prog.linked {
		d.setError(gl.INVALID_OPERATION)
		return nil, false
	}
	if dst.V < 0 {
		return nil, false
	}
	return prog, true
}

func (d *Device) setFloats(name string, dst gl.Uniform, v []float32) {
	d.record("%s(%d, %v)", name, dst.V, v)
	if prog, ok := d.uniformTarget(dst); ok {
		prog.floats[dst.V] = slices.Clone(v)
		delete(prog.ints, dst.V)
	}
}

func (d *Device) setInts(name string, dst gl.Uniform, v []int32) {
	d.record("%s(%d, %v)", name, dst.V, v)
	if prog, ok := d.uniformTarget(dst); ok {
		prog.ints[dst.V] = slices.Clone(v)
		delete(prog.floats, dst.V)
	}
}

func (d *Device) Uniform1f(dst gl.Uniform, v float32) {
	d.setFloats("Uniform1f", dst, []float32{v})
}

func (d *Device) Uniform2f(dst gl.Uniform, v0, v1 float32) {
	d.setFloats("Uniform2f", dst, []float32{v0, v1})
}

func (d *Device) Uniform3f(dst gl.Uniform, v0, v1, v2 float32) {
	d.setFloats("Uniform3f", dst, []float32{v0, v1, v2})
}

func (d *Device) Uniform4f(dst gl.Uniform, v0, v1, v2, v3 float32) {
	d.setFloats("Uniform4f", dst, []float32{v0, v1, v2, v3})
}

func (d *Device) Uniform1i(dst gl.Uniform, v int) {
	d.setInts("Uniform1i", dst, []int32{int32(v)})
}

func (d *Device) Uniform2i(dst gl.Uniform, v0, v1 int) {
	d.setInts("Uniform2i", dst, []int32{int32(v0), int32(v1)})
}

func (d *Device) Uniform3i(dst gl.Uniform, v0, v1, v2 int32) {
	d.setInts("Uniform3i", dst, []int32{v0, v1, v2})
}

func (d *Device) Uniform4i(dst gl.Uniform, v0, v1, v2, v3 int32) {
	d.setInts("Uniform4i", dst, []int32{v0, v1, v2, v3})
}

func (d *Device) Uniform1fv(dst gl.Uniform, src []float32) { d.setFloats("Uniform1fv", dst, src) }
func (d *Device) Uniform2fv(dst gl.Uniform, src []float32) { d.setFloats("Uniform2fv", dst, src) }
func (d *Device) Uniform3fv(dst gl.Uniform, src []float32) { d.setFloats("Uniform3fv", dst, src) }
func (d *Device) Uniform4fv(dst gl.Uniform, src []float32) { d.setFloats("Uniform4fv", dst, src) }
func (d *Device) Uniform1iv(dst gl.Uniform, src []int32)   { d.setInts("Uniform1iv", dst, src) }
func (d *Device) Uniform2iv(dst gl.Uniform, src []int32)   { d.setInts("Uniform2iv", dst, src) }
func (d *Device) Uniform3iv(dst gl.Uniform, src []int32)   { d.setInts("Uniform3iv", dst, src) }
func (d *Device) Uniform4iv(dst gl.Uniform, src []int32)   { d.setInts("Uniform4iv", dst, src) }

func (d *Device) UniformMatrix2fv(dst gl.Uniform, src []float32) {
	d.setFloats("UniformMatrix2fv", dst, src)
}

func (d *Device) UniformMatrix3fv(dst gl.Uniform, src []float32) {
	d.setFloats("UniformMatrix3fv", dst, src)
}

func (d *Device) UniformMatrix4fv(dst gl.Uniform, src []float32) {
	d.setFloats("UniformMatrix4fv", dst, src)
}

func (d *Device) UseProgram(p gl.Program) {
	d.record("UseProgram(%d)", p.V)
	if prog, ok := d.programs[p.V]; p.V != 0 && (!ok || !prog.linked) {
		d.setError(gl.INVALID_OPERATION)
		return
	}
	d.current = p.V
}

func (d *Device) VertexAttribPointer(a gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	d.record("VertexAttribPointer(%d, %d, %v, %t, %d, %d)", a.V, size, ty, normalized, stride, offset)
	if d.arrayBuffer == 0 {
		d.setError(gl.INVALID_OPERATION)
		return
	}
	at := d.attribs[a.V]
	at.buffer, at.size, at.ty, at.stride, at.offset = d.arrayBuffer, size, ty, stride, offset
	d.attribs[a.V] = at
}

func (d *Device) Viewport(x, y, width, height int) {
	d.record("Viewport(%d, %d, %d, %d)", x, y, width, height)
	d.viewport = [4]int{x, y, width, height}
}

func bytesPerPixel(format gl.Enum) (int, bool) {
	switch format {
	case gl.RGB:
		return 3, true
	case gl.RGBA, gl.BGRA:
		return 4, true
	}
	return 0, false
}

func toRGBA(dst, src []byte, format gl.Enum) {
	switch format {
	case gl.RGB:
		dst[0], dst[1], dst[2], dst[3] = src[0], src[1], src[2], 0xff
	case gl.BGRA:
		dst[0], dst[1], dst[2], dst[3] = src[2], src[1], src[0], src[3]
	default:
		copy(dst, src[:4])
	}
}

func fromRGBA(dst, src []byte, format gl.Enum) {
	switch format {
	case gl.RGB:
		dst[0], dst[1], dst[2] = src[0], src[1], src[2]
	case gl.BGRA:
		dst[0], dst[1], dst[2], dst[3] = src[2], src[1], src[0], src[3]
	default:
		copy(dst, src[:4])
	}
}
