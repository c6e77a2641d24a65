// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gl

import "fmt"

// Enum is equivalent to GLenum.
type Enum uint32

// Object names. A zero value is never a live driver object.
type (
	Attrib      struct{ V uint32 }
	Buffer      struct{ V uint32 }
	Framebuffer struct{ V uint32 }
	Program     struct{ V uint32 }
	Shader      struct{ V uint32 }
	Texture     struct{ V uint32 }
	Uniform     struct{ V int32 }
)

// NoUniform is the location returned for names the program does not use.
var NoUniform = Uniform{V: -1}

func (b Buffer) Valid() bool      { return b.V != 0 }
func (f Framebuffer) Valid() bool { return f.V != 0 }
func (p Program) Valid() bool     { return p.V != 0 }
func (s Shader) Valid() bool      { return s.V != 0 }
func (t Texture) Valid() bool     { return t.V != 0 }

// Valid reports whether u names an active uniform.
func (u Uniform) Valid() bool { return u.V != -1 }

// String returns the symbolic name for the enums gpufilter uses and a hex
// literal otherwise.
func (e Enum) String() string {
	if name, ok := enumNames[e]; ok {
		return name
	}
	if e >= TEXTURE0 && e <= TEXTURE31 {
		return fmt.Sprintf("TEXTURE%d", e-TEXTURE0)
	}
	return fmt.Sprintf("0x%04x", uint32(e))
}
