package gpufilter

import "runtime"

// Platform selects between the desktop and mobile variants of the default
// pass-through shaders.
type Platform uint8

const (
	Desktop Platform = iota
	Mobile
)

func (p Platform) String() string {
	if p == Mobile {
		return "mobile"
	}
	return "desktop"
}

// DefaultPlatform returns Mobile on iOS and Android and Desktop elsewhere.
func DefaultPlatform() Platform {
	switch runtime.GOOS {
	case "ios", "android":
		return Mobile
	}
	return Desktop
}

const defaultVertexShader = `attribute vec4 inputPosition;
attribute vec4 inputUV;

varying vec2 uv;

void main() {
    gl_Position = inputPosition;
    uv = inputUV.xy;
}
`

const desktopFragmentShader = `varying vec2 uv;

uniform sampler2D texture;

void main() {
    gl_FragColor = texture2D(texture, uv);
}
`

// GLSL ES has no default float precision in fragment shaders.
const mobileFragmentShader = `varying highp vec2 uv;

uniform sampler2D texture;

void main() {
    gl_FragColor = texture2D(texture, uv);
}
`

// DefaultVertexShader returns the pass-through vertex shader. It forwards
// inputPosition and hands inputUV to the fragment stage as uv. Both
// platforms share the same source.
func DefaultVertexShader(Platform) string {
	return defaultVertexShader
}

// DefaultFragmentShader returns the pass-through fragment shader that
// samples the primary texture at uv.
func DefaultFragmentShader(p Platform) string {
	if p == Mobile {
		return mobileFragmentShader
	}
	return desktopFragmentShader
}

// CompileDefaultProgram compiles the pass-through program for the
// context's platform.
func (c *Context) CompileDefaultProgram() (*Program, error) {
	p := c.options.platform
	return c.CompileProgram(DefaultVertexShader(p), DefaultFragmentShader(p))
}
