package gpufilter

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gpufilter/gl"
)

// ColorFormat is the layout of caller-supplied or read-back pixel data.
// Storage on the GPU is always RGBA with 8 bits per channel.
type ColorFormat uint8

const (
	RGB ColorFormat = iota
	RGBA
	BGRA
)

func (f ColorFormat) String() string {
	switch f {
	case RGB:
		return "RGB"
	case RGBA:
		return "RGBA"
	case BGRA:
		return "BGRA"
	}
	return fmt.Sprintf("ColorFormat(%d)", uint8(f))
}

// glFormat maps f to the driver pixel layout. Unknown values map to RGBA.
func (f ColorFormat) glFormat() gl.Enum {
	switch f {
	case RGB:
		return gl.RGB
	case BGRA:
		return gl.BGRA
	}
	return gl.RGBA
}

// BytesPerPixel returns 3 for RGB and 4 otherwise.
func (f ColorFormat) BytesPerPixel() int {
	if f == RGB {
		return 3
	}
	return 4
}

// TextureFormat returns the WebGPU format with the same memory layout.
// RGB has no 8-bit three channel counterpart and returns
// TextureFormatUndefined.
func (f ColorFormat) TextureFormat() gputypes.TextureFormat {
	switch f {
	case RGB:
		return gputypes.TextureFormatUndefined
	case BGRA:
		return gputypes.TextureFormatBGRA8Unorm
	}
	return gputypes.TextureFormatRGBA8Unorm
}
