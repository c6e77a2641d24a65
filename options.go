package gpufilter

// Option configures a Context during creation.
//
// Example:
//
//	ctx := gpufilter.NewContext(fns,
//	    gpufilter.WithPlatform(gpufilter.Mobile),
//	    gpufilter.WithLogFunc(func(msg string) { log.Print(msg) }),
//	)
type Option func(*contextOptions)

type contextOptions struct {
	platform      Platform
	logFunc       func(string)
	maxUploadSize int
}

// DefaultMaxUploadSize bounds the temporary buffer NewBlankTexture
// allocates.
const DefaultMaxUploadSize = 1 << 30

func defaultOptions() contextOptions {
	return contextOptions{
		platform:      DefaultPlatform(),
		maxUploadSize: DefaultMaxUploadSize,
	}
}

// WithPlatform selects the shader variant CompileDefaultProgram uses.
// The default is DefaultPlatform().
func WithPlatform(p Platform) Option {
	return func(o *contextOptions) {
		o.platform = p
	}
}

// WithLogFunc installs a callback that receives shader compile and link
// diagnostics. Diagnostics are also logged through Logger.
func WithLogFunc(fn func(msg string)) Option {
	return func(o *contextOptions) {
		o.logFunc = fn
	}
}

// WithMaxUploadSize overrides DefaultMaxUploadSize. Values <= 0 are ignored.
func WithMaxUploadSize(n int) Option {
	return func(o *contextOptions) {
		if n > 0 {
			o.maxUploadSize = n
		}
	}
}

// ProgramOption configures CompileProgram.
type ProgramOption func(*programOptions)

type programOptions struct {
	primary    string
	additional [MaxAdditionalTextures]string
}

func defaultProgramOptions() programOptions {
	o := programOptions{primary: "texture"}
	for i := range o.additional {
		o.additional[i] = additionalSamplerName(i)
	}
	return o
}

// WithSamplerNames overrides the sampler uniform names resolved after
// linking. primary is bound to unit 0; additional names map in order to
// SecondTexture, ThirdTexture and so on. Names beyond EighthTexture are
// ignored and missing ones keep their defaults ("texture2".."texture8").
//
// GLSL 1.30 and later reserve "texture" as a builtin, so shaders written for
// those versions and WGSL translated by the shader package need this option.
func WithSamplerNames(primary string, additional ...string) ProgramOption {
	return func(o *programOptions) {
		o.primary = primary
		for i, name := range additional {
			if i >= len(o.additional) {
				break
			}
			o.additional[i] = name
		}
	}
}
