// Command gpufilter runs GLSL or WGSL filters over an image on an offscreen
// GL context and writes the result as PNG.
//
//	gpufilter -in photo.jpg -out out.png -frag sepia.frag
//	gpufilter -in photo.jpg -out out.png -chain filters/chain.toml
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/gpufilter"
	"github.com/gogpu/gpufilter/backend"
	"github.com/gogpu/gpufilter/headless"
	"github.com/gogpu/gpufilter/internal/filterchain"
)

func main() {
	var (
		input   = flag.String("in", "", "input image (png, jpeg, gif, bmp, tiff, webp)")
		output  = flag.String("out", "out.png", "output PNG file")
		frag    = flag.String("frag", "", "GLSL fragment shader")
		wgsl    = flag.String("wgsl", "", "WGSL filter with vertex and fragment entry points")
		chain   = flag.String("chain", "", "TOML filter chain")
		drv     = flag.String("backend", "", "GL backend: "+strings.Join(backend.Available(), ", ")+" (default: best hardware backend; software must be named)")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	gpufilter.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}
	c, err := loadChain(*frag, *wgsl, *chain)
	if err != nil {
		log.Fatal(err)
	}
	if err := run(*input, *output, *drv, c); err != nil {
		log.Fatal(err)
	}
}

func loadChain(frag, wgsl, chain string) (*filterchain.Chain, error) {
	set := 0
	for _, s := range []string{frag, wgsl, chain} {
		if s != "" {
			set++
		}
	}
	switch {
	case set > 1:
		return nil, fmt.Errorf("-frag, -wgsl and -chain are exclusive")
	case frag != "":
		return filterchain.Single(frag), nil
	case wgsl != "":
		return filterchain.SingleWGSL(wgsl), nil
	case chain != "":
		return filterchain.Load(chain)
	default:
		return nil, fmt.Errorf("one of -frag, -wgsl or -chain is required")
	}
}

func run(input, output, drv string, c *filterchain.Chain) error {
	img, format, err := filterchain.DecodeImage(input)
	if err != nil {
		return err
	}
	slog.Debug("decoded input", "format", format, "bounds", img.Bounds())

	hc, err := headless.New(headless.Config{Backend: drv})
	if err != nil {
		return err
	}
	defer hc.Close()

	ctx := gpufilter.NewContext(hc.Functions(), gpufilter.WithLogFunc(func(msg string) {
		fmt.Fprintln(os.Stderr, msg)
	}))
	defer ctx.Release()

	src, err := ctx.NewTexture()
	if err != nil {
		return err
	}
	defer src.Destroy()
	if err := src.UploadImage(img); err != nil {
		return err
	}

	fb, err := c.Run(ctx, src)
	if err != nil {
		return err
	}
	defer fb.Destroy()

	result, err := fb.Image()
	if err != nil {
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := png.Encode(f, result); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Printf("wrote %s (%dx%d, backend %s)", output, fb.Width(), fb.Height(), hc.Backend())
	return nil
}
