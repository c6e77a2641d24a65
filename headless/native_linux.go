// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build linux && !cgo

package headless

import (
	"fmt"

	"github.com/gogpu/wgpu/hal/gles/egl"

	"github.com/gogpu/gpufilter/backend"
)

func newNative(cfg Config) (backend.Loader, func(), error) {
	if err := egl.Init(); err != nil {
		return nil, nil, fmt.Errorf("egl init: %w", err)
	}

	ecfg := egl.DefaultContextConfig()
	ecfg.GLVersionMajor = cfg.GLVersionMajor
	ecfg.GLVersionMinor = cfg.GLVersionMinor
	// go-gl v2.1 loads compatibility entry points.
	ecfg.CoreProfile = false

	ctx, err := egl.NewContext(ecfg)
	if err != nil {
		return nil, nil, err
	}
	if err := ctx.MakeCurrent(); err != nil {
		ctx.Destroy()
		return nil, nil, err
	}
	return egl.GetGLProcAddress, ctx.Destroy, nil
}
