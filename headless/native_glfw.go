// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build cgo

package headless

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/gpufilter/backend"
)

func newNative(cfg Config) (backend.Loader, func(), error) {
	if err := glfw.Init(); err != nil {
		return nil, nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLVersionMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLVersionMinor)

	win, err := glfw.CreateWindow(1, 1, "gpufilter", nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, nil, err
	}
	win.MakeContextCurrent()

	load := func(name string) unsafe.Pointer { return glfw.GetProcAddress(name) }
	release := func() {
		glfw.DetachCurrentContext()
		win.Destroy()
		glfw.Terminate()
	}
	return load, release, nil
}
