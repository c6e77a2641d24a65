// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package headless creates an offscreen OpenGL context and a matching
// gl.Functions driver, for batch filtering without a window.
//
// With cgo a hidden GLFW window provides the context and backend/desktop
// drives it. On Linux without cgo the context comes from EGL (pbuffer or
// surfaceless) and backend/dynamic drives it. The software backend is never
// picked automatically; requesting it by name skips native context creation
// entirely.
//
// GL contexts are bound to an OS thread: New locks the calling goroutine to
// its thread, and every call on the returned Functions must happen on that
// goroutine until Close.
package headless

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gogpu/gpufilter"
	"github.com/gogpu/gpufilter/backend"
	_ "github.com/gogpu/gpufilter/backend/desktop" // registers "desktop" when built with cgo
	_ "github.com/gogpu/gpufilter/backend/dynamic" // registers "dynamic" on Linux without cgo
	"github.com/gogpu/gpufilter/gl"
)

var (
	// ErrNoContext is returned when no native GL context could be created.
	ErrNoContext = errors.New("headless: no GL context")

	// ErrClosed is returned by Close on a context that was already closed.
	ErrClosed = errors.New("headless: context closed")
)

// Config selects the backend and GL version of the offscreen context.
type Config struct {
	// Backend names a registered backend. Empty picks backend.Default,
	// which only considers hardware backends.
	Backend string

	// GLVersionMajor and GLVersionMinor default to 2.1, the level
	// backend/desktop loads.
	GLVersionMajor int
	GLVersionMinor int
}

// DefaultConfig returns a Config for a GL 2.1 context on the default
// backend.
func DefaultConfig() Config {
	return Config{GLVersionMajor: 2, GLVersionMinor: 1}
}

// Context is an offscreen GL context with its driver.
type Context struct {
	fns     gl.Functions
	backend string
	release func()
	closed  bool
}

// New creates an offscreen context on the calling goroutine's OS thread.
func New(cfg Config) (*Context, error) {
	if cfg.GLVersionMajor == 0 {
		cfg.GLVersionMajor, cfg.GLVersionMinor = 2, 1
	}

	if cfg.Backend == backend.Software {
		fns, err := backend.Get(backend.Software, nil)
		if err != nil {
			return nil, err
		}
		return &Context{fns: fns, backend: backend.Software, release: func() {}}, nil
	}

	runtime.LockOSThread()
	load, release, err := newNative(cfg)
	if err != nil {
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("%w: %w", ErrNoContext, err)
	}

	var (
		fns  gl.Functions
		name = cfg.Backend
	)
	if name == "" {
		fns, name, err = backend.Default(load)
	} else {
		fns, err = backend.Get(name, load)
	}
	if err != nil {
		release()
		runtime.UnlockOSThread()
		return nil, err
	}

	gpufilter.Logger().Debug("headless: context created",
		"backend", name, "version", fmt.Sprintf("%d.%d", cfg.GLVersionMajor, cfg.GLVersionMinor))
	return &Context{
		fns:     fns,
		backend: name,
		release: func() {
			release()
			runtime.UnlockOSThread()
		},
	}, nil
}

// Functions returns the driver for this context.
func (c *Context) Functions() gl.Functions { return c.fns }

// Backend returns the name of the backend in use.
func (c *Context) Backend() string { return c.backend }

// Close destroys the native context and unlocks the OS thread. Objects
// created through Functions are gone afterwards.
func (c *Context) Close() error {
	if c.closed {
		return ErrClosed
	}
	c.closed = true
	c.release()
	return nil
}
