// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"github.com/gogpu/gpufilter/gl"
	"github.com/gogpu/gpufilter/gl/soft"
)

// init registers the software backend on package import.
func init() {
	Register(Software, func(Loader) (gl.Functions, error) {
		return soft.New(), nil
	})
}
