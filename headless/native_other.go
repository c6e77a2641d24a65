// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !linux && !cgo

package headless

import (
	"errors"

	"github.com/gogpu/gpufilter/backend"
)

func newNative(Config) (backend.Loader, func(), error) {
	return nil, nil, errors.New("native contexts need cgo on this platform")
}
