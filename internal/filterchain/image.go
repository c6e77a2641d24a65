// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filterchain

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodeImage reads an image file in any registered format: png, jpeg,
// gif, bmp, tiff or webp.
func DecodeImage(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("filterchain: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("filterchain: decode %s: %w", path, err)
	}
	return img, format, nil
}
