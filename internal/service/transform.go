// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"fmt"
	"image"

	// register decoders beyond the ones imaging brings in
	_ "image/gif"

	_ "golang.org/x/image/webp"

	"github.com/disintegration/imaging"
)

const (
	// FilteredWidth and FilteredHeight are the exact dimensions of every
	// filtered image; the aspect ratio is not preserved.
	FilteredWidth  = 256
	FilteredHeight = 256

	// maxSourcePixels guards against decompression bombs.
	maxSourcePixels = 64 << 20
)

// decodeImage decodes a source image in any registered format
// (jpeg, png, gif, bmp, tiff, webp), honouring EXIF orientation.
func decodeImage(data []byte) (image.Image, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingImage, err)
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: %s image has no pixels", ErrDecodingImage, format)
	}
	if int64(cfg.Width)*int64(cfg.Height) > maxSourcePixels {
		return nil, fmt.Errorf("%w: %s %dx%d", ErrImageDimensionsTooLarge, format, cfg.Width, cfg.Height)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecodingImage, format, err)
	}

	return img, nil
}

// filterImage resizes img to FilteredWidth x FilteredHeight and converts it
// to greyscale.
func filterImage(img image.Image) image.Image {
	resized := imaging.Resize(img, FilteredWidth, FilteredHeight, imaging.Lanczos)
	return imaging.Grayscale(resized)
}
