// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package app

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/gogpu/triangle"
)

// ErrUnsupportedImage is returned by WriteImage for unknown file extensions.
var ErrUnsupportedImage = errors.New("app: unsupported image format")

// WriteImage encodes img to path. The format is chosen by extension:
// .png or .bmp.
func WriteImage(path string, img image.Image) (err error) {
	encode, err := encoderFor(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("app: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("app: close %s: %w", path, cerr)
		}
	}()

	if err := encode(f, img); err != nil {
		return fmt.Errorf("app: encode %s: %w", path, err)
	}
	triangle.Logger().Info("image written", "path", path, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return nil
}

func encoderFor(path string) (func(*os.File, image.Image) error, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return func(f *os.File, img image.Image) error { return png.Encode(f, img) }, nil
	case ".bmp":
		return func(f *os.File, img image.Image) error { return bmp.Encode(f, img) }, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedImage, ext)
	}
}
