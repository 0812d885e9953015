// Copyright 2026 The Assetnorm Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package normalizer

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"

	"github.com/nigeltao/assetnorm/lib/trim"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var ErrNotAnImage = errors.New("normalizer: not an image")

// TrimShoe trims the sprite at src and writes it to dstDir under the same
// base name, in the format given by that name's extension.
func TrimShoe(src string, dstDir string, threshold uint8) Result {
	name := filepath.Base(src)
	res := Result{
		Kind:   KindShoe,
		Name:   name,
		Source: src,
		Dest:   filepath.Join(dstDir, name),
	}

	m, err := decodeImage(src)
	if err != nil {
		res.Err = fmt.Errorf("trim shoe %s: %w", name, err)
		return res
	}

	trimmed, r, ok := trim.Trim(m, threshold)
	if err := imaging.Save(trimmed, res.Dest); err != nil {
		res.Err = fmt.Errorf("trim shoe %s: %w", name, err)
		return res
	}
	res.Bounds = r
	res.Size = trimmed.Bounds().Size()
	res.Trimmed = ok
	return res
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return nil, err
	} else if !strings.HasPrefix(mt.String(), "image/") {
		return nil, fmt.Errorf("%w: detected %s", ErrNotAnImage, mt.String())
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	return imaging.Decode(f)
}
