// Copyright 2026 The Assetnorm Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package trim removes the transparent padding around sprite images.
//
// A pixel is content when its (non-premultiplied) alpha is greater than or
// equal to a threshold. Trimming crops an image to the smallest rectangle
// holding every content pixel. An image with no content pixels is left at
// its full size.
package trim

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/nigeltao/assetnorm/internal/canon"
)

// DefaultThreshold is the alpha value, out of 0xFF, at and above which a
// pixel counts as content.
const DefaultThreshold = 15

// Mask returns the alpha mask of m: 0xFF where m's alpha is at least
// threshold and 0x00 elsewhere. The mask has the same bounds as m.
func Mask(m *image.NRGBA, threshold uint8) *image.Alpha {
	b := m.Bounds()
	mask := image.NewAlpha(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := m.PixOffset(b.Min.X, y)
		j := mask.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			if m.Pix[i+3] >= threshold {
				mask.Pix[j] = 0xFF
			}
			i += 4
			j++
		}
	}
	return mask
}

// MaskBounds returns the smallest rectangle holding every non-zero pixel of
// mask. It returns false if there are none.
func MaskBounds(mask *image.Alpha) (image.Rectangle, bool) {
	b := mask.Bounds()
	x0, y0 := b.Max.X, b.Max.Y
	x1, y1 := b.Min.X, b.Min.Y
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := mask.Pix[mask.PixOffset(b.Min.X, y):]
		for x := b.Min.X; x < b.Max.X; x++ {
			if row[x-b.Min.X] == 0 {
				continue
			}
			x0, x1 = min(x0, x), max(x1, x+1)
			y0, y1 = min(y0, y), max(y1, y+1)
		}
	}
	if (x0 >= x1) || (y0 >= y1) {
		return image.Rectangle{}, false
	}
	return image.Rect(x0, y0, x1, y1), true
}

// BoundingBox returns the content rectangle of m, relative to a zero origin.
// It returns false if m has no pixel whose alpha reaches threshold.
func BoundingBox(m image.Image, threshold uint8) (image.Rectangle, bool) {
	return MaskBounds(Mask(canon.NRGBA(m), threshold))
}

// Trim returns m converted to non-premultiplied RGBA and cropped to its
// content rectangle, along with that rectangle. The result's bounds start at
// (0, 0).
//
// When m has no content pixel, Trim returns the converted image uncropped,
// its full bounds and false.
func Trim(m image.Image, threshold uint8) (*image.NRGBA, image.Rectangle, bool) {
	src := canon.NRGBA(m)
	r, ok := MaskBounds(Mask(src, threshold))
	if !ok {
		return src, src.Bounds(), false
	} else if r == src.Bounds() {
		return src, r, true
	}
	return imaging.Crop(src, r), r, true
}
