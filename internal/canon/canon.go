// Copyright 2026 The Assetnorm Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package canon converts decoded images to the canonical colour model used by
// the rest of the github.com/nigeltao/assetnorm module: 8 bits per channel,
// non-premultiplied RGBA, with a zero origin.
package canon

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// NRGBA returns a copy of m as an *image.NRGBA whose bounds start at (0, 0).
// Opaque source types get an alpha of 0xFF. m is never modified, even when it
// already is an *image.NRGBA.
func NRGBA(m image.Image) *image.NRGBA {
	if m, ok := m.(*image.Paletted); ok {
		return paletted(m)
	}
	return imaging.Clone(m)
}

// paletted is separate from imaging.Clone, which panics on a color index past
// the end of the palette. Such pixels become transparent black.
func paletted(m *image.Paletted) *image.NRGBA {
	pal := make([]color.NRGBA, len(m.Palette))
	for i, c := range m.Palette {
		pal[i] = color.NRGBAModel.Convert(c).(color.NRGBA)
	}
	b := m.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if i := int(m.ColorIndexAt(x, y)); i < len(pal) {
				dst.SetNRGBA(x-b.Min.X, y-b.Min.Y, pal[i])
			}
		}
	}
	return dst
}
