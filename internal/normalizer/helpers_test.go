// Copyright 2026 The Assetnorm Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package normalizer

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var red = color.NRGBA{0xFF, 0x00, 0x00, 0xFF}

// sprite returns a transparent w×h image with r filled with c.
func sprite(w int, h int, r image.Rectangle, c color.NRGBA) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			m.SetNRGBA(x, y, c)
		}
	}
	return m
}

func writePNG(t *testing.T, path string, m image.Image) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, m))
}

func readPNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	m, err := png.Decode(f)
	require.NoError(t, err)
	return m
}

func writeFile(t *testing.T, path string, data string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
}

// project lays out root/assets/shoes and root/assets/UI and returns the
// default config for root.
func project(t *testing.T) Config {
	t.Helper()
	cfg := DefaultConfig(t.TempDir())
	require.NoError(t, os.MkdirAll(cfg.ShoesDir, 0755))
	require.NoError(t, os.MkdirAll(cfg.UIDir, 0755))
	return cfg
}

// listing returns the base names in dir, in lexicographic order.
func listing(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	ret := []string{}
	for _, e := range entries {
		ret = append(ret, e.Name())
	}
	return ret
}

func names(paths []string) []string {
	ret := []string{}
	for _, p := range paths {
		ret = append(ret, filepath.Base(p))
	}
	return ret
}
