// Copyright 2026 The Assetnorm Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package normalizer

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyUI(t *testing.T) {
	srcDir := t.TempDir()
	dst := t.TempDir()

	icon := filepath.Join(srcDir, "icon.png")
	writePNG(t, icon, sprite(8, 8, image.Rect(0, 0, 8, 8), red))
	logo := filepath.Join(srcDir, "logo.svg")
	writeFile(t, logo, `<svg xmlns="http://www.w3.org/2000/svg" width="4" height="4"></svg>`)

	mtime := time.Date(2020, time.March, 4, 5, 6, 7, 0, time.UTC)
	require.NoError(t, os.Chtimes(icon, mtime, mtime))
	require.NoError(t, os.Chmod(logo, 0600))

	testCases := []struct {
		src      string
		wantMIME string
	}{
		{icon, "image/png"},
		{logo, "image/svg+xml"},
	}

	for _, tc := range testCases {
		res := CopyUI(tc.src, dst)
		require.NoError(t, res.Err, "src=%q", tc.src)
		assert.Equal(t, KindUI, res.Kind)
		assert.Equal(t, filepath.Join(dst, filepath.Base(tc.src)), res.Dest)
		assert.Equal(t, tc.wantMIME, res.MIME)

		want, err := os.ReadFile(tc.src)
		require.NoError(t, err)
		got, err := os.ReadFile(res.Dest)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(want, got), "src=%q: bytes differ", tc.src)
	}

	fi, err := os.Stat(filepath.Join(dst, "icon.png"))
	require.NoError(t, err)
	assert.True(t, mtime.Equal(fi.ModTime()), "got mtime %v, want %v", fi.ModTime(), mtime)

	fi, err = os.Stat(filepath.Join(dst, "logo.svg"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), fi.Mode().Perm())
}

func TestCopyUIOverwrites(t *testing.T) {
	src := filepath.Join(t.TempDir(), "icon.png")
	dst := t.TempDir()
	writeFile(t, src, "new")
	writeFile(t, filepath.Join(dst, "icon.png"), "old and longer")

	res := CopyUI(src, dst)
	require.NoError(t, res.Err)

	got, err := os.ReadFile(res.Dest)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestCopyUIFollowsSymlink(t *testing.T) {
	target := filepath.Join(t.TempDir(), "real.txt")
	writeFile(t, target, "payload")
	link := filepath.Join(t.TempDir(), "alias.txt")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	dst := t.TempDir()

	res := CopyUI(link, dst)
	require.NoError(t, res.Err)

	fi, err := os.Lstat(res.Dest)
	require.NoError(t, err)
	assert.True(t, fi.Mode().IsRegular())
	got, err := os.ReadFile(res.Dest)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(got))
}

func TestCopyUIMissingSource(t *testing.T) {
	res := CopyUI(filepath.Join(t.TempDir(), "gone.png"), t.TempDir())
	assert.ErrorIs(t, res.Err, os.ErrNotExist)
}
