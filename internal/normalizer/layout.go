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
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

var ErrMissingDir = errors.New("normalizer: missing folder")

// MissingDirError reports a source folder that does not exist or is not a
// directory. It matches ErrMissingDir under errors.Is.
type MissingDirError struct {
	Role string
	Path string
}

func (e *MissingDirError) Error() string {
	return "normalizer: missing " + e.Role + " folder: " + e.Path
}

func (e *MissingDirError) Is(target error) bool {
	return target == ErrMissingDir
}

// ValidateLayout checks that both source folders exist, shoes first. It never
// creates anything.
func ValidateLayout(shoesDir string, uiDir string) error {
	if !isDir(shoesDir) {
		return &MissingDirError{Role: "shoes", Path: shoesDir}
	}
	if !isDir(uiDir) {
		return &MissingDirError{Role: "UI", Path: uiDir}
	}
	return nil
}

// EnsureDestination creates dir and any missing parents. An existing
// directory is fine.
func EnsureDestination(dir string) error {
	return os.MkdirAll(dir, 0755)
}

// ListShoes returns the regular files directly inside dir whose base names
// match pattern, in lexicographic order. A malformed pattern returns an error
// wrapping doublestar.ErrBadPattern.
func ListShoes(dir string, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: %q", doublestar.ErrBadPattern, pattern)
	}
	return listFiles(dir, func(name string) bool {
		ok, _ := doublestar.Match(pattern, name)
		return ok
	})
}

// ListUI returns every regular file directly inside dir, in lexicographic
// order. Sub-directories are skipped, not descended into.
func ListUI(dir string) ([]string, error) {
	return listFiles(dir, func(string) bool { return true })
}

func listFiles(dir string, match func(name string) bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	ret := []string(nil)
	for _, entry := range entries {
		name := entry.Name()
		if !match(name) {
			continue
		}
		path := filepath.Join(dir, name)
		if isRegular(entry, path) {
			ret = append(ret, path)
		}
	}
	return ret, nil
}

// isRegular follows symlinks, so a link to a regular file counts as one.
func isRegular(entry fs.DirEntry, path string) bool {
	if t := entry.Type(); t.IsRegular() {
		return true
	} else if t&fs.ModeSymlink == 0 {
		return false
	}
	fi, err := os.Stat(path)
	return (err == nil) && fi.Mode().IsRegular()
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return (err == nil) && fi.IsDir()
}
