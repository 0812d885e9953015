// Copyright 2026 The Assetnorm Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package normalizer

import (
	"fmt"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/otiai10/copy"
)

var uiCopyOptions = copy.Options{
	// Copy the target's bytes, not the link.
	OnSymlink:     func(string) copy.SymlinkAction { return copy.Deep },
	PreserveTimes: true,
}

// CopyUI copies the file at src, byte for byte, to dstDir under the same base
// name. Its modification time and permission bits are kept.
func CopyUI(src string, dstDir string) Result {
	name := filepath.Base(src)
	res := Result{
		Kind:   KindUI,
		Name:   name,
		Source: src,
		Dest:   filepath.Join(dstDir, name),
	}

	mt, err := mimetype.DetectFile(src)
	if err != nil {
		res.Err = fmt.Errorf("copy UI %s: %w", name, err)
		return res
	}
	res.MIME = mt.String()

	if err := copy.Copy(src, res.Dest, uiCopyOptions); err != nil {
		res.Err = fmt.Errorf("copy UI %s: %w", name, err)
	}
	return res
}
