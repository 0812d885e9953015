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
	"image"
)

// Kind is the kind of source a Result came from.
type Kind uint8

const (
	KindShoe = Kind(1)
	KindUI   = Kind(2)
)

func (k Kind) String() string {
	switch k {
	case KindShoe:
		return "shoe"
	case KindUI:
		return "UI"
	}
	return "unknown"
}

// Result is the outcome of processing one file.
type Result struct {
	Kind Kind

	// Name is the base filename, shared by Source and Dest.
	Name   string
	Source string
	Dest   string

	// Bounds is a shoe's content rectangle in source coordinates (relative
	// to a zero origin) and Size the dimensions of the written image.
	// Trimmed is false for a sprite without content pixels, which is written
	// at full size.
	Bounds  image.Rectangle
	Size    image.Point
	Trimmed bool

	// MIME is the detected content type of a UI asset.
	MIME string

	Err error
}

// OK returns whether the file was processed successfully.
func (r *Result) OK() bool {
	return r.Err == nil
}

// Report holds the results of a run, shoes then UI assets, each in listing
// order. Files never attempted, after an aborting failure, have no Result.
type Report struct {
	Results []Result
}

func (r *Report) Shoes() []Result { return r.ofKind(KindShoe) }

func (r *Report) UI() []Result { return r.ofKind(KindUI) }

// Failed returns the results whose Err is non-nil.
func (r *Report) Failed() (ret []Result) {
	for _, res := range r.Results {
		if res.Err != nil {
			ret = append(ret, res)
		}
	}
	return ret
}

// Err joins every failure's error. It is nil if nothing failed.
func (r *Report) Err() error {
	errs := []error(nil)
	for _, res := range r.Results {
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
	}
	return errors.Join(errs...)
}

func (r *Report) ofKind(k Kind) (ret []Result) {
	for _, res := range r.Results {
		if res.Kind == k {
			ret = append(ret, res)
		}
	}
	return ret
}
