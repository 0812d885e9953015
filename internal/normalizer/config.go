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
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"

	"github.com/nigeltao/assetnorm/lib/trim"
)

var ErrBadConfig = errors.New("normalizer: bad config")

// Policy says what a run does after a file fails.
type Policy string

const (
	// PolicyAbort stops the run at the first failure.
	PolicyAbort = Policy("abort")
	// PolicyCollect attempts every file and reports every failure.
	PolicyCollect = Policy("collect")
)

// CollisionMode says what a run does when a shoe and a UI file share a base
// name, which would make the UI copy overwrite the trimmed shoe.
type CollisionMode string

const (
	CollisionOverwrite = CollisionMode("overwrite")
	CollisionError     = CollisionMode("error")
)

const (
	DefaultShoePattern = "*.png"
	DefaultWorkers     = 1
)

// Config is the explicit configuration of a Normalizer. Use DefaultConfig to
// get the standard project layout.
type Config struct {
	ShoesDir  string `validate:"required"`
	UIDir     string `validate:"required"`
	OutputDir string `validate:"required"`

	// ShoePattern is a glob matched against base names in ShoesDir.
	ShoePattern string `validate:"required"`

	// Threshold is the minimum alpha of a content pixel.
	Threshold uint8

	// Workers is the number of files of one phase processed at a time.
	Workers int `validate:"min=1,max=256"`

	Policy     Policy        `validate:"oneof=abort collect"`
	Collisions CollisionMode `validate:"oneof=overwrite error"`
}

// DefaultConfig returns the configuration for the project rooted at root:
// sprites in root/assets/shoes, UI images in root/assets/UI and output in
// root/assets_processed.
func DefaultConfig(root string) Config {
	assets := filepath.Join(root, "assets")
	return Config{
		ShoesDir:    filepath.Join(assets, "shoes"),
		UIDir:       filepath.Join(assets, "UI"),
		OutputDir:   filepath.Join(root, "assets_processed"),
		ShoePattern: DefaultShoePattern,
		Threshold:   trim.DefaultThreshold,
		Workers:     DefaultWorkers,
		Policy:      PolicyAbort,
		Collisions:  CollisionOverwrite,
	}
}

var validate = validator.New()

// Validate checks c's fields. It does not touch the filesystem.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrBadConfig, err)
	}
	if strings.ContainsAny(c.ShoePattern, `/\`) || !doublestar.ValidatePattern(c.ShoePattern) {
		return fmt.Errorf("%w: shoe pattern %q", ErrBadConfig, c.ShoePattern)
	}
	return nil
}
