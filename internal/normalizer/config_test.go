// Copyright 2026 The Assetnorm Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package normalizer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("/proj")

	assert.Equal(t, filepath.Join("/proj", "assets", "shoes"), cfg.ShoesDir)
	assert.Equal(t, filepath.Join("/proj", "assets", "UI"), cfg.UIDir)
	assert.Equal(t, filepath.Join("/proj", "assets_processed"), cfg.OutputDir)
	assert.Equal(t, "*.png", cfg.ShoePattern)
	assert.Equal(t, uint8(15), cfg.Threshold)
	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, PolicyAbort, cfg.Policy)
	assert.Equal(t, CollisionOverwrite, cfg.Collisions)
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"zero threshold", func(c *Config) { c.Threshold = 0 }, true},
		{"many workers", func(c *Config) { c.Workers = 8 }, true},
		{"collect policy", func(c *Config) { c.Policy = PolicyCollect }, true},
		{"brace pattern", func(c *Config) { c.ShoePattern = "*.{png,webp}" }, true},
		{"no workers", func(c *Config) { c.Workers = 0 }, false},
		{"unknown policy", func(c *Config) { c.Policy = "retry" }, false},
		{"unknown collision mode", func(c *Config) { c.Collisions = "rename" }, false},
		{"empty output", func(c *Config) { c.OutputDir = "" }, false},
		{"empty pattern", func(c *Config) { c.ShoePattern = "" }, false},
		{"pattern with separator", func(c *Config) { c.ShoePattern = "*/*.png" }, false},
		{"malformed pattern", func(c *Config) { c.ShoePattern = "[a-" }, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig("root")
			tc.modify(&cfg)
			err := cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrBadConfig)
			}
		})
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig("root")
	cfg.Workers = -1
	_, err := New(cfg, nil)
	assert.ErrorIs(t, err, ErrBadConfig)
}
