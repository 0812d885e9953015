// Copyright 2026 The Assetnorm Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package normalizer turns a source asset tree into a flat output folder:
// shoe sprites are trimmed of their transparent padding and UI files are
// copied unchanged.
//
// A run has two phases, shoes then UI, each walking its files in
// lexicographic order. With more than one worker the files of a phase are
// processed concurrently, but the phases never overlap, so the output is the
// same as a sequential run's.
package normalizer

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

var ErrNameCollision = errors.New("normalizer: name collision")

// Normalizer runs the asset pipeline for one Config.
type Normalizer struct {
	cfg Config
	log *charmlog.Logger
}

// New returns a Normalizer for cfg, which must be valid. Progress is written
// to log.
func New(cfg Config, log *charmlog.Logger) (*Normalizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		return nil, fmt.Errorf("%w: nil logger", ErrBadConfig)
	}
	return &Normalizer{cfg: cfg, log: log}, nil
}

// Run validates the layout, creates the output folder, trims every shoe and
// then copies every UI file.
//
// A missing source folder fails the run before anything is written. Under
// PolicyAbort the first failing file stops the run and Run returns the
// partial report with that file's error. Under PolicyCollect every file is
// attempted and the error joins all failures. Output already written is
// never removed.
func (n *Normalizer) Run(ctx context.Context) (*Report, error) {
	cfg := &n.cfg
	if err := ValidateLayout(cfg.ShoesDir, cfg.UIDir); err != nil {
		return nil, err
	}
	shoes, err := ListShoes(cfg.ShoesDir, cfg.ShoePattern)
	if err != nil {
		return nil, err
	}
	ui, err := ListUI(cfg.UIDir)
	if err != nil {
		return nil, err
	}
	if err := n.checkCollisions(shoes, ui); err != nil {
		return nil, err
	}
	if err := EnsureDestination(cfg.OutputDir); err != nil {
		return nil, err
	}

	report := &Report{}
	results, err := n.runPhase(ctx, shoes, func(src string) Result {
		return TrimShoe(src, cfg.OutputDir, cfg.Threshold)
	})
	report.Results = append(report.Results, results...)
	if err != nil {
		return report, err
	}

	results, err = n.runPhase(ctx, ui, func(src string) Result {
		return CopyUI(src, cfg.OutputDir)
	})
	report.Results = append(report.Results, results...)
	if err != nil {
		return report, err
	}

	if err := report.Err(); err != nil {
		n.log.Error("Asset build finished with failures",
			"failed", len(report.Failed()), "total", len(report.Results))
		return report, err
	}
	n.log.Info("Asset build complete (flat structure)",
		"shoes", len(report.Shoes()), "ui", len(report.UI()), "output", cfg.OutputDir)
	return report, nil
}

// runPhase processes paths with at most cfg.Workers at a time. The results
// are in the order of paths, leaving out files that were never started.
func (n *Normalizer) runPhase(ctx context.Context, paths []string, process func(string) Result) ([]Result, error) {
	results := make([]Result, len(paths))
	started := make([]bool, len(paths))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(n.cfg.Workers)
	for i, path := range paths {
		if gCtx.Err() != nil {
			break
		}
		i, path := i, path // per-iteration copies; module targets go1.21
		g.Go(func() error {
			// Re-checked here since Go may block until a failing file's
			// worker has cancelled gCtx.
			if gCtx.Err() != nil {
				return nil
			}
			started[i] = true
			res := process(path)
			results[i] = res
			n.logResult(&res)
			if (res.Err != nil) && (n.cfg.Policy == PolicyAbort) {
				return res.Err
			}
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	ret := results[:0]
	for i, res := range results {
		if started[i] {
			ret = append(ret, res)
		}
	}
	return ret, err
}

func (n *Normalizer) logResult(res *Result) {
	switch {
	case res.Err != nil:
		n.log.Error("Failed "+res.Kind.String(), "file", res.Name, "err", res.Err)
	case res.Kind == KindUI:
		n.log.Info("Copied UI", "file", res.Name, "type", res.MIME)
	case res.Trimmed:
		n.log.Info("Trimmed shoe", "file", res.Name,
			"size", fmt.Sprintf("%dx%d", res.Size.X, res.Size.Y))
	default:
		n.log.Info("Kept full canvas", "file", res.Name,
			"size", fmt.Sprintf("%dx%d", res.Size.X, res.Size.Y))
	}
}

// checkCollisions finds shoe outputs that a UI copy would overwrite.
func (n *Normalizer) checkCollisions(shoes []string, ui []string) error {
	names := make(map[string]struct{}, len(shoes))
	for _, s := range shoes {
		names[filepath.Base(s)] = struct{}{}
	}
	collisions := []string(nil)
	for _, u := range ui {
		if name := filepath.Base(u); hasKey(names, name) {
			collisions = append(collisions, name)
		}
	}
	if len(collisions) == 0 {
		return nil
	}

	if n.cfg.Collisions == CollisionError {
		return fmt.Errorf("%w: %q is both a shoe and a UI file", ErrNameCollision, collisions[0])
	}
	for _, name := range collisions {
		n.log.Warn("UI file overwrites trimmed shoe", "file", name)
	}
	return nil
}

func hasKey(m map[string]struct{}, k string) bool {
	_, ok := m[k]
	return ok
}
