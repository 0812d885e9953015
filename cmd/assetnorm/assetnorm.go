// Copyright 2026 The Assetnorm Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// assetnorm trims the transparent padding off shoe sprites and gathers them,
// with the UI images, into one flat folder.
package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/nigeltao/assetnorm/internal/logger"
	"github.com/nigeltao/assetnorm/internal/normalizer"
	"github.com/nigeltao/assetnorm/lib/trim"
)

const usageStr = `assetnorm trims shoe sprites and copies UI images into one flat folder.

Usage:

    assetnorm [flags] [root]

The root is optional. If omitted, the current directory is used. The layout
under the root is:

    assets/shoes/*.png    sprites, trimmed of transparent padding
    assets/UI/*           UI files, copied unchanged
    assets_processed/     output, created if missing

Every flag is optional and overrides one part of that layout or behavior:

    --shoes=DIR           sprite folder
    --ui=DIR              UI folder
    --output=DIR          output folder
    --pattern=GLOB        sprite base-name pattern (default "*.png")
    --threshold=N         minimum alpha, 0-255, of a content pixel (default 15)
    --workers=N           files processed at a time per phase (default 1)
    --policy=abort        stop at the first failing file (the default)
    --policy=collect      process every file, then report all failures
    --collisions=overwrite
                          a UI file replaces a same-named sprite (the default)
    --collisions=error    refuse to run when names collide
    --log-level=LEVEL     debug, info, warn or error (default info)
    --log-json            log JSON lines instead of text
`

var ErrTooManyArgs = errors.New("main: too many arguments; the maximum is one root")

func main() {
	if err := main1(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func main1() error {
	return run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout io.Writer, stderr io.Writer) error {
	flags := pflag.NewFlagSet("assetnorm", pflag.ContinueOnError)
	// Parse errors are returned to main, which prints them once.
	flags.SetOutput(io.Discard)
	flags.Usage = func() { io.WriteString(stderr, usageStr) }
	shoesFlag := flags.String("shoes", "", "sprite folder")
	uiFlag := flags.String("ui", "", "UI folder")
	outputFlag := flags.String("output", "", "output folder")
	patternFlag := flags.String("pattern", normalizer.DefaultShoePattern, "sprite base-name pattern")
	thresholdFlag := flags.Uint8("threshold", trim.DefaultThreshold, "minimum alpha of a content pixel")
	workersFlag := flags.Int("workers", normalizer.DefaultWorkers, "files processed at a time per phase")
	policyFlag := flags.String("policy", string(normalizer.PolicyAbort), "abort or collect")
	collisionsFlag := flags.String("collisions", string(normalizer.CollisionOverwrite), "overwrite or error")
	logLevelFlag := flags.String("log-level", "info", "debug, info, warn or error")
	logJSONFlag := flags.Bool("log-json", false, "log JSON lines")
	if err := flags.Parse(args); errors.Is(err, pflag.ErrHelp) {
		return nil
	} else if err != nil {
		return err
	}

	root := "."
	switch flags.NArg() {
	case 0:
		// No-op.
	case 1:
		root = flags.Arg(0)
	default:
		return ErrTooManyArgs
	}

	cfg := normalizer.DefaultConfig(root)
	if *shoesFlag != "" {
		cfg.ShoesDir = *shoesFlag
	}
	if *uiFlag != "" {
		cfg.UIDir = *uiFlag
	}
	if *outputFlag != "" {
		cfg.OutputDir = *outputFlag
	}
	cfg.ShoePattern = *patternFlag
	cfg.Threshold = *thresholdFlag
	cfg.Workers = *workersFlag
	cfg.Policy = normalizer.Policy(*policyFlag)
	cfg.Collisions = normalizer.CollisionMode(*collisionsFlag)

	level, err := logger.ParseLevel(*logLevelFlag)
	if err != nil {
		return err
	}
	log := logger.New(&logger.Config{
		Level:  level,
		Output: stdout,
		JSON:   *logJSONFlag,
	})

	n, err := normalizer.New(cfg, log)
	if err != nil {
		return err
	}
	_, err = n.Run(ctx)
	return err
}
