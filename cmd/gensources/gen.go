// Copyright 2023 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"

	"go.chromium.org/ffmpeggen/catalog"
	"go.chromium.org/ffmpeggen/lib/logger"
	"go.chromium.org/ffmpeggen/licenses"
	"go.chromium.org/ffmpeggen/render"
	"go.chromium.org/ffmpeggen/sourceset"
)

type genCmd struct {
	sourceDir     string
	buildDir      string
	format        render.Format
	licensecheck  string
	printLicenses bool
	spdxJSON      string
	jobs          int
}

func (*genCmd) Name() string { return "gen" }

func (*genCmd) Synopsis() string {
	return "Generate the FFmpeg build-file source listings from observed build outputs."
}

func (*genCmd) Usage() string {
	return "gensources gen -source_dir <DIR> -build_dir <DIR> [-format gn|gyp]\n"
}

func (cmd *genCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.sourceDir, "source_dir", ".", "FFmpeg source directory.")
	f.StringVar(&cmd.buildDir, "build_dir", ".", "Build root containing build.x64.linux, etc...")
	f.Var(&cmd.format, "format", "output format, can be gn or gyp")
	f.StringVar(&cmd.licensecheck, "licensecheck", "", "Path to the licensecheck.pl classifier script. Defaults to third_party/devscripts/licensecheck.pl two levels above source_dir.")
	f.BoolVar(&cmd.printLicenses, "print_licenses", false, "Print all accepted licenses to console.")
	f.StringVar(&cmd.spdxJSON, "spdx_json", "", "Optional path to write an SPDX 2.2 JSON report of the license closure.")
	f.IntVar(&cmd.jobs, "jobs", 0, "Number of parallel license classifier invocations. Defaults to the number of CPUs.")
}

func (cmd *genCmd) parseFlags() error {
	var err error
	if cmd.sourceDir, err = filepath.Abs(cmd.sourceDir); err != nil {
		return err
	}
	if _, err := os.Stat(cmd.sourceDir); err != nil {
		return fmt.Errorf("source directory does not exist: %s", cmd.sourceDir)
	}
	if cmd.buildDir, err = filepath.Abs(cmd.buildDir); err != nil {
		return err
	}
	if _, err := os.Stat(cmd.buildDir); err != nil {
		return fmt.Errorf("build directory does not exist: %s", cmd.buildDir)
	}
	if cmd.licensecheck == "" {
		// The classifier ships with the Chromium checkout, two levels
		// above third_party/ffmpeg.
		cmd.licensecheck = filepath.Join(cmd.sourceDir, "..", "..", "third_party", "devscripts", "licensecheck.pl")
	}
	return nil
}

func (cmd *genCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := cmd.execute(ctx); err != nil {
		logger.Errorf(ctx, "%s", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (cmd *genCmd) execute(ctx context.Context) error {
	if err := cmd.parseFlags(); err != nil {
		return err
	}

	sources, err := catalog.Sources(cmd.sourceDir)
	if err != nil {
		return err
	}
	objectMap := catalog.ObjectMap(sources)

	sets, err := catalog.Extract(ctx, objectMap, cmd.buildDir)
	if err != nil {
		return err
	}

	disjoint := sourceset.Disjoint(sets)
	if len(disjoint) == 0 {
		return fmt.Errorf("failed to find any source sets; are build_dir (%s) and/or source_dir (%s) correct?",
			cmd.buildDir, cmd.sourceDir)
	}
	logger.Debugf(ctx, "partitioned %d configurations into %d disjoint groups", len(sets), len(disjoint))

	classifier, err := licenses.NewScriptClassifier(cmd.licensecheck)
	if err != nil {
		return err
	}
	closure, err := licenses.Closure(disjoint, cmd.sourceDir)
	if err != nil {
		return err
	}
	verdicts, err := licenses.Check(ctx, closure, classifier, licenses.CheckOptions{
		PrintLicenses: cmd.printLicenses,
		Jobs:          cmd.jobs,
	})
	if err != nil {
		// Nothing may be written once any file fails the gate.
		return fmt.Errorf("generate failed, invalid licenses detected: %w", err)
	}
	logger.Infof(ctx, "license checks passed (%d files)", len(closure))

	if cmd.spdxJSON != "" {
		if err := licenses.WriteSPDX(cmd.spdxJSON, cmd.sourceDir, verdicts); err != nil {
			return err
		}
		logger.Infof(ctx, "wrote SPDX report to %s", cmd.spdxJSON)
	}

	render.WarnBaselineCollapses(ctx, disjoint)

	// Render fully in memory and write in one shot, so no failure path can
	// leave a partial artifact behind.
	out := render.File(disjoint, cmd.format)
	outputPath := filepath.Join(cmd.sourceDir, cmd.format.OutputFileName())
	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	logger.Infof(ctx, "wrote %s", outputPath)
	return nil
}
