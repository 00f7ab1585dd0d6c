// Copyright 2023 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// gensources regenerates the FFmpeg build-file source listings by reverse
// engineering which source files each built configuration compiled.
//
// FFmpeg's own configure scripts and Makefiles are not reliably parseable,
// so instead the tool scans per-configuration build directories for object
// files, maps them back onto the source tree, partitions the results into
// disjoint conditional groups, verifies the license of everything that could
// ship, and writes ffmpeg_generated.gni (or .gypi).
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/subcommands"

	"go.chromium.org/ffmpeggen/lib/color"
	"go.chromium.org/ffmpeggen/lib/logger"
)

var (
	colors = color.ColorAuto
	level  = logger.InfoLevel
)

func init() {
	flag.Var(&colors, "color", "use color in output, can be never, auto, always")
	flag.Var(&level, "level", "output verbosity, can be fatal, error, warning, info, debug or trace")
}

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&genCmd{}, "")

	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	l := logger.NewLogger(level, color.NewColor(colors), os.Stdout, os.Stderr, "gensources ")
	ctx = logger.WithLogger(ctx, l)

	os.Exit(int(subcommands.Execute(ctx)))
}
