// Copyright 2023 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package render turns disjoint source sets into generated GN or GYP build
// file text. Rendering is deterministic: axis values and file lists are
// sorted, and stanzas are emitted in condition order, so re-running on
// unchanged inputs is byte-identical.
package render

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.chromium.org/ffmpeggen/catalog"
	"go.chromium.org/ffmpeggen/lib/logger"
	"go.chromium.org/ffmpeggen/sourceset"
)

const gnHeader = `import("//build/config/arm.gni")
import("ffmpeg_options.gni")

# Declare empty versions of each variable for easier +=ing later.
ffmpeg_c_sources = []
ffmpeg_gas_sources = []
ffmpeg_yasm_sources = []

`

const gypHeader = `
{
  'variables': {
    'conditions': [
`

const gypFooter = `    ],  # conditions
  },
}
`

func copyrightHeader() string {
	return fmt.Sprintf(`# Copyright %d The Chromium Authors. All rights reserved.
# Use of this source code is governed by a BSD-style license that can be
# found in the LICENSE file.

# NOTE: this file is autogenerated by gensources. Do not edit.

`, time.Now().Year())
}

// sortSets orders the sets by condition text, then first file, so that
// output order does not depend on partition discovery order.
func sortSets(sets []sourceset.SourceSet, format Format) []sourceset.SourceSet {
	sorted := append([]sourceset.SourceSet(nil), sets...)
	key := func(s sourceset.SourceSet) string {
		first := ""
		if files := s.Sources.Sorted(); len(files) > 0 {
			first = files[0]
		}
		return Condition(s, format) + "\x00" + first
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return key(sorted[i]) < key(sorted[j])
	})
	return sorted
}

// WarnBaselineCollapses flags groups whose platform clause will be dropped
// because they are restricted to the bare baseline platform. The day the
// baseline grows platform-specific files, these warnings are the signal
// that the collapse rule is no longer sound. Call it once per run;
// rendering itself is pure and never logs.
func WarnBaselineCollapses(ctx context.Context, sets []sourceset.SourceSet) {
	baseline := sourceset.NewSet(sourceset.PlatformBaseline)
	for _, s := range sets {
		if s.Platforms.Equal(baseline) {
			logger.Warningf(ctx, "group of %d files is %s-only; emitting it unconditionally on the assumption that %s has no platform-specific files",
				len(s.Sources), sourceset.PlatformBaseline, sourceset.PlatformBaseline)
		}
	}
}

func gnSourceList(b *strings.Builder, variable string, files []string, indent string) {
	if len(files) == 0 {
		return
	}
	fmt.Fprintf(b, "%s%s += [\n", indent, variable)
	for _, f := range files {
		fmt.Fprintf(b, "%s  %q,\n", indent, f)
	}
	fmt.Fprintf(b, "%s]\n", indent)
}

func gnStanza(s sourceset.SourceSet) string {
	var b strings.Builder

	condition := gnCondition(s)
	indent := ""
	if condition != "" {
		fmt.Fprintf(&b, "if (%s) {\n", condition)
		indent = "  "
	}

	files := s.Sources.Sorted()
	gnSourceList(&b, "ffmpeg_c_sources", filterKind(files, catalog.CSource), indent)
	gnSourceList(&b, "ffmpeg_gas_sources", filterKind(files, catalog.GasSource), indent)
	gnSourceList(&b, "ffmpeg_yasm_sources", filterKind(files, catalog.YasmSource), indent)

	if condition != "" {
		b.WriteString("}\n\n")
	} else {
		b.WriteString("\n")
	}
	return b.String()
}

func gypSourceList(b *strings.Builder, variable string, files []string) {
	if len(files) == 0 {
		return
	}
	fmt.Fprintf(b, "        '%s': [\n", variable)
	for _, f := range files {
		fmt.Fprintf(b, "          '%s',\n", f)
	}
	b.WriteString("        ],\n")
}

func gypStanza(s sourceset.SourceSet) string {
	var b strings.Builder

	condition := gypCondition(s)
	fmt.Fprintf(&b, "      ['%s', {\n", condition)

	files := s.Sources.Sorted()
	var cFiles, asmFiles []string
	for _, f := range files {
		if catalog.IsAssembly(f) {
			asmFiles = append(asmFiles, f)
		} else {
			cFiles = append(cFiles, f)
		}
	}
	gypSourceList(&b, "c_sources", cFiles)
	gypSourceList(&b, "asm_sources", asmFiles)

	fmt.Fprintf(&b, "      }],  # %s\n", condition)
	return b.String()
}

func filterKind(files []string, kind catalog.Kind) []string {
	var out []string
	for _, f := range files {
		if k, ok := catalog.KindOf(f); ok && k == kind {
			out = append(out, f)
		}
	}
	return out
}

// File renders the complete generated build file for the given disjoint
// sets.
func File(sets []sourceset.SourceSet, format Format) []byte {
	var b strings.Builder
	b.WriteString(copyrightHeader())

	sorted := sortSets(sets, format)
	if format == FormatGYP {
		b.WriteString(gypHeader)
		for _, s := range sorted {
			b.WriteString(gypStanza(s))
		}
		b.WriteString(gypFooter)
	} else {
		b.WriteString(gnHeader)
		for _, s := range sorted {
			b.WriteString(gnStanza(s))
		}
	}
	return []byte(b.String())
}
