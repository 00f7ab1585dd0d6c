// Copyright 2023 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package licenses verifies that every source file that could ship in the
// generated build, including everything it transitively #includes, carries
// an acceptable license.
package licenses

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"go.chromium.org/ffmpeggen/sourceset"
)

var includeRe = regexp.MustCompile(`#include\s+"([^"]+)"`)

// ignoredIncludes are include paths that are allowed to be unresolvable:
// either generated at build time, or includes that are always ifdef'ed out.
var ignoredIncludes = map[string]bool{
	// Generated files.
	"config.h":              true,
	"libavutil/avconfig.h":  true,
	"libavutil/ffversion.h": true,

	// Unused un-generated files (includes that get ifdef'ed out).
	"libavcodec/aacps_tables.h":     true,
	"libavcodec/aacsbr_tables.h":    true,
	"libavcodec/aac_tables.h":       true,
	"libavcodec/cabac_tables.h":     true,
	"libavcodec/cbrt_tables.h":      true,
	"libavcodec/mpegaudio_tables.h": true,
	"libavcodec/pcm_tables.h":       true,
	"libavcodec/sinewin_tables.h":   true,
}

// IncludedSources recurses over the include tree of the file at path,
// accumulating the absolute path of every included file (the seed file
// included) in visited.
//
// The walk is greedy: it does not evaluate preprocessor conditionals, so it
// considers every mentioned include. Includes are resolved first against the
// directory of the including file, then against sourceRoot; anything else
// must be on the ignored list, because an include that cannot be resolved
// means the license closure cannot be trusted.
//
// Pass the same visited set across calls to avoid re-walking shared headers
// and to tolerate include cycles.
func IncludedSources(path, sourceRoot string, visited map[string]struct{}) error {
	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(filepath.Join(sourceRoot, path))
		if err != nil {
			return err
		}
		path = abs
	}

	if _, ok := visited[path]; ok {
		return nil
	}
	visited[path] = struct{}{}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s while walking includes: %w", path, err)
	}

	currentDir := filepath.Dir(path)
	for _, m := range includeRe.FindAllSubmatch(content, -1) {
		include := string(m[1])

		var resolved string
		if p := filepath.Join(currentDir, include); isFile(p) {
			resolved = p
		} else if p := filepath.Join(sourceRoot, include); isFile(p) {
			resolved = p
		} else if ignoredIncludes[include] {
			continue
		} else {
			return fmt.Errorf("failed to resolve include %q in %s", include, path)
		}

		if err := IncludedSources(resolved, sourceRoot, visited); err != nil {
			return err
		}
	}
	return nil
}

// Closure returns the absolute path of every file referenced by the given
// sets plus everything those files transitively include, sorted.
func Closure(sets []sourceset.SourceSet, sourceRoot string) ([]string, error) {
	visited := make(map[string]struct{})
	for _, s := range sets {
		for _, src := range s.Sources.Sorted() {
			if err := IncludedSources(src, sourceRoot, visited); err != nil {
				return nil, err
			}
		}
	}
	files := maps.Keys(visited)
	slices.Sort(files)
	return files, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
