// Copyright 2023 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package render

import (
	"fmt"
	"strings"

	"go.chromium.org/ffmpeggen/sourceset"
)

// Per-axis condition generation. An axis clause is omitted (GN) or rendered
// as a literal 1 (GYP) only when it is provably true: the axis set equals
// the entire supported domain, or, for the platform axis, the bare baseline
// singleton. The collapse must never fire for a proper non-baseline subset.

func coversDomain(axis sourceset.Set, domain []string) bool {
	return axis.Equal(sourceset.NewSet(domain...))
}

// platformCollapses reports whether the platform clause can be omitted.
// Restriction to the baseline platform alone collapses too, on the standing
// assumption that the baseline has no platform-specific files; see
// sourceset.PlatformBaseline.
func platformCollapses(platforms sourceset.Set) bool {
	return coversDomain(platforms, sourceset.SupportedPlatforms) ||
		platforms.Equal(sourceset.NewSet(sourceset.PlatformBaseline))
}

func gnArchClauses(arches sourceset.Set) []string {
	if coversDomain(arches, sourceset.SupportedArchitectures) {
		return nil
	}
	var clauses []string
	for _, arch := range arches.Sorted() {
		switch arch {
		case sourceset.ArchArmNeon:
			clauses = append(clauses, `(current_cpu == "arm" && arm_use_neon)`)
		case "ia32":
			clauses = append(clauses, `current_cpu == "x86"`)
		default:
			clauses = append(clauses, fmt.Sprintf("current_cpu == %q", arch))
		}
	}
	return clauses
}

func gnBrandingClauses(brandings sourceset.Set) []string {
	if coversDomain(brandings, sourceset.SupportedBrandings) {
		return nil
	}
	var clauses []string
	for _, branding := range brandings.Sorted() {
		clauses = append(clauses, fmt.Sprintf("ffmpeg_branding == %q", branding))
	}
	return clauses
}

func gnPlatformClauses(platforms sourceset.Set) []string {
	if platformCollapses(platforms) {
		return nil
	}
	var clauses []string
	for _, platform := range platforms.Sorted() {
		clauses = append(clauses, fmt.Sprintf("is_%s", platform))
	}
	return clauses
}

// gnCondition returns the GN condition expression for the set, or "" when
// the set is built unconditionally.
func gnCondition(s sourceset.SourceSet) string {
	var groups []string
	for _, clauses := range [][]string{
		gnArchClauses(s.Architectures),
		gnBrandingClauses(s.Brandings),
		gnPlatformClauses(s.Platforms),
	} {
		if len(clauses) > 0 {
			groups = append(groups, strings.Join(clauses, " || "))
		}
	}
	if len(groups) > 1 {
		for i, g := range groups {
			groups[i] = "(" + g + ")"
		}
	}
	return strings.Join(groups, " && ")
}

// gypCondition returns the GYP condition expression for the set. Collapsed
// axes render as a literal 1 so that the three clauses always conjoin.
func gypCondition(s sourceset.SourceSet) string {
	archClauses := []string{"1"}
	if !coversDomain(s.Architectures, sourceset.SupportedArchitectures) {
		archClauses = nil
		for _, arch := range s.Architectures.Sorted() {
			if arch == sourceset.ArchArmNeon {
				archClauses = append(archClauses, `(target_arch == "arm" and arm_neon == 1)`)
			} else {
				archClauses = append(archClauses, fmt.Sprintf("target_arch == %q", arch))
			}
		}
	}

	brandingClauses := []string{"1"}
	if !coversDomain(s.Brandings, sourceset.SupportedBrandings) {
		brandingClauses = nil
		for _, branding := range s.Brandings.Sorted() {
			brandingClauses = append(brandingClauses, fmt.Sprintf("ffmpeg_branding == %q", branding))
		}
	}

	platformClauses := []string{"1"}
	if !platformCollapses(s.Platforms) {
		platformClauses = nil
		for _, platform := range s.Platforms.Sorted() {
			platformClauses = append(platformClauses, fmt.Sprintf("OS == %q", platform))
		}
	}

	return fmt.Sprintf("(%s) and (%s) and (%s)",
		strings.Join(archClauses, " or "),
		strings.Join(brandingClauses, " or "),
		strings.Join(platformClauses, " or "))
}

// Condition returns the boolean build condition for the set in the given
// format. For GN an unconditional set yields the empty string.
func Condition(s sourceset.SourceSet, format Format) string {
	if format == FormatGYP {
		return gypCondition(s)
	}
	return gnCondition(s)
}
