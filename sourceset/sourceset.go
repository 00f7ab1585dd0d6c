// Copyright 2023 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package sourceset models the sets of source files compiled by each build
// configuration, and partitions them into pairwise-disjoint groups suitable
// for rendering as build-file conditionals.
package sourceset

// SourceSet represents a set of source files that are built under the given
// sets of architectures, brandings and platforms.
//
// A SourceSet fresh out of a build directory scan has singleton axis sets:
// exactly one architecture, branding and platform. After partitioning, the
// axis sets record every configuration axis value under which exactly this
// file set is built.
type SourceSet struct {
	Sources       Set
	Architectures Set
	Brandings     Set
	Platforms     Set
}

// New returns a SourceSet for a single observed build configuration.
func New(sources Set, arch, branding, platform string) SourceSet {
	return SourceSet{
		Sources:       sources,
		Architectures: NewSet(arch),
		Brandings:     NewSet(branding),
		Platforms:     NewSet(platform),
	}
}

// Intersect returns a new SourceSet containing the source files common to
// both s and other.
//
// The intersection files are built under every condition that either side
// builds them under, so the resulting axis sets are the unions of the two
// sides' axis sets.
func (s SourceSet) Intersect(other SourceSet) SourceSet {
	return SourceSet{
		Sources:       s.Sources.Intersect(other.Sources),
		Architectures: s.Architectures.Union(other.Architectures),
		Brandings:     s.Brandings.Union(other.Brandings),
		Platforms:     s.Platforms.Union(other.Platforms),
	}
}

// Difference returns a new SourceSet containing the source files of s not
// present in other.
//
// The remaining files are only known to be restricted to conditions common
// to both sides, so the resulting axis sets are the intersections of the two
// sides' axis sets.
func (s SourceSet) Difference(other SourceSet) SourceSet {
	return SourceSet{
		Sources:       s.Sources.Difference(other.Sources),
		Architectures: s.Architectures.Intersect(other.Architectures),
		Brandings:     s.Brandings.Intersect(other.Brandings),
		Platforms:     s.Platforms.Intersect(other.Platforms),
	}
}

// Empty reports whether the SourceSet contains no source files or has an
// empty axis set. A set of files built nowhere is meaningless and must never
// be rendered.
func (s SourceSet) Empty() bool {
	return s.Sources.Empty() || s.Architectures.Empty() ||
		s.Brandings.Empty() || s.Platforms.Empty()
}

// Equal reports structural equality: same files and same three axis sets.
// Two sets with identical files but different axis sets are distinct.
func (s SourceSet) Equal(other SourceSet) bool {
	return s.Sources.Equal(other.Sources) &&
		s.Architectures.Equal(other.Architectures) &&
		s.Brandings.Equal(other.Brandings) &&
		s.Platforms.Equal(other.Platforms)
}
