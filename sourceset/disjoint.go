// Copyright 2023 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package sourceset

import "golang.org/x/exp/slices"

// Disjoint partitions the given SourceSets into pairwise-disjoint sets by
// fixed-point refinement: while any two sets share files, their intersection
// is split out as a new set (built under the union of both sides'
// conditions) and each side is replaced by its remainder (restricted to the
// conditions common to both). Empty remainders are dropped.
//
// The result covers exactly the union of the input files, and each output
// set's axis sets name every configuration that builds those files.
//
// Each split strictly shrinks the overlap remaining between members, and the
// number of members is bounded by the number of distinct files, so the loop
// terminates. The pairwise re-scan is quadratic per iteration, which is fine
// given that the input is bounded by the handful of supported
// configurations.
func Disjoint(sets []SourceSet) []SourceSet {
	out := slices.Clone(sets)

	for split := true; split; {
		split = false
	scan:
		for i := 0; i < len(out); i++ {
			for j := i + 1; j < len(out); j++ {
				intersection := out[i].Intersect(out[j])
				if intersection.Empty() {
					// Already disjoint, nothing to do.
					continue
				}

				di := out[i].Difference(intersection)
				dj := out[j].Difference(intersection)

				// Replace both members with their remainders, dropping
				// empty ones, and add the intersection. Removal is by
				// index, so two structurally identical members are never
				// conflated.
				next := make([]SourceSet, 0, len(out)+1)
				for k, s := range out {
					if k == i || k == j {
						continue
					}
					next = append(next, s)
				}
				if !di.Empty() {
					next = append(next, di)
				}
				if !dj.Empty() {
					next = append(next, dj)
				}
				next = append(next, intersection)
				out = next

				// The collection changed; previously-checked pairs may
				// intersect now. Restart the scan.
				split = true
				break scan
			}
		}
	}

	result := make([]SourceSet, 0, len(out))
	for _, s := range out {
		if !s.Empty() {
			result = append(result, s)
		}
	}
	return result
}
