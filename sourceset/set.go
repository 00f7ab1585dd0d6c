// Copyright 2023 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package sourceset

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Set is an unordered collection of unique strings.
type Set map[string]struct{}

// NewSet returns a Set containing the given elements.
func NewSet(elems ...string) Set {
	s := make(Set, len(elems))
	for _, e := range elems {
		s[e] = struct{}{}
	}
	return s
}

func (s Set) Contains(e string) bool {
	_, ok := s[e]
	return ok
}

func (s Set) Empty() bool {
	return len(s) == 0
}

// Sorted returns the elements of the set in lexicographic order.
func (s Set) Sorted() []string {
	elems := maps.Keys(s)
	slices.Sort(elems)
	return elems
}

func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for e := range s {
		if !other.Contains(e) {
			return false
		}
	}
	return true
}

// Union returns a new Set with the elements present in either set.
func (s Set) Union(other Set) Set {
	out := make(Set, len(s)+len(other))
	maps.Copy(out, s)
	maps.Copy(out, other)
	return out
}

// Intersect returns a new Set with the elements present in both sets.
func (s Set) Intersect(other Set) Set {
	out := make(Set)
	for e := range s {
		if other.Contains(e) {
			out[e] = struct{}{}
		}
	}
	return out
}

// Difference returns a new Set with the elements of s not present in other.
func (s Set) Difference(other Set) Set {
	out := make(Set)
	for e := range s {
		if !other.Contains(e) {
			out[e] = struct{}{}
		}
	}
	return out
}
