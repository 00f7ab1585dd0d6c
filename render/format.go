// Copyright 2023 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package render

import (
	"fmt"
	"strings"
)

// Format selects the output build-file syntax.
type Format int

const (
	FormatGN Format = iota
	FormatGYP
)

func (f *Format) String() string {
	switch *f {
	case FormatGN:
		return "gn"
	case FormatGYP:
		return "gyp"
	}
	return ""
}

// Set implements flag.Value.
func (f *Format) Set(s string) error {
	switch strings.ToLower(s) {
	case "gn":
		*f = FormatGN
	case "gyp":
		*f = FormatGYP
	default:
		return fmt.Errorf("%s is not a valid output format, expected gn or gyp", s)
	}
	return nil
}

// OutputFileName returns the name of the generated file for the format.
func (f Format) OutputFileName() string {
	if f == FormatGYP {
		return "ffmpeg_generated.gypi"
	}
	return "ffmpeg_generated.gni"
}
