// Copyright 2023 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package catalog

import "path/filepath"

// Kind classifies a source file by the tool that compiles it.
type Kind int

const (
	// CSource is compiled by the C compiler.
	CSource Kind = iota
	// GasSource is GNU assembler syntax.
	GasSource
	// YasmSource is yasm/nasm syntax.
	YasmSource
)

// KindOf classifies a path by extension. The second return value is false
// for files that are not FFmpeg sources at all.
func KindOf(path string) (Kind, bool) {
	switch filepath.Ext(path) {
	case ".c":
		return CSource, true
	case ".S":
		return GasSource, true
	case ".asm":
		return YasmSource, true
	}
	return 0, false
}

// IsAssembly reports whether the path names an assembly source of either
// dialect.
func IsAssembly(path string) bool {
	k, ok := KindOf(path)
	return ok && (k == GasSource || k == YasmSource)
}
