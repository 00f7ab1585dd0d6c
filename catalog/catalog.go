// Copyright 2023 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package catalog discovers FFmpeg source files and maps the object files
// observed in per-configuration build directories back onto them.
package catalog

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"

	"go.chromium.org/ffmpeggen/sourceset"
)

// objectDenylist names object files that must never contribute a source
// file, even when a valid mapping exists. The first group are objects whose
// source textually includes another listed source and would introduce
// duplicate symbols; the rest are trimmed for binary size.
//
// It is easy to remove more files than is healthy here and end up with a
// library that links cleanly but cannot be loaded. Treat additions with
// suspicion.
var objectDenylist = []string{
	"libavcodec/inverse.o",     // Includes libavutil/inverse.c
	"libavcodec/file_open.o",   // Includes libavutil/file_open.c
	"libavcodec/log2_tab.o",    // Includes libavutil/log2_tab.c
	"libavformat/golomb_tab.o", // Includes libavcodec/golomb.c
	"libavformat/log2_tab.o",   // Includes libavutil/log2_tab.c
	"libavformat/file_open.o",  // Includes libavutil/file_open.c

	"libavcodec/audioconvert.o",
	"libavcodec/resample.o",
	"libavcodec/resample2.o",
	"libavcodec/x86/dnxhd_mmx.o",
	"libavformat/sdp.o",
	"libavutil/adler32.o",
	"libavutil/audio_fifo.o",
	"libavutil/aes.o",
	"libavutil/blowfish.o",
	"libavutil/cast5.o",
	"libavutil/des.o",
	"libavutil/file.o",
	"libavutil/hash.o",
	"libavutil/hmac.o",
	"libavutil/lls.o",
	"libavutil/murmur3.o",
	"libavutil/rc4.o",
	"libavutil/ripemd.o",
	"libavutil/sha512.o",
	"libavutil/tree.o",
	"libavutil/xtea.o",
	"libavutil/xga_font_data.o",
}

var skippedDirs = map[string]bool{
	".git": true,
	".svn": true,
}

// Sources walks the FFmpeg source tree rooted at root and returns the
// normalized relative paths of every C and assembly source file, sorted.
func Sources(root string) ([]string, error) {
	var sources []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skippedDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if _, ok := KindOf(path); !ok {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		sources = append(sources, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk source dir %s: %w", root, err)
	}
	slices.Sort(sources)
	return sources, nil
}

// Objects walks one configuration's build directory and returns the
// normalized relative paths of every object file, sorted, with the denylist
// already applied.
func Objects(buildDir string) ([]string, error) {
	var objects []string
	err := filepath.WalkDir(buildDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".o" {
			return nil
		}
		rel, err := filepath.Rel(buildDir, path)
		if err != nil {
			return err
		}
		objects = append(objects, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk build dir %s: %w", buildDir, err)
	}
	for _, denied := range objectDenylist {
		if i := slices.Index(objects, denied); i >= 0 {
			objects = slices.Delete(objects, i, i+1)
		}
	}
	slices.Sort(objects)
	return objects, nil
}

// ObjectMap returns a one-to-one mapping from the object file each source
// would compile to back to the source path.
func ObjectMap(sources []string) map[string]string {
	m := make(map[string]string, len(sources))
	for _, s := range sources {
		obj := strings.TrimSuffix(s, filepath.Ext(s)) + ".o"
		m[obj] = s
	}
	return m
}

// SourceSetFor resolves each observed object file to its source file. A
// lookup miss means the source catalog and the observed build outputs are
// mutually inconsistent, which is unrecoverable.
func SourceSetFor(objectMap map[string]string, objects []string) (sourceset.Set, error) {
	set := make(sourceset.Set, len(objects))
	for _, obj := range objects {
		src, ok := objectMap[obj]
		if !ok {
			return nil, fmt.Errorf("no source file found for object file %s; source and build trees are inconsistent", obj)
		}
		set[src] = struct{}{}
	}
	return set, nil
}
