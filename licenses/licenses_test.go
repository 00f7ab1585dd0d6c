// Copyright 2023 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package licenses

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"go.chromium.org/ffmpeggen/lib/color"
	"go.chromium.org/ffmpeggen/lib/logger"
	"go.chromium.org/ffmpeggen/sourceset"
)

func quietContext() context.Context {
	l := logger.NewLogger(logger.FatalLevel, color.NewColor(color.ColorNever), io.Discard, io.Discard, "")
	return logger.WithLogger(context.Background(), l)
}

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for p, content := range files {
		abs := filepath.Join(root, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(abs, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func relClosure(t *testing.T, root string, visited map[string]struct{}) []string {
	t.Helper()
	var rel []string
	for p := range visited {
		r, err := filepath.Rel(root, p)
		if err != nil {
			t.Fatal(err)
		}
		rel = append(rel, filepath.ToSlash(r))
	}
	return rel
}

func TestIncludedSourcesResolvesLocallyThenFromRoot(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"libavcodec/a.c":     "#include \"local.h\"\n#include \"libavutil/shared.h\"\n",
		"libavcodec/local.h": "int x;\n",
		"libavutil/shared.h": "int y;\n",
	})

	visited := make(map[string]struct{})
	if err := IncludedSources("libavcodec/a.c", root, visited); err != nil {
		t.Fatal(err)
	}

	got := relClosure(t, root, visited)
	want := []string{"libavcodec/a.c", "libavcodec/local.h", "libavutil/shared.h"}
	if d := cmp.Diff(want, got, sortStrings()); d != "" {
		t.Errorf("closure mismatch: (-want +got):\n%s", d)
	}
}

func TestIncludedSourcesToleratesCycles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.h": "#include \"b.h\"\n",
		"b.h": "#include \"a.h\"\n",
	})

	visited := make(map[string]struct{})
	if err := IncludedSources("a.h", root, visited); err != nil {
		t.Fatal(err)
	}
	if len(visited) != 2 {
		t.Errorf("expected 2 files in closure, got %d", len(visited))
	}
}

func TestIncludedSourcesSkipsIgnoredIncludes(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.c": "#include \"config.h\"\n#include \"libavutil/avconfig.h\"\n",
	})

	visited := make(map[string]struct{})
	if err := IncludedSources("a.c", root, visited); err != nil {
		t.Fatal(err)
	}
	if len(visited) != 1 {
		t.Errorf("expected only the seed file in the closure, got %d files", len(visited))
	}
}

// An include that resolves nowhere and is not on the ignore list makes the
// whole closure untrustworthy.
func TestIncludedSourcesFailsOnUnresolvableInclude(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.c": "#include \"no_such_header.h\"\n",
	})

	err := IncludedSources("a.c", root, make(map[string]struct{}))
	if err == nil {
		t.Fatal("expected an error for an unresolvable include")
	}
	if !strings.Contains(err.Error(), "no_such_header.h") {
		t.Errorf("error should name the unresolvable include, got: %v", err)
	}
}

func TestClosureIsMemoizedAcrossSets(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.c":      "#include \"shared.h\"\n",
		"b.c":      "#include \"shared.h\"\n",
		"shared.h": "int z;\n",
	})

	sets := []sourceset.SourceSet{
		sourceset.New(sourceset.NewSet("a.c"), "ia32", "Chromium", "linux"),
		sourceset.New(sourceset.NewSet("b.c"), "x64", "Chromium", "linux"),
	}
	got, err := Closure(sets, root)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Errorf("expected 3 files in closure, got %d: %v", len(got), got)
	}
}

func TestParseVerdict(t *testing.T) {
	for _, tc := range []struct {
		name string
		line string
		want Verdict
	}{
		{
			name: "plain verdict",
			line: "/src/libavcodec/a.c: LGPL (v2.1 or later)\n",
			want: Verdict{Path: "/src/libavcodec/a.c", License: "LGPL (v2.1 or later)"},
		},
		{
			name: "no-copyright marker is stripped",
			line: "/src/libavutil/b.c: *No copyright* LGPL (v2.1 or later)\n",
			want: Verdict{Path: "/src/libavutil/b.c", License: "LGPL (v2.1 or later)"},
		},
		{
			name: "unknown license",
			line: "/src/libavcodec/jrevdct.c: UNKNOWN\n",
			want: Verdict{Path: "/src/libavcodec/jrevdct.c", License: "UNKNOWN"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseVerdict(tc.line)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(tc.want, got); d != "" {
				t.Errorf("ParseVerdict mismatch: (-want +got):\n%s", d)
			}
		})
	}
}

func TestParseVerdictMalformed(t *testing.T) {
	if _, err := ParseVerdict("garbage with no separator"); err == nil {
		t.Fatal("expected an error for malformed classifier output")
	}
}

func TestAllowed(t *testing.T) {
	for _, tc := range []struct {
		name string
		v    Verdict
		want bool
	}{
		{"allowlisted license", Verdict{Path: "a.c", License: "LGPL (v2.1 or later)"}, true},
		{"generated file", Verdict{Path: "a.c", License: "ISC GENERATED FILE"}, true},
		{"gpl is rejected", Verdict{Path: "a.c", License: "GPL (v2 or later)"}, false},
		{"unknown on exception list", Verdict{Path: "libavcodec/jrevdct.c", License: "UNKNOWN"}, true},
		{"unknown off exception list", Verdict{Path: "libavcodec/other.c", License: "UNKNOWN"}, false},
		{"empty license", Verdict{Path: "a.c", License: ""}, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := Allowed(tc.v); got != tc.want {
				t.Errorf("Allowed(%v) = %v, want %v", tc.v, got, tc.want)
			}
		})
	}
}

// fakeClassifier serves canned verdicts keyed by path.
type fakeClassifier struct {
	licenses map[string]string
}

func (c *fakeClassifier) Classify(_ context.Context, path string) (Verdict, error) {
	license, ok := c.licenses[path]
	if !ok {
		return Verdict{}, fmt.Errorf("no canned verdict for %s", path)
	}
	return Verdict{Path: path, License: license}, nil
}

func TestCheckAllPass(t *testing.T) {
	classifier := &fakeClassifier{licenses: map[string]string{
		"a.c": "LGPL (v2.1 or later)",
		"b.c": "MIT/X11 (BSD like)",
	}}

	verdicts, err := Check(quietContext(), []string{"a.c", "b.c"}, classifier, CheckOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(verdicts) != 2 {
		t.Errorf("expected 2 verdicts, got %d", len(verdicts))
	}
}

// The check completes the whole pass and reports a failure covering every
// bad file, rather than stopping at the first one.
func TestCheckCollectsAllFailures(t *testing.T) {
	classifier := &fakeClassifier{licenses: map[string]string{
		"a.c": "GPL (v2 or later)",
		"b.c": "LGPL (v2.1 or later)",
		"c.c": "UNKNOWN",
	}}

	verdicts, err := Check(quietContext(), []string{"a.c", "b.c", "c.c"}, classifier, CheckOptions{Jobs: 2})
	if err == nil {
		t.Fatal("expected the check to fail")
	}
	if !strings.Contains(err.Error(), "2 files") {
		t.Errorf("error should count both failing files, got: %v", err)
	}
	if len(verdicts) != 3 {
		t.Errorf("verdicts for all files should still be returned, got %d", len(verdicts))
	}
}

func TestWriteSPDX(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "report.spdx.json")

	verdicts := []Verdict{
		{Path: filepath.Join(dir, "libavcodec/a.c"), License: "LGPL (v2.1 or later)"},
		{Path: filepath.Join(dir, "libavutil/b.c"), License: "MIT/X11 (BSD like)"},
	}
	if err := WriteSPDX(out, dir, verdicts); err != nil {
		t.Fatal(err)
	}

	content, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`"spdxVersion": "SPDX-2.2"`,
		"libavcodec/a.c",
		"LGPL (v2.1 or later)",
	} {
		if !strings.Contains(string(content), want) {
			t.Errorf("SPDX report missing %q", want)
		}
	}
}

func sortStrings() cmp.Option {
	return cmpopts.SortSlices(func(a, b string) bool { return a < b })
}
