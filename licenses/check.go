// Copyright 2023 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package licenses

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"go.chromium.org/ffmpeggen/lib/logger"
)

// licenseAllowlist names the licenses acceptable for static linking.
var licenseAllowlist = map[string]bool{
	"BSD (3 clause) LGPL (v2.1 or later)": true,
	"ISC GENERATED FILE":                  true,
	"LGPL (v2.1 or later)":                true,
	"LGPL (v2.1 or later) GENERATED FILE": true,
	"MIT/X11 (BSD like)":                  true,
	"Public domain LGPL (v2.1 or later)":  true,
}

// unknownLicense is the classifier's verdict for files with no
// machine-detectable notice.
const unknownLicense = "UNKNOWN"

// unknownAllowlist names files permitted to report an UNKNOWN license.
// These come from the Independent JPEG Group: no named license, but usage is
// allowed.
var unknownAllowlist = map[string]bool{
	"jrevdct.c":           true,
	"jfdctfst.c":          true,
	"jfdctint_template.c": true,
}

// Allowed reports whether the verdict's license is acceptable for shipping.
func Allowed(v Verdict) bool {
	if licenseAllowlist[v.License] {
		return true
	}
	return v.License == unknownLicense && unknownAllowlist[filepath.Base(v.Path)]
}

// CheckOptions parametrize a license check pass.
type CheckOptions struct {
	// PrintLicenses echoes every accepted (file, license) pair.
	PrintLicenses bool
	// Jobs bounds classifier parallelism; zero means NumCPU. Classifier
	// invocations are independent, so running them concurrently is safe.
	Jobs int
}

// Check classifies every file and validates the verdicts against the
// allowlists. It runs the full pass and reports every failing file before
// returning an error, so a single run surfaces all problems. The verdicts
// for all files are returned even on failure, for reporting.
func Check(ctx context.Context, files []string, classifier Classifier, opts CheckOptions) ([]Verdict, error) {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	verdicts := make([]Verdict, len(files))
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(jobs)
	for i, f := range files {
		i, f := i, f
		eg.Go(func() error {
			v, err := classifier.Classify(gctx, f)
			if err != nil {
				return err
			}
			verdicts[i] = v
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	failures := 0
	for _, v := range verdicts {
		if Allowed(v) {
			if opts.PrintLicenses {
				logger.Infof(ctx, "%s: %s", v.Path, v.License)
			}
			continue
		}
		failures++
		logger.Errorf(ctx, "unexpected license in %s: %q", v.Path, v.License)
	}
	if failures > 0 {
		return verdicts, fmt.Errorf("%d files failed the license check", failures)
	}
	return verdicts, nil
}
