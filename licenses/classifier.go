// Copyright 2023 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package licenses

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Verdict is one classifier result: the file that was inspected and the
// license string detected in it.
type Verdict struct {
	Path    string
	License string
}

// Classifier determines the license of a single file.
type Classifier interface {
	Classify(ctx context.Context, path string) (Verdict, error)
}

// ScriptClassifier shells out to devscripts' licensecheck.pl, which prints
// exactly one line of the form "<path>: <license>".
type ScriptClassifier struct {
	scriptPath string
}

// NewScriptClassifier returns a classifier backed by the script at the given
// path.
func NewScriptClassifier(scriptPath string) (*ScriptClassifier, error) {
	if _, err := os.Stat(scriptPath); err != nil {
		return nil, fmt.Errorf("license classifier not found at %s: %w", scriptPath, err)
	}
	return &ScriptClassifier{scriptPath: scriptPath}, nil
}

func (c *ScriptClassifier) Classify(ctx context.Context, path string) (Verdict, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Verdict{}, err
	}

	cmd := exec.CommandContext(ctx, c.scriptPath, "-l", "100", abs)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return Verdict{}, fmt.Errorf("license classifier failed on %s: %w (stderr: %s)", path, err, stderr.String())
	}
	return ParseVerdict(stdout.String())
}

// ParseVerdict parses the classifier's one-line "<path>: <license>" output.
// The "*No copyright*" marker the classifier sometimes prepends to the
// license is stripped.
func ParseVerdict(line string) (Verdict, error) {
	name, license, ok := strings.Cut(line, ":")
	if !ok {
		return Verdict{}, fmt.Errorf("malformed classifier output %q", strings.TrimSpace(line))
	}
	license = strings.ReplaceAll(license, "*No copyright*", "")
	return Verdict{
		Path:    strings.TrimSpace(name),
		License: strings.TrimSpace(license),
	}, nil
}
