// Copyright 2023 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.chromium.org/ffmpeggen/lib/logger"
	"go.chromium.org/ffmpeggen/sourceset"
)

// Config identifies one supported build configuration.
type Config struct {
	Arch     string
	Branding string
	Platform string
}

// Configs enumerates every supported configuration combination, in domain
// order, so that the extraction pass is deterministic.
func Configs() []Config {
	var configs []Config
	for _, arch := range sourceset.SupportedArchitectures {
		for _, branding := range sourceset.SupportedBrandings {
			for _, platform := range sourceset.SupportedPlatforms {
				configs = append(configs, Config{arch, branding, platform})
			}
		}
	}
	return configs
}

// BuildDir returns the configuration's build output directory under root,
// following the build.<arch>.<platform>/<branding> layout produced by
// build_ffmpeg.
func (c Config) BuildDir(root string) string {
	return filepath.Join(root, fmt.Sprintf("build.%s.%s", c.Arch, c.Platform), c.Branding)
}

func (c Config) String() string {
	return fmt.Sprintf("%s/%s/%s", c.Arch, c.Branding, c.Platform)
}

// Extract scans every supported configuration's build directory under
// buildRoot and returns one SourceSet per configuration that was actually
// built. Configurations whose build directory is absent are skipped: most
// combinations are not built on any given run, and that is not an error.
func Extract(ctx context.Context, objectMap map[string]string, buildRoot string) ([]sourceset.SourceSet, error) {
	var sets []sourceset.SourceSet
	for _, c := range Configs() {
		dir := c.BuildDir(buildRoot)
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			logger.Debugf(ctx, "skipping %s: build directory %s not found", c, dir)
			continue
		}
		logger.Infof(ctx, "processing build directory %s", dir)

		objects, err := Objects(dir)
		if err != nil {
			return nil, err
		}
		sources, err := SourceSetFor(objectMap, objects)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c, err)
		}
		sets = append(sets, sourceset.New(sources, c.Arch, c.Branding, c.Platform))
	}
	return sets, nil
}
