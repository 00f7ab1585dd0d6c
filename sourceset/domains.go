// Copyright 2023 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package sourceset

// Supported configuration axis domains. These are closed lists: the
// generator only ever inspects build directories for these combinations, and
// the renderer relies on them to decide when a condition covers the whole
// domain and can be collapsed.
var (
	SupportedArchitectures = []string{"ia32", "arm", "arm-neon", "x64", "mipsel"}
	SupportedBrandings     = []string{"Chromium", "Chrome", "ChromiumOS", "ChromeOS", "Ensemble"}
	SupportedPlatforms     = []string{"linux", "win"}
)

const (
	// ArchArmNeon is the SIMD-extended variant of the arm architecture. It
	// is not a real target_arch value: conditions for it check the base
	// architecture plus the NEON flag.
	ArchArmNeon = "arm-neon"

	// PlatformBaseline is the platform that currently has no
	// platform-specific files, so a group restricted to exactly this
	// platform is treated as applying everywhere. Mac has no platform
	// specific files either, which is why it does not appear in
	// SupportedPlatforms at all. If linux-only groups ever appear in the
	// build output, this collapse becomes wrong; the renderer warns when
	// it fires so that divergence is noticed.
	PlatformBaseline = "linux"
)
