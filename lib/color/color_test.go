// Copyright 2023 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package color

import "testing"

func TestNewColorRespectsEnableColor(t *testing.T) {
	if NewColor(ColorAlways).Enabled() != true {
		t.Errorf("ColorAlways should enable color")
	}
	if NewColor(ColorNever).Enabled() != false {
		t.Errorf("ColorNever should disable color")
	}
	// Auto mode probes the terminal; the result depends on the environment,
	// but constructing the Color must work on every platform.
	NewColor(ColorAuto)
}

func TestWithColor(t *testing.T) {
	c := NewColor(ColorAlways)
	if got, want := c.Red("x"), "\033[31mx\033[0m"; got != want {
		t.Errorf("Red = %q, want %q", got, want)
	}
	plain := NewColor(ColorNever)
	if got := plain.Red("x"); got != "x" {
		t.Errorf("disabled color should pass text through, got %q", got)
	}
}

func TestEnableColorFlagValue(t *testing.T) {
	var ec EnableColor
	for _, s := range []string{"never", "auto", "always"} {
		if err := ec.Set(s); err != nil {
			t.Errorf("Set(%q) failed: %v", s, err)
		}
		if got := ec.String(); got != s {
			t.Errorf("String() = %q after Set(%q)", got, s)
		}
	}
	if err := ec.Set("sometimes"); err == nil {
		t.Errorf("Set should reject unrecognized values")
	}
}
