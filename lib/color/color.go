// Copyright 2023 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package color

import (
	"fmt"
	"os"
	"strings"
)

// ColorCode is an ANSI escape code.
type ColorCode int

const (
	BlackFg ColorCode = 30 + iota
	RedFg
	GreenFg
	YellowFg
	BlueFg
	MagentaFg
	CyanFg
	WhiteFg
	DefaultFg ColorCode = 39
)

// EnableColor selects whether output is colorized. It implements flag.Value
// so it can be set directly from the command line.
type EnableColor int

const (
	ColorNever EnableColor = iota
	ColorAuto
	ColorAlways
)

func (ec *EnableColor) String() string {
	switch *ec {
	case ColorNever:
		return "never"
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	}
	return ""
}

func (ec *EnableColor) Set(s string) error {
	switch strings.ToLower(s) {
	case "never":
		*ec = ColorNever
	case "auto":
		*ec = ColorAuto
	case "always":
		*ec = ColorAlways
	default:
		return fmt.Errorf("%s is not a valid color value", s)
	}
	return nil
}

// Color colorizes strings for terminal output.
type Color interface {
	Black(format string, a ...interface{}) string
	Red(format string, a ...interface{}) string
	Green(format string, a ...interface{}) string
	Yellow(format string, a ...interface{}) string
	Blue(format string, a ...interface{}) string
	Magenta(format string, a ...interface{}) string
	Cyan(format string, a ...interface{}) string
	White(format string, a ...interface{}) string
	DefaultColor(format string, a ...interface{}) string
	WithColor(code ColorCode, format string, a ...interface{}) string
	Enabled() bool
}

type color struct {
	enabled bool
}

// NewColor returns a Color configured per the given EnableColor value. In
// auto mode, color is enabled only when stdout is a terminal.
func NewColor(ec EnableColor) Color {
	enabled := ec == ColorAlways
	if ec == ColorAuto {
		enabled = isTerminal(os.Stdout.Fd())
	}
	return color{enabled}
}

func (c color) WithColor(code ColorCode, format string, a ...interface{}) string {
	s := fmt.Sprintf(format, a...)
	if !c.enabled {
		return s
	}
	return fmt.Sprintf("\033[%dm%s\033[0m", code, s)
}

func (c color) Black(f string, a ...interface{}) string   { return c.WithColor(BlackFg, f, a...) }
func (c color) Red(f string, a ...interface{}) string     { return c.WithColor(RedFg, f, a...) }
func (c color) Green(f string, a ...interface{}) string   { return c.WithColor(GreenFg, f, a...) }
func (c color) Yellow(f string, a ...interface{}) string  { return c.WithColor(YellowFg, f, a...) }
func (c color) Blue(f string, a ...interface{}) string    { return c.WithColor(BlueFg, f, a...) }
func (c color) Magenta(f string, a ...interface{}) string { return c.WithColor(MagentaFg, f, a...) }
func (c color) Cyan(f string, a ...interface{}) string    { return c.WithColor(CyanFg, f, a...) }
func (c color) White(f string, a ...interface{}) string   { return c.WithColor(WhiteFg, f, a...) }
func (c color) DefaultColor(f string, a ...interface{}) string {
	return c.WithColor(DefaultFg, f, a...)
}
func (c color) Enabled() bool { return c.enabled }
