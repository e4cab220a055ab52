// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// ColorMode selects when output is colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode parses auto, always or never. The empty string means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(s); m {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
	}
}

// Colorizer wraps text in the few colors the shell uses.
type Colorizer struct {
	Enabled bool

	command *color.Color
	dim     *color.Color
	err     *color.Color
}

// NewColorizer returns a Colorizer for output written to f. In auto mode
// color is used only when f is a terminal, NO_COLOR is unset and TERM is
// not dumb.
func NewColorizer(mode ColorMode, f *os.File) Colorizer {
	enabled := false
	switch mode {
	case ColorAlways:
		enabled = true
	case ColorNever:
	default:
		enabled = autoColor(f)
	}
	return newColorizer(enabled)
}

func autoColor(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if t := os.Getenv("TERM"); t == "" || t == "dumb" {
		return false
	}
	return f != nil && term.IsTerminal(int(f.Fd()))
}

func newColorizer(enabled bool) Colorizer {
	c := Colorizer{
		Enabled: enabled,
		command: color.New(color.FgYellow),
		dim:     color.New(color.FgHiBlack),
		err:     color.New(color.FgRed),
	}
	for _, col := range []*color.Color{c.command, c.dim, c.err} {
		if enabled {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}
	return c
}

// Command colors a command name.
func (c Colorizer) Command(s string) string { return wrap(c.command, s) }

// Dim colors secondary text such as help lines.
func (c Colorizer) Dim(s string) string { return wrap(c.dim, s) }

// Error colors an error report.
func (c Colorizer) Error(s string) string { return wrap(c.err, s) }

func wrap(col *color.Color, s string) string {
	if col == nil {
		return s
	}
	return col.Sprint(s)
}
