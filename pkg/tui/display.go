// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/yeetrun/cmdhost/pkg/cmdline"
	"github.com/yeetrun/cmdhost/pkg/host"
)

// Display renders command lists, command help and errors to a writer.
type Display struct {
	out   io.Writer
	color Colorizer
}

var _ host.Display = (*Display)(nil)

// NewDisplay returns a Display writing to out.
func NewDisplay(out io.Writer, color Colorizer) *Display {
	return &Display{out: out, color: color}
}

// ListCommands prints one "name: help" line per command.
func (d *Display) ListCommands(cmds []host.Descriptor) {
	for _, c := range cmds {
		fmt.Fprintf(d.out, "%s %s\n", d.color.Command(c.Name+":"), c.Help)
	}
}

// ShowHelp prints the command's help followed by its parameters.
func (d *Display) ShowHelp(cmd host.Descriptor, _ *cmdline.Invocation) {
	fmt.Fprintln(d.out)
	fmt.Fprintln(d.out, d.color.Command(cmd.Name+":"))
	if cmd.Help != "" {
		fmt.Fprintln(d.out, d.color.Dim(cmd.Help))
	}

	params := cmd.Params()
	if len(params) == 0 {
		return
	}
	fmt.Fprintln(d.out)
	fmt.Fprintln(d.out, "OPTIONS:")
	w := tabwriter.NewWriter(d.out, 0, 4, 2, ' ', 0)
	for _, p := range params {
		fmt.Fprintf(w, "    %s\t%s\t%s\n", paramLabel(p), flagSpelling(p), p.Help)
	}
	w.Flush()
}

// Error prints err as "[origin] message".
func (d *Display) Error(err error) {
	fmt.Fprintln(d.out, d.color.Error(fmt.Sprintf("[%s] %s", host.ErrorOrigin(err), err)))
}

func paramLabel(p host.Param) string {
	if p.Label != "" {
		return p.Label
	}
	if p.Long != "" {
		return p.Long
	}
	return p.Short
}

func flagSpelling(p host.Param) string {
	var parts []string
	if p.Short != "" {
		parts = append(parts, "-"+p.Short)
	}
	if p.Long != "" {
		parts = append(parts, "--"+p.Long)
	}
	s := strings.Join(parts, ", ")
	if p.Kind != host.KindBool {
		s += " " + strings.ToUpper(p.Kind.String())
	}
	return s
}
