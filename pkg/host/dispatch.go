// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"context"
	"fmt"

	"github.com/yeetrun/cmdhost/pkg/cmdline"
)

// Reserved command names and help flags.
const (
	HelpCommand      = "help"
	HelpCommandShort = "h"
	HelpFlagLong     = "--help"
	HelpFlagShort    = "-h"
)

// Outcome tells the caller what a dispatch did.
type Outcome int

const (
	// NotMatched means the command name is not registered. Nothing ran.
	NotMatched Outcome = iota
	// Executed means the command was bound and executed.
	Executed
	// Listed means the command list was handed to the Display.
	Listed
	// HelpShown means command help was handed to the Display.
	HelpShown
)

func (o Outcome) String() string {
	switch o {
	case NotMatched:
		return "not-matched"
	case Executed:
		return "executed"
	case Listed:
		return "listed"
	case HelpShown:
		return "help-shown"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Display renders the built-in help output.
type Display interface {
	// ListCommands is called for the "help" and "h" commands.
	ListCommands(cmds []Descriptor)
	// ShowHelp is called when a command is invoked with -h or --help.
	ShowHelp(cmd Descriptor, inv *cmdline.Invocation)
}

// Dispatcher resolves invocations against a Registry and runs them.
type Dispatcher struct {
	reg     *Registry
	display Display

	// Logf, if set, receives one line per dispatch.
	Logf func(format string, args ...any)
}

// NewDispatcher returns a Dispatcher for reg. display may be nil, in which
// case help requests are resolved but not rendered.
func NewDispatcher(reg *Registry, display Display) *Dispatcher {
	return &Dispatcher{reg: reg, display: display}
}

// Registry returns the registry d dispatches against.
func (d *Dispatcher) Registry() *Registry {
	return d.reg
}

// Propagate parses line and dispatches it.
func (d *Dispatcher) Propagate(ctx context.Context, line string) (Outcome, error) {
	inv, err := cmdline.Interpret(line)
	if err != nil {
		d.logf("parse %q: %v", line, err)
		return NotMatched, err
	}
	return d.Dispatch(ctx, inv)
}

// Dispatch runs inv.
//
// The reserved names "help" and "h" list all commands. Unknown names are a
// no-op reported as NotMatched. If inv carries -h or --help the command's
// help is shown instead of running it. Otherwise a fresh handler is created,
// every flag is bound in order, and Execute is called. Binding stops at the
// first error; the half-bound handler is discarded.
func (d *Dispatcher) Dispatch(ctx context.Context, inv *cmdline.Invocation) (Outcome, error) {
	name := inv.Name()
	if name == HelpCommand || name == HelpCommandShort {
		if d.display != nil {
			d.display.ListCommands(d.reg.All())
		}
		return Listed, nil
	}

	desc, ok := d.reg.Find(name)
	if !ok {
		d.logf("no command matches %q", name)
		return NotMatched, nil
	}

	if inv.Has(HelpFlagLong, HelpFlagShort) {
		if d.display != nil {
			d.display.ShowHelp(desc, inv)
		}
		return HelpShown, nil
	}

	cmd, ok := desc.Instance()
	if !ok {
		return NotMatched, fmt.Errorf("command %q no longer produces a handler", name)
	}
	if err := bind(cmd, inv); err != nil {
		d.logf("bind %s: %v", name, err)
		return NotMatched, err
	}
	if err := execute(ctx, cmd); err != nil {
		d.logf("execute %s: %v", name, err)
		return Executed, err
	}
	d.logf("executed %s", inv)
	return Executed, nil
}

func (d *Dispatcher) logf(format string, args ...any) {
	if d.Logf != nil {
		d.Logf(format, args...)
	}
}

// bind assigns every flag of inv to the matching parameter of cmd.
func bind(cmd Command, inv *cmdline.Invocation) error {
	params := cmd.Params()
	for _, kv := range inv.Params() {
		p, ok := matchParam(params, kv.Key)
		if !ok {
			return &UnknownParameterError{Key: kv.Key, Command: inv.Name()}
		}
		if err := p.set(kv.Value); err != nil {
			return &TypeCoercionError{
				Key:     kv.Key,
				Value:   kv.Value,
				Kind:    p.Kind,
				Command: inv.Name(),
				Err:     err,
			}
		}
	}
	return nil
}

func matchParam(params []Param, key string) (Param, bool) {
	for _, p := range params {
		if p.Matches(key) {
			return p, true
		}
	}
	return Param{}, false
}

// execute runs cmd, turning a returned error or a panic into an
// ExecutionError.
func execute(ctx context.Context, cmd Command) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ExecutionError{Command: cmd.Name(), Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	if err := cmd.Execute(ctx); err != nil {
		return &ExecutionError{Command: cmd.Name(), Err: err}
	}
	return nil
}
