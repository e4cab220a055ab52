// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"context"
	"log"
)

// Command is implemented by every handler the host can dispatch to.
//
// A fresh value is created for each dispatch, so Params must return
// descriptors bound to the receiver's own fields.
type Command interface {
	// Name is the command string typed by the user.
	Name() string
	// Help describes the command in one line.
	Help() string
	// Params declares the bindable fields.
	Params() []Param
	// Execute runs the command after all flags are bound.
	Execute(ctx context.Context) error
}

// Factory creates a new handler value. Values that do not implement Command
// are ignored by NewRegistry.
type Factory func() any

// Descriptor is the registry entry for one command.
type Descriptor struct {
	Name string
	Help string
	New  Factory
}

// Instance creates a fresh handler for d.
func (d Descriptor) Instance() (Command, bool) {
	cmd, ok := d.New().(Command)
	return cmd, ok
}

// Params returns the parameter descriptors of a fresh handler for d.
func (d Descriptor) Params() []Param {
	cmd, ok := d.Instance()
	if !ok {
		return nil
	}
	return cmd.Params()
}

// Registry is the static command table. It is built once and never
// modified, so it is safe to share.
type Registry struct {
	commands []Descriptor
	byName   map[string]int
}

// NewRegistry builds a registry from factories, calling each one once to
// read the command name and help. Factories whose value is not a Command are
// skipped. When two commands share a name the first one wins and the later
// one is dropped with a warning.
func NewRegistry(factories ...Factory) *Registry {
	r := &Registry{byName: make(map[string]int)}
	for _, f := range factories {
		if f == nil {
			continue
		}
		cmd, ok := f().(Command)
		if !ok {
			continue
		}
		name := cmd.Name()
		if _, exists := r.byName[name]; exists {
			log.Printf("cmdhost: command %q already registered, ignoring duplicate", name)
			continue
		}
		r.byName[name] = len(r.commands)
		r.commands = append(r.commands, Descriptor{Name: name, Help: cmd.Help(), New: f})
	}
	return r
}

// All returns every descriptor in registration order.
func (r *Registry) All() []Descriptor {
	out := make([]Descriptor, len(r.commands))
	copy(out, r.commands)
	return out
}

// Find returns the descriptor registered under name.
func (r *Registry) Find(name string) (Descriptor, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Descriptor{}, false
	}
	return r.commands[i], true
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.commands)
}
