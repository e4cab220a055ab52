// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdline

import (
	"fmt"
	"strings"
)

// DuplicateParameterError is returned when the same flag key is supplied
// more than once on a line.
type DuplicateParameterError struct {
	Key     string
	Command string
}

func (e *DuplicateParameterError) Error() string {
	return fmt.Sprintf("duplicate parameter '%s'", e.Key)
}

// Param is one flag of an Invocation. An empty Value means the flag was
// present without a value.
type Param struct {
	Key   string
	Value string
}

// Invocation is the parsed form of one input line. It is read-only once
// built; keys keep the order they were added in.
type Invocation struct {
	name   string
	params []Param
	index  map[string]int
}

// NewInvocation builds an Invocation from already parsed parts.
func NewInvocation(name string, params ...Param) (*Invocation, error) {
	inv := &Invocation{name: name}
	for _, p := range params {
		if err := inv.add(p.Key, p.Value); err != nil {
			return nil, err
		}
	}
	return inv, nil
}

func (inv *Invocation) add(key, value string) error {
	if _, ok := inv.index[key]; ok {
		return &DuplicateParameterError{Key: key, Command: inv.name}
	}
	if inv.index == nil {
		inv.index = make(map[string]int)
	}
	inv.index[key] = len(inv.params)
	inv.params = append(inv.params, Param{Key: key, Value: value})
	return nil
}

// Name returns the command name, the first token of the line.
func (inv *Invocation) Name() string {
	return inv.name
}

// Params returns a copy of the flags in insertion order.
func (inv *Invocation) Params() []Param {
	out := make([]Param, len(inv.params))
	copy(out, inv.params)
	return out
}

// Len returns the number of flags.
func (inv *Invocation) Len() int {
	return len(inv.params)
}

// Value returns the value recorded for key.
func (inv *Invocation) Value(key string) (string, bool) {
	i, ok := inv.index[key]
	if !ok {
		return "", false
	}
	return inv.params[i].Value, true
}

// Has reports whether any of keys was supplied.
func (inv *Invocation) Has(keys ...string) bool {
	for _, k := range keys {
		if _, ok := inv.index[k]; ok {
			return true
		}
	}
	return false
}

func (inv *Invocation) String() string {
	var b strings.Builder
	b.WriteString(inv.name)
	for _, p := range inv.params {
		b.WriteByte(' ')
		b.WriteString(p.Key)
		if p.Value != "" {
			fmt.Fprintf(&b, " %q", p.Value)
		}
	}
	return b.String()
}
