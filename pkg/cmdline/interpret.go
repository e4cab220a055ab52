// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdline

import "strings"

// Interpret parses raw into an Invocation.
//
// The command name is the first token. Short flags are added first, then
// long flags, each in token order. A flag's value is the token right after
// it unless that token is missing or starts with "-"; a placeholder token is
// replaced by its quoted literal.
func Interpret(raw string) (*Invocation, error) {
	line, table := Sanitize(raw)
	tokens := Split(line)

	inv := &Invocation{}
	if len(tokens) > 0 {
		inv.name = strings.TrimSpace(tokens[0])
	}

	flags := append(ScanShort(tokens), ScanLong(tokens)...)
	for _, f := range flags {
		if err := inv.add(f.Name, valueAfter(tokens, f.Index, table)); err != nil {
			return nil, err
		}
	}
	return inv, nil
}

// valueAfter applies the lookahead rule for a flag at index i.
func valueAfter(tokens []string, i int, table Placeholders) string {
	if i+1 >= len(tokens) {
		return ""
	}
	next := tokens[i+1]
	switch {
	case IsPlaceholder(next):
		// A placeholder with no literal behind it resolves to empty.
		v, _ := table.Lookup(next)
		return v
	case strings.HasPrefix(next, "-"):
		return ""
	default:
		return strings.TrimSpace(next)
	}
}
