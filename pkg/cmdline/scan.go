// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdline

import (
	"regexp"
	"strings"
)

var (
	shortGroupRe = regexp.MustCompile(`^-[0-9a-zA-Z]+`)
	longFlagRe   = regexp.MustCompile(`--[0-9a-zA-Z-]+`)
)

// Flag is a flag found at a token index. Name is the literal key as it will
// appear in the Invocation, e.g. "-v" or "--verbose".
type Flag struct {
	Index int
	Name  string
}

// Split breaks a sanitized line into whitespace separated tokens.
func Split(line string) []string {
	return strings.Fields(line)
}

// ScanShort returns the short flags of tokens in token order. Every
// character after the leading dash of a group becomes its own flag, and all
// of them share the group's index.
func ScanShort(tokens []string) []Flag {
	var flags []Flag
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if !shortGroupRe.MatchString(tok) {
			continue
		}
		for _, c := range tok[1:] {
			flags = append(flags, Flag{Index: i, Name: "-" + string(c)})
		}
	}
	return flags
}

// ScanLong returns the long flags of tokens in token order. A token counts
// as a long flag if it contains "--name" anywhere; the flag is named by the
// whole token.
func ScanLong(tokens []string) []Flag {
	var flags []Flag
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if !longFlagRe.MatchString(tok) {
			continue
		}
		flags = append(flags, Flag{Index: i, Name: tok})
	}
	return flags
}
