// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdline

import (
	"fmt"
	"strings"
)

const (
	quote = '"'

	// placeholderPrefix marks a token produced by Sanitize.
	placeholderPrefix = "<STR-["
)

// Placeholders maps a placeholder token to the quoted literal it replaced.
type Placeholders map[string]string

// Lookup returns the literal registered for token.
func (p Placeholders) Lookup(token string) (string, bool) {
	v, ok := p[strings.TrimSpace(token)]
	return v, ok
}

// IsPlaceholder reports whether token was produced by Sanitize.
func IsPlaceholder(token string) bool {
	return strings.HasPrefix(token, placeholderPrefix)
}

func placeholderName(n int) string {
	return fmt.Sprintf("%s%d]>", placeholderPrefix, n)
}

// Sanitize replaces every complete "..." segment of raw with a placeholder
// token and returns the rewritten line together with the literals.
//
// Segments are replaced one at a time, left to right, restarting the scan on
// the rewritten line until no quote pair remains. The text around a replaced
// segment is trimmed and the placeholder is padded with single spaces, so the
// placeholder always stands as its own token. A dangling quote with no
// partner is left in the output untouched.
func Sanitize(raw string) (string, Placeholders) {
	out := strings.TrimSpace(raw)
	table := make(Placeholders)
	n := 0
	for {
		next, literal, ok := replaceNext(out, n+1)
		if !ok {
			break
		}
		n++
		table[placeholderName(n)] = literal
		out = next
	}
	return out, table
}

// replaceNext replaces the first quote pair of s with the placeholder for n.
func replaceNext(s string, n int) (out, literal string, ok bool) {
	start := strings.IndexByte(s, quote)
	if start < 0 {
		return "", "", false
	}
	end := strings.IndexByte(s[start+1:], quote)
	if end < 0 {
		return "", "", false
	}
	end += start + 1

	literal = s[start+1 : end]
	before := strings.TrimSpace(s[:start])
	after := strings.TrimSpace(s[end+1:])
	out = before + " " + placeholderName(n) + " " + after
	return out, literal, true
}
