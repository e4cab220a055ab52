// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmdline turns one line of free-form input into an Invocation: a
// command name plus the flags that followed it.
//
// Parsing runs in three steps:
//   - Sanitize replaces every double-quoted literal with a placeholder token
//     such as <STR-[1]> and remembers the literal.
//   - ScanShort and ScanLong classify the whitespace separated tokens of the
//     sanitized line into short flag groups (-abc) and long flags (--name).
//   - Interpret looks one token ahead of every flag to find its value,
//     resolving placeholders back to their literal text.
//
// # Flag Syntax
//
//	example -l -n 3 --message "hello world"
//
// A short group emits one flag per character, all pointing at the same token,
// so in "cmd -ab value" both -a and -b see "value". A flag followed by another
// flag, or by nothing, gets the empty string, which binders treat as
// "present". Quoted literals are never classified as flags:
//
//	cmd -m "--not-a-flag"
//
// Short flags are recorded before long flags. Supplying the same key twice
// fails with a *DuplicateParameterError.
package cmdline
