// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdline

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantLine  string
		wantTable Placeholders
	}{
		{
			name:      "no quotes",
			raw:       "  cmd -a b  ",
			wantLine:  "cmd -a b",
			wantTable: Placeholders{},
		},
		{
			name:      "single literal keeps interior spaces",
			raw:       `cmd -m "  hello world  " -n 3`,
			wantLine:  "cmd -m <STR-[1]> -n 3",
			wantTable: Placeholders{"<STR-[1]>": "  hello world  "},
		},
		{
			name:     "two literals numbered in order",
			raw:      `cmd "a b" -x "c"`,
			wantLine: "cmd <STR-[1]> -x <STR-[2]> ",
			wantTable: Placeholders{
				"<STR-[1]>": "a b",
				"<STR-[2]>": "c",
			},
		},
		{
			name:      "flag text inside quotes",
			raw:       `cmd -m "--help -h"`,
			wantLine:  "cmd -m <STR-[1]> ",
			wantTable: Placeholders{"<STR-[1]>": "--help -h"},
		},
		{
			name:      "empty literal",
			raw:       `cmd -m ""`,
			wantLine:  "cmd -m <STR-[1]> ",
			wantTable: Placeholders{"<STR-[1]>": ""},
		},
		{
			name:      "dangling quote passes through",
			raw:       `cmd -m "unterminated`,
			wantLine:  `cmd -m "unterminated`,
			wantTable: Placeholders{},
		},
		{
			name:      "dangling quote after a pair",
			raw:       `cmd "ok" -m "oops`,
			wantLine:  `cmd <STR-[1]> -m "oops`,
			wantTable: Placeholders{"<STR-[1]>": "ok"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, table := Sanitize(tt.raw)
			if line != tt.wantLine {
				t.Errorf("line = %q, want %q", line, tt.wantLine)
			}
			if diff := cmp.Diff(tt.wantTable, table); diff != "" {
				t.Errorf("table mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSanitizeCountsQuotePairs(t *testing.T) {
	for _, raw := range []string{
		``,
		`a`,
		`"x"`,
		`"x" "y"`,
		`a "b c" d "e" f "g h i"`,
		`"x" "y" "z`,
	} {
		_, table := Sanitize(raw)
		want := strings.Count(raw, `"`) / 2
		if len(table) != want {
			t.Errorf("Sanitize(%q) produced %d placeholders, want %d", raw, len(table), want)
		}
	}
}

func TestScanShort(t *testing.T) {
	tokens := []string{"cmd", "-ab", "val", "--long", "-c", "x-y", "<STR-[1]>"}
	got := ScanShort(tokens)
	want := []Flag{
		{Index: 1, Name: "-a"},
		{Index: 1, Name: "-b"},
		{Index: 4, Name: "-c"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ScanShort = %+v, want %+v", got, want)
	}
}

func TestScanLong(t *testing.T) {
	tokens := []string{"cmd", "--name", "v", "-x", "--dry-run", "a--b"}
	got := ScanLong(tokens)
	want := []Flag{
		{Index: 1, Name: "--name"},
		{Index: 4, Name: "--dry-run"},
		{Index: 5, Name: "a--b"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ScanLong = %+v, want %+v", got, want)
	}
}

func TestInterpret(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantName   string
		wantParams []Param
	}{
		{
			name:       "empty line",
			raw:        "   ",
			wantName:   "",
			wantParams: []Param{},
		},
		{
			name:       "bare command",
			raw:        "example",
			wantName:   "example",
			wantParams: []Param{},
		},
		{
			name:     "short group with nothing after",
			raw:      "cmd -ab",
			wantName: "cmd",
			wantParams: []Param{
				{Key: "-a", Value: ""},
				{Key: "-b", Value: ""},
			},
		},
		{
			name:     "short group shares the next token",
			raw:      "cmd -ab val",
			wantName: "cmd",
			wantParams: []Param{
				{Key: "-a", Value: "val"},
				{Key: "-b", Value: "val"},
			},
		},
		{
			name:     "flag followed by flag",
			raw:      "cmd -a -b val",
			wantName: "cmd",
			wantParams: []Param{
				{Key: "-a", Value: ""},
				{Key: "-b", Value: "val"},
			},
		},
		{
			name:     "quoted value",
			raw:      `cmd -m "hello world" -n 3`,
			wantName: "cmd",
			wantParams: []Param{
				{Key: "-m", Value: "hello world"},
				{Key: "-n", Value: "3"},
			},
		},
		{
			name:     "short flags come before long flags",
			raw:      "cmd --amount 2 -l --message hi -d 0.5",
			wantName: "cmd",
			wantParams: []Param{
				{Key: "-l", Value: ""},
				{Key: "-d", Value: "0.5"},
				{Key: "--amount", Value: "2"},
				{Key: "--message", Value: "hi"},
			},
		},
		{
			name:     "long flag followed by long flag",
			raw:      "cmd --verbose --name x",
			wantName: "cmd",
			wantParams: []Param{
				{Key: "--verbose", Value: ""},
				{Key: "--name", Value: "x"},
			},
		},
		{
			name:     "quoted text is never a flag",
			raw:      `cmd --message "-x --y"`,
			wantName: "cmd",
			wantParams: []Param{
				{Key: "--message", Value: "-x --y"},
			},
		},
		{
			name:     "positional tokens are ignored",
			raw:      "cmd stray -a 1 other",
			wantName: "cmd",
			wantParams: []Param{
				{Key: "-a", Value: "1"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := Interpret(tt.raw)
			if err != nil {
				t.Fatalf("Interpret(%q) error = %v", tt.raw, err)
			}
			if inv.Name() != tt.wantName {
				t.Errorf("Name = %q, want %q", inv.Name(), tt.wantName)
			}
			if diff := cmp.Diff(tt.wantParams, inv.Params()); diff != "" {
				t.Errorf("Params mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInterpretDuplicateKey(t *testing.T) {
	tests := []struct {
		raw     string
		wantKey string
	}{
		{raw: "cmd -x 1 -x 2", wantKey: "-x"},
		{raw: "cmd -xx", wantKey: "-x"},
		{raw: "cmd --name a --name b", wantKey: "--name"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			inv, err := Interpret(tt.raw)
			if inv != nil {
				t.Errorf("Interpret returned an invocation on duplicate keys: %v", inv)
			}
			var dupErr *DuplicateParameterError
			if !errors.As(err, &dupErr) {
				t.Fatalf("error = %v, want *DuplicateParameterError", err)
			}
			if dupErr.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", dupErr.Key, tt.wantKey)
			}
			if dupErr.Command != "cmd" {
				t.Errorf("Command = %q, want %q", dupErr.Command, "cmd")
			}
		})
	}
}

func TestInvocationAccessors(t *testing.T) {
	inv, err := NewInvocation("example", Param{Key: "-n", Value: "3"}, Param{Key: "--help"})
	if err != nil {
		t.Fatalf("NewInvocation error = %v", err)
	}
	if inv.Len() != 2 {
		t.Errorf("Len = %d, want 2", inv.Len())
	}
	if v, ok := inv.Value("-n"); !ok || v != "3" {
		t.Errorf("Value(-n) = %q, %v; want %q, true", v, ok, "3")
	}
	if _, ok := inv.Value("-m"); ok {
		t.Error("Value(-m) reported present")
	}
	if !inv.Has("-h", "--help") {
		t.Error("Has(-h, --help) = false, want true")
	}
	if inv.Has("-h") {
		t.Error("Has(-h) = true, want false")
	}

	params := inv.Params()
	params[0].Value = "changed"
	if v, _ := inv.Value("-n"); v != "3" {
		t.Errorf("mutating Params() leaked into the invocation: -n = %q", v)
	}

	if got, want := inv.String(), `example -n "3" --help`; got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
}

func TestNewInvocationDuplicate(t *testing.T) {
	_, err := NewInvocation("cmd", Param{Key: "-a"}, Param{Key: "-a", Value: "x"})
	var dupErr *DuplicateParameterError
	if !errors.As(err, &dupErr) {
		t.Fatalf("error = %v, want *DuplicateParameterError", err)
	}
}
