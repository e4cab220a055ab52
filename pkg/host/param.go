// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind is the semantic type of a parameter value.
type Kind int

const (
	KindBool Kind = iota + 1
	KindString
	KindInt
	KindDouble
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindDouble:
		return "double"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ErrUnsupportedKind is wrapped by a TypeCoercionError when a parameter
// declares a kind the binder cannot assign.
var ErrUnsupportedKind = errors.New("unsupported parameter kind")

// Param describes one bindable field of a command. Build it with Bool,
// String, Int or Double so the kind and the target always agree.
type Param struct {
	// Label names the field in help output, e.g. "AdditionalMessage".
	Label string
	Long  string
	Short string
	Help  string
	Kind  Kind

	target any
}

// Bool declares a presence flag. Supplying it sets *p to true whatever value
// follows it.
func Bool(long, short, help string, p *bool) Param {
	return Param{Long: long, Short: short, Help: help, Kind: KindBool, target: p}
}

// String declares a flag whose value is assigned verbatim.
func String(long, short, help string, p *string) Param {
	return Param{Long: long, Short: short, Help: help, Kind: KindString, target: p}
}

// Int declares a flag parsed as a base 10 integer.
func Int(long, short, help string, p *int) Param {
	return Param{Long: long, Short: short, Help: help, Kind: KindInt, target: p}
}

// Double declares a flag parsed as a 64 bit float.
func Double(long, short, help string, p *float64) Param {
	return Param{Long: long, Short: short, Help: help, Kind: KindDouble, target: p}
}

// WithLabel returns a copy of p labelled for help output.
func (p Param) WithLabel(label string) Param {
	p.Label = label
	return p
}

// Matches reports whether the invocation key refers to p. Short keys are
// compared without their first character and long keys without their first
// two, so "-n" matches Short "n" and "--amount" matches Long "amount".
func (p Param) Matches(key string) bool {
	key = strings.TrimSpace(key)
	if p.Short != "" && len(key) >= 1 && key[1:] == p.Short {
		return true
	}
	if p.Long != "" && len(key) >= 2 && key[2:] == p.Long {
		return true
	}
	return false
}

// set coerces value to the kind of p and assigns it to the bound field.
func (p Param) set(value string) error {
	switch t := p.target.(type) {
	case *bool:
		if p.Kind == KindBool {
			*t = true
			return nil
		}
	case *string:
		if p.Kind == KindString {
			*t = value
			return nil
		}
	case *int:
		if p.Kind == KindInt {
			n, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid int value %q: %w", value, err)
			}
			*t = n
			return nil
		}
	case *float64:
		if p.Kind == KindDouble {
			f, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return fmt.Errorf("invalid double value %q: %w", value, err)
			}
			*t = f
			return nil
		}
	}
	return fmt.Errorf("%w %s for target %T", ErrUnsupportedKind, p.Kind, p.target)
}
