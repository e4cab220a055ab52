// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"errors"
	"fmt"

	"github.com/yeetrun/cmdhost/pkg/cmdline"
)

// Origin is reported for errors raised by parsing and binding rather than
// by a command.
const Origin = "cmdhost"

// DuplicateParameterError is returned when a flag key appears twice on a line.
type DuplicateParameterError = cmdline.DuplicateParameterError

// UnknownParameterError is returned when a flag matches none of the
// parameters declared by the resolved command.
type UnknownParameterError struct {
	Key     string
	Command string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("Unknown parameter '%s'", e.Key)
}

// TypeCoercionError is returned when a flag value cannot be converted to
// the declared kind of its parameter.
type TypeCoercionError struct {
	Key     string
	Value   string
	Kind    Kind
	Command string
	Err     error
}

func (e *TypeCoercionError) Error() string {
	return fmt.Sprintf("parameter '%s': %v", e.Key, e.Err)
}

func (e *TypeCoercionError) Unwrap() error {
	return e.Err
}

// ExecutionError wraps a failure raised by a command's Execute.
type ExecutionError struct {
	Command string
	Err     error
}

func (e *ExecutionError) Error() string {
	return e.Err.Error()
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// ErrorOrigin names where err came from: the failing command for an
// ExecutionError, Origin for everything else.
func ErrorOrigin(err error) string {
	var execErr *ExecutionError
	if errors.As(err, &execErr) && execErr.Command != "" {
		return execErr.Command
	}
	return Origin
}
