// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands holds the sample commands shipped with the cmdhost shell.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/yeetrun/cmdhost/pkg/host"
)

// ErrExample is returned by every run of the example command.
var ErrExample = errors.New("this is an example error to show how errors propagate")

// All returns the factories for every sample command, writing to out.
func All(out io.Writer) []host.Factory {
	return []host.Factory{
		func() any { return NewExample(out) },
		func() any { return NewSum(out) },
	}
}

// Example prints a message a number of times and then fails.
type Example struct {
	out io.Writer

	Long    bool
	Amount  int
	Message string
	Double  float64
}

// NewExample returns an Example with its defaults set.
func NewExample(out io.Writer) *Example {
	return &Example{out: out, Amount: 1, Message: "hello world", Double: 0.5}
}

func (e *Example) Name() string { return "example" }

func (e *Example) Help() string {
	return "this is an example command that contains a few simple parameters"
}

func (e *Example) Params() []host.Param {
	return []host.Param{
		host.Bool("long", "l", "if set print long message [false]", &e.Long).WithLabel("PrintLongMessage"),
		host.Int("amount", "n", "the amount of times the message will be repeated [1]", &e.Amount).WithLabel("Amount"),
		host.String("message", "m", "prints an additional message at the end [hello world]", &e.Message).WithLabel("AdditionalMessage"),
		host.Double("double", "d", "sets the double value that will be printed at the end [0.5]", &e.Double).WithLabel("SomeDoubleSetting"),
	}
}

func (e *Example) Execute(context.Context) error {
	msg := "This is a short message"
	if e.Long {
		msg = "This is the long message"
	}
	for range e.Amount {
		fmt.Fprintln(e.out, msg)
	}
	fmt.Fprintf(e.out, "Additional message: '%s'\n", e.Message)
	fmt.Fprintf(e.out, "Some double setting: '%s'\n", strconv.FormatFloat(e.Double, 'g', -1, 64))
	return ErrExample
}

// Sum adds a whitespace separated list of numbers.
type Sum struct {
	out io.Writer

	Values    string
	Scale     float64
	Precision int
	Round     bool
}

// NewSum returns a Sum with its defaults set.
func NewSum(out io.Writer) *Sum {
	return &Sum{out: out, Scale: 1, Precision: 2}
}

func (s *Sum) Name() string { return "sum" }
func (s *Sum) Help() string { return "adds up numbers, e.g. sum -v \"1 2 3.5\"" }

func (s *Sum) Params() []host.Param {
	return []host.Param{
		host.String("values", "v", "numbers to add, quoted and space separated", &s.Values),
		host.Double("scale", "s", "multiply the total by this factor [1]", &s.Scale),
		host.Int("precision", "p", "decimal places to print [2]", &s.Precision),
		host.Bool("round", "r", "round the total to the nearest integer", &s.Round),
	}
}

func (s *Sum) Execute(ctx context.Context) error {
	var total float64
	for _, f := range strings.Fields(s.Values) {
		if err := ctx.Err(); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return fmt.Errorf("not a number: %q", f)
		}
		total += v
	}
	total *= s.Scale
	if s.Round {
		fmt.Fprintf(s.out, "%d\n", int64(math.Round(total)))
		return nil
	}
	if s.Precision < 0 {
		return fmt.Errorf("precision must not be negative, got %d", s.Precision)
	}
	fmt.Fprintln(s.out, strconv.FormatFloat(total, 'f', s.Precision, 64))
	return nil
}
