// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package repl runs the interactive read-eval loop of the shell.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/yeetrun/cmdhost/pkg/host"
)

// Exit words end the loop unless a command of the same name is registered.
var exitWords = []string{"exit", "quit"}

// Reporter shows a failed line to the user.
type Reporter interface {
	Error(err error)
}

// Shell reads lines from In and dispatches each one.
type Shell struct {
	Dispatcher *host.Dispatcher
	Reporter   Reporter
	In         io.Reader
	Out        io.Writer
	Prompt     string

	// Logf, if set, receives debug lines tagged with the session id.
	Logf func(format string, args ...any)
}

type readResult struct {
	line string
	err  error
}

// Run loops until In is exhausted, an exit word is read, or ctx is done.
// Every failure of a single line is reported and the loop carries on; only
// a read error other than io.EOF or the context's error is returned.
//
// Reading happens on a separate goroutine so that cancellation is noticed
// while waiting for input. That goroutine may stay blocked in a read after
// Run returns.
func (s *Shell) Run(ctx context.Context) error {
	session := uuid.NewString()
	s.logf("session %s started", session)
	defer s.logf("session %s ended", session)

	next := make(chan struct{})
	results := make(chan readResult)
	go readLines(bufio.NewReader(s.In), next, results)
	defer close(next)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(s.Out, s.Prompt)

		select {
		case next <- struct{}{}:
		case <-ctx.Done():
			return ctx.Err()
		}

		var res readResult
		select {
		case res = <-results:
		case <-ctx.Done():
			return ctx.Err()
		}

		if res.line != "" || res.err == nil {
			if s.isExit(res.line) {
				return nil
			}
			s.Eval(ctx, session, res.line)
		}
		if res.err != nil {
			if errors.Is(res.err, io.EOF) {
				fmt.Fprintln(s.Out)
				return nil
			}
			return fmt.Errorf("failed to read input: %w", res.err)
		}
	}
}

// Eval dispatches a single line and reports any error.
func (s *Shell) Eval(ctx context.Context, session, line string) host.Outcome {
	outcome, err := s.Dispatcher.Propagate(ctx, line)
	if err != nil && s.Reporter != nil {
		s.Reporter.Error(err)
	}
	s.logf("session %s: %q -> %v", session, line, outcome)
	return outcome
}

func (s *Shell) isExit(line string) bool {
	word := strings.TrimSpace(line)
	for _, w := range exitWords {
		if word != w {
			continue
		}
		_, registered := s.Dispatcher.Registry().Find(w)
		return !registered
	}
	return false
}

func (s *Shell) logf(format string, args ...any) {
	if s.Logf != nil {
		s.Logf(format, args...)
	}
}

// readLines reads one line for every value received on next.
func readLines(r *bufio.Reader, next <-chan struct{}, results chan<- readResult) {
	for range next {
		line, err := r.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		results <- readResult{line: line, err: err}
		if err != nil {
			return
		}
	}
}
