// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package host binds parsed command lines onto command handlers and runs
// them.
//
// Commands declare their flags as a static table of Param values bound to
// their own fields:
//
//	type Greet struct {
//	    Name  string
//	    Times int
//	}
//
//	func (g *Greet) Name() string { return "greet" }
//	func (g *Greet) Help() string { return "say hello" }
//	func (g *Greet) Params() []host.Param {
//	    return []host.Param{
//	        host.String("name", "n", "who to greet", &g.Name),
//	        host.Int("times", "t", "how often [1]", &g.Times),
//	    }
//	}
//	func (g *Greet) Execute(ctx context.Context) error { ... }
//
//	reg := host.NewRegistry(func() any { return &Greet{Times: 1} })
//	d := host.NewDispatcher(reg, display)
//	outcome, err := d.Propagate(ctx, `greet -n "Ada Lovelace" --times 2`)
//
// # Errors
//
// Dispatch reports four kinds of failure, all recoverable:
//   - *DuplicateParameterError: a flag key was given twice
//   - *UnknownParameterError: a flag matches no declared parameter
//   - *TypeCoercionError: an int or double value did not parse
//   - *ExecutionError: the command's Execute failed or panicked
package host
