// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command cmdhost is an interactive shell for the sample commands.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/shayne/yargs"
	"github.com/yeetrun/cmdhost/example/commands"
	"github.com/yeetrun/cmdhost/pkg/config"
	"github.com/yeetrun/cmdhost/pkg/host"
	"github.com/yeetrun/cmdhost/pkg/repl"
	"github.com/yeetrun/cmdhost/pkg/tui"
	"golang.org/x/sync/errgroup"
)

type globalFlagsParsed struct {
	Config  string `flag:"config" help:"Settings file (default: cmdhost.toml in the current or a parent directory)"`
	Prompt  string `flag:"prompt" help:"Prompt string (CMDHOST_PROMPT)"`
	Color   string `flag:"color" help:"Colored output (auto|always|never)"`
	NoColor bool   `flag:"no-color" help:"Disable colored output (NO_COLOR)"`
	Verbose bool   `flag:"verbose" help:"Log every dispatched line"`
	Help    bool   `flag:"help" short:"h" help:"Show this help"`
}

var errInterrupted = errors.New("interrupted")

func parseGlobalFlags(args []string) (globalFlagsParsed, []string, error) {
	result, err := yargs.ParseKnownFlags[globalFlagsParsed](args, yargs.KnownFlagsOptions{})
	if err != nil {
		return globalFlagsParsed{}, nil, err
	}
	return result.Flags, result.RemainingArgs, nil
}

func buildHelpConfig() yargs.HelpConfig {
	return yargs.HelpConfig{
		Command: yargs.CommandInfo{
			Name:        "cmdhost",
			Description: "Interactive shell; type help to list commands and <command> --help for details.",
			Examples: []string{
				"cmdhost",
				"cmdhost --prompt '$ ' --no-color",
				"echo 'sum -v \"1 2 3\"' | cmdhost",
			},
		},
	}
}

// settings resolves the shell settings. Flags win over the environment,
// which wins over the settings file.
func settings(flags globalFlagsParsed, wd string) (config.Config, tui.ColorMode, error) {
	cfg, err := config.Load(flags.Config, wd)
	if err != nil {
		return cfg, "", err
	}
	if flags.Prompt != "" {
		cfg.Prompt = flags.Prompt
	}
	if flags.Color != "" {
		cfg.Color = flags.Color
	}
	if flags.NoColor {
		cfg.Color = string(tui.ColorNever)
	}
	if flags.Verbose {
		cfg.Verbose = true
	}
	mode, err := tui.ParseColorMode(cfg.Color)
	if err != nil {
		return cfg, "", err
	}
	return cfg, mode, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	flags, remaining, err := parseGlobalFlags(args)
	if err != nil {
		return err
	}
	if flags.Help {
		fmt.Fprint(stdout, yargs.GenerateGlobalHelp(buildHelpConfig(), globalFlagsParsed{}))
		return nil
	}
	if len(remaining) > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(remaining, " "))
	}

	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, mode, err := settings(flags, wd)
	if err != nil {
		return err
	}
	if cfg.Verbose && cfg.Path != "" {
		log.Printf("using settings from %s", cfg.Path)
	}

	f, _ := stdout.(*os.File)
	display := tui.NewDisplay(stdout, tui.NewColorizer(mode, f))
	dispatcher := host.NewDispatcher(host.NewRegistry(commands.All(stdout)...), display)
	shell := &repl.Shell{
		Dispatcher: dispatcher,
		Reporter:   display,
		In:         stdin,
		Out:        stdout,
		Prompt:     cfg.Prompt,
	}
	if cfg.Verbose {
		dispatcher.Logf = log.Printf
		shell.Logf = log.Printf
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return shell.Run(ctx)
	})
	g.Go(func() error {
		return waitForSignal(ctx)
	})
	if err := g.Wait(); err != nil && !errors.Is(err, errInterrupted) {
		return err
	}
	return nil
}

// waitForSignal returns errInterrupted on SIGINT or SIGTERM and nil once
// ctx is done.
func waitForSignal(ctx context.Context) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	select {
	case <-sigCh:
		return errInterrupted
	case <-ctx.Done():
		return nil
	}
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
