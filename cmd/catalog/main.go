// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

// Command catalog browses and manages a remote data catalog from the
// shell. See "catalog help" for the command list.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/catalog-foundation/catalog/cmd/catalog/cli"
	"github.com/catalog-foundation/catalog/cmd/catalog/commands"
	"github.com/catalog-foundation/catalog/lib/catalog"
	"github.com/catalog-foundation/catalog/lib/config"
	"github.com/catalog-foundation/catalog/lib/render"
	"github.com/catalog-foundation/catalog/lib/secret"
	"github.com/catalog-foundation/catalog/lib/syntax"
	"github.com/catalog-foundation/catalog/lib/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// globalFlags are the flags accepted before the command words.
type globalFlags struct {
	configPath string
	server     string
	json       bool
	verbose    bool
	color      string
	version    bool
}

func newFlagSet(flags *globalFlags, stderr io.Writer) *pflag.FlagSet {
	set := pflag.NewFlagSet(commands.Program, pflag.ContinueOnError)
	set.SetOutput(stderr)
	set.Usage = func() {}
	// Everything after the first command word belongs to the command.
	set.SetInterspersed(false)
	set.StringVar(&flags.configPath, "config", "", "configuration file (default $"+config.EnvConfig+" or "+config.DefaultPath()+")")
	set.StringVar(&flags.server, "server", "", "catalog service URL, overriding the configuration")
	set.BoolVar(&flags.json, "json", false, "write results as JSON")
	set.BoolVarP(&flags.verbose, "verbose", "v", false, "log remote calls and path resolution to stderr")
	set.StringVar(&flags.color, "color", "", "color output: auto, always, or never")
	set.BoolVar(&flags.version, "version", false, "print the version and exit")
	return set
}

// run executes one invocation and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var flags globalFlags
	set := newFlagSet(&flags, stderr)
	if err := set.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			writeOverview(stdout, set)
			return cli.ExitOK
		}
		fmt.Fprintf(stderr, "%s: %v\n", commands.Program, err)
		return cli.ExitValidation
	}
	if flags.version {
		fmt.Fprintf(stdout, "%s %s\n", commands.Program, version.Info())
		return cli.ExitOK
	}

	argv := set.Args()
	if commands.IsHelp(argv) {
		if len(argv) == 1 {
			writeOverview(stdout, set)
			return cli.ExitOK
		}
		return report(commands.Grammar().WriteHelp(stdout, argv[1:]), stderr)
	}

	return report(execute(ctx, &flags, argv, stdout, stderr), stderr)
}

func writeOverview(stdout io.Writer, set *pflag.FlagSet) {
	commands.Grammar().WriteHelp(stdout, nil)
	fmt.Fprintf(stdout, "\nGlobal flags:\n%s", set.FlagUsages())
}

// report prints err for the operator and maps it to an exit code.
func report(err error, stderr io.Writer) int {
	if err == nil {
		return cli.ExitOK
	}
	var parseErr *syntax.ParseError
	if errors.As(err, &parseErr) {
		fmt.Fprint(stderr, commands.Grammar().FormatError(parseErr))
		return cli.ExitValidation
	}
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	fmt.Fprintf(stderr, "%s: %v\n", commands.Program, err)
	return cli.ExitCode(err)
}

func execute(ctx context.Context, flags *globalFlags, argv []string, stdout, stderr io.Writer) error {
	current, err := config.Load(flags.configPath)
	if err != nil {
		return cli.Validation("%v", err)
	}
	if flags.server != "" {
		current.Server.URL = flags.server
		if err := current.Validate(); err != nil {
			return cli.Validation("%v", err)
		}
	}
	if flags.color != "" {
		current.Output.Color = flags.color
	}
	colorMode, err := render.ParseColorMode(current.Output.Color)
	if err != nil {
		return cli.Validation("%v", err)
	}

	level := slog.LevelWarn
	if flags.verbose {
		level = slog.LevelDebug
	}
	logger := cli.NewCommandLogger(level)

	session, err := cli.LoadSession(current.Session.Path)
	if err != nil {
		return err
	}

	// The stored token is only sent to the server it was issued for.
	var token *secret.Token
	if session.LoggedIn() && session.Server == current.Server.URL {
		token, err = session.Credential()
		if err != nil {
			return err
		}
		defer token.Close()
	}

	httpClient := &http.Client{Timeout: current.Server.Timeout}
	dial := func(server string, token *secret.Token) (*catalog.Client, error) {
		return catalog.NewClient(catalog.ClientConfig{
			BaseURL:    server,
			Token:      token,
			HTTPClient: httpClient,
			Logger:     logger,
		})
	}
	client, err := dial(current.Server.URL, token)
	if err != nil {
		return err
	}

	app := &commands.App{
		Config:  current,
		Session: session,
		Output: &cli.Output{
			Printer: render.New(stdout, render.Options{
				Color:      colorMode,
				TreeIndent: current.Output.TreeIndent,
			}),
			Stdout: stdout,
			Stderr: stderr,
			JSON:   flags.json,
		},
		Logger:   logger,
		Service:  client,
		Mutator:  client,
		Streamer: client,
		Identity: client,
		Dial: func(server string, token *secret.Token) (catalog.Identity, error) {
			verifier, err := dial(server, token)
			if err != nil {
				return nil, err
			}
			return verifier, nil
		},
		ReadToken: readToken,
	}
	return commands.Run(ctx, app, argv)
}

// readToken reads from a file, from stdin for "-", or from a no-echo
// prompt when no path is given.
func readToken(path string) (*secret.Token, error) {
	if path == "" {
		return secret.PromptToken("Bearer token: ")
	}
	return secret.ReadToken(path)
}
