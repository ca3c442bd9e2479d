// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/catalog-foundation/catalog/cmd/catalog/cli"
	"github.com/catalog-foundation/catalog/lib/catalog"
	"github.com/catalog-foundation/catalog/lib/config"
	"github.com/catalog-foundation/catalog/lib/hierarchy"
	"github.com/catalog-foundation/catalog/lib/secret"
	"github.com/catalog-foundation/catalog/lib/syntax"
)

// App is everything a command handler may use. main builds one per
// process; tests build one around a catalogtest.Service.
type App struct {
	Config  *config.Config
	Session *cli.Session
	Output  *cli.Output
	Logger  *slog.Logger

	Service  catalog.Service
	Mutator  catalog.Mutator
	Streamer catalog.Streamer
	Identity catalog.Identity

	// Dial returns an identity client for server that authenticates
	// with token. login uses it to verify a token before saving it.
	Dial func(server string, token *secret.Token) (catalog.Identity, error)

	// ReadToken reads a bearer token from path ("-" for stdin), or
	// prompts for one when path is empty.
	ReadToken func(path string) (*secret.Token, error)

	// Now is the clock. Nil means time.Now.
	Now func() time.Time
}

type handler func(ctx context.Context, app *App, result *syntax.Result) error

var handlers = map[int]handler{
	CmdList:           runList,
	CmdTree:           runTree,
	CmdDescribe:       runDescribe,
	CmdStream:         runStream,
	CmdCd:             runCd,
	CmdPwd:            runPwd,
	CmdDatasetCreate:  runDatasetCreate,
	CmdDatasetDelete:  runDatasetDelete,
	CmdSnapshotCreate: runSnapshotCreate,
	CmdSnapshotDelete: runSnapshotDelete,
	CmdIngestFile:     runIngestFile,
	CmdIngestTable:    runIngestTable,
	CmdLogin:          runLogin,
	CmdLogout:         runLogout,
	CmdWhoAmI:         runWhoAmI,
	CmdSessionShow:    runSessionShow,
	CmdConfigShow:     runConfigShow,
	CmdVersion:        runVersion,
}

// IsHelp reports whether argv asks for help rather than a command.
func IsHelp(argv []string) bool {
	if len(argv) == 0 {
		return false
	}
	switch argv[0] {
	case "help", "-h", "--help":
		return true
	}
	return false
}

// Run parses argv against the command grammar and runs the matched
// command. Help requests write to the app's stdout. Parse failures are
// returned as *syntax.ParseError for the caller to format.
func Run(ctx context.Context, app *App, argv []string) error {
	if IsHelp(argv) {
		return grammar.WriteHelp(app.Output.Stdout, argv[1:])
	}

	result, err := grammar.Parse(argv)
	if err != nil {
		return err
	}
	run, ok := handlers[result.CommandID]
	if !ok {
		return fmt.Errorf("no handler for command id %d", result.CommandID)
	}
	app.Logger.Debug("running command", "id", result.CommandID, "values", len(result.Values))
	return run(ctx, app, result)
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) navigator() (*hierarchy.Navigator, error) {
	return hierarchy.NewNavigator(hierarchy.Config{
		Service:   a.Service,
		PageSize:  a.Config.Listing.PageSize,
		FileDepth: a.Config.Listing.FileDepth,
		Logger:    a.Logger,
	})
}

// resolve resolves logicalPath against the session's working path.
func (a *App) resolve(ctx context.Context, logicalPath string) (*hierarchy.Navigator, *hierarchy.Element, error) {
	navigator, err := a.navigator()
	if err != nil {
		return nil, nil, err
	}
	element, err := navigator.Resolve(ctx, a.Session.WorkingPath, logicalPath)
	if err != nil {
		var notFound *hierarchy.NotFoundError
		if errors.As(err, &notFound) {
			return nil, nil, cli.NotFound("%v", err).
				WithHint(fmt.Sprintf("Run '%s list %s' to see what exists there.", Program, notFound.Path))
		}
		return nil, nil, err
	}
	return navigator, element, nil
}

func (a *App) saveSession() error {
	return cli.SaveSession(a.Config.Session.Path, a.Session)
}
