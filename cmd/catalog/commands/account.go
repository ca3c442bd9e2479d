// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/catalog-foundation/catalog/cmd/catalog/cli"
	"github.com/catalog-foundation/catalog/lib/catalog"
	"github.com/catalog-foundation/catalog/lib/render"
	"github.com/catalog-foundation/catalog/lib/syntax"
	"github.com/catalog-foundation/catalog/lib/version"
)

func runLogin(ctx context.Context, app *App, result *syntax.Result) error {
	token, err := app.ReadToken(result.Value("token-file"))
	if err != nil {
		return cli.Validation("%v", err)
	}
	defer token.Close()

	server := app.Config.Server.URL
	identity, err := app.Dial(server, token)
	if err != nil {
		return err
	}
	user, err := identity.WhoAmI(ctx)
	if err != nil {
		if catalog.HasStatus(err, http.StatusUnauthorized) || catalog.HasStatus(err, http.StatusForbidden) {
			return cli.Forbidden("%s rejected the token: %v", server, err)
		}
		return fmt.Errorf("verifying token: %w", err)
	}

	if err := app.Session.SetCredentials(server, user.Email, token, app.now()); err != nil {
		return err
	}
	if err := app.saveSession(); err != nil {
		return err
	}

	summary := app.Session.Summary(app.Config.Session.Path)
	return app.Output.Emit(summary, func(printer *render.Printer) error {
		return printer.Line("Logged in to %s as %s", server, user.Email)
	})
}

func runLogout(_ context.Context, app *App, _ *syntax.Result) error {
	wasLoggedIn := app.Session.LoggedIn()
	app.Session.ClearCredentials()
	if err := app.saveSession(); err != nil {
		return err
	}
	summary := app.Session.Summary(app.Config.Session.Path)
	return app.Output.Emit(summary, func(printer *render.Printer) error {
		if !wasLoggedIn {
			return printer.Line("Not logged in")
		}
		return printer.Line("Logged out")
	})
}

func runWhoAmI(ctx context.Context, app *App, _ *syntax.Result) error {
	if !app.Session.LoggedIn() {
		return cli.Forbidden("not logged in").
			WithHint(fmt.Sprintf("Run '%s login' to store a token.", Program))
	}
	if app.Session.Server != app.Config.Server.URL {
		return cli.Forbidden("the stored token is for %s, not %s", app.Session.Server, app.Config.Server.URL).
			WithHint(fmt.Sprintf("Run '%s login' to store a token for %s.", Program, app.Config.Server.URL))
	}
	user, err := app.Identity.WhoAmI(ctx)
	if err != nil {
		return err
	}
	return app.Output.Emit(user, func(printer *render.Printer) error {
		return printer.Fields([]render.Field{
			{Label: "Email", Value: user.Email},
			{Label: "Subject", Value: user.SubjectID},
			{Label: "Server", Value: app.Config.Server.URL},
		})
	})
}

func runSessionShow(_ context.Context, app *App, _ *syntax.Result) error {
	summary := app.Session.Summary(app.Config.Session.Path)
	return app.Output.Emit(summary, func(printer *render.Printer) error {
		loggedInAt := ""
		if !summary.LoggedInAt.IsZero() {
			loggedInAt = summary.LoggedInAt.Format(time.RFC3339)
		}
		return printer.Fields([]render.Field{
			{Label: "Session file", Value: summary.Path},
			{Label: "Server", Value: summary.Server},
			{Label: "User", Value: summary.User},
			{Label: "Logged in at", Value: loggedInAt},
			{Label: "Working path", Value: summary.WorkingPath},
		})
	})
}

// configView is the JSON form of the effective configuration.
type configView struct {
	Source     string `json:"source,omitempty"`
	ServerURL  string `json:"server_url"`
	Timeout    string `json:"timeout"`
	PageSize   int    `json:"page_size"`
	FileDepth  int    `json:"file_depth"`
	Color      string `json:"color"`
	TreeIndent string `json:"tree_indent"`
	Session    string `json:"session_path"`
}

func runConfigShow(_ context.Context, app *App, _ *syntax.Result) error {
	current := app.Config
	view := configView{
		Source:     current.Source,
		ServerURL:  current.Server.URL,
		Timeout:    current.Server.Timeout.String(),
		PageSize:   current.Listing.PageSize,
		FileDepth:  current.Listing.FileDepth,
		Color:      current.Output.Color,
		TreeIndent: current.Output.TreeIndent,
		Session:    current.Session.Path,
	}
	return app.Output.Emit(view, func(printer *render.Printer) error {
		data, err := yaml.Marshal(current)
		if err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		source := current.Source
		if source == "" {
			source = "built-in defaults"
		}
		if err := printer.Line("# source: %s", source); err != nil {
			return err
		}
		_, err = app.Output.Stdout.Write(data)
		return err
	})
}

func runVersion(_ context.Context, app *App, _ *syntax.Result) error {
	return app.Output.Emit(version.Current(), func(printer *render.Printer) error {
		return printer.Line("%s %s", Program, version.Full())
	})
}
