// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"strings"
	"testing"

	"github.com/catalog-foundation/catalog/cmd/catalog/cli"
	"github.com/catalog-foundation/catalog/lib/catalog"
	"github.com/catalog-foundation/catalog/lib/catalog/catalogtest"
	"github.com/catalog-foundation/catalog/lib/secret"
)

func TestLoginWhoAmILogout(t *testing.T) {
	h := newHarness(t)
	var tokenPath string
	h.app.ReadToken = func(path string) (*secret.Token, error) {
		tokenPath = path
		return secret.NewTokenFromString("tok-test")
	}

	output := h.mustRun(t, "login", "--token-file", "-")
	if tokenPath != "-" {
		t.Errorf("ReadToken path = %q, want -", tokenPath)
	}
	if output != "Logged in to http://localhost:8080 as tester@example.org\n" {
		t.Errorf("login output = %q", output)
	}

	saved, err := cli.LoadSession(h.app.Config.Session.Path)
	if err != nil {
		t.Fatalf("LoadSession() error: %v", err)
	}
	if string(saved.Token) != "tok-test" || saved.User != "tester@example.org" || !saved.LoggedInAt.Equal(loginTime) {
		t.Errorf("saved session = %+v", saved)
	}

	output = h.mustRun(t, "whoami")
	if !strings.Contains(output, "tester@example.org") {
		t.Errorf("whoami output:\n%s", output)
	}

	h.mustRun(t, "cd", "/genomes")
	if got := h.mustRun(t, "logout"); got != "Logged out\n" {
		t.Errorf("logout output = %q", got)
	}
	saved, err = cli.LoadSession(h.app.Config.Session.Path)
	if err != nil {
		t.Fatalf("LoadSession() error: %v", err)
	}
	if saved.LoggedIn() || saved.WorkingPath != "/genomes" {
		t.Errorf("session after logout = %+v", saved)
	}
	if got := h.mustRun(t, "logout"); got != "Not logged in\n" {
		t.Errorf("second logout output = %q", got)
	}
}

func TestLoginRejectedToken(t *testing.T) {
	h := newHarness(t)
	h.service.SetUser(nil)
	wantExit(t, h.run("login"), cli.ExitForbidden)
	if h.app.Session.LoggedIn() {
		t.Error("rejected login stored credentials")
	}
}

func TestWhoAmIRequiresMatchingLogin(t *testing.T) {
	h := newHarness(t)
	err := h.run("whoami")
	wantExit(t, err, cli.ExitForbidden)
	if !strings.Contains(err.Error(), "catalog login") {
		t.Errorf("whoami error lacks login hint: %v", err)
	}
	if calls := h.service.Calls(catalogtest.OpWhoAmI); calls != 0 {
		t.Errorf("whoami without a token made %d remote calls", calls)
	}

	h.app.Session.Server = "https://other.example.org"
	h.app.Session.Token = []byte("tok")
	wantExit(t, h.run("whoami"), cli.ExitForbidden)
}

func TestSessionShow(t *testing.T) {
	h := newHarness(t)
	h.app.Session.WorkingPath = "/legacy"

	var summary cli.SessionSummary
	h.runJSON(t, &summary, "session", "show")
	if summary.LoggedIn || summary.WorkingPath != "/legacy" || summary.Path != h.app.Config.Session.Path {
		t.Errorf("summary = %+v", summary)
	}

	output := h.mustRun(t, "session", "show")
	for _, want := range []string{"Working path: /legacy", "User:         -"} {
		if !strings.Contains(output, want) {
			t.Errorf("session show missing %q:\n%s", want, output)
		}
	}
}

func TestConfigShow(t *testing.T) {
	h := newHarness(t)
	output := h.mustRun(t, "config", "show")
	for _, want := range []string{"# source: built-in defaults\n", "url: http://localhost:8080\n", "page_size: 100\n"} {
		if !strings.Contains(output, want) {
			t.Errorf("config show missing %q:\n%s", want, output)
		}
	}

	var view configView
	h.runJSON(t, &view, "config", "show")
	if view.PageSize != 100 || view.Timeout != "1m0s" || view.Color != "auto" {
		t.Errorf("config JSON = %+v", view)
	}
}

func TestVersion(t *testing.T) {
	h := newHarness(t)
	if output := h.mustRun(t, "version"); !strings.HasPrefix(output, "catalog ") {
		t.Errorf("version output = %q", output)
	}
	var build map[string]any
	h.runJSON(t, &build, "version")
	if _, ok := build["version"]; !ok {
		t.Errorf("version JSON = %v", build)
	}
}

func TestMutationFailureCategories(t *testing.T) {
	h := newHarness(t)
	h.service.FailOn(catalogtest.OpDeleteDataset, &catalog.APIError{StatusCode: 409, Message: "dataset is locked"})
	wantExit(t, h.run("dataset", "delete", "genomes"), cli.ExitConflict)
}
