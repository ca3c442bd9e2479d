// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package syntax

import (
	"errors"
	"reflect"
	"testing"
)

const (
	testList = iota
	testTree
	testCreate
	testIngest
	testPwd
)

func testGrammar(t *testing.T) *Grammar {
	t.Helper()
	grammar, err := NewGrammar("catalog",
		Command{
			ID:      testList,
			Names:   []string{"list"},
			Aliases: []string{"ls"},
			Options: []Option{
				{Short: "r", Long: "recursive", Help: "list descendants"},
			},
			Arguments: []Argument{{Name: "path", Help: "catalog path"}},
			Summary:   "List a catalog path",
		},
		Command{
			ID:    testTree,
			Names: []string{"tree"},
			Options: []Option{
				{Short: "d", Long: "depth", TakesValue: true, ValueName: "depth"},
			},
			Arguments: []Argument{{Name: "path"}},
			Summary:   "Print a catalog subtree",
		},
		Command{
			ID:    testCreate,
			Names: []string{"dataset", "create"},
			Options: []Option{
				{Short: "f", Long: "file", TakesValue: true, Required: true},
			},
			Summary: "Create a dataset",
		},
		Command{
			ID:    testIngest,
			Names: []string{"ingest", "table"},
			Options: []Option{
				{Short: "s", Long: "source", TakesValue: true, Required: true},
				{Short: "F", Long: "format", TakesValue: true},
				{Short: "v"},
			},
			Arguments: []Argument{
				{Name: "dataset", Required: true},
				{Name: "table", Required: true},
				{Name: "comment"},
			},
			Summary: "Ingest a table",
		},
		Command{ID: testPwd, Names: []string{"pwd"}, Summary: "Print the working path"},
	)
	if err != nil {
		t.Fatalf("NewGrammar() error: %v", err)
	}
	return grammar
}

func parseError(t *testing.T, err error) *ParseError {
	t.Helper()
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %v (%T), want *ParseError", err, err)
	}
	return parseErr
}

func TestParse_Success(t *testing.T) {
	grammar := testGrammar(t)

	tests := []struct {
		name   string
		argv   []string
		id     int
		values map[string]string
	}{
		{
			name:   "bare command",
			argv:   []string{"list"},
			id:     testList,
			values: map[string]string{},
		},
		{
			name:   "name is case-insensitive",
			argv:   []string{"LiSt", "/a"},
			id:     testList,
			values: map[string]string{"path": "/a"},
		},
		{
			name:   "alias",
			argv:   []string{"ls", "-r", "/a/b"},
			id:     testList,
			values: map[string]string{"recursive": "", "path": "/a/b"},
		},
		{
			name:   "alias is case-insensitive",
			argv:   []string{"LS"},
			id:     testList,
			values: map[string]string{},
		},
		{
			name:   "long switch with value",
			argv:   []string{"tree", "--depth", "2", "/x"},
			id:     testTree,
			values: map[string]string{"depth": "2", "path": "/x"},
		},
		{
			name:   "inline long value",
			argv:   []string{"tree", "--depth=3"},
			id:     testTree,
			values: map[string]string{"depth": "3"},
		},
		{
			name:   "value may look like a switch",
			argv:   []string{"tree", "-d", "-1"},
			id:     testTree,
			values: map[string]string{"depth": "-1"},
		},
		{
			name:   "multi-word name",
			argv:   []string{"dataset", "create", "-f", "request.jsonc"},
			id:     testCreate,
			values: map[string]string{"file": "request.jsonc"},
		},
		{
			name:   "short-only switch recorded under short name",
			argv:   []string{"ingest", "table", "-v", "-s", "gs://b/t.csv", "ds", "tbl"},
			id:     testIngest,
			values: map[string]string{"v": "", "source": "gs://b/t.csv", "dataset": "ds", "table": "tbl"},
		},
		{
			name:   "double dash ends switches",
			argv:   []string{"list", "--", "-odd-name"},
			id:     testList,
			values: map[string]string{"path": "-odd-name"},
		},
		{
			name:   "lone dash is positional",
			argv:   []string{"list", "-"},
			id:     testList,
			values: map[string]string{"path": "-"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result, err := grammar.Parse(test.argv)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", test.argv, err)
			}
			if result.CommandID != test.id {
				t.Errorf("CommandID = %d, want %d", result.CommandID, test.id)
			}
			if !reflect.DeepEqual(result.Values, test.values) {
				t.Errorf("Values = %v, want %v", result.Values, test.values)
			}
		})
	}
}

func TestParse_CanonicalInvocations(t *testing.T) {
	grammar := testGrammar(t)

	for _, command := range grammar.Commands() {
		argv := append([]string{}, command.Names...)
		for index := range command.Options {
			option := &command.Options[index]
			argv = append(argv, option.display())
			if option.TakesValue {
				argv = append(argv, "value-"+option.Key())
			}
		}
		for index := range command.Arguments {
			argv = append(argv, "arg-"+command.Arguments[index].Name)
		}

		result, err := grammar.Parse(argv)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", argv, err)
		}
		if result.CommandID != command.ID {
			t.Errorf("Parse(%q).CommandID = %d, want %d", argv, result.CommandID, command.ID)
		}
		for index := range command.Options {
			if !result.Found(command.Options[index].Key()) {
				t.Errorf("Parse(%q): switch %q not found", argv, command.Options[index].Key())
			}
		}
		for index := range command.Arguments {
			name := command.Arguments[index].Name
			if got := result.Value(name); got != "arg-"+name {
				t.Errorf("Parse(%q): %s = %q, want %q", argv, name, got, "arg-"+name)
			}
		}
	}
}

func TestParse_SwitchOrderIsCommutative(t *testing.T) {
	grammar := testGrammar(t)

	orders := [][]string{
		{"-v", "-s", "gs://b/t.csv", "--format", "csv"},
		{"--format", "csv", "-v", "-s", "gs://b/t.csv"},
		{"-s", "gs://b/t.csv", "--format=csv", "-v"},
	}

	var first *Result
	for _, switches := range orders {
		argv := append([]string{"ingest", "table"}, switches...)
		argv = append(argv, "ds", "tbl")
		result, err := grammar.Parse(argv)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", argv, err)
		}
		if first == nil {
			first = result
			continue
		}
		if !reflect.DeepEqual(result, first) {
			t.Errorf("Parse(%q) = %+v, want %+v", argv, result, first)
		}
	}
}

func TestParse_OptionalKeysAbsent(t *testing.T) {
	grammar := testGrammar(t)

	result, err := grammar.Parse([]string{"ingest", "table", "-s", "src", "ds", "tbl"})
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	for _, key := range []string{"format", "v", "comment"} {
		if result.Found(key) {
			t.Errorf("Found(%q) = true, want false", key)
		}
	}
	if _, ok := result.Lookup("comment"); ok {
		t.Error("Lookup(comment) reported present")
	}
}

func TestParse_Errors(t *testing.T) {
	grammar := testGrammar(t)

	tests := []struct {
		name        string
		argv        []string
		kind        ErrorKind
		token       string
		commandName string
	}{
		{"empty argv", nil, ErrNoCommand, "", ""},
		{"unknown command", []string{"frobnicate"}, ErrUnknownCommand, "frobnicate", ""},
		{"partial multi-word name", []string{"dataset"}, ErrUnknownCommand, "dataset", ""},
		{"unknown switch", []string{"list", "--all"}, ErrUnknownOption, "--all", "list"},
		{"short name used as long", []string{"list", "--r"}, ErrUnknownOption, "--r", "list"},
		{"missing switch value", []string{"tree", "--depth"}, ErrMissingValue, "--depth", "tree"},
		{"inline value on flag switch", []string{"list", "--recursive=yes"}, ErrUnexpectedValue, "--recursive", "list"},
		{"missing required switch", []string{"dataset", "create"}, ErrMissingOption, "--file", "dataset create"},
		{"missing required argument", []string{"ingest", "table", "-s", "x", "ds"}, ErrMissingArgument, "table", "ingest table"},
		{"extra argument", []string{"pwd", "extra"}, ErrUnexpectedArgument, "extra", "pwd"},
		{"switch after argument", []string{"list", "/a", "-r"}, ErrUnexpectedArgument, "-r", "list"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result, err := grammar.Parse(test.argv)
			if err == nil {
				t.Fatalf("Parse(%q) = %+v, want error", test.argv, result)
			}
			if result != nil {
				t.Errorf("Parse(%q) returned a result alongside the error", test.argv)
			}
			parseErr := parseError(t, err)
			if parseErr.Kind != test.kind {
				t.Errorf("Kind = %v, want %v", parseErr.Kind, test.kind)
			}
			if parseErr.Token != test.token {
				t.Errorf("Token = %q, want %q", parseErr.Token, test.token)
			}
			gotName := ""
			if parseErr.Command != nil {
				gotName = parseErr.Command.Name()
			}
			if gotName != test.commandName {
				t.Errorf("Command = %q, want %q", gotName, test.commandName)
			}
		})
	}
}

func TestParse_UnknownCommandSuggestion(t *testing.T) {
	grammar := testGrammar(t)

	_, err := grammar.Parse([]string{"lst"})
	parseErr := parseError(t, err)
	if parseErr.Suggestion != "list" && parseErr.Suggestion != "ls" {
		t.Errorf("Suggestion = %q, want list or ls", parseErr.Suggestion)
	}

	_, err = grammar.Parse([]string{"dataset", "craete"})
	parseErr = parseError(t, err)
	if parseErr.Suggestion != "dataset create" {
		t.Errorf("Suggestion = %q, want %q", parseErr.Suggestion, "dataset create")
	}

	_, err = grammar.Parse([]string{"completely-unrelated"})
	parseErr = parseError(t, err)
	if parseErr.Suggestion != "" {
		t.Errorf("Suggestion = %q, want none", parseErr.Suggestion)
	}
}

func TestFormatError_IncludesUsageOfMatchedCommand(t *testing.T) {
	grammar := testGrammar(t)

	_, err := grammar.Parse([]string{"tree", "--depth"})
	text := grammar.FormatError(parseError(t, err))
	want := "catalog: option requires an argument: --depth\nusage: catalog tree [-d <depth>] [<path>]\n"
	if text != want {
		t.Errorf("FormatError() = %q, want %q", text, want)
	}

	_, err = grammar.Parse([]string{"nope"})
	text = grammar.FormatError(parseError(t, err))
	want = "catalog: unknown command \"nope\"\nRun 'catalog help' for usage.\n"
	if text != want {
		t.Errorf("FormatError() = %q, want %q", text, want)
	}
}

func TestResult_Int(t *testing.T) {
	result := &Result{Values: map[string]string{"depth": "4", "bad": "x"}}

	if got, err := result.Int("depth", 9); err != nil || got != 4 {
		t.Errorf("Int(depth) = %d, %v; want 4, nil", got, err)
	}
	if got, err := result.Int("missing", 9); err != nil || got != 9 {
		t.Errorf("Int(missing) = %d, %v; want 9, nil", got, err)
	}
	if _, err := result.Int("bad", 0); err == nil {
		t.Error("Int(bad) succeeded, want error")
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"list", "list", 0},
		{"lsit", "list", 2},
		{"tre", "tree", 1},
		{"describe", "descrbie", 2},
	}
	for _, test := range tests {
		if got := levenshtein(test.a, test.b); got != test.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}
