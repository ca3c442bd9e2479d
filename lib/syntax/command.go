// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package syntax

import "strings"

// Command declares one invocable command.
type Command struct {
	// ID identifies the command in a [Result]. Must be unique across the
	// grammar and non-negative.
	ID int

	// Names are the primary name words, in order ("dataset", "create").
	Names []string

	// Aliases are single-word alternatives to Names ("ls" for "list").
	Aliases []string

	// Options are the switches accepted by the command.
	Options []Option

	// Arguments are the positional arguments, in consumption order.
	Arguments []Argument

	// Summary is the one-line description used in command listings.
	Summary string

	// Description is the detailed text shown by per-command help. Falls
	// back to Summary when empty.
	Description string
}

// Name returns the primary name words joined by spaces.
func (c *Command) Name() string {
	return strings.Join(c.Names, " ")
}

// Usage returns the single-line usage form of the command, without the
// program name: "tree [-d <depth>] [<path>]".
func (c *Command) Usage() string {
	parts := []string{c.Name()}
	for index := range c.Options {
		parts = append(parts, c.Options[index].synopsis())
	}
	for index := range c.Arguments {
		parts = append(parts, c.Arguments[index].synopsis())
	}
	return strings.Join(parts, " ")
}

// Option returns the declared switch recorded under key, or nil.
func (c *Command) Option(key string) *Option {
	for index := range c.Options {
		if c.Options[index].Key() == key {
			return &c.Options[index]
		}
	}
	return nil
}

// findOption returns the switch matching a bare switch name, or nil.
func (c *Command) findOption(name string, long bool) *Option {
	for index := range c.Options {
		if c.Options[index].matches(name, long) {
			return &c.Options[index]
		}
	}
	return nil
}

// hasAlias reports whether token equals one of the command's aliases,
// ignoring case.
func (c *Command) hasAlias(token string) bool {
	for _, alias := range c.Aliases {
		if strings.EqualFold(alias, token) {
			return true
		}
	}
	return false
}

// hasNamePrefix reports whether tokens is a case-insensitive prefix of
// the command's primary name words. Supplying more words than the
// command has never matches.
func (c *Command) hasNamePrefix(tokens []string) bool {
	if len(tokens) > len(c.Names) {
		return false
	}
	for index, token := range tokens {
		if !strings.EqualFold(token, c.Names[index]) {
			return false
		}
	}
	return true
}
