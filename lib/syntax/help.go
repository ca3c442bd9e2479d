// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package syntax

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Lookup returns the commands whose primary name words start with
// tokens (case-insensitive), in declaration order. No tokens matches
// every command.
func (g *Grammar) Lookup(tokens []string) []*Command {
	var matches []*Command
	for _, command := range g.commands {
		if command.hasNamePrefix(tokens) {
			matches = append(matches, command)
		}
	}
	return matches
}

// aliasCommand returns the command owning alias, or nil.
func (g *Grammar) aliasCommand(alias string) *Command {
	for _, command := range g.commands {
		if command.hasAlias(alias) {
			return command
		}
	}
	return nil
}

// WriteHelp writes help for the commands named by tokens:
//
//   - a single alias word goes straight to that command's detailed help;
//   - exactly one prefix match prints detailed help (switches and
//     arguments with their descriptions);
//   - several matches print one usage line each;
//   - no match returns an ErrUnknownCommand [*ParseError].
func (g *Grammar) WriteHelp(w io.Writer, tokens []string) error {
	if len(tokens) == 1 {
		if command := g.aliasCommand(tokens[0]); command != nil {
			g.writeCommandHelp(w, command)
			return nil
		}
	}

	matches := g.Lookup(tokens)
	switch len(matches) {
	case 0:
		return &ParseError{
			Kind:       ErrUnknownCommand,
			Token:      strings.Join(tokens, " "),
			Suggestion: g.suggestCommand(tokens),
		}
	case 1:
		g.writeCommandHelp(w, matches[0])
	default:
		g.writeCommandList(w, matches, len(tokens) == 0)
	}
	return nil
}

func (g *Grammar) writeCommandList(w io.Writer, commands []*Command, overview bool) {
	if overview {
		fmt.Fprintf(w, "Usage:\n  %s [global flags] <command> [switches] [arguments]\n\n", g.program)
	}
	fmt.Fprintf(w, "Commands:\n")
	tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
	for _, command := range commands {
		fmt.Fprintf(tw, "  %s\t%s\n", command.Usage(), command.Summary)
	}
	tw.Flush()
	fmt.Fprintf(w, "\nRun '%s help <command>' for more information on a command.\n", g.program)
}

func (g *Grammar) writeCommandHelp(w io.Writer, command *Command) {
	if command.Description != "" {
		fmt.Fprintf(w, "%s\n\n", command.Description)
	} else if command.Summary != "" {
		fmt.Fprintf(w, "%s\n\n", command.Summary)
	}

	fmt.Fprintf(w, "Usage:\n  %s %s\n", g.program, command.Usage())

	if len(command.Aliases) > 0 {
		fmt.Fprintf(w, "\nAliases:\n  %s\n", strings.Join(command.Aliases, ", "))
	}

	if len(command.Options) > 0 {
		fmt.Fprintf(w, "\nSwitches:\n")
		tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
		for index := range command.Options {
			option := &command.Options[index]
			help := option.Help
			if option.Required {
				help = "(required) " + help
			}
			fmt.Fprintf(tw, "  %s\t%s\n", option.names(), help)
		}
		tw.Flush()
	}

	if len(command.Arguments) > 0 {
		fmt.Fprintf(w, "\nArguments:\n")
		tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
		for index := range command.Arguments {
			argument := &command.Arguments[index]
			help := argument.Help
			if !argument.Required {
				help = "(optional) " + help
			}
			fmt.Fprintf(tw, "  %s\t%s\n", argument.Name, help)
		}
		tw.Flush()
	}
}
