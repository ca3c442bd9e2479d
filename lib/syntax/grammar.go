// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package syntax

import (
	"fmt"
	"strings"
)

// Grammar is an immutable, ordered table of commands. Commands are
// matched in the order they were declared.
type Grammar struct {
	program  string
	commands []*Command
	byID     map[int]*Command
}

// NewGrammar validates the declarations and returns a grammar for the
// named program. The program name only appears in usage and help text.
//
// Validation rejects: negative or duplicate ids, empty or blank name
// words, aliases that collide with another alias or with a command's
// first name word, commands shadowed by an earlier command whose names
// are a prefix of theirs, duplicate switch names within a command,
// switches without any name, and required arguments declared after an
// optional one.
func NewGrammar(program string, commands ...Command) (*Grammar, error) {
	grammar := &Grammar{
		program: program,
		byID:    make(map[int]*Command, len(commands)),
	}

	for index := range commands {
		command := commands[index]
		if err := validateCommand(&command); err != nil {
			return nil, err
		}
		if existing, ok := grammar.byID[command.ID]; ok {
			return nil, fmt.Errorf("syntax: command %q reuses id %d of %q", command.Name(), command.ID, existing.Name())
		}
		for _, earlier := range grammar.commands {
			if earlier.hasNamePrefix(command.Names) || command.hasNamePrefix(earlier.Names) {
				return nil, fmt.Errorf("syntax: command %q is shadowed by %q", command.Name(), earlier.Name())
			}
		}
		grammar.commands = append(grammar.commands, &command)
		grammar.byID[command.ID] = &command
	}

	// Alias checks need the full command list.
	seenAliases := map[string]string{}
	for _, command := range grammar.commands {
		for _, alias := range command.Aliases {
			folded := strings.ToLower(alias)
			if owner, ok := seenAliases[folded]; ok {
				return nil, fmt.Errorf("syntax: alias %q of %q is already used by %q", alias, command.Name(), owner)
			}
			seenAliases[folded] = command.Name()
			for _, other := range grammar.commands {
				if strings.EqualFold(other.Names[0], alias) {
					return nil, fmt.Errorf("syntax: alias %q of %q collides with command %q", alias, command.Name(), other.Name())
				}
			}
		}
	}

	return grammar, nil
}

// MustGrammar is like [NewGrammar] but panics on invalid declarations.
// Grammars are static program data, so an invalid one is a programming
// error.
func MustGrammar(program string, commands ...Command) *Grammar {
	grammar, err := NewGrammar(program, commands...)
	if err != nil {
		panic(err)
	}
	return grammar
}

func validateCommand(command *Command) error {
	if command.ID < 0 {
		return fmt.Errorf("syntax: command %q has negative id %d", command.Name(), command.ID)
	}
	if len(command.Names) == 0 {
		return fmt.Errorf("syntax: command with id %d has no name", command.ID)
	}
	for _, name := range command.Names {
		if strings.TrimSpace(name) == "" || strings.ContainsAny(name, " \t") || isSwitch(name) {
			return fmt.Errorf("syntax: command with id %d has invalid name word %q", command.ID, name)
		}
	}
	for _, alias := range command.Aliases {
		if strings.TrimSpace(alias) == "" || strings.ContainsAny(alias, " \t") || isSwitch(alias) {
			return fmt.Errorf("syntax: command %q has invalid alias %q", command.Name(), alias)
		}
	}

	shorts := map[string]bool{}
	longs := map[string]bool{}
	for index := range command.Options {
		option := &command.Options[index]
		if option.Short == "" && option.Long == "" {
			return fmt.Errorf("syntax: command %q declares a switch with no name", command.Name())
		}
		if option.Short != "" {
			if shorts[option.Short] {
				return fmt.Errorf("syntax: command %q declares -%s twice", command.Name(), option.Short)
			}
			shorts[option.Short] = true
		}
		if option.Long != "" {
			if longs[option.Long] {
				return fmt.Errorf("syntax: command %q declares --%s twice", command.Name(), option.Long)
			}
			longs[option.Long] = true
		}
	}

	names := map[string]bool{}
	sawOptional := false
	for index := range command.Arguments {
		argument := &command.Arguments[index]
		if argument.Name == "" {
			return fmt.Errorf("syntax: command %q declares an unnamed argument", command.Name())
		}
		if names[argument.Name] || command.Option(argument.Name) != nil {
			return fmt.Errorf("syntax: command %q reuses key %q for argument", command.Name(), argument.Name)
		}
		names[argument.Name] = true
		if !argument.Required {
			sawOptional = true
		} else if sawOptional {
			return fmt.Errorf("syntax: command %q declares required argument %q after an optional one", command.Name(), argument.Name)
		}
	}
	return nil
}

// Program returns the program name used in usage text.
func (g *Grammar) Program() string {
	return g.program
}

// Commands returns the declared commands in declaration order.
func (g *Grammar) Commands() []*Command {
	return g.commands
}

// Command returns the command with the given id.
func (g *Grammar) Command(id int) (*Command, bool) {
	command, ok := g.byID[id]
	return command, ok
}

// UsageLine returns "usage: <program> <command usage>".
func (g *Grammar) UsageLine(command *Command) string {
	return fmt.Sprintf("usage: %s %s", g.program, command.Usage())
}
