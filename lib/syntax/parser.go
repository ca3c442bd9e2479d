// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package syntax

import "strings"

// cursor is a read position over argv. Each command attempt gets its own
// cursor, so a rejected attempt leaves nothing consumed.
type cursor struct {
	tokens   []string
	position int
}

func (c *cursor) remaining() int {
	return len(c.tokens) - c.position
}

func (c *cursor) peek() (string, bool) {
	if c.position >= len(c.tokens) {
		return "", false
	}
	return c.tokens[c.position], true
}

func (c *cursor) advance() string {
	token := c.tokens[c.position]
	c.position++
	return token
}

// Parse matches argv against the grammar. The first command whose name
// matches wins; any later failure is fatal and reported against that
// command.
func (g *Grammar) Parse(argv []string) (*Result, error) {
	if len(argv) == 0 {
		return nil, &ParseError{Kind: ErrNoCommand}
	}

	for _, command := range g.commands {
		position := &cursor{tokens: argv}
		if !matchName(command, position) {
			continue
		}
		return parseCommand(command, position)
	}

	return nil, &ParseError{
		Kind:       ErrUnknownCommand,
		Token:      unknownCommandText(argv),
		Suggestion: g.suggestCommand(argv),
	}
}

// matchName consumes the command's primary name words, or a single alias
// word, from the cursor. On failure the cursor is left untouched.
func matchName(command *Command, position *cursor) bool {
	start := position.position
	if position.remaining() >= len(command.Names) {
		matched := true
		for _, name := range command.Names {
			if !strings.EqualFold(position.advance(), name) {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
		position.position = start
	}

	if token, ok := position.peek(); ok && command.hasAlias(token) {
		position.advance()
		return true
	}
	return false
}

func parseCommand(command *Command, position *cursor) (*Result, error) {
	result := newResult()
	result.CommandID = command.ID

	fail := func(kind ErrorKind, token string) (*Result, error) {
		return nil, &ParseError{Kind: kind, Token: token, Command: command}
	}

	for {
		token, ok := position.peek()
		if !ok || !isSwitch(token) {
			break
		}
		position.advance()
		if token == "--" {
			break
		}

		name, long, inlineValue, hasInlineValue := splitSwitch(token)
		option := command.findOption(name, long)
		if option == nil {
			return fail(ErrUnknownOption, token)
		}

		value := ""
		switch {
		case option.TakesValue && hasInlineValue:
			value = inlineValue
		case option.TakesValue:
			if position.remaining() == 0 {
				return fail(ErrMissingValue, option.display())
			}
			value = position.advance()
		case hasInlineValue:
			return fail(ErrUnexpectedValue, option.display())
		}
		result.Values[option.Key()] = value
	}

	for index := range command.Options {
		option := &command.Options[index]
		if option.Required && !result.Found(option.Key()) {
			return fail(ErrMissingOption, option.display())
		}
	}

	for index := range command.Arguments {
		argument := &command.Arguments[index]
		token, ok := position.peek()
		if !ok {
			if argument.Required {
				return fail(ErrMissingArgument, argument.Name)
			}
			continue
		}
		position.advance()
		result.Values[argument.Name] = token
	}

	if token, ok := position.peek(); ok {
		return fail(ErrUnexpectedArgument, token)
	}
	return result, nil
}

// unknownCommandText picks the word shown in an unknown command error.
func unknownCommandText(argv []string) string {
	return argv[0]
}
