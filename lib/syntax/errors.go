// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package syntax

import (
	"fmt"
	"strings"
)

// ErrorKind classifies parse failures.
type ErrorKind int

const (
	// ErrNoCommand means argv was empty.
	ErrNoCommand ErrorKind = iota
	// ErrUnknownCommand means no declared command matched the leading
	// tokens.
	ErrUnknownCommand
	// ErrUnknownOption means a switch did not match any of the command's
	// options.
	ErrUnknownOption
	// ErrMissingValue means a value-taking switch was the last token.
	ErrMissingValue
	// ErrUnexpectedValue means a --long=value form was used on a switch
	// that takes no value.
	ErrUnexpectedValue
	// ErrMissingOption means a required switch was not given.
	ErrMissingOption
	// ErrMissingArgument means a required positional argument was not
	// given.
	ErrMissingArgument
	// ErrUnexpectedArgument means tokens remained after every declared
	// argument was consumed.
	ErrUnexpectedArgument
)

func (k ErrorKind) String() string {
	switch k {
	case ErrNoCommand:
		return "no command"
	case ErrUnknownCommand:
		return "unknown command"
	case ErrUnknownOption:
		return "unknown option"
	case ErrMissingValue:
		return "option requires an argument"
	case ErrUnexpectedValue:
		return "option takes no argument"
	case ErrMissingOption:
		return "required option missing"
	case ErrMissingArgument:
		return "required argument missing"
	case ErrUnexpectedArgument:
		return "unexpected argument"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ParseError reports a fatal problem with the command line.
type ParseError struct {
	Kind ErrorKind

	// Token is the offending token or key: the unknown switch, the
	// missing argument's name, the first unexpected token.
	Token string

	// Command is the command being parsed when the failure occurred, or
	// nil when no command had been identified yet.
	Command *Command

	// Suggestion is a close command name for ErrUnknownCommand, or "".
	Suggestion string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrNoCommand:
		return "no command given"
	case ErrUnknownCommand:
		if e.Suggestion != "" {
			return fmt.Sprintf("unknown command %q (did you mean %q?)", e.Token, e.Suggestion)
		}
		return fmt.Sprintf("unknown command %q", e.Token)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Token)
	}
}

// FormatError renders err for the operator: the message, then the usage
// line of the command it belongs to, or a pointer to general help when
// no command was identified.
func (g *Grammar) FormatError(err *ParseError) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "%s: %s\n", g.program, err.Error())
	if err.Command != nil {
		builder.WriteString(g.UsageLine(err.Command))
		builder.WriteString("\n")
	} else {
		fmt.Fprintf(&builder, "Run '%s help' for usage.\n", g.program)
	}
	return builder.String()
}
