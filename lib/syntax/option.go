// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package syntax

import "strings"

// Option declares a switch accepted by a command.
type Option struct {
	// Short is the single-dash name without its prefix ("r" for -r).
	Short string

	// Long is the double-dash name without its prefix ("recursive" for
	// --recursive). Optional.
	Long string

	// TakesValue means the switch consumes the following token (or the
	// text after "=" in the --long=value form) as its value.
	TakesValue bool

	// ValueName is the placeholder shown in usage text. Defaults to
	// "value".
	ValueName string

	// Required switches must appear on every invocation.
	Required bool

	// Help is a one-line description shown in detailed help.
	Help string
}

// Key returns the name the switch is recorded under in a [Result]: the
// long name when present, otherwise the short name.
func (o *Option) Key() string {
	if o.Long != "" {
		return o.Long
	}
	return o.Short
}

// matches reports whether a switch token's bare name refers to this
// option. Long tokens ("--name") only match the long name and short
// tokens ("-n") only match the short name.
func (o *Option) matches(name string, long bool) bool {
	if long {
		return o.Long != "" && o.Long == name
	}
	return o.Short != "" && o.Short == name
}

func (o *Option) valueName() string {
	if o.ValueName != "" {
		return o.ValueName
	}
	return "value"
}

// display returns the preferred spelling of the switch: "--long" when a
// long name exists, "-s" otherwise.
func (o *Option) display() string {
	if o.Long != "" {
		return "--" + o.Long
	}
	return "-" + o.Short
}

// synopsis renders the switch for a single-line usage string:
// "-d <depth>", with square brackets when optional.
func (o *Option) synopsis() string {
	var builder strings.Builder
	if o.Short != "" {
		builder.WriteString("-" + o.Short)
	} else {
		builder.WriteString("--" + o.Long)
	}
	if o.TakesValue {
		builder.WriteString(" <" + o.valueName() + ">")
	}
	if o.Required {
		return builder.String()
	}
	return "[" + builder.String() + "]"
}

// names renders every spelling of the switch for detailed help:
// "-d, --depth <depth>".
func (o *Option) names() string {
	var parts []string
	if o.Short != "" {
		parts = append(parts, "-"+o.Short)
	}
	if o.Long != "" {
		parts = append(parts, "--"+o.Long)
	}
	text := strings.Join(parts, ", ")
	if o.TakesValue {
		text += " <" + o.valueName() + ">"
	}
	return text
}

// Argument declares a positional argument. Arguments are consumed in the
// order they are declared; required arguments must precede optional ones
// (enforced by [NewGrammar]).
type Argument struct {
	Name     string
	Required bool
	Help     string
}

func (a *Argument) synopsis() string {
	if a.Required {
		return "<" + a.Name + ">"
	}
	return "[<" + a.Name + ">]"
}

// isSwitch reports whether token is shaped like a switch. A lone "-" is
// a positional token (conventionally stdin or stdout).
func isSwitch(token string) bool {
	return len(token) > 1 && token[0] == '-'
}

// splitSwitch breaks a switch token into its bare name, whether it used
// the long form, and an inline "=value" if one was given. Only the long
// form accepts inline values.
func splitSwitch(token string) (name string, long bool, value string, hasValue bool) {
	if strings.HasPrefix(token, "--") {
		name = token[2:]
		if before, after, found := strings.Cut(name, "="); found {
			return before, true, after, true
		}
		return name, true, "", false
	}
	return token[1:], false, "", false
}
