// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

// Package syntax implements the declarative command grammar used by the
// catalog CLI.
//
// A [Grammar] is a static, ordered table of [Command] declarations. Each
// command has one or more primary name words ("dataset create"), optional
// single-word aliases ("ls"), an ordered set of [Option] switches and an
// ordered list of positional [Argument] values. [Grammar.Parse] walks argv
// left to right and turns it into a [Result]: the matched command id plus
// a flat key/value map. Keys are the switch's long name (or short name
// when it has no long name) and the argument's name.
//
// Parsing a command happens in four phases:
//
//  1. Name match. Commands are tried in declaration order. The primary
//     name words must all match (case-insensitively); failing that, a
//     single alias word may match instead. A failed attempt never consumes
//     input.
//  2. Switch loop. While the next token looks like a switch ("-x",
//     "--xyz", "--xyz=value"), it is matched against the command's
//     options, in any order.
//  3. Required-switch validation.
//  4. Argument loop. Positional arguments are consumed in declared order.
//
// Every failure is a [*ParseError] that remembers the command it was
// parsing, so callers can print that command's usage line instead of a
// generic message. [Grammar.WriteHelp] implements prefix-based help
// lookup over the same table.
package syntax
