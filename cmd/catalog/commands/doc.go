// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands holds the catalog CLI's static command grammar and
// one handler per command id.
//
// The grammar is declared once in [Grammar] and parsed by lib/syntax.
// [Run] parses an argument vector, answers help requests, and
// dispatches the matched command id to its handler with an [App]
// carrying the loaded configuration, the persisted session, and the
// remote service clients. Handlers never touch process state
// directly, so tests drive them with an in-memory catalog.
package commands
