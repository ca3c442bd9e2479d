// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the support layer shared by the catalog
// command handlers and main.
//
//   - [NewCommandLogger] builds the slog logger: text on a terminal,
//     JSON otherwise.
//   - [ToolError] categorizes failures, and [ExitCode] maps any error
//     returned by a handler to the process exit status. [ExitError]
//     exits non-zero without printing.
//   - [Session] is the persisted operator context: server, bearer
//     token, identity, and working path. [LoadSession] and
//     [SaveSession] read and write it as CBOR with owner-only
//     permissions.
//   - [Output] bundles the stdout printer with the --json switch so
//     handlers emit either rendered text or JSON through one call.
package cli
