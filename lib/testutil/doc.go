// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for catalog packages.
//
// [Isolate] points every location the client reads from the
// environment (config directory, config file, server override,
// session file) at a fresh temporary directory, so tests never see
// the developer's real configuration or session.
//
// [WriteFile] and [ReadFile] wrap file setup and inspection.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no catalog-internal dependencies.
package testutil
