// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the catalog
// client.
//
// The configuration file is located by, in order: an explicit path
// (the --config flag), the CATALOG_CONFIG environment variable, and
// finally $XDG_CONFIG_HOME/catalog/config.yaml. An explicitly named
// file must exist; the default location may be absent, in which case
// [Default] values are used unchanged.
//
// Two environment variables override file values after loading:
// CATALOG_SERVER replaces server.url and CATALOG_SESSION_FILE replaces
// session.path. Path fields then have ${HOME}, ${XDG_CONFIG_HOME}, and
// ${VAR:-default} patterns expanded.
//
// Key exports:
//
//   - [Config] -- master struct with Server, Listing, Output, Session
//   - [Default] -- returns a Config with built-in defaults
//   - [Load] -- locates, reads, overrides, expands, and validates
//
// This package depends on no other catalog packages.
package config
