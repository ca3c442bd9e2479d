// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

// Package secret holds bearer tokens in memory that is locked against
// swapping, excluded from core dumps, and zeroed on close.
//
// A [Token] is backed by an anonymous mmap region outside the Go heap,
// so the garbage collector never copies it. Tokens come from a file
// ([ReadToken], "-" for stdin) or from an interactive no-echo prompt
// ([PromptToken]). The only heap copies are made at the HTTP boundary by
// [Token.Authorization] and when the session file is written.
package secret
