// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the catalog client's CBOR encoding for
// on-disk state.
//
// The client uses two serialization formats with a clear boundary:
//
//   - JSON for external interfaces: the catalog HTTP API, request
//     files, and --json CLI output.
//   - CBOR for local state files such as the persisted session.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2):
// sorted map keys, smallest integer encoding, no indefinite-length
// items. Same logical data always produces identical bytes. Times are
// encoded as tagged RFC 3339 strings with nanosecond precision.
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// [WriteFile] and [ReadFile] wrap these for state files. WriteFile
// replaces the target atomically and creates missing parent
// directories with mode 0700.
//
// Types serialized only as CBOR carry `cbor` struct tags. Types that
// also appear in JSON output carry `json` tags, which fxamacker/cbor
// reads as a fallback. Never use both tags on the same field.
package codec
