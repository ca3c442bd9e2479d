// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

// Package transfer copies file contents from the catalog to a local
// writer, optionally decompressing them and computing a BLAKE3 digest
// of the bytes written.
package transfer

import (
	"encoding/hex"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/zeebo/blake3"
)

// Compression identifies the compression format of a stored file.
type Compression uint8

const (
	CompressionNone Compression = iota
	CompressionGzip
	CompressionZstd
	CompressionLZ4
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionGzip:
		return "gzip"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

// DetectCompression infers the compression format from a file name's
// extension. Unrecognized extensions mean CompressionNone.
func DetectCompression(name string) Compression {
	switch strings.ToLower(path.Ext(name)) {
	case ".gz", ".gzip":
		return CompressionGzip
	case ".zst", ".zstd":
		return CompressionZstd
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// StripExtension removes the compression extension from name, if it
// has one. It is used to name the decompressed output.
func StripExtension(name string) string {
	if DetectCompression(name) == CompressionNone {
		return name
	}
	return strings.TrimSuffix(name, path.Ext(name))
}

// NewDecompressor wraps source so that reads return decompressed
// bytes. Closing the returned reader does not close source.
func NewDecompressor(source io.Reader, compression Compression) (io.ReadCloser, error) {
	switch compression {
	case CompressionNone:
		return io.NopCloser(source), nil
	case CompressionGzip:
		reader, err := gzip.NewReader(source)
		if err != nil {
			return nil, fmt.Errorf("opening gzip stream: %w", err)
		}
		return reader, nil
	case CompressionZstd:
		decoder, err := zstd.NewReader(source)
		if err != nil {
			return nil, fmt.Errorf("opening zstd stream: %w", err)
		}
		return decoder.IOReadCloser(), nil
	case CompressionLZ4:
		return io.NopCloser(lz4.NewReader(source)), nil
	default:
		return nil, fmt.Errorf("unsupported compression %s", compression)
	}
}

// Options controls Copy.
type Options struct {
	// Compression is the format of the source bytes. They are
	// decompressed before being written.
	Compression Compression

	// Digest computes a BLAKE3 digest of the bytes written to the
	// destination.
	Digest bool
}

// Result reports what Copy wrote.
type Result struct {
	Bytes int64
	// Digest is the hex BLAKE3-256 digest of the written bytes, empty
	// unless Options.Digest was set.
	Digest string
}

// Copy streams source into destination per options.
func Copy(destination io.Writer, source io.Reader, options Options) (*Result, error) {
	reader, err := NewDecompressor(source, options.Compression)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	var hasher *blake3.Hasher
	writer := destination
	if options.Digest {
		hasher = blake3.New()
		writer = io.MultiWriter(destination, hasher)
	}

	written, err := io.Copy(writer, reader)
	if err != nil {
		return &Result{Bytes: written}, fmt.Errorf("copying %s stream: %w", options.Compression, err)
	}
	result := &Result{Bytes: written}
	if hasher != nil {
		result.Digest = hex.EncodeToString(hasher.Sum(nil))
	}
	return result, nil
}
