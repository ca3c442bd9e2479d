// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// sampleState is a representative on-disk state record using cbor
// struct tags.
type sampleState struct {
	Server  string    `cbor:"server"`
	Path    string    `cbor:"path,omitempty"`
	Count   int       `cbor:"count"`
	Updated time.Time `cbor:"updated"`
}

func TestMarshalUnmarshalRoundtrip(t *testing.T) {
	original := sampleState{
		Server:  "https://catalog.example.org",
		Path:    "/genomes/files",
		Count:   42,
		Updated: time.Date(2026, 3, 4, 5, 6, 7, 891, time.UTC),
	}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded sampleState
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Server != original.Server || decoded.Path != original.Path || decoded.Count != original.Count {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", decoded, original)
	}
	if !decoded.Updated.Equal(original.Updated) {
		t.Errorf("time roundtrip: got %v, want %v", decoded.Updated, original.Updated)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	value := map[string]int{"zeta": 1, "alpha": 2, "mid": 3}

	first, err := Marshal(value)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for i := 0; i < 20; i++ {
		again, err := Marshal(value)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("non-deterministic encoding: %x vs %x", first, again)
		}
	}
}

func TestUnmarshalIgnoresUnknownFields(t *testing.T) {
	data, err := Marshal(map[string]any{"server": "http://a", "count": 3, "added_later": true})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded sampleState
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Server != "http://a" || decoded.Count != 3 {
		t.Errorf("decoded %+v", decoded)
	}
}

func TestUnmarshalAnyUsesStringKeys(t *testing.T) {
	data, err := Marshal(map[string]any{"nested": map[string]any{"key": "value"}})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded any
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	outer, ok := decoded.(map[string]any)
	if !ok {
		t.Fatalf("decoded %T, want map[string]any", decoded)
	}
	if _, ok := outer["nested"].(map[string]any); !ok {
		t.Errorf("nested value is %T, want map[string]any", outer["nested"])
	}
}

func TestWriteFileReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state", "nested", "session.cbor")
	original := sampleState{Server: "http://a", Count: 1}

	if err := WriteFile(path, original, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if mode := info.Mode().Perm(); mode != 0o600 {
		t.Errorf("file mode = %o, want 600", mode)
	}
	dirInfo, err := os.Stat(filepath.Dir(path))
	if err != nil {
		t.Fatalf("Stat dir: %v", err)
	}
	if mode := dirInfo.Mode().Perm(); mode != 0o700 {
		t.Errorf("dir mode = %o, want 700", mode)
	}

	original.Count = 2
	if err := WriteFile(path, original, 0o600); err != nil {
		t.Fatalf("second WriteFile: %v", err)
	}
	var decoded sampleState
	if err := ReadFile(path, &decoded); err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if decoded.Count != 2 {
		t.Errorf("Count = %d, want 2", decoded.Count)
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("directory has %d entries after replace, want 1 (no temp files left)", len(entries))
	}
}

func TestReadFileMissing(t *testing.T) {
	var decoded sampleState
	err := ReadFile(filepath.Join(t.TempDir(), "absent.cbor"), &decoded)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile(missing) error = %v, want fs.ErrNotExist", err)
	}
}

func TestReadFileCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.cbor")
	if err := os.WriteFile(path, []byte{0xff, 0x00, 0x13}, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	var decoded sampleState
	if err := ReadFile(path, &decoded); err == nil {
		t.Error("ReadFile(corrupt) succeeded")
	}
}
