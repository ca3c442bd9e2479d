// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"fmt"
	"path"
	"time"
)

// Kind names a collection kind.
type Kind string

const (
	KindDataset  Kind = "dataset"
	KindStudy    Kind = "study"
	KindSnapshot Kind = "snapshot"
)

// Kinds lists the collection kinds in root enumeration order.
var Kinds = []Kind{KindDataset, KindStudy, KindSnapshot}

// resource returns the plural path segment for the kind.
func (k Kind) resource() (string, error) {
	switch k {
	case KindDataset:
		return "datasets", nil
	case KindStudy:
		return "studies", nil
	case KindSnapshot:
		return "snapshots", nil
	default:
		return "", fmt.Errorf("catalog: unknown collection kind %q", string(k))
	}
}

// Summary is the listing view of a collection.
type Summary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Created     time.Time `json:"created_date"`
	Description string    `json:"description"`
}

// Column describes one column of a table schema.
type Column struct {
	Name     string `json:"name"`
	DataType string `json:"datatype"`
	ArrayOf  bool   `json:"array_of,omitempty"`
}

// Table is a named tabular schema.
type Table struct {
	Name       string   `json:"name"`
	Columns    []Column `json:"columns"`
	PrimaryKey []string `json:"primary_key,omitempty"`
	RowCount   int64    `json:"row_count"`
}

// ColumnRef addresses a column of a table.
type ColumnRef struct {
	Table  string `json:"table"`
	Column string `json:"column"`
}

// Relationship links two columns across tables.
type Relationship struct {
	Name string    `json:"name"`
	From ColumnRef `json:"from"`
	To   ColumnRef `json:"to"`
}

// Asset is a named subset of a collection rooted at one table column.
type Asset struct {
	Name       string   `json:"name"`
	RootTable  string   `json:"root_table"`
	RootColumn string   `json:"root_column"`
	Tables     []string `json:"tables,omitempty"`
}

// Detail is the full schema view of a collection.
type Detail struct {
	Summary
	DefaultProfileID string         `json:"default_profile_id,omitempty"`
	Tables           []Table        `json:"tables"`
	Relationships    []Relationship `json:"relationships,omitempty"`
	Assets           []Asset        `json:"assets,omitempty"`
	// Sources names the datasets a snapshot was cut from.
	Sources []string `json:"sources,omitempty"`
}

// FileType distinguishes files from directories in a collection's file
// tree.
type FileType string

const (
	FileTypeFile      FileType = "file"
	FileTypeDirectory FileType = "directory"
)

// Checksum is one content checksum reported for a file.
type Checksum struct {
	Type  string `json:"type"`
	Value string `json:"checksum"`
}

// FileNode is a file or directory in a collection's file tree.
// Directories carry their Contents down to the depth requested from
// [Service.LookupFileOrDirectory].
type FileNode struct {
	FileID       string     `json:"file_id"`
	CollectionID string     `json:"collection_id"`
	Path         string     `json:"path"`
	Type         FileType   `json:"file_type"`
	Size         int64      `json:"size"`
	Created      time.Time  `json:"created"`
	Description  string     `json:"description,omitempty"`
	MimeType     string     `json:"mime_type,omitempty"`
	Checksums    []Checksum `json:"checksums,omitempty"`
	Contents     []FileNode `json:"contents,omitempty"`
}

// Name returns the last segment of the node's path.
func (n *FileNode) Name() string {
	return path.Base(n.Path)
}

// IsDirectory reports whether the node is a directory.
func (n *FileNode) IsDirectory() bool {
	return n.Type == FileTypeDirectory
}

// Job is the server's handle on an asynchronous mutation.
type Job struct {
	ID          string    `json:"id"`
	Status      string    `json:"job_status"`
	Description string    `json:"description"`
	Submitted   time.Time `json:"submitted"`
}

// FileIngest requests that one file be copied into a dataset.
type FileIngest struct {
	SourcePath  string `json:"source_path"`
	TargetPath  string `json:"target_path"`
	ProfileID   string `json:"profile_id,omitempty"`
	Description string `json:"description,omitempty"`
	MimeType    string `json:"mime_type,omitempty"`
}

// TableIngest requests that rows be loaded into a dataset table.
type TableIngest struct {
	Table               string `json:"table"`
	Path                string `json:"path"`
	Format              string `json:"format"`
	CSVSkipLeadingRows  int    `json:"csv_skip_leading_rows,omitempty"`
	CSVFieldDelimiter   string `json:"csv_field_delimiter,omitempty"`
	IgnoreUnknownValues bool   `json:"ignore_unknown_values,omitempty"`
	MaxBadRecords       int    `json:"max_bad_records,omitempty"`
}

// User is the identity behind the current credentials.
type User struct {
	Email     string `json:"user_email"`
	SubjectID string `json:"user_subject_id"`
}
