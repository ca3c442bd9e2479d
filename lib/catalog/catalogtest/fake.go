// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

// Package catalogtest provides an in-memory catalog service for tests.
//
// [Service] implements every interface in package catalog against
// maps held in memory. It counts calls per operation so tests can
// assert how many remote round trips a code path makes, and it can be
// told to fail a given operation with a fixed error.
package catalogtest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/catalog-foundation/catalog/lib/catalog"
)

// Operation names, used as keys for [Service.Calls] and [Service.FailOn].
const (
	OpEnumerateByKind       = "EnumerateByKind"
	OpRetrieveDetail        = "RetrieveDetail"
	OpLookupFileOrDirectory = "LookupFileOrDirectory"
	OpLookupTableSchema     = "LookupTableSchema"
	OpCreateDataset         = "CreateDataset"
	OpDeleteDataset         = "DeleteDataset"
	OpCreateSnapshot        = "CreateSnapshot"
	OpDeleteSnapshot        = "DeleteSnapshot"
	OpIngestFile            = "IngestFile"
	OpIngestTable           = "IngestTable"
	OpOpenFile              = "OpenFile"
	OpWhoAmI                = "WhoAmI"
)

// Epoch is the creation time given to collections added without one.
var Epoch = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

type collection struct {
	kind   catalog.Kind
	detail catalog.Detail
	files  *catalog.FileNode
}

// Mutation records one call to a [catalog.Mutator] method.
type Mutation struct {
	Operation string
	Target    string
	Request   any
}

// Service is an in-memory catalog. The zero value is not usable; call
// [NewService].
type Service struct {
	mu          sync.Mutex
	collections []*collection
	contents    map[string][]byte
	calls       map[string]int
	failures    map[string]error
	mutations   []Mutation
	user        *catalog.User
	nextID      int
}

var (
	_ catalog.Service  = (*Service)(nil)
	_ catalog.Mutator  = (*Service)(nil)
	_ catalog.Streamer = (*Service)(nil)
	_ catalog.Identity = (*Service)(nil)
)

// NewService returns an empty catalog whose identity is
// tester@example.org.
func NewService() *Service {
	return &Service{
		contents: make(map[string][]byte),
		calls:    make(map[string]int),
		failures: make(map[string]error),
		user:     &catalog.User{Email: "tester@example.org", SubjectID: "1"},
	}
}

// AddCollection adds a collection and returns its generated id. Tables
// become both the detail schema and the table listing.
func (s *Service) AddCollection(kind catalog.Kind, name, description string, tables ...catalog.Table) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addCollectionLocked(kind, name, description, tables)
}

func (s *Service) addCollectionLocked(kind catalog.Kind, name, description string, tables []catalog.Table) string {
	s.nextID++
	id := fmt.Sprintf("%s-%d", kind, s.nextID)
	s.collections = append(s.collections, &collection{
		kind: kind,
		detail: catalog.Detail{
			Summary: catalog.Summary{
				ID:          id,
				Name:        name,
				Created:     Epoch.Add(time.Duration(s.nextID) * time.Hour),
				Description: description,
			},
			Tables: tables,
		},
		files: &catalog.FileNode{
			FileID:       id + "-root",
			CollectionID: id,
			Path:         "/",
			Type:         catalog.FileTypeDirectory,
			Created:      Epoch,
		},
	})
	return id
}

// AddFile stores a file at filePath inside the collection, creating
// parent directories as needed, and returns the file id.
func (s *Service) AddFile(collectionID, filePath string, data []byte) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := s.findLocked(collectionID)
	if target == nil {
		panic(fmt.Sprintf("catalogtest: AddFile into unknown collection %q", collectionID))
	}
	segments := strings.Split(strings.Trim(filePath, "/"), "/")
	parent := target.files
	for index, segment := range segments[:len(segments)-1] {
		directoryPath := "/" + strings.Join(segments[:index+1], "/")
		child := childNamed(parent, segment)
		if child == nil {
			s.nextID++
			parent.Contents = append(parent.Contents, catalog.FileNode{
				FileID:       fmt.Sprintf("dir-%d", s.nextID),
				CollectionID: collectionID,
				Path:         directoryPath,
				Type:         catalog.FileTypeDirectory,
				Created:      Epoch,
			})
			child = &parent.Contents[len(parent.Contents)-1]
		}
		parent = child
	}

	s.nextID++
	fileID := fmt.Sprintf("file-%d", s.nextID)
	parent.Contents = append(parent.Contents, catalog.FileNode{
		FileID:       fileID,
		CollectionID: collectionID,
		Path:         "/" + strings.Join(segments, "/"),
		Type:         catalog.FileTypeFile,
		Size:         int64(len(data)),
		Created:      Epoch,
		MimeType:     "application/octet-stream",
	})
	s.contents[fileID] = bytes.Clone(data)
	return fileID
}

// SetUser replaces the identity returned by WhoAmI.
func (s *Service) SetUser(user *catalog.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

// FailOn makes every later call to operation return err. A nil err
// clears the failure.
func (s *Service) FailOn(operation string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, operation)
		return
	}
	s.failures[operation] = err
}

// Calls returns how many times operation has been invoked.
func (s *Service) Calls(operation string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[operation]
}

// TotalCalls returns the number of calls across all operations.
func (s *Service) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, count := range s.calls {
		total += count
	}
	return total
}

// ResetCalls zeroes every call counter.
func (s *Service) ResetCalls() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.calls)
}

// Mutations returns the mutator calls made so far, oldest first.
func (s *Service) Mutations() []Mutation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.mutations)
}

// begin counts a call and returns the injected failure, if any. The
// caller must hold s.mu.
func (s *Service) begin(ctx context.Context, operation string) error {
	s.calls[operation]++
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.failures[operation]
}

func notFound(format string, args ...any) error {
	return &catalog.APIError{StatusCode: http.StatusNotFound, Message: fmt.Sprintf(format, args...)}
}

func (s *Service) findLocked(id string) *collection {
	for _, candidate := range s.collections {
		if candidate.detail.ID == id {
			return candidate
		}
	}
	return nil
}

func (s *Service) findKindLocked(kind catalog.Kind, id string) (*collection, error) {
	found := s.findLocked(id)
	if found == nil || found.kind != kind {
		return nil, notFound("%s %s not found", kind, id)
	}
	return found, nil
}

// EnumerateByKind returns collections of kind whose name contains
// nameFilter, in insertion order.
func (s *Service) EnumerateByKind(ctx context.Context, kind catalog.Kind, nameFilter string, offset, limit int) ([]catalog.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(ctx, OpEnumerateByKind); err != nil {
		return nil, err
	}

	var matched []catalog.Summary
	for _, candidate := range s.collections {
		if candidate.kind == kind && strings.Contains(candidate.detail.Name, nameFilter) {
			matched = append(matched, candidate.detail.Summary)
		}
	}
	if offset >= len(matched) {
		return nil, nil
	}
	end := len(matched)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return matched[offset:end], nil
}

// RetrieveDetail returns a copy of the collection's detail.
func (s *Service) RetrieveDetail(ctx context.Context, kind catalog.Kind, id string) (*catalog.Detail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(ctx, OpRetrieveDetail); err != nil {
		return nil, err
	}
	found, err := s.findKindLocked(kind, id)
	if err != nil {
		return nil, err
	}
	detail := found.detail
	detail.Tables = slices.Clone(found.detail.Tables)
	return &detail, nil
}

// LookupFileOrDirectory returns a copy of the node at filePath with
// directory contents populated depth levels down.
func (s *Service) LookupFileOrDirectory(ctx context.Context, kind catalog.Kind, collectionID, filePath string, depth int) (*catalog.FileNode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(ctx, OpLookupFileOrDirectory); err != nil {
		return nil, err
	}
	found, err := s.findKindLocked(kind, collectionID)
	if err != nil {
		return nil, err
	}

	node := found.files
	cleaned := path.Clean("/" + filePath)
	if cleaned != "/" {
		for _, segment := range strings.Split(strings.TrimPrefix(cleaned, "/"), "/") {
			node = childNamed(node, segment)
			if node == nil {
				return nil, notFound("no file or directory at %s", cleaned)
			}
		}
	}
	copied := copyNode(node, depth)
	return &copied, nil
}

// LookupTableSchema returns the collection's tables in declared order.
func (s *Service) LookupTableSchema(ctx context.Context, kind catalog.Kind, collectionID string) ([]catalog.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(ctx, OpLookupTableSchema); err != nil {
		return nil, err
	}
	found, err := s.findKindLocked(kind, collectionID)
	if err != nil {
		return nil, err
	}
	return slices.Clone(found.detail.Tables), nil
}

type createRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Service) create(ctx context.Context, operation string, kind catalog.Kind, request json.RawMessage) (*catalog.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(ctx, operation); err != nil {
		return nil, err
	}
	var parsed createRequest
	if err := json.Unmarshal(request, &parsed); err != nil {
		return nil, &catalog.APIError{StatusCode: http.StatusBadRequest, Message: err.Error()}
	}
	if parsed.Name == "" {
		return nil, &catalog.APIError{StatusCode: http.StatusBadRequest, Message: "name is required"}
	}
	id := s.addCollectionLocked(kind, parsed.Name, parsed.Description, nil)
	return s.recordLocked(operation, id, request), nil
}

func (s *Service) remove(ctx context.Context, operation string, kind catalog.Kind, id string) (*catalog.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(ctx, operation); err != nil {
		return nil, err
	}
	if _, err := s.findKindLocked(kind, id); err != nil {
		return nil, err
	}
	s.collections = slices.DeleteFunc(s.collections, func(candidate *collection) bool {
		return candidate.detail.ID == id
	})
	return s.recordLocked(operation, id, nil), nil
}

func (s *Service) recordLocked(operation, target string, request any) *catalog.Job {
	s.mutations = append(s.mutations, Mutation{Operation: operation, Target: target, Request: request})
	s.nextID++
	return &catalog.Job{
		ID:        fmt.Sprintf("job-%d", s.nextID),
		Status:    "succeeded",
		Submitted: Epoch,
	}
}

// CreateDataset adds a dataset named by the request's "name" field.
func (s *Service) CreateDataset(ctx context.Context, request json.RawMessage) (*catalog.Job, error) {
	return s.create(ctx, OpCreateDataset, catalog.KindDataset, request)
}

// DeleteDataset removes a dataset.
func (s *Service) DeleteDataset(ctx context.Context, id string) (*catalog.Job, error) {
	return s.remove(ctx, OpDeleteDataset, catalog.KindDataset, id)
}

// CreateSnapshot adds a snapshot named by the request's "name" field.
func (s *Service) CreateSnapshot(ctx context.Context, request json.RawMessage) (*catalog.Job, error) {
	return s.create(ctx, OpCreateSnapshot, catalog.KindSnapshot, request)
}

// DeleteSnapshot removes a snapshot.
func (s *Service) DeleteSnapshot(ctx context.Context, id string) (*catalog.Job, error) {
	return s.remove(ctx, OpDeleteSnapshot, catalog.KindSnapshot, id)
}

// IngestFile records the request. No file is created.
func (s *Service) IngestFile(ctx context.Context, datasetID string, request catalog.FileIngest) (*catalog.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(ctx, OpIngestFile); err != nil {
		return nil, err
	}
	if _, err := s.findKindLocked(catalog.KindDataset, datasetID); err != nil {
		return nil, err
	}
	return s.recordLocked(OpIngestFile, datasetID, request), nil
}

// IngestTable records the request. No rows are loaded.
func (s *Service) IngestTable(ctx context.Context, datasetID string, request catalog.TableIngest) (*catalog.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(ctx, OpIngestTable); err != nil {
		return nil, err
	}
	if _, err := s.findKindLocked(catalog.KindDataset, datasetID); err != nil {
		return nil, err
	}
	return s.recordLocked(OpIngestTable, datasetID, request), nil
}

// OpenFile returns the bytes stored by AddFile.
func (s *Service) OpenFile(ctx context.Context, kind catalog.Kind, collectionID, fileID string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(ctx, OpOpenFile); err != nil {
		return nil, err
	}
	if _, err := s.findKindLocked(kind, collectionID); err != nil {
		return nil, err
	}
	data, ok := s.contents[fileID]
	if !ok {
		return nil, notFound("file %s not found", fileID)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// WhoAmI returns the configured identity.
func (s *Service) WhoAmI(ctx context.Context) (*catalog.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(ctx, OpWhoAmI); err != nil {
		return nil, err
	}
	if s.user == nil {
		return nil, &catalog.APIError{StatusCode: http.StatusUnauthorized, Message: "not authenticated"}
	}
	user := *s.user
	return &user, nil
}

func childNamed(node *catalog.FileNode, name string) *catalog.FileNode {
	for index := range node.Contents {
		if node.Contents[index].Name() == name {
			return &node.Contents[index]
		}
	}
	return nil
}

// copyNode deep-copies node, keeping directory contents depth levels
// down.
func copyNode(node *catalog.FileNode, depth int) catalog.FileNode {
	copied := *node
	copied.Contents = nil
	if depth <= 0 {
		return copied
	}
	for index := range node.Contents {
		copied.Contents = append(copied.Contents, copyNode(&node.Contents[index], depth-1))
	}
	return copied
}
