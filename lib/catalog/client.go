// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/catalog-foundation/catalog/lib/secret"
)

// apiPrefix is prepended to every request path.
const apiPrefix = "/api/repository/v1"

// maxResponseSize bounds JSON response bodies. File contents are
// streamed and not subject to it.
const maxResponseSize int64 = 64 << 20

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-Id"

// ClientConfig holds configuration for creating a Client.
type ClientConfig struct {
	// BaseURL is the service root (e.g., "https://catalog.example.org").
	BaseURL string
	// Token authenticates requests. Nil sends anonymous requests. The
	// client reads but never closes it.
	Token *secret.Token
	// HTTPClient is used for all requests. If nil, http.DefaultClient
	// is used.
	HTTPClient *http.Client
	// Logger receives one debug record per request. If nil,
	// slog.Default() is used.
	Logger *slog.Logger
}

// Client implements [Service], [Mutator], [Streamer] and [Identity]
// over the catalog's JSON/HTTP API.
type Client struct {
	baseURL    string
	token      *secret.Token
	httpClient *http.Client
	logger     *slog.Logger
}

var (
	_ Service  = (*Client)(nil)
	_ Mutator  = (*Client)(nil)
	_ Streamer = (*Client)(nil)
	_ Identity = (*Client)(nil)
)

// NewClient creates a client for the service at config.BaseURL.
func NewClient(config ClientConfig) (*Client, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("catalog: BaseURL is required")
	}
	parsed, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("catalog: invalid BaseURL %q: %w", config.BaseURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("catalog: BaseURL %q must use http or https", config.BaseURL)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		token:      config.Token,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

type page struct {
	Total int       `json:"total"`
	Items []Summary `json:"items"`
}

// EnumerateByKind lists one page of collections.
func (c *Client) EnumerateByKind(ctx context.Context, kind Kind, nameFilter string, offset, limit int) ([]Summary, error) {
	resource, err := kind.resource()
	if err != nil {
		return nil, err
	}
	query := url.Values{}
	query.Set("offset", strconv.Itoa(offset))
	query.Set("limit", strconv.Itoa(limit))
	if nameFilter != "" {
		query.Set("filter", nameFilter)
	}

	var response page
	if err := c.getJSON(ctx, "/"+resource, query, &response); err != nil {
		return nil, fmt.Errorf("catalog: enumerating %s: %w", resource, err)
	}
	return response.Items, nil
}

// RetrieveDetail returns the full schema of a collection.
func (c *Client) RetrieveDetail(ctx context.Context, kind Kind, id string) (*Detail, error) {
	resource, err := kind.resource()
	if err != nil {
		return nil, err
	}
	var detail Detail
	if err := c.getJSON(ctx, "/"+resource+"/"+url.PathEscape(id), nil, &detail); err != nil {
		return nil, fmt.Errorf("catalog: retrieving %s %s: %w", kind, id, err)
	}
	return &detail, nil
}

// LookupFileOrDirectory returns the file tree node at filePath.
func (c *Client) LookupFileOrDirectory(ctx context.Context, kind Kind, collectionID, filePath string, depth int) (*FileNode, error) {
	resource, err := kind.resource()
	if err != nil {
		return nil, err
	}
	query := url.Values{}
	query.Set("path", filePath)
	query.Set("depth", strconv.Itoa(depth))

	var node FileNode
	requestPath := "/" + resource + "/" + url.PathEscape(collectionID) + "/filesystem/objects"
	if err := c.getJSON(ctx, requestPath, query, &node); err != nil {
		return nil, fmt.Errorf("catalog: looking up %s in %s %s: %w", filePath, kind, collectionID, err)
	}
	return &node, nil
}

// LookupTableSchema returns the tables of a collection.
func (c *Client) LookupTableSchema(ctx context.Context, kind Kind, collectionID string) ([]Table, error) {
	resource, err := kind.resource()
	if err != nil {
		return nil, err
	}
	var response struct {
		Tables []Table `json:"tables"`
	}
	if err := c.getJSON(ctx, "/"+resource+"/"+url.PathEscape(collectionID)+"/tables", nil, &response); err != nil {
		return nil, fmt.Errorf("catalog: listing tables of %s %s: %w", kind, collectionID, err)
	}
	return response.Tables, nil
}

// CreateDataset submits a dataset creation request.
func (c *Client) CreateDataset(ctx context.Context, request json.RawMessage) (*Job, error) {
	return c.submit(ctx, http.MethodPost, "/datasets", request, "creating dataset")
}

// DeleteDataset submits a dataset deletion.
func (c *Client) DeleteDataset(ctx context.Context, id string) (*Job, error) {
	return c.submit(ctx, http.MethodDelete, "/datasets/"+url.PathEscape(id), nil, "deleting dataset "+id)
}

// CreateSnapshot submits a snapshot creation request.
func (c *Client) CreateSnapshot(ctx context.Context, request json.RawMessage) (*Job, error) {
	return c.submit(ctx, http.MethodPost, "/snapshots", request, "creating snapshot")
}

// DeleteSnapshot submits a snapshot deletion.
func (c *Client) DeleteSnapshot(ctx context.Context, id string) (*Job, error) {
	return c.submit(ctx, http.MethodDelete, "/snapshots/"+url.PathEscape(id), nil, "deleting snapshot "+id)
}

// IngestFile submits a single-file ingest into a dataset.
func (c *Client) IngestFile(ctx context.Context, datasetID string, request FileIngest) (*Job, error) {
	return c.submit(ctx, http.MethodPost, "/datasets/"+url.PathEscape(datasetID)+"/files", request, "ingesting file into dataset "+datasetID)
}

// IngestTable submits a table load into a dataset.
func (c *Client) IngestTable(ctx context.Context, datasetID string, request TableIngest) (*Job, error) {
	return c.submit(ctx, http.MethodPost, "/datasets/"+url.PathEscape(datasetID)+"/ingest", request, "ingesting table into dataset "+datasetID)
}

// WhoAmI returns the identity behind the client's token.
func (c *Client) WhoAmI(ctx context.Context) (*User, error) {
	var user User
	if err := c.getJSON(ctx, "/register/user", nil, &user); err != nil {
		return nil, fmt.Errorf("catalog: whoami: %w", err)
	}
	return &user, nil
}

// OpenFile opens the contents of a file for streaming. The caller must
// close the returned reader.
func (c *Client) OpenFile(ctx context.Context, kind Kind, collectionID, fileID string) (io.ReadCloser, error) {
	resource, err := kind.resource()
	if err != nil {
		return nil, err
	}
	requestPath := "/" + resource + "/" + url.PathEscape(collectionID) + "/files/" + url.PathEscape(fileID) + "/content"
	response, err := c.do(ctx, http.MethodGet, requestPath, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog: opening file %s: %w", fileID, err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		defer response.Body.Close()
		return nil, fmt.Errorf("catalog: opening file %s: %w", fileID, decodeError(response))
	}
	return response.Body, nil
}

func (c *Client) submit(ctx context.Context, method, requestPath string, body any, action string) (*Job, error) {
	response, err := c.do(ctx, method, requestPath, nil, body)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", action, err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, fmt.Errorf("catalog: %s: %w", action, decodeError(response))
	}
	var job Job
	if err := decodeBody(response.Body, &job); err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", action, err)
	}
	return &job, nil
}

func (c *Client) getJSON(ctx context.Context, requestPath string, query url.Values, target any) error {
	response, err := c.do(ctx, http.MethodGet, requestPath, query, nil)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return decodeError(response)
	}
	return decodeBody(response.Body, target)
}

// do sends one request and returns the raw response. The caller owns
// the response body.
func (c *Client) do(ctx context.Context, method, requestPath string, query url.Values, body any) (*http.Response, error) {
	requestURL := c.baseURL + apiPrefix + requestPath
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		var encoded []byte
		switch typed := body.(type) {
		case json.RawMessage:
			encoded = typed
		default:
			var err error
			encoded, err = json.Marshal(body)
			if err != nil {
				return nil, fmt.Errorf("encoding request body: %w", err)
			}
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	requestID := uuid.NewString()
	request.Header.Set(RequestIDHeader, requestID)
	request.Header.Set("Accept", "application/json")
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if c.token != nil {
		authorization, err := c.token.Authorization()
		if err != nil {
			return nil, err
		}
		request.Header.Set("Authorization", authorization)
	}

	start := time.Now()
	response, err := c.httpClient.Do(request)
	if err != nil {
		c.logger.Debug("catalog request failed",
			"method", method,
			"path", requestPath,
			"request_id", requestID,
			"error", err,
		)
		return nil, fmt.Errorf("request to %s %s failed: %w", method, requestPath, err)
	}
	c.logger.Debug("catalog request",
		"method", method,
		"path", requestPath,
		"status", response.StatusCode,
		"request_id", requestID,
		"elapsed", time.Since(start),
	)
	return response, nil
}

func decodeBody(body io.Reader, target any) error {
	data, err := io.ReadAll(io.LimitReader(body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("parsing response body: %w", err)
	}
	return nil
}

// decodeError turns a non-2xx response into an *APIError. Bodies that
// are not the service's JSON error shape become the message verbatim.
func decodeError(response *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(response.Body, maxResponseSize))
	apiErr := &APIError{StatusCode: response.StatusCode}
	if err := json.Unmarshal(data, apiErr); err != nil {
		apiErr.Message = strings.TrimSpace(string(data))
	}
	apiErr.StatusCode = response.StatusCode
	return apiErr
}
