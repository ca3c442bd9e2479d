// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/catalog-foundation/catalog/lib/codec"
	"github.com/catalog-foundation/catalog/lib/secret"
)

// Session is the operator context persisted between invocations: the
// credentials from "catalog login" and the working path set by
// "catalog cd". Analogous to a shell's cwd plus an SSH key: set up
// once, then transparent.
type Session struct {
	// Server is the service URL the token was issued for. Empty for an
	// anonymous session.
	Server string `cbor:"server,omitempty"`

	// User is the identity the server reported at login.
	User string `cbor:"user,omitempty"`

	// Token is the bearer token. Held as bytes so copies handed to
	// secret.NewToken can be zeroed.
	Token []byte `cbor:"token,omitempty"`

	// WorkingPath is the absolute logical path relative paths are
	// resolved against.
	WorkingPath string `cbor:"working_path"`

	// LoggedInAt is when the token was verified.
	LoggedInAt time.Time `cbor:"logged_in_at"`
}

// NewSession returns an anonymous session at the root.
func NewSession() *Session {
	return &Session{WorkingPath: "/"}
}

// LoadSession reads the session file at path. A missing file yields
// an anonymous session at the root.
func LoadSession(path string) (*Session, error) {
	session := NewSession()
	if err := codec.ReadFile(path, session); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewSession(), nil
		}
		return nil, fmt.Errorf("reading session file %s: %w", path, err)
	}
	if session.WorkingPath == "" {
		session.WorkingPath = "/"
	}
	return session, nil
}

// SaveSession writes session to path with mode 0600, creating the
// parent directory with mode 0700.
func SaveSession(path string, session *Session) error {
	if err := codec.WriteFile(path, session, 0o600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	return nil
}

// LoggedIn reports whether the session holds a token.
func (s *Session) LoggedIn() bool {
	return len(s.Token) > 0
}

// Credential returns the token in protected memory, or nil for an
// anonymous session. The caller must close a non-nil token.
func (s *Session) Credential() (*secret.Token, error) {
	if !s.LoggedIn() {
		return nil, nil
	}
	return secret.NewToken(bytes.Clone(s.Token))
}

// SetCredentials records a verified login.
func (s *Session) SetCredentials(server, user string, token *secret.Token, now time.Time) error {
	value, err := token.Reveal()
	if err != nil {
		return err
	}
	s.Server = server
	s.User = user
	s.Token = []byte(value)
	s.LoggedInAt = now.UTC()
	return nil
}

// ClearCredentials forgets the login but keeps the working path.
func (s *Session) ClearCredentials() {
	for index := range s.Token {
		s.Token[index] = 0
	}
	s.Server = ""
	s.User = ""
	s.Token = nil
	s.LoggedInAt = time.Time{}
}

// SessionSummary is the displayable view of a session. It never
// includes the token.
type SessionSummary struct {
	Server      string    `json:"server,omitempty"`
	User        string    `json:"user,omitempty"`
	LoggedIn    bool      `json:"logged_in"`
	LoggedInAt  time.Time `json:"logged_in_at,omitzero"`
	WorkingPath string    `json:"working_path"`
	Path        string    `json:"path"`
}

// Summary returns the displayable view of the session stored at path.
func (s *Session) Summary(path string) SessionSummary {
	return SessionSummary{
		Server:      s.Server,
		User:        s.User,
		LoggedIn:    s.LoggedIn(),
		LoggedInAt:  s.LoggedInAt,
		WorkingPath: s.WorkingPath,
		Path:        path,
	}
}
