// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the authenticated identity of the running client.
//
// A [Store] is either anonymous or holds a bearer token together with the
// user it was issued for. Both are replaced or cleared as one value, so a
// concurrent reader never observes a token without its user or the reverse.
// One Store is created per process and injected wherever it is needed.
package session

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-bus-schedule/internal/utils"
	"github.com/MKhiriev/go-bus-schedule/models"
)

// ErrEmptyToken is returned by [Store.Set] for a blank token.
var ErrEmptyToken = errors.New("session token is empty")

// Snapshot is an immutable view of the session at one point in time.
// Token is non-empty if and only if User is non-nil.
type Snapshot struct {
	Token string
	User  *models.User
}

// IsAuthenticated reports whether the snapshot holds an identity.
func (s Snapshot) IsAuthenticated() bool {
	return s.Token != "" && s.User != nil
}

func (s Snapshot) hasRole(role models.Role) bool {
	return s.IsAuthenticated() && s.User.Role.Is(role)
}

// Store is the process-wide session. The zero value is an anonymous store
// ready for use.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore returns an anonymous store.
func NewStore() *Store {
	return &Store{}
}

// Set replaces the session with token and user.
func (s *Store) Set(token string, user models.User) error {
	if token == "" {
		return ErrEmptyToken
	}

	s.current.Store(&Snapshot{Token: token, User: &user})
	return nil
}

// Clear makes the store anonymous. It is idempotent.
func (s *Store) Clear() {
	s.current.Store(nil)
}

// Snapshot returns the current session. The returned User is a copy the
// caller may modify.
func (s *Store) Snapshot() Snapshot {
	snap := s.current.Load()
	if snap == nil {
		return Snapshot{}
	}

	user := *snap.User
	return Snapshot{Token: snap.Token, User: &user}
}

// CurrentUser returns the authenticated user; ok is false when anonymous.
func (s *Store) CurrentUser() (models.User, bool) {
	snap := s.current.Load()
	if snap == nil {
		return models.User{}, false
	}
	return *snap.User, true
}

// Token returns the bearer token, or "" when anonymous.
func (s *Store) Token() string {
	snap := s.current.Load()
	if snap == nil {
		return ""
	}
	return snap.Token
}

// IsAuthenticated reports whether a token and a user are held.
func (s *Store) IsAuthenticated() bool {
	return s.load().IsAuthenticated()
}

// IsAdmin reports whether the current user has the admin role.
func (s *Store) IsAdmin() bool {
	return s.load().hasRole(models.RoleAdmin)
}

// IsOperator reports whether the current user has the driver role.
func (s *Store) IsOperator() bool {
	return s.load().hasRole(models.RoleDriver)
}

// IsClient reports whether the current user has the client role.
func (s *Store) IsClient() bool {
	return s.load().hasRole(models.RoleClient)
}

// ExpiresAt returns the "exp" claim of the current token. The signature is
// not verified. ok is false when anonymous or when the token is not a JWT
// with an expiry.
func (s *Store) ExpiresAt() (expiresAt time.Time, ok bool) {
	token := s.Token()
	if token == "" {
		return time.Time{}, false
	}

	expiresAt, ok, err := utils.ParseTokenExpiry(token)
	if err != nil {
		return time.Time{}, false
	}
	return expiresAt, ok
}

func (s *Store) load() Snapshot {
	snap := s.current.Load()
	if snap == nil {
		return Snapshot{}
	}
	return *snap
}
