// In file: internal/session/store.go

// Package session stores per-session credential overrides between
// invocations. The gateway never reads a store itself; callers fetch the
// override and pass it into each invocation by value.
package session

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidID is returned for blank session ids.
var ErrInvalidID = errors.New("session id must not be empty")

// CredentialStore holds at most one API key per session.
type CredentialStore interface {
	// Get returns the stored key, or "" if the session has none.
	Get(ctx context.Context, id string) (string, error)
	// Set stores key for the session. A blank key clears it.
	Set(ctx context.Context, id, key string) error
	// Clear removes the session's key. Clearing an unknown session is not an error.
	Clear(ctx context.Context, id string) error
}

// NewID mints a fresh session id.
func NewID() string {
	return uuid.NewString()
}

// validID trims id and rejects blank ones.
func validID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrInvalidID
	}
	return id, nil
}

// normalizeKey trims key; ok is false when nothing is left and the
// credential should be cleared instead.
func normalizeKey(key string) (string, bool) {
	key = strings.TrimSpace(key)
	return key, key != ""
}

// Mask hides all but the last four characters of key.
func Mask(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
