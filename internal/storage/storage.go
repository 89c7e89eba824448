// Package storage defines the durable key-value contract for site state.
//
// The site keeps three independent entries (content, posts, settings), each a
// JSON document. Callers own the fallback policy: a missing or unreadable
// entry is treated as "first run" by the repositories, never surfaced to end
// users.
package storage

import (
	"context"
	"errors"
)

// Keys for the three persisted collections.
const (
	KeyContent  = "content"
	KeyPosts    = "posts"
	KeySettings = "settings"
)

// ErrNotFound indicates a requested entry is missing.
var ErrNotFound = errors.New("entry not found")

// Store persists named JSON entries.
type Store interface {
	// Load reads the entry under key and unmarshals it into out. It returns
	// ErrNotFound when no entry exists.
	Load(ctx context.Context, key string, out any) error
	// Save marshals value and writes it under key, replacing any previous
	// entry.
	Save(ctx context.Context, key string, value any) error
}
