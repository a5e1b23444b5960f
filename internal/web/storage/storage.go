package storage

import (
	"context"
	"time"
)

// Session stores one browser session and its backend credential.
//
// The bearer token never leaves the server; browsers only hold the opaque
// session id cookie.
type Session struct {
	ID          string
	Token       string
	Username    string
	DisplayName string
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

// CacheEntry stores one web cache payload and freshness metadata.
//
// Cache data is always derived and can be discarded/rebuilt from backend
// reads.
type CacheEntry struct {
	CacheKey     string
	Scope        string
	PayloadBytes []byte
	RefreshedAt  time.Time
	ExpiresAt    time.Time
}

// Store is the contract for web session and cache persistence.
type Store interface {
	Close() error

	PutSession(ctx context.Context, session Session) error
	GetSession(ctx context.Context, sessionID string) (Session, bool, error)
	DeleteSession(ctx context.Context, sessionID string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) error

	GetCacheEntry(ctx context.Context, cacheKey string) (CacheEntry, bool, error)
	PutCacheEntry(ctx context.Context, entry CacheEntry) error
	DeleteCacheEntry(ctx context.Context, cacheKey string) error
}
