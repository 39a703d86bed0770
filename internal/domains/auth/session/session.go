// Package session keeps the server-side registry of issued admin sessions.
// A signed token is only honoured while its registry entry exists, which
// makes sign-out effective before the token itself expires.
package session

//go:generate go run go.uber.org/mock/mockgen -source=./session.go -destination=../mocks/session_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"folio/shared"
	"folio/shared/cache"
	"folio/shared/timezone"
)

const keyPrefix = "session"

type Record struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the record is past its expiry at now.
func (r Record) Expired(now time.Time) bool {
	return !r.ExpiresAt.After(now)
}

type Store interface {
	Save(ctx context.Context, record Record) error
	Get(ctx context.Context, sessionID string) (record Record, found bool, err error)
	Delete(ctx context.Context, sessionID string) error
}

type redisStore struct {
	cache cache.RedisCache
}

func NewStore(cache cache.RedisCache) Store {
	return &redisStore{cache: cache}
}

func key(sessionID string) string {
	return shared.BuildCacheKey(keyPrefix, sessionID)
}

func (s *redisStore) Save(ctx context.Context, record Record) error {
	ttl := int(record.ExpiresAt.Sub(timezone.Now()).Seconds())
	if ttl <= 0 {
		return fmt.Errorf("session %s already expired", record.SessionID)
	}

	if err := s.cache.Save(ctx, key(record.SessionID), record, ttl); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (s *redisStore) Get(ctx context.Context, sessionID string) (Record, bool, error) {
	var record Record

	err := s.cache.Get(ctx, key(sessionID), &record)
	if cache.IsMiss(err) {
		return record, false, nil
	}

	if err != nil {
		return record, false, fmt.Errorf("failed to get session: %w", err)
	}

	if record.Expired(timezone.Now()) {
		return record, false, nil
	}

	return record, true, nil
}

func (s *redisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.cache.Delete(ctx, key(sessionID)); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
