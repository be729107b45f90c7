package redis

import (
	"context"
	"time"
)

// SessionCache is a read-through cache mapping session id to user id. The
// sessions table stays authoritative; cache entries expire but sessions do
// not, so an expired entry is a miss, never a revocation.
type SessionCache struct {
	ttl time.Duration
}

var (
	setCacheValue = Set
	getCacheValue = Get
	delCacheValue = Del
)

// NewSessionCache creates a new session cache
func NewSessionCache(ttl time.Duration) *SessionCache {
	return &SessionCache{ttl: ttl}
}

// Put caches the user id for a session. A missing redis client is not an
// error; the cache is strictly optional.
func (c *SessionCache) Put(ctx context.Context, sessionID, userID string) error {
	if client == nil {
		return nil
	}
	return setCacheValue(ctx, "session:"+sessionID, userID, c.ttl)
}

// Get returns the cached user id, or "" on a miss
func (c *SessionCache) Get(ctx context.Context, sessionID string) (string, bool) {
	if client == nil {
		return "", false
	}
	userID, err := getCacheValue(ctx, "session:"+sessionID)
	if err != nil || userID == "" {
		return "", false
	}
	return userID, true
}

// Invalidate drops a cached session
func (c *SessionCache) Invalidate(ctx context.Context, sessionID string) error {
	if client == nil {
		return nil
	}
	return delCacheValue(ctx, "session:"+sessionID)
}
