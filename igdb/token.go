package igdb

import (
	"sync"
	"time"
)

// tokenCache holds the bearer token and its absolute expiry. It is
// owned by the client instance; there is no package-level token state.
type tokenCache struct {
	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time
}

// get returns the cached token when it is still ahead of its expiry.
// A token exactly at its expiry time counts as expired.
func (tc *tokenCache) get(now time.Time) (string, bool) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	if tc.accessToken == "" || !now.Before(tc.expiresAt) {
		return "", false
	}
	return tc.accessToken, true
}

func (tc *tokenCache) set(accessToken string, expiresAt time.Time) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.accessToken = accessToken
	tc.expiresAt = expiresAt
}
