package auth

import (
	"sync"
	"time"
)

// InvalidationRegistry is the set of tokens that must no longer
// authenticate even though they are still cryptographically valid. It is
// the only state shared between concurrent requests: written by any
// request performing a credential change and read by every
// authenticating request.
//
// Entries are meaningful only until the token's natural expiry; expired
// entries are purged opportunistically on writes, which cannot affect
// correctness because such tokens fail expiry checks anyway.
type InvalidationRegistry struct {
	mu      sync.Mutex
	entries map[string]time.Time
}

func NewInvalidationRegistry() *InvalidationRegistry {
	return &InvalidationRegistry{entries: make(map[string]time.Time)}
}

// Add marks the token as invalidated until the given expiry. Adding the
// same token twice leaves the set unchanged.
func (r *InvalidationRegistry) Add(token string, expires time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for t, exp := range r.entries {
		if exp.Before(now) {
			delete(r.entries, t)
		}
	}
	r.entries[token] = expires
}

// Contains reports set membership.
func (r *InvalidationRegistry) Contains(token string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.entries[token]
	return ok
}

// Len returns the number of live entries.
func (r *InvalidationRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
