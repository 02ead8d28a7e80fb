package memory

import (
	"sync"
	"time"

	"github.com/derynLeigh/dependabot-service/pkg/domain/interfaces"
	"github.com/derynLeigh/dependabot-service/pkg/domain/model"
)

const (
	DefaultTTL        = 300000 * time.Millisecond
	DefaultMaxEntries = 100
)

type cacheEntry struct {
	prs       []*model.PullRequest
	writtenAt time.Time
}

// Cache is an in-memory bounded store of pull request records, keyed by
// repository name. Entries expire after the configured TTL and the
// least recently written entry is evicted when the capacity bound would
// be exceeded.
type Cache struct {
	mu         sync.Mutex
	entries    map[string]*cacheEntry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

var _ interfaces.PRCache = (*Cache)(nil)

type Option func(*Cache)

// WithClock replaces the wall clock, for deterministic expiry tests.
func WithClock(now func() time.Time) Option {
	return func(x *Cache) {
		x.now = now
	}
}

// NewCache creates a cache with the given TTL and entry bound.
// Non-positive arguments fall back to the defaults.
func NewCache(ttl time.Duration, maxEntries int, options ...Option) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	cache := &Cache{
		entries:    make(map[string]*cacheEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
	for _, opt := range options {
		opt(cache)
	}

	return cache
}

// Get returns the cached records for repo. Expired entries are removed
// lazily and reported as absent.
func (x *Cache) Get(repo string) ([]*model.PullRequest, bool) {
	x.mu.Lock()
	defer x.mu.Unlock()

	entry, ok := x.entries[repo]
	if !ok {
		return nil, false
	}

	if x.now().Sub(entry.writtenAt) >= x.ttl {
		delete(x.entries, repo)
		return nil, false
	}

	return copyRecords(entry.prs), true
}

// Put inserts or replaces the entry for repo, stamping it with the
// current time. When the insert would exceed the capacity bound, the
// least recently written entry is evicted first.
func (x *Cache) Put(repo string, prs []*model.PullRequest) {
	x.mu.Lock()
	defer x.mu.Unlock()

	if _, exists := x.entries[repo]; !exists && len(x.entries) >= x.maxEntries {
		x.evictOldest()
	}

	x.entries[repo] = &cacheEntry{
		prs:       copyRecords(prs),
		writtenAt: x.now(),
	}
}

// EvictAll removes every entry unconditionally.
func (x *Cache) EvictAll() {
	x.mu.Lock()
	defer x.mu.Unlock()

	x.entries = make(map[string]*cacheEntry)
}

// Len returns the number of live entries, including not yet collected
// expired ones.
func (x *Cache) Len() int {
	x.mu.Lock()
	defer x.mu.Unlock()

	return len(x.entries)
}

// evictOldest removes the entry with the earliest write time. Caller
// must hold the lock. The bound is small enough that a linear scan is
// fine.
func (x *Cache) evictOldest() {
	var oldestKey string
	var oldestAt time.Time
	for key, entry := range x.entries {
		if oldestKey == "" || entry.writtenAt.Before(oldestAt) {
			oldestKey = key
			oldestAt = entry.writtenAt
		}
	}
	if oldestKey != "" {
		delete(x.entries, oldestKey)
	}
}

func copyRecords(prs []*model.PullRequest) []*model.PullRequest {
	if prs == nil {
		return []*model.PullRequest{}
	}
	cpy := make([]*model.PullRequest, len(prs))
	copy(cpy, prs)
	return cpy
}
