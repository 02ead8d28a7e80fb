package interfaces

import "github.com/derynLeigh/dependabot-service/pkg/domain/model"

// PRCache is the bounded key-value store fronting the upstream API.
// Keys are repository names. Implementations must be safe for
// concurrent use by the read path and the refresh scheduler.
type PRCache interface {
	// Get returns the cached records and true, or nil and false when
	// the key is absent or its entry has passed the TTL.
	Get(repo string) ([]*model.PullRequest, bool)

	// Put inserts or replaces an entry, stamping it with the current
	// time. The store never holds more than its configured maximum
	// number of entries.
	Put(repo string, prs []*model.PullRequest)

	// EvictAll removes every entry unconditionally.
	EvictAll()

	// Len returns the number of live entries.
	Len() int
}
