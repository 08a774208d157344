package port

import "context"

// Collection cache keys. Each remote collection owns one key; list calls
// carrying query parameters derive parameterized variants of the form
// "<key>?<canonical params>". Invalidate covers both.
const (
	KeyArticles      = "articles"
	KeyCategories    = "categories"
	KeyNetworks      = "networks"
	KeyNotifications = "notifications"
)

// CollectionCache is the short-lived byte-snapshot mirror of the remote
// collections. It is injected, never ambient, so tests can substitute a
// fake. Entries are replaced wholesale; nothing mutates a cached value
// in place.
type CollectionCache interface {
	// Get returns the cached snapshot and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores a snapshot under the cache's TTL policy.
	Set(ctx context.Context, key string, value []byte) error
	// Invalidate drops the named collections, including every
	// parameterized variant of each.
	Invalidate(ctx context.Context, collections ...string) error
}
