// Package kvstore is the durable client-side key-value store backing
// credential overrides and storage mode flags. Values are opaque strings;
// callers serialize JSON blobs or boolean flags as needed.
package kvstore

import "context"

// Store is a string key-value store with last-write-wins semantics.
// Get returns common.ErrorNotFound when the key has never been written or
// was deleted.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}
