// Package kv implements the flat, durable key-value substrate every taskdeck
// collection is persisted to. Keys are plain strings partitioned by naming
// convention; values are opaque byte slices (UTF-8 JSON documents in practice).
package kv

import "context"

// Repository is the storage contract shared by all collections.
//
// Get returns (nil, nil) when the key is absent; Delete of an absent key is
// not an error. There are no transactions: callers follow a read-full-value,
// mutate, write-full-value discipline per key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
