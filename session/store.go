// Package session provides the durable per-session document storage used
// by the cart and location stores. Each document is an independent JSON
// blob; last write wins.
package session

import (
	"context"
)

// Store is a minimal keyed blob store. Get returns (nil, nil) when the key
// has never been written or has expired.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
