package port

import (
	"context"
)

// Store is the string-keyed value store shared by the whole
// storefront. Values are opaque bytes; callers own the encoding.
type Store interface {
	// Get returns the value under key. The second result reports
	// whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
