package store

import "context"

// KV is a durable string-keyed key-value store.
type KV interface {
	// Load returns the stored value. ok is false when the key was never saved.
	Load(ctx context.Context, key string) (value string, ok bool, err error)

	// Save overwrites the value stored under key.
	Save(ctx context.Context, key, value string) error
}
