package repository

import "context"

// KeyValueStore is a string key-value store. Get returns apperror.ErrNotFound for an absent key
// and Delete of an absent key is not an error.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
