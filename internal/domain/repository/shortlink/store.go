package shortlink

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no document exists under the key.
var ErrNotFound = errors.New("shortlink: not found")

type Store interface {
	// Create writes value under key only if the key does not exist yet and
	// reports whether the write happened.
	Create(ctx context.Context, key string, value []byte) (bool, error)

	// Put writes value unconditionally.
	Put(ctx context.Context, key string, value []byte) error

	Get(ctx context.Context, key string) ([]byte, error)
}
