// Package storage provides the key-value backends the ledgers persist to.
// Every value is an opaque blob addressed by a fixed key; there is no
// per-record access.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when nothing is stored under the key.
var ErrNotFound = errors.New("key not found")

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
