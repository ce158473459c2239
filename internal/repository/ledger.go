package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/Domenick1991/flightbooking/internal/logger"
	"github.com/Domenick1991/flightbooking/internal/storage"
)

// ledger is a whole-collection list of T stored as one JSON array under key.
// Every read loads the full array and every write replaces it. Writers in
// this process are serialized; other processes sharing the store are not.
type ledger[T any] struct {
	store storage.Store
	key   string
	mu    sync.Mutex
}

func newLedger[T any](store storage.Store, key string) *ledger[T] {
	return &ledger[T]{store: store, key: key}
}

// load returns the stored collection; a missing key is an empty collection.
func (l *ledger[T]) load(ctx context.Context) ([]T, error) {
	data, err := l.store.Get(ctx, l.key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", l.key, err)
	}

	items := []T{}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", l.key, err)
	}
	return items, nil
}

// list never fails: unreadable data reads as an empty collection.
func (l *ledger[T]) list(ctx context.Context) []T {
	items, err := l.load(ctx)
	if err != nil {
		logger.Log.Warn("ledger unreadable, treating as empty", "key", l.key, "error", err)
		return []T{}
	}
	return items
}

// appendIf adds item to the end of the collection when guard accepts the
// current contents. The guard may finish item (e.g. assign its id) before it
// is written. A nil guard accepts everything. The stored collection is left
// untouched on any error. It returns the item as written.
func (l *ledger[T]) appendIf(ctx context.Context, item T, guard func(existing []T, item *T) error) (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var zero T
	items, err := l.load(ctx)
	if err != nil {
		return zero, err
	}
	if guard != nil {
		if err := guard(items, &item); err != nil {
			return zero, err
		}
	}

	payload, err := json.Marshal(append(items, item))
	if err != nil {
		return zero, fmt.Errorf("encode %s: %w", l.key, err)
	}
	if err := l.store.Set(ctx, l.key, payload); err != nil {
		return zero, fmt.Errorf("write %s: %w", l.key, err)
	}
	return item, nil
}
