package database

import (
	"bubblebrew_server/lib"
	"context"
	"fmt"
	"sync"

	"github.com/uptrace/bun"
)

// Handle is one consumer's reference to the store. Every mutation goes
// through Write; there is no unguarded mutation path.
type Handle struct {
	store *Store
	once  sync.Once
}

// Close releases the handle. Idempotent: only the first call decrements the
// store's reference count.
func (h *Handle) Close() error {
	h.once.Do(func() {
		h.store.mu.Lock()
		if h.store.refs > 0 {
			h.store.refs--
		}
		h.store.mu.Unlock()
	})
	return nil
}

func (h *Handle) db() (*bun.DB, error) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	if h.store.db == nil {
		return nil, fmt.Errorf("store is not open")
	}
	return h.store.db, nil
}

// Write executes fn inside one transaction: every create, update and delete
// in it lands atomically or not at all. After the commit, subscribers
// watching any of the named collections are notified - readers never observe
// a partially applied multi-record mutation.
func (h *Handle) Write(ctx context.Context, fn func(ctx context.Context, tx bun.Tx) error, collections ...string) error {
	db, err := h.db()
	if err != nil {
		return err
	}

	err = WithRetry(ctx, func() error {
		return db.RunInTx(ctx, nil, fn)
	})
	if err != nil {
		return lib.MapStoreError(err)
	}

	h.store.hub.notify(collections...)
	return nil
}
