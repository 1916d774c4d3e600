package services

import (
	"bubblebrew_server/database"
	"bubblebrew_server/structs/tables"
	"context"
	"fmt"
	"sync"

	"github.com/MonkyMars/gecho"
)

// Projection mirrors a live store query into a plain in-memory list. The
// store handle and the change subscription are instance state with an
// explicit Load/Unload lifecycle; nothing is shared through package globals.
// After Load, every committed write to the watched collection re-snapshots
// the list - consumers read Items and never poll.
type Projection[T any] struct {
	logger     *gecho.Logger
	store      *database.Store
	collection string
	build      func(*database.Query[T]) *database.Query[T]

	mu     sync.RWMutex
	items  []T
	handle *database.Handle
	live   *database.LiveQuery[T]
	unsub  func()
}

// NewProjection creates an unloaded projection over one collection.
func NewProjection[T any](logger *gecho.Logger, store *database.Store, collection string, build func(*database.Query[T]) *database.Query[T]) *Projection[T] {
	return &Projection[T]{
		logger:     logger,
		store:      store,
		collection: collection,
		build:      build,
	}
}

// NewMenuProjection mirrors the whole catalog, newest first.
func NewMenuProjection(logger *gecho.Logger, store *database.Store) *Projection[tables.MenuItem] {
	return NewProjection(logger, store, database.CollectionMenuItems,
		func(q *database.Query[tables.MenuItem]) *database.Query[tables.MenuItem] {
			return q.OrderBy("created_at", database.DESC)
		})
}

// NewOrderProjection mirrors every order, newest first. Status filtering for
// the active/ready tabs happens on the snapshot, as the order board does.
func NewOrderProjection(logger *gecho.Logger, store *database.Store) *Projection[tables.Order] {
	return NewProjection(logger, store, database.CollectionOrders,
		func(q *database.Query[tables.Order]) *database.Query[tables.Order] {
			return q.OrderBy("created_at", database.DESC)
		})
}

// NewHistoryProjection mirrors paid and cancelled orders, newest first.
func NewHistoryProjection(logger *gecho.Logger, store *database.Store) *Projection[tables.Order] {
	return NewProjection(logger, store, database.CollectionOrders,
		func(q *database.Query[tables.Order]) *database.Query[tables.Order] {
			return q.
				WhereIn("status", tables.OrderStatusPaid, tables.OrderStatusCancelled).
				OrderBy("created_at", database.DESC)
		})
}

// Load opens the projection. Any previous live query is torn down first, so
// repeated Loads are safe and leak nothing. On return the list holds a fresh
// snapshot and a change listener keeps it current.
func (p *Projection[T]) Load(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.teardownLocked()

	handle, err := p.store.Open()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	live := database.Live(handle, p.collection, p.build)
	items, err := live.Read(ctx)
	if err != nil {
		handle.Close()
		return fmt.Errorf("failed to snapshot projection: %w", err)
	}

	p.handle = handle
	p.live = live
	p.items = items
	p.unsub = live.Subscribe(p.refresh)
	return nil
}

// refresh re-snapshots the list after a change notification. A failed
// re-read keeps the previous snapshot; the next notification retries.
func (p *Projection[T]) refresh() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.live == nil {
		return
	}

	items, err := p.live.Read(context.Background())
	if err != nil {
		p.logger.Error("Projection refresh failed",
			gecho.Field("collection", p.collection),
			gecho.Field("error", err),
		)
		return
	}
	p.items = items
}

// Unload unsubscribes the listener, releases the store handle and clears the
// list. Safe to call when nothing is loaded, and safe to call twice.
func (p *Projection[T]) Unload() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.teardownLocked()
	p.items = nil
}

func (p *Projection[T]) teardownLocked() {
	if p.unsub != nil {
		p.unsub()
		p.unsub = nil
	}
	if p.handle != nil {
		p.handle.Close()
		p.handle = nil
	}
	p.live = nil
}

// Items returns a copy of the current snapshot.
func (p *Projection[T]) Items() []T {
	p.mu.RLock()
	defer p.mu.RUnlock()

	items := make([]T, len(p.items))
	copy(items, p.items)
	return items
}

// Loaded reports whether the projection currently holds a live query.
func (p *Projection[T]) Loaded() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.live != nil
}
