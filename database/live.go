package database

import (
	"context"
)

// LiveQuery binds a query shape to the collection it reads so that consumers
// can take a snapshot now and be woken whenever a committed write could have
// changed the result. The wake-up carries no diff; subscribers re-Read.
type LiveQuery[T any] struct {
	handle     *Handle
	collection string
	build      func(*Query[T]) *Query[T]
}

// Live creates a live query over one collection. build shapes the filter and
// sort; nil means the whole collection in storage order.
func Live[T any](h *Handle, collection string, build func(*Query[T]) *Query[T]) *LiveQuery[T] {
	return &LiveQuery[T]{
		handle:     h,
		collection: collection,
		build:      build,
	}
}

// Read takes a fresh snapshot of the result set.
func (lq *LiveQuery[T]) Read(ctx context.Context) ([]T, error) {
	q := NewQuery[T](lq.handle)
	if lq.build != nil {
		q = lq.build(q)
	}
	return q.All(ctx)
}

// Subscribe registers onChange to run after every committed write naming this
// query's collection. The returned unsubscribe releases the listener; it is
// safe to call more than once.
func (lq *LiveQuery[T]) Subscribe(onChange func()) (unsubscribe func()) {
	return lq.handle.store.Subscribe([]string{lq.collection}, onChange)
}
