package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// OrderDirection represents sort direction
type OrderDirection string

const (
	ASC  OrderDirection = "ASC"
	DESC OrderDirection = "DESC"
)

// WhereClause represents a WHERE condition
type WhereClause struct {
	Expr string
	Args []any
}

// OrderClause represents an ORDER BY clause
type OrderClause struct {
	Column    string
	Direction OrderDirection
}

// Query provides a fluent, type-safe API for building store queries against
// a single collection.
type Query[T any] struct {
	handle *Handle

	wheres   []*WhereClause
	orders   []*OrderClause
	limitVal *int

	// Timeout
	timeout time.Duration
}

// NewQuery creates a new Query instance bound to an open handle.
func NewQuery[T any](h *Handle) *Query[T] {
	return &Query[T]{
		handle: h,
		wheres: []*WhereClause{},
		orders: []*OrderClause{},
	}
}

// Where adds a simple WHERE condition (column = value)
func (q *Query[T]) Where(column string, value any) *Query[T] {
	return q.WhereOp(column, "=", value)
}

// WhereOp adds a WHERE condition with a custom operator
func (q *Query[T]) WhereOp(column, operator string, value any) *Query[T] {
	q.wheres = append(q.wheres, &WhereClause{
		Expr: fmt.Sprintf("%s %s ?", column, operator),
		Args: []any{value},
	})
	return q
}

// WhereIn adds a WHERE column IN (...) condition
func (q *Query[T]) WhereIn(column string, values ...any) *Query[T] {
	q.wheres = append(q.wheres, &WhereClause{
		Expr: fmt.Sprintf("%s IN (?)", column),
		Args: []any{bun.In(values)},
	})
	return q
}

// WhereRaw adds a raw WHERE condition with bind arguments
func (q *Query[T]) WhereRaw(expr string, args ...any) *Query[T] {
	q.wheres = append(q.wheres, &WhereClause{Expr: expr, Args: args})
	return q
}

// OrderBy adds an ORDER BY clause
func (q *Query[T]) OrderBy(column string, direction OrderDirection) *Query[T] {
	q.orders = append(q.orders, &OrderClause{Column: column, Direction: direction})
	return q
}

// Limit caps the number of returned rows
func (q *Query[T]) Limit(n int) *Query[T] {
	q.limitVal = &n
	return q
}

// Timeout sets a timeout for the query
func (q *Query[T]) Timeout(duration time.Duration) *Query[T] {
	q.timeout = duration
	return q
}

func (q *Query[T]) apply(sel *bun.SelectQuery) *bun.SelectQuery {
	for _, w := range q.wheres {
		sel = sel.Where(w.Expr, w.Args...)
	}
	for _, o := range q.orders {
		sel = sel.OrderExpr(fmt.Sprintf("%s %s", o.Column, o.Direction))
	}
	if q.limitVal != nil {
		sel = sel.Limit(*q.limitVal)
	}
	return sel
}

func (q *Query[T]) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if q.timeout > 0 {
		return context.WithTimeout(ctx, q.timeout)
	}
	return ctx, func() {}
}

// All executes the query and returns all matching records with automatic retry
func (q *Query[T]) All(ctx context.Context) ([]T, error) {
	start := time.Now()
	var data []T

	db, err := q.handle.db()
	if err != nil {
		return nil, err
	}

	ctx, cancel := q.withTimeout(ctx)
	defer cancel()

	err = WithRetry(ctx, func() error {
		data = nil // Reset on retry
		return q.apply(db.NewSelect().Model(&data)).Scan(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute select query: %w (took %v)", err, time.Since(start))
	}

	return data, nil
}

// First executes the query and returns the first matching record with
// automatic retry. Returns nil without error when nothing matched - the
// not-found signal callers turn into silent no-ops.
func (q *Query[T]) First(ctx context.Context) (*T, error) {
	start := time.Now()
	var data T

	db, err := q.handle.db()
	if err != nil {
		return nil, err
	}

	ctx, cancel := q.withTimeout(ctx)
	defer cancel()

	err = WithRetry(ctx, func() error {
		return q.apply(db.NewSelect().Model(&data)).Limit(1).Scan(ctx)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to execute first query: %w (took %v)", err, time.Since(start))
	}

	return &data, nil
}

// Count executes the query and returns the count of matching records with automatic retry
func (q *Query[T]) Count(ctx context.Context) (int, error) {
	start := time.Now()
	var count int

	db, err := q.handle.db()
	if err != nil {
		return 0, err
	}

	ctx, cancel := q.withTimeout(ctx)
	defer cancel()

	err = WithRetry(ctx, func() error {
		var model T
		var countErr error
		count, countErr = q.apply(db.NewSelect().Model(&model)).Count(ctx)
		return countErr
	})
	if err != nil {
		return 0, fmt.Errorf("failed to execute count query: %w (took %v)", err, time.Since(start))
	}

	return count, nil
}

// Exists checks if any records match the query
func (q *Query[T]) Exists(ctx context.Context) (bool, error) {
	count, err := q.Count(ctx)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByPK returns the single record with the given primary key, or nil when
// no such record exists.
func FindByPK[T any](h *Handle, ctx context.Context, pkColumn string, key any) (*T, error) {
	return NewQuery[T](h).Where(pkColumn, key).First(ctx)
}
