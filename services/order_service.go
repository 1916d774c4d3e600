package services

import (
	"bubblebrew_server/database"
	"bubblebrew_server/lib"
	"bubblebrew_server/structs"
	"bubblebrew_server/structs/tables"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/uptrace/bun"
)

// OrderService owns order creation, the lifecycle transitions, the delete
// policy and the history view. Status rules live on tables.OrderStatus; this
// service only applies them inside write transactions.
type OrderService struct {
	logger *gecho.Logger
	store  *database.Store

	// now is the clock used for order ids and creation stamps.
	now func() time.Time
}

func NewOrderService(logger *gecho.Logger, store *database.Store) *OrderService {
	return &OrderService{
		logger: logger,
		store:  store,
		now:    time.Now,
	}
}

// CreateOrder places a new order with status "new". Item name and price are
// stored as submitted - they are the caller's snapshot of the catalog, taken
// at selection time.
func (os *OrderService) CreateOrder(ctx context.Context, req *structs.OrderRequest) (*tables.Order, error) {
	if err := validateOrderItems(req.Items); err != nil {
		return nil, err
	}

	now := os.now()
	order := &tables.Order{
		OrderID:      lib.GenerateOrderID(now),
		CustomerName: req.CustomerName,
		Status:       tables.OrderStatusNew,
		Items:        copyOrderItems(req.Items),
		CreatedAt:    now,
	}

	handle, err := os.store.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	defer handle.Close()

	err = handle.Write(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(order).Exec(ctx)
		return err
	}, database.CollectionOrders)
	if err != nil {
		os.logger.Error("Failed to create order", gecho.Field("order_id", order.OrderID), gecho.Field("error", err))
		return nil, err
	}

	os.logger.Info("Order placed",
		gecho.Field("order_id", order.DisplayID()),
		gecho.Field("items", len(order.Items)),
	)
	return order, nil
}

// Advance moves an order one step forward on the happy path. Unknown ids and
// forward-terminal states (paid, cancelled) are silent no-ops; the returned
// order is nil in that case.
func (os *OrderService) Advance(ctx context.Context, orderID string) (*tables.Order, error) {
	return os.transition(ctx, orderID, tables.OrderStatus.Next)
}

// Revert walks an order one step back (the hold gesture). Only single-step
// reverse edges exist; anything else is a silent no-op.
func (os *OrderService) Revert(ctx context.Context, orderID string) (*tables.Order, error) {
	return os.transition(ctx, orderID, tables.OrderStatus.Prev)
}

func (os *OrderService) transition(ctx context.Context, orderID string, step func(tables.OrderStatus) (tables.OrderStatus, bool)) (*tables.Order, error) {
	handle, err := os.store.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	defer handle.Close()

	var updated *tables.Order
	err = handle.Write(ctx, func(ctx context.Context, tx bun.Tx) error {
		order := new(tables.Order)
		if err := tx.NewSelect().Model(order).Where("order_id = ?", orderID).Scan(ctx); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil
			}
			return err
		}

		next, ok := step(order.Status)
		if !ok {
			return nil
		}

		order.Status = next
		if _, err := tx.NewUpdate().Model(order).WherePK().Column("status").Exec(ctx); err != nil {
			return err
		}
		updated = order
		return nil
	}, database.CollectionOrders)
	if err != nil {
		return nil, err
	}

	if updated != nil {
		os.logger.Info("Order status changed",
			gecho.Field("order_id", updated.DisplayID()),
			gecho.Field("status", updated.Status),
		)
	}
	return updated, nil
}

// DeleteOrder applies the delete policy: a ready order is soft-deleted (its
// status becomes cancelled and the row stays, so history still sees it);
// any other order is removed outright. Missing ids are silent no-ops.
func (os *OrderService) DeleteOrder(ctx context.Context, orderID string) error {
	handle, err := os.store.Open()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer handle.Close()

	return handle.Write(ctx, func(ctx context.Context, tx bun.Tx) error {
		order := new(tables.Order)
		if err := tx.NewSelect().Model(order).Where("order_id = ?", orderID).Scan(ctx); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil
			}
			return err
		}

		if order.Status == tables.OrderStatusReady {
			order.Status = tables.OrderStatusCancelled
			_, err := tx.NewUpdate().Model(order).WherePK().Column("status").Exec(ctx)
			return err
		}

		_, err := tx.NewDelete().Model(order).WherePK().Exec(ctx)
		return err
	}, database.CollectionOrders)
}

// EditOrder replaces an order's customer name and its whole item list in one
// transaction (clear-then-repopulate, never an incremental patch). Orders
// that reached "ready" are locked: lib.ErrOrderLocked, nothing changes.
func (os *OrderService) EditOrder(ctx context.Context, orderID string, req *structs.EditOrderRequest) (*tables.Order, error) {
	if err := validateOrderItems(req.Items); err != nil {
		return nil, err
	}

	handle, err := os.store.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	defer handle.Close()

	var updated *tables.Order
	err = handle.Write(ctx, func(ctx context.Context, tx bun.Tx) error {
		order := new(tables.Order)
		if err := tx.NewSelect().Model(order).Where("order_id = ?", orderID).Scan(ctx); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil
			}
			return err
		}

		if !order.Status.AllowsItemEdit() {
			return lib.ErrOrderLocked
		}

		order.CustomerName = req.CustomerName
		order.Items = copyOrderItems(req.Items)
		if _, err := tx.NewUpdate().Model(order).WherePK().Column("customer_name", "items").Exec(ctx); err != nil {
			return err
		}
		updated = order
		return nil
	}, database.CollectionOrders)
	if err != nil {
		return nil, err
	}

	if updated != nil {
		os.logger.Info("Order updated", gecho.Field("order_id", updated.DisplayID()))
	}
	return updated, nil
}

// GetOrder returns the order matching orderID, or lib.ErrNotFound.
func (os *OrderService) GetOrder(ctx context.Context, orderID string) (*tables.Order, error) {
	handle, err := os.store.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	defer handle.Close()

	order, err := database.FindByPK[tables.Order](handle, ctx, "order_id", orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, lib.ErrNotFound
	}
	return order, nil
}

// ListOrders returns every order, newest first.
func (os *OrderService) ListOrders(ctx context.Context) ([]tables.Order, error) {
	return os.list(ctx, nil)
}

// ActiveOrders returns orders still being worked (new, preparing), newest first.
func (os *OrderService) ActiveOrders(ctx context.Context) ([]tables.Order, error) {
	return os.list(ctx, []tables.OrderStatus{tables.OrderStatusNew, tables.OrderStatusPreparing})
}

// ReadyOrders returns orders waiting for pickup or payment, newest first.
func (os *OrderService) ReadyOrders(ctx context.Context) ([]tables.Order, error) {
	return os.list(ctx, []tables.OrderStatus{tables.OrderStatusReady})
}

// History returns paid and cancelled orders, newest first. Read-only by
// convention: nothing in the store stops a caller from mutating them, the
// API simply never offers it.
func (os *OrderService) History(ctx context.Context) ([]tables.Order, error) {
	return os.list(ctx, []tables.OrderStatus{tables.OrderStatusPaid, tables.OrderStatusCancelled})
}

func (os *OrderService) list(ctx context.Context, statuses []tables.OrderStatus) ([]tables.Order, error) {
	handle, err := os.store.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	defer handle.Close()

	q := database.NewQuery[tables.Order](handle).OrderBy("created_at", database.DESC)
	if len(statuses) > 0 {
		values := make([]any, len(statuses))
		for i, s := range statuses {
			values[i] = s
		}
		q = q.WhereIn("status", values...)
	}
	return q.All(ctx)
}

// SearchOrders filters a list by a case-insensitive match on customer name,
// order id (raw or display form) or any item name. An empty query returns
// the list unchanged.
func SearchOrders(orders []tables.Order, query string) []tables.Order {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return orders
	}

	matched := make([]tables.Order, 0, len(orders))
	for _, order := range orders {
		if orderMatches(&order, q) {
			matched = append(matched, order)
		}
	}
	return matched
}

func orderMatches(order *tables.Order, q string) bool {
	if strings.Contains(strings.ToLower(order.CustomerName), q) {
		return true
	}
	if strings.Contains(strings.ToLower(order.OrderID), q) ||
		strings.Contains(strings.ToLower(order.DisplayID()), q) {
		return true
	}
	for _, item := range order.Items {
		if strings.Contains(strings.ToLower(item.Name), q) {
			return true
		}
	}
	return false
}

func validateOrderItems(items []structs.OrderItemInput) error {
	if len(items) == 0 {
		return lib.NewValidationError("items", "is required")
	}
	for _, item := range items {
		if item.ItemID == "" {
			return lib.NewValidationError("items.item_id", "is required")
		}
		if item.Name == "" {
			return lib.NewValidationError("items.name", "is required")
		}
		if !isValidPrice(item.Price) {
			return lib.NewValidationError("items.price", "must be a finite number greater than or equal to 0")
		}
	}
	return nil
}

// copyOrderItems snapshots the submitted lines, clamping quantities the way
// the order sheet's stepper does.
func copyOrderItems(items []structs.OrderItemInput) tables.OrderItems {
	copied := make(tables.OrderItems, 0, len(items))
	for _, item := range items {
		copied = append(copied, tables.OrderItem{
			ItemID:   item.ItemID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: structs.NormalizeQuantity(item.Quantity),
		})
	}
	return copied
}
