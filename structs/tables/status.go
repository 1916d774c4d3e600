package tables

// OrderStatus is the order lifecycle state. The happy path moves one step at
// a time: new -> preparing -> ready -> paid. A hold gesture walks one step
// back; there is no reverse edge out of paid and no skipping in either
// direction. Anything not in the tables below is a no-op.
type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "new"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
)

var forwardTransitions = map[OrderStatus]OrderStatus{
	OrderStatusNew:       OrderStatusPreparing,
	OrderStatusPreparing: OrderStatusReady,
	OrderStatusReady:     OrderStatusPaid,
}

var reverseTransitions = map[OrderStatus]OrderStatus{
	OrderStatusPreparing: OrderStatusNew,
	OrderStatusReady:     OrderStatusPreparing,
}

// Next returns the single forward step, or false at a forward-terminal state.
func (s OrderStatus) Next() (OrderStatus, bool) {
	next, ok := forwardTransitions[s]
	return next, ok
}

// Prev returns the single reverse step, or false where no reverse edge exists.
func (s OrderStatus) Prev() (OrderStatus, bool) {
	prev, ok := reverseTransitions[s]
	return prev, ok
}

// Valid reports whether s is one of the five lifecycle states.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusNew, OrderStatusPreparing, OrderStatusReady, OrderStatusPaid, OrderStatusCancelled:
		return true
	}
	return false
}

// IsHistorical reports whether the order belongs to the read-only history
// view (paid or cancelled).
func (s OrderStatus) IsHistorical() bool {
	return s == OrderStatusPaid || s == OrderStatusCancelled
}

// IsActive reports whether the order shows up on the active-orders tab.
func (s OrderStatus) IsActive() bool {
	return s == OrderStatusNew || s == OrderStatusPreparing
}

// AllowsItemEdit reports whether the item list and customer name may still be
// replaced. Edits stop once the order is ready.
func (s OrderStatus) AllowsItemEdit() bool {
	return s == OrderStatusNew || s == OrderStatusPreparing
}
