package structs

// OrderItemInput is one selected catalog row with a quantity. Name and price
// are copied from the catalog at selection time and stored as-is on the
// order; the store never re-resolves them. Quantity is not validated here:
// values below one are clamped via NormalizeQuantity, matching the stepper.
type OrderItemInput struct {
	ItemID   string  `json:"item_id" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Quantity int     `json:"quantity"`
}

// OrderRequest creates a new order with status "new".
type OrderRequest struct {
	CustomerName string           `json:"customer_name,omitempty"`
	Items        []OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

// EditOrderRequest replaces an order's customer name and its whole item list.
// Only valid while the order has not reached "ready".
type EditOrderRequest struct {
	CustomerName string           `json:"customer_name,omitempty"`
	Items        []OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

// NormalizeQuantity clamps a quantity to the minimum of one, the same
// affordance the order sheet applies on its stepper. Applied when order
// items are copied onto an order, so no stored line ever carries a
// quantity below one.
func NormalizeQuantity(quantity int) int {
	if quantity < 1 {
		return 1
	}
	return quantity
}
