package tables

import (
	"bubblebrew_server/lib"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Order is a single customer transaction. Items are embedded snapshots of
// the catalog at order time; later menu edits never touch placed orders.
type Order struct {
	tableName struct{} `bun:"table:orders,alias:o"`

	// Raw order id, MMSS + "OI" + DDMMYY. Two orders created in the same
	// minute and second of the same day collide; the format is kept for
	// display compatibility. See DisplayID.
	OrderID      string      `bun:"order_id,pk" json:"order_id" validate:"required,len=12"`
	CustomerName string      `bun:"customer_name" json:"customer_name,omitempty"` // empty = walk-in guest
	Status       OrderStatus `bun:"status,notnull,default:'new'" json:"status" validate:"required,oneof=new preparing ready paid cancelled"`
	Items        OrderItems  `bun:"items,notnull,type:text" json:"items" validate:"required,min=1,dive"`
	CreatedAt    time.Time   `bun:"created_at,notnull" json:"created_at"`
}

// DisplayID renders the human-facing form with a separator after the
// time-of-day half: 4512OI231125 -> 4512OI-231125.
func (o *Order) DisplayID() string {
	return lib.FormatOrderID(o.OrderID)
}

// Total sums the line totals of the embedded items.
func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// OrderItem is an embedded line with no identity of its own. ItemID points at
// the originating MenuItem but is not a foreign key: the catalog row may be
// edited or deleted later and the order keeps its snapshot.
type OrderItem struct {
	ItemID   string  `json:"item_id" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Quantity int     `json:"quantity" validate:"required,min=1"`
}

// OrderItems is stored as a single JSON document on the order row, mirroring
// the embedded-list shape. The list is only ever replaced wholesale.
type OrderItems []OrderItem

func (oi *OrderItems) Scan(value any) error {
	if value == nil {
		*oi = OrderItems{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("failed to scan OrderItems: unsupported type %T", value)
	}

	return json.Unmarshal(raw, oi)
}

func (oi OrderItems) Value() (driver.Value, error) {
	if oi == nil {
		return "[]", nil
	}
	raw, err := json.Marshal(oi)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}
