package tables

import (
	"time"
)

// MenuItem is one sellable catalog row. A logical item with N size variants
// is stored as N rows sharing Name/Category/ImageURI, each with its own
// id, SizeLabel and Price.
type MenuItem struct {
	tableName struct{} `bun:"table:menu_items,alias:mi"`

	ID        string  `bun:"id,pk" json:"id" validate:"required"`
	Name      string  `bun:"name,notnull" json:"name" validate:"required,min=1,max=200"`
	SizeLabel *string `bun:"size_label" json:"size_label,omitempty"` // nil when the item has no size variants
	Price     float64 `bun:"price,notnull" json:"price" validate:"gte=0"`
	Category  *string `bun:"category" json:"category,omitempty"`
	ImageURI  *string `bun:"image_uri" json:"image_uri,omitempty"` // local image reference, lifecycle owned elsewhere

	CreatedAt time.Time `bun:"created_at,notnull" json:"created_at"`
}
