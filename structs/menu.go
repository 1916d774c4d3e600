package structs

// SizeInput is one size variant of a logical menu item. Price is optional;
// a size without its own price inherits the request's base price.
type SizeInput struct {
	Label string   `json:"label" validate:"required,min=1,max=50"`
	Price *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
}

// CreateMenuItemRequest creates one catalog row per size, or a single
// size-less row when Sizes is empty.
type CreateMenuItemRequest struct {
	Name      string      `json:"name" validate:"required,min=1,max=200"`
	BasePrice float64     `json:"base_price" validate:"gte=0"`
	Category  *string     `json:"category,omitempty"`
	ImageURI  *string     `json:"image_uri,omitempty"`
	Sizes     []SizeInput `json:"sizes,omitempty" validate:"omitempty,dive"`
}

// UpdateMenuItemRequest is a partial patch; nil fields are left untouched.
// SizeLabel and Category use double pointers nowhere - clearing them is done
// by sending an explicit empty string, matching the mobile client.
type UpdateMenuItemRequest struct {
	Name      *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Price     *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	SizeLabel *string  `json:"size_label,omitempty"`
	Category  *string  `json:"category,omitempty"`
	ImageURI  *string  `json:"image_uri,omitempty"`
}
