package models

// CartItem is one cart line. Identity is (Product.ID, Size, Color).
type CartItem struct {
	Product   Product `json:"product"`
	Quantity  int     `json:"quantity" example:"1"`
	Size      string  `json:"size" example:"M"`
	Color     string  `json:"color" example:"Black"`
	VariantID string  `json:"variantId,omitempty"`
}

// Matches reports whether the line is for the same product, size and color.
func (ci CartItem) Matches(productID, size, color string) bool {
	return ci.Product.ID == productID && ci.Size == size && ci.Color == color
}

// CartResponse is the cart as returned to the storefront.
type CartResponse struct {
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total" example:"99.98"`
	ItemCount int        `json:"itemCount" example:"2"`
}

// AddCartItemRequest adds a product from the catalog to the cart.
type AddCartItemRequest struct {
	ProductID string `json:"productId" binding:"required" example:"8123456789"`
	Size      string `json:"size" example:"M"`
	Color     string `json:"color" example:"Black"`
	Quantity  *int   `json:"quantity,omitempty" example:"1"`
}

// UpdateCartItemRequest sets a line quantity. Zero or less removes the line.
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required" example:"2"`
}
