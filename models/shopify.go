package models

// ════════════════════════════════════════════════════════════
// Shopify Admin DTOs
// ════════════════════════════════════════════════════════════

// ProductInput creates or updates a product through the Shopify Admin API.
type ProductInput struct {
	Title       string   `json:"title" binding:"required" example:"Sculpt Leggings"`
	Description string   `json:"description"`
	ProductType string   `json:"productType" example:"Leggings"`
	Vendor      string   `json:"vendor" example:"Salt & Soul"`
	Tags        []string `json:"tags"`
	Status      string   `json:"status" example:"ACTIVE"`
	Price       *float64 `json:"price,omitempty" example:"49.99"`
	ImageURL    string   `json:"imageUrl,omitempty"`
}

// ShopifyOrderLine is one line item of a Shopify order.
type ShopifyOrderLine struct {
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
	VariantID string `json:"variantId,omitempty"`
}

// ShopifyOrder is an order as listed in the CMS.
type ShopifyOrder struct {
	ID                string             `json:"id"`
	Name              string             `json:"name" example:"#1001"`
	Email             string             `json:"email"`
	CreatedAt         string             `json:"createdAt"`
	FinancialStatus   string             `json:"financialStatus"`
	FulfillmentStatus string             `json:"fulfillmentStatus"`
	TotalPrice        float64            `json:"totalPrice"`
	Currency          string             `json:"currency"`
	LineItems         []ShopifyOrderLine `json:"lineItems"`
}

// ShopifyCustomer is a customer as listed in the CMS.
type ShopifyCustomer struct {
	ID          string  `json:"id"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       string  `json:"email"`
	OrdersCount int     `json:"ordersCount"`
	TotalSpent  float64 `json:"totalSpent"`
}

// InventoryLevel is the stock of one variant.
type InventoryLevel struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	VariantID   string `json:"variantId"`
	Title       string `json:"title"`
	Quantity    int    `json:"quantity"`
}

// UpdateInventoryRequest adjusts a variant's available quantity by Delta.
type UpdateInventoryRequest struct {
	Delta int `json:"delta" binding:"required" example:"5"`
}

// ShopifyCollection is a custom or smart collection.
type ShopifyCollection struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Handle string `json:"handle"`
	Type   string `json:"type" example:"custom"`
}

// ImageUploadResponse is returned after a product image upload.
type ImageUploadResponse struct {
	URLs []string `json:"urls"`
}

// UpdateShopifyOrderRequest replaces the note and, when given, the tags of an order.
type UpdateShopifyOrderRequest struct {
	Note string   `json:"note" example:"Gift wrap"`
	Tags []string `json:"tags,omitempty"`
}
