package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusFulfilled = "fulfilled"
	OrderStatusCancelled = "cancelled"

	ProviderShopify = "shopify"
	ProviderStripe  = "stripe"
)

// ShippingAddress is stored as jsonb on the order row.
type ShippingAddress struct {
	Address   string `json:"address"`
	Apartment string `json:"apartment,omitempty"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
}

// Order is a checkout recorded in the Supabase orders table.
type Order struct {
	ID              uuid.UUID                            `json:"id" gorm:"type:uuid;primaryKey"`
	OrderNumber     string                               `json:"order_number" gorm:"uniqueIndex;not null"`
	Email           string                               `json:"email" gorm:"not null;index"`
	FirstName       string                               `json:"first_name"`
	LastName        string                               `json:"last_name"`
	Phone           string                               `json:"phone,omitempty"`
	ShippingAddress datatypes.JSONType[ShippingAddress] `json:"shipping_address" gorm:"type:jsonb"`
	ShippingMethod  string                               `json:"shipping_method"`
	Subtotal        float64                              `json:"subtotal" gorm:"type:numeric(12,2)"`
	ShippingCost    float64                              `json:"shipping_cost" gorm:"type:numeric(12,2)"`
	Tax             float64                              `json:"tax" gorm:"type:numeric(12,2)"`
	TotalAmount     float64                              `json:"total_amount" gorm:"type:numeric(12,2)"`
	Currency        string                               `json:"currency" gorm:"default:'usd'"`
	Provider        string                               `json:"provider"`
	PaymentIntentID *string                              `json:"payment_intent_id,omitempty" gorm:"index"`
	ShopifyOrderID  *string                              `json:"shopify_order_id,omitempty" gorm:"index"`
	Status          string                               `json:"status" gorm:"not null;default:'pending';index"`
	Items           []OrderItem                          `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time                            `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time                            `json:"updated_at" gorm:"autoUpdateTime"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem is one purchased line of an order.
type OrderItem struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductID   string    `json:"product_id" gorm:"not null"`
	ProductName string    `json:"product_name"`
	VariantID   string    `json:"variant_id,omitempty"`
	Size        string    `json:"size,omitempty"`
	Color       string    `json:"color,omitempty"`
	Price       float64   `json:"price" gorm:"type:numeric(12,2)"`
	Quantity    int       `json:"quantity"`
	Subtotal    float64   `json:"subtotal" gorm:"type:numeric(12,2)"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (OrderItem) TableName() string {
	return "order_items"
}

// ═══════════════════════════════════════════════════════════
// Checkout DTOs
// ═══════════════════════════════════════════════════════════

// CustomerInfo is the contact and shipping form of the checkout page.
type CustomerInfo struct {
	Email     string `json:"email" example:"jane@example.com"`
	FirstName string `json:"firstName" example:"Jane"`
	LastName  string `json:"lastName" example:"Doe"`
	Address   string `json:"address" example:"1 Ocean Ave"`
	Apartment string `json:"apartment,omitempty"`
	City      string `json:"city" example:"Santa Monica"`
	State     string `json:"state" example:"CA"`
	ZipCode   string `json:"zipCode" example:"90401"`
	Country   string `json:"country" example:"US"`
	Phone     string `json:"phone,omitempty"`
}

// CheckoutRequest starts checkout for the session's cart.
type CheckoutRequest struct {
	Customer       CustomerInfo `json:"customer"`
	ShippingMethod string       `json:"shippingMethod" example:"standard"`
	Provider       string       `json:"provider" example:"shopify"`
}

// OrderTotals are the computed money fields of a checkout.
type OrderTotals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// CheckoutResponse tells the storefront where to send the shopper next.
type CheckoutResponse struct {
	Provider        string      `json:"provider"`
	CheckoutURL     string      `json:"checkoutUrl,omitempty"`
	CheckoutID      string      `json:"checkoutId,omitempty"`
	ClientSecret    string      `json:"clientSecret,omitempty"`
	PaymentIntentID string      `json:"paymentIntentId,omitempty"`
	OrderID         string      `json:"orderId,omitempty"`
	Totals          OrderTotals `json:"totals"`
}

// CheckoutLineItem is a line sent to Shopify checkoutCreate.
type CheckoutLineItem struct {
	VariantID string `json:"variantId"`
	Quantity  int    `json:"quantity"`
}

// PaymentIntentRequest takes the amount in dollars.
type PaymentIntentRequest struct {
	Amount   float64 `json:"amount" binding:"required" example:"49.99"`
	Currency string  `json:"currency" example:"usd"`
}

// PaymentIntentResponse is what the Stripe Elements form needs.
type PaymentIntentResponse struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
}

// UpdateOrderStatusRequest is used by the CMS to move an order along.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required" example:"fulfilled"`
}

// OrderStats summarises recorded orders.
type OrderStats struct {
	TotalOrders   int64   `json:"total_orders"`
	PendingOrders int64   `json:"pending_orders"`
	PaidOrders    int64   `json:"paid_orders"`
	Revenue       float64 `json:"revenue"`
	AverageOrder  float64 `json:"average_order"`
}
