package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
	"gorm.io/datatypes"
)

var (
	ErrCheckoutValidation  = errors.New("invalid checkout request")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrProviderUnavailable = errors.New("checkout provider is not configured")
	ErrUpstream            = errors.New("upstream service unavailable")
)

// ShippingRates are flat rates in dollars by shipping method.
var ShippingRates = map[string]decimal.Decimal{
	"standard":  decimal.Zero,
	"express":   decimal.NewFromInt(15),
	"overnight": decimal.NewFromInt(25),
}

// TaxRate is applied to the merchandise subtotal.
var TaxRate = decimal.RequireFromString("0.08")

// CheckoutCreator creates a hosted Shopify checkout.
type CheckoutCreator interface {
	CreateCheckout(ctx context.Context, lines []models.CheckoutLineItem, customer models.CustomerInfo) (CheckoutResult, error)
}

// OrderRecorder persists orders placed through checkout.
type OrderRecorder interface {
	CreateOrder(ctx context.Context, order *models.Order) error
}

// ValidateCustomer trims the form and checks required fields. Country defaults to US.
func ValidateCustomer(c *models.CustomerInfo) error {
	fields := []*string{&c.Email, &c.FirstName, &c.LastName, &c.Address, &c.Apartment, &c.City, &c.State, &c.ZipCode, &c.Country, &c.Phone}
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
	if c.Country == "" {
		c.Country = "US"
	}

	required := map[string]string{
		"email":     c.Email,
		"firstName": c.FirstName,
		"lastName":  c.LastName,
		"address":   c.Address,
		"city":      c.City,
		"state":     c.State,
		"zipCode":   c.ZipCode,
	}
	var missing []string
	for _, name := range []string{"email", "firstName", "lastName", "address", "city", "state", "zipCode"} {
		if required[name] == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrCheckoutValidation, strings.Join(missing, ", "))
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return fmt.Errorf("%w: invalid email", ErrCheckoutValidation)
	}
	return nil
}

// ComputeTotals prices a cart: subtotal, flat shipping and 8% tax on the subtotal.
func ComputeTotals(items []models.CartItem, shippingMethod string) (models.OrderTotals, error) {
	shipping, ok := ShippingRates[shippingMethod]
	if !ok {
		return models.OrderTotals{}, fmt.Errorf("%w: unknown shipping method %q", ErrCheckoutValidation, shippingMethod)
	}

	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(decimal.NewFromFloat(it.Product.Price).Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	subtotal = subtotal.Round(2)
	tax := subtotal.Mul(TaxRate).Round(2)
	total := subtotal.Add(shipping).Add(tax)

	return models.OrderTotals{
		Subtotal: subtotal.InexactFloat64(),
		Shipping: shipping.InexactFloat64(),
		Tax:      tax.InexactFloat64(),
		Total:    total.InexactFloat64(),
	}, nil
}

// ToCents converts a dollar amount to integer cents, rounding half away from zero.
func ToCents(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// CheckoutService turns a session's cart into a Shopify checkout or a
// Stripe PaymentIntent. Any dependency may be nil when not configured.
type CheckoutService struct {
	carts    *CartService
	shopify  CheckoutCreator
	payments PaymentIntentCreator
	orders   OrderRecorder
}

func NewCheckoutService(carts *CartService, shopify CheckoutCreator, payments PaymentIntentCreator, orders OrderRecorder) *CheckoutService {
	return &CheckoutService{carts: carts, shopify: shopify, payments: payments, orders: orders}
}

func newOrderNumber(id uuid.UUID) string {
	s := strings.ReplaceAll(id.String(), "-", "")
	return "SS-" + strings.ToUpper(s[len(s)-8:])
}

func (s *CheckoutService) Checkout(ctx context.Context, session string, req models.CheckoutRequest) (models.CheckoutResponse, error) {
	if err := ValidateCustomer(&req.Customer); err != nil {
		return models.CheckoutResponse{}, err
	}
	method := strings.ToLower(strings.TrimSpace(req.ShippingMethod))
	if method == "" {
		method = "standard"
	}
	provider := strings.ToLower(strings.TrimSpace(req.Provider))
	if provider == "" {
		provider = models.ProviderShopify
	}
	if provider != models.ProviderShopify && provider != models.ProviderStripe {
		return models.CheckoutResponse{}, fmt.Errorf("%w: unknown provider %q", ErrCheckoutValidation, provider)
	}

	cart, err := s.carts.Get(ctx, session)
	if err != nil {
		return models.CheckoutResponse{}, err
	}
	if len(cart.Items) == 0 {
		return models.CheckoutResponse{}, ErrEmptyCart
	}

	totals, err := ComputeTotals(cart.Items, method)
	if err != nil {
		return models.CheckoutResponse{}, err
	}

	order := buildOrder(req.Customer, method, provider, totals, cart.Items)
	resp := models.CheckoutResponse{Provider: provider, Totals: totals}

	switch provider {
	case models.ProviderShopify:
		if s.shopify == nil {
			return models.CheckoutResponse{}, ErrProviderUnavailable
		}
		lines, err := checkoutLines(cart.Items)
		if err != nil {
			return models.CheckoutResponse{}, err
		}
		result, err := s.shopify.CreateCheckout(ctx, lines, req.Customer)
		if err != nil {
			log.Printf("❌ [checkout.shopify] %v", err)
			return models.CheckoutResponse{}, fmt.Errorf("%w: %v", ErrUpstream, err)
		}
		resp.CheckoutURL = result.WebURL
		resp.CheckoutID = result.ID

	case models.ProviderStripe:
		if s.payments == nil {
			return models.CheckoutResponse{}, ErrProviderUnavailable
		}
		pi, err := s.payments.CreatePaymentIntent(ctx, ToCents(totals.Total), "usd", map[string]string{
			"order_number": order.OrderNumber,
			"email":        req.Customer.Email,
		})
		if err != nil {
			log.Printf("❌ [checkout.stripe] %v", err)
			return models.CheckoutResponse{}, err
		}
		resp.ClientSecret = pi.ClientSecret
		resp.PaymentIntentID = pi.ID
		order.PaymentIntentID = &pi.ID
	}

	if s.orders != nil {
		if err := s.orders.CreateOrder(ctx, order); err != nil {
			log.Printf("⚠️ [checkout.record] order %s not recorded: %v", order.OrderNumber, err)
		} else {
			resp.OrderID = order.ID.String()
		}
	}

	// Shopify takes over from here; Stripe carts stay until payment is confirmed client-side.
	if provider == models.ProviderShopify {
		if _, err := s.carts.Clear(ctx, session); err != nil {
			log.Printf("⚠️ [checkout.clear] %v", err)
		}
	}

	log.Printf("✅ [checkout] %s via %s, total %.2f", order.OrderNumber, provider, totals.Total)
	return resp, nil
}

// checkoutLines maps cart lines to variant ids, falling back to the first variant.
func checkoutLines(items []models.CartItem) ([]models.CheckoutLineItem, error) {
	lines := make([]models.CheckoutLineItem, 0, len(items))
	for _, it := range items {
		variantID := it.VariantID
		if variantID == "" && len(it.Product.Variants) > 0 {
			variantID = it.Product.Variants[0].ID
		}
		if variantID == "" {
			return nil, fmt.Errorf("%w: %q has no purchasable variant", ErrCheckoutValidation, it.Product.Name)
		}
		lines = append(lines, models.CheckoutLineItem{VariantID: variantID, Quantity: it.Quantity})
	}
	return lines, nil
}

func buildOrder(c models.CustomerInfo, method, provider string, totals models.OrderTotals, items []models.CartItem) *models.Order {
	id := uuid.Must(uuid.NewV7())
	order := &models.Order{
		ID:          id,
		OrderNumber: newOrderNumber(id),
		Email:       c.Email,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Phone:       c.Phone,
		ShippingAddress: datatypes.NewJSONType(models.ShippingAddress{
			Address:   c.Address,
			Apartment: c.Apartment,
			City:      c.City,
			State:     c.State,
			ZipCode:   c.ZipCode,
			Country:   c.Country,
		}),
		ShippingMethod: method,
		Subtotal:       totals.Subtotal,
		ShippingCost:   totals.Shipping,
		Tax:            totals.Tax,
		TotalAmount:    totals.Total,
		Currency:       "usd",
		Provider:       provider,
		Status:         models.OrderStatusPending,
	}
	for _, it := range items {
		line := decimal.NewFromFloat(it.Product.Price).Mul(decimal.NewFromInt(int64(it.Quantity))).Round(2)
		order.Items = append(order.Items, models.OrderItem{
			OrderID:     id,
			ProductID:   it.Product.ID,
			ProductName: it.Product.Name,
			VariantID:   it.VariantID,
			Size:        it.Size,
			Color:       it.Color,
			Price:       it.Product.Price,
			Quantity:    it.Quantity,
			Subtotal:    line.InexactFloat64(),
		})
	}
	return order
}
