package services

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

// PaymentIntentResult is the part of a Stripe PaymentIntent the storefront needs.
type PaymentIntentResult struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
}

// PaymentIntentCreator creates card payment intents.
type PaymentIntentCreator interface {
	CreatePaymentIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (PaymentIntentResult, error)
}

// StripeService creates PaymentIntents with automatic payment methods.
// stripe.Key must be set (config.InitStripe) before use.
type StripeService struct{}

func NewStripeService() *StripeService {
	return &StripeService{}
}

func (s *StripeService) CreatePaymentIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (PaymentIntentResult, error) {
	if amountCents <= 0 {
		return PaymentIntentResult{}, fmt.Errorf("%w: amount must be positive", ErrCheckoutValidation)
	}
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return PaymentIntentResult{}, fmt.Errorf("%w: stripe: %v", ErrUpstream, err)
	}
	return PaymentIntentResult{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
	}, nil
}
