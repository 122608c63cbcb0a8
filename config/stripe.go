package config

import (
	"log"
	"os"

	"github.com/stripe/stripe-go/v82"
)

// InitStripe sets the Stripe secret key. Returns false when payments are disabled.
func InitStripe() bool {
	key := os.Getenv("STRIPE_SECRET_KEY")
	if key == "" {
		log.Println("⚠️ STRIPE_SECRET_KEY not set, Stripe payments disabled")
		return false
	}
	stripe.Key = key
	log.Println("✅ Stripe configured")
	return true
}
