package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/ssaltnsoul-code/SaltnSoul/config"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
	"github.com/ssaltnsoul-code/SaltnSoul/services"
)

func init() {
	_ = godotenv.Load()
}

// main seeds the Supabase products table and prints an admin password hash.
// Usage: go run cmd/seed/main.go [admin-password]
// The password may also come from SEED_ADMIN_PASSWORD.
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("SALT & SOUL - Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if len(os.Args) > 1 {
		password = os.Args[1]
	}
	if password != "" {
		printAdminHash(password)
	}

	if !config.InitDB() {
		fmt.Println("⚠️ SUPABASE_DB_URL not set, skipping product seed")
		return
	}
	defer config.CloseDB()
	log.Println("✓ Connected to database")

	supabase := services.NewSupabaseService(config.SupabaseGorm, config.SupabaseDB)
	if err := supabase.Migrate(); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}
	log.Println("✓ Tables migrated")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	rows := sampleProducts()
	if err := supabase.UpsertProducts(ctx, rows); err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}

	fmt.Println()
	fmt.Printf("✅ Seeded %d products\n", len(rows))
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Set CATALOG_SOURCE=supabase to serve these products")
	fmt.Println("2. Start the server: go run main.go")
	fmt.Println()

	verify(ctx, supabase)
}

func printAdminHash(password string) {
	if !services.ValidatePassword(password) {
		fmt.Println("❌ Password must be at least 8 characters")
		os.Exit(1)
	}
	hash, err := services.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	fmt.Println("Add this to your environment:")
	fmt.Printf("ADMIN_PASSWORD_HASH=%s\n", hash)
	fmt.Println()
}

func verify(ctx context.Context, supabase *services.SupabaseService) {
	products, err := supabase.FetchProducts(ctx)
	if err != nil {
		log.Printf("⚠️ Could not read products back: %v", err)
		return
	}
	for _, p := range products {
		fmt.Printf("  %-22s %-28s $%.2f\n", p.ID, p.Name, p.Price)
	}
}

func ptr[T any](v T) *T { return &v }

func sampleProducts() []models.SupabaseProduct {
	return []models.SupabaseProduct{
		{
			ID:            "seamless-sports-bra",
			Name:          "Seamless Sports Bra",
			Description:   "Medium support bra in a soft seamless knit.",
			Price:         42,
			OriginalPrice: ptr(55.0),
			Image:         "https://images.saltnsoul.shop/products/seamless-sports-bra.jpg",
			Category:      "Sport Bras",
			Sizes:         []string{"XS", "S", "M", "L"},
			Colors:        []string{"Black", "Sage"},
			InStock:       true,
			Featured:      true,
			StockQuantity: ptr(40),
		},
		{
			ID:            "high-rise-leggings",
			Name:          "High-Rise Leggings",
			Description:   "Squat-proof leggings with a hidden waistband pocket.",
			Price:         68,
			Image:         "https://images.saltnsoul.shop/products/high-rise-leggings.jpg",
			Category:      "Leggings",
			Sizes:         []string{"XS", "S", "M", "L", "XL"},
			Colors:        []string{"Black", "Navy", "Sand"},
			InStock:       true,
			Featured:      true,
			StockQuantity: ptr(65),
		},
		{
			ID:            "training-shorts",
			Name:          "Men's Training Shorts",
			Description:   "Lightweight 7\" shorts with a liner.",
			Price:         48,
			Image:         "https://images.saltnsoul.shop/products/training-shorts.jpg",
			Category:      "Shorts",
			Sizes:         []string{"S", "M", "L", "XL"},
			Colors:        []string{"Charcoal", "Olive"},
			InStock:       true,
			StockQuantity: ptr(30),
		},
		{
			ID:            "everyday-tee",
			Name:          "Everyday Tee",
			Description:   "Breathable training tee.",
			Price:         32,
			Image:         "https://images.saltnsoul.shop/products/everyday-tee.jpg",
			Category:      "Tops",
			Sizes:         []string{"S", "M", "L"},
			Colors:        []string{"White", "Black"},
			InStock:       false,
			StockQuantity: ptr(0),
		},
	}
}
