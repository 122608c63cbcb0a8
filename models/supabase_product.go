package models

import (
	"time"

	"github.com/lib/pq"
)

// SupabaseProduct is a row of the Supabase products table.
type SupabaseProduct struct {
	ID            string         `json:"id" gorm:"type:text;primaryKey"`
	Name          string         `json:"name" gorm:"not null"`
	Description   string         `json:"description"`
	Price         float64        `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	OriginalPrice *float64       `json:"original_price,omitempty" gorm:"type:numeric(12,2)"`
	Image         string         `json:"image"`
	Category      string         `json:"category" gorm:"index"`
	Sizes         pq.StringArray `json:"sizes" gorm:"type:text[]"`
	Colors        pq.StringArray `json:"colors" gorm:"type:text[]"`
	InStock       bool           `json:"in_stock" gorm:"default:true"`
	Featured      bool           `json:"featured" gorm:"default:false;index"`
	StockQuantity *int           `json:"stock_quantity,omitempty"`
	CreatedAt     time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

func (SupabaseProduct) TableName() string {
	return "products"
}
