package inventory_controller

import (
	"context"

	"github.com/ssaltnsoul-code/SaltnSoul/models"
)

// InventoryManager reads and adjusts variant stock.
type InventoryManager interface {
	Inventory(ctx context.Context) ([]models.InventoryLevel, error)
	AdjustInventory(ctx context.Context, variantID string, delta int) error
}

// CatalogRefresher reloads the catalog after stock changes.
type CatalogRefresher interface {
	Refresh(ctx context.Context) error
}

var (
	inventory InventoryManager
	catalog   CatalogRefresher
)

func InitInventoryController(m InventoryManager, r CatalogRefresher) {
	inventory = m
	catalog = r
}
