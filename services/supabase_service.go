package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ssaltnsoul-code/SaltnSoul/config"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("order not found")

// SupabaseService owns the products, orders and order_items tables.
type SupabaseService struct {
	db   *gorm.DB
	pool *pgxpool.Pool
}

func NewSupabaseService(db *gorm.DB, pool *pgxpool.Pool) *SupabaseService {
	return &SupabaseService{db: db, pool: pool}
}

func (s *SupabaseService) Name() string { return config.SourceSupabase }

func (s *SupabaseService) Migrate() error {
	return s.db.AutoMigrate(&models.SupabaseProduct{}, &models.Order{}, &models.OrderItem{})
}

// ════════════════════════════════════════════════════════════
// Catalog
// ════════════════════════════════════════════════════════════

// normalizeSupabaseProduct converts a products row.
func normalizeSupabaseProduct(r models.SupabaseProduct) models.Product {
	p := models.Product{
		ID:            r.ID,
		Name:          r.Name,
		Description:   r.Description,
		Image:         firstNonEmpty(r.Image, models.FallbackImage),
		Category:      firstNonEmpty(r.Category, models.DefaultCategory),
		Sizes:         dedupe(r.Sizes, models.DefaultSize),
		Colors:        dedupe(r.Colors, models.DefaultColor),
		InStock:       r.InStock,
		Featured:      r.Featured,
		StockQuantity: r.StockQuantity,
	}
	if r.Price > 0 {
		p.Price = r.Price
	}
	if r.OriginalPrice != nil && *r.OriginalPrice > 0 {
		v := *r.OriginalPrice
		p.OriginalPrice = &v
	}
	return p
}

// FetchProducts returns the products table oldest first, the same order
// Shopify lists products in.
func (s *SupabaseService) FetchProducts(ctx context.Context) ([]models.Product, error) {
	var rows []models.SupabaseProduct
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("fetch supabase products: %w", err)
	}
	out := make([]models.Product, 0, len(rows))
	for _, r := range rows {
		out = append(out, normalizeSupabaseProduct(r))
	}
	return out, nil
}

// UpsertProducts inserts or replaces product rows by id.
func (s *SupabaseService) UpsertProducts(ctx context.Context, rows []models.SupabaseProduct) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range rows {
			if err := tx.Save(&rows[i]).Error; err != nil {
				return fmt.Errorf("save product %s: %w", rows[i].ID, err)
			}
		}
		return nil
	})
}

// ════════════════════════════════════════════════════════════
// Orders
// ════════════════════════════════════════════════════════════

// CreateOrder stores an order and its items in one transaction.
func (s *SupabaseService) CreateOrder(ctx context.Context, order *models.Order) error {
	return s.db.WithContext(ctx).Create(order).Error
}

func (s *SupabaseService) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).Preload("Items").Where("id = ?", id).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *SupabaseService) ListOrders(ctx context.Context, status string, page, limit int) ([]models.Order, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Order{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orders := make([]models.Order, 0)
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Preload("Items").
		Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (s *SupabaseService) UpdateOrderStatus(ctx context.Context, id, status string) error {
	res := s.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// UpdateStatusByShopifyOrder moves the order linked to a Shopify order.
func (s *SupabaseService) UpdateStatusByShopifyOrder(ctx context.Context, shopifyOrderID, status string) error {
	res := s.db.WithContext(ctx).Model(&models.Order{}).
		Where("shopify_order_id = ?", shopifyOrderID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// LinkShopifyOrder attaches a Shopify order to the newest pending Shopify
// checkout placed with the same email.
func (s *SupabaseService) LinkShopifyOrder(ctx context.Context, email, shopifyOrderID, status string) error {
	var order models.Order
	err := s.db.WithContext(ctx).
		Where("LOWER(email) = ? AND provider = ? AND status = ? AND shopify_order_id IS NULL",
			strings.ToLower(email), models.ProviderShopify, models.OrderStatusPending).
		Order("created_at DESC").
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Model(&order).Updates(map[string]any{
		"shopify_order_id": shopifyOrderID,
		"status":           status,
	}).Error
}

// OrderStats aggregates the orders table.
func (s *SupabaseService) OrderStats(ctx context.Context) (models.OrderStats, error) {
	var stats models.OrderStats
	row := s.pool.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status IN ('paid', 'fulfilled')),
			COALESCE(SUM(total_amount) FILTER (WHERE status IN ('paid', 'fulfilled')), 0)::float8
		FROM orders
	`)
	if err := row.Scan(&stats.TotalOrders, &stats.PendingOrders, &stats.PaidOrders, &stats.Revenue); err != nil {
		return stats, fmt.Errorf("order stats: %w", err)
	}
	if stats.PaidOrders > 0 {
		stats.AverageOrder = stats.Revenue / float64(stats.PaidOrders)
	}
	return stats, nil
}
