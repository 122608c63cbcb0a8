package order_controller

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
)

// ShopifyOrders reads and annotates orders in the Shopify Admin.
type ShopifyOrders interface {
	Orders(ctx context.Context, first int) ([]models.ShopifyOrder, error)
	UpdateOrder(ctx context.Context, id, note string, tags []string) error
}

// OrderStore is the recorded-orders table.
type OrderStore interface {
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	ListOrders(ctx context.Context, status string, page, limit int) ([]models.Order, int64, error)
	UpdateOrderStatus(ctx context.Context, id, status string) error
	OrderStats(ctx context.Context) (models.OrderStats, error)
}

var (
	shopifyOrders ShopifyOrders
	orderStore    OrderStore
)

// InitOrderController wires the order handlers. Either side may be nil.
func InitOrderController(shopify ShopifyOrders, store OrderStore) {
	shopifyOrders = shopify
	orderStore = store
}

var validStatuses = map[string]bool{
	models.OrderStatusPending:   true,
	models.OrderStatusPaid:      true,
	models.OrderStatusFulfilled: true,
	models.OrderStatusCancelled: true,
}

func requireOrderStore(c *gin.Context) bool {
	if orderStore == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Order database is not configured"))
		return false
	}
	return true
}

func queryInt(c *gin.Context, key string, def, max int) int {
	v, err := strconv.Atoi(c.DefaultQuery(key, strconv.Itoa(def)))
	if err != nil || v < 1 || v > max {
		return def
	}
	return v
}

func orderIDParam(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return "", false
	}
	return id, true
}
