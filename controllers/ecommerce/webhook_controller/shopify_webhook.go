package webhook_controller

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/config"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
	"github.com/ssaltnsoul-code/SaltnSoul/services"
	"github.com/ssaltnsoul-code/SaltnSoul/utils"
)

// CatalogRefresher reloads the catalog snapshot.
type CatalogRefresher interface {
	Refresh(ctx context.Context) error
}

// OrderUpdater moves recorded orders when Shopify reports progress.
type OrderUpdater interface {
	LinkShopifyOrder(ctx context.Context, email, shopifyOrderID, status string) error
	UpdateStatusByShopifyOrder(ctx context.Context, shopifyOrderID, status string) error
}

var (
	webhookSecret string
	catalog       CatalogRefresher
	orders        OrderUpdater
)

// InitWebhookController wires the webhook. Without a secret only topics that
// change nothing are acknowledged; orders may be nil when no database is configured.
func InitWebhookController(secret string, refresher CatalogRefresher, updater OrderUpdater) {
	webhookSecret = secret
	catalog = refresher
	orders = updater
}

var orderTopicStatus = map[string]string{
	"orders/create":    models.OrderStatusPending,
	"orders/paid":      models.OrderStatusPaid,
	"orders/fulfilled": models.OrderStatusFulfilled,
	"orders/cancelled": models.OrderStatusCancelled,
}

type webhookOrder struct {
	ID    json.Number `json:"id"`
	Email string      `json:"email"`
}

// HandleShopifyWebhook godoc
// @Summary Receive a Shopify webhook
// @Description Verifies X-Shopify-Hmac-Sha256, refreshes the catalog on product topics and moves recorded orders on order topics. Product and order topics are rejected when no webhook secret is configured.
// @Tags Webhooks
// @Accept json
// @Produce json
// @Param X-Shopify-Topic header string true "Webhook topic"
// @Param X-Shopify-Hmac-Sha256 header string false "Body signature"
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /webhooks/shopify [post]
func HandleShopifyWebhook(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to read body"))
		return
	}

	topic := c.GetHeader("X-Shopify-Topic")

	if webhookSecret == "" {
		if actsOn(topic) {
			log.Printf("⚠️ [webhook.shopify] %s rejected: no webhook secret configured", topic)
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Webhook secret not configured"))
			return
		}
	} else if !utils.VerifyShopifyHMAC(body, c.GetHeader("X-Shopify-Hmac-Sha256"), webhookSecret) {
		log.Printf("⚠️ [webhook.shopify] signature mismatch")
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid signature"))
		return
	}

	log.Printf("[webhook.shopify] received %s", topic)

	switch {
	case strings.HasPrefix(topic, "products/") && catalog != nil:
		// Shopify expects a reply within 5 seconds; refresh in the background.
		go func() {
			ctx, cancel := config.WithCustomTimeout(config.RefreshTimeout)
			defer cancel()
			if err := catalog.Refresh(ctx); err != nil {
				log.Printf("⚠️ [webhook.shopify] catalog refresh after %s: %v", topic, err)
			}
		}()

	case orderTopicStatus[topic] != "":
		handleOrderTopic(topic, body)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Webhook received", gin.H{"topic": topic}))
}

// actsOn reports whether a topic refreshes the catalog or touches orders.
// Those topics are only accepted with a verified signature.
func actsOn(topic string) bool {
	return strings.HasPrefix(topic, "products/") || orderTopicStatus[topic] != ""
}

func handleOrderTopic(topic string, body []byte) {
	if orders == nil {
		return
	}
	var o webhookOrder
	if err := json.Unmarshal(body, &o); err != nil || o.ID == "" {
		log.Printf("⚠️ [webhook.shopify] unreadable %s payload: %v", topic, err)
		return
	}
	if _, err := strconv.ParseInt(o.ID.String(), 10, 64); err != nil {
		log.Printf("⚠️ [webhook.shopify] unexpected order id %q", o.ID)
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	status := orderTopicStatus[topic]
	id := o.ID.String()
	if topic == "orders/create" {
		err := orders.LinkShopifyOrder(ctx, o.Email, id, status)
		logOrderUpdate(topic, id, err)
		return
	}
	logOrderUpdate(topic, id, orders.UpdateStatusByShopifyOrder(ctx, id, status))
}

func logOrderUpdate(topic, id string, err error) {
	switch {
	case err == nil:
		log.Printf("✅ [webhook.shopify] %s applied to order %s", topic, id)
	case errors.Is(err, services.ErrOrderNotFound):
		log.Printf("[webhook.shopify] %s: no recorded order for %s", topic, id)
	default:
		log.Printf("❌ [webhook.shopify] %s for %s: %v", topic, id, err)
	}
}
