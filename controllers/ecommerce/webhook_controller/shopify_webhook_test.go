package webhook_controller

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
	"github.com/ssaltnsoul-code/SaltnSoul/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "whsec_test"

type countingRefresher struct{ calls atomic.Int32 }

func (r *countingRefresher) Refresh(context.Context) error {
	r.calls.Add(1)
	return nil
}

type orderCall struct {
	email, id, status string
}

type recordingOrders struct {
	mu      sync.Mutex
	linked  []orderCall
	updated []orderCall
}

func (o *recordingOrders) LinkShopifyOrder(_ context.Context, email, id, status string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.linked = append(o.linked, orderCall{email, id, status})
	return nil
}

func (o *recordingOrders) UpdateStatusByShopifyOrder(_ context.Context, id, status string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.updated = append(o.updated, orderCall{"", id, status})
	return nil
}

func setup(t *testing.T, secret string) (*gin.Engine, *countingRefresher, *recordingOrders) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	refresher := &countingRefresher{}
	orders := &recordingOrders{}
	InitWebhookController(secret, refresher, orders)

	r := gin.New()
	r.POST("/webhooks/shopify", HandleShopifyWebhook)
	return r, refresher, orders
}

func send(r http.Handler, topic string, body []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/shopify", bytes.NewReader(body))
	req.Header.Set("X-Shopify-Topic", topic)
	if signature != "" {
		req.Header.Set("X-Shopify-Hmac-Sha256", signature)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWebhook_RejectsBadSignature(t *testing.T) {
	r, refresher, _ := setup(t, testSecret)
	body := []byte(`{"id":1}`)

	w := send(r, "products/update", body, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = send(r, "products/update", body, utils.SignShopifyHMAC(body, "other-secret"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, refresher.calls.Load())
}

func TestWebhook_ProductTopicRefreshesCatalog(t *testing.T) {
	r, refresher, orders := setup(t, testSecret)
	body := []byte(`{"id":8123456789,"title":"Sculpt Leggings"}`)

	w := send(r, "products/update", body, utils.SignShopifyHMAC(body, testSecret))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "products/update")

	require.Eventually(t, func() bool { return refresher.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Empty(t, orders.linked)
	assert.Empty(t, orders.updated)
}

func sendSigned(r http.Handler, topic, body string) *httptest.ResponseRecorder {
	return send(r, topic, []byte(body), utils.SignShopifyHMAC([]byte(body), testSecret))
}

func TestWebhook_OrderTopics(t *testing.T) {
	r, refresher, orders := setup(t, testSecret)

	w := sendSigned(r, "orders/create", `{"id":450789469,"email":"jane@example.com"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = sendSigned(r, "orders/paid", `{"id":450789469}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = sendSigned(r, "orders/cancelled", `{"id":"not-a-number"}`)
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, orders.linked, 1)
	assert.Equal(t, orderCall{"jane@example.com", "450789469", models.OrderStatusPending}, orders.linked[0])
	require.Len(t, orders.updated, 1)
	assert.Equal(t, orderCall{"", "450789469", models.OrderStatusPaid}, orders.updated[0])
	assert.Zero(t, refresher.calls.Load())
}

func TestWebhook_WithoutSecretRejectsActingTopics(t *testing.T) {
	r, refresher, orders := setup(t, "")

	for _, topic := range []string{"orders/create", "orders/paid", "orders/cancelled", "products/update"} {
		w := send(r, topic, []byte(`{"id":12345,"email":"jane@example.com"}`), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, topic)
	}

	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, orders.linked)
	assert.Empty(t, orders.updated)
	assert.Zero(t, refresher.calls.Load())
}

func TestWebhook_UnknownTopicIsAcknowledged(t *testing.T) {
	r, refresher, orders := setup(t, "")

	w := send(r, "app/uninstalled", []byte(`{}`), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, refresher.calls.Load())
	assert.Empty(t, orders.linked)

	// no order store configured
	InitWebhookController(testSecret, refresher, nil)
	w = sendSigned(r, "orders/paid", `{"id":1}`)
	assert.Equal(t, http.StatusOK, w.Code)
}
