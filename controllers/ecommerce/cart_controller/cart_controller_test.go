package cart_controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ssaltnsoul-code/SaltnSoul/middleware"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
	"github.com/ssaltnsoul-code/SaltnSoul/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog map[string]models.Product

func (f fakeCatalog) Product(id string) (models.Product, bool) {
	p, ok := f[id]
	return p, ok
}

type cartEnvelope struct {
	Message string              `json:"message"`
	Error   bool                `json:"error"`
	Data    models.CartResponse `json:"data"`
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	InitCartController(services.NewCartService(services.NewMemoryStore()), fakeCatalog{
		"leggings": {
			ID: "leggings", Name: "Sculpt Leggings", Price: 49.99,
			Variants: []models.Variant{{ID: "v-m", SelectedOptions: []models.SelectedOption{{Name: "Size", Value: "M"}}}},
		},
		"tee": {ID: "tee", Name: "Everyday Tee", Price: 25},
	})

	r := gin.New()
	cart := r.Group("/store/cart", middleware.CartSession(false))
	cart.GET("", GetCart)
	cart.DELETE("", ClearCart)
	cart.POST("/items", AddCartItem)
	cart.PATCH("/items/:index", UpdateCartItem)
	cart.DELETE("/items/:index", RemoveCartItem)
	return r
}

func do(t *testing.T, r http.Handler, method, path, session string, body any) (*httptest.ResponseRecorder, cartEnvelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.CartSessionHeader, session)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env cartEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestCartFlow(t *testing.T) {
	r := setupRouter(t)
	session := uuid.Must(uuid.NewV7()).String()

	w, env := do(t, r, http.MethodGet, "/store/cart", session, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, env.Data.Items)

	w, env = do(t, r, http.MethodPost, "/store/cart/items", session, gin.H{"productId": "leggings", "size": "M", "color": "Black"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, env.Data.Items, 1)
	assert.Equal(t, 1, env.Data.Items[0].Quantity)
	assert.Equal(t, "v-m", env.Data.Items[0].VariantID)

	w, env = do(t, r, http.MethodPost, "/store/cart/items", session, gin.H{"productId": "tee", "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, env.Data.ItemCount)
	assert.InDelta(t, 99.99, env.Data.Total, 0.001)

	w, env = do(t, r, http.MethodPatch, "/store/cart/items/1", session, gin.H{"quantity": 5})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, env.Data.Items[1].Quantity)

	w, env = do(t, r, http.MethodDelete, "/store/cart/items/0", session, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, env.Data.Items, 1)
	assert.Equal(t, "tee", env.Data.Items[0].Product.ID)

	w, env = do(t, r, http.MethodDelete, "/store/cart", session, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, env.Data.Items)
	assert.Zero(t, env.Data.Total)
}

func TestCartErrors(t *testing.T) {
	r := setupRouter(t)
	session := uuid.Must(uuid.NewV7()).String()

	w, env := do(t, r, http.MethodPost, "/store/cart/items", session, gin.H{"productId": "nope"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.True(t, env.Error)

	w, _ = do(t, r, http.MethodPost, "/store/cart/items", session, gin.H{"productId": "tee", "quantity": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, r, http.MethodPost, "/store/cart/items", session, gin.H{"size": "M"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, r, http.MethodPatch, "/store/cart/items/3", session, gin.H{"quantity": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = do(t, r, http.MethodDelete, "/store/cart/items/abc", session, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, r, http.MethodPatch, "/store/cart/items/0", session, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartSessionsDoNotShareCarts(t *testing.T) {
	r := setupRouter(t)
	a := uuid.Must(uuid.NewV7()).String()
	b := uuid.Must(uuid.NewV7()).String()

	_, _ = do(t, r, http.MethodPost, "/store/cart/items", a, gin.H{"productId": "tee"})

	_, env := do(t, r, http.MethodGet, "/store/cart", b, nil)
	assert.Empty(t, env.Data.Items)

	_, env = do(t, r, http.MethodGet, "/store/cart", a, nil)
	assert.Len(t, env.Data.Items, 1)
}
