package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
	"github.com/ssaltnsoul-code/SaltnSoul/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func limitedRouter(client *redis.Client, limit int) *gin.Engine {
	r := gin.New()
	r.Use(RateLimiter(client, limit, time.Minute))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "pong", nil))
	})
	return r
}

func get(r http.Handler, path string, headers map[string]string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_BlocksAfterLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	r := limitedRouter(client, 2)

	for i := 0; i < 2; i++ {
		w := get(r, "/ping", nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := get(r, "/ping", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	var body models.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Error)
	require.NotNil(t, body.Rate)
	assert.Equal(t, 2, body.Rate.Limit)
	assert.Equal(t, 0, body.Rate.Remaining)

	keys := mr.Keys()
	require.NotEmpty(t, keys)
	assert.Equal(t, time.Minute, mr.TTL(keys[0]))

	// next window
	mr.FastForward(2 * time.Minute)
	w = get(r, "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiter_ReportsRemaining(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	r := limitedRouter(client, 5)

	w := get(r, "/ping", nil)
	var body models.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Rate)
	assert.Equal(t, 4, body.Rate.Remaining)
	assert.Equal(t, "GET /ping", body.RequestedEntity)
}

func TestRateLimiter_NilClientAndOutageFailOpen(t *testing.T) {
	w := get(limitedRouter(nil, 1), "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	r := limitedRouter(client, 1)
	mr.Close()

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, get(r, "/ping", nil).Code)
	}
}

func sessionRouter() *gin.Engine {
	r := gin.New()
	r.Use(CartSession(false))
	r.GET("/cart", func(c *gin.Context) {
		c.String(http.StatusOK, GetCartSession(c))
	})
	return r
}

func TestCartSession_IssuesCookie(t *testing.T) {
	w := get(sessionRouter(), "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)

	session := w.Body.String()
	_, err := uuid.Parse(session)
	require.NoError(t, err)
	assert.Equal(t, session, w.Header().Get(CartSessionHeader))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CartSessionCookie, cookies[0].Name)
	assert.Equal(t, session, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestCartSession_ReusesCookieAndPrefersHeader(t *testing.T) {
	r := sessionRouter()
	fromCookie := uuid.Must(uuid.NewV7()).String()
	fromHeader := uuid.Must(uuid.NewV7()).String()

	w := get(r, "/cart", nil, &http.Cookie{Name: CartSessionCookie, Value: fromCookie})
	assert.Equal(t, fromCookie, w.Body.String())
	assert.Empty(t, w.Result().Cookies())

	w = get(r, "/cart", map[string]string{CartSessionHeader: fromHeader}, &http.Cookie{Name: CartSessionCookie, Value: fromCookie})
	assert.Equal(t, fromHeader, w.Body.String())
}

func TestCartSession_RejectsMalformedSession(t *testing.T) {
	w := get(sessionRouter(), "/cart", map[string]string{CartSessionHeader: "../../etc"}, &http.Cookie{Name: CartSessionCookie, Value: "nope"})
	assert.NotEqual(t, "../../etc", w.Body.String())
	assert.NotEqual(t, "nope", w.Body.String())
	require.Len(t, w.Result().Cookies(), 1)
}

func adminRouter(t *testing.T) (*gin.Engine, *services.AdminAuthService) {
	t.Helper()
	hash, err := services.HashPassword("correct-horse")
	require.NoError(t, err)
	jwtSvc, err := services.NewJWTService("test-secret")
	require.NoError(t, err)
	auth := services.NewAdminAuthService("owner@saltnsoul.shop", hash, jwtSvc, services.NewMemoryStore())

	r := gin.New()
	r.GET("/admin/me", AdminAuthMiddleware(auth), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(AdminEmailKey))
	})
	return r, auth
}

func TestAdminAuthMiddleware(t *testing.T) {
	r, auth := adminRouter(t)
	login, err := auth.Login("owner@saltnsoul.shop", "correct-horse")
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, get(r, "/admin/me", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/admin/me", map[string]string{"Authorization": "Bearer junk"}).Code)

	w := get(r, "/admin/me", map[string]string{"Authorization": "Bearer " + login.Token})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "owner@saltnsoul.shop", w.Body.String())

	w = get(r, "/admin/me", nil, &http.Cookie{Name: AdminTokenCookie, Value: login.Token})
	assert.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, auth.Logout(context.Background(), login.Token))
	w = get(r, "/admin/me", map[string]string{"Authorization": "Bearer " + login.Token})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "session ended")
}
