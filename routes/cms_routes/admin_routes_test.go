package cms_routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	admin_auth "github.com/ssaltnsoul-code/SaltnSoul/controllers/cms/admin_controller/auth"
	"github.com/ssaltnsoul-code/SaltnSoul/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminLoginIsRateLimited(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	hash, err := services.HashPassword("correct-horse")
	require.NoError(t, err)
	jwtSvc, err := services.NewJWTService("test-secret")
	require.NoError(t, err)
	auth := services.NewAdminAuthService("owner@saltnsoul.shop", hash, jwtSvc, services.NewMemoryStore())
	admin_auth.InitAdminAuthController(auth, false)

	r := gin.New()
	SetupAdminRoutes(r.Group("/api/v1"), auth, client)

	login := func() int {
		body := `{"email":"intruder@example.com","password":"guess-guess"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < AdminLoginLimit; i++ {
		require.Equal(t, http.StatusBadRequest, login())
	}
	assert.Equal(t, http.StatusTooManyRequests, login())
}
