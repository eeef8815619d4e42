package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"zk-salon-api-server/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guardedRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	grp := r.Group("/", Authenticate())
	if len(roles) > 0 {
		grp.Use(Authorize(roles...))
	}
	grp.GET("/secret", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": c.GetString("user_role")})
	})
	return r
}

func get(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticateRequiresToken(t *testing.T) {
	r := guardedRouter()
	assert.Equal(t, http.StatusUnauthorized, get(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "garbage").Code)
}

func TestAuthenticateAcceptsValidToken(t *testing.T) {
	token, err := auth.GenerateJWT("admin@salon.test", "admin", "admin-id")
	require.NoError(t, err)

	w := get(guardedRouter(), token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin")
}

func TestAuthorizeChecksRole(t *testing.T) {
	adminToken, err := auth.GenerateJWT("admin@salon.test", "admin", "admin-id")
	require.NoError(t, err)
	empToken, err := auth.GenerateJWT("zane@salon.test", "employee", "emp-1")
	require.NoError(t, err)

	r := guardedRouter("admin")
	assert.Equal(t, http.StatusOK, get(r, adminToken).Code)
	assert.Equal(t, http.StatusForbidden, get(r, empToken).Code)
}

func TestSecurityHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SecurityHeaders())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, w.Header().Get("Strict-Transport-Security"))
}
