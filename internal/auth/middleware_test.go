package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gamecatalog/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(enabled bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/write", Middleware("secret", enabled), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func do(r *gin.Engine, header string) int {
	req := httptest.NewRequest(http.MethodPost, "/write", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestMiddlewareDisabledPassesThrough(t *testing.T) {
	assert.Equal(t, http.StatusNoContent, do(newRouter(false), ""))
}

func TestMiddlewareEnforcesToken(t *testing.T) {
	r := newRouter(true)

	assert.Equal(t, http.StatusUnauthorized, do(r, ""))
	assert.Equal(t, http.StatusUnauthorized, do(r, "Bearer nope"))

	other, err := jwt.GenerateToken("secret", "someone")
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, do(r, "Bearer "+other))

	token, err := jwt.GenerateToken("secret", AdminSubject)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, do(r, "Bearer "+token))
}
