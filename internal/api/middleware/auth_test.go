package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventdesk/eventdesk-api/internal/pkg/jwthelper"
)

const testSigningKey = "test-signing-key"

func newAuthTestRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handlers := append([]gin.HandlerFunc{NewAuthenticator(testSigningKey).VerifyJWT()}, extra...)
	handlers = append(handlers, func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"user_id": ctx.GetUint(ContextKeyUserID),
			"role":    ctx.GetString(ContextKeyRole),
		})
	})
	router.GET("/protected", handlers...)

	return router
}

func TestVerifyJWT(t *testing.T) {
	router := newAuthTestRouter()

	t.Run("valid token passes identity through", func(t *testing.T) {
		token, err := jwthelper.GenerateToken(testSigningKey, 7, "admin")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"role":"admin"`)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with another key rejected", func(t *testing.T) {
		token, err := jwthelper.GenerateToken("attacker-key", 7, "admin")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireRole(t *testing.T) {
	router := newAuthTestRouter(RequireRole("admin"))

	t.Run("allowed role", func(t *testing.T) {
		token, err := jwthelper.GenerateToken(testSigningKey, 1, "admin")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("other role forbidden", func(t *testing.T) {
		token, err := jwthelper.GenerateToken(testSigningKey, 2, "viewer")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
