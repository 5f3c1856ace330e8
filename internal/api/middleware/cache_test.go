package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventdesk/eventdesk-api/internal/pkg/jwthelper"
	"github.com/eventdesk/eventdesk-api/internal/viewcache"
)

func TestCacheViews(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cache := viewcache.New()
	hits := 0

	router := gin.New()
	router.Use(CacheViews(cache))
	router.GET("/things", func(ctx *gin.Context) {
		hits++
		ctx.JSON(http.StatusOK, gin.H{"hits": hits})
	})
	router.POST("/things", func(ctx *gin.Context) {
		hits++
		ctx.JSON(http.StatusCreated, gin.H{"hits": hits})
	})

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(w, req)
		return w
	}

	first := get("/things?page=1")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, 1, hits)

	second := get("/things?page=1")
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, 1, hits, "second request served from cache")
	assert.Equal(t, first.Body.String(), second.Body.String())

	get("/things?page=2")
	assert.Equal(t, 2, hits, "different query string is a different view")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/things", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, 3, hits, "mutations never served from cache")

	cache.Invalidate("/things")
	get("/things?page=1")
	assert.Equal(t, 4, hits, "invalidated view recomputed")
}

func TestCacheViewsBehindGuards(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cache := viewcache.New()
	verifyJWT := NewAuthenticator(testSigningKey).VerifyJWT()

	router := gin.New()
	router.GET("/events", verifyJWT, CacheViews(cache), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"events": "confidential"})
	})
	router.GET("/users", verifyJWT, RequireRole("admin"), CacheViews(cache), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"users": "admins only"})
	})

	get := func(path, token string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		router.ServeHTTP(w, req)
		return w
	}

	adminToken, err := jwthelper.GenerateToken(testSigningKey, 1, "admin")
	require.NoError(t, err)
	viewerToken, err := jwthelper.GenerateToken(testSigningKey, 2, "viewer")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, get("/events", adminToken).Code)
	assert.Equal(t, http.StatusOK, get("/users", adminToken).Code)

	t.Run("cached view not served without a token", func(t *testing.T) {
		w := get("/events", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.NotContains(t, w.Body.String(), "confidential")
	})

	t.Run("cached admin view not served to other roles", func(t *testing.T) {
		w := get("/users", viewerToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.NotContains(t, w.Body.String(), "admins only")
	})
}
