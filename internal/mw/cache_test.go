package mw

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCachedRouter(t *testing.T) (*gin.Engine, *int) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := cache.New(time.Minute, time.Minute)
	caching := Cache(store, time.Minute)

	hits := 0
	r := gin.New()
	r.GET("/matrix", caching, func(c *gin.Context) {
		hits++
		c.JSON(http.StatusOK, gin.H{"kind": "matrix", "query": c.Request.URL.RawQuery})
	})
	r.GET("/top", caching, func(c *gin.Context) {
		hits++
		c.JSON(http.StatusOK, gin.H{"kind": "top"})
	})
	r.GET("/bad", caching, func(c *gin.Context) {
		hits++
		c.JSON(http.StatusBadRequest, gin.H{"error": "rejected"})
	})
	return r, &hits
}

func get(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	// http.NewRequest leaves Request.RequestURI empty, like every request
	// built in-process rather than read off a connection.
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCacheKeysDistinguishRoutes(t *testing.T) {
	router, hits := setupCachedRouter(t)

	matrix := get(t, router, "/matrix?start=2024-01-01&end=2024-01-03")
	require.Equal(t, http.StatusOK, matrix.Code)

	// A different route must not be served the previous entry.
	top := get(t, router, "/top")
	require.Equal(t, http.StatusOK, top.Code)
	assert.JSONEq(t, `{"kind":"top"}`, top.Body.String())

	// A different query on the same route is a different entry too.
	other := get(t, router, "/matrix?start=2024-02-01&end=2024-02-03")
	require.Equal(t, http.StatusOK, other.Code)
	assert.NotEqual(t, matrix.Body.String(), other.Body.String())

	assert.Equal(t, 3, *hits, "each distinct URI reaches its handler once")
}

func TestCacheReplaysOnlyExactURI(t *testing.T) {
	router, hits := setupCachedRouter(t)

	first := get(t, router, "/matrix?start=2024-01-01&end=2024-01-03")
	second := get(t, router, "/matrix?start=2024-01-01&end=2024-01-03")

	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, *hits, "the repeat read is served from cache")
}

func TestCacheSkipsErrorResponses(t *testing.T) {
	router, hits := setupCachedRouter(t)

	// Prime the cache with a successful response first; a later rejected
	// request must still reach its handler and keep its error status.
	get(t, router, "/matrix?start=2024-01-01&end=2024-01-03")

	w := get(t, router, "/bad?start=2024-01-03&end=2024-01-01")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = get(t, router, "/bad?start=2024-01-03&end=2024-01-01")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 3, *hits, "error responses are never cached or replayed")
}
