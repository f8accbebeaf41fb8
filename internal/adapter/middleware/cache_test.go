package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newCacheEnv(t *testing.T) (*echo.Echo, *redis.Client, *int) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	hits := 0
	e := echo.New()
	e.Use(ResponseCache(rdb, time.Minute))
	e.GET("/summary", func(c echo.Context) error {
		hits++
		return c.JSON(http.StatusOK, map[string]int{"hits": hits})
	})
	e.GET("/missing", func(c echo.Context) error {
		hits++
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	})
	return e, rdb, &hits
}

func do(e *echo.Echo, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestResponseCache_ServesSecondRequestFromRedis(t *testing.T) {
	e, _, hits := newCacheEnv(t)

	first := do(e, http.MethodGet, "/summary")
	require.Equal(t, http.StatusOK, first.Code)
	second := do(e, http.MethodGet, "/summary")
	require.Equal(t, http.StatusOK, second.Code)

	require.Equal(t, 1, *hits, "second request must not reach the handler")
	require.JSONEq(t, first.Body.String(), second.Body.String())
}

func TestResponseCache_KeyIncludesQueryString(t *testing.T) {
	e, _, hits := newCacheEnv(t)

	do(e, http.MethodGet, "/summary?status=active")
	do(e, http.MethodGet, "/summary?status=pending")
	require.Equal(t, 2, *hits, "distinct queries are distinct cache entries")
}

func TestResponseCache_DoesNotCacheErrors(t *testing.T) {
	e, _, hits := newCacheEnv(t)

	do(e, http.MethodGet, "/missing")
	do(e, http.MethodGet, "/missing")
	require.Equal(t, 2, *hits, "404 responses are recomputed")
}

func TestResponseCache_NilClientPassesThrough(t *testing.T) {
	hits := 0
	e := echo.New()
	e.Use(ResponseCache(nil, time.Minute))
	e.GET("/summary", func(c echo.Context) error {
		hits++
		return c.JSON(http.StatusOK, map[string]int{"hits": hits})
	})

	do(e, http.MethodGet, "/summary")
	do(e, http.MethodGet, "/summary")
	require.Equal(t, 2, hits)
}

func TestResponseCache_ExpiresWithTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	hits := 0
	e := echo.New()
	e.Use(ResponseCache(rdb, time.Second))
	e.GET("/summary", func(c echo.Context) error {
		hits++
		return c.JSON(http.StatusOK, map[string]int{"hits": hits})
	})

	do(e, http.MethodGet, "/summary")
	mr.FastForward(2 * time.Second)
	do(e, http.MethodGet, "/summary")
	require.Equal(t, 2, hits, "entry must expire after TTL")
}
