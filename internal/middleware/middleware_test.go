package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mx-space/portfolio/internal/pkg/jwt"
	"github.com/mx-space/portfolio/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() { gin.SetMode(gin.TestMode) }

func TestAuthAcceptsHeaderAndCookie(t *testing.T) {
	signer := jwt.NewSigner("test-secret")
	token, err := signer.Sign("admin@example.com", time.Hour)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/admin", Auth(signer), func(c *gin.Context) { c.String(http.StatusOK, CurrentEmail(c)) })

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin@example.com", w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookie, Value: token})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	other, err := jwt.NewSigner("other-secret").Sign("admin@example.com", time.Hour)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+other)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestExpiredTokenRejected(t *testing.T) {
	signer := jwt.NewSigner("test-secret")
	token, err := signer.Sign("admin@example.com", -time.Minute)
	require.NoError(t, err)
	_, err = ValidateToken(signer, token)
	assert.Error(t, err)
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "abc", NormalizeToken("  Bearer abc "))
	assert.Equal(t, "abc", NormalizeToken("abc"))
	assert.Equal(t, "", NormalizeToken("   "))
}

func TestRateLimit(t *testing.T) {
	cache := store.NewMemoryCache(time.Minute)
	r := gin.New()
	r.POST("/messages", RateLimit(cache, "messages", 2, time.Minute, zap.NewNop()), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/messages", nil))
		codes = append(codes, w.Code)
		if i == 2 {
			assert.Equal(t, "60", w.Header().Get("Retry-After"))
		}
	}
	assert.Equal(t, []int{http.StatusCreated, http.StatusCreated, http.StatusTooManyRequests}, codes)
}

func TestRateLimitCountsPerWindow(t *testing.T) {
	clock := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	now = func() time.Time { return clock }
	t.Cleanup(func() { now = time.Now })

	cache := store.NewMemoryCache(time.Hour)
	r := gin.New()
	r.POST("/messages", RateLimit(cache, "messages", 1, time.Minute, zap.NewNop()), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	post := func() int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/messages", nil))
		return w.Code
	}

	assert.Equal(t, http.StatusCreated, post())
	assert.Equal(t, http.StatusTooManyRequests, post())

	// The counter still exists in the cache, but the next window starts fresh.
	clock = clock.Add(time.Minute)
	assert.Equal(t, http.StatusCreated, post())
	assert.Equal(t, http.StatusTooManyRequests, post())
}

func TestWindowKey(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 30, 0, time.UTC)
	k := windowKey("messages", "10.0.0.1", time.Minute, at)
	assert.Equal(t, k, windowKey("messages", "10.0.0.1", time.Minute, at.Add(29*time.Second)))
	assert.NotEqual(t, k, windowKey("messages", "10.0.0.1", time.Minute, at.Add(30*time.Second)))
	assert.NotEqual(t, k, windowKey("messages", "10.0.0.2", time.Minute, at))
}
