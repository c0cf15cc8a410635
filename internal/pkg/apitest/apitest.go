// Package apitest holds the HTTP plumbing shared by handler tests.
package apitest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mx-space/portfolio/internal/modules/resolve"
	"github.com/mx-space/portfolio/internal/store"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Router returns an engine with the public /api group and an unauthenticated
// /api/admin group.
func Router() (*gin.Engine, *gin.RouterGroup, *gin.RouterGroup) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	return r, api, api.Group("/admin")
}

// Resolver builds a resolver over db with an in-memory cache tier.
func Resolver(db *gorm.DB) *resolve.Resolver {
	return resolve.New(resolve.NewSources(db), store.NewMemoryCache(time.Minute), zap.NewNop())
}

// Request builds a request with body encoded as JSON (nil sends no body).
func Request(t testing.TB, method, path string, body interface{}) *http.Request {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// Serve records h's response to req.
func Serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// Do is Serve(h, Request(...)).
func Do(t testing.TB, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	return Serve(h, Request(t, method, path, body))
}

// Decode unmarshals the recorded body into dest.
func Decode(t testing.TB, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest), w.Body.String())
}
