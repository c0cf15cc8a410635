package app

import (
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/mx-space/portfolio/internal/config"
	"github.com/mx-space/portfolio/internal/modules/catalog"
	"github.com/mx-space/portfolio/internal/pkg/apitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig(t *testing.T) *config.AppConfig {
	t.Helper()
	dir := t.TempDir()
	return &config.AppConfig{
		Port:     5000,
		Env:      "test",
		TokenTTL: time.Hour,
		Database: config.DatabaseConfig{
			Driver:         config.DriverSQLite,
			Path:           filepath.Join(dir, "app.db"),
			ConnectRetries: 1,
			RetryDelay:     time.Millisecond,
		},
		Admin:     config.AdminConfig{Email: "admin@example.com", Password: "admin123"},
		Upload:    config.UploadConfig{Driver: config.UploadLocal, Dir: filepath.Join(dir, "uploads"), MaxSizeMB: 1},
		RateLimit: config.RateLimitConfig{Messages: 2, Login: 5, Window: time.Minute},
	}
}

func newApp(t *testing.T) *App {
	t.Helper()
	a, err := New(zap.NewNop(), testConfig(t))
	require.NoError(t, err)
	t.Cleanup(a.Shutdown)
	require.Eventually(t, a.dbReady.Load, 5*time.Second, 10*time.Millisecond)
	return a
}

func TestHealth(t *testing.T) {
	a := newApp(t)

	w := apitest.Do(t, a.Router(), http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	apitest.Decode(t, w, &body)
	assert.Equal(t, "up", body["database"])
	assert.Equal(t, "memory", body["cache"])
}

func TestPublicReadsFallBackOnEmptyStore(t *testing.T) {
	a := newApp(t)

	w := apitest.Do(t, a.Router(), http.MethodGet, "/api/projects", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var projects []map[string]interface{}
	apitest.Decode(t, w, &projects)
	require.Len(t, projects, len(catalog.Projects()))

	w = apitest.Do(t, a.Router(), http.MethodGet, "/api/resume", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminRequiresLogin(t *testing.T) {
	a := newApp(t)
	h := a.Router()

	w := apitest.Do(t, h, http.MethodGet, "/api/admin/messages", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = apitest.Do(t, h, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "admin@example.com", "password": "admin123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var login struct {
		Token string `json:"token"`
	}
	apitest.Decode(t, w, &login)
	require.NotEmpty(t, login.Token)

	req := apitest.Request(t, http.MethodGet, "/api/admin/messages", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	w = apitest.Serve(h, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMessagesAreRateLimited(t *testing.T) {
	a := newApp(t)
	body := map[string]string{"name": "Grace", "email": "grace@example.com", "message": "hello"}

	for i := 0; i < 2; i++ {
		w := apitest.Do(t, a.Router(), http.MethodPost, "/api/messages", body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}
	w := apitest.Do(t, a.Router(), http.MethodPost, "/api/messages", body)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestLocalUploadPath(t *testing.T) {
	path, ok := localUploadPath(config.UploadConfig{Driver: config.UploadLocal})
	assert.True(t, ok)
	assert.Equal(t, "/uploads", path)

	path, ok = localUploadPath(config.UploadConfig{Driver: config.UploadLocal, PublicBaseURL: "/files/"})
	assert.True(t, ok)
	assert.Equal(t, "/files", path)

	_, ok = localUploadPath(config.UploadConfig{Driver: config.UploadLocal, PublicBaseURL: "https://cdn.example.com"})
	assert.False(t, ok)

	_, ok = localUploadPath(config.UploadConfig{Driver: config.UploadS3})
	assert.False(t, ok)
}
