package upload

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mx-space/portfolio/internal/pkg/imagehost"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func router(t *testing.T, maxMB int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	up := imagehost.NewUploader(imagehost.NewLocal(t.TempDir(), ""), maxMB)
	NewHandler(up, zap.NewNop()).RegisterRoutes(r.Group("/api/admin"))
	return r
}

func post(t *testing.T, r http.Handler, field, name string, payload []byte) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = fw.Write(payload)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUploadImage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 4, 5))))

	w := post(t, router(t, 1), "image", "avatar.png", buf.Bytes())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var got imagehost.Image
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 4, got.Width)
	assert.Equal(t, 5, got.Height)
	assert.Equal(t, "png", got.Format)
	assert.True(t, strings.HasPrefix(got.URL, "/uploads/images/"))
}

func TestUploadRequiresImageField(t *testing.T) {
	w := post(t, router(t, 1), "file", "avatar.png", []byte("x"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadTooLarge(t *testing.T) {
	w := post(t, router(t, 1), "image", "big.png", make([]byte, 1<<20+10))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
