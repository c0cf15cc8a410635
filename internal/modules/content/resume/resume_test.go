package resume

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mx-space/portfolio/internal/database/dbtest"
	"github.com/mx-space/portfolio/internal/models"
	"github.com/mx-space/portfolio/internal/pkg/apitest"
	"github.com/mx-space/portfolio/internal/pkg/imagehost"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setup(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()
	db := dbtest.New(t)
	r, public, admin := apitest.Router()
	up := imagehost.NewUploader(imagehost.NewLocal(t.TempDir(), ""), 1)
	NewHandler(NewService(db, apitest.Resolver(db), up, zap.NewNop())).RegisterRoutes(public, admin)
	return r, db
}

func create(t *testing.T, r http.Handler, body map[string]interface{}) models.ResumeModel {
	t.Helper()
	w := apitest.Do(t, r, http.MethodPost, "/api/admin/resumes", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var out models.ResumeModel
	apitest.Decode(t, w, &out)
	return out
}

func TestNoResumeIs404(t *testing.T) {
	r, _ := setup(t)

	w := apitest.Do(t, r, http.MethodGet, "/api/resume", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = apitest.Do(t, r, http.MethodGet, "/api/resume/download", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	create(t, r, map[string]interface{}{"fileUrl": "https://files/cv.pdf", "isActive": false})
	w = apitest.Do(t, r, http.MethodGet, "/api/resume", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewResumeReplacesActive(t *testing.T) {
	r, _ := setup(t)

	first := create(t, r, map[string]interface{}{"title": "v1", "fileUrl": "https://files/v1.pdf"})
	assert.True(t, first.IsActive)
	second := create(t, r, map[string]interface{}{"title": "v2", "fileUrl": "https://files/v2.pdf"})

	w := apitest.Do(t, r, http.MethodGet, "/api/resume", nil)
	var got models.ResumeModel
	apitest.Decode(t, w, &got)
	assert.Equal(t, second.ID, got.ID)

	w = apitest.Do(t, r, http.MethodPatch, "/api/admin/resumes/"+first.ID+"/activate", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = apitest.Do(t, r, http.MethodGet, "/api/admin/resumes", nil)
	var all []models.ResumeModel
	apitest.Decode(t, w, &all)
	require.Len(t, all, 2)
	active := 0
	for _, item := range all {
		if item.IsActive {
			active++
			assert.Equal(t, first.ID, item.ID)
		}
	}
	assert.Equal(t, 1, active)

	w = apitest.Do(t, r, http.MethodPatch, "/api/admin/resumes/missing/activate", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDownloadRedirectsAndCounts(t *testing.T) {
	r, db := setup(t)
	cv := create(t, r, map[string]interface{}{"fileUrl": "https://files/cv.pdf"})

	for i := 0; i < 2; i++ {
		w := apitest.Do(t, r, http.MethodGet, "/api/resume/download", nil)
		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "https://files/cv.pdf", w.Header().Get("Location"))
	}

	var stored models.ResumeModel
	require.NoError(t, db.First(&stored, "id = ?", cv.ID).Error)
	assert.Equal(t, 2, stored.DownloadCount)
}

func TestCreateValidatesURL(t *testing.T) {
	r, _ := setup(t)
	w := apitest.Do(t, r, http.MethodPost, "/api/admin/resumes", map[string]interface{}{"title": "x"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]interface{}
	apitest.Decode(t, w, &body)
	assert.Equal(t, "fileUrl", body["field"])
}

func TestMultipartUpload(t *testing.T) {
	r, _ := setup(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", "My CV"))
	fw, err := mw.CreateFormFile("file", "cv.pdf")
	require.NoError(t, err)
	_, err = fw.Write([]byte("%PDF-1.4 test"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/resumes", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var got models.ResumeModel
	apitest.Decode(t, w, &got)
	assert.Equal(t, "My CV", got.Title)
	assert.Equal(t, "cv.pdf", got.FileName)
	assert.True(t, strings.HasPrefix(got.FileURL, "/uploads/files/"))
	assert.True(t, got.IsActive)
}
