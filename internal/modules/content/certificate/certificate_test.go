package certificate

import (
	"net/http"
	"testing"

	"github.com/mx-space/portfolio/internal/database/dbtest"
	"github.com/mx-space/portfolio/internal/models"
	"github.com/mx-space/portfolio/internal/modules/catalog"
	"github.com/mx-space/portfolio/internal/pkg/apitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) http.Handler {
	t.Helper()
	db := dbtest.New(t)
	r, public, admin := apitest.Router()
	NewHandler(NewService(db, apitest.Resolver(db))).RegisterRoutes(public, admin)
	return r
}

func TestPublicShowsOnlyActive(t *testing.T) {
	r := setup(t)

	w := apitest.Do(t, r, http.MethodPost, "/api/admin/certificates", map[string]interface{}{
		"title": "Hidden", "image": "https://img/h.png", "isActive": false,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = apitest.Do(t, r, http.MethodGet, "/api/certificates", nil)
	var got []models.CertificateModel
	apitest.Decode(t, w, &got)
	require.Len(t, got, len(catalog.Certificates()))
	assert.Equal(t, catalog.Certificates()[0].Title, got[0].Title)

	w = apitest.Do(t, r, http.MethodPost, "/api/admin/certificates", map[string]interface{}{
		"title": "Shown", "image": "https://img/s.png",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = apitest.Do(t, r, http.MethodGet, "/api/certificates", nil)
	apitest.Decode(t, w, &got)
	require.Len(t, got, 1)
	assert.Equal(t, "Shown", got[0].Title)
	assert.True(t, got[0].IsActive)

	w = apitest.Do(t, r, http.MethodGet, "/api/admin/certificates", nil)
	apitest.Decode(t, w, &got)
	assert.Len(t, got, 2)
}

func TestImageIsRequired(t *testing.T) {
	r := setup(t)

	w := apitest.Do(t, r, http.MethodPost, "/api/admin/certificates", map[string]interface{}{"title": "No image"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]interface{}
	apitest.Decode(t, w, &body)
	assert.Equal(t, "image", body["field"])
	assert.Equal(t, "required", body["rule"])

	w = apitest.Do(t, r, http.MethodPost, "/api/admin/certificates", map[string]interface{}{"title": "c", "image": "x.png"})
	var c models.CertificateModel
	apitest.Decode(t, w, &c)

	w = apitest.Do(t, r, http.MethodPut, "/api/admin/certificates/"+c.ID, map[string]interface{}{"image": "  "})
	require.Equal(t, http.StatusBadRequest, w.Code)
	apitest.Decode(t, w, &body)
	assert.Equal(t, "image", body["field"])
}

func TestUnknownIDIs404(t *testing.T) {
	r := setup(t)
	w := apitest.Do(t, r, http.MethodPut, "/api/admin/certificates/nope", map[string]interface{}{"title": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = apitest.Do(t, r, http.MethodDelete, "/api/admin/certificates/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
