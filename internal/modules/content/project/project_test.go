package project

import (
	"net/http"
	"testing"

	"github.com/mx-space/portfolio/internal/database/dbtest"
	"github.com/mx-space/portfolio/internal/models"
	"github.com/mx-space/portfolio/internal/modules/catalog"
	"github.com/mx-space/portfolio/internal/modules/normalize"
	"github.com/mx-space/portfolio/internal/pkg/apitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setup(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()
	db := dbtest.New(t)
	r, public, admin := apitest.Router()
	NewHandler(NewService(db, apitest.Resolver(db))).RegisterRoutes(public, admin)
	return r, db
}

func TestLegacyFieldsRoundTrip(t *testing.T) {
	r, _ := setup(t)

	w := apitest.Do(t, r, http.MethodPost, "/api/admin/projects", map[string]interface{}{
		"title":       "X",
		"description": "Y",
		"image":       "http://a",
		"tags":        []string{"Go"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = apitest.Do(t, r, http.MethodGet, "/api/projects", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got []map[string]interface{}
	apitest.Decode(t, w, &got)
	require.Len(t, got, 1)

	p := got[0]
	assert.Equal(t, "X", p["title"])
	assert.Equal(t, "http://a", p["imageUrl"])
	assert.Equal(t, []interface{}{"Go"}, p["technologies"])
	assert.NotContains(t, p, "liveUrl")
	assert.Equal(t, normalize.DefaultProjectIcon, p["icon"])
	assert.Equal(t, "Web Development", p["category"])
}

func TestEmptyStoreListings(t *testing.T) {
	r, _ := setup(t)

	w := apitest.Do(t, r, http.MethodGet, "/api/projects", nil)
	var public []models.ProjectModel
	apitest.Decode(t, w, &public)
	assert.Equal(t, normalize.Projects(catalog.Projects()), public)

	w = apitest.Do(t, r, http.MethodGet, "/api/admin/projects", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestCreateRequiresTitleAndDescription(t *testing.T) {
	r, db := setup(t)

	w := apitest.Do(t, r, http.MethodPost, "/api/admin/projects", map[string]interface{}{"title": "X"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]interface{}
	apitest.Decode(t, w, &body)
	assert.Equal(t, "description", body["field"])

	var n int64
	require.NoError(t, db.Model(&models.ProjectModel{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestUpdateWithLegacyAlias(t *testing.T) {
	r, _ := setup(t)

	w := apitest.Do(t, r, http.MethodPost, "/api/admin/projects", map[string]interface{}{
		"title": "X", "description": "Y", "imageUrl": "http://a", "liveUrl": "http://live",
	})
	var p models.ProjectModel
	apitest.Decode(t, w, &p)

	w = apitest.Do(t, r, http.MethodPut, "/api/admin/projects/"+p.ID, map[string]interface{}{
		"image": "http://b", "tags": []string{"Rust"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = apitest.Do(t, r, http.MethodGet, "/api/projects/"+p.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	apitest.Decode(t, w, &p)
	assert.Equal(t, "http://b", p.ImageURL)
	assert.Equal(t, "http://b", p.Image)
	assert.Equal(t, "http://live", p.LiveURL)
	assert.Equal(t, models.StringArray{"Rust"}, p.Technologies)
	assert.Equal(t, models.StringArray{"Rust"}, p.Tags)
}

func TestGetUnknownProject(t *testing.T) {
	r, _ := setup(t)
	w := apitest.Do(t, r, http.MethodGet, "/api/projects/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = apitest.Do(t, r, http.MethodDelete, "/api/admin/projects/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWriteDuringOutage(t *testing.T) {
	r, db := setup(t)
	dbtest.Outage(t, db)

	w := apitest.Do(t, r, http.MethodPost, "/api/admin/projects", map[string]interface{}{"title": "X", "description": "Y"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]interface{}
	apitest.Decode(t, w, &body)
	assert.Equal(t, "storage is temporarily unavailable", body["message"])

	w = apitest.Do(t, r, http.MethodGet, "/api/projects", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
