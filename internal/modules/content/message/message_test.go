package message

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/mx-space/portfolio/internal/database/dbtest"
	"github.com/mx-space/portfolio/internal/models"
	"github.com/mx-space/portfolio/internal/pkg/apitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setup(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()
	db := dbtest.New(t)
	r, public, admin := apitest.Router()
	NewHandler(NewService(db)).RegisterRoutes(public, admin, nil)
	return r, db
}

type page struct {
	Data       []models.MessageModel `json:"data"`
	Pagination struct {
		Total       int64 `json:"total"`
		HasNextPage bool  `json:"hasNextPage"`
	} `json:"pagination"`
}

func TestSubmitValidates(t *testing.T) {
	r, _ := setup(t)

	w := apitest.Do(t, r, http.MethodPost, "/api/messages", map[string]string{
		"name": "Ada", "email": "not-an-email", "message": "hi",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]interface{}
	apitest.Decode(t, w, &body)
	assert.Equal(t, "email", body["field"])
	assert.Equal(t, "email", body["rule"])

	w = apitest.Do(t, r, http.MethodPost, "/api/messages", map[string]string{
		"name": "  ", "email": "a@example.com", "message": "hi",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	apitest.Decode(t, w, &body)
	assert.Equal(t, "name", body["field"])
}

func TestInboxFlow(t *testing.T) {
	r, _ := setup(t)

	for i := 0; i < 3; i++ {
		w := apitest.Do(t, r, http.MethodPost, "/api/messages", map[string]string{
			"name": fmt.Sprintf("n%d", i), "email": "a@example.com", "message": "hello",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		time.Sleep(2 * time.Millisecond)
	}

	w := apitest.Do(t, r, http.MethodGet, "/api/admin/messages?size=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var p page
	apitest.Decode(t, w, &p)
	require.Len(t, p.Data, 2)
	assert.EqualValues(t, 3, p.Pagination.Total)
	assert.True(t, p.Pagination.HasNextPage)
	assert.Equal(t, "n2", p.Data[0].Name)

	w = apitest.Do(t, r, http.MethodPatch, "/api/admin/messages/"+p.Data[0].ID, map[string]bool{"isRead": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = apitest.Do(t, r, http.MethodGet, "/api/admin/messages/unread-count", nil)
	assert.JSONEq(t, `{"count":2}`, w.Body.String())

	w = apitest.Do(t, r, http.MethodGet, "/api/admin/messages?isRead=true", nil)
	apitest.Decode(t, w, &p)
	require.Len(t, p.Data, 1)
	assert.True(t, p.Data[0].IsRead)

	w = apitest.Do(t, r, http.MethodPatch, "/api/admin/messages/"+p.Data[0].ID, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = apitest.Do(t, r, http.MethodDelete, "/api/admin/messages/"+p.Data[0].ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = apitest.Do(t, r, http.MethodDelete, "/api/admin/messages/"+p.Data[0].ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitDuringOutage(t *testing.T) {
	r, db := setup(t)
	dbtest.Outage(t, db)

	w := apitest.Do(t, r, http.MethodPost, "/api/messages", map[string]string{
		"name": "Ada", "email": "a@example.com", "message": "hi",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
