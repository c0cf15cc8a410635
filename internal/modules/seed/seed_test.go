package seed

import (
	"context"
	"testing"

	"github.com/mx-space/portfolio/internal/database/dbtest"
	"github.com/mx-space/portfolio/internal/models"
	"github.com/mx-space/portfolio/internal/modules/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCreds struct{ calls int }

func (f *fakeCreds) EnsureCredentials(context.Context) (bool, error) {
	f.calls++
	return f.calls == 1, nil
}

func TestRunFillsEmptyTables(t *testing.T) {
	db := dbtest.New(t)
	creds := &fakeCreds{}
	demo := catalog.Demo()

	res, err := New(db, creds, nil).Run(context.Background(), Options{})
	require.NoError(t, err)
	assert.Equal(t, len(demo.Skills), res["skills"])
	assert.Equal(t, len(demo.Projects), res["projects"])
	assert.Equal(t, 1, res["credentials"])

	var projects []models.ProjectModel
	require.NoError(t, db.Find(&projects).Error)
	require.Len(t, projects, len(demo.Projects))
	for _, p := range projects {
		assert.Equal(t, p.ImageURL, p.Image)
		assert.Equal(t, []string(p.Technologies), []string(p.Tags))
	}

	var contact models.ContactModel
	require.NoError(t, db.First(&contact).Error)
	assert.True(t, contact.IsActive)
}

func TestRunLeavesExistingContent(t *testing.T) {
	db := dbtest.New(t)
	require.NoError(t, db.Create(&models.SkillModel{Name: "Mine", Category: models.SkillCategoryTools, Level: models.SkillLevelExpert}).Error)

	res, err := New(db, nil, nil).Run(context.Background(), Options{})
	require.NoError(t, err)
	_, seeded := res["skills"]
	assert.False(t, seeded)

	var n int64
	require.NoError(t, db.Model(&models.SkillModel{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestRunResetReplacesContent(t *testing.T) {
	db := dbtest.New(t)
	require.NoError(t, db.Create(&models.SkillModel{Name: "Mine"}).Error)
	require.NoError(t, db.Create(&models.MessageModel{Name: "a", Email: "a@example.com", Message: "hi"}).Error)

	_, err := New(db, nil, nil).Run(context.Background(), Options{Reset: true})
	require.NoError(t, err)

	var names []string
	require.NoError(t, db.Model(&models.SkillModel{}).Pluck("name", &names).Error)
	assert.NotContains(t, names, "Mine")
	assert.Len(t, names, len(catalog.Demo().Skills))

	var messages int64
	require.NoError(t, db.Model(&models.MessageModel{}).Count(&messages).Error)
	assert.EqualValues(t, 1, messages)
}
