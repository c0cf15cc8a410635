package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mx-space/portfolio/internal/database/dbtest"
	"github.com/mx-space/portfolio/internal/models"
	"github.com/mx-space/portfolio/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestClassify(t *testing.T) {
	assert.NoError(t, store.Classify(nil))
	assert.ErrorIs(t, store.Classify(gorm.ErrRecordNotFound), store.ErrNotFound)
	assert.ErrorIs(t, store.Classify(gorm.ErrDuplicatedKey), store.ErrConflict)
	assert.ErrorIs(t, store.Classify(context.Canceled), context.Canceled)
	assert.False(t, store.IsUnavailable(store.Classify(context.Canceled)))

	err := store.Classify(errors.New("dial tcp: connection refused"))
	assert.ErrorIs(t, err, store.ErrUnavailable)
	assert.True(t, store.IsUnavailable(err))

	// already classified errors are left alone
	assert.Equal(t, store.ErrNotFound, store.Classify(store.ErrNotFound))
}

func TestRepoLatestUsesUpdateTime(t *testing.T) {
	ctx := context.Background()
	repo := store.NewRepo[models.ProfileModel](dbtest.New(t))

	_, err := repo.Latest(ctx, store.Query{})
	require.ErrorIs(t, err, store.ErrNotFound)

	older := &models.ProfileModel{Name: "older"}
	require.NoError(t, repo.Create(ctx, older))
	time.Sleep(5 * time.Millisecond)
	newer := &models.ProfileModel{Name: "newer"}
	require.NoError(t, repo.Create(ctx, newer))

	got, err := repo.Latest(ctx, store.Query{})
	require.NoError(t, err)
	assert.Equal(t, "newer", got.Name)

	time.Sleep(5 * time.Millisecond)
	older.Headline = "touched"
	require.NoError(t, repo.Save(ctx, older))

	got, err = repo.Latest(ctx, store.Query{})
	require.NoError(t, err)
	assert.Equal(t, "older", got.Name)
}

func TestRepoListFilterAndOrder(t *testing.T) {
	ctx := context.Background()
	repo := store.NewRepo[models.CertificateModel](dbtest.New(t))

	for _, c := range []models.CertificateModel{
		{Title: "b", Image: "b.png", IsActive: true, Order: 2},
		{Title: "hidden", Image: "h.png", IsActive: false, Order: 0},
		{Title: "a", Image: "a.png", IsActive: true, Order: 1},
	} {
		c := c
		require.NoError(t, repo.Create(ctx, &c))
	}

	items, err := repo.List(ctx, store.Query{
		Where: map[string]interface{}{"is_active": true},
		Order: []string{"sort_order ASC"},
	})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].Title)
	assert.Equal(t, "b", items[1].Title)

	n, err := repo.Count(ctx, store.Query{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}

func TestRepoPage(t *testing.T) {
	ctx := context.Background()
	repo := store.NewRepo[models.MessageModel](dbtest.New(t))
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, &models.MessageModel{Name: "n", Email: "a@b.co", Message: "hi"}))
	}

	items, total, err := repo.Page(ctx, store.Query{Order: []string{"created_at DESC"}}, 2, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, items, 2)
}

func TestRepoDeleteUnknownID(t *testing.T) {
	repo := store.NewRepo[models.SkillModel](dbtest.New(t))
	err := repo.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRepoUpsertCreatesThenUpdates(t *testing.T) {
	ctx := context.Background()
	repo := store.NewRepo[models.ProfileModel](dbtest.New(t))

	first, err := repo.Upsert(ctx, store.Query{}, func(p *models.ProfileModel) { p.Name = "a" })
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	second, err := repo.Upsert(ctx, store.Query{}, func(p *models.ProfileModel) { p.Name = "b" })
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	n, err := repo.Count(ctx, store.Query{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestRepoUpdate(t *testing.T) {
	ctx := context.Background()
	repo := store.NewRepo[models.SkillModel](dbtest.New(t))

	_, err := repo.Update(ctx, "missing", func(*models.SkillModel) error { return nil })
	require.ErrorIs(t, err, store.ErrNotFound)

	s := &models.SkillModel{Name: "Go", Category: models.SkillCategoryLanguages, Level: models.SkillLevelExpert}
	require.NoError(t, repo.Create(ctx, s))

	rejected := errors.New("nope")
	_, err = repo.Update(ctx, s.ID, func(*models.SkillModel) error { return rejected })
	require.ErrorIs(t, err, rejected)

	got, err := repo.Update(ctx, s.ID, func(m *models.SkillModel) error { m.Name = "Golang"; return nil })
	require.NoError(t, err)
	assert.Equal(t, "Golang", got.Name)

	reread, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Golang", reread.Name)
}

func TestRepoUniqueConflict(t *testing.T) {
	ctx := context.Background()
	repo := store.NewRepo[models.CredentialsModel](dbtest.New(t))
	require.NoError(t, repo.Create(ctx, &models.CredentialsModel{Email: "a@b.co", Password: "x", IsActive: true}))

	err := repo.Create(ctx, &models.CredentialsModel{Email: "a@b.co", Password: "y"})
	assert.ErrorIs(t, err, store.ErrConflict)
}

func TestRepoOutageIsUnavailable(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	repo := store.NewRepo[models.ProjectModel](db)
	dbtest.Outage(t, db)

	_, err := repo.List(ctx, store.Query{})
	assert.True(t, store.IsUnavailable(err), "got %v", err)

	err = repo.Create(ctx, &models.ProjectModel{Title: "t", Description: "d"})
	assert.True(t, store.IsUnavailable(err), "got %v", err)
}

func TestMemoryCacheReturnsCopies(t *testing.T) {
	ctx := context.Background()
	c := store.NewMemoryCache(time.Minute)

	in := models.ProjectModel{Title: "x", Technologies: models.StringArray{"Go"}}
	require.NoError(t, c.Set(ctx, store.Key("projects"), []models.ProjectModel{in}, 0))

	var out []models.ProjectModel
	ok, err := c.Get(ctx, store.Key("projects"), &out)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, out, 1)
	out[0].Technologies[0] = "Rust"

	var again []models.ProjectModel
	_, err = c.Get(ctx, store.Key("projects"), &again)
	require.NoError(t, err)
	assert.Equal(t, "Go", again[0].Technologies[0])

	ok, err = c.Get(ctx, store.Key("absent"), &out)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Delete(ctx, store.Key("projects")))
	ok, _ = c.Get(ctx, store.Key("projects"), &out)
	assert.False(t, ok)
}

func TestMemoryCacheIncrWindow(t *testing.T) {
	ctx := context.Background()
	c := store.NewMemoryCache(time.Minute)

	for want := int64(1); want <= 3; want++ {
		got, err := c.Incr(ctx, "hits", 20*time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	time.Sleep(40 * time.Millisecond)
	got, err := c.Incr(ctx, "hits", 20*time.Millisecond)
	require.NoError(t, err)
	assert.EqualValues(t, 1, got)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "portfolio:resolve:profile", store.Key("resolve", "profile"))
}
