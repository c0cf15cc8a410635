package contact

import (
	"context"
	"testing"

	"github.com/mx-space/portfolio/internal/database/dbtest"
	"github.com/mx-space/portfolio/internal/modules/catalog"
	"github.com/mx-space/portfolio/internal/pkg/apitest"
	"github.com/mx-space/portfolio/internal/pkg/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestUpsertCreatesActiveContact(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	svc := NewService(db, apitest.Resolver(db))

	assert.Equal(t, catalog.Contact(), svc.Get(ctx))

	c, err := svc.Upsert(ctx, &UpsertContactDTO{Title: ptr("Say hi"), Email: ptr("me@example.com")})
	require.NoError(t, err)
	assert.True(t, c.IsActive)
	assert.Equal(t, "Say hi", svc.Get(ctx).Title)
}

func TestDeactivatedContactFallsBack(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	svc := NewService(db, apitest.Resolver(db))

	_, err := svc.Upsert(ctx, &UpsertContactDTO{Title: ptr("Say hi"), IsActive: ptr(false)})
	require.NoError(t, err)
	assert.Equal(t, catalog.Contact().Title, svc.Get(ctx).Title)
}

func TestUpsertRejectsBadEmail(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	svc := NewService(db, apitest.Resolver(db))

	_, err := svc.Upsert(ctx, &UpsertContactDTO{Email: ptr("nope")})
	var verr *validate.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "email", verr.Field)
	assert.Equal(t, "email", verr.Rule)
}
