package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gothicshop/internal/models"
)

func TestUserFindByUsername(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	ctx := context.Background()

	u := models.User{Username: "admin", PasswordHash: "hash", IsAdmin: true}
	require.NoError(t, users.Create(ctx, &u))

	got, err := users.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.True(t, got.IsAdmin)

	_, err = users.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUsernameIsUnique(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, &models.User{Username: "admin", PasswordHash: "h"}))
	err := users.Create(ctx, &models.User{Username: "admin", PasswordHash: "h"})
	assert.Error(t, err)
}
