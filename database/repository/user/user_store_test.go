package userRepo

import (
	"context"
	"testing"
	"time"

	"barbershop/database/store"
	"barbershop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreUserRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewStoreUserRepo(store.NewMemoryStore())

	sent := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, &models.UserAccount{
		Username: "jdoe",
		FullName: "Jane Doe",
		Email:    "j@x.com",
		Verification: models.Verification{
			Code:      "123456",
			SentAt:    sent,
			ExpiresAt: sent.Add(15 * time.Minute),
		},
	}))
	require.NoError(t, repo.Save(ctx, &models.UserAccount{Username: "abe", FullName: "Abe"}))

	u, err := repo.GetByUsername(ctx, "jdoe")
	require.NoError(t, err)
	assert.Equal(t, "jdoe", u.Username)
	assert.Equal(t, "123456", u.Verification.Code)
	assert.True(t, u.Verification.ExpiresAt.Equal(sent.Add(15*time.Minute)))

	require.NoError(t, repo.Update(ctx, "jdoe", store.Document{"verification.adminApproved": true}))
	u, err = repo.GetByUsername(ctx, "jdoe")
	require.NoError(t, err)
	assert.True(t, u.Verification.AdminApproved)
	assert.Equal(t, "123456", u.Verification.Code)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "abe", all[0].Username)

	require.NoError(t, repo.Delete(ctx, "abe"))
	_, err = repo.GetByUsername(ctx, "abe")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
