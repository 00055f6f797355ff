package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"officeweb/internal/domain"
)

func TestSessionRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository()
	s := &domain.AuthSession{ID: "a", AccessToken: "tok", Admin: domain.Admin{ID: 1, Username: "admin"}}

	require.NoError(t, repo.Create(ctx, s))
	assert.ErrorIs(t, repo.Create(ctx, s), domain.ErrConflict)

	got, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "tok", got.AccessToken)

	got.AccessToken = "changed"
	again, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "tok", again.AccessToken)

	require.NoError(t, repo.Delete(ctx, "a"))
	_, err = repo.GetByID(ctx, "a")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.NoError(t, repo.Delete(ctx, "a"))
}

func TestSessionRepository_DeleteExpired(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	repo := NewSessionRepository()
	require.NoError(t, repo.Create(ctx, &domain.AuthSession{ID: "past", ExpiresAt: now.Add(-time.Minute)}))
	require.NoError(t, repo.Create(ctx, &domain.AuthSession{ID: "edge", ExpiresAt: now}))
	require.NoError(t, repo.Create(ctx, &domain.AuthSession{ID: "future", ExpiresAt: now.Add(time.Minute)}))
	require.NoError(t, repo.Create(ctx, &domain.AuthSession{ID: "forever"}))

	n, err := repo.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, 2, repo.Len())
}
