package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingRepository_GetDefault(t *testing.T) {
	repo := NewSettingRepository(newTestStore(t))
	ctx := context.Background()

	value, err := repo.Get(ctx, "recording_mode", "push_to_talk")
	require.NoError(t, err)
	assert.Equal(t, "push_to_talk", value)
}

func TestSettingRepository_SaveOverwrites(t *testing.T) {
	repo := NewSettingRepository(newTestStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "language", "en"))
	require.NoError(t, repo.Save(ctx, "language", "it"))

	value, err := repo.Get(ctx, "language", "")
	require.NoError(t, err)
	assert.Equal(t, "it", value)
}

func TestSettingRepository_KeysAreIndependent(t *testing.T) {
	repo := NewSettingRepository(newTestStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "a", "1"))
	require.NoError(t, repo.Save(ctx, "b", "2"))

	a, err := repo.Get(ctx, "a", "")
	require.NoError(t, err)
	b, err := repo.Get(ctx, "b", "")
	require.NoError(t, err)
	assert.Equal(t, "1", a)
	assert.Equal(t, "2", b)
}
