package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrivoapp/scrivo/internal/domain/repository"
)

func newReminderRepo(t *testing.T) repository.ReminderRepository {
	t.Helper()
	return NewReminderRepository(newTestStore(t))
}

func TestReminderRepository_CreateAndFindPending(t *testing.T) {
	repo := newReminderRepo(t)
	ctx := context.Background()

	now := time.Now()
	second, err := repo.Create(ctx, "later", now.Add(-time.Minute))
	require.NoError(t, err)
	first, err := repo.Create(ctx, "earlier", now.Add(-time.Hour))
	require.NoError(t, err)
	_, err = repo.Create(ctx, "future", now.Add(time.Hour))
	require.NoError(t, err)

	pending, err := repo.FindPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	// Ascending by remind time, regardless of insertion order.
	assert.Equal(t, first, pending[0].ID)
	assert.Equal(t, second, pending[1].ID)
	assert.Equal(t, "earlier", pending[0].Message)
}

func TestReminderRepository_FindPending_SkipsNotified(t *testing.T) {
	repo := newReminderRepo(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, "due", time.Now().Add(-time.Minute))
	require.NoError(t, err)

	require.NoError(t, repo.MarkNotified(ctx, id))
	require.NoError(t, repo.MarkNotified(ctx, id))

	pending, err := repo.FindPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestReminderRepository_FindAll(t *testing.T) {
	repo := newReminderRepo(t)
	ctx := context.Background()

	notified, err := repo.Create(ctx, "done", time.Now().Add(-time.Hour))
	require.NoError(t, err)
	open, err := repo.Create(ctx, "open", time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.NoError(t, repo.MarkNotified(ctx, notified))

	active, err := repo.FindAll(ctx, false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, open, active[0].ID)

	all, err := repo.FindAll(ctx, true)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.True(t, all[0].Notified)
	assert.False(t, all[1].Notified)
}

func TestReminderRepository_Delete(t *testing.T) {
	repo := newReminderRepo(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, "gone", time.Now())
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, id))
	require.NoError(t, repo.Delete(ctx, id))

	all, err := repo.FindAll(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, all)
}
