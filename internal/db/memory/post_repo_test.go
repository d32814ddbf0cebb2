package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialfeed/internal/core/posts"
	"socialfeed/internal/ids"
)

func newPostRepo() posts.Repository {
	return NewPostRepository(ids.NewGenerator())
}

func TestPostRepo_Create(t *testing.T) {
	repo := newPostRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, "alice", "hello world")
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "alice", created.Username)
	assert.Equal(t, "hello world", created.Content)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt, "timestamps must be equal at creation")
}

func TestPostRepo_Create_Validation(t *testing.T) {
	repo := newPostRepo()
	ctx := context.Background()

	_, err := repo.Create(ctx, "", "hello")
	require.Error(t, err)
	assert.True(t, posts.IsValidationError(err))

	_, err = repo.Create(ctx, "alice", "")
	require.Error(t, err)
	assert.True(t, posts.IsValidationError(err))
}

func TestPostRepo_GetByID(t *testing.T) {
	repo := newPostRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, "alice", "hello")
	require.NoError(t, err)

	found, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, posts.ErrNotFound)
}

func TestPostRepo_GetByID_ReturnsCopy(t *testing.T) {
	repo := newPostRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, "alice", "hello")
	require.NoError(t, err)

	found, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)

	// Mutating the returned post must not leak into the store
	found.Content = "tampered"

	again, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", again.Content)
}

func TestPostRepo_ListAll_NewestFirst(t *testing.T) {
	repo := newPostRepo()
	ctx := context.Background()

	first, err := repo.Create(ctx, "alice", "first")
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	second, err := repo.Create(ctx, "bob", "second")
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	third, err := repo.Create(ctx, "carol", "third")
	require.NoError(t, err)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, third.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
	assert.Equal(t, first.ID, all[2].ID)
}

func TestPostRepo_ListAll_Snapshot(t *testing.T) {
	repo := newPostRepo()
	ctx := context.Background()

	_, err := repo.Create(ctx, "alice", "first")
	require.NoError(t, err)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	// A post created after the snapshot must not appear in it
	_, err = repo.Create(ctx, "bob", "second")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPostRepo_Update(t *testing.T) {
	repo := newPostRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, "alice", "hello")
	require.NoError(t, err)

	time.Sleep(2 * time.Millisecond)

	newContent := "hello, edited"
	updated, err := repo.Update(ctx, created.ID, &newContent)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "alice", updated.Username)
	assert.Equal(t, newContent, updated.Content)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestPostRepo_Update_NilContentKeepsText(t *testing.T) {
	repo := newPostRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, "alice", "hello")
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, "hello", updated.Content)
}

func TestPostRepo_Update_NotFound(t *testing.T) {
	repo := newPostRepo()

	content := "anything"
	_, err := repo.Update(context.Background(), "missing", &content)
	assert.ErrorIs(t, err, posts.ErrNotFound)
}

func TestPostRepo_Delete(t *testing.T) {
	repo := newPostRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, "alice", "hello")
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, posts.ErrNotFound)

	deleted, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
