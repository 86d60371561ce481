package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aijazali515/AgriFarma/internal/dto"
	"github.com/Aijazali515/AgriFarma/internal/model"
	"github.com/Aijazali515/AgriFarma/internal/repository"
)

func TestForumThreadLifecycle(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	forum := NewForumService(repository.NewForumRepository(db))

	author := seedUser(t, db, "author@example.com")
	other := seedUser(t, db, "other@example.com")

	thread, err := forum.CreateThread(ctx, author.ID, dto.ThreadRequest{Title: "Wheat rust this season"})
	require.NoError(t, err)

	_, err = forum.CreateThread(ctx, author.ID, dto.ThreadRequest{Title: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	post, err := forum.Reply(ctx, other.ID, thread.ID, "Seen it in my fields too.")
	require.NoError(t, err)

	view, err := forum.ViewThread(ctx, thread.ID)
	require.NoError(t, err)
	require.Len(t, view.Posts, 1)
	assert.Equal(t, post.ID, view.Posts[0].ID)

	// only author or admin may delete
	assert.ErrorIs(t, forum.DeleteThread(ctx, other.ID, model.RoleUser, thread.ID), ErrForbidden)
	require.NoError(t, forum.DeleteThread(ctx, author.ID, model.RoleUser, thread.ID))

	_, err = forum.ViewThread(ctx, thread.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// posts go with the thread
	var postCount int64
	require.NoError(t, db.Model(&model.Post{}).Where("thread_id = ?", thread.ID).Count(&postCount).Error)
	assert.Zero(t, postCount)
}

func TestForumAdminCanDeleteAnyThread(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	forum := NewForumService(repository.NewForumRepository(db))

	author := seedUser(t, db, "author@example.com")
	admin := seedUser(t, db, "admin@example.com")

	thread, err := forum.CreateThread(ctx, author.ID, dto.ThreadRequest{Title: "Irrigation schedules"})
	require.NoError(t, err)

	require.NoError(t, forum.DeleteThread(ctx, admin.ID, model.RoleAdmin, thread.ID))
}

func TestForumToggleLike(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	forum := NewForumService(repository.NewForumRepository(db))

	author := seedUser(t, db, "author@example.com")
	liker := seedUser(t, db, "liker@example.com")

	thread, err := forum.CreateThread(ctx, author.ID, dto.ThreadRequest{Title: "Drip systems"})
	require.NoError(t, err)
	post, err := forum.Reply(ctx, author.ID, thread.ID, "Opening post")
	require.NoError(t, err)

	liked, count, err := forum.ToggleLike(ctx, liker.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, int64(1), count)

	// second toggle unlikes
	liked, count, err = forum.ToggleLike(ctx, liker.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Zero(t, count)
}

func TestForumListThreadsFilters(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	forum := NewForumService(repository.NewForumRepository(db))

	author := seedUser(t, db, "author@example.com")
	category := model.Category{Name: "Crop Farming"}
	require.NoError(t, db.Create(&category).Error)

	_, err := forum.CreateThread(ctx, author.ID, dto.ThreadRequest{Title: "Wheat prices", CategoryID: &category.ID})
	require.NoError(t, err)
	_, err = forum.CreateThread(ctx, author.ID, dto.ThreadRequest{Title: "Tractor repair"})
	require.NoError(t, err)

	inCategory, err := forum.ListThreads(ctx, &category.ID, "")
	require.NoError(t, err)
	require.Len(t, inCategory, 1)
	assert.Equal(t, "Wheat prices", inCategory[0].Title)

	matching, err := forum.ListThreads(ctx, nil, "tractor")
	require.NoError(t, err)
	require.Len(t, matching, 1)
	assert.Equal(t, "Tractor repair", matching[0].Title)
}
