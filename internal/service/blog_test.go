package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aijazali515/AgriFarma/internal/dto"
	"github.com/Aijazali515/AgriFarma/internal/repository"
)

func TestBlogCreateAndView(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	blog := NewBlogService(repository.NewBlogRepository(db))

	author := seedUser(t, db, "writer@example.com")

	post, err := blog.Create(ctx, author.ID, dto.BlogPostRequest{
		Title:      "Raised beds doubled my yield",
		Content:    "Long form content here.",
		Category:   "Success Stories",
		Tags:       "yield, beds",
		MediaFiles: "field.jpg,howto.mp4",
	})
	require.NoError(t, err)
	assert.True(t, post.Approved, "posts publish immediately and may be taken down later")

	view, err := blog.View(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.Title, view.Post.Title)
	require.Len(t, view.Media, 2)
	assert.Equal(t, "image", view.Media[0].Kind)
	assert.Equal(t, "video", view.Media[1].Kind)
}

func TestBlogCreateValidation(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	blog := NewBlogService(repository.NewBlogRepository(db))
	author := seedUser(t, db, "writer@example.com")

	_, err := blog.Create(ctx, author.ID, dto.BlogPostRequest{Title: "x", Content: "y", Category: "Nonsense"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = blog.Create(ctx, author.ID, dto.BlogPostRequest{Title: " ", Content: "y", Category: "Techniques"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBlogUnapprovedPostHidden(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := repository.NewBlogRepository(db)
	blog := NewBlogService(repo)
	author := seedUser(t, db, "writer@example.com")

	post, err := blog.Create(ctx, author.ID, dto.BlogPostRequest{
		Title: "Spam", Content: "spam", Category: "Techniques",
	})
	require.NoError(t, err)

	require.NoError(t, repo.SetApproved(ctx, post.ID, false))

	_, err = blog.View(ctx, post.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	listed, err := blog.List(ctx, "", "")
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestBlogCommentsAndLikes(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	blog := NewBlogService(repository.NewBlogRepository(db))

	author := seedUser(t, db, "writer@example.com")
	reader := seedUser(t, db, "reader@example.com")

	post, err := blog.Create(ctx, author.ID, dto.BlogPostRequest{
		Title: "Composting 101", Content: "body", Category: "Soil Health",
	})
	require.NoError(t, err)

	_, err = blog.Comment(ctx, reader.ID, post.ID, "Great write-up")
	require.NoError(t, err)
	_, err = blog.Comment(ctx, reader.ID, post.ID, "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)

	liked, count, err := blog.ToggleLike(ctx, reader.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, int64(1), count)

	liked, count, err = blog.ToggleLike(ctx, reader.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Zero(t, count)

	view, err := blog.View(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, view.Comments, 1)
	assert.Equal(t, "Great write-up", view.Comments[0].Content)
}
