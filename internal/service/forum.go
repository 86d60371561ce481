package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Aijazali515/AgriFarma/internal/dto"
	"github.com/Aijazali515/AgriFarma/internal/model"
	"github.com/Aijazali515/AgriFarma/internal/repository"
)

type ThreadView struct {
	Thread model.Thread `json:"thread"`
	Posts  []model.Post `json:"posts"`
}

type ForumService interface {
	Categories(ctx context.Context) ([]model.Category, error)
	CreateThread(ctx context.Context, authorID uint, req dto.ThreadRequest) (*model.Thread, error)
	ListThreads(ctx context.Context, categoryID *uint, search string) ([]model.Thread, error)
	ViewThread(ctx context.Context, threadID uint) (*ThreadView, error)
	DeleteThread(ctx context.Context, actorID uint, actorRole string, threadID uint) error
	Reply(ctx context.Context, authorID, threadID uint, content string) (*model.Post, error)
	ToggleLike(ctx context.Context, userID, postID uint) (bool, int64, error)
}

type forumServiceImpl struct {
	forum repository.ForumRepository
}

func NewForumService(forum repository.ForumRepository) ForumService {
	return &forumServiceImpl{forum: forum}
}

func (s *forumServiceImpl) Categories(ctx context.Context) ([]model.Category, error) {
	return s.forum.ListCategories(ctx)
}

func (s *forumServiceImpl) CreateThread(ctx context.Context, authorID uint, req dto.ThreadRequest) (*model.Thread, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	thread := &model.Thread{
		Title:      title,
		CategoryID: req.CategoryID,
		AuthorID:   authorID,
	}
	if err := s.forum.CreateThread(ctx, thread); err != nil {
		return nil, fmt.Errorf("create thread: %w", err)
	}
	return thread, nil
}

func (s *forumServiceImpl) ListThreads(ctx context.Context, categoryID *uint, search string) ([]model.Thread, error) {
	return s.forum.ListThreads(ctx, categoryID, search, 50)
}

func (s *forumServiceImpl) ViewThread(ctx context.Context, threadID uint) (*ThreadView, error) {
	thread, err := s.forum.FindThread(ctx, threadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	posts, err := s.forum.ListPosts(ctx, threadID)
	if err != nil {
		return nil, err
	}
	return &ThreadView{Thread: *thread, Posts: posts}, nil
}

// DeleteThread is allowed for the thread author and admins.
func (s *forumServiceImpl) DeleteThread(ctx context.Context, actorID uint, actorRole string, threadID uint) error {
	thread, err := s.forum.FindThread(ctx, threadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if thread.AuthorID != actorID && actorRole != model.RoleAdmin {
		return ErrForbidden
	}
	return s.forum.DeleteThread(ctx, threadID)
}

func (s *forumServiceImpl) Reply(ctx context.Context, authorID, threadID uint, content string) (*model.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrInvalidInput)
	}
	if _, err := s.forum.FindThread(ctx, threadID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	post := &model.Post{
		ThreadID: threadID,
		AuthorID: authorID,
		Content:  content,
	}
	if err := s.forum.CreatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

func (s *forumServiceImpl) ToggleLike(ctx context.Context, userID, postID uint) (bool, int64, error) {
	liked, err := s.forum.ToggleLike(ctx, postID, userID)
	if err != nil {
		return false, 0, err
	}
	count, err := s.forum.CountLikes(ctx, postID)
	if err != nil {
		return liked, 0, err
	}
	return liked, count, nil
}
