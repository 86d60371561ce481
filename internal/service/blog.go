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

type BlogPostView struct {
	Post     model.BlogPost    `json:"post"`
	Media    []model.MediaItem `json:"media"`
	Comments []model.Comment   `json:"comments"`
	Likes    int64             `json:"likes"`
}

type BlogService interface {
	Create(ctx context.Context, authorID uint, req dto.BlogPostRequest) (*model.BlogPost, error)
	List(ctx context.Context, category, search string) ([]model.BlogPost, error)
	View(ctx context.Context, postID uint) (*BlogPostView, error)
	Comment(ctx context.Context, authorID, postID uint, content string) (*model.Comment, error)
	ToggleLike(ctx context.Context, userID, postID uint) (bool, int64, error)
}

type blogServiceImpl struct {
	blog repository.BlogRepository
}

func NewBlogService(blog repository.BlogRepository) BlogService {
	return &blogServiceImpl{blog: blog}
}

func validBlogCategory(category string) bool {
	for _, c := range model.BlogCategories {
		if c == category {
			return true
		}
	}
	return false
}

func (s *blogServiceImpl) Create(ctx context.Context, authorID uint, req dto.BlogPostRequest) (*model.BlogPost, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return nil, fmt.Errorf("%w: title and content are required", ErrInvalidInput)
	}
	if !validBlogCategory(req.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, req.Category)
	}

	post := &model.BlogPost{
		Title:      strings.TrimSpace(req.Title),
		Content:    req.Content,
		Category:   req.Category,
		AuthorID:   authorID,
		Tags:       req.Tags,
		MediaFiles: req.MediaFiles,
		Approved:   true,
	}
	if err := s.blog.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create blog post: %w", err)
	}
	return post, nil
}

func (s *blogServiceImpl) List(ctx context.Context, category, search string) ([]model.BlogPost, error) {
	return s.blog.ListApproved(ctx, category, search, 50)
}

func (s *blogServiceImpl) View(ctx context.Context, postID uint) (*BlogPostView, error) {
	post, err := s.blog.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !post.Approved {
		return nil, ErrNotFound
	}

	comments, err := s.blog.ListComments(ctx, postID)
	if err != nil {
		return nil, err
	}
	likes, err := s.blog.CountLikes(ctx, postID)
	if err != nil {
		return nil, err
	}

	return &BlogPostView{
		Post:     *post,
		Media:    post.MediaItems(),
		Comments: comments,
		Likes:    likes,
	}, nil
}

func (s *blogServiceImpl) Comment(ctx context.Context, authorID, postID uint, content string) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrInvalidInput)
	}
	if _, err := s.blog.FindByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	comment := &model.Comment{
		BlogID:   postID,
		AuthorID: authorID,
		Content:  content,
		Approved: true,
	}
	if err := s.blog.CreateComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

func (s *blogServiceImpl) ToggleLike(ctx context.Context, userID, postID uint) (bool, int64, error) {
	liked, err := s.blog.ToggleLike(ctx, postID, userID)
	if err != nil {
		return false, 0, err
	}
	count, err := s.blog.CountLikes(ctx, postID)
	if err != nil {
		return liked, 0, err
	}
	return liked, count, nil
}
