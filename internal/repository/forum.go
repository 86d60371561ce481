package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Aijazali515/AgriFarma/internal/model"
)

type ForumRepository interface {
	CreateCategory(ctx context.Context, category *model.Category) error
	ListCategories(ctx context.Context) ([]model.Category, error)

	CreateThread(ctx context.Context, thread *model.Thread) error
	FindThread(ctx context.Context, threadID uint) (*model.Thread, error)
	ListThreads(ctx context.Context, categoryID *uint, search string, limit int) ([]model.Thread, error)
	DeleteThread(ctx context.Context, threadID uint) error
	CountThreads(ctx context.Context) (int64, error)

	CreatePost(ctx context.Context, post *model.Post) error
	ListPosts(ctx context.Context, threadID uint) ([]model.Post, error)
	CountPostsByAuthor(ctx context.Context, authorID uint) (int64, error)
	LatestPostsByAuthor(ctx context.Context, authorID uint, limit int) ([]model.Post, error)

	ToggleLike(ctx context.Context, postID, userID uint) (liked bool, err error)
	CountLikes(ctx context.Context, postID uint) (int64, error)
	CountLikesReceived(ctx context.Context, authorID uint) (int64, error)
}

type forumRepoImpl struct {
	db *gorm.DB
}

func NewForumRepository(db *gorm.DB) ForumRepository {
	return &forumRepoImpl{db: db}
}

func (r *forumRepoImpl) CreateCategory(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(category).Error
}

func (r *forumRepoImpl) ListCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *forumRepoImpl) CreateThread(ctx context.Context, thread *model.Thread) error {
	return r.db.WithContext(ctx).Create(thread).Error
}

func (r *forumRepoImpl) FindThread(ctx context.Context, threadID uint) (*model.Thread, error) {
	var thread model.Thread
	err := r.db.WithContext(ctx).First(&thread, threadID).Error
	if err != nil {
		return nil, err
	}
	return &thread, nil
}

func (r *forumRepoImpl) ListThreads(ctx context.Context, categoryID *uint, search string, limit int) ([]model.Thread, error) {
	q := r.db.WithContext(ctx).Model(&model.Thread{})
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	if search != "" {
		q = q.Where("title LIKE ?", "%"+search+"%")
	}
	if limit <= 0 {
		limit = 50
	}

	var threads []model.Thread
	err := q.Order("created_at DESC").Limit(limit).Find(&threads).Error
	return threads, err
}

// DeleteThread removes the thread and its posts in one transaction; post
// likes go with their posts via FK cascade.
func (r *forumRepoImpl) DeleteThread(ctx context.Context, threadID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id IN (?)",
			tx.Model(&model.Post{}).Select("id").Where("thread_id = ?", threadID),
		).Delete(&model.PostLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("thread_id = ?", threadID).Delete(&model.Post{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Thread{}, threadID).Error
	})
}

func (r *forumRepoImpl) CountThreads(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Thread{}).Count(&count).Error
	return count, err
}

func (r *forumRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *forumRepoImpl) ListPosts(ctx context.Context, threadID uint) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.WithContext(ctx).
		Where("thread_id = ?", threadID).
		Order("created_at ASC").
		Find(&posts).Error
	return posts, err
}

func (r *forumRepoImpl) CountPostsByAuthor(ctx context.Context, authorID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Post{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	return count, err
}

func (r *forumRepoImpl) LatestPostsByAuthor(ctx context.Context, authorID uint, limit int) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (r *forumRepoImpl) ToggleLike(ctx context.Context, postID, userID uint) (bool, error) {
	var liked bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&model.PostLike{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			liked = false
			return nil
		}
		liked = true
		return tx.Create(&model.PostLike{PostID: postID, UserID: userID}).Error
	})
	return liked, err
}

func (r *forumRepoImpl) CountLikes(ctx context.Context, postID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.PostLike{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

// CountLikesReceived counts likes on posts authored by the given user.
func (r *forumRepoImpl) CountLikesReceived(ctx context.Context, authorID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.PostLike{}).
		Joins("JOIN posts ON posts.id = post_likes.post_id").
		Where("posts.author_id = ?", authorID).
		Count(&count).Error
	return count, err
}
