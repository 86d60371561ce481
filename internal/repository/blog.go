package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Aijazali515/AgriFarma/internal/model"
)

type BlogRepository interface {
	Create(ctx context.Context, post *model.BlogPost) error
	FindByID(ctx context.Context, postID uint) (*model.BlogPost, error)
	ListApproved(ctx context.Context, category, search string, limit int) ([]model.BlogPost, error)
	ListPending(ctx context.Context) ([]model.BlogPost, error)
	Update(ctx context.Context, post *model.BlogPost) error
	SetApproved(ctx context.Context, postID uint, approved bool) error
	Delete(ctx context.Context, postID uint) error
	CountByApproval(ctx context.Context, approved bool) (int64, error)

	CreateComment(ctx context.Context, comment *model.Comment) error
	ListComments(ctx context.Context, postID uint) ([]model.Comment, error)

	ToggleLike(ctx context.Context, postID, userID uint) (liked bool, err error)
	CountLikes(ctx context.Context, postID uint) (int64, error)
}

type blogRepoImpl struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepoImpl{db: db}
}

func (r *blogRepoImpl) Create(ctx context.Context, post *model.BlogPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *blogRepoImpl) FindByID(ctx context.Context, postID uint) (*model.BlogPost, error) {
	var post model.BlogPost
	err := r.db.WithContext(ctx).First(&post, postID).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *blogRepoImpl) ListApproved(ctx context.Context, category, search string, limit int) ([]model.BlogPost, error) {
	q := r.db.WithContext(ctx).Model(&model.BlogPost{}).Where("approved = ?", true)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("title LIKE ? OR content LIKE ? OR tags LIKE ?", like, like, like)
	}
	if limit <= 0 {
		limit = 50
	}

	var posts []model.BlogPost
	err := q.Order("created_at DESC").Limit(limit).Find(&posts).Error
	return posts, err
}

func (r *blogRepoImpl) ListPending(ctx context.Context) ([]model.BlogPost, error) {
	var posts []model.BlogPost
	err := r.db.WithContext(ctx).
		Where("approved = ?", false).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (r *blogRepoImpl) Update(ctx context.Context, post *model.BlogPost) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *blogRepoImpl) SetApproved(ctx context.Context, postID uint, approved bool) error {
	result := r.db.WithContext(ctx).Model(&model.BlogPost{}).
		Where("id = ?", postID).
		Update("approved", approved)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *blogRepoImpl) Delete(ctx context.Context, postID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("blog_id = ?", postID).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("blog_id = ?", postID).Delete(&model.BlogLike{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.BlogPost{}, postID).Error
	})
}

func (r *blogRepoImpl) CountByApproval(ctx context.Context, approved bool) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.BlogPost{}).
		Where("approved = ?", approved).
		Count(&count).Error
	return count, err
}

func (r *blogRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *blogRepoImpl) ListComments(ctx context.Context, postID uint) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.WithContext(ctx).
		Where("blog_id = ? AND approved = ?", postID, true).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

func (r *blogRepoImpl) ToggleLike(ctx context.Context, postID, userID uint) (bool, error) {
	var liked bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("blog_id = ? AND user_id = ?", postID, userID).Delete(&model.BlogLike{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			liked = false
			return nil
		}
		liked = true
		return tx.Create(&model.BlogLike{BlogID: postID, UserID: userID}).Error
	})
	return liked, err
}

func (r *blogRepoImpl) CountLikes(ctx context.Context, postID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.BlogLike{}).
		Where("blog_id = ?", postID).
		Count(&count).Error
	return count, err
}
