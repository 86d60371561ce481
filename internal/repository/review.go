package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Aijazali515/AgriFarma/internal/model"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	FindByID(ctx context.Context, reviewID uint) (*model.Review, error)
	ListApprovedByProduct(ctx context.Context, productID uint) ([]model.Review, error)
	ListPending(ctx context.Context, limit int) ([]model.Review, error)
	SetApproved(ctx context.Context, reviewID uint, approved bool) error
	Delete(ctx context.Context, reviewID uint) error
	Count(ctx context.Context) (int64, error)
}

type reviewRepoImpl struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepoImpl{db: db}
}

func (r *reviewRepoImpl) Create(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepoImpl) FindByID(ctx context.Context, reviewID uint) (*model.Review, error) {
	var review model.Review
	err := r.db.WithContext(ctx).First(&review, reviewID).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepoImpl) ListApprovedByProduct(ctx context.Context, productID uint) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND approved = ?", productID, true).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepoImpl) ListPending(ctx context.Context, limit int) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.WithContext(ctx).
		Where("approved = ?", false).
		Order("created_at DESC").
		Limit(limit).
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepoImpl) SetApproved(ctx context.Context, reviewID uint, approved bool) error {
	result := r.db.WithContext(ctx).Model(&model.Review{}).
		Where("id = ?", reviewID).
		Update("approved", approved)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *reviewRepoImpl) Delete(ctx context.Context, reviewID uint) error {
	return r.db.WithContext(ctx).Delete(&model.Review{}, reviewID).Error
}

func (r *reviewRepoImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Review{}).Count(&count).Error
	return count, err
}
