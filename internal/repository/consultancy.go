package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Aijazali515/AgriFarma/internal/model"
)

type ConsultancyRepository interface {
	Create(ctx context.Context, consultant *model.Consultant) error
	FindByID(ctx context.Context, consultantID uint) (*model.Consultant, error)
	FindByUser(ctx context.Context, userID uint) (*model.Consultant, error)
	ListApproved(ctx context.Context, category string) ([]model.Consultant, error)
	ListByStatus(ctx context.Context, status string) ([]model.Consultant, error)
	SetApprovalStatus(ctx context.Context, consultantID uint, status string) error
	CountApproved(ctx context.Context) (int64, error)
}

type consultancyRepoImpl struct {
	db *gorm.DB
}

func NewConsultancyRepository(db *gorm.DB) ConsultancyRepository {
	return &consultancyRepoImpl{db: db}
}

func (r *consultancyRepoImpl) Create(ctx context.Context, consultant *model.Consultant) error {
	return r.db.WithContext(ctx).Create(consultant).Error
}

func (r *consultancyRepoImpl) FindByID(ctx context.Context, consultantID uint) (*model.Consultant, error) {
	var consultant model.Consultant
	err := r.db.WithContext(ctx).First(&consultant, consultantID).Error
	if err != nil {
		return nil, err
	}
	return &consultant, nil
}

func (r *consultancyRepoImpl) FindByUser(ctx context.Context, userID uint) (*model.Consultant, error) {
	var consultant model.Consultant
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&consultant).Error
	if err != nil {
		return nil, err
	}
	return &consultant, nil
}

func (r *consultancyRepoImpl) ListApproved(ctx context.Context, category string) ([]model.Consultant, error) {
	q := r.db.WithContext(ctx).Where("approval_status = ?", model.ApprovalApproved)
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var consultants []model.Consultant
	err := q.Order("created_at DESC").Find(&consultants).Error
	return consultants, err
}

func (r *consultancyRepoImpl) ListByStatus(ctx context.Context, status string) ([]model.Consultant, error) {
	var consultants []model.Consultant
	err := r.db.WithContext(ctx).
		Where("approval_status = ?", status).
		Order("created_at DESC").
		Find(&consultants).Error
	return consultants, err
}

func (r *consultancyRepoImpl) SetApprovalStatus(ctx context.Context, consultantID uint, status string) error {
	result := r.db.WithContext(ctx).Model(&model.Consultant{}).
		Where("id = ?", consultantID).
		Update("approval_status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *consultancyRepoImpl) CountApproved(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Consultant{}).
		Where("approval_status = ?", model.ApprovalApproved).
		Count(&count).Error
	return count, err
}
