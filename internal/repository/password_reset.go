package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Aijazali515/AgriFarma/internal/model"
)

type PasswordResetRepository interface {
	Create(ctx context.Context, token *model.PasswordResetToken) error
	FindByToken(ctx context.Context, token string) (*model.PasswordResetToken, error)
	MarkUsed(ctx context.Context, tx *gorm.DB, tokenID uint) error
}

type passwordResetRepoImpl struct {
	db *gorm.DB
}

func NewPasswordResetRepository(db *gorm.DB) PasswordResetRepository {
	return &passwordResetRepoImpl{db: db}
}

func (r *passwordResetRepoImpl) Create(ctx context.Context, token *model.PasswordResetToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *passwordResetRepoImpl) FindByToken(ctx context.Context, token string) (*model.PasswordResetToken, error) {
	var t model.PasswordResetToken
	err := r.db.WithContext(ctx).
		Where("token = ?", token).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *passwordResetRepoImpl) MarkUsed(ctx context.Context, tx *gorm.DB, tokenID uint) error {
	return tx.WithContext(ctx).Model(&model.PasswordResetToken{}).
		Where("id = ?", tokenID).
		Update("used", true).Error
}
