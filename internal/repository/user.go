package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Aijazali515/AgriFarma/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, tx *gorm.DB, user *model.User) error
	FindByID(ctx context.Context, userID uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Search(ctx context.Context, emailLike string, limit int) ([]model.User, error)
	FindJoinedSince(ctx context.Context, since time.Time, role string) ([]model.User, error)
	FindJoinedBetween(ctx context.Context, start, end time.Time, role string) ([]model.User, error)
	SetActive(ctx context.Context, userID uint, active bool) error
	UpdatePassword(ctx context.Context, tx *gorm.DB, userID uint, passwordHash string) error
	Count(ctx context.Context) (int64, error)

	CreateProfile(ctx context.Context, tx *gorm.DB, profile *model.Profile) error
	FindProfile(ctx context.Context, userID uint) (*model.Profile, error)
	UpdateProfile(ctx context.Context, profile *model.Profile) error
}

type userRepoImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepoImpl{db: db}
}

func (r *userRepoImpl) Create(ctx context.Context, tx *gorm.DB, user *model.User) error {
	return tx.WithContext(ctx).Create(user).Error
}

func (r *userRepoImpl) FindByID(ctx context.Context, userID uint) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, userID).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepoImpl) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepoImpl) Search(ctx context.Context, emailLike string, limit int) ([]model.User, error) {
	q := r.db.WithContext(ctx).Model(&model.User{})
	if emailLike != "" {
		q = q.Where("email LIKE ?", "%"+emailLike+"%")
	}

	var users []model.User
	err := q.Order("join_date DESC").Limit(limit).Find(&users).Error
	return users, err
}

func (r *userRepoImpl) FindJoinedSince(ctx context.Context, since time.Time, role string) ([]model.User, error) {
	q := r.db.WithContext(ctx).Where("join_date >= ?", since)
	if role != "" {
		q = q.Where("role = ?", role)
	}

	var users []model.User
	err := q.Find(&users).Error
	return users, err
}

func (r *userRepoImpl) FindJoinedBetween(ctx context.Context, start, end time.Time, role string) ([]model.User, error) {
	q := r.db.WithContext(ctx).Where("join_date >= ? AND join_date < ?", start, end)
	if role != "" {
		q = q.Where("role = ?", role)
	}

	var users []model.User
	err := q.Find(&users).Error
	return users, err
}

func (r *userRepoImpl) SetActive(ctx context.Context, userID uint, active bool) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Update("is_active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepoImpl) UpdatePassword(ctx context.Context, tx *gorm.DB, userID uint, passwordHash string) error {
	return tx.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Update("password_hash", passwordHash).Error
}

func (r *userRepoImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error
	return count, err
}

func (r *userRepoImpl) CreateProfile(ctx context.Context, tx *gorm.DB, profile *model.Profile) error {
	return tx.WithContext(ctx).Create(profile).Error
}

func (r *userRepoImpl) FindProfile(ctx context.Context, userID uint) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *userRepoImpl) UpdateProfile(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
