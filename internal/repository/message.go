package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Aijazali515/AgriFarma/internal/model"
)

type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) error
	FindByID(ctx context.Context, messageID uint) (*model.Message, error)
	Inbox(ctx context.Context, userID uint) ([]model.Message, error)
	Sent(ctx context.Context, userID uint) ([]model.Message, error)
	MarkRead(ctx context.Context, messageID uint) error
	CountUnread(ctx context.Context, userID uint) (int64, error)
}

type messageRepoImpl struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepoImpl{db: db}
}

func (r *messageRepoImpl) Create(ctx context.Context, message *model.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *messageRepoImpl) FindByID(ctx context.Context, messageID uint) (*model.Message, error) {
	var message model.Message
	err := r.db.WithContext(ctx).First(&message, messageID).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *messageRepoImpl) Inbox(ctx context.Context, userID uint) ([]model.Message, error) {
	var messages []model.Message
	err := r.db.WithContext(ctx).
		Where("receiver_id = ?", userID).
		Order("created_at DESC").
		Find(&messages).Error
	return messages, err
}

func (r *messageRepoImpl) Sent(ctx context.Context, userID uint) ([]model.Message, error) {
	var messages []model.Message
	err := r.db.WithContext(ctx).
		Where("sender_id = ?", userID).
		Order("created_at DESC").
		Find(&messages).Error
	return messages, err
}

func (r *messageRepoImpl) MarkRead(ctx context.Context, messageID uint) error {
	result := r.db.WithContext(ctx).Model(&model.Message{}).
		Where("id = ?", messageID).
		Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *messageRepoImpl) CountUnread(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Message{}).
		Where("receiver_id = ? AND read = ?", userID, false).
		Count(&count).Error
	return count, err
}
