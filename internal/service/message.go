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

type MessageService interface {
	Send(ctx context.Context, senderID uint, req dto.MessageRequest) (*model.Message, error)
	Inbox(ctx context.Context, userID uint) ([]model.Message, error)
	Sent(ctx context.Context, userID uint) ([]model.Message, error)
	MarkRead(ctx context.Context, userID, messageID uint) error
	UnreadCount(ctx context.Context, userID uint) (int64, error)
}

type messageServiceImpl struct {
	messages repository.MessageRepository
	users    repository.UserRepository
}

func NewMessageService(messages repository.MessageRepository, users repository.UserRepository) MessageService {
	return &messageServiceImpl{messages: messages, users: users}
}

func (s *messageServiceImpl) Send(ctx context.Context, senderID uint, req dto.MessageRequest) (*model.Message, error) {
	if strings.TrimSpace(req.Subject) == "" || strings.TrimSpace(req.Content) == "" {
		return nil, fmt.Errorf("%w: subject and content are required", ErrInvalidInput)
	}
	if req.ReceiverID == senderID {
		return nil, fmt.Errorf("%w: cannot message yourself", ErrInvalidInput)
	}
	if _, err := s.users.FindByID(ctx, req.ReceiverID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	message := &model.Message{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Subject:    strings.TrimSpace(req.Subject),
		Content:    req.Content,
	}
	if err := s.messages.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	return message, nil
}

func (s *messageServiceImpl) Inbox(ctx context.Context, userID uint) ([]model.Message, error) {
	return s.messages.Inbox(ctx, userID)
}

func (s *messageServiceImpl) Sent(ctx context.Context, userID uint) ([]model.Message, error) {
	return s.messages.Sent(ctx, userID)
}

// MarkRead is receiver-only.
func (s *messageServiceImpl) MarkRead(ctx context.Context, userID, messageID uint) error {
	message, err := s.messages.FindByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if message.ReceiverID != userID {
		return ErrForbidden
	}
	return s.messages.MarkRead(ctx, messageID)
}

func (s *messageServiceImpl) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	return s.messages.CountUnread(ctx, userID)
}
