package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Aijazali515/AgriFarma/internal/dto"
	"github.com/Aijazali515/AgriFarma/internal/model"
	"github.com/Aijazali515/AgriFarma/internal/repository"
)

// ProfileView is a profile plus activity metrics derived from the forum.
type ProfileView struct {
	Profile       model.Profile `json:"profile"`
	Email         string        `json:"email"`
	Role          string        `json:"role"`
	PostsCount    int64         `json:"posts_count"`
	LikesReceived int64         `json:"likes_received"`
	LatestPosts   []model.Post  `json:"latest_posts"`
}

type ProfileService interface {
	View(ctx context.Context, userID uint) (*ProfileView, error)
	Update(ctx context.Context, userID uint, req dto.UpdateProfileRequest) error
	SetDisplayPicture(ctx context.Context, userID uint, filename string) error
}

type profileServiceImpl struct {
	users repository.UserRepository
	forum repository.ForumRepository
}

func NewProfileService(users repository.UserRepository, forum repository.ForumRepository) ProfileService {
	return &profileServiceImpl{users: users, forum: forum}
}

func (s *profileServiceImpl) View(ctx context.Context, userID uint) (*ProfileView, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	profile, err := s.users.FindProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	posts, err := s.forum.CountPostsByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}
	likes, err := s.forum.CountLikesReceived(ctx, userID)
	if err != nil {
		return nil, err
	}
	latest, err := s.forum.LatestPostsByAuthor(ctx, userID, 5)
	if err != nil {
		return nil, err
	}

	return &ProfileView{
		Profile:       *profile,
		Email:         user.Email,
		Role:          user.Role,
		PostsCount:    posts,
		LikesReceived: likes,
		LatestPosts:   latest,
	}, nil
}

func (s *profileServiceImpl) Update(ctx context.Context, userID uint, req dto.UpdateProfileRequest) error {
	profile, err := s.users.FindProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if req.Name != "" {
		profile.Name = req.Name
	}
	profile.Mobile = req.Mobile
	profile.City = req.City
	profile.State = req.State
	profile.Country = req.Country
	profile.Profession = req.Profession
	profile.ExpertiseLevel = req.ExpertiseLevel

	return s.users.UpdateProfile(ctx, profile)
}

func (s *profileServiceImpl) SetDisplayPicture(ctx context.Context, userID uint, filename string) error {
	profile, err := s.users.FindProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	profile.DisplayPicture = filename
	return s.users.UpdateProfile(ctx, profile)
}
