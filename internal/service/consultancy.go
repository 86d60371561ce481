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

type ConsultancyService interface {
	Apply(ctx context.Context, userID uint, req dto.ConsultantRequest) (*model.Consultant, error)
	Directory(ctx context.Context, category string) ([]model.Consultant, error)
	Pending(ctx context.Context) ([]model.Consultant, error)
	MyApplication(ctx context.Context, userID uint) (*model.Consultant, error)
}

type consultancyServiceImpl struct {
	consultants repository.ConsultancyRepository
}

func NewConsultancyService(consultants repository.ConsultancyRepository) ConsultancyService {
	return &consultancyServiceImpl{consultants: consultants}
}

func validConsultantCategory(category string) bool {
	for _, c := range model.ConsultantCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Apply registers a consultant application; it sits at Pending until an
// admin decides.
func (s *consultancyServiceImpl) Apply(ctx context.Context, userID uint, req dto.ConsultantRequest) (*model.Consultant, error) {
	if !validConsultantCategory(req.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, req.Category)
	}
	if strings.TrimSpace(req.ContactEmail) == "" || req.ExpertiseLevel == "" {
		return nil, fmt.Errorf("%w: contact email and expertise level are required", ErrInvalidInput)
	}

	if _, err := s.consultants.FindByUser(ctx, userID); err == nil {
		return nil, ErrAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	consultant := &model.Consultant{
		UserID:         userID,
		Category:       req.Category,
		ExpertiseLevel: req.ExpertiseLevel,
		ContactEmail:   strings.TrimSpace(req.ContactEmail),
		ApprovalStatus: model.ApprovalPending,
	}
	if err := s.consultants.Create(ctx, consultant); err != nil {
		return nil, fmt.Errorf("create consultant: %w", err)
	}
	return consultant, nil
}

// Directory lists approved consultants only.
func (s *consultancyServiceImpl) Directory(ctx context.Context, category string) ([]model.Consultant, error) {
	return s.consultants.ListApproved(ctx, category)
}

func (s *consultancyServiceImpl) Pending(ctx context.Context) ([]model.Consultant, error) {
	return s.consultants.ListByStatus(ctx, model.ApprovalPending)
}

func (s *consultancyServiceImpl) MyApplication(ctx context.Context, userID uint) (*model.Consultant, error) {
	consultant, err := s.consultants.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return consultant, nil
}
