package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Aijazali515/AgriFarma/internal/config"
	"github.com/Aijazali515/AgriFarma/internal/dto"
	"github.com/Aijazali515/AgriFarma/internal/model"
	"github.com/Aijazali515/AgriFarma/internal/notify"
	"github.com/Aijazali515/AgriFarma/internal/repository"
)

const resetTokenValidity = 24 * time.Hour

type Claims struct {
	UserID uint   `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*dto.AuthResponse, error)
	ParseToken(token string) (*Claims, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type authServiceImpl struct {
	db       *gorm.DB
	users    repository.UserRepository
	resets   repository.PasswordResetRepository
	notifier notify.Notifier
	cfg      config.JWT
	baseURL  string
	logger   *zap.Logger
}

func NewAuthService(
	db *gorm.DB,
	users repository.UserRepository,
	resets repository.PasswordResetRepository,
	notifier notify.Notifier,
	cfg config.JWT,
	baseURL string,
	logger *zap.Logger,
) AuthService {
	return &authServiceImpl{
		db:       db,
		users:    users,
		resets:   resets,
		notifier: notifier,
		cfg:      cfg,
		baseURL:  baseURL,
		logger:   logger,
	}
}

func (s *authServiceImpl) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" || strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: email, password and name are required", ErrInvalidInput)
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleUser,
		IsActive:     true,
		JoinDate:     time.Now().UTC(),
	}

	// user and profile are created together or not at all
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.users.Create(ctx, tx, user); err != nil {
			return err
		}
		return s.users.CreateProfile(ctx, tx, &model.Profile{
			UserID:         user.ID,
			Name:           strings.TrimSpace(req.Name),
			Mobile:         req.Mobile,
			City:           req.City,
			State:          req.State,
			Country:        req.Country,
			Profession:     req.Profession,
			ExpertiseLevel: req.ExpertiseLevel,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("register user: %w", err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, UserID: user.ID, Role: user.Role}, nil
}

func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrBadCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, UserID: user.ID, Role: user.Role}, nil
}

func (s *authServiceImpl) issueToken(user *model.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.cfg.TTLHours) * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *authServiceImpl) ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalid
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// RequestPasswordReset always returns nil for unknown emails so the
// endpoint does not leak which addresses exist.
func (s *authServiceImpl) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	buf := make([]byte, 48)
	rand.Read(buf)
	tokenStr := base64.RawURLEncoding.EncodeToString(buf)

	now := time.Now().UTC()
	if err := s.resets.Create(ctx, &model.PasswordResetToken{
		UserID:    user.ID,
		Token:     tokenStr,
		CreatedAt: now,
		ExpiresAt: now.Add(resetTokenValidity),
	}); err != nil {
		return fmt.Errorf("create reset token: %w", err)
	}

	name := ""
	if profile, err := s.users.FindProfile(ctx, user.ID); err == nil {
		name = profile.Name
	}
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.baseURL, tokenStr)
	if err := s.notifier.SendPasswordReset(ctx, user.Email, resetURL, name); err != nil {
		s.logger.Warn("password reset email failed", zap.Uint("user_id", user.ID), zap.Error(err))
	}
	return nil
}

func (s *authServiceImpl) ResetPassword(ctx context.Context, tokenStr, newPassword string) error {
	if len(newPassword) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
	}

	token, err := s.resets.FindByToken(ctx, tokenStr)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTokenInvalid
		}
		return err
	}
	if !token.Valid(time.Now().UTC()) {
		return ErrTokenInvalid
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.users.UpdatePassword(ctx, tx, token.UserID, string(hash)); err != nil {
			return err
		}
		return s.resets.MarkUsed(ctx, tx, token.ID)
	})
}
