package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Aijazali515/AgriFarma/internal/config"
	"github.com/Aijazali515/AgriFarma/internal/dto"
	"github.com/Aijazali515/AgriFarma/internal/model"
	"github.com/Aijazali515/AgriFarma/internal/notify"
	"github.com/Aijazali515/AgriFarma/internal/repository"
)

func newAuthFixture(t *testing.T) (*gorm.DB, AuthService) {
	t.Helper()

	db := newTestDB(t)
	logger := zap.NewNop()
	auth := NewAuthService(
		db,
		repository.NewUserRepository(db),
		repository.NewPasswordResetRepository(db),
		notify.NewLogNotifier(logger),
		config.JWT{Secret: "test-secret", TTLHours: 1},
		"http://localhost:8080",
		logger,
	)
	return db, auth
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	db, auth := newAuthFixture(t)

	resp, err := auth.Register(ctx, dto.RegisterRequest{
		Email:    "Farmer@Example.com",
		Password: "password123",
		Name:     "Ali",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, model.RoleUser, resp.Role)

	// email is normalized to lower case
	var user model.User
	require.NoError(t, db.Where("email = ?", "farmer@example.com").First(&user).Error)

	// profile is created alongside the user
	var profile model.Profile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)
	assert.Equal(t, "Ali", profile.Name)

	login, err := auth.Login(ctx, "farmer@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, login.UserID)

	claims, err := auth.ParseToken(login.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, model.RoleUser, claims.Role)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	_, auth := newAuthFixture(t)

	_, err := auth.Register(ctx, dto.RegisterRequest{Email: "a@b.com", Password: "short", Name: "Ali"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = auth.Register(ctx, dto.RegisterRequest{Email: "a@b.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidInput, "name is required")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	_, auth := newAuthFixture(t)

	req := dto.RegisterRequest{Email: "a@b.com", Password: "password123", Name: "Ali"}
	_, err := auth.Register(ctx, req)
	require.NoError(t, err)

	_, err = auth.Register(ctx, req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginFailures(t *testing.T) {
	ctx := context.Background()
	db, auth := newAuthFixture(t)

	_, err := auth.Register(ctx, dto.RegisterRequest{Email: "a@b.com", Password: "password123", Name: "Ali"})
	require.NoError(t, err)

	_, err = auth.Login(ctx, "a@b.com", "wrong-password")
	assert.ErrorIs(t, err, ErrBadCredentials)

	_, err = auth.Login(ctx, "nobody@b.com", "password123")
	assert.ErrorIs(t, err, ErrBadCredentials)

	require.NoError(t, db.Model(&model.User{}).Where("email = ?", "a@b.com").
		Update("is_active", false).Error)
	_, err = auth.Login(ctx, "a@b.com", "password123")
	assert.ErrorIs(t, err, ErrAccountDisabled)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, auth := newAuthFixture(t)

	_, err := auth.ParseToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestPasswordResetFlow(t *testing.T) {
	ctx := context.Background()
	db, auth := newAuthFixture(t)

	_, err := auth.Register(ctx, dto.RegisterRequest{Email: "a@b.com", Password: "password123", Name: "Ali"})
	require.NoError(t, err)

	// unknown email is silently accepted
	require.NoError(t, auth.RequestPasswordReset(ctx, "nobody@b.com"))
	var tokenCount int64
	require.NoError(t, db.Model(&model.PasswordResetToken{}).Count(&tokenCount).Error)
	assert.Zero(t, tokenCount)

	require.NoError(t, auth.RequestPasswordReset(ctx, "a@b.com"))

	var token model.PasswordResetToken
	require.NoError(t, db.First(&token).Error)

	require.NoError(t, auth.ResetPassword(ctx, token.Token, "newpassword456"))

	_, err = auth.Login(ctx, "a@b.com", "newpassword456")
	require.NoError(t, err)
	_, err = auth.Login(ctx, "a@b.com", "password123")
	assert.ErrorIs(t, err, ErrBadCredentials)

	// token is single use
	err = auth.ResetPassword(ctx, token.Token, "anotherpass789")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
