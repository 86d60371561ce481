package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aijazali515/AgriFarma/internal/dto"
	"github.com/Aijazali515/AgriFarma/internal/model"
	"github.com/Aijazali515/AgriFarma/internal/service"
)

// stubAuth accepts exactly one token and returns fixed claims for it.
type stubAuth struct {
	token  string
	claims service.Claims
}

func (s *stubAuth) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	return nil, nil
}

func (s *stubAuth) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	return nil, nil
}

func (s *stubAuth) ParseToken(token string) (*service.Claims, error) {
	if token != s.token {
		return nil, service.ErrTokenInvalid
	}
	c := s.claims
	return &c, nil
}

func (s *stubAuth) RequestPasswordReset(ctx context.Context, email string) error { return nil }

func (s *stubAuth) ResetPassword(ctx context.Context, token, newPassword string) error { return nil }

func request(t *testing.T, mw []echo.MiddlewareFunc, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	h := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	e.GET("/protected", h)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth(t *testing.T) {
	auth := &stubAuth{token: "good-token", claims: service.Claims{UserID: 7, Role: model.RoleUser}}
	mw := []echo.MiddlewareFunc{RequireAuth(auth)}

	assert.Equal(t, http.StatusUnauthorized, request(t, mw, "").Code)
	assert.Equal(t, http.StatusUnauthorized, request(t, mw, "Bearer wrong").Code)
	assert.Equal(t, http.StatusUnauthorized, request(t, mw, "good-token").Code, "missing Bearer prefix")
	assert.Equal(t, http.StatusOK, request(t, mw, "Bearer good-token").Code)
}

func TestRequireAuthSetsContext(t *testing.T) {
	auth := &stubAuth{token: "good-token", claims: service.Claims{UserID: 7, Role: model.RoleAdmin}}

	e := echo.New()
	e.GET("/whoami", func(c echo.Context) error {
		assert.Equal(t, uint(7), UserID(c))
		assert.Equal(t, model.RoleAdmin, Role(c))
		return c.NoContent(http.StatusOK)
	}, RequireAuth(auth))

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good-token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	user := &stubAuth{token: "user-token", claims: service.Claims{UserID: 1, Role: model.RoleUser}}
	admin := &stubAuth{token: "admin-token", claims: service.Claims{UserID: 2, Role: model.RoleAdmin}}

	userMW := []echo.MiddlewareFunc{RequireAuth(user), RequireAdmin()}
	adminMW := []echo.MiddlewareFunc{RequireAuth(admin), RequireAdmin()}

	assert.Equal(t, http.StatusForbidden, request(t, userMW, "Bearer user-token").Code)
	assert.Equal(t, http.StatusOK, request(t, adminMW, "Bearer admin-token").Code)
}
