package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"bakery-be/internal/user"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (string, *user.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*user.User), args.Error(2)
}

func TestLoginHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("Login", mock.Anything, "admin@bakery.local", "123456").
			Return("signed-token", &user.User{
				ID:    1,
				Name:  "Admin",
				Email: "admin@bakery.local",
				Role:  user.RoleAdmin,
			}, nil)

		h := NewAuthHandler(svc)

		e := echo.New()
		rec := httptest.NewRecorder()
		body := `{"email":"admin@bakery.local","password":"123456"}`
		c := e.NewContext(jsonRequest(http.MethodPost, "/login", body), rec)

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBody(t, rec)
		assert.Equal(t, "Giriş başarılı", resp["message"])
		assert.Equal(t, "signed-token", resp["token"])

		u, ok := resp["user"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, user.RoleAdmin, u["role"])
	})

	t.Run("MissingFields", func(t *testing.T) {
		svc := new(MockUserService)
		h := NewAuthHandler(svc)

		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(jsonRequest(http.MethodPost, "/login", `{"email":"admin@bakery.local"}`), rec)

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		svc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("BadCredentials", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("Login", mock.Anything, "admin@bakery.local", "wrong").
			Return("", nil, user.ErrInvalidCredentials)

		h := NewAuthHandler(svc)

		e := echo.New()
		rec := httptest.NewRecorder()
		body := `{"email":"admin@bakery.local","password":"wrong"}`
		c := e.NewContext(jsonRequest(http.MethodPost, "/login", body), rec)

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "E-posta veya şifre hatalı", decodeBody(t, rec)["message"])
	})
}

func TestLogoutHandler(t *testing.T) {
	h := NewAuthHandler(new(MockUserService))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/api/logout", ""), rec)

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Çıkış yapıldı", decodeBody(t, rec)["message"])
}

