package auth_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"leavedesk/internal/auth"
	autherrors "leavedesk/internal/auth/errors"
	"leavedesk/internal/session"
	"leavedesk/internal/viewgate"
)

type fakeAuthService struct {
	loginFn         func(ctx context.Context, form auth.LoginForm) (string, auth.LoginResponse, error)
	logoutFn        func(ctx context.Context, sid string) error
	meFn            func(ctx context.Context) (auth.ProfileResponse, error)
	updateProfileFn func(ctx context.Context, form auth.UpdateProfileForm) (auth.ProfileResponse, error)
}

func (f *fakeAuthService) Login(ctx context.Context, form auth.LoginForm) (string, auth.LoginResponse, error) {
	if f.loginFn != nil {
		return f.loginFn(ctx, form)
	}
	return "", auth.LoginResponse{}, nil
}

func (f *fakeAuthService) Logout(ctx context.Context, sid string) error {
	if f.logoutFn != nil {
		return f.logoutFn(ctx, sid)
	}
	return nil
}

func (f *fakeAuthService) Me(ctx context.Context) (auth.ProfileResponse, error) {
	if f.meFn != nil {
		return f.meFn(ctx)
	}
	return auth.ProfileResponse{}, nil
}

func (f *fakeAuthService) UpdateProfile(ctx context.Context, form auth.UpdateProfileForm) (auth.ProfileResponse, error) {
	if f.updateProfileFn != nil {
		return f.updateProfileFn(ctx, form)
	}
	return auth.ProfileResponse{}, nil
}

func newAuthRouter(t *testing.T, svc auth.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gate, err := viewgate.NewGate()
	assert.NoError(t, err)
	handler := auth.NewHandler(svc, gate)
	router := gin.New()
	router.POST("/auth/login", handler.Login)
	router.POST("/auth/logout", handler.Logout)
	return router
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("sets the session cookie and returns the landing view", func(t *testing.T) {
		svc := &fakeAuthService{
			loginFn: func(ctx context.Context, form auth.LoginForm) (string, auth.LoginResponse, error) {
				return "sid-1", auth.LoginResponse{Role: session.RoleManager}, nil
			},
		}
		router := newAuthRouter(t, svc)

		body, _ := json.Marshal(gin.H{"email": "jane@example.com", "password": "secret-pass"})
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		cookie := rec.Header().Get("Set-Cookie")
		assert.Contains(t, cookie, session.CookieName+"=sid-1")
		assert.Contains(t, cookie, "HttpOnly")

		var envelope struct {
			Data auth.LoginResponse `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.Equal(t, "/manager", envelope.Data.RedirectTo)
	})

	t.Run("bad credentials return 401 without a cookie", func(t *testing.T) {
		svc := &fakeAuthService{
			loginFn: func(ctx context.Context, form auth.LoginForm) (string, auth.LoginResponse, error) {
				return "", auth.LoginResponse{}, autherrors.ErrInvalidCredentials
			},
		}
		router := newAuthRouter(t, svc)

		body, _ := json.Marshal(gin.H{"email": "jane@example.com", "password": "wrong-pass"})
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, rec.Header().Get("Set-Cookie"))
	})

	t.Run("malformed email fails binding", func(t *testing.T) {
		router := newAuthRouter(t, &fakeAuthService{})

		body, _ := json.Marshal(gin.H{"email": "not-an-email", "password": "secret-pass"})
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	logged := ""
	svc := &fakeAuthService{
		logoutFn: func(ctx context.Context, sid string) error {
			logged = sid
			return nil
		},
	}
	router := newAuthRouter(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "sid-1"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "sid-1", logged)
	assert.Contains(t, rec.Header().Get("Set-Cookie"), session.CookieName+"=;")
}
