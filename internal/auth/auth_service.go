package auth

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	autherrors "leavedesk/internal/auth/errors"
	"leavedesk/internal/session"
	"leavedesk/internal/shared/apperror"
	"leavedesk/internal/shared/cache"
	"leavedesk/internal/shared/contextutil"
	"leavedesk/internal/upstream"
)

type Service interface {
	Login(ctx context.Context, form LoginForm) (string, LoginResponse, error)
	Logout(ctx context.Context, sid string) error
	Me(ctx context.Context) (ProfileResponse, error)
	UpdateProfile(ctx context.Context, form UpdateProfileForm) (ProfileResponse, error)
}

type service struct {
	api      upstream.AuthAPI
	sessions *session.Store
	cache    *cache.TagCache
	logger   *zap.Logger
}

func NewService(api upstream.AuthAPI, sessions *session.Store, tagCache *cache.TagCache, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{api: api, sessions: sessions, cache: tagCache, logger: l}
}

var knownRoles = map[string]bool{
	session.RoleEmployee: true,
	session.RoleManager:  true,
	session.RoleAdmin:    true,
}

// Login authenticates against the HR core, then establishes the gateway
// session that carries the returned token and role. Returns the session id
// for the cookie.
func (s *service) Login(ctx context.Context, form LoginForm) (string, LoginResponse, error) {
	result, err := s.api.Login(ctx, upstream.LoginRequest{Email: form.Email, Password: form.Password})
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.HTTPStatus == http.StatusUnauthorized {
			s.logger.Info("login rejected", zap.String("email", form.Email))
			return "", LoginResponse{}, autherrors.ErrInvalidCredentials
		}
		s.logger.Error("login upstream call failed", zap.Error(err))
		return "", LoginResponse{}, err
	}

	if !knownRoles[result.Role] {
		s.logger.Error("login returned unknown role", zap.String("role", result.Role))
		return "", LoginResponse{}, autherrors.ErrUnknownRole
	}

	// Resolve the profile once so the session knows who it belongs to.
	authed := contextutil.WithAccessToken(ctx, result.Token)
	me, err := s.api.Me(authed)
	if err != nil {
		s.logger.Error("login profile lookup failed", zap.Error(err))
		return "", LoginResponse{}, err
	}

	sid, err := s.sessions.Login(ctx, session.Session{
		Token:      result.Token,
		Role:       result.Role,
		EmployeeID: me.ID,
		Email:      me.Email,
	})
	if err != nil {
		s.logger.Error("session create failed", zap.Error(err))
		return "", LoginResponse{}, autherrors.ErrSessionCreateFailed
	}

	s.logger.Info("login success",
		zap.String("employee_id", me.ID),
		zap.String("role", result.Role),
	)
	return sid, LoginResponse{Role: result.Role}, nil
}

func (s *service) Logout(ctx context.Context, sid string) error {
	return s.sessions.Logout(ctx, sid)
}

func (s *service) Me(ctx context.Context) (ProfileResponse, error) {
	me, err := s.api.Me(ctx)
	if err != nil {
		return ProfileResponse{}, err
	}
	return mapProfile(me), nil
}

// UpdateProfile pushes the caller's own edits upstream. The employee
// directory refetches on its next read.
func (s *service) UpdateProfile(ctx context.Context, form UpdateProfileForm) (ProfileResponse, error) {
	updated, err := s.api.UpdateProfile(ctx, upstream.UpdateProfileRequest{
		FirstName:   form.FirstName,
		LastName:    form.LastName,
		PhoneNumber: form.PhoneNumber,
	})
	if err != nil {
		return ProfileResponse{}, err
	}

	s.cache.Invalidate(ctx, cache.TagEmployees)
	s.logger.Info("profile updated", zap.String("employee_id", updated.ID))
	return mapProfile(updated), nil
}

func mapProfile(e upstream.Employee) ProfileResponse {
	return ProfileResponse{
		ID:          e.ID,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		Email:       e.Email,
		PhoneNumber: e.PhoneNumber,
		Role:        e.Role,
		Department:  e.Department,
	}
}
