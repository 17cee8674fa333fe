package upstream

import (
	"context"
	"net/http"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// AuthAPI covers authentication and the caller's own profile.
type AuthAPI interface {
	Login(ctx context.Context, req LoginRequest) (LoginResult, error)
	Me(ctx context.Context) (Employee, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (Employee, error)
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (LoginResult, error) {
	var out LoginResult
	err := c.do(ctx, http.MethodPost, "/login", nil, req, &out)
	return out, err
}

func (c *Client) Me(ctx context.Context) (Employee, error) {
	var out Employee
	err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &out)
	return out, err
}

func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (Employee, error) {
	var out Employee
	err := c.do(ctx, http.MethodPatch, "/employees/profile", nil, req, &out)
	return out, err
}
