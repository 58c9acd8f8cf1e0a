package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/bootlang/internal/client/models"
)

type CreateUserRequest struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	Email    *string `json:"email"`
	IsAdmin  bool    `json:"is_admin"`
}

type adminResponse struct {
	Result
	User  *models.User  `json:"user"`
	Users []models.User `json:"users"`
}

func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var resp adminResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/users", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*Result, error) {
	var resp adminResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/admin/users", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Result, nil
}

func (c *Client) DeleteUser(ctx context.Context, id int64) (*Result, error) {
	var resp Result
	if err := c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ResetPassword(ctx context.Context, id int64, newPassword string) (*Result, error) {
	body := map[string]string{"new_password": newPassword}
	var resp Result
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/admin/users/%d/reset-password", id), body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
