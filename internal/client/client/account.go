package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/bootlang/internal/client/models"
)

// ProfileUpdate carries only the fields that changed. A non-nil Email that
// points to "" clears the address and is sent as null.
type ProfileUpdate struct {
	Username *string
	Email    *string
}

func (p ProfileUpdate) Empty() bool { return p.Username == nil && p.Email == nil }

func (p ProfileUpdate) body() map[string]any {
	m := make(map[string]any, 2)
	if p.Username != nil {
		m["username"] = *p.Username
	}
	if p.Email != nil {
		if *p.Email == "" {
			m["email"] = nil
		} else {
			m["email"] = *p.Email
		}
	}
	return m
}

type profileResponse struct {
	Result
	User *models.User `json:"user"`
}

func (c *Client) ChangePassword(ctx context.Context, current, next string) (*Result, error) {
	body := map[string]string{
		"current_password": current,
		"new_password":     next,
	}
	var resp Result
	if err := c.doJSON(ctx, http.MethodPut, "/api/user/password", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateProfile returns the updated user as the backend sees it.
func (c *Client) UpdateProfile(ctx context.Context, upd ProfileUpdate) (*models.User, *Result, error) {
	var resp profileResponse
	if err := c.doJSON(ctx, http.MethodPut, "/api/user/profile", upd.body(), &resp); err != nil {
		return nil, nil, err
	}
	return resp.User, &resp.Result, nil
}
