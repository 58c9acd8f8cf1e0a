package services

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/bootlang/internal/client/client"
	"github.com/dmitrijs2005/bootlang/internal/client/forms"
	"github.com/dmitrijs2005/bootlang/internal/client/models"
)

var ErrNoChanges = errors.New("no changes detected")

type AccountAPI interface {
	ChangePassword(ctx context.Context, current, next string) (*client.Result, error)
	UpdateProfile(ctx context.Context, upd client.ProfileUpdate) (*models.User, *client.Result, error)
}

type AccountService interface {
	ChangePassword(ctx context.Context, current, next, confirm []byte) error
	// UpdateProfile sends only the fields that differ from current and
	// returns the user as stored by the server.
	UpdateProfile(ctx context.Context, current *models.User, username, email string) (*models.User, error)
}

type accountService struct {
	api  AccountAPI
	auth SessionHolder
}

func NewAccountService(api AccountAPI, auth SessionHolder) AccountService {
	return &accountService{api: api, auth: auth}
}

func (s *accountService) ChangePassword(ctx context.Context, current, next, confirm []byte) error {
	form := forms.ChangePassword{
		CurrentPassword: string(current),
		NewPassword:     string(next),
		ConfirmPassword: string(confirm),
	}
	if err := forms.Validate(form); err != nil {
		return err
	}

	_, err := s.api.ChangePassword(ctx, form.CurrentPassword, form.NewPassword)
	return err
}

func (s *accountService) UpdateProfile(ctx context.Context, current *models.User, username, email string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	upd := diffProfile(current, username, email)
	if upd.Empty() {
		return nil, ErrNoChanges
	}
	if err := forms.Validate(forms.Profile{Username: username, Email: email}); err != nil {
		return nil, err
	}

	u, _, err := s.api.UpdateProfile(ctx, upd)
	if err != nil {
		return nil, err
	}
	if u != nil {
		if err := s.auth.UpdateUser(ctx, u); err != nil {
			return nil, err
		}
	}
	return u, nil
}

func diffProfile(current *models.User, username, email string) client.ProfileUpdate {
	var upd client.ProfileUpdate
	if current == nil || username != current.Username {
		upd.Username = &username
	}
	if email != current.EmailOrEmpty() {
		upd.Email = &email
	}
	return upd
}
