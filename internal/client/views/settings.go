package views

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/bootlang/internal/client/services"
)

// UserSettings lets the logged-in user edit the profile and password.
type UserSettings struct {
	Base
	svc  services.AccountService
	auth AuthState
}

func NewUserSettings(svc services.AccountService, auth AuthState) *UserSettings {
	return &UserSettings{svc: svc, auth: auth}
}

func (v *UserSettings) UpdateProfile(ctx context.Context, username, email string) error {
	if !v.auth.IsAuthenticated() {
		return ErrRedirect
	}
	cctx, op, err := v.Begin(ctx)
	if err != nil {
		return err
	}

	_, err = v.svc.UpdateProfile(cctx, v.auth.User(), username, email)
	if ferr := v.Finish(op, func(s *State) {
		switch {
		case errors.Is(err, services.ErrNoChanges):
			s.Error = "No changes detected"
		case err != nil:
			s.Error = ErrorText(err, "Failed to update profile")
		default:
			s.Success = "Profile updated successfully"
		}
	}); ferr != nil {
		return ferr
	}
	return err
}

func (v *UserSettings) ChangePassword(ctx context.Context, current, next, confirm []byte) error {
	if !v.auth.IsAuthenticated() {
		return ErrRedirect
	}
	cctx, op, err := v.Begin(ctx)
	if err != nil {
		return err
	}

	err = v.svc.ChangePassword(cctx, current, next, confirm)
	if ferr := v.Finish(op, func(s *State) {
		if err != nil {
			s.Error = ErrorText(err, "Failed to change password")
			return
		}
		s.Success = "Password changed successfully"
	}); ferr != nil {
		return ferr
	}
	return err
}

func (v *UserSettings) Render(w io.Writer) error {
	u := v.auth.User()
	if u == nil {
		return nil
	}
	if err := RenderTitle(w, "User Settings"); err != nil {
		return err
	}
	if err := RenderState(w, v.State()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Username: %s\nEmail:    %s\nRole:     %s\n", u.Username, OrDash(u.EmailOrEmpty()), u.Role())
	return err
}
