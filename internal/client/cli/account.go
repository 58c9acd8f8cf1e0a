package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bootlang/internal/common"
)

// clearValue in the email prompt removes the address.
const clearValue = "-"

// Profile asks for a new username and email. An empty answer keeps the
// current value.
func (a *App) Profile(ctx context.Context, _ []string) error {
	u := a.auth.User()
	if u == nil {
		return a.show(ctx, a.views.settings, nil)
	}

	username, err := a.prompt(fmt.Sprintf("Username [%s]", u.Username))
	if err != nil {
		return err
	}
	if username == "" {
		username = u.Username
	}

	email, err := a.prompt(fmt.Sprintf("Email [%s] (%s to clear)", u.EmailOrEmpty(), clearValue))
	if err != nil {
		return err
	}
	switch email {
	case "":
		email = u.EmailOrEmpty()
	case clearValue:
		email = ""
	}

	v := a.views.settings
	return a.show(ctx, v, v.UpdateProfile(ctx, username, email))
}

func (a *App) ChangePassword(ctx context.Context, _ []string) error {
	current, err := getPassword(a.out, "Current password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(current)

	next, err := getPassword(a.out, "New password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(next)

	confirm, err := getPassword(a.out, "Confirm new password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	v := a.views.settings
	return a.show(ctx, v, v.ChangePassword(ctx, current, next, confirm))
}
