package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bootlang/internal/client/client"
	"github.com/dmitrijs2005/bootlang/internal/client/forms"
	"github.com/dmitrijs2005/bootlang/internal/client/session"
	"github.com/dmitrijs2005/bootlang/internal/common"
	"github.com/dustin/go-humanize"
)

// getSimpleText, getPassword and getConfirm are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getConfirm    = GetConfirm
)

// Login prompts for the password (and the username unless given) and
// starts a session. The password is wiped before returning.
func (a *App) Login(ctx context.Context, args []string) error {
	username, err := a.argOrPrompt(args, 0, "Enter username")
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.authService.Login(ctx, username, password)
	if err != nil {
		a.log.Warn(ctx, "login unsuccessful", "username", username, "error", err)
		return err
	}

	a.log.Info(ctx, "login successful", "username", user.Username)
	fmt.Fprintf(a.out, "Logged in as %s\n", user.Username)
	return nil
}

// Register creates an account. The server may sign the new user in right
// away; otherwise the user is asked to log in.
func (a *App) Register(ctx context.Context, args []string) error {
	username, err := a.argOrPrompt(args, 0, "Enter username")
	if err != nil {
		return err
	}
	email, err := a.prompt("Enter email (optional)")
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(a.out, "Confirm password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if !bytes.Equal(password, confirm) {
		return &forms.Error{Field: "ConfirmPassword", Message: "Passwords do not match"}
	}

	user, err := a.authService.Register(ctx, username, password, email)
	if err != nil {
		return err
	}

	if a.isLoggedIn() {
		fmt.Fprintf(a.out, "Registered and logged in as %s\n", user.Username)
	} else {
		fmt.Fprintln(a.out, "Registration successful. Please login.")
	}
	return nil
}

func (a *App) Logout(ctx context.Context, _ []string) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Whoami re-reads the user from the server. A rejected token ends the
// session; an unreachable server falls back to the cached user. ctx must
// carry the session (see session.WithAuth).
func (a *App) Whoami(ctx context.Context, _ []string) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	auth := session.FromContext(ctx)
	user, err := a.authService.Refresh(ctx)
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		fmt.Fprintln(a.out, "Session is no longer valid. Logged out.")
		return nil
	case err != nil:
		a.log.Warn(ctx, "refresh failed, showing cached user", "error", err)
		user = auth.User()
		if user == nil {
			return err
		}
	}

	role := "user"
	if user.IsAdmin {
		role = "admin"
	}
	fmt.Fprintf(a.out, "%s (id %d, %s)\n", user.Username, user.ID, role)
	if email := user.EmailOrEmpty(); email != "" {
		fmt.Fprintf(a.out, "Email: %s\n", email)
	}
	if c, ok := auth.Claims(); ok && !c.ExpiresAt.IsZero() {
		fmt.Fprintf(a.out, "Token expires %s\n", humanize.Time(c.ExpiresAt))
	}
	return nil
}
