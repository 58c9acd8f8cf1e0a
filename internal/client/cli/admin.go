package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bootlang/internal/client/forms"
	"github.com/dmitrijs2005/bootlang/internal/client/views"
	"github.com/dmitrijs2005/bootlang/internal/common"
)

func (a *App) Welcome(_ context.Context, _ []string) error {
	info := views.WelcomeInfo{
		UserName:    a.config.Welcome.UserName,
		ProjectName: a.config.Welcome.ProjectName,
		GithubURL:   a.config.Welcome.GithubURL,
	}
	if info.UserName == "" {
		if u := a.auth.User(); u != nil {
			info.UserName = u.Username
		}
	}
	return views.NewWelcome(info).Render(a.out)
}

func (a *App) Users(ctx context.Context, _ []string) error {
	v := a.views.admin
	return a.show(ctx, v, v.Load(ctx))
}

func (a *App) AddUser(ctx context.Context, args []string) error {
	var form forms.NewUser
	var err error

	if form.Username, err = a.argOrPrompt(args, 0, "Enter username"); err != nil {
		return err
	}
	if form.Email, err = a.prompt("Enter email (optional)"); err != nil {
		return err
	}
	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	form.Password = string(password)
	form.IsAdmin = a.confirm("Grant admin rights?")

	v := a.views.admin
	return a.show(ctx, v, v.AddUser(ctx, form))
}

func (a *App) DeleteUser(ctx context.Context, args []string) error {
	id, err := parseID(args, "deluser <id>")
	if err != nil {
		return err
	}
	v := a.views.admin
	return a.show(ctx, v, v.DeleteUser(ctx, id, a.confirm))
}

func (a *App) ResetPassword(ctx context.Context, args []string) error {
	id, err := parseID(args, "resetpw <id>")
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, fmt.Sprintf("New password for user %d", id))
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	v := a.views.admin
	return a.show(ctx, v, v.ResetPassword(ctx, id, string(password)))
}
