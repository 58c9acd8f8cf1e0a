package views

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/bootlang/internal/client/client"
	"github.com/dmitrijs2005/bootlang/internal/client/forms"
	"github.com/dmitrijs2005/bootlang/internal/client/models"
	"github.com/samber/lo"
)

// AuthState is the read side of *session.Auth.
type AuthState interface {
	IsAuthenticated() bool
	IsAdmin() bool
	User() *models.User
}

type AdminAPI interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, req client.CreateUserRequest) (*client.Result, error)
	DeleteUser(ctx context.Context, id int64) (*client.Result, error)
	ResetPassword(ctx context.Context, id int64, newPassword string) (*client.Result, error)
}

// Confirm asks the user a yes/no question.
type Confirm func(prompt string) bool

// AdminPanel manages backend user accounts. Only admins may use it.
type AdminPanel struct {
	Base
	api   AdminAPI
	auth  AuthState
	users []models.User
}

func NewAdminPanel(api AdminAPI, auth AuthState) *AdminPanel {
	return &AdminPanel{api: api, auth: auth}
}

func (v *AdminPanel) guard() error {
	if !v.auth.IsAdmin() {
		return ErrRedirect
	}
	return nil
}

// Users returns the loaded list in server order.
func (v *AdminPanel) Users() []models.User {
	var out []models.User
	v.Do(func() { out = append(out, v.users...) })
	return out
}

func (v *AdminPanel) Load(ctx context.Context) error {
	if err := v.guard(); err != nil {
		return err
	}
	cctx, op, err := v.Begin(ctx)
	if err != nil {
		return err
	}

	users, err := v.api.ListUsers(cctx)
	if ferr := v.Finish(op, func(s *State) {
		if err != nil {
			s.Error = client.ErrorMessage(err, "Failed to load users")
			return
		}
		v.users = users
	}); ferr != nil {
		return ferr
	}
	return err
}

// Refresh reloads the user list.
func (v *AdminPanel) Refresh(ctx context.Context) error { return v.Load(ctx) }

func (v *AdminPanel) AddUser(ctx context.Context, form forms.NewUser) error {
	if err := v.guard(); err != nil {
		return err
	}
	form.Username = strings.TrimSpace(form.Username)
	form.Email = strings.TrimSpace(form.Email)
	if err := forms.Validate(form); err != nil {
		v.Fail(err.Error())
		return err
	}

	cctx, op, err := v.Begin(ctx)
	if err != nil {
		return err
	}

	req := client.CreateUserRequest{Username: form.Username, Password: form.Password, IsAdmin: form.IsAdmin}
	if form.Email != "" {
		req.Email = &form.Email
	}

	_, err = v.api.CreateUser(cctx, req)
	var users []models.User
	var listErr error
	if err == nil {
		users, listErr = v.api.ListUsers(cctx)
	}

	if ferr := v.Finish(op, func(s *State) {
		if err != nil {
			s.Error = client.ErrorMessage(err, "Failed to create user")
			return
		}
		s.Success = fmt.Sprintf("User '%s' created successfully", form.Username)
		if listErr != nil {
			s.Error = client.ErrorMessage(listErr, "Failed to load users")
			return
		}
		v.users = users
	}); ferr != nil {
		return ferr
	}
	return err
}

// DeleteUser removes a user after confirm agrees. A declined confirmation
// is not an error and sends nothing.
func (v *AdminPanel) DeleteUser(ctx context.Context, id int64, confirm Confirm) error {
	if err := v.guard(); err != nil {
		return err
	}

	name := strconv.FormatInt(id, 10)
	v.Do(func() {
		if u, ok := lo.Find(v.users, func(u models.User) bool { return u.ID == id }); ok {
			name = u.Username
		}
	})
	if confirm != nil && !confirm(fmt.Sprintf("Are you sure you want to delete user '%s'?", name)) {
		return nil
	}

	cctx, op, err := v.Begin(ctx)
	if err != nil {
		return err
	}

	res, err := v.api.DeleteUser(cctx, id)
	var users []models.User
	var listErr error
	if err == nil {
		users, listErr = v.api.ListUsers(cctx)
	}

	if ferr := v.Finish(op, func(s *State) {
		if err != nil {
			s.Error = client.ErrorMessage(err, "Failed to delete user")
			return
		}
		s.Success = res.Message
		if listErr != nil {
			s.Error = client.ErrorMessage(listErr, "Failed to load users")
			return
		}
		v.users = users
	}); ferr != nil {
		return ferr
	}
	return err
}

func (v *AdminPanel) ResetPassword(ctx context.Context, id int64, newPassword string) error {
	if err := v.guard(); err != nil {
		return err
	}
	if err := forms.Validate(forms.ResetPassword{NewPassword: newPassword}); err != nil {
		v.Fail(err.Error())
		return err
	}

	cctx, op, err := v.Begin(ctx)
	if err != nil {
		return err
	}

	res, err := v.api.ResetPassword(cctx, id, newPassword)
	if ferr := v.Finish(op, func(s *State) {
		if err != nil {
			s.Error = client.ErrorMessage(err, "Failed to reset password")
			return
		}
		s.Success = res.Message
	}); ferr != nil {
		return ferr
	}
	return err
}

// Render writes nothing for non-admins.
func (v *AdminPanel) Render(w io.Writer) error {
	if v.guard() != nil {
		return nil
	}

	st := v.State()
	users := v.Users()

	if err := RenderTitle(w, "Admin Panel - User Management"); err != nil {
		return err
	}
	if err := RenderState(w, st); err != nil {
		return err
	}
	if len(users) == 0 {
		_, err := fmt.Fprintln(w, "No users.")
		return err
	}

	rows := lo.Map(users, func(u models.User, _ int) []string {
		return []string{
			strconv.FormatInt(u.ID, 10),
			u.Username,
			OrDash(u.EmailOrEmpty()),
			u.Role(),
			HumanTime(u.CreatedAt),
		}
	})
	return RenderTable(w, []string{"ID", "Username", "Email", "Role", "Created"}, rows)
}
