package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/bootlang/internal/client/client"
	"github.com/dmitrijs2005/bootlang/internal/client/models"
	"github.com/dmitrijs2005/bootlang/internal/client/repositories/slots"
	"github.com/dmitrijs2005/bootlang/internal/client/session"
	"github.com/dmitrijs2005/bootlang/internal/logging"
	"github.com/stretchr/testify/require"
)

// fakeAPI implements AuthAPI and AccountAPI with canned results.
type fakeAPI struct {
	LoginResp *client.AuthResponse
	LoginErr  error
	LoginArgs []string

	RegisterResp *client.AuthResponse
	RegisterErr  error
	RegisterReq  *client.RegisterRequest

	MeUser *models.User
	MeErr  error

	ChangeErr  error
	ChangeArgs []string

	ProfileUser *models.User
	ProfileErr  error
	ProfileUpd  *client.ProfileUpdate

	calls int
}

func (f *fakeAPI) Login(_ context.Context, username, password string) (*client.AuthResponse, error) {
	f.calls++
	f.LoginArgs = []string{username, password}
	return f.LoginResp, f.LoginErr
}

func (f *fakeAPI) Register(_ context.Context, req client.RegisterRequest) (*client.AuthResponse, error) {
	f.calls++
	f.RegisterReq = &req
	return f.RegisterResp, f.RegisterErr
}

func (f *fakeAPI) Me(context.Context) (*models.User, error) {
	f.calls++
	return f.MeUser, f.MeErr
}

func (f *fakeAPI) ChangePassword(_ context.Context, current, next string) (*client.Result, error) {
	f.calls++
	f.ChangeArgs = []string{current, next}
	if f.ChangeErr != nil {
		return nil, f.ChangeErr
	}
	return &client.Result{Success: true}, nil
}

func (f *fakeAPI) UpdateProfile(_ context.Context, upd client.ProfileUpdate) (*models.User, *client.Result, error) {
	f.calls++
	f.ProfileUpd = &upd
	if f.ProfileErr != nil {
		return nil, nil, f.ProfileErr
	}
	return f.ProfileUser, &client.Result{Success: true}, nil
}

func newAuth(t *testing.T) *session.Auth {
	t.Helper()
	a := session.NewAuth(session.NewStore(slots.NewMemoryRepository(), logging.Nop()), logging.Nop())
	require.NoError(t, a.Init(context.Background()))
	return a
}

func strPtr(s string) *string { return &s }
