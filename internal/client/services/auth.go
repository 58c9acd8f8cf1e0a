package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/bootlang/internal/client/client"
	"github.com/dmitrijs2005/bootlang/internal/client/forms"
	"github.com/dmitrijs2005/bootlang/internal/client/models"
	"github.com/dmitrijs2005/bootlang/internal/logging"
)

var ErrIncompleteResponse = errors.New("server response has no token or user")

// AuthAPI is the part of the REST client used for authentication.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*client.AuthResponse, error)
	Register(ctx context.Context, req client.RegisterRequest) (*client.AuthResponse, error)
	Me(ctx context.Context) (*models.User, error)
}

// SessionHolder is implemented by *session.Auth.
type SessionHolder interface {
	Login(ctx context.Context, token string, user *models.User) error
	Logout(ctx context.Context) error
	UpdateUser(ctx context.Context, user *models.User) error
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate and store the returned session.
//   - Register: create an account; when the server returns a session the
//     user is logged in right away.
//   - Logout: drop the local session.
//   - Refresh: reload the current user; an auth failure ends the session.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) (*models.User, error)
	Register(ctx context.Context, username string, password []byte, email string) (*models.User, error)
	Logout(ctx context.Context) error
	Refresh(ctx context.Context) (*models.User, error)
}

type authService struct {
	api  AuthAPI
	auth SessionHolder
	log  logging.Logger
}

func NewAuthService(api AuthAPI, auth SessionHolder, log logging.Logger) AuthService {
	return &authService{api: api, auth: auth, log: log}
}

func (s *authService) Login(ctx context.Context, username string, password []byte) (*models.User, error) {
	username = strings.TrimSpace(username)
	if err := forms.Validate(forms.Login{Username: username, Password: string(password)}); err != nil {
		return nil, err
	}

	resp, err := s.api.Login(ctx, username, string(password))
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}
	if resp.Token == "" || resp.User == nil {
		return nil, ErrIncompleteResponse
	}

	if err := s.auth.Login(ctx, resp.Token, resp.User); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return resp.User, nil
}

func (s *authService) Register(ctx context.Context, username string, password []byte, email string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if err := forms.Validate(forms.Register{Username: username, Password: string(password), Email: email}); err != nil {
		return nil, err
	}

	req := client.RegisterRequest{Username: username, Password: string(password)}
	if email != "" {
		req.Email = &email
	}

	resp, err := s.api.Register(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}
	if resp.Token == "" || resp.User == nil {
		s.log.Info(ctx, "registered without session", "username", username)
		return resp.User, nil
	}

	if err := s.auth.Login(ctx, resp.Token, resp.User); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return resp.User, nil
}

func (s *authService) Logout(ctx context.Context) error {
	return s.auth.Logout(ctx)
}

func (s *authService) Refresh(ctx context.Context) (*models.User, error) {
	u, err := s.api.Me(ctx)
	if errors.Is(err, client.ErrUnauthorized) {
		s.log.Warn(ctx, "session rejected by server, logging out")
		if lerr := s.auth.Logout(ctx); lerr != nil {
			return nil, errors.Join(err, lerr)
		}
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("refresh error: %w", err)
	}

	if err := s.auth.UpdateUser(ctx, u); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return u, nil
}
