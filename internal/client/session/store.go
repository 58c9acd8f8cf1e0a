package session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/bootlang/internal/client/models"
	"github.com/dmitrijs2005/bootlang/internal/client/repositories/slots"
	"github.com/dmitrijs2005/bootlang/internal/common"
	"github.com/dmitrijs2005/bootlang/internal/logging"
)

const (
	TokenKey = "boot_lang_token"
	UserKey  = "boot_lang_user"
)

// Session is a complete token/user pair.
type Session struct {
	Token string
	User  *models.User
}

type Store struct {
	repo slots.Repository
	log  logging.Logger
}

func NewStore(repo slots.Repository, log logging.Logger) *Store {
	return &Store{repo: repo, log: log}
}

func (s *Store) SetToken(ctx context.Context, token string) error {
	if err := s.repo.Set(ctx, TokenKey, []byte(token)); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	return nil
}

// GetToken returns "" when no token is stored.
func (s *Store) GetToken(ctx context.Context) (string, error) {
	b, err := s.repo.Get(ctx, TokenKey)
	if err != nil {
		return "", fmt.Errorf("load token: %w", err)
	}
	return string(b), nil
}

func (s *Store) RemoveToken(ctx context.Context) error {
	if err := s.repo.Delete(ctx, TokenKey); err != nil {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}

// SetUser stores user. A nil user removes the slot.
func (s *Store) SetUser(ctx context.Context, user *models.User) error {
	if user == nil {
		return s.RemoveUser(ctx)
	}
	b, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.repo.Set(ctx, UserKey, b); err != nil {
		return fmt.Errorf("store user: %w", err)
	}
	return nil
}

// GetUser returns nil when no user is stored or the stored value can't be
// decoded. Only repository failures are reported as errors.
func (s *Store) GetUser(ctx context.Context) (*models.User, error) {
	b, err := s.repo.Get(ctx, UserKey)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	return s.decodeUser(ctx, b), nil
}

func (s *Store) RemoveUser(ctx context.Context) error {
	if err := s.repo.Delete(ctx, UserKey); err != nil {
		return fmt.Errorf("remove user: %w", err)
	}
	return nil
}

// ClearAuth removes both slots in one operation. Safe on an empty store.
func (s *Store) ClearAuth(ctx context.Context) error {
	if err := s.repo.DeleteMany(ctx, TokenKey, UserKey); err != nil {
		return fmt.Errorf("clear auth: %w", err)
	}
	return nil
}

// SaveSession writes token and user together.
func (s *Store) SaveSession(ctx context.Context, token string, user *models.User) error {
	if token == "" || user == nil {
		return ErrIncompleteSession
	}
	b, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	err = s.repo.SetMany(ctx, map[string][]byte{
		TokenKey: []byte(token),
		UserKey:  b,
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// LoadSession returns the stored pair, or nil when either half is missing
// or unreadable.
func (s *Store) LoadSession(ctx context.Context) (*Session, error) {
	token, user, err := s.loadPair(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" || user == nil {
		return nil, nil
	}
	return &Session{Token: token, User: user}, nil
}

func (s *Store) IsAuthenticated(ctx context.Context) (bool, error) {
	sess, err := s.LoadSession(ctx)
	if err != nil {
		return false, err
	}
	return sess != nil, nil
}

func (s *Store) IsAdmin(ctx context.Context) (bool, error) {
	sess, err := s.LoadSession(ctx)
	if err != nil {
		return false, err
	}
	return sess != nil && sess.User.IsAdmin, nil
}

// AuthHeader returns an empty header when no token is stored.
func (s *Store) AuthHeader(ctx context.Context) (http.Header, error) {
	token, err := s.GetToken(ctx)
	if err != nil {
		return nil, err
	}
	return authHeader(token), nil
}

// loadPair reads both slots in one List call so that the pair comes from
// the same snapshot of the backend.
func (s *Store) loadPair(ctx context.Context) (string, *models.User, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("load session: %w", err)
	}
	return string(all[TokenKey]), s.decodeUser(ctx, all[UserKey]), nil
}

func (s *Store) decodeUser(ctx context.Context, b []byte) *models.User {
	if len(b) == 0 {
		return nil
	}
	var u *models.User
	if err := json.Unmarshal(b, &u); err != nil {
		s.log.Warn(ctx, "stored user is malformed, ignoring", "error", err)
		return nil
	}
	// null and {} decode without error but identify nobody.
	if u == nil || (u.ID == 0 && u.Username == "") {
		s.log.Warn(ctx, "stored user is empty, ignoring")
		return nil
	}
	return u
}

func authHeader(token string) http.Header {
	h := make(http.Header)
	if v := common.BearerValue(token); v != "" {
		h.Set(common.AuthorizationHeaderName, v)
	}
	return h
}
