package session

import (
	"context"
	"net/http"
	"sync"

	"github.com/dmitrijs2005/bootlang/internal/client/models"
	"github.com/dmitrijs2005/bootlang/internal/logging"
)

// Snapshot is the state passed to subscribers.
type Snapshot struct {
	Token string
	User  *models.User
}

func (s Snapshot) IsAuthenticated() bool { return s.Token != "" && s.User != nil }

// Auth is the single mutable holder of the current session. The zero value
// is not usable; construct it with NewAuth and call Init before use.
type Auth struct {
	store *Store
	log   logging.Logger

	mu    sync.RWMutex
	token string
	user  *models.User

	subMu     sync.Mutex
	listeners map[int]func(Snapshot)
	nextID    int
}

func NewAuth(store *Store, log logging.Logger) *Auth {
	return &Auth{
		store:     store,
		log:       log,
		listeners: make(map[int]func(Snapshot)),
	}
}

// Init hydrates the in-memory pair from the store. A half-stored session is
// discarded and the leftover slot removed.
func (a *Auth) Init(ctx context.Context) error {
	token, user, err := a.store.loadPair(ctx)
	if err != nil {
		return err
	}

	if token == "" || user == nil {
		token, user = "", nil
		if err := a.store.ClearAuth(ctx); err != nil {
			return err
		}
	}

	a.replace(token, user)
	if user != nil {
		a.log.Debug(ctx, "session restored", "username", user.Username)
	}
	return nil
}

// Login stores token and user in memory and persists both in one write.
func (a *Auth) Login(ctx context.Context, token string, user *models.User) error {
	if err := a.store.SaveSession(ctx, token, user); err != nil {
		return err
	}
	a.replace(token, user.Clone())
	a.log.Info(ctx, "logged in", "username", user.Username)
	return nil
}

// Logout clears memory even when the store can't be cleared.
func (a *Auth) Logout(ctx context.Context) error {
	a.replace("", nil)
	if err := a.store.ClearAuth(ctx); err != nil {
		return err
	}
	a.log.Info(ctx, "logged out")
	return nil
}

// UpdateUser replaces the user half of the session and keeps the token.
func (a *Auth) UpdateUser(ctx context.Context, user *models.User) error {
	if user == nil {
		return ErrIncompleteSession
	}
	a.mu.RLock()
	token := a.token
	a.mu.RUnlock()
	if token == "" {
		return ErrNotAuthenticated
	}

	if err := a.store.SetUser(ctx, user); err != nil {
		return err
	}
	a.replace(token, user.Clone())
	return nil
}

func (a *Auth) Token() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.token
}

// User returns a copy of the current user, nil when logged out.
func (a *Auth) User() *models.User {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.user.Clone()
}

func (a *Auth) Snapshot() Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return Snapshot{Token: a.token, User: a.user.Clone()}
}

func (a *Auth) IsAuthenticated() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.token != "" && a.user != nil
}

func (a *Auth) IsAdmin() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.token != "" && a.user != nil && a.user.IsAdmin
}

// AuthHeader builds the header from memory; it never touches the store.
func (a *Auth) AuthHeader(_ context.Context) (http.Header, error) {
	return authHeader(a.Token()), nil
}

// Subscribe registers fn to be called after every change. The returned
// function removes it.
func (a *Auth) Subscribe(fn func(Snapshot)) func() {
	a.subMu.Lock()
	defer a.subMu.Unlock()
	if a.listeners == nil {
		return func() {}
	}
	id := a.nextID
	a.nextID++
	a.listeners[id] = fn
	return func() {
		a.subMu.Lock()
		defer a.subMu.Unlock()
		delete(a.listeners, id)
	}
}

// Close drops all subscribers. Later Subscribe calls are no-ops.
func (a *Auth) Close() {
	a.subMu.Lock()
	defer a.subMu.Unlock()
	a.listeners = nil
}

func (a *Auth) replace(token string, user *models.User) {
	a.mu.Lock()
	a.token = token
	a.user = user
	snap := Snapshot{Token: token, User: user.Clone()}
	a.mu.Unlock()

	a.subMu.Lock()
	fns := make([]func(Snapshot), 0, len(a.listeners))
	for _, fn := range a.listeners {
		fns = append(fns, fn)
	}
	a.subMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
