package session

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/bootlang/internal/client/models"
	"github.com/dmitrijs2005/bootlang/internal/client/repositories/slots"
	"github.com/dmitrijs2005/bootlang/internal/logging"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() (*Store, *slots.MemoryRepository) {
	repo := slots.NewMemoryRepository()
	return NewStore(repo, logging.Nop()), repo
}

func strPtr(s string) *string { return &s }

func TestStore_TokenRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()

	tok, err := s.GetToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", tok, "absent token is empty, not an error")

	require.NoError(t, s.SetToken(ctx, "abc"))
	tok, err = s.GetToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", tok)

	require.NoError(t, s.RemoveToken(ctx))
	require.NoError(t, s.RemoveToken(ctx))
	tok, err = s.GetToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", tok)
}

func TestStore_UserRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()

	u := &models.User{ID: 7, Username: "alice", Email: strPtr("a@example.com"), IsAdmin: true}
	require.NoError(t, s.SetUser(ctx, u))

	got, err := s.GetUser(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(u, got); diff != "" {
		t.Fatalf("user mismatch (-want +got):\n%s", diff)
	}

	require.NoError(t, s.RemoveUser(ctx))
	got, err = s.GetUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_GetUser_MalformedIsAbsent(t *testing.T) {
	ctx := context.Background()

	payloads := []string{
		"{",
		"not json",
		`{"id":"seven"}`,
		`[1,2,3]`,
		`"just a string"`,
		`null`,
		`{}`,
		`{"is_admin":true}`,
	}
	for _, p := range payloads {
		t.Run(p, func(t *testing.T) {
			s, repo := newTestStore()
			require.NoError(t, repo.Set(ctx, UserKey, []byte(p)))

			got, err := s.GetUser(ctx)
			require.NoError(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestStore_SetUserNilRemovesUser(t *testing.T) {
	ctx := context.Background()
	s, repo := newTestStore()

	require.NoError(t, s.SetToken(ctx, "abc"))
	require.NoError(t, s.SetUser(ctx, &models.User{ID: 1, Username: "root"}))
	require.NoError(t, s.SetUser(ctx, nil))

	raw, err := repo.Get(ctx, UserKey)
	require.NoError(t, err)
	assert.Nil(t, raw)

	got, err := s.GetUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	ok, err := s.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "token with no user is not a session")
}

func TestStore_NullUserIsNotASession(t *testing.T) {
	ctx := context.Background()
	s, repo := newTestStore()

	require.NoError(t, s.SetToken(ctx, "abc"))
	require.NoError(t, repo.Set(ctx, UserKey, []byte("null")))

	sess, err := s.LoadSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, sess)

	ok, err := s.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_ClearAuth(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()

	require.NoError(t, s.ClearAuth(ctx), "clear on empty store")

	require.NoError(t, s.SaveSession(ctx, "abc", &models.User{ID: 1, Username: "a"}))
	require.NoError(t, s.ClearAuth(ctx))
	require.NoError(t, s.ClearAuth(ctx))

	tok, err := s.GetToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
	u, err := s.GetUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestStore_IsAuthenticated_RequiresPair(t *testing.T) {
	ctx := context.Background()
	user := &models.User{ID: 1, Username: "a", IsAdmin: true}

	tests := []struct {
		name      string
		token     string
		user      *models.User
		wantAuth  bool
		wantAdmin bool
	}{
		{name: "empty"},
		{name: "token only", token: "abc"},
		{name: "user only", user: user},
		{name: "both", token: "abc", user: user, wantAuth: true, wantAdmin: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestStore()
			if tt.token != "" {
				require.NoError(t, s.SetToken(ctx, tt.token))
			}
			if tt.user != nil {
				require.NoError(t, s.SetUser(ctx, tt.user))
			}

			ok, err := s.IsAuthenticated(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAuth, ok)

			admin, err := s.IsAdmin(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAdmin, admin)
		})
	}
}

func TestStore_AuthHeader(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()

	h, err := s.AuthHeader(ctx)
	require.NoError(t, err)
	require.NotNil(t, h)
	assert.Empty(t, h, "no token means no header at all")

	require.NoError(t, s.SetToken(ctx, "   "))
	h, err = s.AuthHeader(ctx)
	require.NoError(t, err)
	assert.Empty(t, h, "blank token never yields an empty bearer value")

	require.NoError(t, s.SetToken(ctx, "abc"))
	h, err = s.AuthHeader(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc", h.Get("Authorization"))
	assert.Len(t, h, 1)
}

func TestStore_SaveSession(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()

	require.ErrorIs(t, s.SaveSession(ctx, "", &models.User{ID: 1}), ErrIncompleteSession)
	require.ErrorIs(t, s.SaveSession(ctx, "abc", nil), ErrIncompleteSession)

	u := &models.User{ID: 1, Username: "a"}
	require.NoError(t, s.SaveSession(ctx, "abc", u))

	sess, err := s.LoadSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "abc", sess.Token)
	assert.Equal(t, int64(1), sess.User.ID)
}

func TestStore_LoadSession_PartialIsNil(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()

	require.NoError(t, s.SetToken(ctx, "abc"))
	sess, err := s.LoadSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestStore_PropagatesBackendErrors(t *testing.T) {
	ctx := context.Background()
	repo := &failingRepo{Repository: slots.NewMemoryRepository(), failGet: true, failSet: true, failList: true, failDelete: true}
	s := NewStore(repo, logging.Nop())

	_, err := s.GetToken(ctx)
	require.ErrorIs(t, err, errBackend)
	_, err = s.GetUser(ctx)
	require.ErrorIs(t, err, errBackend)
	require.ErrorIs(t, s.SaveSession(ctx, "abc", &models.User{ID: 1}), errBackend)
	require.ErrorIs(t, s.ClearAuth(ctx), errBackend)
	_, err = s.LoadSession(ctx)
	require.ErrorIs(t, err, errBackend)
	_, err = s.AuthHeader(ctx)
	require.ErrorIs(t, err, errBackend)
}
