package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/bootlang/internal/client/client"
	"github.com/dmitrijs2005/bootlang/internal/client/forms"
	"github.com/dmitrijs2005/bootlang/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name              string
		cur, next, repeat string
		wantMsg           string
	}{
		{"mismatch", "old1", "new1", "new2", "New passwords do not match"},
		{"too short", "old1", "abc", "abc", "Password must be at least 4 characters long"},
		{"ok", "old1", "new1", "new1", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{}
			svc := NewAccountService(api, newAuth(t))

			err := svc.ChangePassword(ctx, []byte(tt.cur), []byte(tt.next), []byte(tt.repeat))
			if tt.wantMsg != "" {
				require.ErrorIs(t, err, forms.ErrInvalid)
				assert.Equal(t, tt.wantMsg, err.Error())
				assert.Zero(t, api.calls)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []string{tt.cur, tt.next}, api.ChangeArgs)
		})
	}
}

func TestAccountService_ChangePassword_BackendError(t *testing.T) {
	api := &fakeAPI{ChangeErr: &client.APIError{Status: 400, Detail: "Current password is incorrect"}}
	svc := NewAccountService(api, newAuth(t))

	err := svc.ChangePassword(context.Background(), []byte("bad1"), []byte("new1"), []byte("new1"))
	require.Error(t, err)
	assert.Equal(t, "Current password is incorrect", client.ErrorMessage(err, "Failed to change password"))
}

func TestAccountService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	current := &models.User{ID: 1, Username: "alice", Email: strPtr("a@example.com")}

	t.Run("no changes", func(t *testing.T) {
		api := &fakeAPI{}
		svc := NewAccountService(api, newAuth(t))
		_, err := svc.UpdateProfile(ctx, current, "alice", "a@example.com")
		require.ErrorIs(t, err, ErrNoChanges)
		assert.Zero(t, api.calls)
	})

	t.Run("only username sent", func(t *testing.T) {
		auth := newAuth(t)
		require.NoError(t, auth.Login(ctx, "abc", current))
		api := &fakeAPI{ProfileUser: &models.User{ID: 1, Username: "alicia", Email: strPtr("a@example.com")}}
		svc := NewAccountService(api, auth)

		u, err := svc.UpdateProfile(ctx, current, "alicia", "a@example.com")
		require.NoError(t, err)
		assert.Equal(t, "alicia", u.Username)
		require.NotNil(t, api.ProfileUpd.Username)
		assert.Nil(t, api.ProfileUpd.Email)
		assert.Equal(t, "alicia", auth.User().Username)
		assert.Equal(t, "abc", auth.Token())
	})

	t.Run("cleared email", func(t *testing.T) {
		auth := newAuth(t)
		require.NoError(t, auth.Login(ctx, "abc", current))
		api := &fakeAPI{ProfileUser: &models.User{ID: 1, Username: "alice"}}
		svc := NewAccountService(api, auth)

		_, err := svc.UpdateProfile(ctx, current, "alice", "")
		require.NoError(t, err)
		assert.Nil(t, api.ProfileUpd.Username)
		require.NotNil(t, api.ProfileUpd.Email)
		assert.Equal(t, "", *api.ProfileUpd.Email)
		assert.Nil(t, auth.User().Email)
	})

	t.Run("invalid email", func(t *testing.T) {
		api := &fakeAPI{}
		svc := NewAccountService(api, newAuth(t))
		_, err := svc.UpdateProfile(ctx, current, "alice", "not-an-email")
		require.ErrorIs(t, err, forms.ErrInvalid)
		assert.Zero(t, api.calls)
	})
}
