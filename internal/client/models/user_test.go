package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_DecodesBackendPayload(t *testing.T) {
	payload := `{"id":7,"username":"alice","email":null,"is_admin":true,
		"created_at":"2024-05-01T10:00:00.5","updated_at":"2024-05-02T10:00:00"}`

	var u User
	require.NoError(t, json.Unmarshal([]byte(payload), &u))

	assert.Equal(t, int64(7), u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.Nil(t, u.Email)
	assert.True(t, u.IsAdmin)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 500000000, time.UTC), u.CreatedAt.Time)
	assert.Equal(t, "Admin", u.Role())
}

func TestUser_DecodesLoginPayloadWithoutTimestamps(t *testing.T) {
	var u User
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"username":"a","email":"a@x.io","is_admin":false}`), &u))

	assert.True(t, u.CreatedAt.IsZero())
	assert.Equal(t, "a@x.io", u.EmailOrEmpty())
	assert.Equal(t, "User", u.Role())
}

func TestUser_CloneIsDeep(t *testing.T) {
	email := "a@x.io"
	orig := &User{ID: 1, Username: "a", Email: &email}

	c := orig.Clone()
	*c.Email = "changed@x.io"
	c.Username = "b"

	assert.Equal(t, "a@x.io", *orig.Email)
	assert.Equal(t, "a", orig.Username)

	var nilUser *User
	assert.Nil(t, nilUser.Clone())
	assert.Equal(t, "", nilUser.EmailOrEmpty())
}
