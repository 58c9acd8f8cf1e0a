package models

import (
	"github.com/dmitrijs2005/bootlang/internal/timex"
)

// User is the account record returned by the auth, admin and profile
// endpoints.
type User struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Email    *string `json:"email"`
	IsAdmin  bool    `json:"is_admin"`

	// CreatedAt and UpdatedAt are absent from login responses.
	CreatedAt timex.Time `json:"created_at,omitempty"`
	UpdatedAt timex.Time `json:"updated_at,omitempty"`
}

// EmailOrEmpty returns the email address or "" when none is set.
func (u *User) EmailOrEmpty() string {
	if u == nil || u.Email == nil {
		return ""
	}
	return *u.Email
}

// Clone returns a deep copy so callers can't mutate shared session state.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.Email != nil {
		e := *u.Email
		c.Email = &e
	}
	return &c
}

// Role is the label shown in user tables.
func (u *User) Role() string {
	if u != nil && u.IsAdmin {
		return "Admin"
	}
	return "User"
}
