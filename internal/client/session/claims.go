package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is what the client can read from a JWT bearer token without the
// signing key. It is for display only.
type Claims struct {
	Subject   string
	Username  string
	IsAdmin   bool
	ExpiresAt time.Time
}

// ParseClaims decodes token without verifying its signature. ok is false
// for anything that is not a JWT.
func ParseClaims(token string) (Claims, bool) {
	if token == "" {
		return Claims{}, false
	}
	mc := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, mc); err != nil {
		return Claims{}, false
	}

	var c Claims
	c.Subject, _ = mc.GetSubject()
	if v, ok := mc["username"].(string); ok {
		c.Username = v
	}
	if v, ok := mc["is_admin"].(bool); ok {
		c.IsAdmin = v
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.Time
	}
	return c, true
}

// Claims parses the current token.
func (a *Auth) Claims() (Claims, bool) {
	return ParseClaims(a.Token())
}
