package common

import "strings"

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// Passwords read from the terminal are wiped with it once they were sent.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}

// BearerValue formats token as an Authorization header value.
// An empty or blank token yields an empty string, never "Bearer ".
func BearerValue(token string) string {
	token = strings.TrimSpace(token)
	if token == "" {
		return ""
	}
	return BearerPrefix + token
}
