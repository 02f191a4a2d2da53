package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims is the JWT claim set issued by the auth provider for a
// signed-in user session.
type SessionClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role"` // "authenticated" or "anon"
}

// GetUserID returns the user ID from the subject claim.
func (c *SessionClaims) GetUserID() string {
	return c.Subject
}
