package dto

import "github.com/golang-jwt/jwt/v5"

// SessionClaims are the JWT claims of a session token. Subject holds the session ID.
type SessionClaims struct {
	Title string `json:"title,omitempty"`
	jwt.RegisteredClaims
}
