// Package identity extracts the user id from the marketplace auth token.
// The token is issued and verified by the auth provider; the client only
// needs the subject claim to key upload records, so the signature is not
// re-checked here.
package identity

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNoSubject = errors.New("auth token has no subject claim")

// UserIDFromToken returns the subject claim of the given JWT.
func UserIDFromToken(tokenString string) (string, error) {
	parser := jwt.NewParser()

	claims := &jwt.RegisteredClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return "", err
	}

	if claims.Subject == "" {
		return "", ErrNoSubject
	}
	return claims.Subject, nil
}
