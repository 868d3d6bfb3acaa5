package identity

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func makeToken(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestUserIDFromToken(t *testing.T) {
	token := makeToken(t, jwt.RegisteredClaims{
		Subject:   "did:privy:user-42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	got, err := UserIDFromToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "did:privy:user-42" {
		t.Fatalf("user id = %q", got)
	}
}

func TestUserIDFromToken_NoSubject(t *testing.T) {
	token := makeToken(t, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	_, err := UserIDFromToken(token)
	if !errors.Is(err, ErrNoSubject) {
		t.Fatalf("want ErrNoSubject, got %v", err)
	}
}

func TestUserIDFromToken_Malformed(t *testing.T) {
	if _, err := UserIDFromToken("not-a-jwt"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
