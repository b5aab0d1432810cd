package testutil

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/geonotes/geonotes/internal/app/system/auth"
)

// TestUser represents user data for testing HTTP handlers.
type TestUser struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
}

// NewTestUser returns a user with a fresh random id.
func NewTestUser() TestUser {
	return TestUser{
		ID:        uuid.NewString(),
		Email:     "jan@example.com",
		FirstName: "Jan",
		LastName:  "Kowalski",
	}
}

// SignedToken builds a syntactically valid token carrying the user's
// claims. The signing key is irrelevant: the app decodes tokens
// without verifying signatures.
func SignedToken(t *testing.T, u TestUser) string {
	t.Helper()

	claims := jwt.MapClaims{
		"id":         u.ID,
		"sub":        u.Email,
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"exp":        time.Now().Add(time.Hour).Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-signing-key"))
	if err != nil {
		t.Fatalf("sign test token: %v", err)
	}
	return tok
}

// SessionUser converts the fixture into the context identity the
// middleware would have produced for the given token.
func (u TestUser) SessionUser(token string) *auth.SessionUser {
	return &auth.SessionUser{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Token:     token,
	}
}
