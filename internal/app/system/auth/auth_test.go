package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/geonotes/geonotes/internal/app/system/auth"
)

func newTestSessionManager(t *testing.T) *auth.SessionManager {
	t.Helper()
	sm, err := auth.NewSessionManager(
		"0123456789abcdef0123456789abcdef",
		"geonotes-test-session",
		"",
		false,
		zap.NewNop(),
	)
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	return sm
}

// signedTestToken issues a token the way the backend does. The
// signing key is irrelevant to the client, which never verifies it.
func signedTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte("test-signing-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

// requestWithSavedToken stores a token through the manager and returns
// a follow-up request carrying the resulting session cookie.
func requestWithSavedToken(t *testing.T, sm *auth.SessionManager, token string) *http.Request {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/login", nil)
	if err := sm.SaveToken(rec, req, token); err != nil {
		t.Fatalf("SaveToken: %v", err)
	}

	next := httptest.NewRequest("GET", "/", nil)
	for _, c := range rec.Result().Cookies() {
		next.AddCookie(c)
	}
	return next
}

func TestNewSessionManager_EmptyKey(t *testing.T) {
	_, err := auth.NewSessionManager("", "s", "", false, zap.NewNop())
	if err == nil {
		t.Fatal("expected error for empty session key")
	}
}

func TestToken_AbsentWhenNotLoggedIn(t *testing.T) {
	sm := newTestSessionManager(t)

	req := httptest.NewRequest("GET", "/", nil)
	if tok, ok := sm.Token(req); ok || tok != "" {
		t.Errorf("Token on fresh request: got (%q, %v), want absent", tok, ok)
	}
}

func TestSaveToken_RoundTrip(t *testing.T) {
	sm := newTestSessionManager(t)

	req := requestWithSavedToken(t, sm, "opaque-backend-token")
	tok, ok := sm.Token(req)
	if !ok {
		t.Fatal("Token: not found after SaveToken")
	}
	if tok != "opaque-backend-token" {
		t.Errorf("Token: got %q, want %q", tok, "opaque-backend-token")
	}
}

func TestClear_SignsOut(t *testing.T) {
	sm := newTestSessionManager(t)

	req := requestWithSavedToken(t, sm, "tok")
	rec := httptest.NewRecorder()
	if err := sm.Clear(rec, req); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	next := httptest.NewRequest("GET", "/", nil)
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge > 0 {
			next.AddCookie(c)
		}
	}
	if _, ok := sm.Token(next); ok {
		t.Error("Token still present after Clear")
	}
}

func TestLoadSessionUser_DecodesClaims(t *testing.T) {
	sm := newTestSessionManager(t)

	token := signedTestToken(t, jwt.MapClaims{
		"id":                  "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d",
		"sub":                 "jan@example.com",
		"first_name":          "Jan",
		"last_name":           "Kowalski",
		"profile_picture_url": "https://img.example.com/jan.png",
		"exp":                 time.Now().Add(time.Hour).Unix(),
	})
	req := requestWithSavedToken(t, sm, token)

	var got *auth.SessionUser
	h := sm.LoadSessionUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = auth.CurrentUser(r)
	}))
	h.ServeHTTP(httptest.NewRecorder(), req)

	if got == nil {
		t.Fatal("no session user in context")
	}
	if got.ID != "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d" {
		t.Errorf("ID: got %q", got.ID)
	}
	if got.Email != "jan@example.com" {
		t.Errorf("Email: got %q", got.Email)
	}
	if got.Name() != "Jan Kowalski" {
		t.Errorf("Name: got %q, want %q", got.Name(), "Jan Kowalski")
	}
	if got.Token != token {
		t.Error("Token not carried on session user")
	}
}

func TestLoadSessionUser_MalformedTokenStaysAuthenticated(t *testing.T) {
	sm := newTestSessionManager(t)

	req := requestWithSavedToken(t, sm, "not-a-jwt")

	var got *auth.SessionUser
	h := sm.LoadSessionUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = auth.CurrentUser(r)
	}))
	h.ServeHTTP(httptest.NewRecorder(), req)

	if got == nil {
		t.Fatal("malformed token must not sign the user out")
	}
	if got.ID != "" || got.Email != "" {
		t.Errorf("identity fields should be blank, got ID=%q Email=%q", got.ID, got.Email)
	}
	if got.Token != "not-a-jwt" {
		t.Errorf("raw token should still be available, got %q", got.Token)
	}
}

func TestRequireSignedIn_RedirectsToLogin(t *testing.T) {
	sm := newTestSessionManager(t)

	h := sm.RequireSignedIn(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("protected handler reached without a session")
	}))

	req := httptest.NewRequest("GET", "/groups", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusSeeOther)
	}
	loc := rec.Header().Get("Location")
	if loc != "/login?return=%2Fgroups" {
		t.Errorf("Location: got %q", loc)
	}
}

func TestRequireSignedIn_PassesThroughWhenAuthenticated(t *testing.T) {
	sm := newTestSessionManager(t)

	called := false
	h := sm.RequireSignedIn(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{ID: "u1", Token: "tok"})
	h.ServeHTTP(httptest.NewRecorder(), req)

	if !called {
		t.Error("protected handler not reached for signed-in user")
	}
}

func TestDecodeClaims_Malformed(t *testing.T) {
	if _, err := auth.DecodeClaims("garbage"); err == nil {
		t.Error("expected error for malformed token")
	}
}
