package errors_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/geonotes/geonotes/internal/app/backend"
	uierrors "github.com/geonotes/geonotes/internal/app/features/errors"
	"github.com/geonotes/geonotes/internal/app/system/auth"
)

func newTestHandler(t *testing.T) (*uierrors.Handler, *auth.SessionManager) {
	t.Helper()
	logger := zap.NewNop()
	sm, err := auth.NewSessionManager("test-session-key-for-testing-only", "test-session", "", false, logger)
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}
	return uierrors.NewHandler(sm, logger), sm
}

func TestNotFound_Writes404(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	func() {
		defer func() { recover() }()
		handler.NotFound(rec, httptest.NewRequest("GET", "/no-such-page", nil))
	}()

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestForbidden_Writes403(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	func() {
		defer func() { recover() }()
		handler.Forbidden(rec, httptest.NewRequest("GET", "/forbidden", nil))
	}()

	if rec.Code != http.StatusForbidden {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestUnauthorized_ClearsStaleSession(t *testing.T) {
	handler, sm := newTestHandler(t)

	// Establish a session whose token the backend would reject.
	saveRec := httptest.NewRecorder()
	if err := sm.SaveToken(saveRec, httptest.NewRequest("GET", "/", nil), "stale-token"); err != nil {
		t.Fatalf("SaveToken failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/unauthorized", nil)
	for _, c := range saveRec.Result().Cookies() {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	func() {
		defer func() { recover() }()
		handler.Unauthorized(rec, req)
	}()

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}

	cleared := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == "test-session" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("stale session cookie was not cleared")
	}
}

func TestLogBackendError_RejectedTokenRedirects(t *testing.T) {
	errLog := uierrors.NewErrorLogger(zap.NewNop())

	rec := httptest.NewRecorder()
	errLog.LogBackendError(rec, httptest.NewRequest("GET", "/", nil),
		"get notes", &backend.APIError{StatusCode: http.StatusUnauthorized, Detail: "token expired"},
		"Unable to load your notes.", "/")

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/unauthorized" {
		t.Errorf("Location: got %q, want %q", loc, "/unauthorized")
	}
}

func TestLogBackendError_RefusedActionRedirects(t *testing.T) {
	errLog := uierrors.NewErrorLogger(zap.NewNop())

	rec := httptest.NewRecorder()
	errLog.LogBackendError(rec, httptest.NewRequest("GET", "/groups", nil),
		"list members", &backend.APIError{StatusCode: http.StatusForbidden, Detail: "not a member"},
		"Unable to load members.", "/groups")

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/forbidden" {
		t.Errorf("Location: got %q, want %q", loc, "/forbidden")
	}
}

func TestLogBackendError_OtherStatusesRenderInPlace(t *testing.T) {
	errLog := uierrors.NewErrorLogger(zap.NewNop())

	rec := httptest.NewRecorder()
	func() {
		defer func() { recover() }()
		errLog.LogBackendError(rec, httptest.NewRequest("GET", "/", nil),
			"get notes", &backend.APIError{StatusCode: http.StatusBadRequest, Detail: "bad filter"},
			"Unable to load your notes.", "/")
	}()

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if loc := rec.Header().Get("Location"); loc != "" {
		t.Errorf("unexpected redirect to %q", loc)
	}
}
