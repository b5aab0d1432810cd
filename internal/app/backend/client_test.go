package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/geonotes/geonotes/internal/app/backend"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return backend.New(srv.URL, 5*time.Second, zap.NewNop())
}

func TestAuthBody_InjectsToken(t *testing.T) {
	body := backend.AuthBody("tok-123", map[string]any{"title": "hello"})

	if body[backend.TokenField] != "tok-123" {
		t.Errorf("token field: got %v", body[backend.TokenField])
	}
	if body["title"] != "hello" {
		t.Errorf("caller field lost: got %v", body["title"])
	}
}

func TestAuthBody_NeverOverwritesCallerField(t *testing.T) {
	body := backend.AuthBody("real-token", map[string]any{backend.TokenField: "caller-value"})

	if body[backend.TokenField] != "caller-value" {
		t.Errorf("caller field overwritten: got %v", body[backend.TokenField])
	}
}

func TestAuthBody_NilFields(t *testing.T) {
	body := backend.AuthBody("tok", nil)
	if len(body) != 1 || body[backend.TokenField] != "tok" {
		t.Errorf("got %v, want only the token field", body)
	}
}

func TestPost_SendsJSONAndDecodes(t *testing.T) {
	var gotPath, gotMethod, gotContentType string
	var gotBody map[string]any

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	})

	var resp struct {
		Message string `json:"message"`
	}
	err := c.Post(context.Background(), "/notes/get", backend.AuthBody("tok", nil), &resp)
	if err != nil {
		t.Fatalf("Post: %v", err)
	}

	if gotMethod != http.MethodPost || gotPath != "/notes/get" {
		t.Errorf("request: got %s %s", gotMethod, gotPath)
	}
	if gotContentType != "application/json" {
		t.Errorf("content type: got %q", gotContentType)
	}
	if gotBody[backend.TokenField] != "tok" {
		t.Errorf("body token: got %v", gotBody[backend.TokenField])
	}
	if resp.Message != "ok" {
		t.Errorf("decoded message: got %q", resp.Message)
	}
}

func TestErrorResponse_CarriesBackendDetail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Old password is incorrect"})
	})

	err := c.Post(context.Background(), "/users/update/password", map[string]any{}, nil)
	if err == nil {
		t.Fatal("expected error for 401 response")
	}

	var apiErr *backend.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type: got %T", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("status: got %d", apiErr.StatusCode)
	}
	if apiErr.Detail != "Old password is incorrect" {
		t.Errorf("detail: got %q", apiErr.Detail)
	}
}

func TestErrorResponse_FallsBackToStatusText(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})

	err := c.Get(context.Background(), "/users/abc", nil)
	var apiErr *backend.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type: got %T", err)
	}
	if apiErr.Detail != http.StatusText(http.StatusBadGateway) {
		t.Errorf("detail: got %q", apiErr.Detail)
	}
}

func TestMessage(t *testing.T) {
	apiErr := &backend.APIError{StatusCode: 400, Detail: "Sprawdź UUID"}
	if got := backend.Message(apiErr, "generic"); got != "Sprawdź UUID" {
		t.Errorf("Message with detail: got %q", got)
	}
	if got := backend.Message(errors.New("dial tcp: refused"), "generic"); got != "generic" {
		t.Errorf("Message with transport error: got %q", got)
	}
	if got := backend.Message(&backend.APIError{StatusCode: 500}, "generic"); got != "generic" {
		t.Errorf("Message with blank detail: got %q", got)
	}
}

func TestIsStatus(t *testing.T) {
	err := &backend.APIError{StatusCode: http.StatusNotFound}
	if !backend.IsStatus(err, http.StatusNotFound) {
		t.Error("IsStatus should match 404")
	}
	if backend.IsStatus(err, http.StatusUnauthorized) {
		t.Error("IsStatus should not match 401")
	}
	if backend.IsStatus(errors.New("plain"), http.StatusNotFound) {
		t.Error("IsStatus should be false for non-API errors")
	}
}

func TestTransportFailurePropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on
	c := backend.New(srv.URL, time.Second, zap.NewNop())

	err := c.Post(context.Background(), "/notes/get", map[string]any{}, nil)
	if err == nil {
		t.Fatal("expected transport error")
	}
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		t.Error("transport failure must not be an APIError")
	}
}
