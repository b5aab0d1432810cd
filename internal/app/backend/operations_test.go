package backend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/geonotes/geonotes/internal/app/backend"
	"github.com/geonotes/geonotes/internal/domain/models"
)

// recordedRequest captures what the backend saw for one call.
type recordedRequest struct {
	Method string
	Path   string
	Body   map[string]any
}

func recordingClient(t *testing.T, respond any) (*backend.Client, *recordedRequest) {
	t.Helper()
	rec := &recordedRequest{}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		rec.Method = r.Method
		rec.Path = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&rec.Body)
		_ = json.NewEncoder(w).Encode(respond)
	})
	return c, rec
}

func TestLogin_ReturnsAccessToken(t *testing.T) {
	c, rec := recordingClient(t, map[string]string{
		"access_token": "jwt-abc", "token_type": "bearer",
	})

	tok, err := c.Login(context.Background(), "a@b.com", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if tok != "jwt-abc" {
		t.Errorf("token: got %q", tok)
	}
	if rec.Path != "/users/login" || rec.Method != http.MethodPost {
		t.Errorf("request: got %s %s", rec.Method, rec.Path)
	}
	if rec.Body["email"] != "a@b.com" || rec.Body["password"] != "secret" {
		t.Errorf("body: got %v", rec.Body)
	}
	if _, hasJWT := rec.Body["jwt"]; hasJWT {
		t.Error("login must not carry a token field")
	}
}

func TestGetNotes_DecodesList(t *testing.T) {
	c, rec := recordingClient(t, map[string]any{
		"notes": []models.Note{
			{ID: "n1", Title: "Plac Zamkowy", Tags: []string{"lat:52.24", "lng:21.01", "col:#ff0000", "geonote"}},
			{ID: "n2", Title: "untagged", GroupID: "g1", GroupName: "Trip"},
		},
	})

	notes, err := c.GetNotes(context.Background(), "tok")
	if err != nil {
		t.Fatalf("GetNotes: %v", err)
	}
	if rec.Path != "/notes/get" {
		t.Errorf("path: got %s", rec.Path)
	}
	if rec.Body["jwt"] != "tok" {
		t.Errorf("token in body: got %v", rec.Body["jwt"])
	}
	if len(notes) != 2 || notes[0].ID != "n1" || notes[1].GroupName != "Trip" {
		t.Errorf("notes: got %+v", notes)
	}
}

func TestUpdateNote_KeyedByNoteID(t *testing.T) {
	c, rec := recordingClient(t, map[string]string{"message": "Note updated successfully"})

	err := c.UpdateNote(context.Background(), "tok", models.Note{
		ID: "n7", Title: "t", Content: "c",
		Tags:    []string{"lat:1", "lng:2", "col:#112233", "geonote"},
		GroupID: "g1",
	})
	if err != nil {
		t.Fatalf("UpdateNote: %v", err)
	}
	if rec.Path != "/notes/update" {
		t.Errorf("path: got %s", rec.Path)
	}
	if rec.Body["note_id"] != "n7" {
		t.Errorf("note_id: got %v", rec.Body["note_id"])
	}
}

func TestUpdateProfile_ReturnsRotatedToken(t *testing.T) {
	c, rec := recordingClient(t, map[string]string{
		"message": "User data updated successfully", "access_token": "jwt-new",
	})

	newTok, err := c.UpdateProfile(context.Background(), "jwt-old", models.Profile{
		Email: "a@b.com", FirstName: "Jan", LastName: "Kowalski",
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if newTok != "jwt-new" {
		t.Errorf("rotated token: got %q", newTok)
	}
	if rec.Body["jwt"] != "jwt-old" {
		t.Errorf("auth token in body: got %v", rec.Body["jwt"])
	}
}

func TestDeleteAccount_PasswordInBody(t *testing.T) {
	c, rec := recordingClient(t, map[string]string{"message": "deleted"})

	err := c.DeleteAccount(context.Background(), "tok", "jan@example.com", "pw")
	if err != nil {
		t.Fatalf("DeleteAccount: %v", err)
	}
	if rec.Method != http.MethodDelete {
		t.Errorf("method: got %s", rec.Method)
	}
	if rec.Path != "/users/jan@example.com" {
		t.Errorf("path: got %s", rec.Path)
	}
	if rec.Body["password"] != "pw" || rec.Body["jwt"] != "tok" {
		t.Errorf("body: got %v", rec.Body)
	}
}

func TestGroupOperations_Paths(t *testing.T) {
	cases := []struct {
		name       string
		call       func(c *backend.Client) error
		wantMethod string
		wantPath   string
	}{
		{"update group", func(c *backend.Client) error {
			return c.UpdateGroup(context.Background(), "tok", "g1", "n", "d")
		}, http.MethodPut, "/groups/g1"},
		{"delete group", func(c *backend.Client) error {
			return c.DeleteGroup(context.Background(), "tok", "g1")
		}, http.MethodDelete, "/groups/g1"},
		{"add member", func(c *backend.Client) error {
			return c.AddMember(context.Background(), "tok", "g1", "u1")
		}, http.MethodPost, "/groups/g1/members/add"},
		{"remove member", func(c *backend.Client) error {
			return c.RemoveMember(context.Background(), "tok", "g1", "u1")
		}, http.MethodPost, "/groups/g1/members/remove"},
		{"assign role", func(c *backend.Client) error {
			return c.AssignRole(context.Background(), "tok", "g1", "u1", "admin")
		}, http.MethodPost, "/groups/g1/roles/assign"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := recordingClient(t, map[string]string{"message": "ok"})
			if err := tc.call(c); err != nil {
				t.Fatalf("call: %v", err)
			}
			if rec.Method != tc.wantMethod || rec.Path != tc.wantPath {
				t.Errorf("request: got %s %s, want %s %s", rec.Method, rec.Path, tc.wantMethod, tc.wantPath)
			}
			if rec.Body["jwt"] != "tok" {
				t.Errorf("token in body: got %v", rec.Body["jwt"])
			}
		})
	}
}

func TestListMembers_DecodesMembers(t *testing.T) {
	c, _ := recordingClient(t, map[string]any{
		"members": []models.Member{
			{UserID: "u1", Role: models.RoleOwner, FirstName: "Ala", Email: "ala@example.com"},
			{UserID: "u2", Role: models.RoleMember, FirstName: "Ola"},
		},
	})

	members, err := c.ListMembers(context.Background(), "tok", "g1")
	if err != nil {
		t.Fatalf("ListMembers: %v", err)
	}
	if len(members) != 2 || members[0].Role != models.RoleOwner {
		t.Errorf("members: got %+v", members)
	}
}
