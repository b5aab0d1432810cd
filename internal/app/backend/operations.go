// internal/app/backend/operations.go
package backend

import (
	"context"
	"net/url"

	"github.com/geonotes/geonotes/internal/domain/models"
)

// The typed operations below cover the whole REST surface the app
// consumes. All but Login, Register and GetProfile are authenticated:
// the token goes into the body via AuthBody.

/*─────────────────────────────────────────────────────────────────────────────*
| Users                                                                       |
*─────────────────────────────────────────────────────────────────────────────*/

// Login exchanges credentials for an access token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	err := c.Post(ctx, "/users/login", map[string]any{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

// Register creates a new account. It does not log the user in.
func (c *Client) Register(ctx context.Context, email, password, firstName, lastName string) error {
	return c.Post(ctx, "/users/create", map[string]any{
		"email":      email,
		"password":   password,
		"first_name": firstName,
		"last_name":  lastName,
	}, nil)
}

// GetProfile fetches the authoritative profile record by user id.
func (c *Client) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	var p models.Profile
	err := c.Get(ctx, "/users/"+url.PathEscape(userID), &p)
	return p, err
}

// UpdateProfile posts changed profile fields. The backend embeds
// profile fields in the token, so a successful update returns a fresh
// token that must replace the stored one.
func (c *Client) UpdateProfile(ctx context.Context, token string, p models.Profile) (newToken string, err error) {
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	err = c.Post(ctx, "/users/update/data", AuthBody(token, map[string]any{
		"email":           p.Email,
		"first_name":      p.FirstName,
		"last_name":       p.LastName,
		"profile_picture": p.ProfilePicture,
		"description":     p.Description,
	}), &resp)
	if err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

// ChangePassword verifies the old password server-side and sets a new one.
func (c *Client) ChangePassword(ctx context.Context, token, email, oldPassword, newPassword string) error {
	return c.Post(ctx, "/users/update/password", AuthBody(token, map[string]any{
		"email":        email,
		"old_password": oldPassword,
		"new_password": newPassword,
	}), nil)
}

// DeleteAccount removes the account identified by identifier (the
// caller's email). The current password travels in the body.
func (c *Client) DeleteAccount(ctx context.Context, token, identifier, password string) error {
	return c.Delete(ctx, "/users/"+url.PathEscape(identifier), AuthBody(token, map[string]any{
		"password": password,
	}), nil)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Notes                                                                       |
*─────────────────────────────────────────────────────────────────────────────*/

// GetNotes lists every note visible to the caller: their own plus
// notes shared with groups they belong to.
func (c *Client) GetNotes(ctx context.Context, token string) ([]models.Note, error) {
	var resp struct {
		Notes []models.Note `json:"notes"`
	}
	err := c.Post(ctx, "/notes/get", AuthBody(token, nil), &resp)
	return resp.Notes, err
}

// CreateNote creates a note. An empty groupID means "only me".
func (c *Client) CreateNote(ctx context.Context, token string, n models.Note) error {
	return c.Post(ctx, "/notes/create", AuthBody(token, map[string]any{
		"title":    n.Title,
		"content":  n.Content,
		"tags":     n.Tags,
		"group_id": n.GroupID,
	}), nil)
}

// UpdateNote updates a note keyed by note_id.
func (c *Client) UpdateNote(ctx context.Context, token string, n models.Note) error {
	return c.Post(ctx, "/notes/update", AuthBody(token, map[string]any{
		"note_id":  n.ID,
		"title":    n.Title,
		"content":  n.Content,
		"tags":     n.Tags,
		"group_id": n.GroupID,
	}), nil)
}

// DeleteNote deletes a note keyed by note_id.
func (c *Client) DeleteNote(ctx context.Context, token, noteID string) error {
	return c.Post(ctx, "/notes/delete", AuthBody(token, map[string]any{
		"note_id": noteID,
	}), nil)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Groups                                                                      |
*─────────────────────────────────────────────────────────────────────────────*/

// GetUserGroups lists the groups the caller belongs to, each carrying
// the caller's own membership role.
func (c *Client) GetUserGroups(ctx context.Context, token string) ([]models.Group, error) {
	var resp struct {
		Groups []models.Group `json:"groups"`
	}
	err := c.Post(ctx, "/groups/get_user_groups", AuthBody(token, nil), &resp)
	return resp.Groups, err
}

// CreateGroup creates a group; the backend makes the caller its owner.
func (c *Client) CreateGroup(ctx context.Context, token, name, description string) error {
	return c.Post(ctx, "/groups/create", AuthBody(token, map[string]any{
		"name":        name,
		"description": description,
	}), nil)
}

// UpdateGroup updates a group's metadata.
func (c *Client) UpdateGroup(ctx context.Context, token, groupID, name, description string) error {
	return c.Put(ctx, "/groups/"+url.PathEscape(groupID), AuthBody(token, map[string]any{
		"name":        name,
		"description": description,
	}), nil)
}

// DeleteGroup deletes a group. Backend enforces owner-only.
func (c *Client) DeleteGroup(ctx context.Context, token, groupID string) error {
	return c.Delete(ctx, "/groups/"+url.PathEscape(groupID), AuthBody(token, nil), nil)
}

// ListMembers lists the memberships of a group the caller belongs to.
func (c *Client) ListMembers(ctx context.Context, token, groupID string) ([]models.Member, error) {
	var resp struct {
		Members []models.Member `json:"members"`
	}
	err := c.Post(ctx, "/groups/"+url.PathEscape(groupID)+"/members", AuthBody(token, nil), &resp)
	return resp.Members, err
}

// AddMember adds a user by id. The id is passed through untouched;
// a bad id surfaces as a backend-reported error.
func (c *Client) AddMember(ctx context.Context, token, groupID, userID string) error {
	return c.Post(ctx, "/groups/"+url.PathEscape(groupID)+"/members/add", AuthBody(token, map[string]any{
		"user_id": userID,
	}), nil)
}

// RemoveMember removes a member from a group.
func (c *Client) RemoveMember(ctx context.Context, token, groupID, userID string) error {
	return c.Post(ctx, "/groups/"+url.PathEscape(groupID)+"/members/remove", AuthBody(token, map[string]any{
		"user_id": userID,
	}), nil)
}

// AssignRole changes a member's role ("admin" or "member").
func (c *Client) AssignRole(ctx context.Context, token, groupID, userID, role string) error {
	return c.Post(ctx, "/groups/"+url.PathEscape(groupID)+"/roles/assign", AuthBody(token, map[string]any{
		"user_id": userID,
		"role":    role,
	}), nil)
}
