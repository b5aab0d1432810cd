// internal/domain/models/group.go
package models

// Group role constants. A role describes the caller's membership in a
// particular group, not a global property of the user.
const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Group is a note-sharing group as seen by one caller. Role is the
// caller's own membership role, attached per-caller by the backend.
type Group struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Role        string `json:"role"`
}

// Member is one row of a group's member list: the membership join plus
// denormalized profile fields, visible only to members of the group.
type Member struct {
	UserID     string `json:"user_id"`
	Role       string `json:"role"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	PictureURL string `json:"picture_url"`
}
