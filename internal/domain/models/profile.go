// internal/domain/models/profile.go
package models

// Profile is the authoritative user record fetched from the backend.
type Profile struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	ProfilePicture string `json:"profile_picture"`
	Description    string `json:"description"`
}

// Claims are the identity fields carried in the backend-issued token.
// They are decoded locally without signature verification and used for
// display only; the backend re-validates the token on every call.
type Claims struct {
	ID                string `json:"id"`
	Email             string `json:"sub"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	ProfilePictureURL string `json:"profile_picture_url"`
}

// FullName joins first and last name, falling back to the email when
// both are blank (e.g., after a failed token decode).
func (c Claims) FullName() string {
	switch {
	case c.FirstName != "" && c.LastName != "":
		return c.FirstName + " " + c.LastName
	case c.FirstName != "":
		return c.FirstName
	default:
		return c.Email
	}
}
