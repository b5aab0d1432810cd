// internal/domain/models/note.go
package models

// Note is a geo-tagged note as the backend returns it.
//
// NOTE:
//   - Position and display color are not first-class fields on the wire.
//     They ride along in Tags as "lat:<float>", "lng:<float>" and
//     "col:<hex>" entries; geotag.Decode turns them back into numbers.
//   - GroupID is empty for private ("only me") notes. GroupName is
//     denormalized by the backend for display.
type Note struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	GroupID   string   `json:"group_id"`
	GroupName string   `json:"group_name"`
}
