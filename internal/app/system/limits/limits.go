// internal/app/system/limits/limits.go
package limits

// Form size limits. These keep oversized submissions from exhausting
// memory before they are forwarded to the backend.
const (
	// MaxNoteFormSize bounds note create/edit form submissions.
	MaxNoteFormSize = 256 << 10 // 256 KB

	// MaxProfileFormSize bounds profile and group form submissions.
	MaxProfileFormSize = 64 << 10 // 64 KB
)
