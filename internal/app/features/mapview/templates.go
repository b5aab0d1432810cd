// internal/app/features/mapview/templates.go
package mapview

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "mapview",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
