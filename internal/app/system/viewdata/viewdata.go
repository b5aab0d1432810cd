// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"

	"github.com/geonotes/geonotes/internal/app/system/auth"
)

// SiteName is the fixed application name shown in the layout.
const SiteName = "GeoNotes"

// BaseVM contains common fields for all view models.
// Embed this struct in feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title", "/default-back"),
//	    // page-specific fields...
//	}
type BaseVM struct {
	SiteName string

	// User context (from locally decoded token claims; display only)
	IsLoggedIn  bool
	UserID      string
	UserName    string
	UserEmail   string
	UserPicture string

	// Page context
	Title       string
	BackURL     string
	CurrentPath string

	// CSRF protection
	CSRFToken string
}

// NewBaseVM creates a populated BaseVM for a page. User fields come
// from the session user in the request context; they stay blank when
// the token did not decode, without affecting authentication.
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	vm := BaseVM{
		SiteName:    SiteName,
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: httpnav.CurrentPath(r),
		CSRFToken:   csrf.Token(r),
	}

	if u, ok := auth.CurrentUser(r); ok {
		vm.IsLoggedIn = true
		vm.UserID = u.ID
		vm.UserName = u.Name()
		vm.UserEmail = u.Email
		vm.UserPicture = u.PictureURL
	}

	return vm
}
