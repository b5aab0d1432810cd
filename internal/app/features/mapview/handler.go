// internal/app/features/mapview/handler.go
package mapview

import (
	"context"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/geonotes/geonotes/internal/app/backend"
	uierrors "github.com/geonotes/geonotes/internal/app/features/errors"
	"github.com/geonotes/geonotes/internal/app/system/auth"
	"github.com/geonotes/geonotes/internal/app/system/geotag"
	"github.com/geonotes/geonotes/internal/app/system/htmlsanitize"
	"github.com/geonotes/geonotes/internal/app/system/timeouts"
	"github.com/geonotes/geonotes/internal/app/system/viewdata"
	"github.com/geonotes/geonotes/internal/domain/models"
)

// Handler owns the map page and the note mutations reachable from it.
type Handler struct {
	Log     *zap.Logger
	Backend *backend.Client
	ErrLog  *uierrors.ErrorLogger
}

func NewHandler(be *backend.Client, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Log:     logger,
		Backend: be,
		ErrLog:  errLog,
	}
}

// notePin is a note prepared for rendering: position and color decoded
// from the synthetic tags, text sanitized for the marker popup.
type notePin struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Lat       float64  `json:"lat"`
	Lng       float64  `json:"lng"`
	Color     string   `json:"color"`
	GroupID   string   `json:"group_id"`
	GroupName string   `json:"group_name"`
	Tags      []string `json:"tags"`
}

type mapPageData struct {
	viewdata.BaseVM
	Groups    []models.Group
	Notes     []notePin
	NotesJSON template.JS
	Fallback  geotag.Point
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /                                                                       |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeMap(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	notes, err := h.Backend.GetNotes(ctx, u.Token)
	if err != nil {
		h.ErrLog.LogBackendError(w, r, "get notes", err, "Unable to load your notes.", "/login")
		return
	}

	// Groups only feed the share dropdown; the map still renders
	// without them.
	groups, err := h.Backend.GetUserGroups(ctx, u.Token)
	if err != nil {
		h.Log.Warn("get user groups failed, rendering map without them", zap.Error(err))
		groups = nil
	}

	pins := make([]notePin, 0, len(notes))
	for _, n := range notes {
		pt := geotag.Decode(n.Tags)
		pins = append(pins, notePin{
			ID:        n.ID,
			Title:     htmlsanitize.Text(n.Title),
			Content:   htmlsanitize.Text(n.Content),
			Lat:       pt.Lat,
			Lng:       pt.Lng,
			Color:     pt.Color,
			GroupID:   n.GroupID,
			GroupName: htmlsanitize.Text(n.GroupName),
			Tags:      geotag.UserTags(n.Tags),
		})
	}

	raw, err := json.Marshal(pins)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "marshal note pins", err, "A server error occurred.", "/")
		return
	}

	templates.Render(w, r, "map", mapPageData{
		BaseVM:    viewdata.NewBaseVM(r, "Map", "/"),
		Groups:    groups,
		Notes:     pins,
		NotesJSON: template.JS(raw),
		Fallback:  geotag.Decode(nil),
	})
}
