// internal/app/features/mapview/notes.go
package mapview

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/geonotes/geonotes/internal/app/system/auth"
	"github.com/geonotes/geonotes/internal/app/system/geotag"
	"github.com/geonotes/geonotes/internal/app/system/limits"
	"github.com/geonotes/geonotes/internal/app/system/normalize"
	"github.com/geonotes/geonotes/internal/app/system/timeouts"
	"github.com/geonotes/geonotes/internal/domain/models"
)

// noteForm is a parsed note submission. Position and color are
// re-encoded into the synthetic tag list before the note is sent.
type noteForm struct {
	Title   string
	Content string
	Lat     float64
	Lng     float64
	Color   string
	GroupID string
	Tags    []string
}

func (h *Handler) parseNoteForm(w http.ResponseWriter, r *http.Request) (noteForm, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxNoteFormSize)
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse note form failed", err, "Invalid form data.", "/")
		return noteForm{}, false
	}

	f := noteForm{
		Title:   strings.TrimSpace(r.FormValue("title")),
		Content: strings.TrimSpace(r.FormValue("content")),
		Color:   strings.TrimSpace(r.FormValue("color")),
		GroupID: strings.TrimSpace(r.FormValue("group_id")),
	}
	if f.Title == "" {
		h.ErrLog.LogBadRequest(w, r, "note form missing title", nil, "Please give the note a title.", "/")
		return noteForm{}, false
	}
	if f.Color == "" {
		f.Color = geotag.FallbackColor
	}

	var err error
	f.Lat, err = strconv.ParseFloat(r.FormValue("lat"), 64)
	if err == nil {
		f.Lng, err = strconv.ParseFloat(r.FormValue("lng"), 64)
	}
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "note form bad position", err, "Invalid map position.", "/")
		return noteForm{}, false
	}

	for _, t := range strings.Split(r.FormValue("tags"), ",") {
		if t = normalize.Name(t); t != "" {
			f.Tags = append(f.Tags, t)
		}
	}

	return f, true
}

func (f noteForm) toNote(id string) models.Note {
	return models.Note{
		ID:      id,
		Title:   f.Title,
		Content: f.Content,
		Tags:    append(f.Tags, geotag.Encode(f.Lat, f.Lng, f.Color)...),
		GroupID: f.GroupID,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /notes/create                                                          |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleCreateNote(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	f, ok := h.parseNoteForm(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Backend.CreateNote(ctx, u.Token, f.toNote("")); err != nil {
		h.ErrLog.LogBackendError(w, r, "create note", err, "Unable to create the note.", "/")
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /notes/{id}/update                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleUpdateNote(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)
	noteID := chi.URLParam(r, "id")

	f, ok := h.parseNoteForm(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Backend.UpdateNote(ctx, u.Token, f.toNote(noteID)); err != nil {
		h.ErrLog.LogBackendError(w, r, "update note", err, "Unable to update the note.", "/")
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /notes/{id}/delete                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleDeleteNote(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)
	noteID := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Backend.DeleteNote(ctx, u.Token, noteID); err != nil {
		h.ErrLog.LogBackendError(w, r, "delete note", err, "Unable to delete the note.", "/")
		return
	}

	h.Log.Info("note deleted", zap.String("note_id", noteID))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
