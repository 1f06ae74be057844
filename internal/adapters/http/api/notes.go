package api

import (
	"net/http"

	"github.com/okian/quickmed/internal/domain/types"
)

type noteRequest struct {
	Note string `json:"note"`
}

// NotesHandler handles manual note requests.
type NotesHandler struct {
	deps NoteDependencies
}

// NewNotesHandler creates a new notes handler.
func NewNotesHandler(deps NoteDependencies) *NotesHandler {
	return &NotesHandler{deps: deps}
}

// HandlePostNote handles POST /notes requests.
func (h *NotesHandler) HandlePostNote(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_note"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req noteRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	id, err := h.deps.SaveNote(r.Context(), req.Note)
	if err != nil {
		status, code := classify(err)
		writeError(w, status, code, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusCreated, types.NoteResponse{RecordID: int64(id), Persisted: true})
}
