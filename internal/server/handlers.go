package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/trailhead-labs/issuetrack/internal/debug"
	"github.com/trailhead-labs/issuetrack/internal/store"
	"github.com/trailhead-labs/issuetrack/internal/types"
	"github.com/trailhead-labs/issuetrack/internal/validation"
)

// Error messages reported by the handlers beyond the validation rules.
// The client matches MsgDuplicateID literally to route the error to the
// ID field.
const (
	MsgDuplicateID   = "ID already exists"
	MsgIssueNotFound = "Issue not found"
	MsgBadBody       = "invalid JSON body"
)

// rawID accepts an issue ID sent either as a JSON number or a JSON string,
// preserving the raw text for validation. Absent and null both decode to
// the empty string.
type rawID struct {
	text string
}

func (id *rawID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		id.text = s
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	id.text = n.String()
	return nil
}

type createRequest struct {
	ID          rawID  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type updateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// handleIssues serves the collection endpoint: GET lists, POST creates.
func (s *Server) handleIssues(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleList(w, r)
	case http.MethodPost:
		s.handleCreate(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleList(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.List())
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, MsgBadBody)
		return
	}

	// Structural validation must pass before the store is consulted.
	if verr := validation.CheckCreate(req.ID.text, req.Title, req.Description); verr != nil {
		writeError(w, http.StatusBadRequest, verr.Message)
		return
	}

	id, _ := validation.ParseID(req.ID.text)
	issue, err := s.store.Insert(types.Issue{ID: id, Title: req.Title, Description: req.Description})
	if errors.Is(err, store.ErrDuplicateID) {
		writeError(w, http.StatusBadRequest, MsgDuplicateID)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	debug.Logf("Created: %+v", issue)
	writeJSON(w, http.StatusCreated, issue)
}

// handleIssueByID serves the per-record endpoint: PUT updates, DELETE removes.
func (s *Server) handleIssueByID(w http.ResponseWriter, r *http.Request) {
	// A non-numeric path segment cannot match any stored issue.
	id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/issues/"))
	if err != nil {
		writeError(w, http.StatusNotFound, MsgIssueNotFound)
		return
	}

	switch r.Method {
	case http.MethodPut:
		s.handleUpdate(w, r, id)
	case http.MethodDelete:
		s.handleDelete(w, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request, id int) {
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, MsgBadBody)
		return
	}

	if verr := validation.CheckUpdate(req.Title, req.Description); verr != nil {
		writeError(w, http.StatusBadRequest, verr.Message)
		return
	}

	issue, err := s.store.Replace(id, req.Title, req.Description)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, MsgIssueNotFound)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	debug.Logf("Updated: %+v", issue)
	writeJSON(w, http.StatusOK, issue)
}

func (s *Server) handleDelete(w http.ResponseWriter, id int) {
	err := s.store.Remove(id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, MsgIssueNotFound)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	debug.Logf("Deleted: %d", id)
	w.WriteHeader(http.StatusNoContent)
}
