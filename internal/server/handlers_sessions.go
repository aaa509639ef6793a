package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jonathan/resume-builder/internal/locale"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/wizard"
)

// CreateSessionRequest represents the optional body of POST /sessions
type CreateSessionRequest struct {
	Type     string          `json:"type,omitempty"`     // Overridden by the type query parameter
	Locale   string          `json:"locale,omitempty"`   // Defaults to Accept-Language negotiation
	Document json.RawMessage `json:"document,omitempty"` // Seeds the form; validated against the document schema
}

// SessionResponse represents a session and its wizard state
type SessionResponse struct {
	SessionID    string       `json:"session_id"`
	Token        string       `json:"token,omitempty"`
	ExpiresAt    string       `json:"expires_at,omitempty"`
	DraftEnabled bool         `json:"draft_enabled"`
	Zoom         int          `json:"zoom"`
	State        wizard.State `json:"state"`
}

// PatchSessionRequest changes session-wide display settings
type PatchSessionRequest struct {
	Locale        *string `json:"locale,omitempty"`
	ViewportWidth *int    `json:"viewport_width,omitempty"`
}

// ActionResponse reports a dispatched wizard action with the resulting state
type ActionResponse struct {
	Result wizard.Result `json:"result"`
	State  wizard.State  `json:"state"`
}

// ValidationResponse reports submission problems and advisory length hints
type ValidationResponse struct {
	Valid  bool               `json:"valid"`
	Issues []types.FieldIssue `json:"issues"`
	Hints  []types.FieldIssue `json:"hints"`
}

// handleCreateSession starts a wizard session and issues its bearer token.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.errorFrom(w, err)
		return
	}

	typeParam := r.URL.Query().Get("type")
	if typeParam == "" {
		typeParam = req.Type
	}
	resumeType, err := types.ParseResumeType(typeParam)
	if err != nil {
		s.errorFrom(w, &ErrValidation{Field: "type", Message: err.Error()})
		return
	}

	l, err := requestLocale(r, req.Locale)
	if err != nil {
		s.errorFrom(w, err)
		return
	}

	var initial *types.ResumeDocument
	if len(req.Document) > 0 && string(req.Document) != "null" {
		if err := schemas.ValidateDocument(req.Document); err != nil {
			s.errorFrom(w, err)
			return
		}
		initial = &types.ResumeDocument{}
		if err := json.Unmarshal(req.Document, initial); err != nil {
			s.errorFrom(w, &ErrValidation{Field: "document", Message: err.Error()})
			return
		}
	}

	sess := s.store.Create(session.CreateOptions{Type: resumeType, Locale: l, Initial: initial})
	token, expiresAt, err := s.tokens.GenerateToken(sess.ID)
	if err != nil {
		s.store.Delete(sess.ID)
		s.errorFrom(w, err)
		return
	}

	sess.Lock()
	resp := s.sessionResponse(sess)
	sess.Unlock()
	resp.Token = token
	resp.ExpiresAt = expiresAt.Format(time.RFC3339)

	s.jsonResponse(w, http.StatusCreated, resp)
}

// handleGetSession returns the wizard state with the mounted view.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()
	s.jsonResponse(w, http.StatusOK, s.sessionResponse(sess))
}

// handlePatchSession switches the locale or reports a new viewport width.
func (s *Server) handlePatchSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var req PatchSessionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.errorFrom(w, err)
		return
	}

	sess.Lock()
	defer sess.Unlock()

	if req.Locale != nil {
		if err := sess.Formatter.SetLocale(locale.Locale(*req.Locale)); err != nil {
			s.errorFrom(w, &ErrValidation{Field: "locale", Message: err.Error()})
			return
		}
	}
	if req.ViewportWidth != nil {
		if *req.ViewportWidth < 0 {
			s.errorFrom(w, &ErrValidation{Field: "viewport_width", Message: "must be non-negative"})
			return
		}
		sess.Controller.SetViewport(*req.ViewportWidth)
	}
	s.jsonResponse(w, http.StatusOK, s.sessionResponse(sess))
}

// handleDeleteSession ends a session.
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if !s.store.Delete(r.PathValue("id")) {
		s.errorFrom(w, session.ErrNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleAction dispatches one action through the mounted step view.
func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var req wizard.Request
	if err := decodeJSON(w, r, &req); err != nil {
		s.errorFrom(w, err)
		return
	}
	if req.Action == "" {
		s.errorFrom(w, &ErrValidation{Field: "action", Message: "action is required"})
		return
	}

	sess.Lock()
	defer sess.Unlock()

	result, err := sess.Controller.Dispatch(r.Context(), req)
	if err != nil {
		s.errorFrom(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, ActionResponse{Result: result, State: sess.Controller.State()})
}

// handleDocument returns a snapshot of the form.
func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	sess.Lock()
	doc := sess.Controller.Document().Snapshot()
	sess.Unlock()
	s.jsonResponse(w, http.StatusOK, doc)
}

// handleValidation reports required-field problems and soft length hints.
func (s *Server) handleValidation(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	sess.Lock()
	doc := sess.Controller.Document()
	issues := doc.Validate()
	hints := doc.SelfIntro.LengthHints()
	sess.Unlock()

	if issues == nil {
		issues = []types.FieldIssue{}
	}
	if hints == nil {
		hints = []types.FieldIssue{}
	}
	s.jsonResponse(w, http.StatusOK, ValidationResponse{Valid: len(issues) == 0, Issues: issues, Hints: hints})
}

// session loads the session named by the {id} path value.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, err := s.store.Get(r.PathValue("id"))
	if err != nil {
		s.errorFrom(w, err)
		return nil, false
	}
	return sess, true
}

// sessionResponse describes sess. The caller holds the session lock.
func (s *Server) sessionResponse(sess *session.Session) SessionResponse {
	return SessionResponse{
		SessionID:    sess.ID,
		DraftEnabled: sess.Assistant != nil,
		Zoom:         sess.Zoom.Percent(),
		State:        sess.Controller.State(),
	}
}
