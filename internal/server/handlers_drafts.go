package server

import (
	"context"
	"net/http"

	"github.com/jonathan/resume-builder/internal/draft"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/types"
)

// EditDraftRequest replaces the draft text before it is applied
type EditDraftRequest struct {
	Text string `json:"text"`
}

// ApplyDraftResponse reports the field a draft was written to
type ApplyDraftResponse struct {
	Target    string          `json:"target"`
	SelfIntro types.SelfIntro `json:"selfIntro"`
}

// assistant loads the session and its draft assistant.
func (s *Server) assistant(w http.ResponseWriter, r *http.Request) (*session.Session, *draft.Assistant, bool) {
	sess, ok := s.session(w, r)
	if !ok {
		return nil, nil, false
	}
	if sess.Assistant == nil {
		s.errorFrom(w, errDraftUnavailable)
		return nil, nil, false
	}
	return sess, sess.Assistant, true
}

// handleStartDraft starts a generation. With wait=true the response is the
// settled state; otherwise 202 with the pending state.
func (s *Server) handleStartDraft(w http.ResponseWriter, r *http.Request) {
	_, a, ok := s.assistant(w, r)
	if !ok {
		return
	}
	var req draft.Request
	if err := decodeJSON(w, r, &req); err != nil {
		s.errorFrom(w, err)
		return
	}
	ch, err := a.Generate(r.Context(), req)
	if err != nil {
		s.errorFrom(w, err)
		return
	}
	s.respondDraft(w, r, a, ch)
}

// handleRegenerateDraft clears the previous output and re-issues the last request.
func (s *Server) handleRegenerateDraft(w http.ResponseWriter, r *http.Request) {
	_, a, ok := s.assistant(w, r)
	if !ok {
		return
	}
	ch, err := a.Regenerate(r.Context())
	if err != nil {
		s.errorFrom(w, err)
		return
	}
	s.respondDraft(w, r, a, ch)
}

func (s *Server) respondDraft(w http.ResponseWriter, r *http.Request, a *draft.Assistant, ch <-chan draft.State) {
	if r.URL.Query().Get("wait") != "true" {
		s.jsonResponse(w, http.StatusAccepted, a.State())
		return
	}
	state, err := awaitDraft(r.Context(), ch)
	if err != nil {
		s.errorFrom(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, state)
}

// awaitDraft waits for a generation to settle. Leaving early does not cancel
// the generation; its result stays on the assistant.
func awaitDraft(ctx context.Context, ch <-chan draft.State) (draft.State, error) {
	select {
	case state := <-ch:
		return state, nil
	case <-ctx.Done():
		return draft.State{}, ctx.Err()
	}
}

// handleStreamDraft starts a generation and streams its state as SSE events:
// "state" when pending and when settled, then "complete".
func (s *Server) handleStreamDraft(w http.ResponseWriter, r *http.Request) {
	_, a, ok := s.assistant(w, r)
	if !ok {
		return
	}
	var req draft.Request
	if err := decodeJSON(w, r, &req); err != nil {
		s.errorFrom(w, err)
		return
	}

	ch, err := a.Generate(r.Context(), req)
	if err != nil {
		s.errorFrom(w, err)
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := sse.WriteEvent("state", a.State()); err != nil {
		return
	}

	state, err := awaitDraft(r.Context(), ch)
	if err != nil {
		// client went away
		return
	}
	sse.WriteEvent("state", state) //nolint:errcheck
	if state.Failure != nil {
		sse.WriteError(state.Failure.Message)
	}
	sse.WriteComplete(state.Seq, string(state.Status))
}

// handleDraftState returns the assistant state.
func (s *Server) handleDraftState(w http.ResponseWriter, r *http.Request) {
	_, a, ok := s.assistant(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, a.State())
}

// handleEditDraft replaces the draft text.
func (s *Server) handleEditDraft(w http.ResponseWriter, r *http.Request) {
	_, a, ok := s.assistant(w, r)
	if !ok {
		return
	}
	var req EditDraftRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.errorFrom(w, err)
		return
	}
	if err := a.Edit(req.Text); err != nil {
		s.errorFrom(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, a.State())
}

// handleApplyDraft writes the draft into its target self-introduction field.
func (s *Server) handleApplyDraft(w http.ResponseWriter, r *http.Request) {
	sess, a, ok := s.assistant(w, r)
	if !ok {
		return
	}

	sess.Lock()
	defer sess.Unlock()

	doc := sess.Controller.Document()
	target, err := a.Apply(doc)
	if err != nil {
		s.errorFrom(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, ApplyDraftResponse{Target: target, SelfIntro: doc.SelfIntro})
}

// handleCancelDraft discards the draft and aborts any generation in flight.
func (s *Server) handleCancelDraft(w http.ResponseWriter, r *http.Request) {
	_, a, ok := s.assistant(w, r)
	if !ok {
		return
	}
	a.Cancel()
	w.WriteHeader(http.StatusNoContent)
}
