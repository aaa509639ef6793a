// Package session keeps the in-memory wizard sessions served by the API.
package session

import (
	"sync"
	"time"

	"github.com/jonathan/resume-builder/internal/draft"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/locale"
	"github.com/jonathan/resume-builder/internal/preview"
	"github.com/jonathan/resume-builder/internal/wizard"
)

// Session is one user's wizard with its preview, draft assistant and export
// state. Callers hold Lock while touching any field except ID.
type Session struct {
	ID string

	mu         sync.Mutex
	Controller *wizard.Controller
	Formatter  *locale.Formatter
	Renderer   *preview.Renderer
	Zoom       preview.Zoom
	// Assistant is nil when no LLM client is configured.
	Assistant *draft.Assistant
	Exporter  *export.Exporter

	CreatedAt time.Time
	lastSeen  time.Time
}

// Lock serialises mutations of the session.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session.
func (s *Session) Unlock() { s.mu.Unlock() }

// PreviewHTML renders the current document at the session's zoom.
// The caller must hold the lock.
func (s *Session) PreviewHTML() (string, error) {
	return s.Renderer.RenderString(s.Controller.Document().Snapshot(), s.Zoom)
}

// close stops any background work owned by the session.
func (s *Session) close() {
	if s.Assistant != nil {
		s.Assistant.Close()
	}
	s.Exporter.Cancel()
}
