package session

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/draft"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/form"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/locale"
	"github.com/jonathan/resume-builder/internal/persist"
	"github.com/jonathan/resume-builder/internal/preview"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/wizard"
)

// ErrNotFound is returned for unknown or expired sessions.
var ErrNotFound = errors.New("session not found")

// Deps are the collaborators shared by every session.
type Deps struct {
	// LLM may be nil, which disables the draft assistant.
	LLM           llm.Client
	Printer       export.Printer
	Saver         persist.Saver
	DraftTimeout  time.Duration
	ExportTimeout time.Duration
}

// Store holds live sessions and expires the idle ones.
type Store struct {
	deps Deps
	ttl  time.Duration
	now  func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty store. A non-positive ttl disables expiry.
func NewStore(deps Deps, ttl time.Duration) *Store {
	if deps.Saver == nil {
		deps.Saver = persist.LogSaver{}
	}
	return &Store{
		deps:     deps,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// CreateOptions configures a new session.
type CreateOptions struct {
	Type   types.ResumeType
	Locale locale.Locale
	// Initial seeds the form; nil starts from an empty document.
	Initial *types.ResumeDocument
}

// Create starts a session at step 0.
func (s *Store) Create(opts CreateOptions) *Session {
	now := s.now()
	id := uuid.NewString()

	var doc *form.Document
	if opts.Initial != nil {
		initial := *opts.Initial
		initial.Type = opts.Type
		doc = form.FromSnapshot(initial)
		if doc.BasicInfo.ResumeDate == nil {
			today := civil.DateOf(now)
			doc.BasicInfo.ResumeDate = &today
		}
	} else {
		doc = form.NewDocument(opts.Type, civil.DateOf(now))
	}

	formatter := locale.NewFormatter(opts.Locale)
	sess := &Session{
		ID:         id,
		Controller: wizard.NewController(id, doc, formatter, s.deps.Saver),
		Formatter:  formatter,
		Renderer:   preview.NewRenderer(formatter),
		Exporter:   export.NewExporter(s.deps.Printer, s.deps.ExportTimeout),
		CreatedAt:  now,
		lastSeen:   now,
	}
	if s.deps.LLM != nil {
		sess.Assistant = draft.NewAssistant(s.deps.LLM, s.deps.DraftTimeout)
	}

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	log.Printf("[SESSION] created %s (type=%s, locale=%s)", id, doc.Type, formatter.Locale())
	return sess
}

// Get returns a live session and refreshes its idle timer.
func (s *Store) Get(id string) (*Session, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	if s.expired(sess, now) {
		delete(s.sessions, id)
		go sess.close()
		return nil, ErrNotFound
	}
	sess.lastSeen = now
	return sess, nil
}

// Delete ends a session. It reports whether the session existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if ok {
		sess.close()
		log.Printf("[SESSION] deleted %s", id)
	}
	return ok
}

// Len returns the number of sessions held, expired ones included.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep removes expired sessions and returns how many were removed.
func (s *Store) Sweep() int {
	now := s.now()

	s.mu.Lock()
	var stale []*Session
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			stale = append(stale, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range stale {
		sess.close()
	}
	if len(stale) > 0 {
		log.Printf("[SESSION] expired %d idle session(s)", len(stale))
	}
	return len(stale)
}

// RunJanitor sweeps expired sessions every interval until ctx is done.
func (s *Store) RunJanitor(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// Close ends every session.
func (s *Store) Close() {
	s.mu.Lock()
	all := s.sessions
	s.sessions = make(map[string]*Session)
	s.mu.Unlock()

	for _, sess := range all {
		sess.close()
	}
}

func (s *Store) expired(sess *Session, now time.Time) bool {
	return s.ttl > 0 && now.Sub(sess.lastSeen) > s.ttl
}
