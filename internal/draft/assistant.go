// Package draft implements the AI draft assistant: it turns company and
// position context into an editable self-introduction draft that only reaches
// the document when the user applies it.
package draft

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/jonathan/resume-builder/internal/form"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/operation"
)

// Status is the assistant's lifecycle state.
type Status string

// Assistant states.
const (
	StatusIdle    Status = "idle"
	StatusPending Status = "pending"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

// Failure is the client-visible part of a GenerationError.
type Failure struct {
	Kind    FailureKind `json:"kind"`
	Message string      `json:"message"`
}

// State is a snapshot of the assistant.
type State struct {
	Status  Status   `json:"status"`
	Seq     uint64   `json:"seq"`
	Request *Request `json:"request,omitempty"`
	Text    string   `json:"text,omitempty"`
	Target  string   `json:"target,omitempty"`
	Failure *Failure `json:"failure,omitempty"`
}

// Assistant runs one draft generation at a time for a session.
type Assistant struct {
	client  llm.Client
	tier    llm.ModelTier
	tracker *operation.Tracker

	mu      sync.Mutex
	status  Status
	seq     uint64
	request *Request
	text    string
	failure *GenerationError
}

// NewAssistant creates an idle assistant. A positive timeout bounds each
// generation.
func NewAssistant(client llm.Client, timeout time.Duration) *Assistant {
	return &Assistant{
		client:  client,
		tier:    llm.TierStandard,
		tracker: operation.NewTracker(timeout),
		status:  StatusIdle,
	}
}

// State returns a snapshot of the assistant.
func (a *Assistant) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stateLocked()
}

func (a *Assistant) stateLocked() State {
	s := State{Status: a.status, Seq: a.seq, Text: a.text}
	if a.request != nil {
		req := *a.request
		s.Request = &req
		s.Target = TargetField(req.FieldType)
	}
	if a.failure != nil {
		s.Failure = &Failure{Kind: a.failure.Kind, Message: a.failure.Message}
	}
	return s
}

// Generate validates req and starts a generation in the background. The
// returned channel receives the state once the run settles; it is buffered so
// callers may ignore it. The run outlives ctx's cancellation but keeps its values.
func (a *Assistant) Generate(ctx context.Context, req Request) (<-chan State, error) {
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.status == StatusPending {
		return nil, ErrBusy
	}
	return a.startLocked(ctx, req)
}

// Regenerate clears the previous output and re-issues the last request.
func (a *Assistant) Regenerate(ctx context.Context) (<-chan State, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.status == StatusPending {
		return nil, ErrBusy
	}
	if a.request == nil {
		return nil, ErrNoDraft
	}
	return a.startLocked(ctx, *a.request)
}

func (a *Assistant) startLocked(ctx context.Context, req Request) (<-chan State, error) {
	prompt, err := BuildPrompt(req)
	if err != nil {
		return nil, err
	}

	runCtx, tok, cancel := a.tracker.Begin(context.WithoutCancel(ctx))
	a.status = StatusPending
	a.seq = tok.Seq()
	a.request = &req
	a.text = ""
	a.failure = nil

	log.Printf("[DRAFT] #%d generating %s for %q / %q", tok.Seq(), req.FieldType, req.CompanyName, req.Position)

	out := make(chan State, 1)
	go a.run(runCtx, tok, cancel, prompt, out)
	return out, nil
}

func (a *Assistant) run(ctx context.Context, tok operation.Token, cancel context.CancelFunc, prompt string, out chan<- State) {
	defer cancel()
	defer close(out)

	text, err := a.client.GenerateContent(ctx, prompt, a.tier)

	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.tracker.Finish(tok) {
		log.Printf("[DRAFT] #%d discarded stale result", tok.Seq())
		out <- a.stateLocked()
		return
	}

	if err == nil && text == "" {
		err = llm.ErrEmptyResponse
	}
	if err != nil {
		a.status = StatusFailed
		a.failure = classifyFailure(err)
		log.Printf("[DRAFT] #%d failed: %v", tok.Seq(), a.failure)
	} else {
		a.status = StatusReady
		a.text = text
		log.Printf("[DRAFT] #%d ready (%d chars)", tok.Seq(), len([]rune(text)))
	}
	out <- a.stateLocked()
}

// Edit replaces the draft text before it is applied.
func (a *Assistant) Edit(text string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.status != StatusReady {
		return ErrNoDraft
	}
	a.text = text
	return nil
}

// Apply writes the current, possibly edited, draft into its target field of
// doc and closes the assistant. Only that one field changes.
func (a *Assistant) Apply(doc *form.Document) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.status != StatusReady || a.request == nil {
		return "", ErrNoDraft
	}
	ft := a.request.FieldType
	apply(&doc.SelfIntro, ft, a.text)
	log.Printf("[DRAFT] #%d applied to selfIntro.%s", a.seq, TargetField(ft))
	a.resetLocked()
	return TargetField(ft), nil
}

// Cancel aborts any in-flight generation and discards the draft. The
// document is never touched.
func (a *Assistant) Cancel() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.tracker.Cancel()
	a.resetLocked()
}

func (a *Assistant) resetLocked() {
	a.status = StatusIdle
	a.request = nil
	a.text = ""
	a.failure = nil
}

// Close cancels any in-flight generation.
func (a *Assistant) Close() {
	a.tracker.Cancel()
}

func classifyFailure(err error) *GenerationError {
	switch {
	case errors.Is(err, llm.ErrRateLimited):
		return &GenerationError{Kind: FailureRateLimited, Message: MessageRateLimited, Cause: err}
	case errors.Is(err, llm.ErrUnauthorized):
		return &GenerationError{Kind: FailureUnauthorized, Message: MessageUnauthorized, Cause: err}
	default:
		return &GenerationError{Kind: FailureGeneric, Message: MessageGeneric, Cause: err}
	}
}
