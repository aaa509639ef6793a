package wizard

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-builder/internal/form"
	"github.com/jonathan/resume-builder/internal/locale"
	"github.com/jonathan/resume-builder/internal/persist"
	"github.com/jonathan/resume-builder/internal/types"
)

// HandsetMaxWidth is the viewport width below which the stepper is laid out
// horizontally.
const HandsetMaxWidth = 600

// StepInfo is the stepper header entry for one step.
type StepInfo struct {
	Kind  Kind   `json:"kind"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// State is the externally visible wizard state.
type State struct {
	Type      types.ResumeType `json:"type"`
	Step      int              `json:"step"`
	StepCount int              `json:"stepCount"`
	Steps     []StepInfo       `json:"steps"`
	Locale    locale.Locale    `json:"locale"`
	Vertical  bool             `json:"vertical"`
	View      *View            `json:"view"`
}

// Controller owns the current step of one session and mounts its view.
// It is not safe for concurrent use; callers serialise access per session.
type Controller struct {
	sessionID string
	steps     []Step
	doc       *form.Document
	formatter *locale.Formatter
	saver     persist.Saver

	current  int
	vertical bool
	view     *View
	mounts   int
}

// NewController creates a controller at step 0 for doc's template. Locale
// switches on formatter re-mount the current view.
func NewController(sessionID string, doc *form.Document, formatter *locale.Formatter, saver persist.Saver) *Controller {
	if saver == nil {
		saver = persist.LogSaver{}
	}
	c := &Controller{
		sessionID: sessionID,
		steps:     Registry(doc.Type),
		doc:       doc,
		formatter: formatter,
		saver:     saver,
		vertical:  true,
	}
	formatter.OnChange(func(locale.Locale) { c.mount() })
	c.mount()
	return c
}

// StepCount returns the number of steps in the registry.
func (c *Controller) StepCount() int {
	return len(c.steps)
}

// CurrentStep returns the current step index.
func (c *Controller) CurrentStep() int {
	return c.current
}

// View returns the mounted view.
func (c *Controller) View() *View {
	return c.view
}

// Document returns the form model edited by the wizard.
func (c *Controller) Document() *form.Document {
	return c.doc
}

// GoToStep moves to index. Out-of-range indexes are ignored.
func (c *Controller) GoToStep(index int) {
	if index < 0 || index >= len(c.steps) {
		return
	}
	c.current = index
	c.mount()
}

// NextStep advances one step, staying put on the last step.
func (c *Controller) NextStep() {
	if c.current < len(c.steps)-1 {
		c.GoToStep(c.current + 1)
	}
}

// PrevStep retreats one step, staying put on the first step.
func (c *Controller) PrevStep() {
	if c.current > 0 {
		c.GoToStep(c.current - 1)
	}
}

// SetViewport derives the stepper orientation from the reported viewport width.
func (c *Controller) SetViewport(width int) {
	c.vertical = width >= HandsetMaxWidth
}

// State returns a snapshot of the wizard state.
func (c *Controller) State() State {
	l := c.formatter.Locale()
	infos := make([]StepInfo, len(c.steps))
	for i, s := range c.steps {
		infos[i] = StepInfo{Kind: s.Kind, Label: s.Label(l), Icon: s.Icon}
	}
	return State{
		Type:      c.doc.Type,
		Step:      c.current,
		StepCount: len(c.steps),
		Steps:     infos,
		Locale:    l,
		Vertical:  c.vertical,
		View:      c.view,
	}
}

// Dispatch routes a view request through the mounted view. goto is always
// accepted since it comes from the stepper header rather than the view.
func (c *Controller) Dispatch(ctx context.Context, req Request) (Result, error) {
	if req.Action == ActionGoTo {
		if req.Index == nil {
			return Result{}, c.actionError(req.Action, ErrIndexRequired)
		}
		c.GoToStep(*req.Index)
		return Result{Step: c.current}, nil
	}
	if !c.view.Exposes(req.Action) {
		return Result{}, c.actionError(req.Action, ErrActionNotBound)
	}
	res, err := c.view.handlers[req.Action](ctx, req)
	if err != nil {
		return Result{}, c.actionError(req.Action, err)
	}
	res.Step = c.current
	return res, nil
}

func (c *Controller) actionError(a Action, err error) error {
	step := c.steps[c.current]
	return &ActionError{Action: a, Step: c.current, Kind: step.Kind, Cause: err}
}

// mount discards the previous view and binds a fresh one to the current step.
// Bindings point at the document's own lists, so re-mounting never loses edits.
func (c *Controller) mount() {
	step := c.steps[c.current]
	c.mounts++
	v := &View{
		Step:  c.current,
		Kind:  step.Kind,
		Label: step.Label(c.formatter.Locale()),
		Icon:  step.Icon,
		Hints: hintsFor(c.formatter.DateFormat()),
		Mount: c.mounts,
	}

	if c.current > 0 {
		v.bind(ActionPrev, c.navigate(c.PrevStep))
	}
	last := c.current == len(c.steps)-1
	if !last {
		v.bind(ActionNext, c.navigate(c.NextStep))
	}

	switch step.Kind {
	case KindBasicInfo:
		v.Binding.Fields = string(KindBasicInfo)
		v.bind(ActionUpdate, func(_ context.Context, req Request) (Result, error) {
			return Result{}, c.doc.UpdateBasicInfo(req.Patch)
		})
	case KindEducation, KindCareer, KindCertifications:
		v.Binding.Sections = step.Sections()
		v.bind(ActionAdd, c.sectionHandler(step, c.add))
		v.bind(ActionRemove, c.sectionHandler(step, c.remove))
		v.bind(ActionUpdate, c.sectionHandler(step, c.update))
	case KindSelfIntro:
		v.Binding.Fields = string(KindSelfIntro)
		v.bind(ActionUpdate, func(_ context.Context, req Request) (Result, error) {
			return Result{}, c.doc.UpdateSelfIntro(req.Patch)
		})
	case KindPlaceholder:
		// navigation only
	}

	if last {
		v.bind(ActionPreview, func(context.Context, Request) (Result, error) {
			snap := c.doc.Snapshot()
			return Result{Document: &snap}, nil
		})
		v.bind(ActionSave, func(ctx context.Context, _ Request) (Result, error) {
			if err := c.saver.Save(ctx, c.sessionID, c.doc.Snapshot()); err != nil {
				return Result{}, fmt.Errorf("save failed: %w", err)
			}
			return Result{Saved: true, Message: c.formatter.Text(locale.MsgSaved)}, nil
		})
	}

	c.view = v
}

func (c *Controller) navigate(move func()) handler {
	return func(context.Context, Request) (Result, error) {
		move()
		return Result{}, nil
	}
}

type sectionOp func(list form.Repeatable, req Request) (Result, error)

// sectionHandler resolves the request's section against the step's bindings.
// Steps bound to a single section accept an empty section name.
func (c *Controller) sectionHandler(step Step, op sectionOp) handler {
	bound := step.Sections()
	return func(_ context.Context, req Request) (Result, error) {
		section := req.Section
		if section == "" && len(bound) == 1 {
			section = bound[0]
		}
		for _, s := range bound {
			if s == section {
				list, err := c.doc.List(s)
				if err != nil {
					return Result{}, err
				}
				return op(list, req)
			}
		}
		return Result{}, fmt.Errorf("section %q: %w", section, ErrActionNotBound)
	}
}

func (c *Controller) add(list form.Repeatable, _ Request) (Result, error) {
	idx := list.Add()
	return Result{Index: &idx}, nil
}

func (c *Controller) remove(list form.Repeatable, req Request) (Result, error) {
	if req.Index == nil {
		return Result{}, ErrIndexRequired
	}
	removed := list.RemoveAt(*req.Index)
	return Result{Removed: &removed}, nil
}

func (c *Controller) update(list form.Repeatable, req Request) (Result, error) {
	if req.Index == nil {
		return Result{}, ErrIndexRequired
	}
	idx := *req.Index
	if err := list.Update(idx, req.Patch); err != nil {
		return Result{}, err
	}
	return Result{Index: &idx}, nil
}
