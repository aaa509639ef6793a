package wizard

import (
	"context"
	"encoding/json"

	"github.com/jonathan/resume-builder/internal/form"
	"github.com/jonathan/resume-builder/internal/locale"
	"github.com/jonathan/resume-builder/internal/types"
)

// Action is a request a step view can issue.
type Action string

// Actions accepted by Dispatch.
const (
	ActionNext    Action = "next"
	ActionPrev    Action = "prev"
	ActionGoTo    Action = "goto"
	ActionAdd     Action = "add"
	ActionRemove  Action = "remove"
	ActionUpdate  Action = "update"
	ActionPreview Action = "preview"
	ActionSave    Action = "save"
)

// Request is one dispatched action. Index is the target step for goto and the
// entry index for remove and section updates; those actions reject a nil Index.
type Request struct {
	Action  Action          `json:"action"`
	Index   *int            `json:"index,omitempty"`
	Section form.Section    `json:"section,omitempty"`
	Patch   json.RawMessage `json:"patch,omitempty"`
}

// Result reports the outcome of a dispatched action.
type Result struct {
	Step     int                   `json:"step"`
	Index    *int                  `json:"index,omitempty"`
	Removed  *bool                 `json:"removed,omitempty"`
	Document *types.ResumeDocument `json:"document,omitempty"`
	Saved    bool                  `json:"saved,omitempty"`
	Message  string                `json:"message,omitempty"`
}

// Hints are the locale-derived formatting hints handed to a mounted view.
type Hints struct {
	DatePlaceholder string `json:"datePlaceholder"`
	DatePattern     string `json:"datePattern"`
	PickerLocale    string `json:"pickerLocale"`
}

// Binding names the slice of the form a view edits.
type Binding struct {
	Fields   string         `json:"fields,omitempty"`
	Sections []form.Section `json:"sections,omitempty"`
}

type handler func(ctx context.Context, req Request) (Result, error)

// View is the editing surface mounted for the current step. Only the actions
// in Actions can be dispatched while it is mounted.
type View struct {
	Step    int      `json:"step"`
	Kind    Kind     `json:"kind"`
	Label   string   `json:"label"`
	Icon    string   `json:"icon"`
	Binding Binding  `json:"binding"`
	Hints   Hints    `json:"hints"`
	Actions []Action `json:"actions"`
	Mount   int      `json:"mount"`

	handlers map[Action]handler
}

func (v *View) bind(a Action, h handler) {
	if v.handlers == nil {
		v.handlers = make(map[Action]handler)
	}
	v.handlers[a] = h
	v.Actions = append(v.Actions, a)
}

// Exposes reports whether the view accepts a.
func (v *View) Exposes(a Action) bool {
	_, ok := v.handlers[a]
	return ok
}

func hintsFor(f locale.DateFormat) Hints {
	return Hints{
		DatePlaceholder: f.Placeholder,
		DatePattern:     f.Pattern,
		PickerLocale:    f.PickerLocale,
	}
}
