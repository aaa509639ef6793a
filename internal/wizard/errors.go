package wizard

import (
	"errors"
	"fmt"
)

// ErrActionNotBound is returned when the mounted view does not expose an action.
var ErrActionNotBound = errors.New("action not bound to the mounted step")

// ActionError wraps a failed dispatch with the step it was issued against.
type ActionError struct {
	Action Action
	Step   int
	Kind   Kind
	Cause  error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s on step %d (%s): %v", e.Action, e.Step, e.Kind, e.Cause)
}

func (e *ActionError) Unwrap() error {
	return e.Cause
}

// ErrIndexRequired is returned when goto, remove or a section update omits
// the index it targets.
var ErrIndexRequired = errors.New("index is required")
