package export

import (
	"errors"
	"fmt"
)

// ErrSuperseded is returned by an export cancelled by a newer one for the same
// session.
var ErrSuperseded = errors.New("export superseded by a newer request")

// ExportError is a failed export. The message is generic; Cause carries the
// detail for logs.
type ExportError struct {
	Stage string
	Cause error
}

func (e *ExportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("PDF export failed during %s: %v", e.Stage, e.Cause)
	}
	return fmt.Sprintf("PDF export failed during %s", e.Stage)
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}
