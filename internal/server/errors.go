package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-builder/internal/draft"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/form"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/wizard"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// errDraftUnavailable is returned by draft routes when no LLM provider is configured.
var errDraftUnavailable = errors.New("AI draft assistant is not configured")

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validation *ErrValidation
		schemaErr  *schemas.ValidationError
		indexErr   *form.IndexError
		sectionErr *form.SectionError
		patchErr   *form.PatchError
		syntaxErr  *json.SyntaxError
		typeErr    *json.UnmarshalTypeError
		genErr     *draft.GenerationError
		exportErr  *export.ExportError
	)
	switch {
	case errors.As(err, &validation), errors.As(err, &schemaErr),
		errors.As(err, &indexErr), errors.As(err, &sectionErr),
		errors.As(err, &patchErr), errors.Is(err, wizard.ErrIndexRequired),
		errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		return http.StatusBadRequest
	case errors.Is(err, draft.ErrDisabled):
		return http.StatusUnprocessableEntity
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, wizard.ErrActionNotBound),
		errors.Is(err, draft.ErrBusy),
		errors.Is(err, draft.ErrNoDraft),
		errors.Is(err, export.ErrSuperseded):
		return http.StatusConflict
	case errors.Is(err, errDraftUnavailable):
		return http.StatusServiceUnavailable
	case errors.As(err, &genErr):
		if genErr.Kind == draft.FailureRateLimited {
			return http.StatusTooManyRequests
		}
		return http.StatusBadGateway
	case errors.As(err, &exportErr):
		return http.StatusInternalServerError
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// errorBody is the JSON error envelope.
type errorBody struct {
	Error   string               `json:"error"`
	Details []schemas.FieldError `json:"details,omitempty"`
}

// publicError builds the client-facing body for err. Provider and browser
// details stay in the logs.
func publicError(err error) errorBody {
	var (
		schemaErr *schemas.ValidationError
		genErr    *draft.GenerationError
		exportErr *export.ExportError
	)
	switch {
	case errors.As(err, &schemaErr):
		return errorBody{Error: "document does not match schema", Details: schemaErr.Errors}
	case errors.As(err, &genErr):
		return errorBody{Error: genErr.Message}
	case errors.As(err, &exportErr):
		return errorBody{Error: "PDF export failed"}
	default:
		return errorBody{Error: err.Error()}
	}
}
