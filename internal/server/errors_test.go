package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jonathan/resume-builder/internal/draft"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/form"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/wizard"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &ErrValidation{Field: "type", Message: "bad"}, http.StatusBadRequest},
		{"schema", &schemas.ValidationError{Errors: []schemas.FieldError{{Field: "type", Message: "bad"}}}, http.StatusBadRequest},
		{"index", &form.IndexError{Index: 3, Len: 1}, http.StatusBadRequest},
		{"section", &form.SectionError{Section: "hobbies"}, http.StatusBadRequest},
		{"json syntax", &json.SyntaxError{}, http.StatusBadRequest},
		{"patch", &wizard.ActionError{Action: wizard.ActionUpdate, Cause: &form.PatchError{Target: "entry", Cause: errors.New("bad date")}}, http.StatusBadRequest},
		{"index required", &wizard.ActionError{Action: wizard.ActionRemove, Cause: wizard.ErrIndexRequired}, http.StatusBadRequest},
		{"wrapped index", &wizard.ActionError{Action: wizard.ActionUpdate, Cause: &form.IndexError{Index: 3, Len: 1}}, http.StatusBadRequest},
		{"draft disabled", fmt.Errorf("%w: position", draft.ErrDisabled), http.StatusUnprocessableEntity},
		{"session not found", session.ErrNotFound, http.StatusNotFound},
		{"action not bound", &wizard.ActionError{Action: wizard.ActionPrev, Cause: wizard.ErrActionNotBound}, http.StatusConflict},
		{"draft busy", draft.ErrBusy, http.StatusConflict},
		{"no draft", draft.ErrNoDraft, http.StatusConflict},
		{"export superseded", export.ErrSuperseded, http.StatusConflict},
		{"draft unavailable", errDraftUnavailable, http.StatusServiceUnavailable},
		{"rate limited", &draft.GenerationError{Kind: draft.FailureRateLimited}, http.StatusTooManyRequests},
		{"generation failed", &draft.GenerationError{Kind: draft.FailureGeneric}, http.StatusBadGateway},
		{"export failed", &export.ExportError{Stage: "print", Cause: errors.New("boom")}, http.StatusInternalServerError},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestPublicError_HidesInternals(t *testing.T) {
	body := publicError(&export.ExportError{Stage: "print", Cause: errors.New("chrome crashed at /tmp/x")})
	assert.Equal(t, "PDF export failed", body.Error)

	body = publicError(&draft.GenerationError{Kind: draft.FailureUnauthorized, Message: draft.MessageUnauthorized, Cause: errors.New("key sk-123 rejected")})
	assert.Equal(t, draft.MessageUnauthorized, body.Error)

	schemaErr := &schemas.ValidationError{Errors: []schemas.FieldError{{Field: "basicInfo.email", Message: "invalid"}}}
	body = publicError(schemaErr)
	assert.Len(t, body.Details, 1)
}
