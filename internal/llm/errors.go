package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/googleapis/gax-go/v2/apierror"
	"github.com/sashabaranov/go-openai"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
)

// Failure classes reported by every provider.
var (
	ErrRateLimited   = errors.New("rate limit reached")
	ErrUnauthorized  = errors.New("invalid or unauthorized API key")
	ErrEmptyResponse = errors.New("empty response")
)

// APIError is a provider failure tagged with its class. errors.Is matches both
// the class sentinel (if any) and the provider's own error.
type APIError struct {
	Provider   Provider
	StatusCode int
	Class      error
	Cause      error
}

func (e *APIError) Error() string {
	if e.Class != nil {
		return fmt.Sprintf("%s: %v: %v", e.Provider, e.Class, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Cause)
}

func (e *APIError) Unwrap() []error {
	if e.Class == nil {
		return []error{e.Cause}
	}
	return []error{e.Class, e.Cause}
}

// classify wraps a provider error into an *APIError. Context errors pass
// through untouched so callers can tell cancellation from failure.
func classify(provider Provider, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	status := statusCode(err)
	apiErr := &APIError{Provider: provider, StatusCode: status, Cause: err}
	switch status {
	case http.StatusTooManyRequests:
		apiErr.Class = ErrRateLimited
	case http.StatusUnauthorized, http.StatusForbidden:
		apiErr.Class = ErrUnauthorized
	}
	return apiErr
}

// statusCode extracts an HTTP-equivalent status from SDK errors, falling back
// to the status text embedded in the message.
func statusCode(err error) int {
	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		return gErr.Code
	}
	var aErr *apierror.APIError
	if errors.As(err, &aErr) {
		if code := aErr.HTTPCode(); code > 0 {
			return code
		}
		if st := aErr.GRPCStatus(); st != nil {
			switch st.Code() {
			case codes.ResourceExhausted:
				return http.StatusTooManyRequests
			case codes.Unauthenticated:
				return http.StatusUnauthorized
			case codes.PermissionDenied:
				return http.StatusForbidden
			}
		}
	}
	var oErr *openai.APIError
	if errors.As(err, &oErr) {
		return oErr.HTTPStatusCode
	}
	var rErr *openai.RequestError
	if errors.As(err, &rErr) {
		return rErr.HTTPStatusCode
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "429"), strings.Contains(msg, "RESOURCE_EXHAUSTED"):
		return http.StatusTooManyRequests
	case strings.Contains(msg, "403"), strings.Contains(msg, "PERMISSION_DENIED"), strings.Contains(msg, "API key not valid"):
		return http.StatusForbidden
	case strings.Contains(msg, "401"):
		return http.StatusUnauthorized
	}
	return 0
}
