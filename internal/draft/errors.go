package draft

import (
	"errors"
	"fmt"
)

// Assistant state errors.
var (
	ErrDisabled = errors.New("draft generation requires company name and position")
	ErrBusy     = errors.New("a draft is already being generated")
	ErrNoDraft  = errors.New("no draft available")
)

// FailureKind classifies a failed generation.
type FailureKind string

// Failure kinds.
const (
	FailureRateLimited  FailureKind = "rate_limited"
	FailureUnauthorized FailureKind = "unauthorized"
	FailureGeneric      FailureKind = "generic"
)

// User-facing failure messages.
const (
	MessageRateLimited  = "요청 횟수 제한에 도달했습니다. 1분 후 다시 시도해주세요."
	MessageUnauthorized = "API 키가 유효하지 않습니다."
	MessageGeneric      = "AI 생성에 실패했습니다. 잠시 후 다시 시도해주세요."
)

// GenerationError is a classified generation failure. Message is safe to show
// to the user; Cause keeps the provider detail for logs.
type GenerationError struct {
	Kind    FailureKind
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("draft generation failed (%s): %v", e.Kind, e.Cause)
	}
	return fmt.Sprintf("draft generation failed (%s)", e.Kind)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
