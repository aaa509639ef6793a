package draft

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/prompts"
	"github.com/jonathan/resume-builder/internal/types"
)

// FieldType is the self-introduction block a draft is written for.
type FieldType string

// Draft field types.
const (
	FieldMotivation FieldType = "motivation"
	FieldStrengths  FieldType = "strengths"
	FieldSelfIntro  FieldType = "selfIntro"
)

// Request holds the prompt parameters of one generation.
type Request struct {
	CompanyName    string    `json:"companyName" validate:"required"`
	Position       string    `json:"position" validate:"required"`
	FieldType      FieldType `json:"fieldType" validate:"required,oneof=motivation strengths selfIntro"`
	AdditionalInfo string    `json:"additionalInfo,omitempty"`
}

// Normalize trims surrounding whitespace from every parameter.
func (r Request) Normalize() Request {
	r.CompanyName = strings.TrimSpace(r.CompanyName)
	r.Position = strings.TrimSpace(r.Position)
	r.FieldType = FieldType(strings.TrimSpace(string(r.FieldType)))
	r.AdditionalInfo = strings.TrimSpace(r.AdditionalInfo)
	return r
}

// Validate reports ErrDisabled when the request cannot be submitted.
func (r Request) Validate() error {
	if err := types.Validator().Struct(r); err != nil {
		return fmt.Errorf("%w: %v", ErrDisabled, err)
	}
	return nil
}

// BuildPrompt renders the Korean instruction for the request's field type.
func BuildPrompt(r Request) (string, error) {
	additional := ""
	if r.AdditionalInfo != "" {
		line, err := prompts.Render(prompts.DraftFile, "additionalInfo", map[string]string{"Text": r.AdditionalInfo})
		if err != nil {
			return "", err
		}
		additional = line
	}
	return prompts.Render(prompts.DraftFile, string(r.FieldType), map[string]string{
		"CompanyName":    r.CompanyName,
		"Position":       r.Position,
		"AdditionalInfo": additional,
	})
}

// apply writes text into the self-introduction block targeted by ft. A
// selfIntro draft lands in the motivation block.
func apply(s *types.SelfIntro, ft FieldType, text string) {
	switch ft {
	case FieldStrengths:
		s.Strengths = text
	default:
		s.Motivation = text
	}
}

// TargetField names the self-introduction field a draft of ft is applied to.
func TargetField(ft FieldType) string {
	if ft == FieldStrengths {
		return "strengths"
	}
	return "motivation"
}
