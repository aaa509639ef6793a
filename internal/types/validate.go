package types

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator, reporting fields by their JSON names.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// FieldIssue describes one failed check on a document field.
type FieldIssue struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// Validate checks the fields required for submission.
func (b *BasicInfo) Validate() error {
	return Validator().Struct(b)
}

// Issues lists required-field and format problems in the basic info.
func (b *BasicInfo) Issues() []FieldIssue {
	return IssuesFrom("basicInfo", b.Validate())
}

// IssuesFrom flattens a validator error into field issues under prefix.
// Errors that are not validation errors produce a single issue for prefix.
func IssuesFrom(prefix string, err error) []FieldIssue {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldIssue{{Field: prefix, Rule: "invalid"}}
	}
	issues := make([]FieldIssue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, FieldIssue{Field: prefix + "." + fe.Field(), Rule: fe.Tag()})
	}
	return issues
}

// LengthHints reports self-introduction blocks longer than SoftTextLimit characters.
// The limit is advisory and never blocks any action.
func (s *SelfIntro) LengthHints() []FieldIssue {
	var hints []FieldIssue
	for _, f := range []struct {
		name string
		text string
	}{
		{"motivation", s.Motivation},
		{"strengths", s.Strengths},
		{"hobbies", s.Hobbies},
	} {
		if utf8.RuneCountInString(f.text) > SoftTextLimit {
			hints = append(hints, FieldIssue{Field: "selfIntro." + f.name, Rule: "max_length_hint"})
		}
	}
	return hints
}
