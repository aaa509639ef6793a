// Package wizard implements the step registry and the controller that walks a
// session through it, mounting one editing view per step.
package wizard

import (
	"github.com/jonathan/resume-builder/internal/form"
	"github.com/jonathan/resume-builder/internal/locale"
	"github.com/jonathan/resume-builder/internal/types"
)

// Kind tags a step with the editing surface it mounts.
type Kind string

// Step kinds.
const (
	KindBasicInfo      Kind = "basicInfo"
	KindEducation      Kind = "education"
	KindCareer         Kind = "career"
	KindCertifications Kind = "certifications"
	KindSelfIntro      Kind = "selfIntro"
	KindPlaceholder    Kind = "placeholder"
)

// Step describes one page of the wizard.
type Step struct {
	Kind     Kind
	LabelKey string
	Icon     string
}

// Label returns the step label in l.
func (s Step) Label(l locale.Locale) string {
	return locale.Text(l, s.LabelKey)
}

// Sections returns the repeatable sections edited by the step.
func (s Step) Sections() []form.Section {
	switch s.Kind {
	case KindEducation:
		return []form.Section{form.SectionEducation}
	case KindCareer:
		return []form.Section{form.SectionCareer}
	case KindCertifications:
		return []form.Section{form.SectionCertifications, form.SectionLanguages}
	default:
		return nil
	}
}

var (
	stepBasicInfo      = Step{Kind: KindBasicInfo, LabelKey: locale.MsgBasicInfo, Icon: "person"}
	stepEducation      = Step{Kind: KindEducation, LabelKey: locale.MsgEducation, Icon: "school"}
	stepCareer         = Step{Kind: KindCareer, LabelKey: locale.MsgCareer, Icon: "work"}
	stepCertifications = Step{Kind: KindCertifications, LabelKey: locale.MsgCertsLanguages, Icon: "verified"}
	stepSelfIntro      = Step{Kind: KindSelfIntro, LabelKey: locale.MsgSelfIntro, Icon: "description"}
	stepPortfolio      = Step{Kind: KindPlaceholder, LabelKey: locale.MsgPortfolio, Icon: "folder_open"}
	stepProjects       = Step{Kind: KindPlaceholder, LabelKey: locale.MsgProjects, Icon: "assignment"}
)

var registries = map[types.ResumeType][]Step{
	types.ResumeTypeStandard: {stepBasicInfo, stepEducation, stepCareer, stepCertifications, stepSelfIntro},
	types.ResumeTypeFreeForm: {stepBasicInfo, stepEducation, stepCareer, stepCertifications, stepSelfIntro},
	types.ResumeTypeOriginal: {stepBasicInfo, stepEducation, stepCareer, stepCertifications, stepPortfolio, stepSelfIntro},
	types.ResumeTypeCareer:   {stepBasicInfo, stepCareer, stepProjects, stepEducation, stepCertifications, stepSelfIntro},
}

// Registry returns a copy of the ordered steps for a template. Unknown
// templates get the standard registry.
func Registry(t types.ResumeType) []Step {
	steps, ok := registries[t]
	if !ok {
		steps = registries[types.ResumeTypeStandard]
	}
	return append([]Step(nil), steps...)
}
