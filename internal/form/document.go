package form

import (
	"encoding/json"

	"cloud.google.com/go/civil"
	"github.com/jonathan/resume-builder/internal/types"
)

// Section names a repeatable section of the document.
type Section string

// Repeatable sections.
const (
	SectionEducation      Section = "education"
	SectionCareer         Section = "career"
	SectionCertifications Section = "certifications"
	SectionLanguages      Section = "languages"
)

// Sections lists the repeatable sections in document order.
var Sections = []Section{SectionEducation, SectionCareer, SectionCertifications, SectionLanguages}

// Repeatable is the type-erased view of a section list used by step bindings.
type Repeatable interface {
	Len() int
	Add() int
	RemoveAt(index int) bool
	Update(index int, patch json.RawMessage) error
}

// Document is the live form state of one wizard session.
type Document struct {
	Type           types.ResumeType
	BasicInfo      types.BasicInfo
	Education      *List[types.EducationEntry]
	Career         *List[types.CareerEntry]
	Certifications *List[types.CertificationEntry]
	Languages      *List[types.LanguageSkillEntry]
	SelfIntro      types.SelfIntro
}

// NewEducationEntry returns the default education entry.
func NewEducationEntry() types.EducationEntry {
	return types.EducationEntry{Status: types.StatusGraduated}
}

// NewDocument creates a document with one default entry per repeatable section.
// The résumé date defaults to today.
func NewDocument(resumeType types.ResumeType, today civil.Date) *Document {
	return &Document{
		Type:           resumeType,
		BasicInfo:      types.BasicInfo{ResumeDate: &today},
		Education:      NewList(NewEducationEntry),
		Career:         NewList(func() types.CareerEntry { return types.CareerEntry{} }),
		Certifications: NewList(func() types.CertificationEntry { return types.CertificationEntry{} }),
		Languages:      NewList(func() types.LanguageSkillEntry { return types.LanguageSkillEntry{} }),
	}
}

// FromSnapshot builds a live document from a previously captured aggregate.
// Empty sections are seeded with a default entry.
func FromSnapshot(doc types.ResumeDocument) *Document {
	d := NewDocument(doc.Type, civil.Date{})
	d.BasicInfo = doc.BasicInfo
	d.Education.Replace(doc.Education)
	d.Career.Replace(doc.Career)
	d.Certifications.Replace(doc.Certifications)
	d.Languages.Replace(doc.Languages)
	d.SelfIntro = doc.SelfIntro
	if d.Type == "" {
		d.Type = types.ResumeTypeStandard
	}
	return d
}

// List returns the repeatable section by name.
func (d *Document) List(section Section) (Repeatable, error) {
	switch section {
	case SectionEducation:
		return d.Education, nil
	case SectionCareer:
		return d.Career, nil
	case SectionCertifications:
		return d.Certifications, nil
	case SectionLanguages:
		return d.Languages, nil
	default:
		return nil, &SectionError{Section: string(section)}
	}
}

// UpdateBasicInfo merges a JSON object into the basic info.
func (d *Document) UpdateBasicInfo(patch json.RawMessage) error {
	updated, err := clone(d.BasicInfo)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(patch, &updated); err != nil {
		return &PatchError{Target: "basic info", Cause: err}
	}
	d.BasicInfo = updated
	return nil
}

// UpdateSelfIntro merges a JSON object into the self-introduction.
func (d *Document) UpdateSelfIntro(patch json.RawMessage) error {
	updated := d.SelfIntro
	if err := json.Unmarshal(patch, &updated); err != nil {
		return &PatchError{Target: "self-introduction", Cause: err}
	}
	d.SelfIntro = updated
	return nil
}

// Validate reports the submission problems of the document. Only the basic
// info carries required fields.
func (d *Document) Validate() []types.FieldIssue {
	return d.BasicInfo.Issues()
}

// Snapshot returns a deep copy of the full aggregate.
func (d *Document) Snapshot() types.ResumeDocument {
	info, err := clone(d.BasicInfo)
	if err != nil {
		panic(err)
	}
	return types.ResumeDocument{
		Type:           d.Type,
		BasicInfo:      info,
		Education:      d.Education.Items(),
		Career:         d.Career.Items(),
		Certifications: d.Certifications.Items(),
		Languages:      d.Languages.Items(),
		SelfIntro:      d.SelfIntro,
	}
}
