// Package types provides type definitions for the résumé document edited by the wizard.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"

	"cloud.google.com/go/civil"
)

// ResumeType identifies one of the supported document layouts.
type ResumeType string

// Supported résumé templates.
const (
	ResumeTypeStandard ResumeType = "standard"
	ResumeTypeOriginal ResumeType = "original"
	ResumeTypeCareer   ResumeType = "career"
	ResumeTypeFreeForm ResumeType = "free-form"
)

// ResumeTypes lists the templates in catalogue order.
var ResumeTypes = []ResumeType{ResumeTypeStandard, ResumeTypeOriginal, ResumeTypeCareer, ResumeTypeFreeForm}

// ParseResumeType parses a template id. An empty string yields the standard template.
func ParseResumeType(s string) (ResumeType, error) {
	if s == "" {
		return ResumeTypeStandard, nil
	}
	for _, t := range ResumeTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown resume type: %q", s)
}

// IsFreeForm reports whether the template uses the international single-column layout.
func (t ResumeType) IsFreeForm() bool {
	return t == ResumeTypeFreeForm
}

// EducationStatus is the enrolment status of an education entry.
type EducationStatus string

// Education statuses.
const (
	StatusGraduated EducationStatus = "graduated"
	StatusEnrolled  EducationStatus = "enrolled"
	StatusLeave     EducationStatus = "leave"
	StatusDropout   EducationStatus = "dropout"
	StatusExpected  EducationStatus = "expected"
)

// EducationStatuses lists all statuses in display order.
var EducationStatuses = []EducationStatus{StatusGraduated, StatusEnrolled, StatusLeave, StatusDropout, StatusExpected}

// BasicInfo holds the applicant's contact details.
type BasicInfo struct {
	Name       string      `json:"name" validate:"required"`
	Email      string      `json:"email" validate:"required,email"`
	Phone      string      `json:"phone" validate:"required"`
	Address    string      `json:"address"`
	BirthDate  *civil.Date `json:"birthDate"`
	ResumeDate *civil.Date `json:"resumeDate"`
}

// EducationEntry is one school attended.
type EducationEntry struct {
	SchoolName string          `json:"schoolName"`
	Major      string          `json:"major"`
	StartDate  *civil.Date     `json:"startDate"`
	EndDate    *civil.Date     `json:"endDate"`
	Status     EducationStatus `json:"status"`
}

// CareerEntry is one position held.
type CareerEntry struct {
	CompanyName string      `json:"companyName"`
	Position    string      `json:"position"`
	Description string      `json:"description"`
	StartDate   *civil.Date `json:"startDate"`
	EndDate     *civil.Date `json:"endDate"`
	IsCurrent   bool        `json:"isCurrent"`
}

// CertificationEntry is one licence or certificate.
type CertificationEntry struct {
	CertName     string      `json:"certName"`
	Issuer       string      `json:"issuer"`
	AcquiredDate *civil.Date `json:"acquiredDate"`
}

// LanguageSkillEntry is one language test result.
type LanguageSkillEntry struct {
	Language     string      `json:"language"`
	ExamName     string      `json:"examName"`
	Grade        string      `json:"grade"`
	Score        string      `json:"score"`
	AcquiredDate *civil.Date `json:"acquiredDate"`
}

// SelfIntro holds the free-text self-introduction blocks.
type SelfIntro struct {
	Motivation string `json:"motivation"`
	Strengths  string `json:"strengths"`
	Hobbies    string `json:"hobbies"`
}

// ResumeDocument is the full aggregate read by the preview and export.
type ResumeDocument struct {
	Type           ResumeType           `json:"type"`
	BasicInfo      BasicInfo            `json:"basicInfo"`
	Education      []EducationEntry     `json:"education"`
	Career         []CareerEntry        `json:"career"`
	Certifications []CertificationEntry `json:"certifications"`
	Languages      []LanguageSkillEntry `json:"languages"`
	SelfIntro      SelfIntro            `json:"selfIntro"`
}

// SoftTextLimit is the advisory length for each self-introduction block.
const SoftTextLimit = 500
