package preview

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/locale"
	"github.com/jonathan/resume-builder/internal/types"
)

// field is one labelled value; Missing marks the "not entered" fallback.
type field struct {
	Label   string
	Value   string
	Missing bool
}

type entry struct {
	Title  field
	Fields []field
	Body   string
}

type section struct {
	Heading string
	Entries []entry
}

// structuredData feeds the Korean-style grid layout. Every section is
// always present.
type structuredData struct {
	Title      string
	ResumeDate string
	Basic      []field
	Sections   []section
	SelfIntro  []field
}

// freeFormData feeds the international single-column layout. Empty
// sections are left nil and skipped by the template.
type freeFormData struct {
	Name       string
	Title      string
	Contact    []string
	Summary    string
	Strengths  string
	Experience []experienceItem
	Education  []educationItem
	Skills     []string
	Hobbies    string
}

type experienceItem struct {
	Company     string
	Position    string
	Period      string
	Description string
}

type educationItem struct {
	School string
	Major  string
	Period string
	Status string
}

func buildStructured(doc types.ResumeDocument, f *locale.Formatter) *structuredData {
	val := func(labelKey, v string) field {
		return field{Label: f.Text(labelKey), Value: f.OrNotEntered(v), Missing: v == ""}
	}
	period := func(start, end string) string {
		if start == "" && end == "" {
			return ""
		}
		return start + " ~ " + end
	}

	info := doc.BasicInfo
	data := &structuredData{
		Title:      f.Text(locale.MsgResumeTitle),
		ResumeDate: f.Date(info.ResumeDate),
		Basic: []field{
			val(locale.MsgName, info.Name),
			val(locale.MsgEmail, info.Email),
			val(locale.MsgPhone, info.Phone),
			val(locale.MsgBirthDate, f.Date(info.BirthDate)),
			val(locale.MsgAddress, info.Address),
		},
	}

	edu := section{Heading: f.Text(locale.MsgEducation)}
	for _, e := range doc.Education {
		edu.Entries = append(edu.Entries, entry{
			Title: val(locale.MsgEducation, e.SchoolName),
			Fields: []field{
				val(locale.MsgMajor, e.Major),
				val(locale.MsgPeriod, period(f.Date(e.StartDate), f.Date(e.EndDate))),
				val(locale.MsgStatus, locale.StatusText(f.Locale(), string(e.Status))),
			},
		})
	}

	career := section{Heading: f.Text(locale.MsgCareer)}
	for _, c := range doc.Career {
		career.Entries = append(career.Entries, entry{
			Title: val(locale.MsgCareer, c.CompanyName),
			Fields: []field{
				val(locale.MsgPosition, c.Position),
				val(locale.MsgPeriod, period(f.Date(c.StartDate), f.Date(c.EndDate))),
			},
			Body: c.Description,
		})
	}

	certs := section{Heading: f.Text(locale.MsgCertifications)}
	for _, c := range doc.Certifications {
		certs.Entries = append(certs.Entries, entry{
			Title: val(locale.MsgCertifications, c.CertName),
			Fields: []field{
				val(locale.MsgIssuer, c.Issuer),
				val(locale.MsgAcquiredDate, f.Date(c.AcquiredDate)),
			},
		})
	}

	langs := section{Heading: f.Text(locale.MsgLanguages)}
	for _, l := range doc.Languages {
		langs.Entries = append(langs.Entries, entry{
			Title: val(locale.MsgLanguages, l.Language),
			Fields: []field{
				val(locale.MsgExam, l.ExamName),
				val(locale.MsgGrade, l.Grade),
				val(locale.MsgScore, l.Score),
				val(locale.MsgAcquiredDate, f.Date(l.AcquiredDate)),
			},
		})
	}

	data.Sections = []section{edu, career, certs, langs}
	data.SelfIntro = []field{
		val(locale.MsgMotivation, doc.SelfIntro.Motivation),
		val(locale.MsgStrengths, doc.SelfIntro.Strengths),
		val(locale.MsgHobbies, doc.SelfIntro.Hobbies),
	}
	return data
}

func buildFreeForm(doc types.ResumeDocument) *freeFormData {
	info := doc.BasicInfo
	data := &freeFormData{
		Name:      info.Name,
		Summary:   strings.TrimSpace(doc.SelfIntro.Motivation),
		Strengths: strings.TrimSpace(doc.SelfIntro.Strengths),
		Hobbies:   strings.TrimSpace(doc.SelfIntro.Hobbies),
	}
	for _, c := range []string{info.Email, info.Phone, info.Address} {
		if c != "" {
			data.Contact = append(data.Contact, c)
		}
	}

	for _, c := range doc.Career {
		if c.CompanyName == "" {
			continue
		}
		if data.Title == "" {
			data.Title = c.Position
		}
		data.Experience = append(data.Experience, experienceItem{
			Company:     c.CompanyName,
			Position:    c.Position,
			Period:      locale.FormatRange(c.StartDate, c.EndDate, c.IsCurrent),
			Description: c.Description,
		})
	}

	for _, e := range doc.Education {
		if e.SchoolName == "" {
			continue
		}
		data.Education = append(data.Education, educationItem{
			School: e.SchoolName,
			Major:  e.Major,
			Period: locale.FormatRange(e.StartDate, e.EndDate, false),
			Status: locale.StatusText(locale.English, string(e.Status)),
		})
	}

	for _, c := range doc.Certifications {
		if c.CertName == "" {
			continue
		}
		skill := c.CertName
		if c.Issuer != "" {
			skill += " (" + c.Issuer + ")"
		}
		data.Skills = append(data.Skills, skill)
	}
	for _, l := range doc.Languages {
		if l.Language == "" {
			continue
		}
		parts := []string{l.Language}
		for _, p := range []string{l.ExamName, l.Grade, l.Score} {
			if p != "" {
				parts = append(parts, p)
			}
		}
		data.Skills = append(data.Skills, strings.Join(parts, " · "))
	}
	return data
}
