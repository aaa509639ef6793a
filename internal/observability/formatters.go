// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/draft"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDocument outputs a summary of a résumé document: the template, the
// applicant and the first entries of each section.
func (p *Printer) PrintDocument(doc types.ResumeDocument) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Template: %s\n", doc.Type))
	sb.WriteString(fmt.Sprintf("Name:     %s\n", doc.BasicInfo.Name))
	if doc.BasicInfo.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", doc.BasicInfo.Email))
	}
	sb.WriteString("\n")

	writeSection(&sb, "Education", doc.Education, func(e types.EducationEntry) string {
		return strings.TrimSpace(e.SchoolName + " " + e.Major)
	})
	writeSection(&sb, "Career", doc.Career, func(e types.CareerEntry) string {
		return strings.TrimSpace(e.CompanyName + " " + e.Position)
	})
	writeSection(&sb, "Certifications", doc.Certifications, func(e types.CertificationEntry) string {
		return strings.TrimSpace(e.CertName + " " + e.Issuer)
	})
	writeSection(&sb, "Languages", doc.Languages, func(e types.LanguageSkillEntry) string {
		return strings.TrimSpace(e.Language + " " + e.ExamName + " " + e.Grade + e.Score)
	})

	p.printBox("RÉSUMÉ DOCUMENT", strings.TrimSuffix(sb.String(), "\n"))
}

func writeSection[T any](sb *strings.Builder, title string, entries []T, label func(T) string) {
	sb.WriteString(fmt.Sprintf("%s (%d):\n", title, len(entries)))
	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		text := label(entries[i])
		if text == "" {
			text = "(empty)"
		}
		sb.WriteString(fmt.Sprintf("  • %s\n", text))
	}
	if len(entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(entries)-maxItemsToShow))
	}
}

// PrintValidation outputs the submission issues and soft length hints.
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) PrintValidation(issues, hints []types.FieldIssue) {
	if len(issues) == 0 && len(hints) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO ISSUES FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	for _, is := range issues {
		sb.WriteString(fmt.Sprintf("⚠ %s (%s)\n", is.Field, is.Rule))
	}
	for _, h := range hints {
		sb.WriteString(fmt.Sprintf("ℹ %s exceeds %d characters\n", h.Field, types.SoftTextLimit))
	}

	p.printBox(fmt.Sprintf("VALIDATION (%d issues, %d hints)", len(issues), len(hints)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDraft outputs a settled draft generation.
func (p *Printer) PrintDraft(state draft.State) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Status:   %s (#%d)\n", state.Status, state.Seq))
	if state.Request != nil {
		sb.WriteString(fmt.Sprintf("Company:  %s\n", state.Request.CompanyName))
		sb.WriteString(fmt.Sprintf("Position: %s\n", state.Request.Position))
		sb.WriteString(fmt.Sprintf("Target:   selfIntro.%s\n", state.Target))
	}
	if state.Failure != nil {
		sb.WriteString(fmt.Sprintf("Failure:  %s\n", state.Failure.Kind))
	}
	if state.Text != "" {
		sb.WriteString(fmt.Sprintf("Length:   %d characters\n", len([]rune(state.Text))))
	}

	p.printBox("SELF-INTRODUCTION DRAFT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExport outputs the result of a PDF export.
func (p *Printer) PrintExport(res *export.Result) {
	if res == nil {
		return
	}
	content := fmt.Sprintf("File:     %s\nPages:    %d\nSize:     %.1f KB", res.Filename, res.Pages, float64(len(res.Data))/1024)
	p.printBox("PDF EXPORT", content)
}
