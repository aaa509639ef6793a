// Package persist defines the save collaborator invoked by the wizard's final step.
package persist

import (
	"context"
	"log"

	"github.com/jonathan/resume-builder/internal/types"
)

// Saver persists a finished résumé document.
type Saver interface {
	Save(ctx context.Context, sessionID string, doc types.ResumeDocument) error
}

// LogSaver acknowledges saves by logging a summary of the document. It never fails.
type LogSaver struct {
	Logf func(format string, args ...any)
}

// Save logs the document and returns nil.
func (s LogSaver) Save(_ context.Context, sessionID string, doc types.ResumeDocument) error {
	logf := s.Logf
	if logf == nil {
		logf = log.Printf
	}
	logf("[SAVE] session=%s type=%s name=%q education=%d career=%d certifications=%d languages=%d",
		sessionID, doc.Type, doc.BasicInfo.Name,
		len(doc.Education), len(doc.Career), len(doc.Certifications), len(doc.Languages))
	return nil
}
