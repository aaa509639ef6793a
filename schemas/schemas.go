// Package schemas ships the JSON Schema documents that describe the service's
// input artifacts.
package schemas

import "embed"

// ResumeDocument is the schema file for a résumé document.
const ResumeDocument = "resume_document.schema.json"

// FS holds every schema file.
//
//go:embed *.schema.json
var FS embed.FS
