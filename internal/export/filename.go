package export

import (
	"path/filepath"
	"strings"
	"unicode"
)

// DefaultFilename is used when the requested name sanitises to nothing.
const DefaultFilename = "resume.pdf"

// Filename makes name safe for a Content-Disposition header and forces the
// .pdf extension.
func Filename(name string) string {
	name = filepath.Base(strings.ReplaceAll(strings.TrimSpace(name), `\`, "/"))
	if ext := filepath.Ext(name); strings.EqualFold(ext, ".pdf") {
		name = strings.TrimSuffix(name, ext)
	}

	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r == '"' || r == '/' || r == ':' || r == '*' || r == '?' || r == '<' || r == '>' || r == '|':
			return '_'
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, name)
	cleaned = strings.Trim(cleaned, ". ")

	if cleaned == "" {
		return DefaultFilename
	}
	return cleaned + ".pdf"
}
