package server

import (
	"net/http"

	"github.com/jonathan/resume-builder/internal/locale"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/wizard"
)

// TemplatesResponse is the template picker catalogue.
type TemplatesResponse struct {
	Locale    locale.Locale     `json:"locale"`
	Selected  types.ResumeType  `json:"selected"`
	Templates []wizard.Template `json:"templates"`
}

// handleTemplates lists the résumé templates in the negotiated or requested locale.
// The optional type query parameter preselects a template.
func (s *Server) handleTemplates(w http.ResponseWriter, r *http.Request) {
	selected, err := types.ParseResumeType(r.URL.Query().Get("type"))
	if err != nil {
		s.errorFrom(w, &ErrValidation{Field: "type", Message: err.Error()})
		return
	}
	l, err := requestLocale(r, r.URL.Query().Get("locale"))
	if err != nil {
		s.errorFrom(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, TemplatesResponse{
		Locale:    l,
		Selected:  selected,
		Templates: wizard.Catalogue(l, selected),
	})
}

// handleOptions returns the option vocabularies of the form's selects.
func (s *Server) handleOptions(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, types.AllOptions())
}

// requestLocale returns the explicit locale if given, else the best match for
// the Accept-Language header.
func requestLocale(r *http.Request, explicit string) (locale.Locale, error) {
	if explicit == "" {
		return locale.Negotiate(r.Header.Get("Accept-Language")), nil
	}
	l, err := locale.Parse(explicit)
	if err != nil {
		return "", &ErrValidation{Field: "locale", Message: err.Error()}
	}
	return l, nil
}
