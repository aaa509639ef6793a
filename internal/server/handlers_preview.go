package server

import (
	"fmt"
	"log"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/locale"
	"github.com/jonathan/resume-builder/internal/preview"
)

// ZoomRequest changes the preview zoom either by step or to a percentage
type ZoomRequest struct {
	Action  string `json:"action,omitempty"` // in, out or reset
	Percent *int   `json:"percent,omitempty"`
}

// ZoomResponse reports the preview zoom after a change
type ZoomResponse struct {
	Zoom  int    `json:"zoom"`
	Scale string `json:"scale"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
	Step  int    `json:"step"`
}

// ExportRequest represents the optional body of a PDF export
type ExportRequest struct {
	Filename string `json:"filename,omitempty"` // Defaults to "<name>_<localized résumé>"
	Selector string `json:"selector,omitempty"` // Defaults to the preview root
}

// handlePreview renders the document as HTML. The zoom query parameter
// overrides the session zoom for this response only.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	sess.Lock()
	zoom := sess.Zoom
	if raw := r.URL.Query().Get("zoom"); raw != "" {
		percent, err := strconv.Atoi(raw)
		if err != nil {
			sess.Unlock()
			s.errorFrom(w, &ErrValidation{Field: "zoom", Message: "must be an integer percentage"})
			return
		}
		zoom = preview.NewZoom(percent)
	}
	html, err := sess.Renderer.RenderString(sess.Controller.Document().Snapshot(), zoom)
	sess.Unlock()

	if err != nil {
		s.errorFrom(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(html)); err != nil {
		log.Printf("Error writing preview: %v", err)
	}
}

// handleZoom zooms the preview in 25% steps between 50% and 200%.
func (s *Server) handleZoom(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var req ZoomRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.errorFrom(w, err)
		return
	}

	sess.Lock()
	defer sess.Unlock()

	switch {
	case req.Percent != nil:
		sess.Zoom = preview.NewZoom(*req.Percent)
	case req.Action == "in":
		sess.Zoom = sess.Zoom.In()
	case req.Action == "out":
		sess.Zoom = sess.Zoom.Out()
	case req.Action == "reset":
		sess.Zoom = sess.Zoom.Reset()
	default:
		s.errorFrom(w, &ErrValidation{Field: "action", Message: "must be one of in, out, reset"})
		return
	}

	s.jsonResponse(w, http.StatusOK, ZoomResponse{
		Zoom:  sess.Zoom.Percent(),
		Scale: sess.Zoom.Scale(),
		Min:   preview.MinZoom,
		Max:   preview.MaxZoom,
		Step:  preview.ZoomStep,
	})
}

// handleExport prints the preview subtree to PDF and streams it as a download.
// A newer export for the same session cancels this one.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var req ExportRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.errorFrom(w, err)
		return
	}

	sess.Lock()
	html, err := sess.PreviewHTML()
	filename := req.Filename
	if strings.TrimSpace(filename) == "" {
		filename = defaultExportName(sess.Controller.Document().BasicInfo.Name, sess.Formatter)
	}
	exporter := sess.Exporter
	sess.Unlock()

	if err != nil {
		s.errorFrom(w, err)
		return
	}

	// The export runs without the session lock so edits stay responsive.
	res, err := exporter.Export(r.Context(), export.Request{HTML: html, Selector: req.Selector, Filename: filename})
	if err != nil {
		s.errorFrom(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": res.Filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(res.Data)))
	w.Header().Set("X-Page-Count", strconv.Itoa(res.Pages))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(res.Data); err != nil {
		log.Printf("Error writing PDF: %v", err)
	}
}

func defaultExportName(name string, f *locale.Formatter) string {
	title := f.Text(locale.MsgResumeTitle)
	if name = strings.TrimSpace(name); name == "" {
		return title
	}
	return fmt.Sprintf("%s_%s", name, title)
}
