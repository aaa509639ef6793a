// Package export converts the rendered résumé preview into a downloadable PDF.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jonathan/resume-builder/internal/operation"
	"github.com/ledongthuc/pdf"
)

// Request describes one export.
type Request struct {
	HTML     string
	Selector string
	Filename string
}

// Result is a verified PDF ready for download.
type Result struct {
	Filename string
	Data     []byte
	Pages    int
}

// Exporter runs exports for one session. A newer export cancels the one in
// flight.
type Exporter struct {
	printer    Printer
	tracker    *operation.Tracker
	countPages func([]byte) (int, error)
}

// NewExporter creates an exporter. A positive timeout bounds every export.
func NewExporter(printer Printer, timeout time.Duration) *Exporter {
	return &Exporter{
		printer:    printer,
		tracker:    operation.NewTracker(timeout),
		countPages: CountPages,
	}
}

// Export extracts the preview subtree of req.HTML, prints it and verifies the
// output. No partial output is ever returned.
func (e *Exporter) Export(ctx context.Context, req Request) (*Result, error) {
	if e.printer == nil {
		return nil, &ExportError{Stage: "print", Cause: errors.New("no PDF printer configured")}
	}
	filename := Filename(req.Filename)

	doc, err := Extract(req.HTML, req.Selector)
	if err != nil {
		return nil, err
	}

	if e.tracker.Pending() {
		log.Printf("[EXPORT] superseding export in flight")
	}
	runCtx, tok, cancel := e.tracker.Begin(ctx)
	defer cancel()

	start := time.Now()
	data, err := e.printer.PrintPDF(runCtx, doc)
	if !e.tracker.Finish(tok) {
		log.Printf("[EXPORT] #%d superseded, discarding output", tok.Seq())
		return nil, ErrSuperseded
	}
	if err != nil {
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &ExportError{Stage: "print", Cause: err}
	}

	if !bytes.HasPrefix(data, []byte("%PDF")) {
		return nil, &ExportError{Stage: "verify", Cause: errors.New("output is not a PDF document")}
	}
	pages, err := e.countPages(data)
	if err != nil {
		return nil, &ExportError{Stage: "verify", Cause: err}
	}

	log.Printf("[EXPORT] #%d %s: %d page(s), %d bytes in %v", tok.Seq(), filename, pages, len(data), time.Since(start))
	return &Result{Filename: filename, Data: data, Pages: pages}, nil
}

// Cancel aborts the export in flight, if any.
func (e *Exporter) Cancel() {
	e.tracker.Cancel()
}

// CountPages parses data as a PDF and returns its page count.
func CountPages(data []byte) (pages int, err error) {
	defer func() {
		// the reader panics on some malformed cross-reference tables
		if r := recover(); r != nil {
			err = fmt.Errorf("unreadable PDF: %v", r)
		}
	}()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("unreadable PDF: %w", err)
	}
	n := r.NumPage()
	if n < 1 {
		return 0, errors.New("PDF has no pages")
	}
	return n, nil
}
