package export

import (
	"context"
	"fmt"
	"log"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 at 96 dpi and the print geometry, in inches where the protocol wants them.
const (
	a4WidthPx      = 794
	a4HeightPx     = 1123
	a4WidthInches  = 8.27
	a4HeightInches = 11.69
	marginInches   = 10 / 25.4
	deviceScale    = 2
)

// Printer turns a standalone HTML document into PDF bytes.
type Printer interface {
	PrintPDF(ctx context.Context, html string) ([]byte, error)
}

// ChromePrinter prints through a headless Chrome started per call.
type ChromePrinter struct {
	// ExecPath overrides the Chrome binary; empty uses chromedp's lookup.
	ExecPath string
	Verbose  bool
}

// NewChromePrinter creates a printer using the Chrome binary at execPath.
func NewChromePrinter(execPath string, verbose bool) *ChromePrinter {
	return &ChromePrinter{ExecPath: execPath, Verbose: verbose}
}

// PrintPDF loads doc into a blank page and prints it on A4 with 10 mm margins.
func (p *ChromePrinter) PrintPDF(ctx context.Context, doc string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(p.ExecPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	if p.Verbose {
		log.Printf("[EXPORT] Starting headless browser (%d bytes of HTML)", len(doc))
	}

	var buf []byte
	err := chromedp.Run(browserCtx,
		emulation.SetDeviceMetricsOverride(a4WidthPx, a4HeightPx, deviceScale, false),
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, doc).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			buf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(a4WidthInches).
				WithPaperHeight(a4HeightInches).
				WithMarginTop(marginInches).
				WithMarginBottom(marginInches).
				WithMarginLeft(marginInches).
				WithMarginRight(marginInches).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("browser printing failed: %w", err)
	}
	return buf, nil
}
