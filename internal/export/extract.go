package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DefaultSelector is the preview subtree exported when none is given.
const DefaultSelector = "#resume-preview"

// printCSS keeps entries and sections from splitting across pages and
// removes any screen-only scaling.
const printCSS = `@page { size: A4; margin: 10mm; }
html, body { margin: 0; padding: 0; background: #fff; }
.preview-zoom { transform: none !important; }
.preview-section, .preview-item, .intro-block, .info-grid, .ff-section, .ff-item, .resume-header, .ff-header { break-inside: avoid; page-break-inside: avoid; }
h1, h2, h3 { break-after: avoid; page-break-after: avoid; }
`

// Extract returns a standalone print document holding only the subtree under
// selector of the rendered page, plus the page's <style> blocks.
func Extract(page, selector string) (string, error) {
	if selector == "" {
		selector = DefaultSelector
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return "", &ExportError{Stage: "extract", Cause: err}
	}

	root := doc.Find(selector).First()
	if root.Length() == 0 {
		return "", &ExportError{Stage: "extract", Cause: fmt.Errorf("no element matches %q", selector)}
	}
	subtree, err := goquery.OuterHtml(root)
	if err != nil {
		return "", &ExportError{Stage: "extract", Cause: err}
	}

	var styles strings.Builder
	doc.Find("style").Each(func(_ int, s *goquery.Selection) {
		styles.WriteString(s.Text())
		styles.WriteString("\n")
	})
	styles.WriteString(printCSS)

	lang, _ := doc.Find("html").Attr("lang")
	title := strings.TrimSpace(doc.Find("title").First().Text())

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html")
	if lang != "" {
		fmt.Fprintf(&b, ` lang="%s"`, html.EscapeString(lang))
	}
	b.WriteString(">\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(title))
	fmt.Fprintf(&b, "<style>\n%s</style>\n</head>\n<body>\n%s\n</body>\n</html>\n", styles.String(), subtree)
	return b.String(), nil
}
