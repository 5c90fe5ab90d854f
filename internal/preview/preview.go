// Package preview renders an imported presentation document as a single
// self-contained HTML page: one section per slide, math content rendered,
// images inlined from their data URLs. This is a static export, not the
// editor surface.
package preview

import (
	"fmt"
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/yuanying/pptximport/internal/document"
	"github.com/yuanying/pptximport/internal/mathtext"
)

const previewCSS = `
body { font-family: Arial, sans-serif; margin: 2em auto; max-width: 60em; }
section.slide { border: 1px solid #ccc; margin: 1.5em 0; padding: 1.5em; }
section.slide h2 { margin-top: 0; }
aside.notes { color: #666; border-top: 1px dashed #ccc; margin-top: 1em; padding-top: 0.5em; }
div.shape { border: 1px solid #000; background: #ccc; width: 8em; height: 4em; margin: 0.5em 0; }
nav.outline { border-bottom: 2px solid #000; padding-bottom: 1em; }
`

// Render builds the HTML preview for a document. The renderer is used for
// math segments inside text elements; nil leaves math as literal text.
func Render(doc *document.PresentationDocument, r mathtext.Renderer) (string, error) {
	gq, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<html><head><meta charset="utf-8"></head><body></body></html>`))
	if err != nil {
		return "", fmt.Errorf("failed to create preview document: %w", err)
	}

	head := gq.Find("head")
	head.AppendHtml(fmt.Sprintf("<title>%s</title>", html.EscapeString(doc.Title)))
	head.AppendHtml(fmt.Sprintf("<style>%s</style>", previewCSS))

	body := gq.Find("body")
	body.AppendHtml(fmt.Sprintf("<h1>%s</h1>", html.EscapeString(doc.Title)))
	for i, slide := range doc.Slides {
		body.AppendHtml(renderSlide(i+1, slide, r))
	}

	insertOutline(gq, doc)

	out, err := gq.Html()
	if err != nil {
		return "", fmt.Errorf("failed to render preview: %w", err)
	}
	return "<!DOCTYPE html>\n" + out, nil
}

// renderSlide builds one slide section.
func renderSlide(n int, slide document.Slide, r mathtext.Renderer) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<section class="slide" id="slide-%d">`, n)
	fmt.Fprintf(&b, "<h2>%s</h2>", html.EscapeString(slide.Title))

	for _, el := range slide.Elements {
		switch el.Kind {
		case document.ElementText:
			fmt.Fprintf(&b, `<p class="text">%s</p>`, mathtext.RenderToHTML(el.Content, r))
		case document.ElementImage:
			if el.Content != "" {
				fmt.Fprintf(&b, `<img src="%s" alt="%s"/>`, el.Content, html.EscapeString(el.ID))
			}
		case document.ElementShape:
			shapeType, _ := el.Properties["shapeType"].(string)
			fmt.Fprintf(&b, `<div class="shape" data-shape-type="%s"></div>`, html.EscapeString(shapeType))
		}
	}

	if slide.Notes != "" {
		fmt.Fprintf(&b, `<aside class="notes">%s</aside>`, html.EscapeString(slide.Notes))
	}
	b.WriteString("</section>")
	return b.String()
}

// insertOutline prepends a slide-outline nav linking to each section.
func insertOutline(gq *goquery.Document, doc *document.PresentationDocument) {
	if len(doc.Slides) == 0 {
		return
	}

	var b strings.Builder
	b.WriteString(`<nav class="outline"><ul>`)
	for i, slide := range doc.Slides {
		fmt.Fprintf(&b, `<li><a href="#slide-%d">%s</a></li>`, i+1, html.EscapeString(slide.Title))
	}
	b.WriteString("</ul></nav>")

	gq.Find("body").PrependHtml(b.String())
}
