package mathtext

import (
	"html"
	"strings"
)

// latexEscaper escapes the characters with special meaning in LaTeX text
// mode. The same table backs both projection directions; round-trip tests
// rely on it being the single source of escapes.
var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
	`&`, `\&`,
	`%`, `\%`,
	`#`, `\#`,
	`^`, `\textasciicircum{}`,
	`_`, `\_`,
	`~`, `\textasciitilde{}`,
)

// RenderToHTML renders mixed text/math content as HTML markup: text
// segments are HTML-escaped, math segments use their rendered form.
func RenderToHTML(text string, r Renderer) string {
	var b strings.Builder
	for _, s := range Parse(text, r) {
		switch {
		case s.Type == SegmentMath && s.Rendered != "":
			b.WriteString(s.Rendered)
		default:
			b.WriteString(html.EscapeString(s.original()))
		}
	}
	return b.String()
}

// ConvertToLaTeX converts mixed content to a LaTeX source string: text
// segments are escaped through the shared table, math segments are
// re-wrapped in their original delimiters verbatim.
func ConvertToLaTeX(text string) string {
	var b strings.Builder
	for _, s := range Parse(text, nil) {
		if s.Type == SegmentMath {
			b.WriteString(s.original())
			continue
		}
		b.WriteString(latexEscaper.Replace(s.Content))
	}
	return b.String()
}
