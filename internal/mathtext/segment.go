// Package mathtext splits mixed text/LaTeX content into typed segments and
// renders the math parts through a pluggable LaTeX-to-markup renderer.
// Segmentation is total: malformed math never aborts it, a failing match
// degrades to literal text.
package mathtext

import "regexp"

// SegmentType discriminates segment kinds.
type SegmentType string

const (
	SegmentText SegmentType = "text"
	SegmentMath SegmentType = "math"
)

// Segment is one contiguous run of either literal text or delimited math.
// Display records which delimiter form matched ($$...$$ vs $...$) so the
// original input can be reassembled. Rendered is populated only for math
// segments that rendered successfully.
type Segment struct {
	Type     SegmentType `json:"type"`
	Content  string      `json:"content"`
	Display  bool        `json:"display,omitempty"`
	Rendered string      `json:"rendered,omitempty"`
}

// mathPattern matches display math before inline math at a given position,
// so $$...$$ takes precedence. Inline bodies may not span lines or contain
// a bare dollar.
var mathPattern = regexp.MustCompile(`(?s)\$\$(.+?)\$\$|\$([^$\n]+?)\$`)

// Macros is the fixed macro table pre-registered with the renderer for
// every math segment.
var Macros = map[string]string{
	`\RR`:      `\mathbb{R}`,
	`\NN`:      `\mathbb{N}`,
	`\ZZ`:      `\mathbb{Z}`,
	`\QQ`:      `\mathbb{Q}`,
	`\CC`:      `\mathbb{C}`,
	`\eps`:     `\varepsilon`,
	`\phi`:     `\varphi`,
	`\implies`: `\Rightarrow`,
	`\iff`:     `\Leftrightarrow`,
}

// Parse splits text into segments in left-to-right document order. Empty
// literal runs between matches are dropped; empty input yields no
// segments; input without any delimiter match yields a single text
// segment. When the renderer fails for a match, the segment degrades to
// literal text containing the original substring including its
// delimiters. A nil renderer leaves math segments unrendered.
func Parse(text string, r Renderer) []Segment {
	if text == "" {
		return nil
	}

	matches := mathPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return []Segment{{Type: SegmentText, Content: text}}
	}

	var segments []Segment
	last := 0
	for _, m := range matches {
		if m[0] > last {
			segments = append(segments, Segment{Type: SegmentText, Content: text[last:m[0]]})
		}

		display := m[2] >= 0
		var body string
		if display {
			body = text[m[2]:m[3]]
		} else {
			body = text[m[4]:m[5]]
		}

		seg := Segment{Type: SegmentMath, Content: body, Display: display}
		if r != nil {
			rendered, err := r.Render(body, RenderOptions{
				DisplayMode:  display,
				ThrowOnError: true,
				Macros:       Macros,
			})
			if err != nil {
				seg = Segment{Type: SegmentText, Content: text[m[0]:m[1]]}
			} else {
				seg.Rendered = rendered
			}
		}
		segments = append(segments, seg)

		last = m[1]
	}
	if last < len(text) {
		segments = append(segments, Segment{Type: SegmentText, Content: text[last:]})
	}

	return segments
}

// ContainsMath reports whether text contains at least one math delimiter
// match. No rendering takes place.
func ContainsMath(text string) bool {
	return mathPattern.MatchString(text)
}

// Reassemble reconstructs the original input from a segment sequence:
// text segments verbatim, math segments re-wrapped in their original
// delimiter form.
func Reassemble(segments []Segment) string {
	var out []byte
	for _, s := range segments {
		out = append(out, s.original()...)
	}
	return string(out)
}

// original returns the segment's original textual form including
// delimiters for math segments.
func (s Segment) original() string {
	if s.Type != SegmentMath {
		return s.Content
	}
	if s.Display {
		return "$$" + s.Content + "$$"
	}
	return "$" + s.Content + "$"
}
