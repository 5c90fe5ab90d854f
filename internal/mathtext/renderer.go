package mathtext

import (
	"errors"
	"fmt"
	"html"
	"regexp"
	"strings"
)

// RenderOptions configure a single render call.
type RenderOptions struct {
	DisplayMode  bool
	ThrowOnError bool
	Macros       map[string]string
}

// Renderer converts a LaTeX math source string into markup. Render returns
// an error for malformed input when ThrowOnError is set.
type Renderer interface {
	Render(src string, opts RenderOptions) (string, error)
}

// HTMLRenderer is the built-in renderer: it expands macros and wraps the
// escaped source in a span carrying inline/display classes. It does not
// attempt real math layout; callers needing typeset output plug in their
// own Renderer.
type HTMLRenderer struct{}

// commandRe matches a backslash command name for macro expansion.
var commandRe = regexp.MustCompile(`\\[a-zA-Z]+`)

var (
	errEmptyMath       = errors.New("empty math expression")
	errUnbalancedBrace = errors.New("unbalanced braces")
	errBareDollar      = errors.New("unexpected $ inside math")
)

// Render implements Renderer.
func (HTMLRenderer) Render(src string, opts RenderOptions) (string, error) {
	expanded := ExpandMacros(src, opts.Macros)

	if opts.ThrowOnError {
		if err := validate(expanded); err != nil {
			return "", err
		}
	}

	class := "math math-inline"
	if opts.DisplayMode {
		class = "math math-display"
	}
	return fmt.Sprintf(`<span class=%q>%s</span>`, class, html.EscapeString(expanded)), nil
}

// ExpandMacros replaces whole backslash commands found in the macro table.
// Matching is per-command, so \eps expands while \epsilon is left alone.
func ExpandMacros(src string, macros map[string]string) string {
	if len(macros) == 0 {
		return src
	}
	return commandRe.ReplaceAllStringFunc(src, func(cmd string) string {
		if expansion, ok := macros[cmd]; ok {
			return expansion
		}
		return cmd
	})
}

// validate rejects math source the renderer cannot make sense of.
func validate(src string) error {
	if strings.TrimSpace(src) == "" {
		return errEmptyMath
	}

	depth := 0
	escaped := false
	for _, ch := range src {
		if escaped {
			escaped = false
			continue
		}
		switch ch {
		case '\\':
			escaped = true
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return errUnbalancedBrace
			}
		case '$':
			return errBareDollar
		}
	}
	if depth != 0 {
		return errUnbalancedBrace
	}
	return nil
}
