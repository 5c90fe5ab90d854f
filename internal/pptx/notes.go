package pptx

import (
	"fmt"
	"strings"
)

// extractNotes reads the speaker notes for a slide, if any. The notes part
// is resolved through the slide's relationship file; when no notesSlide
// relationship exists, the positional convention is tried. An absent notes
// part yields no notes, not an error.
func extractNotes(r *Reader, ref SlideRef, n int) string {
	notesPath := ""
	if rels, err := LoadRelationships(r, ref.Path); err == nil {
		if rel, ok := rels.FirstOfType(relTypeNotesSlide); ok {
			notesPath = rel.Target
		}
	}
	if notesPath == "" {
		notesPath = fmt.Sprintf("ppt/notesSlides/notesSlide%d.xml", n)
	}

	data, err := r.ReadFile(notesPath)
	if err != nil {
		return ""
	}

	return strings.Join(collectTextRuns(data), " ")
}
